package middleware

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	userID int64
	err    error
}

func (f *fakeVerifier) Verify(token string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.userID, nil
}

func TestRequireAuth(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name       string
		header     string
		verifier   *fakeVerifier
		wantStatus int
		wantUserID int64
	}{
		{name: "valid token", header: "Bearer good", verifier: &fakeVerifier{userID: 7}, wantStatus: http.StatusOK, wantUserID: 7},
		{name: "missing header", header: "", verifier: &fakeVerifier{}, wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", verifier: &fakeVerifier{}, wantStatus: http.StatusUnauthorized},
		{name: "empty token", header: "Bearer   ", verifier: &fakeVerifier{}, wantStatus: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer bad", verifier: &fakeVerifier{err: errors.New("expired")}, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID int64
			var called bool
			next := func(w http.ResponseWriter, r *http.Request) {
				called = true
				id, ok := UserIDFromContext(r.Context())
				require.True(t, ok)
				gotUserID = id
				w.WriteHeader(http.StatusOK)
			}

			req := httptest.NewRequest(http.MethodGet, "/events", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			RequireAuth(tt.verifier, logger)(next)(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				require.True(t, called)
				assert.Equal(t, tt.wantUserID, gotUserID)
			} else {
				assert.False(t, called)
			}
		})
	}
}
