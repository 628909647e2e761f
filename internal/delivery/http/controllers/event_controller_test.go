package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"adminhub/internal/delivery/http/helpers"
	"adminhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	createErr       error
	createID        int64
	updateErr       error
	updateStatusErr error
	deleteErr       error
	detailErr       error
	detail          *domain.EventDetail
	listErr         error
	listResult      []*domain.Event
	listTotal       int

	lastFields   map[string]any
	lastChildren *domain.EventChildren
	lastID       int64
	lastStatus   string
}

func (f *fakeEventService) CreateEvent(ctx context.Context, fields map[string]any, children *domain.EventChildren) (int64, error) {
	f.lastFields = fields
	f.lastChildren = children
	if f.createErr != nil {
		return 0, f.createErr
	}
	return f.createID, nil
}

func (f *fakeEventService) UpdateEvent(ctx context.Context, id int64, fields map[string]any, children *domain.EventChildren) error {
	f.lastID = id
	f.lastFields = fields
	f.lastChildren = children
	return f.updateErr
}

func (f *fakeEventService) UpdateEventStatus(ctx context.Context, id int64, status string) error {
	f.lastID = id
	f.lastStatus = status
	return f.updateStatusErr
}

func (f *fakeEventService) DeleteEvent(ctx context.Context, id int64) error {
	f.lastID = id
	return f.deleteErr
}

func (f *fakeEventService) GetEventDetail(ctx context.Context, id int64) (*domain.EventDetail, error) {
	f.lastID = id
	if f.detailErr != nil {
		return nil, f.detailErr
	}
	return f.detail, nil
}

func (f *fakeEventService) ListEvents(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	return f.listResult, f.listTotal, nil
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) helpers.APIResponse {
	t.Helper()
	var resp helpers.APIResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestEventController_Create(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svc        *fakeEventService
		wantStatus int
		wantCode   string
	}{
		{
			name:       "created",
			body:       `{"parent":{"title":"Go Conf"},"languages":["Go"]}`,
			svc:        &fakeEventService{createID: 7},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing parent",
			body:       `{"languages":["Go"]}`,
			svc:        &fakeEventService{},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeValidationFailure,
		},
		{
			name:       "unknown field rejected",
			body:       `{"parent":{},"bogus":true}`,
			svc:        &fakeEventService{},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "validation failure from service",
			body:       `{"parent":{"title":"x"}}`,
			svc:        &fakeEventService{createErr: domain.NewValidationError("description is required")},
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeValidationFailure,
		},
		{
			name:       "persistence failure",
			body:       `{"parent":{"title":"x"}}`,
			svc:        &fakeEventService{createErr: errors.New("db down")},
			wantStatus: http.StatusInternalServerError,
			wantCode:   helpers.ErrCodePersistenceFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewEventController(testLogger, tt.svc)
			req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			c.Create(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeEnvelope(t, rec)
			if tt.wantCode != "" {
				require.NotNil(t, resp.Error)
				assert.Equal(t, tt.wantCode, resp.Error.Code)
				return
			}
			require.Nil(t, resp.Error)
			data, ok := resp.Data.(map[string]any)
			require.True(t, ok)
			assert.Equal(t, float64(7), data["id"])
		})
	}
}

func TestEventController_Create_childrenPreserveNil(t *testing.T) {
	svc := &fakeEventService{createID: 1}
	c := NewEventController(testLogger, svc)

	// languages present but empty, schedules omitted
	body := `{"parent":{"title":"x"},"languages":[]}`
	req := httptest.NewRequest(http.MethodPost, "/events", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	c.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.lastChildren)
	require.NotNil(t, svc.lastChildren.Languages, "empty array must stay non-nil to clear the collection")
	assert.Len(t, svc.lastChildren.Languages, 0)
	assert.Nil(t, svc.lastChildren.Schedules, "omitted collection must stay nil")
	assert.Nil(t, svc.lastChildren.Technologies)
	assert.Nil(t, svc.lastChildren.Prizes)
}

func TestEventController_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc := &fakeEventService{updateErr: domain.ErrNotFound}
		c := NewEventController(testLogger, svc)
		req := httptest.NewRequest(http.MethodPut, "/events/5", bytes.NewBufferString(`{"parent":{"title":"x"}}`))
		req.SetPathValue("eventID", "5")
		rec := httptest.NewRecorder()
		c.Update(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		resp := decodeEnvelope(t, rec)
		require.NotNil(t, resp.Error)
		assert.Equal(t, helpers.ErrCodeNotFound, resp.Error.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		c := NewEventController(testLogger, &fakeEventService{})
		req := httptest.NewRequest(http.MethodPut, "/events/abc", bytes.NewBufferString(`{"parent":{}}`))
		req.SetPathValue("eventID", "abc")
		rec := httptest.NewRecorder()
		c.Update(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		svc := &fakeEventService{}
		c := NewEventController(testLogger, svc)
		req := httptest.NewRequest(http.MethodPut, "/events/5", bytes.NewBufferString(`{"parent":{"title":"x"}}`))
		req.SetPathValue("eventID", "5")
		rec := httptest.NewRecorder()
		c.Update(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(5), svc.lastID)
	})
}

func TestEventController_UpdateStatus(t *testing.T) {
	svc := &fakeEventService{}
	c := NewEventController(testLogger, svc)
	req := httptest.NewRequest(http.MethodPatch, "/events/3/status", bytes.NewBufferString(`{"status":"ongoing"}`))
	req.SetPathValue("eventID", "3")
	rec := httptest.NewRecorder()
	c.UpdateStatus(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(3), svc.lastID)
	assert.Equal(t, "ongoing", svc.lastStatus)
}

func TestEventController_Get(t *testing.T) {
	svc := &fakeEventService{detail: &domain.EventDetail{
		Event:        &domain.Event{ID: 3, Title: "Go Conf"},
		Schedules:    []domain.EventScheduleItem{},
		Languages:    []string{"Go"},
		Technologies: []string{},
		Prizes:       []domain.PrizeItem{},
	}}
	c := NewEventController(testLogger, svc)
	req := httptest.NewRequest(http.MethodGet, "/events/3", nil)
	req.SetPathValue("eventID", "3")
	rec := httptest.NewRecorder()
	c.Get(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec)
	require.Nil(t, resp.Error)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	event, ok := data["event"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Go Conf", event["title"])
	assert.Equal(t, []any{"Go"}, data["languages"])
}

func TestEventController_List(t *testing.T) {
	svc := &fakeEventService{
		listResult: []*domain.Event{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}},
		listTotal:  42,
	}
	c := NewEventController(testLogger, svc)
	req := httptest.NewRequest(http.MethodGet, "/events?page=2&page_size=2", nil)
	rec := httptest.NewRecorder()
	c.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec)
	require.Nil(t, resp.Error)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	pagination, ok := data["pagination"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(2), pagination["page"])
	assert.Equal(t, float64(42), pagination["total"])
	assert.Equal(t, float64(21), pagination["total_pages"])
}
