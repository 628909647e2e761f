package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"adminhub/internal/delivery/http/helpers"
	"adminhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEnrollmentService implements domain.EnrollmentService for handler tests.
type fakeEnrollmentService struct {
	listResult   []*domain.Enrollment
	listTotal    int
	listErr      error
	seedResult   []*domain.Enrollment
	seedErr      error
	lastCourseID int64
	lastCount    int
}

func (f *fakeEnrollmentService) ListCourseEnrollments(ctx context.Context, courseID int64) ([]*domain.Enrollment, int, error) {
	f.lastCourseID = courseID
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	return f.listResult, f.listTotal, nil
}

func (f *fakeEnrollmentService) SeedDemo(ctx context.Context, courseID int64, count int) ([]*domain.Enrollment, error) {
	f.lastCourseID = courseID
	f.lastCount = count
	if f.seedErr != nil {
		return nil, f.seedErr
	}
	return f.seedResult, nil
}

func TestEnrollmentController_ListByCourse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEnrollmentService{
			listResult: []*domain.Enrollment{{ID: 1, CourseID: 5, UserID: 1001, Progress: 40}},
			listTotal:  1,
		}
		c := NewEnrollmentController(testLogger, svc)
		req := httptest.NewRequest(http.MethodGet, "/courses/5/enrollments", nil)
		req.SetPathValue("courseID", "5")
		rec := httptest.NewRecorder()
		c.ListByCourse(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		resp := decodeEnvelope(t, rec)
		require.Nil(t, resp.Error)
		data, ok := resp.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(1), data["total"])
		assert.Equal(t, int64(5), svc.lastCourseID)
	})

	t.Run("course not found", func(t *testing.T) {
		svc := &fakeEnrollmentService{listErr: domain.ErrNotFound}
		c := NewEnrollmentController(testLogger, svc)
		req := httptest.NewRequest(http.MethodGet, "/courses/99/enrollments", nil)
		req.SetPathValue("courseID", "99")
		rec := httptest.NewRecorder()
		c.ListByCourse(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestEnrollmentController_Seed(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEnrollmentService{
			seedResult: []*domain.Enrollment{{ID: 1, CourseID: 5}, {ID: 2, CourseID: 5}},
		}
		c := NewEnrollmentController(testLogger, svc)
		req := httptest.NewRequest(http.MethodPost, "/admin/seed/enrollments", bytes.NewBufferString(`{"courseId":5,"count":2}`))
		rec := httptest.NewRecorder()
		c.Seed(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		resp := decodeEnvelope(t, rec)
		require.Nil(t, resp.Error)
		data, ok := resp.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(2), data["count"])
		assert.Equal(t, int64(5), svc.lastCourseID)
		assert.Equal(t, 2, svc.lastCount)
	})

	t.Run("missing course id", func(t *testing.T) {
		c := NewEnrollmentController(testLogger, &fakeEnrollmentService{})
		req := httptest.NewRequest(http.MethodPost, "/admin/seed/enrollments", bytes.NewBufferString(`{"count":2}`))
		rec := httptest.NewRecorder()
		c.Seed(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeEnvelope(t, rec)
		require.NotNil(t, resp.Error)
		assert.Equal(t, helpers.ErrCodeValidationFailure, resp.Error.Code)
	})
}
