package controllers

import (
	"log/slog"
	"net/http"

	h "adminhub/internal/delivery/http/helpers"
	"adminhub/internal/domain"
)

// SeedEnrollmentsRequest is the request body for POST /admin/seed/enrollments.
type SeedEnrollmentsRequest struct {
	CourseID int64 `json:"courseId"`
	Count    int   `json:"count"`
}

// Validate implements Validator.
func (s SeedEnrollmentsRequest) Validate() []string {
	var errs []string
	if s.CourseID < 1 {
		errs = append(errs, "courseId is required")
	}
	if s.Count < 0 {
		errs = append(errs, "count must not be negative")
	}
	return errs
}

type EnrollmentController struct {
	Logger  *slog.Logger
	Service domain.EnrollmentService
}

func NewEnrollmentController(logger *slog.Logger, svc domain.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{Logger: logger, Service: svc}
}

// ListByCourse godoc
// @Summary List enrollments for a course
// @Description Returns the enrollments of a course. Listing never creates data.
// @Tags enrollments
// @Produce json
// @Param courseID path int true "Course ID"
// @Success 200 {object} helpers.APIResponse "data contains enrollments and total"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /courses/{courseID}/enrollments [get]
func (c *EnrollmentController) ListByCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "courseID")
	if !ok {
		return
	}
	enrollments, total, err := c.Service.ListCourseEnrollments(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]any{
		"enrollments": enrollments,
		"total":       total,
	})
}

// Seed godoc
// @Summary Seed demo enrollments
// @Description Insert synthetic enrollments for a course. Count defaults to 10 and is capped at 100. This is the only operation that creates demo data.
// @Tags enrollments
// @Accept json
// @Produce json
// @Param body body SeedEnrollmentsRequest true "Seed parameters"
// @Success 201 {object} helpers.APIResponse "data contains the created enrollments"
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failure"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /admin/seed/enrollments [post]
func (c *EnrollmentController) Seed(w http.ResponseWriter, r *http.Request) {
	var req SeedEnrollmentsRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	enrollments, err := c.Service.SeedDemo(r.Context(), req.CourseID, req.Count)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, map[string]any{
		"enrollments": enrollments,
		"count":       len(enrollments),
	})
}
