package controllers

import (
	"log/slog"
	"net/http"

	h "adminhub/internal/delivery/http/helpers"
	"adminhub/internal/domain"
)

// ModuleItemRequest is one module row in a SaveCourseRequest.
type ModuleItemRequest struct {
	Position int    `json:"position"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
}

// LessonItemRequest is one lesson row in a SaveCourseRequest.
type LessonItemRequest struct {
	Position        int    `json:"position"`
	Title           string `json:"title"`
	DurationMinutes int    `json:"durationMinutes"`
}

// SaveCourseRequest is the request body for POST /courses and PUT /courses/{courseID}.
type SaveCourseRequest struct {
	Parent  map[string]any      `json:"parent"`
	Modules []ModuleItemRequest `json:"modules,omitempty"`
	Lessons []LessonItemRequest `json:"lessons,omitempty"`
}

// Validate implements Validator.
func (s SaveCourseRequest) Validate() []string {
	if s.Parent == nil {
		return []string{"parent is required"}
	}
	return nil
}

func (s SaveCourseRequest) children() *domain.CourseChildren {
	ch := &domain.CourseChildren{}
	if s.Modules != nil {
		ch.Modules = make([]domain.CourseModuleItem, 0, len(s.Modules))
		for _, it := range s.Modules {
			ch.Modules = append(ch.Modules, domain.CourseModuleItem{
				Position: it.Position,
				Title:    it.Title,
				Summary:  it.Summary,
			})
		}
	}
	if s.Lessons != nil {
		ch.Lessons = make([]domain.CourseLessonItem, 0, len(s.Lessons))
		for _, it := range s.Lessons {
			ch.Lessons = append(ch.Lessons, domain.CourseLessonItem{
				Position:        it.Position,
				Title:           it.Title,
				DurationMinutes: it.DurationMinutes,
			})
		}
	}
	return ch
}

type CourseController struct {
	Logger  *slog.Logger
	Service domain.CourseService
}

func NewCourseController(logger *slog.Logger, svc domain.CourseService) *CourseController {
	return &CourseController{Logger: logger, Service: svc}
}

// Create godoc
// @Summary Create a course
// @Description Create a course with its modules and lessons in a single transaction.
// @Tags courses
// @Accept json
// @Produce json
// @Param body body SaveCourseRequest true "Course data"
// @Success 201 {object} helpers.APIResponse "data contains the new course id"
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failure"
// @Failure 500 {object} helpers.APIResponse "error.code: persistence_failure"
// @Router /courses [post]
func (c *CourseController) Create(w http.ResponseWriter, r *http.Request) {
	var req SaveCourseRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	id, err := c.Service.CreateCourse(r.Context(), req.Parent, req.children())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, map[string]int64{"id": id})
}

// Update godoc
// @Summary Update a course
// @Description Update course fields and replace the supplied child collections transactionally. Omitted collections are left untouched; empty arrays clear them.
// @Tags courses
// @Accept json
// @Produce json
// @Param courseID path int true "Course ID"
// @Param body body SaveCourseRequest true "Course data"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failure"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /courses/{courseID} [put]
func (c *CourseController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "courseID")
	if !ok {
		return
	}
	var req SaveCourseRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.UpdateCourse(r.Context(), id, req.Parent, req.children()); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]int64{"id": id})
}

// UpdateStatus godoc
// @Summary Update course status
// @Tags courses
// @Accept json
// @Produce json
// @Param courseID path int true "Course ID"
// @Param body body UpdateStatusRequest true "New status"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failure"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /courses/{courseID}/status [patch]
func (c *CourseController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "courseID")
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.UpdateCourseStatus(r.Context(), id, req.Status); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]int64{"id": id})
}

// Delete godoc
// @Summary Soft-delete a course
// @Tags courses
// @Produce json
// @Param courseID path int true "Course ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /courses/{courseID} [delete]
func (c *CourseController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "courseID")
	if !ok {
		return
	}
	if err := c.Service.DeleteCourse(r.Context(), id); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]int64{"id": id})
}

// Get godoc
// @Summary Get course detail
// @Tags courses
// @Produce json
// @Param courseID path int true "Course ID"
// @Success 200 {object} helpers.APIResponse "data contains the course detail"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /courses/{courseID} [get]
func (c *CourseController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "courseID")
	if !ok {
		return
	}
	detail, err := c.Service.GetCourseDetail(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, detail)
}

// List godoc
// @Summary List courses
// @Tags courses
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} helpers.APIResponse "data contains courses and pagination"
// @Router /courses [get]
func (c *CourseController) List(w http.ResponseWriter, r *http.Request) {
	params := h.ParsePagination(r)
	courses, total, err := c.Service.ListCourses(r.Context(), params)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]any{
		"courses":    courses,
		"pagination": h.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}
