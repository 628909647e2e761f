package controllers

import (
	"log/slog"
	"net/http"

	h "adminhub/internal/delivery/http/helpers"
	"adminhub/internal/domain"
)

// QuestionItemRequest is one question row in a SaveExamRequest.
type QuestionItemRequest struct {
	Position int    `json:"position"`
	Prompt   string `json:"prompt"`
	Answer   string `json:"answer"`
	Points   int    `json:"points"`
}

// SaveExamRequest is the request body for POST /exams and PUT /exams/{examID}.
type SaveExamRequest struct {
	Parent    map[string]any        `json:"parent"`
	Questions []QuestionItemRequest `json:"questions,omitempty"`
}

// Validate implements Validator.
func (s SaveExamRequest) Validate() []string {
	if s.Parent == nil {
		return []string{"parent is required"}
	}
	return nil
}

func (s SaveExamRequest) children() *domain.ExamChildren {
	ch := &domain.ExamChildren{}
	if s.Questions != nil {
		ch.Questions = make([]domain.ExamQuestionItem, 0, len(s.Questions))
		for _, it := range s.Questions {
			ch.Questions = append(ch.Questions, domain.ExamQuestionItem{
				Position: it.Position,
				Prompt:   it.Prompt,
				Answer:   it.Answer,
				Points:   it.Points,
			})
		}
	}
	return ch
}

type ExamController struct {
	Logger  *slog.Logger
	Service domain.ExamService
}

func NewExamController(logger *slog.Logger, svc domain.ExamService) *ExamController {
	return &ExamController{Logger: logger, Service: svc}
}

// Create godoc
// @Summary Create an exam
// @Description Create an exam with its questions in a single transaction.
// @Tags exams
// @Accept json
// @Produce json
// @Param body body SaveExamRequest true "Exam data"
// @Success 201 {object} helpers.APIResponse "data contains the new exam id"
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failure"
// @Failure 500 {object} helpers.APIResponse "error.code: persistence_failure"
// @Router /exams [post]
func (c *ExamController) Create(w http.ResponseWriter, r *http.Request) {
	var req SaveExamRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	id, err := c.Service.CreateExam(r.Context(), req.Parent, req.children())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, map[string]int64{"id": id})
}

// Update godoc
// @Summary Update an exam
// @Description Update exam fields and replace the question list transactionally when supplied.
// @Tags exams
// @Accept json
// @Produce json
// @Param examID path int true "Exam ID"
// @Param body body SaveExamRequest true "Exam data"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failure"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /exams/{examID} [put]
func (c *ExamController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "examID")
	if !ok {
		return
	}
	var req SaveExamRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.UpdateExam(r.Context(), id, req.Parent, req.children()); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]int64{"id": id})
}

// UpdateStatus godoc
// @Summary Update exam status
// @Tags exams
// @Accept json
// @Produce json
// @Param examID path int true "Exam ID"
// @Param body body UpdateStatusRequest true "New status"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failure"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /exams/{examID}/status [patch]
func (c *ExamController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "examID")
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.UpdateExamStatus(r.Context(), id, req.Status); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]int64{"id": id})
}

// Delete godoc
// @Summary Soft-delete an exam
// @Tags exams
// @Produce json
// @Param examID path int true "Exam ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /exams/{examID} [delete]
func (c *ExamController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "examID")
	if !ok {
		return
	}
	if err := c.Service.DeleteExam(r.Context(), id); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]int64{"id": id})
}

// Get godoc
// @Summary Get exam detail
// @Tags exams
// @Produce json
// @Param examID path int true "Exam ID"
// @Success 200 {object} helpers.APIResponse "data contains the exam detail"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /exams/{examID} [get]
func (c *ExamController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "examID")
	if !ok {
		return
	}
	detail, err := c.Service.GetExamDetail(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, detail)
}

// List godoc
// @Summary List exams
// @Tags exams
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} helpers.APIResponse "data contains exams and pagination"
// @Router /exams [get]
func (c *ExamController) List(w http.ResponseWriter, r *http.Request) {
	params := h.ParsePagination(r)
	exams, total, err := c.Service.ListExams(r.Context(), params)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]any{
		"exams":      exams,
		"pagination": h.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}
