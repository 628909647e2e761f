package controllers

import (
	"log/slog"
	"net/http"

	h "adminhub/internal/delivery/http/helpers"
	"adminhub/internal/domain"
)

type ReportController struct {
	Logger  *slog.Logger
	Service domain.ReportService
}

func NewReportController(logger *slog.Logger, svc domain.ReportService) *ReportController {
	return &ReportController{Logger: logger, Service: svc}
}

// Get godoc
// @Summary Get a report
// @Tags reports
// @Produce json
// @Param reportID path int true "Report ID"
// @Success 200 {object} helpers.APIResponse "data contains the report"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /reports/{reportID} [get]
func (c *ReportController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "reportID")
	if !ok {
		return
	}
	report, err := c.Service.GetReport(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, report)
}

// List godoc
// @Summary List reports
// @Tags reports
// @Produce json
// @Param status query string false "Filter by status"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} helpers.APIResponse "data contains reports and pagination"
// @Router /reports [get]
func (c *ReportController) List(w http.ResponseWriter, r *http.Request) {
	params := h.ParsePagination(r)
	status := r.URL.Query().Get("status")
	reports, total, err := c.Service.ListReports(r.Context(), status, params)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]any{
		"reports":    reports,
		"pagination": h.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// UpdateStatus godoc
// @Summary Update report status
// @Tags reports
// @Accept json
// @Produce json
// @Param reportID path int true "Report ID"
// @Param body body UpdateStatusRequest true "New status"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failure"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /reports/{reportID}/status [patch]
func (c *ReportController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "reportID")
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.UpdateReportStatus(r.Context(), id, req.Status); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]int64{"id": id})
}
