package controllers

import (
	"log/slog"
	"net/http"

	h "adminhub/internal/delivery/http/helpers"
	"adminhub/internal/domain"
)

// RoundItemRequest is one round row in a SaveCompetitionRequest.
type RoundItemRequest struct {
	RoundNumber int    `json:"roundNumber"`
	Name        string `json:"name"`
	StartDate   string `json:"startDate"`
}

// SaveCompetitionRequest is the request body for POST /competitions and
// PUT /competitions/{competitionID}.
type SaveCompetitionRequest struct {
	Parent map[string]any     `json:"parent"`
	Rounds []RoundItemRequest `json:"rounds,omitempty"`
	Prizes []PrizeItemRequest `json:"prizes,omitempty"`
}

// Validate implements Validator.
func (s SaveCompetitionRequest) Validate() []string {
	if s.Parent == nil {
		return []string{"parent is required"}
	}
	return nil
}

func (s SaveCompetitionRequest) children() *domain.CompetitionChildren {
	ch := &domain.CompetitionChildren{}
	if s.Rounds != nil {
		ch.Rounds = make([]domain.CompetitionRoundItem, 0, len(s.Rounds))
		for _, it := range s.Rounds {
			ch.Rounds = append(ch.Rounds, domain.CompetitionRoundItem{
				RoundNumber: it.RoundNumber,
				Name:        it.Name,
				StartDate:   it.StartDate,
			})
		}
	}
	if s.Prizes != nil {
		ch.Prizes = make([]domain.PrizeItem, 0, len(s.Prizes))
		for _, it := range s.Prizes {
			ch.Prizes = append(ch.Prizes, domain.PrizeItem{Rank: it.Rank, Prize: it.Prize})
		}
	}
	return ch
}

type CompetitionController struct {
	Logger  *slog.Logger
	Service domain.CompetitionService
}

func NewCompetitionController(logger *slog.Logger, svc domain.CompetitionService) *CompetitionController {
	return &CompetitionController{Logger: logger, Service: svc}
}

// Create godoc
// @Summary Create a competition
// @Description Create a competition with its rounds and prizes in a single transaction.
// @Tags competitions
// @Accept json
// @Produce json
// @Param body body SaveCompetitionRequest true "Competition data"
// @Success 201 {object} helpers.APIResponse "data contains the new competition id"
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failure"
// @Failure 500 {object} helpers.APIResponse "error.code: persistence_failure"
// @Router /competitions [post]
func (c *CompetitionController) Create(w http.ResponseWriter, r *http.Request) {
	var req SaveCompetitionRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	id, err := c.Service.CreateCompetition(r.Context(), req.Parent, req.children())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, map[string]int64{"id": id})
}

// Update godoc
// @Summary Update a competition
// @Description Update competition fields and replace the supplied child collections transactionally.
// @Tags competitions
// @Accept json
// @Produce json
// @Param competitionID path int true "Competition ID"
// @Param body body SaveCompetitionRequest true "Competition data"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failure"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /competitions/{competitionID} [put]
func (c *CompetitionController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "competitionID")
	if !ok {
		return
	}
	var req SaveCompetitionRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.UpdateCompetition(r.Context(), id, req.Parent, req.children()); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]int64{"id": id})
}

// UpdateStatus godoc
// @Summary Update competition status
// @Tags competitions
// @Accept json
// @Produce json
// @Param competitionID path int true "Competition ID"
// @Param body body UpdateStatusRequest true "New status"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failure"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /competitions/{competitionID}/status [patch]
func (c *CompetitionController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "competitionID")
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.UpdateCompetitionStatus(r.Context(), id, req.Status); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]int64{"id": id})
}

// Delete godoc
// @Summary Soft-delete a competition
// @Tags competitions
// @Produce json
// @Param competitionID path int true "Competition ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /competitions/{competitionID} [delete]
func (c *CompetitionController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "competitionID")
	if !ok {
		return
	}
	if err := c.Service.DeleteCompetition(r.Context(), id); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]int64{"id": id})
}

// Get godoc
// @Summary Get competition detail
// @Tags competitions
// @Produce json
// @Param competitionID path int true "Competition ID"
// @Success 200 {object} helpers.APIResponse "data contains the competition detail"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /competitions/{competitionID} [get]
func (c *CompetitionController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "competitionID")
	if !ok {
		return
	}
	detail, err := c.Service.GetCompetitionDetail(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, detail)
}

// List godoc
// @Summary List competitions
// @Tags competitions
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} helpers.APIResponse "data contains competitions and pagination"
// @Router /competitions [get]
func (c *CompetitionController) List(w http.ResponseWriter, r *http.Request) {
	params := h.ParsePagination(r)
	competitions, total, err := c.Service.ListCompetitions(r.Context(), params)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]any{
		"competitions": competitions,
		"pagination":   h.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}
