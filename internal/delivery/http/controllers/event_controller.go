package controllers

import (
	"log/slog"
	"net/http"

	h "adminhub/internal/delivery/http/helpers"
	"adminhub/internal/domain"
)

// ScheduleItemRequest is one schedule row in a SaveEventRequest.
type ScheduleItemRequest struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Activity  string `json:"activity"`
}

// PrizeItemRequest is one prize row in a save request. Shared by events and
// competitions.
type PrizeItemRequest struct {
	Rank  int    `json:"rank"`
	Prize string `json:"prize"`
}

// SaveEventRequest is the request body for POST /events and PUT /events/{eventID}.
// Parent carries the event fields; child collections are optional. On update,
// an omitted collection is left untouched and an empty array clears it.
type SaveEventRequest struct {
	Parent       map[string]any        `json:"parent"`
	Schedules    []ScheduleItemRequest `json:"schedules,omitempty"`
	Languages    []string              `json:"languages,omitempty"`
	Technologies []string              `json:"technologies,omitempty"`
	Prizes       []PrizeItemRequest    `json:"prizes,omitempty"`
}

// Validate implements Validator.
func (s SaveEventRequest) Validate() []string {
	if s.Parent == nil {
		return []string{"parent is required"}
	}
	return nil
}

// children converts the request collections, preserving nil for omitted ones.
func (s SaveEventRequest) children() *domain.EventChildren {
	ch := &domain.EventChildren{
		Languages:    s.Languages,
		Technologies: s.Technologies,
	}
	if s.Schedules != nil {
		ch.Schedules = make([]domain.EventScheduleItem, 0, len(s.Schedules))
		for _, it := range s.Schedules {
			ch.Schedules = append(ch.Schedules, domain.EventScheduleItem{
				Day:       it.Day,
				StartTime: it.StartTime,
				EndTime:   it.EndTime,
				Activity:  it.Activity,
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

// UpdateStatusRequest is the request body for status transitions.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Validate implements Validator.
func (u UpdateStatusRequest) Validate() []string {
	if u.Status == "" {
		return []string{"status is required"}
	}
	return nil
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{Logger: logger, Service: svc}
}

// Create godoc
// @Summary Create an event
// @Description Create an event with its schedule, languages, technologies, and prizes in a single transaction. Either every row lands or none do.
// @Tags events
// @Accept json
// @Produce json
// @Param body body SaveEventRequest true "Event data"
// @Success 201 {object} helpers.APIResponse "data contains the new event id"
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failure"
// @Failure 500 {object} helpers.APIResponse "error.code: persistence_failure"
// @Router /events [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	var req SaveEventRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	id, err := c.Service.CreateEvent(r.Context(), req.Parent, req.children())
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, map[string]int64{"id": id})
}

// Update godoc
// @Summary Update an event
// @Description Update event fields and replace the supplied child collections transactionally. Omitted collections are left untouched; empty arrays clear them.
// @Tags events
// @Accept json
// @Produce json
// @Param eventID path int true "Event ID"
// @Param body body SaveEventRequest true "Event data"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failure"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: persistence_failure"
// @Router /events/{eventID} [put]
func (c *EventController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	var req SaveEventRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.UpdateEvent(r.Context(), id, req.Parent, req.children()); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]int64{"id": id})
}

// UpdateStatus godoc
// @Summary Update event status
// @Tags events
// @Accept json
// @Produce json
// @Param eventID path int true "Event ID"
// @Param body body UpdateStatusRequest true "New status"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failure"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID}/status [patch]
func (c *EventController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.UpdateEventStatus(r.Context(), id, req.Status); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]int64{"id": id})
}

// Delete godoc
// @Summary Soft-delete an event
// @Tags events
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID} [delete]
func (c *EventController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), id); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]int64{"id": id})
}

// Get godoc
// @Summary Get event detail
// @Description Returns the event with all child collections. A failed child read degrades to an empty collection rather than failing the request.
// @Tags events
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the event detail"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID} [get]
func (c *EventController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	detail, err := c.Service.GetEventDetail(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, detail)
}

// List godoc
// @Summary List events
// @Tags events
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} helpers.APIResponse "data contains events and pagination"
// @Router /events [get]
func (c *EventController) List(w http.ResponseWriter, r *http.Request) {
	params := h.ParsePagination(r)
	events, total, err := c.Service.ListEvents(r.Context(), params)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]any{
		"events":     events,
		"pagination": h.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}
