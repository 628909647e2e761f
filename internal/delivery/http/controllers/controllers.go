package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	h "adminhub/internal/delivery/http/helpers"
	"adminhub/internal/domain"
)

// writeServiceError maps service errors to the API envelope: validation
// failures become 400, missing resources 404, everything else 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	if ve, ok := domain.AsValidation(err); ok {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeValidationFailure, ve.Error())
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, "resource not found")
		return
	}
	if errors.Is(err, domain.ErrForbidden) {
		h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "forbidden")
		return
	}
	logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodePersistenceFailure, err.Error())
}

// pathID reads the named path parameter as an int64. On failure it writes a
// 400 error and returns false.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id < 1 {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}
