package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/taskdel-api/internal/api/shared"
	"github.com/phrazzld/taskdel-api/internal/domain"
	"github.com/phrazzld/taskdel-api/internal/store"
)

// Pagination defaults and bounds. Values outside the bounds are rejected
// with a 400, never silently clamped.
const (
	defaultPageStart = 0
	defaultPageLimit = 10
)

// pageParams carries parsed pagination query parameters.
type pageParams struct {
	Start int `validate:"gte=0"`
	Limit int `validate:"gte=1,lte=100"`
}

// getCallerID extracts the authenticated caller's user ID from the request
// context. The ID is placed there by the basic-auth middleware; a request
// that reaches a protected handler without one is a programming error, and
// is answered with 401 rather than a panic.
func getCallerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	callerID, ok := shared.GetCallerID(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Caller identity not found")
		return 0, false
	}
	return callerID, true
}

// getPathTaskID extracts and parses the {taskId} URL parameter.
func getPathTaskID(r *http.Request) (int64, error) {
	pathParam := chi.URLParam(r, "taskId")
	if pathParam == "" {
		return 0, fmt.Errorf("%w: task ID is required", domain.ErrInvalidID)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: task ID must be a positive integer", domain.ErrInvalidID)
	}

	return id, nil
}

// parsePage reads the start/limit query parameters, applying defaults for
// absent values and validating the bounds (start >= 0, limit in [1,100]).
func parsePage(r *http.Request) (store.Page, error) {
	params := pageParams{Start: defaultPageStart, Limit: defaultPageLimit}

	if raw := r.URL.Query().Get("start"); raw != "" {
		start, err := strconv.Atoi(raw)
		if err != nil {
			return store.Page{}, fmt.Errorf("%w: start must be an integer", domain.ErrInvalidFormat)
		}
		params.Start = start
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return store.Page{}, fmt.Errorf("%w: limit must be an integer", domain.ErrInvalidFormat)
		}
		params.Limit = limit
	}

	if err := shared.ValidateRequest(params); err != nil {
		return store.Page{}, fmt.Errorf("%w: start must be >= 0 and limit within [1,100]", domain.ErrValidation)
	}

	return store.Page{Offset: params.Start, Limit: params.Limit}, nil
}
