package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/taskdel-api/internal/api/shared"
	"github.com/phrazzld/taskdel-api/internal/domain"
	"github.com/phrazzld/taskdel-api/internal/service/stats"
)

// StatsHandler handles statistics HTTP requests. Both views are computed
// on demand against the current calendar date; nothing is cached, so a
// task sliding past its deadline changes the counts without any mutation.
type StatsHandler struct {
	stats  *stats.Service
	logger *slog.Logger
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService *stats.Service, logger *slog.Logger) *StatsHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for StatsHandler")
	}

	return &StatsHandler{
		stats:  statsService,
		logger: logger.With(slog.String("component", "stats_handler")),
	}
}

// GetGlobalStatistic handles GET /task-api/globalStatistic requests.
// Public: returns one row per roster entry, in roster order.
func (h *StatsHandler) GetGlobalStatistic(w http.ResponseWriter, r *http.Request) {
	rows, err := h.stats.Global(r.Context(), domain.Today())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	response := make([]UserStatisticResponse, 0, len(rows))
	for _, row := range rows {
		response = append(response, UserStatisticResponse{
			ID:             row.User.ID,
			Name:           row.User.Name,
			Ava:            row.User.Ava,
			CompletedTasks: row.Stats.Completed,
			InWorkTasks:    row.Stats.InWork,
			FailedTasks:    row.Stats.Failed,
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// GetMyStatistic handles GET /task-api/myStatistic requests.
// It returns the caller's own completed/in-work/failed counts.
func (h *StatsHandler) GetMyStatistic(w http.ResponseWriter, r *http.Request) {
	callerID, ok := getCallerID(w, r)
	if !ok {
		return
	}

	userStats, err := h.stats.ForUser(r.Context(), callerID, domain.Today())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MyStatisticResponse{
		CompletedTasks: userStats.Completed,
		InWorkTasks:    userStats.InWork,
		FailedTasks:    userStats.Failed,
	})
}
