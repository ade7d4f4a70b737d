package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/taskdel-api/internal/api/shared"
	"github.com/phrazzld/taskdel-api/internal/redact"
	"github.com/phrazzld/taskdel-api/internal/store"
)

// UserHandler handles profile-related HTTP requests.
type UserHandler struct {
	directory store.UserDirectory
	logger    *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(directory store.UserDirectory, logger *slog.Logger) *UserHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for UserHandler")
	}

	return &UserHandler{
		directory: directory,
		logger:    logger.With(slog.String("component", "user_handler")),
	}
}

// GetMyProfile handles GET /task-api/myProfile requests.
// It returns the caller's name and avatar.
func (h *UserHandler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	callerID, ok := getCallerID(w, r)
	if !ok {
		return
	}

	user, err := h.directory.GetByID(r.Context(), callerID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UserProfileResponse{
		Name: user.Name,
		Ava:  user.Ava,
	})
}

// UpdateUser handles PUT /task-api/updateUser requests.
// Partial update: only fields present in the body are applied, so a request
// carrying just {"ava": ...} leaves the name untouched. Callers may only
// ever update their own profile.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	callerID, ok := getCallerID(w, r)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("invalid request format",
			slog.String("error", redact.Error(err)),
			slog.Int64("caller_id", callerID))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := h.directory.UpdateProfile(r.Context(), callerID, store.ProfileUpdate{
		Name: req.Name,
		Ava:  req.Ava,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.logger.Debug("profile updated", slog.Int64("user_id", callerID))
	shared.RespondWithJSON(w, r, http.StatusOK, UserProfileResponse{
		Name: user.Name,
		Ava:  user.Ava,
	})
}
