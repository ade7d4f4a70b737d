package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/taskdel-api/internal/api/shared"
	"github.com/phrazzld/taskdel-api/internal/redact"
	"github.com/phrazzld/taskdel-api/internal/store"
)

// BasicAuthRealm is the realm presented in the WWW-Authenticate challenge.
const BasicAuthRealm = "task-api"

// AuthMiddleware provides per-request HTTP Basic authentication against the
// user directory. There is no session or token state: every request carries
// the full credential pair and is resolved independently.
type AuthMiddleware struct {
	directory store.UserDirectory
	logger    *slog.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(directory store.UserDirectory, logger *slog.Logger) *AuthMiddleware {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AuthMiddleware")
	}

	return &AuthMiddleware{
		directory: directory,
		logger:    logger.With(slog.String("component", "auth_middleware")),
	}
}

// Authenticate resolves the request's Basic credentials to a roster identity
// and adds the caller's user ID to the request context. Every failure mode
// answers 401 with the same body and a Basic challenge, so a client cannot
// distinguish an unknown login from a wrong password.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		login, password, ok := r.BasicAuth()
		if !ok {
			m.challenge(w, r, "Authorization required")
			return
		}

		callerID, err := m.directory.Authenticate(r.Context(), login, password)
		if err != nil {
			if errors.Is(err, store.ErrInvalidCredentials) {
				m.challenge(w, r, "Invalid credentials")
				return
			}
			m.logger.Error("failed to authenticate request", "error", redact.Error(err))
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			return
		}

		ctx := shared.SetCallerID(r.Context(), callerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// challenge answers 401 with a Basic challenge header.
func (m *AuthMiddleware) challenge(w http.ResponseWriter, r *http.Request, message string) {
	w.Header().Set("WWW-Authenticate", `Basic realm="`+BasicAuthRealm+`"`)
	shared.RespondWithError(w, r, http.StatusUnauthorized, message)
}
