package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/taskdel-api/internal/api"
	apiMiddleware "github.com/phrazzld/taskdel-api/internal/api/middleware"
	"github.com/phrazzld/taskdel-api/internal/api/shared"
)

// serviceVersion is reported by the root info endpoint.
const serviceVersion = "1.0.0"

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	// Create API handlers using the application's services
	taskHandler := api.NewTaskHandler(app.taskStore, app.logger)
	userHandler := api.NewUserHandler(app.directory, app.logger)
	statsHandler := api.NewStatsHandler(app.stats, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.directory, app.logger)

	// Register routes
	r.Route("/task-api", func(r chi.Router) {
		// Public endpoints
		r.Get("/globalStatistic", statsHandler.GetGlobalStatistic)

		// Protected routes: every request carries Basic credentials
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Profile endpoints
			r.Get("/myProfile", userHandler.GetMyProfile)
			r.Put("/updateUser", userHandler.UpdateUser)

			// Statistics endpoints
			r.Get("/myStatistic", statsHandler.GetMyStatistic)

			// Task endpoints
			r.Post("/createTask", taskHandler.CreateTask)
			r.Get("/delegatedTasks", taskHandler.ListDelegatedTasks)
			r.Put("/delegatedTasks/{taskId}", taskHandler.UpdateDelegatedTask)
			r.Delete("/delegatedTasks/{taskId}", taskHandler.DeleteDelegatedTask)
			r.Get("/myTasks", taskHandler.ListMyTasks)
			r.Put("/myTasks/{taskId}", taskHandler.CompleteMyTask)
		})
	})

	// Root info endpoint
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, api.ServiceInfoResponse{
			Message: "Task Management API",
			Version: serviceVersion,
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
