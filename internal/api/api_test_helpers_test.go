package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	apiMiddleware "github.com/phrazzld/taskdel-api/internal/api/middleware"
	"github.com/phrazzld/taskdel-api/internal/domain"
	"github.com/phrazzld/taskdel-api/internal/mocks"
	"github.com/phrazzld/taskdel-api/internal/platform/memory"
	"github.com/phrazzld/taskdel-api/internal/service/stats"
)

// testEnv wires real in-memory stores behind the production route layout so
// handler tests exercise the same middleware chain as the server.
type testEnv struct {
	directory *memory.Directory
	tasks     *memory.TaskStore
	router    http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	roster := []domain.User{
		{ID: 1, Name: "Нурбай", Login: "UserNyrbai", HashedPassword: "plain:111", Ava: "ava-1"},
		{ID: 2, Name: "Роман", Login: "UserRoman", HashedPassword: "plain:222", Ava: "ava-2"},
		{ID: 3, Name: "Влад", Login: "UserVlad", HashedPassword: "plain:333", Ava: "ava-3"},
	}
	directory, err := memory.NewDirectory(roster, mocks.PlainVerifier{})
	require.NoError(t, err)

	tasks := memory.NewTaskStore(directory)
	statsService := stats.NewService(tasks, directory)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	taskHandler := NewTaskHandler(tasks, logger)
	userHandler := NewUserHandler(directory, logger)
	statsHandler := NewStatsHandler(statsService, logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(directory, logger)

	r := chi.NewRouter()
	r.Use(apiMiddleware.TraceMiddleware)
	r.Route("/task-api", func(r chi.Router) {
		r.Get("/globalStatistic", statsHandler.GetGlobalStatistic)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/myProfile", userHandler.GetMyProfile)
			r.Put("/updateUser", userHandler.UpdateUser)
			r.Get("/myStatistic", statsHandler.GetMyStatistic)
			r.Post("/createTask", taskHandler.CreateTask)
			r.Get("/delegatedTasks", taskHandler.ListDelegatedTasks)
			r.Put("/delegatedTasks/{taskId}", taskHandler.UpdateDelegatedTask)
			r.Delete("/delegatedTasks/{taskId}", taskHandler.DeleteDelegatedTask)
			r.Get("/myTasks", taskHandler.ListMyTasks)
			r.Put("/myTasks/{taskId}", taskHandler.CompleteMyTask)
		})
	})

	return &testEnv{
		directory: directory,
		tasks:     tasks,
		router:    r,
	}
}

// do performs a request against the test router. A non-empty login adds
// Basic credentials; a nil body sends no payload.
func (e *testEnv) do(t *testing.T, method, target, login, password string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if login != "" {
		req.SetBasicAuth(login, password)
	}

	recorder := httptest.NewRecorder()
	e.router.ServeHTTP(recorder, req)
	return recorder
}

// createTask creates a task through the API as the given user and returns
// the decoded response.
func (e *testEnv) createTask(t *testing.T, login, password string, performer int64, deadline domain.Date) TaskResponse {
	t.Helper()

	recorder := e.do(t, http.MethodPost, "/task-api/createTask", login, password, map[string]interface{}{
		"title":       "report",
		"description": "write the report",
		"deadline":    deadline.String(),
		"performer":   performer,
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var task TaskResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &task))
	return task
}

func decodeJSON[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &v))
	return v
}
