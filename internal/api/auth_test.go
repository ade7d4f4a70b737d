package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every credentialed route must answer a bad secret with 401 and a Basic
// challenge, never leaking whether the resource exists.
func TestProtectedEndpointsRejectBadCredentials(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	routes := []struct {
		method string
		path   string
		body   interface{}
	}{
		{http.MethodGet, "/task-api/myProfile", nil},
		{http.MethodPut, "/task-api/updateUser", map[string]interface{}{"name": "x"}},
		{http.MethodGet, "/task-api/myStatistic", nil},
		{http.MethodPost, "/task-api/createTask", map[string]interface{}{"performer": 2}},
		{http.MethodGet, "/task-api/delegatedTasks", nil},
		{http.MethodPut, "/task-api/delegatedTasks/1", map[string]interface{}{"title": "x"}},
		{http.MethodDelete, "/task-api/delegatedTasks/1", nil},
		{http.MethodGet, "/task-api/myTasks", nil},
		{http.MethodPut, "/task-api/myTasks/1", map[string]interface{}{"result": "x"}},
	}

	for _, route := range routes {
		route := route
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			t.Parallel()

			t.Run("wrong password", func(t *testing.T) {
				recorder := env.do(t, route.method, route.path, "UserNyrbai", "wrong", route.body)
				assert.Equal(t, http.StatusUnauthorized, recorder.Code)
				assert.Contains(t, recorder.Header().Get("WWW-Authenticate"), "Basic")
			})

			t.Run("unknown login", func(t *testing.T) {
				recorder := env.do(t, route.method, route.path, "nobody", "111", route.body)
				assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			})

			t.Run("no credentials", func(t *testing.T) {
				recorder := env.do(t, route.method, route.path, "", "", route.body)
				assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			})
		})
	}
}

func TestUnauthorizedBeatsNotFound(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	// The task does not exist either, yet credentials are checked first.
	recorder := env.do(t, http.MethodDelete, "/task-api/delegatedTasks/9999", "UserNyrbai", "wrong", nil)
	require.Equal(t, http.StatusUnauthorized, recorder.Code)
}
