package tasks_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/taskboard-go/auth"
	"github.com/user/taskboard-go/tasks"
	"github.com/user/taskboard-go/users"
)

// asUser stands in for auth.Gate.Middleware.
func asUser(u *users.User) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(auth.WithUser(r.Context(), u)))
		})
	}
}

func newRouter(f *fixture, u *users.User) http.Handler {
	r := chi.NewRouter()
	r.Route("/tasks", func(r chi.Router) {
		if u != nil {
			r.Use(asUser(u))
		}
		tasks.NewHandlers(f.svc).RegisterRoutes(r)
	})
	return r
}

func serve(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandlers_CreateListUpdateDelete(t *testing.T) {
	f := newFixture(t)
	h := newRouter(f, f.jane)

	rec := serve(t, h, http.MethodPost, "/tasks/create-task", `{"title":"Buy milk","dueDate":"2024-06-01"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var created map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Buy milk", created["title"])
	assert.Equal(t, "2024-06-01", created["dueDate"])
	assert.Equal(t, "pending", created["status"])
	assert.NotContains(t, created, "userId")
	assert.NotContains(t, created, "createdAt")
	id := created["id"].(string)

	rec = serve(t, h, http.MethodGet, "/tasks?page=abc&limit=0", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list tasks.ListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Pagination.Page)
	assert.Equal(t, 10, list.Pagination.Limit)
	require.Len(t, list.Tasks, 1)
	assert.Equal(t, id, list.Tasks[0].ID)

	rec = serve(t, h, http.MethodPatch, "/tasks/update-task", `{"id":"`+id+`","status":"completed"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "completed", updated["status"])
	assert.Nil(t, updated["dueDate"])
	assert.NotContains(t, updated, "userId")

	rec = serve(t, h, http.MethodDelete, "/tasks/delete-task/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var deleted map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &deleted))
	assert.Equal(t, id, deleted["id"])
	assert.Equal(t, f.jane.ID, deleted["userId"])

	rec = serve(t, h, http.MethodDelete, "/tasks/delete-task/"+id, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Cannot find task."}`, rec.Body.String())
}

func TestHandlers_DeleteWithBodyID(t *testing.T) {
	f := newFixture(t)
	h := newRouter(f, f.jane)
	id := f.create(t, f.jane.ID, "task").ID

	rec := serve(t, h, http.MethodDelete, "/tasks/delete-task", `{"id":"`+id+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = serve(t, h, http.MethodDelete, "/tasks/delete-task", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlers_BadInput(t *testing.T) {
	f := newFixture(t)
	h := newRouter(f, f.jane)

	rec := serve(t, h, http.MethodPost, "/tasks/create-task", `{"title":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, h, http.MethodPost, "/tasks/create-task", `{"title":"  "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, h, http.MethodPatch, "/tasks/update-task", `{"id":"x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlers_WithoutUserIsDenied(t *testing.T) {
	f := newFixture(t)
	h := newRouter(f, nil)

	rec := serve(t, h, http.MethodGet, "/tasks", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"Access denied"}`, rec.Body.String())
}
