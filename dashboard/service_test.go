package dashboard_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/taskboard-go/auth"
	"github.com/user/taskboard-go/dashboard"
	"github.com/user/taskboard-go/memstore"
	"github.com/user/taskboard-go/tasks"
	"github.com/user/taskboard-go/users"
)

var fixedNow = time.Date(2024, 8, 15, 12, 0, 0, 0, time.UTC)

func seed(t *testing.T) (*memstore.Store, *users.User) {
	t.Helper()
	store := memstore.New()
	ctx := context.Background()

	u := &users.User{Name: "Jane", Email: "jane@example.com", PasswordHash: "x"}
	require.NoError(t, store.Users().Create(ctx, u))

	add := func(created time.Time, status tasks.Status) {
		require.NoError(t, store.Tasks().Create(ctx, &tasks.Task{Title: "t", Status: status, UserID: u.ID, CreatedAt: created}))
	}
	add(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), tasks.StatusPending)
	add(time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC), tasks.StatusCompleted)
	add(time.Date(2024, 9, 9, 0, 0, 0, 0, time.UTC), tasks.StatusHold)
	add(time.Date(2022, 5, 5, 0, 0, 0, 0, time.UTC), tasks.StatusCompleted)
	return store, u
}

func TestService_Metrics(t *testing.T) {
	store, u := seed(t)
	svc := dashboard.NewService(store.Metrics(), func() time.Time { return fixedNow })
	ctx := context.Background()

	counts, err := svc.Counts(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, &dashboard.Counts{Total: 4, Pending: 1, Hold: 1, Completed: 2}, counts)
	assert.Equal(t, counts.Total, counts.Pending+counts.Hold+counts.Completed)

	months, err := svc.ByMonth(ctx, u.ID, 2024)
	require.NoError(t, err)
	assert.Equal(t, []dashboard.MonthCount{{Month: "January", Tasks: 2}, {Month: "September", Tasks: 1}}, months)

	empty, err := svc.ByMonth(ctx, u.ID, 1999)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	year, err := svc.ByYear(ctx, u.ID, 2022)
	require.NoError(t, err)
	assert.Equal(t, &dashboard.YearCount{Year: 2022, Tasks: 1}, year)
}

func TestService_Year(t *testing.T) {
	svc := dashboard.NewService(memstore.New().Metrics(), func() time.Time { return fixedNow })

	assert.Equal(t, 2021, svc.Year("2021"))
	assert.Equal(t, 2024, svc.Year(""))
	assert.Equal(t, 2024, svc.Year("last-year"))

	tests := map[string]int{
		" 2023 ": 2023,
		"2023.0": 2023,
		"2023.5": 2024,
		"999999": 2024,
		"-10000": 2024,
		"0":      2024,
		"NaN":    2024,
		"1e3":    1000,
		"9999":   9999,
		"+Inf":   2024,
	}
	for raw, want := range tests {
		assert.Equal(t, want, svc.Year(raw), "year %q", raw)
	}
}

func TestHandlers(t *testing.T) {
	store, u := seed(t)
	svc := dashboard.NewService(store.Metrics(), func() time.Time { return fixedNow })

	r := chi.NewRouter()
	r.Route("/dashboard", func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				next.ServeHTTP(w, req.WithContext(auth.WithUser(req.Context(), u)))
			})
		})
		dashboard.NewHandlers(svc).RegisterRoutes(r)
	})

	get := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec
	}

	rec := get("/dashboard/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total":4,"pending":1,"hold":1,"completed":2}`, rec.Body.String())

	rec = get("/dashboard/month-metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"month":"January","tasks":2},{"month":"September","tasks":1}]`, rec.Body.String())

	rec = get("/dashboard/year-metrics?year=2022")
	require.Equal(t, http.StatusOK, rec.Code)
	var yc dashboard.YearCount
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &yc))
	assert.Equal(t, dashboard.YearCount{Year: 2022, Tasks: 1}, yc)

	rec = get("/dashboard/year-metrics?year=abc")
	assert.JSONEq(t, `{"year":2024,"tasks":3}`, rec.Body.String())

	rec = get("/dashboard/year-metrics?year=999999")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"year":2024,"tasks":3}`, rec.Body.String())
}
