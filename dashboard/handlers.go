package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/taskboard-go/auth"
)

// Handlers exposes the Service over HTTP behind auth.Gate.Middleware.
type Handlers struct {
	service *Service
}

func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes mounts the dashboard endpoints on r.
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Get("/metrics", h.HandleMetrics())
	r.Get("/month-metrics", h.HandleMonthMetrics())
	r.Get("/year-metrics", h.HandleYearMetrics())
}

// HandleMetrics godoc
// @Summary Task counts by status
// @Tags Dashboard
// @Produce json
// @Success 200 {object} dashboard.Counts
// @Failure 403 {object} apperror.ErrorResponse "Access denied or Unauthorized"
// @Router /dashboard/metrics [get]
// @Security BearerAuth
func (h *Handlers) HandleMetrics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := auth.RequireUser(r.Context())
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		counts, err := h.service.Counts(r.Context(), u.ID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, counts)
	}
}

// HandleMonthMetrics godoc
// @Summary Tasks created per month
// @Description Months of the given year with at least one task, in calendar order.
// @Tags Dashboard
// @Produce json
// @Param year query int false "Calendar year (default: current year)"
// @Success 200 {array} dashboard.MonthCount
// @Failure 403 {object} apperror.ErrorResponse "Access denied or Unauthorized"
// @Router /dashboard/month-metrics [get]
// @Security BearerAuth
func (h *Handlers) HandleMonthMetrics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := auth.RequireUser(r.Context())
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		year := h.service.Year(r.URL.Query().Get("year"))
		months, err := h.service.ByMonth(r.Context(), u.ID, year)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, months)
	}
}

// HandleYearMetrics godoc
// @Summary Tasks created in a year
// @Tags Dashboard
// @Produce json
// @Param year query int false "Calendar year (default: current year)"
// @Success 200 {object} dashboard.YearCount
// @Failure 403 {object} apperror.ErrorResponse "Access denied or Unauthorized"
// @Router /dashboard/year-metrics [get]
// @Security BearerAuth
func (h *Handlers) HandleYearMetrics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := auth.RequireUser(r.Context())
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		year := h.service.Year(r.URL.Query().Get("year"))
		total, err := h.service.ByYear(r.Context(), u.ID, year)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, total)
	}
}
