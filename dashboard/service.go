package dashboard

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/user/taskboard-go/apperror"
)

// MonthCount is one entry of the month-metrics chart.
type MonthCount struct {
	Month string `json:"month" example:"January"`
	Tasks int    `json:"tasks" example:"4"`
}

// YearCount is the body of the year-metrics endpoint.
type YearCount struct {
	Year  int `json:"year" example:"2024"`
	Tasks int `json:"tasks" example:"31"`
}

// Service computes the dashboard metrics for one owner.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates a Service. A nil now uses time.Now.
func NewService(store Store, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: store, now: now}
}

// Years outside this range fall back to the current year.
const (
	minYear = 1
	maxYear = 9999
)

// Year parses a year query value, falling back to the current UTC year when raw is
// empty, not a whole number or outside minYear..maxYear. Surrounding whitespace and
// a zero fraction ("2024.0") are accepted.
func (s *Service) Year(raw string) int {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err == nil && f == math.Trunc(f) && f >= minYear && f <= maxYear {
		return int(f)
	}
	return s.now().UTC().Year()
}

func (s *Service) Counts(ctx context.Context, owner string) (*Counts, error) {
	c, err := s.store.Counts(ctx, owner)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to count tasks", err)
	}
	return &c, nil
}

// ByMonth returns the months of year in which owner created tasks, labelled with the
// English month name.
func (s *Service) ByMonth(ctx context.Context, owner string, year int) ([]MonthCount, error) {
	buckets, err := s.store.CountByMonth(ctx, owner, year)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to count tasks by month", err)
	}

	result := make([]MonthCount, 0, len(buckets))
	for _, b := range buckets {
		result = append(result, MonthCount{Month: time.Month(b.Month).String(), Tasks: b.Tasks})
	}
	return result, nil
}

func (s *Service) ByYear(ctx context.Context, owner string, year int) (*YearCount, error) {
	n, err := s.store.CountByYear(ctx, owner, year)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to count tasks by year", err)
	}
	return &YearCount{Year: year, Tasks: n}, nil
}
