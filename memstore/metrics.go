package memstore

import (
	"context"

	"github.com/user/taskboard-go/dashboard"
	"github.com/user/taskboard-go/tasks"
)

// MetricsStore is the dashboard.Store view of a Store. Calendar buckets use UTC.
type MetricsStore struct {
	s *Store
}

func (v *MetricsStore) Counts(_ context.Context, owner string) (dashboard.Counts, error) {
	s := v.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	var c dashboard.Counts
	for _, t := range s.owned(owner) {
		c.Total++
		switch t.Status {
		case tasks.StatusPending:
			c.Pending++
		case tasks.StatusHold:
			c.Hold++
		case tasks.StatusCompleted:
			c.Completed++
		}
	}
	return c, nil
}

func (v *MetricsStore) CountByMonth(_ context.Context, owner string, year int) ([]dashboard.MonthBucket, error) {
	s := v.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	var perMonth [13]int
	for _, t := range s.owned(owner) {
		created := t.CreatedAt.UTC()
		if created.Year() == year {
			perMonth[created.Month()]++
		}
	}

	var buckets []dashboard.MonthBucket
	for m := 1; m <= 12; m++ {
		if perMonth[m] > 0 {
			buckets = append(buckets, dashboard.MonthBucket{Month: m, Tasks: perMonth[m]})
		}
	}
	return buckets, nil
}

func (v *MetricsStore) CountByYear(_ context.Context, owner string, year int) (int, error) {
	s := v.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, t := range s.owned(owner) {
		if t.CreatedAt.UTC().Year() == year {
			n++
		}
	}
	return n, nil
}
