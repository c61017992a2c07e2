// Package dashboard serves aggregate metrics over a user's tasks: counts per status and
// task creation counts per calendar month and year. Calendar buckets are computed in UTC.
package dashboard

import "context"

// Counts holds the number of tasks in each status. Total always equals the sum of the
// other three.
type Counts struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Hold      int `json:"hold"`
	Completed int `json:"completed"`
}

// MonthBucket is the number of tasks created in one calendar month (1-12).
type MonthBucket struct {
	Month int
	Tasks int
}

// Store runs the read-only aggregate queries. Implementations: PostgresStore and
// memstore.Store.
type Store interface {
	Counts(ctx context.Context, owner string) (Counts, error)
	// CountByMonth returns the months of year with at least one task created, in
	// ascending month order.
	CountByMonth(ctx context.Context, owner string, year int) ([]MonthBucket, error)
	CountByYear(ctx context.Context, owner string, year int) (int, error)
}
