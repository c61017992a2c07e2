package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/user/taskboard-go/db"
)

// PostgresStore implements Store with aggregate queries over the tasks table.
type PostgresStore struct {
	db db.DBTX
}

// NewPostgresStore creates a new PostgresStore.
func NewPostgresStore(db db.DBTX) *PostgresStore {
	return &PostgresStore{db: db}
}

// yearRange returns the half-open UTC interval [Jan 1 year, Jan 1 year+1).
func yearRange(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(1, 0, 0)
}

func (s *PostgresStore) Counts(ctx context.Context, owner string) (Counts, error) {
	query := `SELECT COUNT(*),
                     COUNT(*) FILTER (WHERE status = 'pending'),
                     COUNT(*) FILTER (WHERE status = 'hold'),
                     COUNT(*) FILTER (WHERE status = 'completed')
              FROM tasks
              WHERE user_id = $1`
	var c Counts
	if err := s.db.QueryRow(ctx, query, owner).Scan(&c.Total, &c.Pending, &c.Hold, &c.Completed); err != nil {
		return Counts{}, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (s *PostgresStore) CountByMonth(ctx context.Context, owner string, year int) ([]MonthBucket, error) {
	start, end := yearRange(year)
	query := `SELECT EXTRACT(MONTH FROM created_at AT TIME ZONE 'UTC')::int AS month, COUNT(*)
              FROM tasks
              WHERE user_id = $1 AND created_at >= $2 AND created_at < $3
              GROUP BY month
              ORDER BY month`
	rows, err := s.db.Query(ctx, query, owner, start, end)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var buckets []MonthBucket
	for rows.Next() {
		var b MonthBucket
		if err := rows.Scan(&b.Month, &b.Tasks); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		buckets = append(buckets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return buckets, nil
}

func (s *PostgresStore) CountByYear(ctx context.Context, owner string, year int) (int, error) {
	start, end := yearRange(year)
	query := `SELECT COUNT(*) FROM tasks WHERE user_id = $1 AND created_at >= $2 AND created_at < $3`
	var n int
	if err := s.db.QueryRow(ctx, query, owner, start, end).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
