package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"tableside/report-svc/internal/domain"
)

// PostgresHistory computes the same totals straight from the order tables. Paid
// orders are bucketed by updated_at, the moment they were settled.
type PostgresHistory struct {
	DB *sql.DB
}

func NewPostgresHistory(db *sql.DB) *PostgresHistory {
	return &PostgresHistory{DB: db}
}

const (
	salesQuery = `
		SELECT COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE status = 'paid' AND updated_at >= $1 AND updated_at < $2`

	itemsQuery = `
		SELECT l.name, SUM(l.quantity), SUM(l.quantity * l.unit_price)
		FROM order_lines l
		JOIN orders o ON o.id = l.order_id
		WHERE o.status = 'paid' AND o.updated_at >= $1 AND o.updated_at < $2
		GROUP BY l.name`

	hourlyQuery = `
		SELECT EXTRACT(HOUR FROM updated_at AT TIME ZONE 'UTC')::int, COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE status = 'paid' AND updated_at >= $1 AND updated_at < $2
		GROUP BY 1`

	ratingsQuery = `
		SELECT rating, COUNT(*)
		FROM feedback
		WHERE created_at >= $1 AND created_at < $2
		GROUP BY rating`
)

func (s *PostgresHistory) SummarizeRange(ctx context.Context, from, to time.Time) (*domain.Totals, error) {
	totals := domain.NewTotals()

	var (
		orders  int
		revenue decimal.Decimal
	)
	if err := s.DB.QueryRowContext(ctx, salesQuery, from, to).Scan(&orders, &revenue); err != nil {
		return nil, fmt.Errorf("query sales: %w", err)
	}
	totals.AddSales(revenue, orders)

	err := s.each(ctx, itemsQuery, from, to, func(rows *sql.Rows) error {
		var (
			name     string
			quantity int
			amount   decimal.Decimal
		)
		if err := rows.Scan(&name, &quantity, &amount); err != nil {
			return err
		}
		totals.AddItem(name, quantity, amount)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query popular items: %w", err)
	}

	err = s.each(ctx, hourlyQuery, from, to, func(rows *sql.Rows) error {
		var (
			hour, count int
			amount      decimal.Decimal
		)
		if err := rows.Scan(&hour, &count, &amount); err != nil {
			return err
		}
		totals.AddHour(hour, count, amount)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query hourly stats: %w", err)
	}

	err = s.each(ctx, ratingsQuery, from, to, func(rows *sql.Rows) error {
		var rating, count int
		if err := rows.Scan(&rating, &count); err != nil {
			return err
		}
		totals.AddRating(rating, count)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query ratings: %w", err)
	}
	return totals, nil
}

func (s *PostgresHistory) each(ctx context.Context, query string, from, to time.Time, scan func(*sql.Rows) error) error {
	rows, err := s.DB.QueryContext(ctx, query, from, to)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}
