package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableside/report-svc/internal/storage"
	"tableside/sales"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return mr, rdb
}

func seedDay(t *testing.T, rdb *redis.Client, day string, revenue string, orders int) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, rdb.Set(ctx, sales.RevenueKey(day), revenue, 0).Err())
	require.NoError(t, rdb.Set(ctx, sales.OrdersKey(day), orders, 0).Err())
}

func TestRedisAggregates_SummarizeDays(t *testing.T) {
	ctx := context.Background()
	_, rdb := setupRedis(t)

	seedDay(t, rdb, "2024-05-01", "250", 1)
	require.NoError(t, rdb.HSet(ctx, sales.HourlyOrdersKey("2024-05-01"), "19", 1).Err())
	require.NoError(t, rdb.HSet(ctx, sales.HourlyRevenueKey("2024-05-01"), "19", "250").Err())
	require.NoError(t, rdb.ZAdd(ctx, sales.PopularQuantityKey("2024-05-01"),
		redis.Z{Score: 2, Member: "Paneer Tikka"}, redis.Z{Score: 1, Member: "Lassi"}).Err())
	require.NoError(t, rdb.ZAdd(ctx, sales.PopularRevenueKey("2024-05-01"),
		redis.Z{Score: 200, Member: "Paneer Tikka"}, redis.Z{Score: 50, Member: "Lassi"}).Err())
	require.NoError(t, rdb.HSet(ctx, sales.RatingsKey("2024-05-01"), "5", 2).Err())

	seedDay(t, rdb, "2024-05-02", "99.5", 1)
	require.NoError(t, rdb.HSet(ctx, sales.HourlyOrdersKey("2024-05-02"), "19", 1).Err())
	require.NoError(t, rdb.HSet(ctx, sales.HourlyRevenueKey("2024-05-02"), "19", "99.5").Err())
	require.NoError(t, rdb.ZAdd(ctx, sales.PopularQuantityKey("2024-05-02"), redis.Z{Score: 3, Member: "Lassi"}).Err())
	require.NoError(t, rdb.ZAdd(ctx, sales.PopularRevenueKey("2024-05-02"), redis.Z{Score: 99.5, Member: "Lassi"}).Err())
	require.NoError(t, rdb.HSet(ctx, sales.RatingsKey("2024-05-02"), "3", 1).Err())

	totals, err := storage.NewRedisAggregates(rdb).SummarizeDays(ctx, []string{"2024-04-30", "2024-05-01", "2024-05-02"})
	require.NoError(t, err)
	require.False(t, totals.Empty())

	report := totals.Report(10)
	assert.True(t, report.Revenue.Equal(decimal.RequireFromString("349.5")))
	assert.Equal(t, 2, report.Orders)
	require.Len(t, report.PopularItems, 2)
	assert.Equal(t, "Lassi", report.PopularItems[0].Name)
	assert.Equal(t, 4, report.PopularItems[0].Quantity)
	assert.True(t, report.PopularItems[0].Revenue.Equal(decimal.RequireFromString("149.5")))
	require.Len(t, report.HourlyStats, 1)
	assert.Equal(t, 2, report.HourlyStats[0].Orders)
	assert.Equal(t, map[string]int{"1": 0, "2": 0, "3": 1, "4": 0, "5": 2}, report.RatingDistribution)
}

func TestRedisAggregates_NoData(t *testing.T) {
	_, rdb := setupRedis(t)

	totals, err := storage.NewRedisAggregates(rdb).SummarizeDays(context.Background(), []string{"2024-05-01"})
	require.NoError(t, err)
	assert.True(t, totals.Empty())
}

func TestRedisAggregates_Errors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*miniredis.Miniredis, *redis.Client)
	}{
		{
			name: "corrupt_revenue",
			setup: func(mr *miniredis.Miniredis, rdb *redis.Client) {
				mr.Set(sales.RevenueKey("2024-05-01"), "lots")
			},
		},
		{
			name: "redis_down",
			setup: func(mr *miniredis.Miniredis, rdb *redis.Client) {
				mr.Close()
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mr, rdb := setupRedis(t)
			testCase.setup(mr, rdb)

			_, err := storage.NewRedisAggregates(rdb).SummarizeDays(context.Background(), []string{"2024-05-01"})
			assert.Error(t, err)
		})
	}
}

func TestPostgresHistory_SummarizeRange(t *testing.T) {
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	tests := []struct {
		name      string
		setupMock func(sqlmock.Sqlmock)
		wantErr   bool
	}{
		{
			name: "success",
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(`SELECT COUNT\(\*\), COALESCE`).WithArgs(from, to).
					WillReturnRows(sqlmock.NewRows([]string{"count", "sum"}).AddRow(2, "349.50"))
				m.ExpectQuery(`FROM order_lines l`).WithArgs(from, to).
					WillReturnRows(sqlmock.NewRows([]string{"name", "quantity", "revenue"}).
						AddRow("Lassi", 4, "149.50").
						AddRow("Paneer Tikka", 2, "200.00"))
				m.ExpectQuery(`EXTRACT\(HOUR`).WithArgs(from, to).
					WillReturnRows(sqlmock.NewRows([]string{"hour", "count", "sum"}).AddRow(19, 2, "349.50"))
				m.ExpectQuery(`FROM feedback`).WithArgs(from, to).
					WillReturnRows(sqlmock.NewRows([]string{"rating", "count"}).AddRow(5, 2).AddRow(3, 1))
			},
		},
		{
			name: "sales_query_fails",
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(`SELECT COUNT\(\*\), COALESCE`).WithArgs(from, to).WillReturnError(errors.New("db down"))
			},
			wantErr: true,
		},
		{
			name: "ratings_query_fails",
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(`SELECT COUNT\(\*\), COALESCE`).WithArgs(from, to).
					WillReturnRows(sqlmock.NewRows([]string{"count", "sum"}).AddRow(0, "0"))
				m.ExpectQuery(`FROM order_lines l`).WithArgs(from, to).
					WillReturnRows(sqlmock.NewRows([]string{"name", "quantity", "revenue"}))
				m.ExpectQuery(`EXTRACT\(HOUR`).WithArgs(from, to).
					WillReturnRows(sqlmock.NewRows([]string{"hour", "count", "sum"}))
				m.ExpectQuery(`FROM feedback`).WithArgs(from, to).WillReturnError(errors.New("relation does not exist"))
			},
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			db, m, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			testCase.setupMock(m)

			totals, err := storage.NewPostgresHistory(db).SummarizeRange(context.Background(), from, to)

			if testCase.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				report := totals.Report(10)
				assert.Equal(t, 2, report.Orders)
				assert.True(t, report.Revenue.Equal(decimal.RequireFromString("349.50")))
				assert.Equal(t, "Lassi", report.PopularItems[0].Name)
				assert.Equal(t, 19, report.HourlyStats[0].Hour)
				assert.Equal(t, 2, report.RatingDistribution["5"])
				assert.Equal(t, 1, report.RatingDistribution["3"])
			}
			assert.NoError(t, m.ExpectationsWereMet())
		})
	}
}
