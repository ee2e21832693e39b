package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"tableside/report-svc/internal/domain"
	"tableside/sales"
)

// RedisAggregates reads the per-day sales aggregates maintained by agg-svc.
type RedisAggregates struct {
	rdb *redis.Client
}

func NewRedisAggregates(rdb *redis.Client) *RedisAggregates {
	return &RedisAggregates{rdb: rdb}
}

type dayCmds struct {
	revenue       *redis.StringCmd
	orders        *redis.StringCmd
	hourlyOrders  *redis.MapStringStringCmd
	hourlyRevenue *redis.MapStringStringCmd
	quantity      *redis.ZSliceCmd
	itemRevenue   *redis.ZSliceCmd
	ratings       *redis.MapStringStringCmd
}

// SummarizeDays sums the aggregates of the given days in a single round trip.
// Days with no keys contribute nothing.
func (s *RedisAggregates) SummarizeDays(ctx context.Context, days []string) (*domain.Totals, error) {
	pipe := s.rdb.Pipeline()
	cmds := make([]dayCmds, len(days))
	for i, day := range days {
		cmds[i] = dayCmds{
			revenue:       pipe.Get(ctx, sales.RevenueKey(day)),
			orders:        pipe.Get(ctx, sales.OrdersKey(day)),
			hourlyOrders:  pipe.HGetAll(ctx, sales.HourlyOrdersKey(day)),
			hourlyRevenue: pipe.HGetAll(ctx, sales.HourlyRevenueKey(day)),
			quantity:      pipe.ZRangeWithScores(ctx, sales.PopularQuantityKey(day), 0, -1),
			itemRevenue:   pipe.ZRangeWithScores(ctx, sales.PopularRevenueKey(day), 0, -1),
			ratings:       pipe.HGetAll(ctx, sales.RatingsKey(day)),
		}
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("read sales aggregates: %w", err)
	}

	totals := domain.NewTotals()
	for _, c := range cmds {
		revenue, err := decimalValue(c.revenue)
		if err != nil {
			return nil, err
		}
		orders, err := intValue(c.orders)
		if err != nil {
			return nil, err
		}
		totals.AddSales(revenue, orders)

		hourRevenue := c.hourlyRevenue.Val()
		for hour, count := range c.hourlyOrders.Val() {
			h, err := strconv.Atoi(hour)
			if err != nil {
				continue
			}
			n, _ := strconv.Atoi(count)
			amount, _ := decimal.NewFromString(hourRevenue[hour])
			totals.AddHour(h, n, amount)
		}

		itemRevenue := make(map[string]float64, len(c.itemRevenue.Val()))
		for _, z := range c.itemRevenue.Val() {
			itemRevenue[z.Member.(string)] = z.Score
		}
		for _, z := range c.quantity.Val() {
			name := z.Member.(string)
			totals.AddItem(name, int(z.Score), decimal.NewFromFloat(itemRevenue[name]))
		}

		for rating, count := range c.ratings.Val() {
			r, err := strconv.Atoi(rating)
			if err != nil {
				continue
			}
			n, _ := strconv.Atoi(count)
			totals.AddRating(r, n)
		}
	}
	return totals, nil
}

func decimalValue(cmd *redis.StringCmd) (decimal.Decimal, error) {
	raw, err := cmd.Result()
	if errors.Is(err, redis.Nil) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, err
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse %s: %w", cmd.Args()[1], err)
	}
	return d, nil
}

func intValue(cmd *redis.StringCmd) (int, error) {
	n, err := cmd.Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}
