package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"tableside/agg-svc/internal/domain"
	"tableside/sales"
)

type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb, ttl: sales.TTL}
}

// RecordSale folds a paid order into the aggregates of its day. An order that was
// already recorded is skipped and reported as false. When the aggregate write fails
// the processed marker is released so a redelivery records the sale.
func (s *Store) RecordSale(ctx context.Context, ev domain.Event) (bool, error) {
	var marker string
	if ev.OrderID != "" {
		marker = sales.ProcessedKey(ev.OrderID)
		fresh, err := s.rdb.SetNX(ctx, marker, 1, s.ttl).Result()
		if err != nil {
			return false, err
		}
		if !fresh {
			return false, nil
		}
	}

	at := ev.At()
	day, hour := sales.Day(at), sales.Hour(at)
	revenue := ev.TotalAmount.InexactFloat64()

	keys := []string{
		sales.RevenueKey(day),
		sales.OrdersKey(day),
		sales.HourlyOrdersKey(day),
		sales.HourlyRevenueKey(day),
		sales.PopularQuantityKey(day),
		sales.PopularRevenueKey(day),
	}
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.IncrByFloat(ctx, sales.RevenueKey(day), revenue)
		pipe.Incr(ctx, sales.OrdersKey(day))
		pipe.HIncrBy(ctx, sales.HourlyOrdersKey(day), hour, 1)
		pipe.HIncrByFloat(ctx, sales.HourlyRevenueKey(day), hour, revenue)
		for _, item := range ev.Items {
			if item.Name == "" || item.Quantity < 1 {
				continue
			}
			pipe.ZIncrBy(ctx, sales.PopularQuantityKey(day), float64(item.Quantity), item.Name)
			pipe.ZIncrBy(ctx, sales.PopularRevenueKey(day), item.LineTotal.InexactFloat64(), item.Name)
		}
		for _, key := range keys {
			pipe.Expire(ctx, key, s.ttl)
		}
		return nil
	})
	if err != nil {
		if marker != "" {
			if delErr := s.rdb.Del(ctx, marker).Err(); delErr != nil {
				err = errors.Join(err, fmt.Errorf("release marker: %w", delErr))
			}
		}
		return false, fmt.Errorf("record sale %s: %w", ev.OrderID, err)
	}
	return true, nil
}

func (s *Store) RecordRating(ctx context.Context, ev domain.Event) error {
	key := sales.RatingsKey(sales.Day(ev.At()))
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, key, strconv.Itoa(ev.Rating), 1)
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	return err
}
