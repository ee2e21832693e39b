// Package sales names the Redis aggregates written by agg-svc and read by report-svc.
package sales

import (
	"strconv"
	"time"
)

// TTL is how long a day's aggregates are kept.
const TTL = 400 * 24 * time.Hour

// Day buckets are UTC calendar days.
func Day(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

func Hour(t time.Time) string {
	return strconv.Itoa(t.UTC().Hour())
}

func RevenueKey(day string) string { return "sales:" + day + ":revenue" }

func OrdersKey(day string) string { return "sales:" + day + ":orders" }

// HourlyOrdersKey and HourlyRevenueKey are hashes keyed by hour of day (0-23).
func HourlyOrdersKey(day string) string { return "sales:" + day + ":hourly:orders" }

func HourlyRevenueKey(day string) string { return "sales:" + day + ":hourly:revenue" }

// PopularQuantityKey and PopularRevenueKey are sorted sets of item names.
func PopularQuantityKey(day string) string { return "sales:" + day + ":popular:quantity" }

func PopularRevenueKey(day string) string { return "sales:" + day + ":popular:revenue" }

// RatingsKey is a hash of rating (1-5) to count.
func RatingsKey(day string) string { return "ratings:" + day }

func ProcessedKey(orderID string) string { return "sales:processed:" + orderID }
