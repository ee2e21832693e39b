package domain

import (
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidPeriod = errors.New("invalid report period")

type Period string

const (
	PeriodToday   Period = "today"
	PeriodWeek    Period = "week"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

var periodDays = map[Period]int{
	PeriodToday:   1,
	PeriodWeek:    7,
	PeriodMonth:   30,
	PeriodQuarter: 90,
	PeriodYear:    365,
}

// ParsePeriod accepts the period names above. An empty string means today.
func ParsePeriod(raw string) (Period, error) {
	if raw == "" {
		return PeriodToday, nil
	}
	p := Period(raw)
	if _, ok := periodDays[p]; !ok {
		return "", ErrInvalidPeriod
	}
	return p, nil
}

// Range returns the UTC days covered by the period ending on now, oldest first,
// and the half-open time window [from, to) spanning them.
func (p Period) Range(now time.Time) (days []string, from, to time.Time) {
	n := periodDays[p]
	end := now.UTC().Truncate(24 * time.Hour)
	from = end.AddDate(0, 0, -(n - 1))
	to = end.AddDate(0, 0, 1)
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(time.DateOnly))
	}
	return days, from, to
}

type PopularItem struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type HourlyStat struct {
	Hour    int             `json:"hour"`
	Orders  int             `json:"orders"`
	Revenue decimal.Decimal `json:"revenue"`
}

type Report struct {
	Period             Period          `json:"period"`
	From               string          `json:"from"`
	To                 string          `json:"to"`
	Source             string          `json:"source"`
	Revenue            decimal.Decimal `json:"revenue"`
	Orders             int             `json:"orders"`
	AvgOrderValue      decimal.Decimal `json:"avgOrderValue"`
	PopularItems       []PopularItem   `json:"popularItems"`
	HourlyStats        []HourlyStat    `json:"hourlyStats"`
	RatingDistribution map[string]int  `json:"ratingDistribution"`
}

// Totals accumulates raw aggregates from one or more days before they are
// shaped into a Report.
type Totals struct {
	Revenue decimal.Decimal
	Orders  int
	items   map[string]*PopularItem
	hours   map[int]*HourlyStat
	ratings map[int]int
}

func NewTotals() *Totals {
	return &Totals{
		items:   make(map[string]*PopularItem),
		hours:   make(map[int]*HourlyStat),
		ratings: make(map[int]int),
	}
}

func (t *Totals) AddSales(revenue decimal.Decimal, orders int) {
	t.Revenue = t.Revenue.Add(revenue)
	t.Orders += orders
}

func (t *Totals) AddItem(name string, quantity int, revenue decimal.Decimal) {
	item, ok := t.items[name]
	if !ok {
		item = &PopularItem{Name: name}
		t.items[name] = item
	}
	item.Quantity += quantity
	item.Revenue = item.Revenue.Add(revenue)
}

func (t *Totals) AddHour(hour, orders int, revenue decimal.Decimal) {
	if hour < 0 || hour > 23 {
		return
	}
	stat, ok := t.hours[hour]
	if !ok {
		stat = &HourlyStat{Hour: hour}
		t.hours[hour] = stat
	}
	stat.Orders += orders
	stat.Revenue = stat.Revenue.Add(revenue)
}

func (t *Totals) AddRating(rating, count int) {
	if rating < 1 || rating > 5 {
		return
	}
	t.ratings[rating] += count
}

// Empty reports whether nothing at all was recorded.
func (t *Totals) Empty() bool {
	return t.Orders == 0 && len(t.items) == 0 && len(t.ratings) == 0
}

// Report shapes the totals. Popular items are ordered by quantity, then revenue,
// then name, and cut to limit when limit is positive.
func (t *Totals) Report(limit int) *Report {
	r := &Report{
		Revenue:            t.Revenue.Round(2),
		Orders:             t.Orders,
		AvgOrderValue:      decimal.Zero,
		PopularItems:       make([]PopularItem, 0, len(t.items)),
		HourlyStats:        make([]HourlyStat, 0, len(t.hours)),
		RatingDistribution: make(map[string]int, 5),
	}
	if t.Orders > 0 {
		r.AvgOrderValue = t.Revenue.Div(decimal.NewFromInt(int64(t.Orders))).Round(2)
	}

	for _, item := range t.items {
		r.PopularItems = append(r.PopularItems, PopularItem{Name: item.Name, Quantity: item.Quantity, Revenue: item.Revenue.Round(2)})
	}
	sort.Slice(r.PopularItems, func(i, j int) bool {
		a, b := r.PopularItems[i], r.PopularItems[j]
		if a.Quantity != b.Quantity {
			return a.Quantity > b.Quantity
		}
		if !a.Revenue.Equal(b.Revenue) {
			return a.Revenue.GreaterThan(b.Revenue)
		}
		return a.Name < b.Name
	})
	if limit > 0 && len(r.PopularItems) > limit {
		r.PopularItems = r.PopularItems[:limit]
	}

	for _, stat := range t.hours {
		r.HourlyStats = append(r.HourlyStats, HourlyStat{Hour: stat.Hour, Orders: stat.Orders, Revenue: stat.Revenue.Round(2)})
	}
	sort.Slice(r.HourlyStats, func(i, j int) bool { return r.HourlyStats[i].Hour < r.HourlyStats[j].Hour })

	for rating := 1; rating <= 5; rating++ {
		r.RatingDistribution[strconv.Itoa(rating)] = t.ratings[rating]
	}
	return r
}
