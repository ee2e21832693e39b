package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventOrderPaid   = "order_paid"
	EventNewFeedback = "new_feedback"
)

// Event is one message from the restaurant event topic. Only the fields the
// aggregates need are decoded.
type Event struct {
	Type        string          `json:"type"`
	OrderID     string          `json:"order_id"`
	TableNumber int             `json:"table"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Items       []EventItem     `json:"items"`
	Rating      int             `json:"rating"`
	Timestamp   time.Time       `json:"timestamp"`
}

type EventItem struct {
	MenuItemID string          `json:"menu_item_id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	LineTotal  decimal.Decimal `json:"line_total"`
}

// At returns the event time, or now when the producer left it empty.
func (e Event) At() time.Time {
	if e.Timestamp.IsZero() {
		return time.Now()
	}
	return e.Timestamp
}
