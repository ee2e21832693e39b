package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Invalid wraps ErrValidation with a field-level message.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// orderFlow holds the single allowed successor of every non-terminal status.
var orderFlow = map[OrderStatus]OrderStatus{
	OrderPending:   OrderPreparing,
	OrderPreparing: OrderReady,
	OrderReady:     OrderServed,
	OrderServed:    OrderPaid,
}

func (s OrderStatus) Valid() bool {
	_, ok := orderFlow[s]
	return ok || s == OrderPaid
}

func (t OrderType) Valid() bool {
	return t == OrderDineIn || t == OrderTakeout || t == OrderOrderAhead
}

func (p PaymentMode) Valid() bool {
	return p == PaymentCash || p == PaymentUPI
}

func (t TableStatus) Valid() bool {
	switch t {
	case TableAvailable, TableOccupied, TableReserved, TableMaintenance:
		return true
	}
	return false
}

func (r RequestType) Valid() bool {
	switch r {
	case RequestStaff, RequestWater, RequestHotWater, RequestCleaning:
		return true
	}
	return false
}

func (s RequestStatus) Valid() bool {
	return s == RequestPending || s == RequestCompleted
}

// CanTransitionTo reports whether next is the immediate successor of the current status.
func (o *Order) CanTransitionTo(next OrderStatus) bool {
	return orderFlow[o.Status] == next
}

// TransitionTo moves the order one step forward. The order is left untouched on error.
func (o *Order) TransitionTo(next OrderStatus, now time.Time) error {
	if o.Status == OrderPaid {
		return ErrAlreadyFinalized
	}
	if !next.Valid() {
		return Invalid("unknown order status %q", next)
	}
	if !o.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, next)
	}
	o.Status = next
	o.UpdatedAt = now
	return nil
}

// Settle marks the order paid regardless of kitchen progress.
func (o *Order) Settle(now time.Time) error {
	if o.Status == OrderPaid {
		return ErrAlreadyFinalized
	}
	o.Status = OrderPaid
	o.UpdatedAt = now
	return nil
}

// CalculateTotal recomputes the derived totals from the line snapshots.
func (o *Order) CalculateTotal() {
	total := decimal.Zero
	for _, line := range o.Lines {
		total = total.Add(line.Total())
	}
	o.TotalAmount = total.Round(2)
	o.LoyaltyPointsEarned = PointsFor(o.TotalAmount)
}

func (l OrderLine) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

var pointDivisor = decimal.NewFromInt(10)

// PointsFor is one loyalty point per 10 currency units, rounded down.
func PointsFor(amount decimal.Decimal) int {
	if amount.IsNegative() {
		return 0
	}
	return int(amount.Div(pointDivisor).Floor().IntPart())
}

func (t *Table) Reserve(by, until string) error {
	if t.Status != TableAvailable {
		return fmt.Errorf("%w: table %d is %s", ErrTableNotAvailable, t.Number, t.Status)
	}
	t.Status = TableReserved
	t.ReservedBy = by
	t.ReservedUntil = until
	return nil
}

// Occupy seats a party. A reservation held on the table is considered fulfilled.
func (t *Table) Occupy(orderID string) error {
	if t.Status != TableAvailable && t.Status != TableReserved {
		return fmt.Errorf("%w: table %d is %s", ErrTableNotAvailable, t.Number, t.Status)
	}
	t.Status = TableOccupied
	t.CurrentOrderID = orderID
	t.ReservedBy = ""
	t.ReservedUntil = ""
	return nil
}

func (t *Table) Free() error {
	if t.Status != TableOccupied && t.Status != TableReserved {
		return fmt.Errorf("%w: cannot free table %d from %s", ErrInvalidTransition, t.Number, t.Status)
	}
	t.Status = TableAvailable
	t.CurrentOrderID = ""
	t.ReservedBy = ""
	t.ReservedUntil = ""
	return nil
}

func (t *Table) HasActiveOrder() bool {
	return t.Status == TableOccupied && t.CurrentOrderID != ""
}

func (t *Table) SetMaintenance() error {
	if t.HasActiveOrder() {
		return fmt.Errorf("%w: table %d has order %s", ErrTableOccupied, t.Number, t.CurrentOrderID)
	}
	t.Status = TableMaintenance
	t.CurrentOrderID = ""
	t.ReservedBy = ""
	t.ReservedUntil = ""
	return nil
}

func (t *Table) ClearMaintenance() error {
	if t.Status != TableMaintenance {
		return fmt.Errorf("%w: table %d is not under maintenance", ErrInvalidTransition, t.Number)
	}
	t.Status = TableAvailable
	return nil
}

var reservationFlow = map[ReservationStatus][]ReservationStatus{
	ReservationPending:   {ReservationConfirmed, ReservationCancelled},
	ReservationConfirmed: {ReservationCompleted, ReservationCancelled},
}

func (r *Reservation) TransitionTo(next ReservationStatus) error {
	for _, allowed := range reservationFlow[r.Status] {
		if allowed == next {
			r.Status = next
			return nil
		}
	}
	return fmt.Errorf("%w: reservation %s -> %s", ErrInvalidTransition, r.Status, next)
}
