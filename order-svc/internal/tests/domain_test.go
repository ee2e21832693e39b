package tests

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableside/order-svc/internal/domain"
)

func TestOrder_TransitionTo(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		from    domain.OrderStatus
		to      domain.OrderStatus
		wantErr error
	}{
		{name: "pending_to_preparing", from: domain.OrderPending, to: domain.OrderPreparing},
		{name: "preparing_to_ready", from: domain.OrderPreparing, to: domain.OrderReady},
		{name: "ready_to_served", from: domain.OrderReady, to: domain.OrderServed},
		{name: "served_to_paid", from: domain.OrderServed, to: domain.OrderPaid},
		{name: "skip_pending_to_paid", from: domain.OrderPending, to: domain.OrderPaid, wantErr: domain.ErrInvalidTransition},
		{name: "skip_pending_to_ready", from: domain.OrderPending, to: domain.OrderReady, wantErr: domain.ErrInvalidTransition},
		{name: "backward_ready_to_pending", from: domain.OrderReady, to: domain.OrderPending, wantErr: domain.ErrInvalidTransition},
		{name: "same_status", from: domain.OrderPreparing, to: domain.OrderPreparing, wantErr: domain.ErrInvalidTransition},
		{name: "paid_is_final", from: domain.OrderPaid, to: domain.OrderServed, wantErr: domain.ErrAlreadyFinalized},
		{name: "unknown_status", from: domain.OrderPending, to: "cooking", wantErr: domain.ErrValidation},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			order := &domain.Order{Status: testCase.from}

			err := order.TransitionTo(testCase.to, now)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				assert.Equal(t, testCase.from, order.Status)
				assert.True(t, order.UpdatedAt.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.to, order.Status)
			assert.Equal(t, now, order.UpdatedAt)
		})
	}
}

func TestOrder_Settle(t *testing.T) {
	order := &domain.Order{Status: domain.OrderPreparing}

	require.NoError(t, order.Settle(time.Now()))
	assert.Equal(t, domain.OrderPaid, order.Status)
	assert.ErrorIs(t, order.Settle(time.Now()), domain.ErrAlreadyFinalized)
}

func TestOrder_CalculateTotal(t *testing.T) {
	tests := []struct {
		name       string
		lines      []domain.OrderLine
		wantTotal  string
		wantPoints int
	}{
		{
			name: "two_lines",
			lines: []domain.OrderLine{
				{Quantity: 2, UnitPrice: decimal.NewFromInt(100)},
				{Quantity: 1, UnitPrice: decimal.NewFromInt(50)},
			},
			wantTotal:  "250",
			wantPoints: 25,
		},
		{
			name: "fractional_prices_do_not_drift",
			lines: []domain.OrderLine{
				{Quantity: 3, UnitPrice: decimal.RequireFromString("0.10")},
				{Quantity: 7, UnitPrice: decimal.RequireFromString("19.99")},
			},
			wantTotal:  "140.23",
			wantPoints: 14,
		},
		{
			name:       "points_round_down",
			lines:      []domain.OrderLine{{Quantity: 1, UnitPrice: decimal.RequireFromString("9.99")}},
			wantTotal:  "9.99",
			wantPoints: 0,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			order := &domain.Order{Lines: testCase.lines}

			order.CalculateTotal()

			assert.True(t, decimal.RequireFromString(testCase.wantTotal).Equal(order.TotalAmount), "total %s", order.TotalAmount)
			assert.Equal(t, testCase.wantPoints, order.LoyaltyPointsEarned)
		})
	}
}

func TestPointsFor(t *testing.T) {
	assert.Equal(t, 0, domain.PointsFor(decimal.NewFromInt(-50)))
	assert.Equal(t, 1, domain.PointsFor(decimal.NewFromInt(10)))
	assert.Equal(t, 19, domain.PointsFor(decimal.RequireFromString("199.99")))
}

func TestTable_StateMachine(t *testing.T) {
	t.Run("reserve_only_from_available", func(t *testing.T) {
		table := &domain.Table{Number: 1, Status: domain.TableAvailable}
		require.NoError(t, table.Reserve("Asha", "19:30"))
		assert.Equal(t, domain.TableReserved, table.Status)
		assert.Equal(t, "Asha", table.ReservedBy)

		assert.ErrorIs(t, table.Reserve("Ravi", "20:00"), domain.ErrTableNotAvailable)
		assert.Equal(t, "Asha", table.ReservedBy)
	})

	t.Run("occupy_fulfils_reservation", func(t *testing.T) {
		table := &domain.Table{Number: 2, Status: domain.TableReserved, ReservedBy: "Asha", ReservedUntil: "19:30"}
		require.NoError(t, table.Occupy("order-1"))
		assert.Equal(t, domain.TableOccupied, table.Status)
		assert.Equal(t, "order-1", table.CurrentOrderID)
		assert.Empty(t, table.ReservedBy)
		assert.Empty(t, table.ReservedUntil)
	})

	t.Run("occupy_rejected_in_maintenance", func(t *testing.T) {
		table := &domain.Table{Number: 3, Status: domain.TableMaintenance}
		assert.ErrorIs(t, table.Occupy("order-1"), domain.ErrTableNotAvailable)
		assert.Equal(t, domain.TableMaintenance, table.Status)
	})

	t.Run("free_clears_everything", func(t *testing.T) {
		table := &domain.Table{Number: 4, Status: domain.TableOccupied, CurrentOrderID: "order-1"}
		require.NoError(t, table.Free())
		assert.Equal(t, domain.TableAvailable, table.Status)
		assert.Empty(t, table.CurrentOrderID)

		assert.ErrorIs(t, table.Free(), domain.ErrInvalidTransition)
	})

	t.Run("maintenance_refused_with_active_order", func(t *testing.T) {
		table := &domain.Table{Number: 5, Status: domain.TableOccupied, CurrentOrderID: "order-1"}
		assert.ErrorIs(t, table.SetMaintenance(), domain.ErrTableOccupied)
		assert.Equal(t, domain.TableOccupied, table.Status)
	})

	t.Run("maintenance_round_trip", func(t *testing.T) {
		table := &domain.Table{Number: 6, Status: domain.TableReserved, ReservedBy: "Asha"}
		require.NoError(t, table.SetMaintenance())
		assert.Equal(t, domain.TableMaintenance, table.Status)
		assert.Empty(t, table.ReservedBy)

		require.NoError(t, table.ClearMaintenance())
		assert.Equal(t, domain.TableAvailable, table.Status)
		assert.ErrorIs(t, table.ClearMaintenance(), domain.ErrInvalidTransition)
	})
}

func TestReservation_TransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.ReservationStatus
		to      domain.ReservationStatus
		wantErr bool
	}{
		{name: "confirm", from: domain.ReservationPending, to: domain.ReservationConfirmed},
		{name: "cancel_pending", from: domain.ReservationPending, to: domain.ReservationCancelled},
		{name: "complete_confirmed", from: domain.ReservationConfirmed, to: domain.ReservationCompleted},
		{name: "cancel_confirmed", from: domain.ReservationConfirmed, to: domain.ReservationCancelled},
		{name: "complete_pending", from: domain.ReservationPending, to: domain.ReservationCompleted, wantErr: true},
		{name: "revive_cancelled", from: domain.ReservationCancelled, to: domain.ReservationPending, wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			res := &domain.Reservation{Status: testCase.from}
			err := res.TransitionTo(testCase.to)
			if testCase.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidTransition)
				assert.Equal(t, testCase.from, res.Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.to, res.Status)
		})
	}
}
