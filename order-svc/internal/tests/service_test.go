package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tableside/order-svc/internal/domain"
	"tableside/order-svc/internal/mocks"
	"tableside/order-svc/internal/service"
	"tableside/order-svc/internal/storage"
)

type fixture struct {
	store        *storage.MemoryStore
	menu         *service.MenuService
	tables       *service.TableService
	orders       *service.OrderService
	requests     *service.RequestService
	reservations *service.ReservationService
	loyalty      *service.LoyaltyService
}

func newFixture(t *testing.T, opts ...service.Option) *fixture {
	t.Helper()
	store := storage.NewMemoryStore()
	loyalty := service.NewLoyaltyService(store)
	tables := service.NewTableService(store, service.TableQRGenerator{BaseURL: "http://localhost:8080"}, opts...)
	orders := service.NewOrderService(store, loyalty, opts...)
	return &fixture{
		store:        store,
		menu:         service.NewMenuService(store, opts...),
		tables:       tables,
		orders:       orders,
		requests:     service.NewRequestService(store, orders, tables, opts...),
		reservations: service.NewReservationService(store, tables, opts...),
		loyalty:      loyalty,
	}
}

func ptr[T any](v T) *T { return &v }

func (f *fixture) menuItem(t *testing.T, name string, price int64, inventory int) *domain.MenuItem {
	t.Helper()
	item, err := f.menu.Create(context.Background(), service.MenuItemPatch{
		Name:      ptr(name),
		Category:  ptr("mains"),
		Price:     ptr(decimal.NewFromInt(price)),
		Inventory: ptr(inventory),
	})
	require.NoError(t, err)
	return item
}

func (f *fixture) table(t *testing.T, number, seats int) *domain.Table {
	t.Helper()
	table, err := f.tables.Add(context.Background(), number, seats)
	require.NoError(t, err)
	return table
}

func (f *fixture) tableStatus(t *testing.T, number int) *domain.Table {
	t.Helper()
	table, err := f.tables.GetByNumber(context.Background(), number)
	require.NoError(t, err)
	return table
}

func TestOrderLifecycle_TableFiveScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	table := f.table(t, 5, 4)
	assert.Equal(t, domain.TableAvailable, table.Status)

	itemA := f.menuItem(t, "Paneer Tikka", 100, 10)
	itemB := f.menuItem(t, "Lassi", 50, 10)

	order, err := f.orders.Create(ctx, service.CreateOrderInput{
		TableNumber: 5,
		Lines: []service.OrderLineInput{
			{MenuItemID: itemA.ID, Quantity: 2},
			{MenuItemID: itemB.ID, Quantity: 1},
		},
		PaymentMode: domain.PaymentCash,
		OrderType:   domain.OrderDineIn,
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(250).Equal(order.TotalAmount))
	assert.Equal(t, 25, order.LoyaltyPointsEarned)
	assert.Equal(t, domain.OrderPending, order.Status)

	seated := f.tableStatus(t, 5)
	assert.Equal(t, domain.TableOccupied, seated.Status)
	assert.Equal(t, order.ID, seated.CurrentOrderID)

	for _, next := range []domain.OrderStatus{domain.OrderPreparing, domain.OrderReady, domain.OrderServed, domain.OrderPaid} {
		order, err = f.orders.TransitionStatus(ctx, order.ID, next)
		require.NoError(t, err)
		assert.Equal(t, next, order.Status)
	}

	freed := f.tableStatus(t, 5)
	assert.Equal(t, domain.TableAvailable, freed.Status)
	assert.Empty(t, freed.CurrentOrderID)
}

func TestOrderService_RejectsSkipTransition(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.table(t, 1, 2)
	item := f.menuItem(t, "Dosa", 80, 5)

	order, err := f.orders.Create(ctx, service.CreateOrderInput{
		TableNumber: 1,
		Lines:       []service.OrderLineInput{{MenuItemID: item.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = f.orders.TransitionStatus(ctx, order.ID, domain.OrderPaid)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	stored, err := f.orders.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderPending, stored.Status)
	assert.Equal(t, domain.TableOccupied, f.tableStatus(t, 1).Status)

	_, err = f.orders.TransitionStatus(ctx, "missing", domain.OrderPreparing)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderService_Create_Validation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.table(t, 1, 2)
	maintenance := f.table(t, 2, 2)
	_, err := f.tables.SetMaintenance(ctx, maintenance.ID)
	require.NoError(t, err)
	item := f.menuItem(t, "Idli", 40, 3)

	tests := []struct {
		name    string
		input   service.CreateOrderInput
		wantErr error
	}{
		{
			name:    "no_items",
			input:   service.CreateOrderInput{TableNumber: 1},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "zero_quantity",
			input:   service.CreateOrderInput{TableNumber: 1, Lines: []service.OrderLineInput{{MenuItemID: item.ID}}},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "unknown_table",
			input:   service.CreateOrderInput{TableNumber: 99, Lines: []service.OrderLineInput{{MenuItemID: item.ID, Quantity: 1}}},
			wantErr: domain.ErrNotFound,
		},
		{
			name:    "dine_in_without_table",
			input:   service.CreateOrderInput{Lines: []service.OrderLineInput{{MenuItemID: item.ID, Quantity: 1}}},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "unknown_menu_item",
			input:   service.CreateOrderInput{TableNumber: 1, Lines: []service.OrderLineInput{{MenuItemID: "nope", Quantity: 1}}},
			wantErr: domain.ErrNotFound,
		},
		{
			name:    "more_than_inventory",
			input:   service.CreateOrderInput{TableNumber: 1, Lines: []service.OrderLineInput{{MenuItemID: item.ID, Quantity: 2}, {MenuItemID: item.ID, Quantity: 2}}},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "table_in_maintenance",
			input:   service.CreateOrderInput{TableNumber: 2, Lines: []service.OrderLineInput{{MenuItemID: item.ID, Quantity: 1}}},
			wantErr: domain.ErrTableNotAvailable,
		},
		{
			name: "order_ahead_in_the_past",
			input: service.CreateOrderInput{
				OrderType:     domain.OrderOrderAhead,
				ScheduledTime: ptr(time.Now().Add(-time.Hour)),
				Lines:         []service.OrderLineInput{{MenuItemID: item.ID, Quantity: 1}},
			},
			wantErr: domain.ErrValidation,
		},
		{
			name: "bad_payment_mode",
			input: service.CreateOrderInput{
				TableNumber: 1,
				PaymentMode: "card",
				Lines:       []service.OrderLineInput{{MenuItemID: item.ID, Quantity: 1}},
			},
			wantErr: domain.ErrValidation,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := f.orders.Create(ctx, testCase.input)
			assert.ErrorIs(t, err, testCase.wantErr)
		})
	}

	orders, err := f.orders.List(ctx, service.OrderFilter{})
	require.NoError(t, err)
	assert.Empty(t, orders)

	stock, err := f.menu.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stock.Inventory)
}

func TestOrderService_Create_TakesStockAndSnapshotsPrice(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	item := f.menuItem(t, "Biryani", 220, 2)

	order, err := f.orders.Create(ctx, service.CreateOrderInput{
		OrderType: domain.OrderTakeout,
		Lines:     []service.OrderLineInput{{MenuItemID: item.ID, Quantity: 2, Pack: true}},
	})
	require.NoError(t, err)
	assert.True(t, order.Lines[0].Pack)

	stock, err := f.menu.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stock.Inventory)
	assert.False(t, stock.InStock)

	_, err = f.menu.Update(ctx, item.ID, service.MenuItemPatch{Price: ptr(decimal.NewFromInt(999)), Inventory: ptr(5)})
	require.NoError(t, err)

	stored, err := f.orders.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(220).Equal(stored.Lines[0].UnitPrice))
	assert.True(t, decimal.NewFromInt(440).Equal(stored.TotalAmount))

	_, err = f.orders.Create(ctx, service.CreateOrderInput{
		OrderType: domain.OrderTakeout,
		Lines:     []service.OrderLineInput{{MenuItemID: item.ID, Quantity: 6}},
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestOrderService_SecondDineInOrderMovesCurrentOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.table(t, 3, 4)
	item := f.menuItem(t, "Chai", 20, 10)
	lines := []service.OrderLineInput{{MenuItemID: item.ID, Quantity: 1}}

	first, err := f.orders.Create(ctx, service.CreateOrderInput{TableNumber: 3, Lines: lines})
	require.NoError(t, err)
	second, err := f.orders.Create(ctx, service.CreateOrderInput{TableNumber: 3, Lines: lines})
	require.NoError(t, err)

	table := f.tableStatus(t, 3)
	assert.Equal(t, domain.TableOccupied, table.Status)
	assert.Equal(t, second.ID, table.CurrentOrderID)

	_, err = f.orders.MarkPaid(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TableOccupied, f.tableStatus(t, 3).Status)

	_, err = f.orders.MarkPaid(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TableAvailable, f.tableStatus(t, 3).Status)
}

func TestOrderService_MarkPaid(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.table(t, 7, 2)
	item := f.menuItem(t, "Thali", 180, 10)

	order, err := f.orders.Create(ctx, service.CreateOrderInput{
		TableNumber: 7,
		CustomerID:  "9876543210",
		Lines:       []service.OrderLineInput{{MenuItemID: item.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	status, err := f.loyalty.Get(ctx, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, 0, status.Points, "points are credited on payment, not on creation")

	paid, err := f.orders.MarkPaid(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderPaid, paid.Status)
	assert.Equal(t, domain.TableAvailable, f.tableStatus(t, 7).Status)

	status, err = f.loyalty.Get(ctx, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, 18, status.Points)

	_, err = f.orders.MarkPaid(ctx, order.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyFinalized)
	_, err = f.orders.Update(ctx, order.ID, service.OrderPatch{PaymentMode: ptr(domain.PaymentUPI)})
	assert.ErrorIs(t, err, domain.ErrAlreadyFinalized)

	status, err = f.loyalty.Get(ctx, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, 18, status.Points)
}

func TestOrderService_PublishesEvents(t *testing.T) {
	ctx := context.Background()
	publisher := mocks.NewEventPublisher(t)
	notifier := mocks.NewNotifier(t)
	notifier.On("Publish", mock.Anything).Maybe()

	f := newFixture(t, service.WithPublisher(publisher), service.WithNotifier(notifier))
	f.table(t, 1, 2)
	item := f.menuItem(t, "Vada", 30, 10)

	publisher.On("Publish", ctx, mock.MatchedBy(func(e domain.Event) bool {
		return e.Type == domain.EventOrderCreated && e.TableNumber == 1 && len(e.Items) == 1
	})).Return(nil).Once()
	publisher.On("Publish", ctx, mock.MatchedBy(func(e domain.Event) bool {
		return e.Type == domain.EventOrderStatusChanged && e.Status == domain.OrderPreparing
	})).Return(errors.New("broker down")).Once()
	publisher.On("Publish", ctx, mock.MatchedBy(func(e domain.Event) bool {
		return e.Type == domain.EventOrderPaid && e.TotalAmount.Equal(decimal.NewFromInt(60))
	})).Return(nil).Once()

	order, err := f.orders.Create(ctx, service.CreateOrderInput{
		TableNumber: 1,
		Lines:       []service.OrderLineInput{{MenuItemID: item.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	_, err = f.orders.TransitionStatus(ctx, order.ID, domain.OrderPreparing)
	require.NoError(t, err, "publish failures do not fail the operation")

	_, err = f.orders.MarkPaid(ctx, order.ID)
	require.NoError(t, err)

	notifier.AssertCalled(t, "Publish", domain.EntityOrders)
	notifier.AssertCalled(t, "Publish", domain.EntityTables)
}

func TestTableService_Add(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.table(t, 5, 4)

	tests := []struct {
		name    string
		number  int
		seats   int
		wantErr error
	}{
		{name: "duplicate_number", number: 5, seats: 2, wantErr: domain.ErrDuplicateTableNumber},
		{name: "number_zero", number: 0, seats: 2, wantErr: domain.ErrValidation},
		{name: "too_many_seats", number: 6, seats: 21, wantErr: domain.ErrValidation},
		{name: "no_seats", number: 6, seats: 0, wantErr: domain.ErrValidation},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := f.tables.Add(ctx, testCase.number, testCase.seats)
			assert.ErrorIs(t, err, testCase.wantErr)
		})
	}

	tables, err := f.tables.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tables, 1)
}

func TestTableService_Add_Repository(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		prepareMocks func(repo *mocks.TableRepository)
		wantErr      error
	}{
		{
			name: "success",
			prepareMocks: func(repo *mocks.TableRepository) {
				repo.On("GetTableByNumber", ctx, 9).Return(nil, domain.ErrNotFound).Once()
				repo.On("CreateTable", ctx, mock.AnythingOfType("*domain.Table")).Return(nil).Once()
			},
		},
		{
			name: "lookup_failure",
			prepareMocks: func(repo *mocks.TableRepository) {
				repo.On("GetTableByNumber", ctx, 9).Return(nil, errors.New("db down")).Once()
			},
			wantErr: errors.New("db down"),
		},
		{
			name: "unique_violation_from_store",
			prepareMocks: func(repo *mocks.TableRepository) {
				repo.On("GetTableByNumber", ctx, 9).Return(nil, domain.ErrNotFound).Once()
				repo.On("CreateTable", ctx, mock.AnythingOfType("*domain.Table")).Return(domain.ErrDuplicateTableNumber).Once()
			},
			wantErr: domain.ErrDuplicateTableNumber,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewTableRepository(t)
			testCase.prepareMocks(repo)
			svc := service.NewTableService(repo, nil)

			table, err := svc.Add(ctx, 9, 4)

			if testCase.wantErr != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), testCase.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.TableAvailable, table.Status)
			assert.NotEmpty(t, table.ID)
		})
	}
}

func TestTableService_Actions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	table := f.table(t, 8, 6)

	reserved, err := f.tables.Reserve(ctx, table.ID, "Meera", "2024-05-01 20:00")
	require.NoError(t, err)
	assert.Equal(t, domain.TableReserved, reserved.Status)

	_, err = f.tables.Reserve(ctx, table.ID, "Kiran", "2024-05-01 21:00")
	assert.ErrorIs(t, err, domain.ErrTableNotAvailable)

	occupied, err := f.tables.Occupy(ctx, table.ID, "order-1")
	require.NoError(t, err)
	assert.Equal(t, "order-1", occupied.CurrentOrderID)

	_, err = f.tables.SetMaintenance(ctx, table.ID)
	assert.ErrorIs(t, err, domain.ErrTableOccupied)
	assert.ErrorIs(t, f.tables.Delete(ctx, table.ID), domain.ErrTableOccupied)

	_, err = f.tables.Free(ctx, table.ID)
	require.NoError(t, err)
	_, err = f.tables.SetMaintenance(ctx, table.ID)
	require.NoError(t, err)
	cleared, err := f.tables.ClearMaintenance(ctx, table.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TableAvailable, cleared.Status)

	require.NoError(t, f.tables.Delete(ctx, table.ID))
	assert.ErrorIs(t, f.tables.Delete(ctx, table.ID), domain.ErrNotFound)
}

func TestTableService_Update(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.table(t, 1, 2)
	table := f.table(t, 2, 2)

	_, err := f.tables.Update(ctx, table.ID, service.TablePatch{Number: ptr(1)})
	assert.ErrorIs(t, err, domain.ErrDuplicateTableNumber)

	updated, err := f.tables.Update(ctx, table.ID, service.TablePatch{Seats: ptr(6), Status: ptr(domain.TableMaintenance)})
	require.NoError(t, err)
	assert.Equal(t, 6, updated.Seats)
	assert.Equal(t, domain.TableMaintenance, updated.Status)

	updated, err = f.tables.Update(ctx, table.ID, service.TablePatch{Status: ptr(domain.TableAvailable)})
	require.NoError(t, err)
	assert.Equal(t, domain.TableAvailable, updated.Status)

	_, err = f.tables.Update(ctx, table.ID, service.TablePatch{Status: ptr(domain.TableStatus("broken"))})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTableService_QRCode(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	qr := mocks.NewQRGenerator(t)
	svc := service.NewTableService(store, qr)

	table, err := svc.Add(ctx, 12, 4)
	require.NoError(t, err)

	qr.On("Generate", 12).Return([]byte("png"), nil).Once()
	png, err := svc.QRCode(ctx, table.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	_, err = svc.QRCode(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTableQRGenerator(t *testing.T) {
	gen := service.TableQRGenerator{BaseURL: "https://dine.example.com/"}
	assert.Equal(t, "https://dine.example.com/table/4", gen.Link(4))

	png, err := gen.Generate(4)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])
}

func TestRequestService_CompleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.table(t, 3, 2)

	req, err := f.requests.Raise(ctx, 3, domain.RequestWater)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestPending, req.Status)

	first, err := f.requests.Complete(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestCompleted, first.Status)
	require.NotNil(t, first.CompletedAt)

	second, err := f.requests.Complete(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestCompleted, second.Status)
	assert.Equal(t, *first.CompletedAt, *second.CompletedAt)

	_, err = f.requests.Complete(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRequestService_Raise(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.table(t, 3, 2)

	_, err := f.requests.Raise(ctx, 3, "champagne")
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = f.requests.Raise(ctx, 4, domain.RequestStaff)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	for i := 0; i < 2; i++ {
		_, err = f.requests.Raise(ctx, 3, domain.RequestStaff)
		require.NoError(t, err)
	}
	pending, err := f.requests.List(ctx, domain.RequestPending)
	require.NoError(t, err)
	assert.Len(t, pending, 2)
}

func TestRequestService_SweepExpired(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.table(t, 1, 2)

	old, err := f.requests.Raise(ctx, 1, domain.RequestCleaning)
	require.NoError(t, err)

	n, err := f.requests.SweepExpired(ctx, 30*time.Second, old.CreatedAt.Add(10*time.Second))
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = f.requests.SweepExpired(ctx, 30*time.Second, old.CreatedAt.Add(31*time.Second))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	pending, err := f.requests.List(ctx, domain.RequestPending)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestRequestService_CompleteBillSettlesTable(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.table(t, 4, 4)
	item := f.menuItem(t, "Naan", 30, 20)
	lines := []service.OrderLineInput{{MenuItemID: item.ID, Quantity: 1}}

	first, err := f.orders.Create(ctx, service.CreateOrderInput{TableNumber: 4, Lines: lines})
	require.NoError(t, err)
	second, err := f.orders.Create(ctx, service.CreateOrderInput{TableNumber: 4, Lines: lines})
	require.NoError(t, err)
	_, err = f.orders.TransitionStatus(ctx, second.ID, domain.OrderPreparing)
	require.NoError(t, err)
	takeout, err := f.orders.Create(ctx, service.CreateOrderInput{TableNumber: 4, OrderType: domain.OrderTakeout, Lines: lines})
	require.NoError(t, err)

	bill, err := f.requests.RaiseBill(ctx, 4)
	require.NoError(t, err)

	done, err := f.requests.CompleteBill(ctx, bill.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RequestCompleted, done.Status)

	for _, id := range []string{first.ID, second.ID} {
		o, err := f.orders.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderPaid, o.Status)
	}
	counter, err := f.orders.Get(ctx, takeout.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderPending, counter.Status, "takeout orders are not settled by the table bill")
	assert.Equal(t, domain.TableAvailable, f.tableStatus(t, 4).Status)

	again, err := f.requests.CompleteBill(ctx, bill.ID)
	require.NoError(t, err)
	assert.Equal(t, *done.CompletedAt, *again.CompletedAt)
}

func TestFeedbackService_MarkerFailuresAreLogged(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.CreateTable(ctx, &domain.Table{ID: "t1", Number: 2, Seats: 2, Status: domain.TableAvailable}))
	require.NoError(t, store.CreateOrder(ctx, &domain.Order{ID: "o1", TableNumber: 2, Status: domain.OrderPaid}))

	logger, hook := logtest.NewNullLogger()
	cache := mocks.NewFeedbackCache(t)
	cache.On("FeedbackMarkerKey", "o1").Return("feedback:order:o1").Once()
	cache.On("Exists", ctx, "feedback:order:o1").Return(false, errors.New("redis: connection refused")).Once()
	cache.On("SetMarker", ctx, "feedback:order:o1").Return(errors.New("redis: connection refused")).Once()
	svc := service.NewFeedbackService(store, cache, service.WithLogger(logrus.NewEntry(logger)))

	fb := &domain.Feedback{TableNumber: 2, OrderID: "o1", Rating: 4}
	require.NoError(t, svc.Create(ctx, fb))

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, logrus.WarnLevel, entry.Level)
		assert.Equal(t, "o1", entry.Data["order_id"])
		assert.Error(t, entry.Data[logrus.ErrorKey].(error))
	}
	assert.Contains(t, entries[0].Message, "duplicate check skipped")
	assert.Contains(t, entries[1].Message, "feedback marker")
}

func TestLoyaltyService(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	status, err := f.loyalty.Get(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, 0, status.Points)
	assert.Equal(t, "Silver", status.Tier.Name)
	require.NotNil(t, status.NextTier)
	assert.Equal(t, 500, status.PointsToNext)

	_, err = f.loyalty.Award(ctx, "asha@example.com", 120)
	require.NoError(t, err)

	_, err = f.loyalty.Redeem(ctx, "asha@example.com", "free-dessert")
	assert.ErrorIs(t, err, domain.ErrInsufficientPoints)
	status, err = f.loyalty.Get(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, 120, status.Points)

	acc, err := f.loyalty.Redeem(ctx, "asha@example.com", "free-appetizer")
	require.NoError(t, err)
	assert.Equal(t, 20, acc.Points)

	_, err = f.loyalty.Redeem(ctx, "asha@example.com", "free-car")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.loyalty.Get(ctx, "  ")
	assert.ErrorIs(t, err, domain.ErrValidation)

	assert.Len(t, f.loyalty.Rewards(), 5)
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		points   int
		wantTier string
		wantNext string
	}{
		{points: 0, wantTier: "Silver", wantNext: "Gold"},
		{points: 499, wantTier: "Silver", wantNext: "Gold"},
		{points: 500, wantTier: "Gold", wantNext: "Platinum"},
		{points: 1500, wantTier: "Platinum"},
	}
	for _, testCase := range tests {
		tier, next := service.TierFor(testCase.points)
		assert.Equal(t, testCase.wantTier, tier.Name)
		if testCase.wantNext == "" {
			assert.Nil(t, next)
			continue
		}
		require.NotNil(t, next)
		assert.Equal(t, testCase.wantNext, next.Name)
	}
}

func TestMenuService_Validation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	tests := []struct {
		name  string
		input service.MenuItemPatch
	}{
		{name: "missing_name", input: service.MenuItemPatch{Category: ptr("mains"), Price: ptr(decimal.NewFromInt(10))}},
		{name: "missing_category", input: service.MenuItemPatch{Name: ptr("Soup"), Price: ptr(decimal.NewFromInt(10))}},
		{name: "zero_price", input: service.MenuItemPatch{Name: ptr("Soup"), Category: ptr("mains")}},
		{name: "negative_inventory", input: service.MenuItemPatch{Name: ptr("Soup"), Category: ptr("mains"), Price: ptr(decimal.NewFromInt(10)), Inventory: ptr(-1)}},
		{name: "zero_preparation_time", input: service.MenuItemPatch{Name: ptr("Soup"), Category: ptr("mains"), Price: ptr(decimal.NewFromInt(10)), PreparationTime: ptr(0)}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := f.menu.Create(ctx, testCase.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	item, err := f.menu.Create(ctx, service.MenuItemPatch{Name: ptr("Soup"), Category: ptr("Starters"), Price: ptr(decimal.RequireFromString("89.5"))})
	require.NoError(t, err)
	assert.Equal(t, 15, item.PreparationTime)
	assert.Equal(t, 100, item.Inventory)
	assert.True(t, item.InStock)

	starters, err := f.menu.List(ctx, "starters")
	require.NoError(t, err)
	assert.Len(t, starters, 1)

	require.NoError(t, f.menu.Delete(ctx, item.ID))
	assert.ErrorIs(t, f.menu.Delete(ctx, item.ID), domain.ErrNotFound)
}

func TestReservationService(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.table(t, 6, 4)

	invalid := &domain.Reservation{CustomerName: "Meera", CustomerPhone: "12", Date: "2024-05-01", Time: "19:30", PartySize: 2}
	assert.ErrorIs(t, f.reservations.Create(ctx, invalid), domain.ErrValidation)

	res := &domain.Reservation{CustomerName: "Meera", CustomerPhone: "+91 98765 43210", Date: "2024-05-01", Time: "19:30", PartySize: 4}
	require.NoError(t, f.reservations.Create(ctx, res))
	assert.Equal(t, domain.ReservationPending, res.Status)

	confirmed, err := f.reservations.UpdateStatus(ctx, res.ID, domain.ReservationConfirmed, 6)
	require.NoError(t, err)
	assert.Equal(t, 6, confirmed.TableNumber)

	table := f.tableStatus(t, 6)
	assert.Equal(t, domain.TableReserved, table.Status)
	assert.Equal(t, "Meera", table.ReservedBy)

	_, err = f.reservations.UpdateStatus(ctx, res.ID, domain.ReservationPending, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = f.reservations.UpdateStatus(ctx, res.ID, domain.ReservationCancelled, 0)
	require.NoError(t, err)
	assert.Equal(t, domain.TableAvailable, f.tableStatus(t, 6).Status)
}

func TestReservationService_CompleteReleasesHold(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		seatParty  bool
		wantStatus domain.TableStatus
	}{
		{name: "party_never_ordered", seatParty: false, wantStatus: domain.TableAvailable},
		{name: "party_seated", seatParty: true, wantStatus: domain.TableOccupied},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newFixture(t)
			f.table(t, 7, 2)
			item := f.menuItem(t, "Chai", 20, 10)

			res := &domain.Reservation{CustomerName: "Ravi", CustomerPhone: "+91 98765 43210", Date: "2024-05-01", Time: "20:00", PartySize: 2}
			require.NoError(t, f.reservations.Create(ctx, res))
			_, err := f.reservations.UpdateStatus(ctx, res.ID, domain.ReservationConfirmed, 7)
			require.NoError(t, err)
			require.Equal(t, domain.TableReserved, f.tableStatus(t, 7).Status)

			if testCase.seatParty {
				_, err := f.orders.Create(ctx, service.CreateOrderInput{
					TableNumber: 7,
					Lines:       []service.OrderLineInput{{MenuItemID: item.ID, Quantity: 1}},
				})
				require.NoError(t, err)
			}

			completed, err := f.reservations.UpdateStatus(ctx, res.ID, domain.ReservationCompleted, 0)
			require.NoError(t, err)
			assert.Equal(t, domain.ReservationCompleted, completed.Status)
			assert.Equal(t, testCase.wantStatus, f.tableStatus(t, 7).Status)
		})
	}
}

func TestFeedbackService_Create(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.CreateTable(ctx, &domain.Table{ID: "t1", Number: 2, Seats: 2, Status: domain.TableAvailable}))
	require.NoError(t, store.CreateOrder(ctx, &domain.Order{ID: "o1", TableNumber: 2, Status: domain.OrderPaid}))

	tests := []struct {
		name         string
		feedback     *domain.Feedback
		prepareMocks func(cache *mocks.FeedbackCache, publisher *mocks.EventPublisher)
		wantErr      error
	}{
		{
			name:     "success_with_order",
			feedback: &domain.Feedback{TableNumber: 2, OrderID: "o1", Rating: 5, Comment: "Lovely"},
			prepareMocks: func(cache *mocks.FeedbackCache, publisher *mocks.EventPublisher) {
				cache.On("FeedbackMarkerKey", "o1").Return("feedback:order:o1").Once()
				cache.On("Exists", ctx, "feedback:order:o1").Return(false, nil).Once()
				cache.On("SetMarker", ctx, "feedback:order:o1").Return(nil).Once()
				publisher.On("Publish", ctx, mock.MatchedBy(func(e domain.Event) bool {
					return e.Type == domain.EventNewFeedback && e.Rating == 5
				})).Return(nil).Once()
			},
		},
		{
			name:     "duplicate_for_order",
			feedback: &domain.Feedback{TableNumber: 2, OrderID: "o1", Rating: 4},
			prepareMocks: func(cache *mocks.FeedbackCache, publisher *mocks.EventPublisher) {
				cache.On("FeedbackMarkerKey", "o1").Return("feedback:order:o1").Once()
				cache.On("Exists", ctx, "feedback:order:o1").Return(true, nil).Once()
			},
			wantErr: domain.ErrDuplicateFeedback,
		},
		{
			name:     "without_order_skips_marker",
			feedback: &domain.Feedback{TableNumber: 2, Rating: 3},
			prepareMocks: func(cache *mocks.FeedbackCache, publisher *mocks.EventPublisher) {
				publisher.On("Publish", ctx, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:         "rating_out_of_range",
			feedback:     &domain.Feedback{TableNumber: 2, Rating: 6},
			prepareMocks: func(cache *mocks.FeedbackCache, publisher *mocks.EventPublisher) {},
			wantErr:      domain.ErrValidation,
		},
		{
			name:         "unknown_table",
			feedback:     &domain.Feedback{TableNumber: 9, Rating: 4},
			prepareMocks: func(cache *mocks.FeedbackCache, publisher *mocks.EventPublisher) {},
			wantErr:      domain.ErrNotFound,
		},
		{
			name:         "unknown_order",
			feedback:     &domain.Feedback{TableNumber: 2, OrderID: "o9", Rating: 4},
			prepareMocks: func(cache *mocks.FeedbackCache, publisher *mocks.EventPublisher) {},
			wantErr:      domain.ErrNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			cache := mocks.NewFeedbackCache(t)
			publisher := mocks.NewEventPublisher(t)
			testCase.prepareMocks(cache, publisher)
			svc := service.NewFeedbackService(store, cache, service.WithPublisher(publisher))

			err := svc.Create(ctx, testCase.feedback)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, testCase.feedback.ID)
		})
	}
}
