package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"tableside/order-svc/internal/domain"
)

type OrderLineInput struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
	Pack       bool   `json:"pack"`
}

// CreateOrderInput is what a customer submits at checkout. Prices and totals are never
// taken from the client.
type CreateOrderInput struct {
	TableNumber   int                `json:"table"`
	CustomerID    string             `json:"customerId"`
	Lines         []OrderLineInput   `json:"items"`
	PaymentMode   domain.PaymentMode `json:"paymentMode"`
	OrderType     domain.OrderType   `json:"orderType"`
	ScheduledTime *time.Time         `json:"scheduledTime"`
}

type OrderFilter struct {
	Status      domain.OrderStatus
	OrderType   domain.OrderType
	TableNumber int
	Unpaid      bool
}

type OrderPatch struct {
	Status      *domain.OrderStatus `json:"status"`
	PaymentMode *domain.PaymentMode `json:"paymentMode"`
}

type OrderStore interface {
	MenuRepository
	OrderRepository
	TableRepository
}

type PointsAwarder interface {
	Award(ctx context.Context, customerID string, points int) (*domain.LoyaltyAccount, error)
}

type OrderService struct {
	store   OrderStore
	loyalty PointsAwarder
	changes
}

func NewOrderService(store OrderStore, loyalty PointsAwarder, opts ...Option) *OrderService {
	return &OrderService{store: store, loyalty: loyalty, changes: newChanges(opts)}
}

func (in *CreateOrderInput) normalize(now time.Time) error {
	if in.OrderType == "" {
		in.OrderType = domain.OrderDineIn
	}
	if in.PaymentMode == "" {
		in.PaymentMode = domain.PaymentCash
	}
	if !in.OrderType.Valid() {
		return domain.Invalid("unknown order type %q", in.OrderType)
	}
	if !in.PaymentMode.Valid() {
		return domain.Invalid("unknown payment mode %q", in.PaymentMode)
	}
	if in.OrderType == domain.OrderDineIn && in.TableNumber < 1 {
		return domain.Invalid("table is required for dine-in orders")
	}
	if in.TableNumber < 0 {
		return domain.Invalid("table must be positive")
	}
	if len(in.Lines) == 0 {
		return domain.Invalid("order must contain at least one item")
	}
	for i, line := range in.Lines {
		if line.MenuItemID == "" {
			return domain.Invalid("item %d: menuItemId is required", i)
		}
		if line.Quantity < 1 {
			return domain.Invalid("item %d: quantity must be at least 1", i)
		}
	}
	switch {
	case in.OrderType == domain.OrderOrderAhead && in.ScheduledTime == nil:
		return domain.Invalid("scheduledTime is required for order-ahead")
	case in.OrderType == domain.OrderOrderAhead && !in.ScheduledTime.After(now):
		return domain.Invalid("scheduledTime must be in the future")
	case in.OrderType != domain.OrderOrderAhead:
		in.ScheduledTime = nil
	}
	return nil
}

// Create validates the checkout, snapshots menu prices, takes stock and seats dine-in
// parties. A dine-in order on an already occupied table becomes the table's current order.
func (s *OrderService) Create(ctx context.Context, input CreateOrderInput) (*domain.Order, error) {
	now := time.Now().UTC()
	if err := input.normalize(now); err != nil {
		return nil, err
	}

	var table *domain.Table
	if input.TableNumber > 0 {
		t, err := s.store.GetTableByNumber(ctx, input.TableNumber)
		if err != nil {
			return nil, fmt.Errorf("table %d: %w", input.TableNumber, err)
		}
		table = t
	}
	if table != nil && input.OrderType == domain.OrderDineIn && table.Status == domain.TableMaintenance {
		return nil, fmt.Errorf("%w: table %d is under maintenance", domain.ErrTableNotAvailable, table.Number)
	}

	items, err := s.reserveStock(ctx, input.Lines)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		ID:            uuid.NewString(),
		TableNumber:   input.TableNumber,
		CustomerID:    input.CustomerID,
		Status:        domain.OrderPending,
		OrderType:     input.OrderType,
		PaymentMode:   input.PaymentMode,
		ScheduledTime: input.ScheduledTime,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if table != nil {
		order.TableID = table.ID
	}
	for _, line := range input.Lines {
		item := items[line.MenuItemID]
		order.Lines = append(order.Lines, domain.OrderLine{
			MenuItemID: item.ID,
			Name:       item.Name,
			Quantity:   line.Quantity,
			UnitPrice:  item.Price,
			Pack:       line.Pack,
		})
	}
	order.CalculateTotal()

	if err := s.store.CreateOrder(ctx, order); err != nil {
		return nil, err
	}
	for _, item := range items {
		item.UpdatedAt = now
		if err := s.store.UpdateMenuItem(ctx, item); err != nil {
			return nil, fmt.Errorf("failed to update inventory: %w", err)
		}
	}
	touched := []string{domain.EntityOrders, domain.EntityMenu}

	if table != nil && input.OrderType == domain.OrderDineIn {
		if table.Status == domain.TableOccupied {
			table.CurrentOrderID = order.ID
		} else if err := table.Occupy(order.ID); err != nil {
			return nil, err
		}
		if err := s.store.UpdateTable(ctx, table); err != nil {
			return nil, err
		}
		touched = append(touched, domain.EntityTables)
	}

	s.touched(touched...)
	s.emit(ctx, orderEvent(domain.EventOrderCreated, order))
	return order, nil
}

// reserveStock loads every referenced menu item and decrements its inventory in memory.
// Quantities of repeated items are summed before checking.
func (s *OrderService) reserveStock(ctx context.Context, lines []OrderLineInput) (map[string]*domain.MenuItem, error) {
	wanted := make(map[string]int)
	for _, line := range lines {
		wanted[line.MenuItemID] += line.Quantity
	}
	items := make(map[string]*domain.MenuItem, len(wanted))
	for id, qty := range wanted {
		item, err := s.store.GetMenuItem(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("menu item %s: %w", id, err)
		}
		if !item.InStock || item.Inventory < qty {
			return nil, domain.Invalid("%s is out of stock (requested %d, available %d)", item.Name, qty, item.Inventory)
		}
		if item.Price.IsNegative() {
			return nil, domain.Invalid("%s has a negative price", item.Name)
		}
		item.Inventory -= qty
		item.InStock = item.Inventory > 0
		items[id] = item
	}
	return items, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.store.GetOrder(ctx, id)
}

func (s *OrderService) List(ctx context.Context, filter OrderFilter) ([]domain.Order, error) {
	orders, err := s.store.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	out := orders[:0]
	for _, o := range orders {
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		if filter.TableNumber > 0 && o.TableNumber != filter.TableNumber {
			continue
		}
		if filter.OrderType != "" && o.OrderType != filter.OrderType {
			continue
		}
		if filter.Unpaid && o.Status == domain.OrderPaid {
			continue
		}
		out = append(out, o)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// TransitionStatus advances the order exactly one step along the kitchen flow.
func (s *OrderService) TransitionStatus(ctx context.Context, id string, next domain.OrderStatus) (*domain.Order, error) {
	return s.Update(ctx, id, OrderPatch{Status: &next})
}

func (s *OrderService) Update(ctx context.Context, id string, patch OrderPatch) (*domain.Order, error) {
	order, err := s.store.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Status == nil && patch.PaymentMode == nil {
		return nil, domain.Invalid("nothing to update")
	}
	now := time.Now().UTC()
	if patch.PaymentMode != nil {
		if order.Status == domain.OrderPaid {
			return nil, domain.ErrAlreadyFinalized
		}
		if !patch.PaymentMode.Valid() {
			return nil, domain.Invalid("unknown payment mode %q", *patch.PaymentMode)
		}
		order.PaymentMode = *patch.PaymentMode
		order.UpdatedAt = now
	}
	if patch.Status != nil {
		if err := order.TransitionTo(*patch.Status, now); err != nil {
			return nil, err
		}
	}
	if err := s.store.UpdateOrder(ctx, order); err != nil {
		return nil, err
	}
	if order.Status == domain.OrderPaid {
		return order, s.settled(ctx, order)
	}
	s.touched(domain.EntityOrders)
	if patch.Status != nil {
		s.emit(ctx, orderEvent(domain.EventOrderStatusChanged, order))
	}
	return order, nil
}

// MarkPaid settles the order from any non-terminal status.
func (s *OrderService) MarkPaid(ctx context.Context, id string) (*domain.Order, error) {
	order, err := s.store.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := order.Settle(time.Now().UTC()); err != nil {
		return nil, err
	}
	if err := s.store.UpdateOrder(ctx, order); err != nil {
		return nil, err
	}
	return order, s.settled(ctx, order)
}

// settled runs the side effects of reaching paid: the table is released when this
// order is its current one, and earned points are credited to the customer.
func (s *OrderService) settled(ctx context.Context, order *domain.Order) error {
	touched := []string{domain.EntityOrders}
	if order.TableID != "" {
		table, err := s.store.GetTable(ctx, order.TableID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
		case err != nil:
			return err
		case table.Status == domain.TableOccupied && table.CurrentOrderID == order.ID:
			if err := table.Free(); err != nil {
				return err
			}
			if err := s.store.UpdateTable(ctx, table); err != nil {
				return err
			}
			touched = append(touched, domain.EntityTables)
		}
	}
	if order.CustomerID != "" && order.LoyaltyPointsEarned > 0 && s.loyalty != nil {
		if _, err := s.loyalty.Award(ctx, order.CustomerID, order.LoyaltyPointsEarned); err != nil {
			return fmt.Errorf("failed to credit loyalty points: %w", err)
		}
	}
	s.touched(touched...)
	s.emit(ctx, orderEvent(domain.EventOrderPaid, order))
	return nil
}

func orderEvent(kind string, order *domain.Order) domain.Event {
	ev := domain.Event{
		Type:        kind,
		OrderID:     order.ID,
		TableNumber: order.TableNumber,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		Timestamp:   order.UpdatedAt,
	}
	for _, line := range order.Lines {
		ev.Items = append(ev.Items, domain.EventItem{
			MenuItemID: line.MenuItemID,
			Name:       line.Name,
			Quantity:   line.Quantity,
			LineTotal:  line.Total(),
		})
	}
	return ev
}
