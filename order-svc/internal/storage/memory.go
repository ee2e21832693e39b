package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"tableside/order-svc/internal/domain"
	"tableside/order-svc/internal/service"
)

// MemoryStore keeps every entity in process memory. It is used when no database is
// configured and is lost on restart. Reads and writes exchange copies so callers never
// share state with the store.
type MemoryStore struct {
	mu              sync.RWMutex
	menu            map[string]domain.MenuItem
	orders          map[string]domain.Order
	tables          map[string]domain.Table
	serviceRequests map[string]domain.ServiceRequest
	billingRequests map[string]domain.BillingRequest
	reservations    map[string]domain.Reservation
	feedback        []domain.Feedback
	loyalty         map[string]domain.LoyaltyAccount
}

var _ service.Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		menu:            make(map[string]domain.MenuItem),
		orders:          make(map[string]domain.Order),
		tables:          make(map[string]domain.Table),
		serviceRequests: make(map[string]domain.ServiceRequest),
		billingRequests: make(map[string]domain.BillingRequest),
		reservations:    make(map[string]domain.Reservation),
		loyalty:         make(map[string]domain.LoyaltyAccount),
	}
}

func (s *MemoryStore) ListMenuItems(_ context.Context) ([]domain.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]domain.MenuItem, 0, len(s.menu))
	for _, item := range s.menu {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		return items[i].Name < items[j].Name
	})
	return items, nil
}

func (s *MemoryStore) GetMenuItem(_ context.Context, id string) (*domain.MenuItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.menu[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &item, nil
}

func (s *MemoryStore) CreateMenuItem(_ context.Context, item *domain.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.menu[item.ID] = *item
	return nil
}

func (s *MemoryStore) UpdateMenuItem(_ context.Context, item *domain.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.menu[item.ID]; !ok {
		return domain.ErrNotFound
	}
	s.menu[item.ID] = *item
	return nil
}

func (s *MemoryStore) DeleteMenuItem(_ context.Context, id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.menu[id]; !ok {
		return 0, nil
	}
	delete(s.menu, id)
	return 1, nil
}

func copyOrder(o domain.Order) domain.Order {
	o.Lines = append([]domain.OrderLine(nil), o.Lines...)
	if o.ScheduledTime != nil {
		t := *o.ScheduledTime
		o.ScheduledTime = &t
	}
	return o
}

func (s *MemoryStore) CreateOrder(_ context.Context, order *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[order.ID] = copyOrder(*order)
	return nil
}

func (s *MemoryStore) GetOrder(_ context.Context, id string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	order, ok := s.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	order = copyOrder(order)
	return &order, nil
}

func (s *MemoryStore) ListOrders(_ context.Context) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	orders := make([]domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		orders = append(orders, copyOrder(o))
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.Before(orders[j].CreatedAt) })
	return orders, nil
}

func (s *MemoryStore) UpdateOrder(_ context.Context, order *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[order.ID]; !ok {
		return domain.ErrNotFound
	}
	s.orders[order.ID] = copyOrder(*order)
	return nil
}

func (s *MemoryStore) numberTaken(number int, exceptID string) bool {
	for id, t := range s.tables {
		if t.Number == number && id != exceptID {
			return true
		}
	}
	return false
}

func (s *MemoryStore) CreateTable(_ context.Context, table *domain.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.numberTaken(table.Number, table.ID) {
		return fmt.Errorf("%w: %d", domain.ErrDuplicateTableNumber, table.Number)
	}
	s.tables[table.ID] = *table
	return nil
}

func (s *MemoryStore) GetTable(_ context.Context, id string) (*domain.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tables[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (s *MemoryStore) GetTableByNumber(_ context.Context, number int) (*domain.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tables {
		if t.Number == number {
			return &t, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *MemoryStore) ListTables(_ context.Context) ([]domain.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tables := make([]domain.Table, 0, len(s.tables))
	for _, t := range s.tables {
		tables = append(tables, t)
	}
	sort.Slice(tables, func(i, j int) bool { return tables[i].Number < tables[j].Number })
	return tables, nil
}

func (s *MemoryStore) UpdateTable(_ context.Context, table *domain.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tables[table.ID]; !ok {
		return domain.ErrNotFound
	}
	if s.numberTaken(table.Number, table.ID) {
		return fmt.Errorf("%w: %d", domain.ErrDuplicateTableNumber, table.Number)
	}
	s.tables[table.ID] = *table
	return nil
}

func (s *MemoryStore) DeleteTable(_ context.Context, id string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tables[id]; !ok {
		return 0, nil
	}
	delete(s.tables, id)
	return 1, nil
}

func (s *MemoryStore) CreateServiceRequest(_ context.Context, req *domain.ServiceRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.serviceRequests[req.ID] = *req
	return nil
}

func (s *MemoryStore) GetServiceRequest(_ context.Context, id string) (*domain.ServiceRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	req, ok := s.serviceRequests[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &req, nil
}

func (s *MemoryStore) ListServiceRequests(_ context.Context) ([]domain.ServiceRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	reqs := make([]domain.ServiceRequest, 0, len(s.serviceRequests))
	for _, r := range s.serviceRequests {
		reqs = append(reqs, r)
	}
	sort.Slice(reqs, func(i, j int) bool { return reqs[i].CreatedAt.Before(reqs[j].CreatedAt) })
	return reqs, nil
}

func (s *MemoryStore) UpdateServiceRequest(_ context.Context, req *domain.ServiceRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.serviceRequests[req.ID]; !ok {
		return domain.ErrNotFound
	}
	s.serviceRequests[req.ID] = *req
	return nil
}

func (s *MemoryStore) CreateBillingRequest(_ context.Context, req *domain.BillingRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.billingRequests[req.ID] = *req
	return nil
}

func (s *MemoryStore) GetBillingRequest(_ context.Context, id string) (*domain.BillingRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	req, ok := s.billingRequests[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &req, nil
}

func (s *MemoryStore) ListBillingRequests(_ context.Context) ([]domain.BillingRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	reqs := make([]domain.BillingRequest, 0, len(s.billingRequests))
	for _, r := range s.billingRequests {
		reqs = append(reqs, r)
	}
	sort.Slice(reqs, func(i, j int) bool { return reqs[i].CreatedAt.Before(reqs[j].CreatedAt) })
	return reqs, nil
}

func (s *MemoryStore) UpdateBillingRequest(_ context.Context, req *domain.BillingRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.billingRequests[req.ID]; !ok {
		return domain.ErrNotFound
	}
	s.billingRequests[req.ID] = *req
	return nil
}

func (s *MemoryStore) CreateReservation(_ context.Context, res *domain.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations[res.ID] = *res
	return nil
}

func (s *MemoryStore) GetReservation(_ context.Context, id string) (*domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res, ok := s.reservations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &res, nil
}

func (s *MemoryStore) ListReservations(_ context.Context) ([]domain.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]domain.Reservation, 0, len(s.reservations))
	for _, r := range s.reservations {
		list = append(list, r)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Date != list[j].Date {
			return list[i].Date < list[j].Date
		}
		return list[i].Time < list[j].Time
	})
	return list, nil
}

func (s *MemoryStore) UpdateReservation(_ context.Context, res *domain.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reservations[res.ID]; !ok {
		return domain.ErrNotFound
	}
	s.reservations[res.ID] = *res
	return nil
}

func (s *MemoryStore) CreateFeedback(_ context.Context, fb *domain.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feedback = append(s.feedback, *fb)
	return nil
}

// ListFeedback returns the newest feedback first.
func (s *MemoryStore) ListFeedback(_ context.Context) ([]domain.Feedback, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]domain.Feedback, len(s.feedback))
	for i, fb := range s.feedback {
		list[len(s.feedback)-1-i] = fb
	}
	return list, nil
}

func (s *MemoryStore) GetLoyaltyAccount(_ context.Context, customerID string) (*domain.LoyaltyAccount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.loyalty[customerID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &acc, nil
}

func (s *MemoryStore) SaveLoyaltyAccount(_ context.Context, account *domain.LoyaltyAccount) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loyalty[account.CustomerID] = *account
	return nil
}
