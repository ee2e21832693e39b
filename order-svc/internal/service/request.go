package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tableside/order-svc/internal/domain"
)

type RequestStore interface {
	ServiceRequestRepository
	BillingRequestRepository
	GetTableByNumber(ctx context.Context, number int) (*domain.Table, error)
}

type OrderSettler interface {
	List(ctx context.Context, filter OrderFilter) ([]domain.Order, error)
	MarkPaid(ctx context.Context, id string) (*domain.Order, error)
}

type TableReleaser interface {
	Free(ctx context.Context, id string) (*domain.Table, error)
}

type RequestService struct {
	store  RequestStore
	orders OrderSettler
	tables TableReleaser
	changes
}

func NewRequestService(store RequestStore, orders OrderSettler, tables TableReleaser, opts ...Option) *RequestService {
	return &RequestService{store: store, orders: orders, tables: tables, changes: newChanges(opts)}
}

func (s *RequestService) tableExists(ctx context.Context, number int) (*domain.Table, error) {
	if number < 1 {
		return nil, domain.Invalid("table is required")
	}
	table, err := s.store.GetTableByNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("table %d: %w", number, err)
	}
	return table, nil
}

// Raise records a new pending request. Several requests per table may be open at once.
func (s *RequestService) Raise(ctx context.Context, tableNumber int, requestType domain.RequestType) (*domain.ServiceRequest, error) {
	if !requestType.Valid() {
		return nil, domain.Invalid("unknown request type %q", requestType)
	}
	if _, err := s.tableExists(ctx, tableNumber); err != nil {
		return nil, err
	}
	req := &domain.ServiceRequest{
		ID:          uuid.NewString(),
		TableNumber: tableNumber,
		RequestType: requestType,
		Status:      domain.RequestPending,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.store.CreateServiceRequest(ctx, req); err != nil {
		return nil, err
	}
	s.touched(domain.EntityServiceRequests)
	return req, nil
}

// Complete is idempotent: a request that is already completed is returned unchanged.
func (s *RequestService) Complete(ctx context.Context, id string) (*domain.ServiceRequest, error) {
	req, err := s.store.GetServiceRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status == domain.RequestCompleted {
		return req, nil
	}
	now := time.Now().UTC()
	req.Status = domain.RequestCompleted
	req.CompletedAt = &now
	if err := s.store.UpdateServiceRequest(ctx, req); err != nil {
		return nil, err
	}
	s.touched(domain.EntityServiceRequests)
	return req, nil
}

func (s *RequestService) List(ctx context.Context, status domain.RequestStatus) ([]domain.ServiceRequest, error) {
	if status != "" && !status.Valid() {
		return nil, domain.Invalid("unknown status %q", status)
	}
	reqs, err := s.store.ListServiceRequests(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return reqs, nil
	}
	out := make([]domain.ServiceRequest, 0, len(reqs))
	for _, r := range reqs {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out, nil
}

// SweepExpired completes pending requests raised more than olderThan before now.
func (s *RequestService) SweepExpired(ctx context.Context, olderThan time.Duration, now time.Time) (int, error) {
	pending, err := s.List(ctx, domain.RequestPending)
	if err != nil {
		return 0, err
	}
	completed := 0
	for _, r := range pending {
		if now.Sub(r.CreatedAt) < olderThan {
			continue
		}
		if _, err := s.Complete(ctx, r.ID); err != nil {
			return completed, fmt.Errorf("request %s: %w", r.ID, err)
		}
		completed++
	}
	return completed, nil
}

func (s *RequestService) RaiseBill(ctx context.Context, tableNumber int) (*domain.BillingRequest, error) {
	if _, err := s.tableExists(ctx, tableNumber); err != nil {
		return nil, err
	}
	req := &domain.BillingRequest{
		ID:          uuid.NewString(),
		TableNumber: tableNumber,
		Status:      domain.RequestPending,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.store.CreateBillingRequest(ctx, req); err != nil {
		return nil, err
	}
	s.touched(domain.EntityBillingRequests)
	return req, nil
}

// CompleteBill records payment for the table: every unpaid dine-in order on it is
// settled and the table is released if it is still occupied. Takeout and order-ahead
// orders carrying the table number are paid at the counter. Completing twice is a no-op.
func (s *RequestService) CompleteBill(ctx context.Context, id string) (*domain.BillingRequest, error) {
	req, err := s.store.GetBillingRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Status == domain.RequestCompleted {
		return req, nil
	}

	if s.orders != nil {
		unpaid, err := s.orders.List(ctx, OrderFilter{
			TableNumber: req.TableNumber,
			OrderType:   domain.OrderDineIn,
			Unpaid:      true,
		})
		if err != nil {
			return nil, err
		}
		for _, o := range unpaid {
			if _, err := s.orders.MarkPaid(ctx, o.ID); err != nil {
				return nil, fmt.Errorf("order %s: %w", o.ID, err)
			}
		}
	}
	if s.tables != nil {
		table, err := s.store.GetTableByNumber(ctx, req.TableNumber)
		if err == nil && table.Status == domain.TableOccupied {
			if _, err := s.tables.Free(ctx, table.ID); err != nil {
				return nil, err
			}
		}
	}

	now := time.Now().UTC()
	req.Status = domain.RequestCompleted
	req.CompletedAt = &now
	if err := s.store.UpdateBillingRequest(ctx, req); err != nil {
		return nil, err
	}
	s.touched(domain.EntityBillingRequests)
	return req, nil
}

func (s *RequestService) ListBills(ctx context.Context, status domain.RequestStatus) ([]domain.BillingRequest, error) {
	if status != "" && !status.Valid() {
		return nil, domain.Invalid("unknown status %q", status)
	}
	reqs, err := s.store.ListBillingRequests(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return reqs, nil
	}
	out := make([]domain.BillingRequest, 0, len(reqs))
	for _, r := range reqs {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out, nil
}
