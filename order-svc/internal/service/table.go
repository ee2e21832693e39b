package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tableside/order-svc/internal/domain"
)

const maxSeats = 20

type TablePatch struct {
	Number        *int                `json:"number"`
	Seats         *int                `json:"seats"`
	Status        *domain.TableStatus `json:"status"`
	ReservedBy    *string             `json:"reservedBy"`
	ReservedUntil *string             `json:"reservedUntil"`
}

type TableService struct {
	repo TableRepository
	qr   QRGenerator
	changes
}

func NewTableService(repo TableRepository, qr QRGenerator, opts ...Option) *TableService {
	return &TableService{repo: repo, qr: qr, changes: newChanges(opts)}
}

func validateTable(number, seats int) error {
	if number < 1 {
		return domain.Invalid("table number must be at least 1")
	}
	if seats < 1 || seats > maxSeats {
		return domain.Invalid("seats must be between 1 and %d", maxSeats)
	}
	return nil
}

func (s *TableService) ensureNumberFree(ctx context.Context, number int, selfID string) error {
	existing, err := s.repo.GetTableByNumber(ctx, number)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID != selfID:
		return fmt.Errorf("%w: %d", domain.ErrDuplicateTableNumber, number)
	}
	return nil
}

func (s *TableService) Add(ctx context.Context, number, seats int) (*domain.Table, error) {
	if err := validateTable(number, seats); err != nil {
		return nil, err
	}
	if err := s.ensureNumberFree(ctx, number, ""); err != nil {
		return nil, err
	}
	table := &domain.Table{
		ID:        uuid.NewString(),
		Number:    number,
		Seats:     seats,
		Status:    domain.TableAvailable,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateTable(ctx, table); err != nil {
		return nil, err
	}
	s.touched(domain.EntityTables)
	return table, nil
}

func (s *TableService) List(ctx context.Context) ([]domain.Table, error) {
	return s.repo.ListTables(ctx)
}

func (s *TableService) Get(ctx context.Context, id string) (*domain.Table, error) {
	return s.repo.GetTable(ctx, id)
}

func (s *TableService) GetByNumber(ctx context.Context, number int) (*domain.Table, error) {
	return s.repo.GetTableByNumber(ctx, number)
}

// Update edits number and seats in place. A status change goes through the same
// state machine as the explicit actions.
func (s *TableService) Update(ctx context.Context, id string, patch TablePatch) (*domain.Table, error) {
	table, err := s.repo.GetTable(ctx, id)
	if err != nil {
		return nil, err
	}
	number, seats := table.Number, table.Seats
	if patch.Number != nil {
		number = *patch.Number
	}
	if patch.Seats != nil {
		seats = *patch.Seats
	}
	if err := validateTable(number, seats); err != nil {
		return nil, err
	}
	if number != table.Number {
		if err := s.ensureNumberFree(ctx, number, table.ID); err != nil {
			return nil, err
		}
	}
	table.Number, table.Seats = number, seats

	if patch.Status != nil && *patch.Status != table.Status {
		if err := applyTableStatus(table, *patch.Status, patch); err != nil {
			return nil, err
		}
	}
	return s.save(ctx, table)
}

func applyTableStatus(table *domain.Table, next domain.TableStatus, patch TablePatch) error {
	switch next {
	case domain.TableAvailable:
		if table.Status == domain.TableMaintenance {
			return table.ClearMaintenance()
		}
		return table.Free()
	case domain.TableOccupied:
		return table.Occupy(table.CurrentOrderID)
	case domain.TableReserved:
		var by, until string
		if patch.ReservedBy != nil {
			by = *patch.ReservedBy
		}
		if patch.ReservedUntil != nil {
			until = *patch.ReservedUntil
		}
		return table.Reserve(by, until)
	case domain.TableMaintenance:
		return table.SetMaintenance()
	}
	return domain.Invalid("unknown table status %q", next)
}

func (s *TableService) Delete(ctx context.Context, id string) error {
	table, err := s.repo.GetTable(ctx, id)
	if err != nil {
		return err
	}
	if table.Status == domain.TableOccupied {
		return fmt.Errorf("%w: table %d", domain.ErrTableOccupied, table.Number)
	}
	rows, err := s.repo.DeleteTable(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	s.touched(domain.EntityTables)
	return nil
}

func (s *TableService) Reserve(ctx context.Context, id, customerName, until string) (*domain.Table, error) {
	return s.mutate(ctx, id, func(t *domain.Table) error { return t.Reserve(customerName, until) })
}

func (s *TableService) Occupy(ctx context.Context, id, orderID string) (*domain.Table, error) {
	return s.mutate(ctx, id, func(t *domain.Table) error { return t.Occupy(orderID) })
}

func (s *TableService) Free(ctx context.Context, id string) (*domain.Table, error) {
	return s.mutate(ctx, id, (*domain.Table).Free)
}

func (s *TableService) SetMaintenance(ctx context.Context, id string) (*domain.Table, error) {
	return s.mutate(ctx, id, (*domain.Table).SetMaintenance)
}

func (s *TableService) ClearMaintenance(ctx context.Context, id string) (*domain.Table, error) {
	return s.mutate(ctx, id, (*domain.Table).ClearMaintenance)
}

func (s *TableService) QRCode(ctx context.Context, id string) ([]byte, error) {
	table, err := s.repo.GetTable(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.qr == nil {
		return nil, errors.New("qr generator not configured")
	}
	return s.qr.Generate(table.Number)
}

func (s *TableService) mutate(ctx context.Context, id string, fn func(*domain.Table) error) (*domain.Table, error) {
	table, err := s.repo.GetTable(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(table); err != nil {
		return nil, err
	}
	return s.save(ctx, table)
}

func (s *TableService) save(ctx context.Context, table *domain.Table) (*domain.Table, error) {
	if err := s.repo.UpdateTable(ctx, table); err != nil {
		return nil, err
	}
	s.touched(domain.EntityTables)
	return table, nil
}
