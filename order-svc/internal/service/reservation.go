package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"tableside/order-svc/internal/domain"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 \-]{6,18}[0-9]$`)

type ReservationStore interface {
	ReservationRepository
	GetTableByNumber(ctx context.Context, number int) (*domain.Table, error)
}

type TableReserver interface {
	Reserve(ctx context.Context, id, customerName, until string) (*domain.Table, error)
	Free(ctx context.Context, id string) (*domain.Table, error)
}

type ReservationService struct {
	store  ReservationStore
	tables TableReserver
	changes
}

func NewReservationService(store ReservationStore, tables TableReserver, opts ...Option) *ReservationService {
	return &ReservationService{store: store, tables: tables, changes: newChanges(opts)}
}

func validateReservation(res *domain.Reservation) error {
	res.CustomerName = strings.TrimSpace(res.CustomerName)
	res.CustomerPhone = strings.TrimSpace(res.CustomerPhone)
	switch {
	case res.CustomerName == "":
		return domain.Invalid("customerName is required")
	case !phonePattern.MatchString(res.CustomerPhone):
		return domain.Invalid("customerPhone is invalid")
	case res.PartySize < 1 || res.PartySize > maxSeats:
		return domain.Invalid("partySize must be between 1 and %d", maxSeats)
	}
	if _, err := time.Parse(time.DateOnly, res.Date); err != nil {
		return domain.Invalid("date must be YYYY-MM-DD")
	}
	if _, err := time.Parse("15:04", res.Time); err != nil {
		return domain.Invalid("time must be HH:MM")
	}
	return nil
}

func (s *ReservationService) Create(ctx context.Context, res *domain.Reservation) error {
	if err := validateReservation(res); err != nil {
		return err
	}
	if res.TableNumber != 0 {
		if _, err := s.store.GetTableByNumber(ctx, res.TableNumber); err != nil {
			return fmt.Errorf("table %d: %w", res.TableNumber, err)
		}
	}
	res.ID = uuid.NewString()
	res.Status = domain.ReservationPending
	res.CreatedAt = time.Now().UTC()
	if err := s.store.CreateReservation(ctx, res); err != nil {
		return err
	}
	s.touched(domain.EntityReservations)
	return nil
}

func (s *ReservationService) List(ctx context.Context) ([]domain.Reservation, error) {
	return s.store.ListReservations(ctx)
}

// UpdateStatus moves a booking along its flow. Confirming with a table number holds
// that table for the customer; cancelling or completing releases a table the booking
// is still holding. A party that was seated has already turned the hold into an order.
func (s *ReservationService) UpdateStatus(ctx context.Context, id string, next domain.ReservationStatus, tableNumber int) (*domain.Reservation, error) {
	res, err := s.store.GetReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	if tableNumber != 0 {
		res.TableNumber = tableNumber
	}
	if err := res.TransitionTo(next); err != nil {
		return nil, err
	}

	if res.TableNumber != 0 && s.tables != nil {
		table, err := s.store.GetTableByNumber(ctx, res.TableNumber)
		if err != nil {
			return nil, fmt.Errorf("table %d: %w", res.TableNumber, err)
		}
		switch {
		case next == domain.ReservationConfirmed:
			if _, err := s.tables.Reserve(ctx, table.ID, res.CustomerName, res.Date+" "+res.Time); err != nil {
				return nil, err
			}
		case (next == domain.ReservationCancelled || next == domain.ReservationCompleted) &&
			table.Status == domain.TableReserved && table.ReservedBy == res.CustomerName:
			if _, err := s.tables.Free(ctx, table.ID); err != nil {
				return nil, err
			}
		}
	}

	if err := s.store.UpdateReservation(ctx, res); err != nil {
		return nil, err
	}
	s.touched(domain.EntityReservations)
	return res, nil
}
