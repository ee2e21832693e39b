package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"tableside/order-svc/internal/domain"
)

type FeedbackStore interface {
	FeedbackRepository
	GetTableByNumber(ctx context.Context, number int) (*domain.Table, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
}

type FeedbackService struct {
	store FeedbackStore
	cache FeedbackCache
	changes
}

func NewFeedbackService(store FeedbackStore, cache FeedbackCache, opts ...Option) *FeedbackService {
	return &FeedbackService{store: store, cache: cache, changes: newChanges(opts)}
}

func (s *FeedbackService) Create(ctx context.Context, fb *domain.Feedback) error {
	if fb.Rating < 1 || fb.Rating > 5 {
		return domain.Invalid("rating must be between 1 and 5")
	}
	fb.Comment = strings.TrimSpace(fb.Comment)
	if _, err := s.store.GetTableByNumber(ctx, fb.TableNumber); err != nil {
		return fmt.Errorf("table %d: %w", fb.TableNumber, err)
	}

	var markerKey string
	if fb.OrderID != "" {
		if _, err := s.store.GetOrder(ctx, fb.OrderID); err != nil {
			return fmt.Errorf("order %s: %w", fb.OrderID, err)
		}
		if s.cache != nil {
			markerKey = s.cache.FeedbackMarkerKey(fb.OrderID)
			exists, err := s.cache.Exists(ctx, markerKey)
			if err != nil {
				s.warn(err, "feedback marker lookup failed, duplicate check skipped", logrus.Fields{"order_id": fb.OrderID})
			}
			if exists {
				return domain.ErrDuplicateFeedback
			}
		}
	}

	fb.ID = uuid.NewString()
	fb.CreatedAt = time.Now().UTC()
	if err := s.store.CreateFeedback(ctx, fb); err != nil {
		return err
	}
	if markerKey != "" {
		if err := s.cache.SetMarker(ctx, markerKey); err != nil {
			s.warn(err, "failed to store feedback marker", logrus.Fields{"order_id": fb.OrderID})
		}
	}

	s.touched(domain.EntityFeedback)
	s.emit(ctx, domain.Event{
		Type:        domain.EventNewFeedback,
		OrderID:     fb.OrderID,
		TableNumber: fb.TableNumber,
		Rating:      fb.Rating,
		Timestamp:   fb.CreatedAt,
	})
	return nil
}

func (s *FeedbackService) List(ctx context.Context) ([]domain.Feedback, error) {
	return s.store.ListFeedback(ctx)
}
