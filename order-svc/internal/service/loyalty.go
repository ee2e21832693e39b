package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tableside/order-svc/internal/domain"
)

var rewardCatalog = []domain.Reward{
	{ID: "free-appetizer", Name: "Free Appetizer", Cost: 100, Description: "Any appetizer from our menu"},
	{ID: "10-percent-off", Name: "10% Off", Cost: 150, Description: "10% discount on your next order"},
	{ID: "free-dessert", Name: "Free Dessert", Cost: 200, Description: "Any dessert from our menu"},
	{ID: "free-beverage", Name: "Free Beverage", Cost: 80, Description: "Any beverage from our menu"},
	{ID: "20-percent-off", Name: "20% Off", Cost: 300, Description: "20% discount on your next order"},
}

// tiers are ordered by descending threshold.
var tiers = []domain.Tier{
	{Name: "Platinum", MinPoints: 1500, Benefits: []string{"2x points on all orders", "Priority seating", "Complimentary dessert"}},
	{Name: "Gold", MinPoints: 500, Benefits: []string{"1.5x points on weekends", "Birthday reward"}},
	{Name: "Silver", MinPoints: 0, Benefits: []string{"1 point per 10 spent"}},
}

type LoyaltyStatus struct {
	domain.LoyaltyAccount
	Tier         domain.Tier  `json:"tier"`
	NextTier     *domain.Tier `json:"nextTier,omitempty"`
	PointsToNext int          `json:"pointsToNextTier,omitempty"`
}

func TierFor(points int) (domain.Tier, *domain.Tier) {
	for i, t := range tiers {
		if points >= t.MinPoints {
			if i == 0 {
				return t, nil
			}
			next := tiers[i-1]
			return t, &next
		}
	}
	return tiers[len(tiers)-1], nil
}

type LoyaltyService struct {
	repo LoyaltyRepository
}

func NewLoyaltyService(repo LoyaltyRepository) *LoyaltyService {
	return &LoyaltyService{repo: repo}
}

func (s *LoyaltyService) account(ctx context.Context, customerID string) (*domain.LoyaltyAccount, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, domain.Invalid("customerId is required")
	}
	acc, err := s.repo.GetLoyaltyAccount(ctx, customerID)
	if errors.Is(err, domain.ErrNotFound) {
		acc = &domain.LoyaltyAccount{CustomerID: customerID, LastUpdated: time.Now().UTC()}
		if err := s.repo.SaveLoyaltyAccount(ctx, acc); err != nil {
			return nil, fmt.Errorf("failed to open loyalty account: %w", err)
		}
		return acc, nil
	}
	return acc, err
}

// Get returns the account, opening an empty one on first lookup.
func (s *LoyaltyService) Get(ctx context.Context, customerID string) (*LoyaltyStatus, error) {
	acc, err := s.account(ctx, customerID)
	if err != nil {
		return nil, err
	}
	tier, next := TierFor(acc.Points)
	status := &LoyaltyStatus{LoyaltyAccount: *acc, Tier: tier, NextTier: next}
	if next != nil {
		status.PointsToNext = next.MinPoints - acc.Points
	}
	return status, nil
}

func (s *LoyaltyService) Award(ctx context.Context, customerID string, points int) (*domain.LoyaltyAccount, error) {
	if points < 0 {
		return nil, domain.Invalid("points cannot be negative")
	}
	acc, err := s.account(ctx, customerID)
	if err != nil {
		return nil, err
	}
	acc.Points += points
	acc.LastUpdated = time.Now().UTC()
	if err := s.repo.SaveLoyaltyAccount(ctx, acc); err != nil {
		return nil, err
	}
	return acc, nil
}

// Redeem spends points on a catalog reward. The balance is unchanged on error.
func (s *LoyaltyService) Redeem(ctx context.Context, customerID, rewardID string) (*domain.LoyaltyAccount, error) {
	reward, ok := findReward(rewardID)
	if !ok {
		return nil, fmt.Errorf("reward %q: %w", rewardID, domain.ErrNotFound)
	}
	acc, err := s.account(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if acc.Points < reward.Cost {
		return nil, fmt.Errorf("%w: have %d, need %d", domain.ErrInsufficientPoints, acc.Points, reward.Cost)
	}
	acc.Points -= reward.Cost
	acc.LastUpdated = time.Now().UTC()
	if err := s.repo.SaveLoyaltyAccount(ctx, acc); err != nil {
		return nil, err
	}
	return acc, nil
}

func (s *LoyaltyService) Rewards() []domain.Reward {
	out := make([]domain.Reward, len(rewardCatalog))
	copy(out, rewardCatalog)
	return out
}

func findReward(id string) (domain.Reward, bool) {
	for _, r := range rewardCatalog {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Reward{}, false
}
