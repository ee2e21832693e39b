package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"tableside/order-svc/internal/domain"
)

const (
	defaultPreparationTime = 15
	defaultInventory       = 100
)

type MenuItemPatch struct {
	Name            *string          `json:"name"`
	Description     *string          `json:"description"`
	Price           *decimal.Decimal `json:"price"`
	Category        *string          `json:"category"`
	Image           *string          `json:"image"`
	IsVegetarian    *bool            `json:"isVegetarian"`
	IsSpicy         *bool            `json:"isSpicy"`
	PreparationTime *int             `json:"preparationTime"`
	InStock         *bool            `json:"inStock"`
	Inventory       *int             `json:"inventory"`
}

type MenuService struct {
	repo MenuRepository
	changes
}

func NewMenuService(repo MenuRepository, opts ...Option) *MenuService {
	return &MenuService{repo: repo, changes: newChanges(opts)}
}

func validateMenuItem(item *domain.MenuItem) error {
	switch {
	case strings.TrimSpace(item.Name) == "":
		return domain.Invalid("name is required")
	case strings.TrimSpace(item.Category) == "":
		return domain.Invalid("category is required")
	case !item.Price.IsPositive():
		return domain.Invalid("price must be greater than 0")
	case item.PreparationTime < 1:
		return domain.Invalid("preparationTime must be at least 1 minute")
	case item.Inventory < 0:
		return domain.Invalid("inventory cannot be negative")
	}
	return nil
}

func (s *MenuService) List(ctx context.Context, category string) ([]domain.MenuItem, error) {
	items, err := s.repo.ListMenuItems(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" || category == "all" {
		return items, nil
	}
	filtered := make([]domain.MenuItem, 0, len(items))
	for _, item := range items {
		if strings.EqualFold(item.Category, category) {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

func (s *MenuService) Get(ctx context.Context, id string) (*domain.MenuItem, error) {
	return s.repo.GetMenuItem(ctx, id)
}

// Create builds a menu item from input. Omitted preparation time and inventory take
// their defaults; an item is in stock whenever it has inventory unless input says otherwise.
func (s *MenuService) Create(ctx context.Context, input MenuItemPatch) (*domain.MenuItem, error) {
	now := time.Now().UTC()
	item := &domain.MenuItem{
		ID:              uuid.NewString(),
		PreparationTime: defaultPreparationTime,
		Inventory:       defaultInventory,
		CreatedAt:       now,
	}
	applyMenuPatch(item, input)
	if input.InStock == nil {
		item.InStock = item.Inventory > 0
	}
	if err := validateMenuItem(item); err != nil {
		return nil, err
	}
	item.UpdatedAt = now
	if err := s.repo.CreateMenuItem(ctx, item); err != nil {
		return nil, err
	}
	s.touched(domain.EntityMenu)
	return item, nil
}

func applyMenuPatch(item *domain.MenuItem, patch MenuItemPatch) {
	if patch.Name != nil {
		item.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Price != nil {
		item.Price = patch.Price.Round(2)
	}
	if patch.Category != nil {
		item.Category = strings.TrimSpace(*patch.Category)
	}
	if patch.Image != nil {
		item.Image = *patch.Image
	}
	if patch.IsVegetarian != nil {
		item.IsVegetarian = *patch.IsVegetarian
	}
	if patch.IsSpicy != nil {
		item.IsSpicy = *patch.IsSpicy
	}
	if patch.PreparationTime != nil {
		item.PreparationTime = *patch.PreparationTime
	}
	if patch.Inventory != nil {
		item.Inventory = *patch.Inventory
		item.InStock = item.Inventory > 0
	}
	if patch.InStock != nil {
		item.InStock = *patch.InStock && item.Inventory > 0
	}
}

func (s *MenuService) Update(ctx context.Context, id string, patch MenuItemPatch) (*domain.MenuItem, error) {
	item, err := s.repo.GetMenuItem(ctx, id)
	if err != nil {
		return nil, err
	}
	applyMenuPatch(item, patch)
	if err := validateMenuItem(item); err != nil {
		return nil, err
	}
	item.UpdatedAt = time.Now().UTC()
	if err := s.repo.UpdateMenuItem(ctx, item); err != nil {
		return nil, err
	}
	s.touched(domain.EntityMenu)
	return item, nil
}

func (s *MenuService) Delete(ctx context.Context, id string) error {
	rows, err := s.repo.DeleteMenuItem(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	s.touched(domain.EntityMenu)
	return nil
}

func (s *MenuService) UpdateImage(ctx context.Context, id, image string) (*domain.MenuItem, error) {
	return s.Update(ctx, id, MenuItemPatch{Image: &image})
}
