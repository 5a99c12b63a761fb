package services

import (
	"context"
	"errors"

	"github.com/lostfound-app/apiserver/types"
)

// ErrNotOwner is returned when a caller tries to modify an item that
// belongs to another user.
var ErrNotOwner = errors.New("item belongs to another user")

// ItemRepository defines persistence operations for items.
type ItemRepository interface {
	List(ctx context.Context) ([]types.Item, error)
	ListByType(ctx context.Context, itemType string) ([]types.Item, error)
	Get(ctx context.Context, id string) (types.Item, error)
	Create(ctx context.Context, item types.Item) (types.Item, error)
	Update(ctx context.Context, item types.Item) (types.Item, error)
	Delete(ctx context.Context, id string) error
}

// ItemService encapsulates item use-cases, including the ownership
// policy for mutations.
type ItemService struct {
	repo ItemRepository
}

func NewItemService(repo ItemRepository) *ItemService {
	return &ItemService{repo: repo}
}

func (s *ItemService) List(ctx context.Context) ([]types.Item, error) {
	return s.repo.List(ctx)
}

func (s *ItemService) ListByType(ctx context.Context, itemType string) ([]types.Item, error) {
	return s.repo.ListByType(ctx, itemType)
}

func (s *ItemService) Get(ctx context.Context, id string) (types.Item, error) {
	return s.repo.Get(ctx, id)
}

// Create persists a new item owned by ownerID. The owner always comes
// from the authenticated caller, never from the request payload.
func (s *ItemService) Create(ctx context.Context, item types.Item, ownerID string) (types.Item, error) {
	item.UserID = ownerID
	if item.Status == "" {
		item.Status = types.ItemStatusOpen
	}
	return s.repo.Create(ctx, item)
}

// Update replaces the stored item's fields, keeping its id, owner, and
// creation time. Only the owner may update an item.
func (s *ItemService) Update(ctx context.Context, id string, item types.Item, callerID string) (types.Item, error) {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return types.Item{}, err
	}
	if existing.UserID != callerID {
		return types.Item{}, ErrNotOwner
	}

	item.ID = existing.ID
	item.UserID = existing.UserID
	item.CreatedAt = existing.CreatedAt
	if item.Status == "" {
		item.Status = existing.Status
	}
	return s.repo.Update(ctx, item)
}

// Delete permanently removes an item. Only the owner may delete it.
func (s *ItemService) Delete(ctx context.Context, id string, callerID string) error {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != callerID {
		return ErrNotOwner
	}
	return s.repo.Delete(ctx, id)
}
