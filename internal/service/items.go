package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/procopiouriel/gerenciamento-itens-api/internal/errs"
	"github.com/procopiouriel/gerenciamento-itens-api/internal/model"
	"github.com/procopiouriel/gerenciamento-itens-api/internal/repository"
)

// ItemService defines CRUD over the caller's private item collection.
// The owner id always comes from the verified request identity, never from
// client-supplied payload fields.
type ItemService interface {
	// List returns all of the owner's items.
	List(ctx context.Context, ownerID uuid.UUID) ([]model.Item, error)
	// Get returns one item by id, scoped to the owner.
	Get(ctx context.Context, ownerID uuid.UUID, itemID int64) (*model.Item, error)
	// Create inserts a named item for the owner and returns it with its id.
	Create(ctx context.Context, ownerID uuid.UUID, name string) (*model.Item, error)
	// Update renames an item, scoped to the owner.
	Update(ctx context.Context, ownerID uuid.UUID, itemID int64, name string) (*model.Item, error)
	// Delete removes an item, scoped to the owner.
	Delete(ctx context.Context, ownerID uuid.UUID, itemID int64) error
}

type ItemServiceImpl struct {
	repo repository.ItemRepository
}

// NewItemService constructs ItemService over a repository.
func NewItemService(repo repository.ItemRepository) *ItemServiceImpl {
	return &ItemServiceImpl{repo: repo}
}

// List returns the owner's items; an owner with no items gets an empty slice.
func (s *ItemServiceImpl) List(ctx context.Context, ownerID uuid.UUID) ([]model.Item, error) {
	if ownerID == uuid.Nil {
		return nil, fmt.Errorf("%w: empty owner", errs.ErrValidation)
	}
	return s.repo.List(ctx, ownerID)
}

// Get fetches a single item by id within the owner's scope.
func (s *ItemServiceImpl) Get(ctx context.Context, ownerID uuid.UUID, itemID int64) (*model.Item, error) {
	if ownerID == uuid.Nil {
		return nil, fmt.Errorf("%w: empty owner", errs.ErrValidation)
	}
	return s.repo.Get(ctx, ownerID, itemID)
}

// Create validates the name and inserts the item bound to the owner.
func (s *ItemServiceImpl) Create(ctx context.Context, ownerID uuid.UUID, name string) (*model.Item, error) {
	if ownerID == uuid.Nil {
		return nil, fmt.Errorf("%w: empty owner", errs.ErrValidation)
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: empty name", errs.ErrValidation)
	}
	return s.repo.Create(ctx, ownerID, name)
}

// Update validates the name and renames the item within the owner's scope.
func (s *ItemServiceImpl) Update(ctx context.Context, ownerID uuid.UUID, itemID int64, name string) (*model.Item, error) {
	if ownerID == uuid.Nil {
		return nil, fmt.Errorf("%w: empty owner", errs.ErrValidation)
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: empty name", errs.ErrValidation)
	}
	return s.repo.Update(ctx, ownerID, itemID, name)
}

// Delete removes the item within the owner's scope.
func (s *ItemServiceImpl) Delete(ctx context.Context, ownerID uuid.UUID, itemID int64) error {
	if ownerID == uuid.Nil {
		return fmt.Errorf("%w: empty owner", errs.ErrValidation)
	}
	return s.repo.Delete(ctx, ownerID, itemID)
}
