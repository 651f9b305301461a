package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/procopiouriel/gerenciamento-itens-api/internal/model"
)

// ItemRepository provides owner-scoped access to items. Every operation
// takes the owner id and conjoins it into the query predicate, so a row
// belonging to another owner behaves exactly like a missing row.
type ItemRepository interface {
	// List returns all items of the owner in storage order.
	List(ctx context.Context, ownerID uuid.UUID) ([]model.Item, error)

	// Get returns a single item by (id, owner). Another owner's item
	// yields errs.ErrNotFound.
	Get(ctx context.Context, ownerID uuid.UUID, itemID int64) (*model.Item, error)

	// Create inserts an item bound to the owner and returns it with the
	// assigned id.
	Create(ctx context.Context, ownerID uuid.UUID, name string) (*model.Item, error)

	// Update renames an item by (id, owner). Zero rows affected yields
	// errs.ErrNotFound.
	Update(ctx context.Context, ownerID uuid.UUID, itemID int64, name string) (*model.Item, error)

	// Delete removes an item by (id, owner). Zero rows affected yields
	// errs.ErrNotFound.
	Delete(ctx context.Context, ownerID uuid.UUID, itemID int64) error
}
