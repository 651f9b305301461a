package postgres

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/procopiouriel/gerenciamento-itens-api/internal/errs"
	"github.com/procopiouriel/gerenciamento-itens-api/internal/model"
)

// ItemRepo implements ItemRepository using PostgreSQL. Every statement
// conjoins owner_id into its predicate; ownership is never a post-filter.
type ItemRepo struct{ db *DB }

// NewItemRepo constructs an item repository.
func NewItemRepo(db *DB) *ItemRepo { return &ItemRepo{db: db} }

// List returns the owner's items in storage order.
func (r *ItemRepo) List(ctx context.Context, ownerID uuid.UUID) ([]model.Item, error) {
	const q = `SELECT id, name FROM items WHERE owner_id=$1`
	rows, err := r.db.Pool.Query(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.Item{}
	for rows.Next() {
		it := model.Item{OwnerID: ownerID}
		if err = rows.Scan(&it.ID, &it.Name); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Get returns a single item by (id, owner).
func (r *ItemRepo) Get(ctx context.Context, ownerID uuid.UUID, itemID int64) (*model.Item, error) {
	const q = `SELECT id, name FROM items WHERE id=$1 AND owner_id=$2`
	row := r.db.Pool.QueryRow(ctx, q, itemID, ownerID)
	it := model.Item{OwnerID: ownerID}
	if err := row.Scan(&it.ID, &it.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &it, nil
}

// Create inserts an item bound to the owner and returns the assigned id.
func (r *ItemRepo) Create(ctx context.Context, ownerID uuid.UUID, name string) (*model.Item, error) {
	const q = `INSERT INTO items (name, owner_id) VALUES ($1, $2) RETURNING id`
	it := model.Item{Name: name, OwnerID: ownerID}
	if err := r.db.Pool.QueryRow(ctx, q, name, ownerID).Scan(&it.ID); err != nil {
		return nil, err
	}
	return &it, nil
}

// Update renames an item by (id, owner). A row held by another owner is
// indistinguishable from a missing row: both affect zero rows.
func (r *ItemRepo) Update(ctx context.Context, ownerID uuid.UUID, itemID int64, name string) (*model.Item, error) {
	const q = `UPDATE items SET name=$3 WHERE id=$1 AND owner_id=$2`
	tag, err := r.db.Pool.Exec(ctx, q, itemID, ownerID, name)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, errs.ErrNotFound
	}
	return &model.Item{ID: itemID, Name: name, OwnerID: ownerID}, nil
}

// Delete removes an item by (id, owner).
func (r *ItemRepo) Delete(ctx context.Context, ownerID uuid.UUID, itemID int64) error {
	const q = `DELETE FROM items WHERE id=$1 AND owner_id=$2`
	tag, err := r.db.Pool.Exec(ctx, q, itemID, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
