// Package cart provides the repository interface and PostgreSQL implementation
// for the per-user cart and its line items.
package cart

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrItemNotFound = errors.New("cart item not found")

type Repository interface {
	GetOrCreate(ctx context.Context, userID string) (*Cart, error)
	AddItem(ctx context.Context, cartID string, it *Item) error
	UpdateQuantity(ctx context.Context, cartID, itemID string, qty int) error
	RemoveItem(ctx context.Context, cartID, itemID string) error
	RemoveByProduct(ctx context.Context, cartID string, productIDs []string) error
	PruneBySource(ctx context.Context, sourceID string) (int64, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

// GetOrCreate returns the user's cart with its items, creating an empty cart
// on first use so callers never see a not-found.
func (r *PGRepo) GetOrCreate(ctx context.Context, userID string) (*Cart, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var c Cart
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, created_at, updated_at FROM carts WHERE user_id=$1
	`, userID).Scan(&c.ID, &c.UserID, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		c = Cart{ID: uuid.NewString(), UserID: userID}
		if _, err := r.db.Exec(ctx, `
			INSERT INTO carts (id, user_id, created_at, updated_at) VALUES ($1,$2,NOW(),NOW())
		`, c.ID, c.UserID); err != nil {
			return nil, err
		}
		return &c, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, cart_id, product_id, source_id, name, price::text, quantity, created_at
		FROM cart_items WHERE cart_id=$1
		ORDER BY created_at
	`, c.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.CartID, &it.ProductID, &it.SourceID, &it.Name, &it.Price, &it.Quantity, &it.CreatedAt); err != nil {
			return nil, err
		}
		c.Items = append(c.Items, it)
	}
	return &c, rows.Err()
}

// AddItem inserts a line or merges the quantity into an existing line for the
// same product.
func (r *PGRepo) AddItem(ctx context.Context, cartID string, it *Item) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE cart_items SET quantity = quantity + $3
		WHERE cart_id=$1 AND product_id=$2
	`, cartID, it.ProductID, it.Quantity)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	it.CartID = cartID
	_, err = r.db.Exec(ctx, `
		INSERT INTO cart_items (id, cart_id, product_id, source_id, name, price, quantity, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,NOW())
	`, it.ID, it.CartID, it.ProductID, it.SourceID, it.Name, it.Price, it.Quantity)
	return err
}

func (r *PGRepo) UpdateQuantity(ctx context.Context, cartID, itemID string, qty int) error {
	if qty <= 0 {
		return r.RemoveItem(ctx, cartID, itemID)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE cart_items SET quantity=$3 WHERE id=$2 AND cart_id=$1
	`, cartID, itemID, qty)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *PGRepo) RemoveItem(ctx context.Context, cartID, itemID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		DELETE FROM cart_items WHERE id=$2 AND cart_id=$1
	`, cartID, itemID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}

// RemoveByProduct clears the given products from one cart. Used after order
// placement to drop the purchased lines.
func (r *PGRepo) RemoveByProduct(ctx context.Context, cartID string, productIDs []string) error {
	if len(productIDs) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		DELETE FROM cart_items WHERE cart_id=$1 AND product_id = ANY($2::uuid[])
	`, cartID, productIDs)
	return err
}

// PruneBySource removes exactly the line items originating from the given
// store across every cart. Carts themselves and items from other stores are
// left untouched. Used by the store deletion cascade.
func (r *PGRepo) PruneBySource(ctx context.Context, sourceID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM cart_items WHERE source_id=$1`, sourceID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
