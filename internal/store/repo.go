// Package store provides the repository interface and PostgreSQL implementation
// for managing stores, plus the service that orchestrates referential cleanup.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound     = errors.New("store not found")
	ErrAlreadyExist = errors.New("store already exists")
)

type Repository interface {
	Create(ctx context.Context, s *Store) error
	ExistsConflict(ctx context.Context, slug, username, email string) (bool, error)
	GetBySlug(ctx context.Context, slug string) (*Store, error)
	List(ctx context.Context) ([]Store, error)
	Update(ctx context.Context, originalSlug string, s *Store, updatePassword bool) (bool, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, s *Store) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO stores (id, slug, name, description, type, username, password_hash, email, phone, image, location, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,NOW(),NOW())
	`, s.ID, s.Slug, s.Name, s.Description, s.Type, s.Username, s.PasswordHash, s.Email, s.Phone, s.Image, s.Location)
	if err != nil {
		// UNIQUE on slug/username/email
		return ErrAlreadyExist
	}
	return nil
}

// ExistsConflict reports whether any store already holds the slug, username or
// email. The service checks this before inserting so the caller gets a clean
// conflict answer instead of a constraint error.
func (r *PGRepo) ExistsConflict(ctx context.Context, slug, username, email string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM stores WHERE slug=$1 OR username=$2 OR email=$3
		)
	`, slug, username, email).Scan(&exists)
	return exists, err
}

func (r *PGRepo) GetBySlug(ctx context.Context, slug string) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s Store
	err := r.db.QueryRow(ctx, `
		SELECT id, slug, name, description, type, username, password_hash, email, phone, image, location, created_at, updated_at
		FROM stores WHERE slug=$1
	`, slug).Scan(&s.ID, &s.Slug, &s.Name, &s.Description, &s.Type, &s.Username,
		&s.PasswordHash, &s.Email, &s.Phone, &s.Image, &s.Location, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *PGRepo) List(ctx context.Context) ([]Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, slug, name, description, type, username, password_hash, email, phone, image, location, created_at, updated_at
		FROM stores ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Store
	for rows.Next() {
		var s Store
		if err := rows.Scan(&s.ID, &s.Slug, &s.Name, &s.Description, &s.Type, &s.Username,
			&s.PasswordHash, &s.Email, &s.Phone, &s.Image, &s.Location, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Update rewrites the store addressed by its current slug. The slug itself may
// change here; the internal id never does. The password hash column is only
// touched when updatePassword is set. Returns false when no store matched.
func (r *PGRepo) Update(ctx context.Context, originalSlug string, s *Store, updatePassword bool) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if updatePassword {
		tag, err := r.db.Exec(ctx, `
			UPDATE stores
			SET slug=$2, name=$3, description=$4, type=$5, username=$6,
			    email=$7, phone=$8, image=$9, location=$10,
			    password_hash=$11, updated_at=NOW()
			WHERE slug=$1
		`, originalSlug, s.Slug, s.Name, s.Description, s.Type, s.Username,
			s.Email, s.Phone, s.Image, s.Location, s.PasswordHash)
		if err != nil {
			return false, err
		}
		return tag.RowsAffected() > 0, nil
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE stores
		SET slug=$2, name=$3, description=$4, type=$5, username=$6,
		    email=$7, phone=$8, image=$9, location=$10, updated_at=NOW()
		WHERE slug=$1
	`, originalSlug, s.Slug, s.Name, s.Description, s.Type, s.Username,
		s.Email, s.Phone, s.Image, s.Location)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// EmailByID returns the contact email for a store addressed by internal id.
// Order placement uses it to resolve the notification recipient.
func (r *PGRepo) EmailByID(ctx context.Context, id string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var email string
	err := r.db.QueryRow(ctx, `SELECT email FROM stores WHERE id=$1`, id).Scan(&email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return email, nil
}

// DeleteByID removes the store row by internal id. Deleting by id rather than
// slug avoids racing against a slug that was reused after lookup.
func (r *PGRepo) DeleteByID(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM stores WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
