package user

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound     = errors.New("user not found")
	ErrAlreadyExist = errors.New("user already exists")
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, u *User, updatePassword bool) error
	Delete(ctx context.Context, id string) (bool, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, u *User) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, phone, address, room_number, profile_image, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,NOW(),NOW())
	`, u.ID, u.Name, u.Email, u.PasswordHash, u.Phone, u.Address, u.RoomNumber, u.ProfileImage)
	if err != nil {
		// UNIQUE on email
		return ErrAlreadyExist
	}
	return nil
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var u User
	err := r.db.QueryRow(ctx, `
		SELECT id, name, email, password_hash, phone, address, room_number, profile_image, created_at, updated_at
		FROM users WHERE id=$1
	`, id).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.Address, &u.RoomNumber, &u.ProfileImage, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *PGRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var u User
	err := r.db.QueryRow(ctx, `
		SELECT id, name, email, password_hash, phone, address, room_number, profile_image, created_at, updated_at
		FROM users WHERE email=$1
	`, email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Phone, &u.Address, &u.RoomNumber, &u.ProfileImage, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *PGRepo) Update(ctx context.Context, u *User, updatePassword bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if updatePassword {
		_, err := r.db.Exec(ctx, `
			UPDATE users
			SET name          = COALESCE(NULLIF($2, ''), name),
			    phone         = COALESCE(NULLIF($3, ''), phone),
			    address       = COALESCE(NULLIF($4, ''), address),
			    room_number   = COALESCE(NULLIF($5, ''), room_number),
			    profile_image = COALESCE(NULLIF($6, ''), profile_image),
			    password_hash = $7,
			    updated_at    = NOW()
			WHERE id = $1
		`, u.ID, u.Name, u.Phone, u.Address, u.RoomNumber, u.ProfileImage, u.PasswordHash)
		return err
	}

	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET name          = COALESCE(NULLIF($2, ''), name),
		    phone         = COALESCE(NULLIF($3, ''), phone),
		    address       = COALESCE(NULLIF($4, ''), address),
		    room_number   = COALESCE(NULLIF($5, ''), room_number),
		    profile_image = COALESCE(NULLIF($6, ''), profile_image),
		    updated_at    = NOW()
		WHERE id = $1
	`, u.ID, u.Name, u.Phone, u.Address, u.RoomNumber, u.ProfileImage)
	return err
}

func (r *PGRepo) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// DeliveryAddress returns just the saved hostel and room number; order
// placement falls back to it when the request carries no address.
func (r *PGRepo) DeliveryAddress(ctx context.Context, userID string) (string, string, error) {
	u, err := r.GetByID(ctx, userID)
	if err != nil {
		return "", "", err
	}
	return u.Address, u.RoomNumber, nil
}
