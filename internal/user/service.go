package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingFields      = errors.New("name, email and password are required")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Service struct {
	repo      Repository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewService(repo Repository, jwtSecret string) *Service {
	return &Service{repo: repo, jwtSecret: []byte(jwtSecret), tokenTTL: 72 * time.Hour}
}

func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

func (s *Service) Register(ctx context.Context, in RegisterRequest) (*User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return nil, ErrMissingFields
	}
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifies the credentials and issues a signed token carrying the user id.
func (s *Service) Login(ctx context.Context, in LoginRequest) (string, *User, error) {
	if in.Email == "" || in.Password == "" {
		return "", nil, ErrInvalidCredentials
	}
	u, err := s.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !CheckPassword(u.PasswordHash, in.Password) {
		return "", nil, ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"userId": u.ID,
		"exp":    time.Now().Add(s.tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return token, u, nil
}

func (s *Service) Profile(ctx context.Context, userID string) (*User, error) {
	return s.repo.GetByID(ctx, userID)
}

// UpdateProfile overwrites the supplied fields; empty ones keep their current
// values and the password hash is only replaced when a new password arrives.
func (s *Service) UpdateProfile(ctx context.Context, userID string, in UpdateProfileRequest) (*User, error) {
	u := &User{
		ID:           userID,
		Name:         strings.TrimSpace(in.Name),
		Phone:        strings.TrimSpace(in.Phone),
		Address:      strings.TrimSpace(in.Address),
		RoomNumber:   strings.TrimSpace(in.RoomNumber),
		ProfileImage: strings.TrimSpace(in.ProfileImage),
	}
	updatePassword := false
	if in.Password != "" {
		hash, err := HashPassword(in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		u.PasswordHash = hash
		updatePassword = true
	}
	if err := s.repo.Update(ctx, u, updatePassword); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, userID)
}
