package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
)

var ErrMissingFields = errors.New("all fields are required")

const defaultLocation = "On Campus"

// Logical view paths invalidated after every mutating store operation.
const (
	ViewAdminStores  = "/admin/stores"
	ViewPublicStores = "/api/stores"
)

// ProductCleaner bulk-deletes products owned by a store.
type ProductCleaner interface {
	DeleteByStore(ctx context.Context, storeID string) (int64, error)
}

// CartPruner removes exactly the cart line items sourced from a store,
// leaving carts and all other items in place.
type CartPruner interface {
	PruneBySource(ctx context.Context, sourceID string) (int64, error)
}

// ViewInvalidator is notified after mutations so rendered listings refresh.
type ViewInvalidator interface {
	Invalidate(paths ...string)
}

type Service struct {
	repo     Repository
	products ProductCleaner
	carts    CartPruner
	views    ViewInvalidator
}

func NewService(repo Repository, products ProductCleaner, carts CartPruner, views ViewInvalidator) *Service {
	return &Service{repo: repo, products: products, carts: carts, views: views}
}

// Create validates, checks the slug/username/email trio for conflicts, hashes
// the password and inserts the store. Nothing is written on conflict.
func (s *Service) Create(ctx context.Context, in CreateStoreRequest) (*Store, error) {
	slug := strings.TrimSpace(in.Slug)
	name := strings.TrimSpace(in.Name)
	description := strings.TrimSpace(in.Description)
	storeType := strings.TrimSpace(in.Type)
	username := strings.TrimSpace(in.Username)
	phone := strings.TrimSpace(in.Phone)
	email := strings.TrimSpace(in.Email)

	if slug == "" || name == "" || description == "" || storeType == "" ||
		username == "" || in.Password == "" || phone == "" || email == "" {
		return nil, ErrMissingFields
	}

	exists, err := s.repo.ExistsConflict(ctx, slug, username, email)
	if err != nil {
		return nil, fmt.Errorf("conflict check: %w", err)
	}
	if exists {
		return nil, ErrAlreadyExist
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	location := strings.TrimSpace(in.Location)
	if location == "" {
		location = defaultLocation
	}

	st := &Store{
		ID:           uuid.NewString(),
		Slug:         slug,
		Name:         name,
		Description:  description,
		Type:         storeType,
		Username:     username,
		PasswordHash: hash,
		Email:        email,
		Phone:        phone,
		Image:        strings.TrimSpace(in.Image),
		Location:     location,
	}
	if err := s.repo.Create(ctx, st); err != nil {
		return nil, err
	}
	s.invalidate()
	return st, nil
}

// Update rewrites the store addressed by its current slug; the slug may be
// renamed in the same call. The stored password hash is replaced only when a
// non-empty password is supplied. A missing original slug is reported as
// ErrNotFound rather than silently succeeding.
func (s *Service) Update(ctx context.Context, in UpdateStoreRequest) error {
	originalSlug := strings.TrimSpace(in.OriginalID)
	if originalSlug == "" {
		return fmt.Errorf("%w: missing original store id", ErrMissingFields)
	}
	slug := strings.TrimSpace(in.Slug)
	name := strings.TrimSpace(in.Name)
	description := strings.TrimSpace(in.Description)
	if slug == "" || name == "" || description == "" {
		return ErrMissingFields
	}

	st := &Store{
		Slug:        slug,
		Name:        name,
		Description: description,
		Type:        strings.TrimSpace(in.Type),
		Username:    strings.TrimSpace(in.Username),
		Email:       strings.TrimSpace(in.Email),
		Phone:       strings.TrimSpace(in.Phone),
		Image:       strings.TrimSpace(in.Image),
		Location:    strings.TrimSpace(in.Location),
	}

	updatePassword := false
	if in.Password != "" {
		hash, err := HashPassword(in.Password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		st.PasswordHash = hash
		updatePassword = true
	}

	ok, err := s.repo.Update(ctx, originalSlug, st, updatePassword)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	s.invalidate()
	return nil
}

// Delete removes the store addressed by slug together with everything that
// references it. Deleting a slug that matches nothing is a success with zero
// side effects.
//
// The cleanup order is fixed: products first, then cart line items, then the
// store row itself (by internal id, captured before any deletion). A storage
// error aborts the remaining steps; partial cleanup is accepted, there is no
// compensating rollback.
func (s *Service) Delete(ctx context.Context, slug string) error {
	defer s.invalidate()

	st, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}

	removed, err := s.products.DeleteByStore(ctx, st.ID)
	if err != nil {
		return fmt.Errorf("delete products: %w", err)
	}
	pruned, err := s.carts.PruneBySource(ctx, st.ID)
	if err != nil {
		return fmt.Errorf("prune carts: %w", err)
	}
	if _, err := s.repo.DeleteByID(ctx, st.ID); err != nil {
		return fmt.Errorf("delete store: %w", err)
	}
	log.Printf("[store] deleted %q: %d products removed, %d cart items pruned", slug, removed, pruned)
	return nil
}

func (s *Service) Get(ctx context.Context, slug string) (*Store, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *Service) List(ctx context.Context) ([]Store, error) {
	return s.repo.List(ctx)
}

func (s *Service) invalidate() {
	if s.views != nil {
		s.views.Invalidate(ViewAdminStores, ViewPublicStores)
	}
}
