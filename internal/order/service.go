// Package order implements order placement, status transitions and the
// ongoing/history bucketing used by the profile screens.
package order

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rmoralesc/campus-delivery/internal/cart"
	"github.com/rmoralesc/campus-delivery/internal/mail"
)

var (
	ErrEmptyOrder     = errors.New("no items to order")
	ErrNotCancellable = errors.New("order can no longer be cancelled")
)

// StoreDirectory resolves the notification recipient for a store.
type StoreDirectory interface {
	EmailByID(ctx context.Context, storeID string) (string, error)
}

// AddressBook supplies the delivery address saved on the user profile, used
// when the request carries none.
type AddressBook interface {
	DeliveryAddress(ctx context.Context, userID string) (address, roomNumber string, err error)
}

// Notifier sends the order-created mail. Delivery is best effort; the result
// is logged and never fails the order.
type Notifier interface {
	SendOrderNotification(to string, summary mail.OrderSummary) mail.SendResult
}

type Service struct {
	repo   Repository
	carts  cart.Repository
	stores StoreDirectory
	users  AddressBook
	notify Notifier
}

func NewService(repo Repository, carts cart.Repository, stores StoreDirectory, users AddressBook, notify Notifier) *Service {
	return &Service{repo: repo, carts: carts, stores: stores, users: users, notify: notify}
}

// Place snapshots the selected cart lines for one store into an immutable
// order, clears them from the cart and fires the notification mail.
func (s *Service) Place(ctx context.Context, userID string, in PlaceOrderRequest) (*Order, error) {
	if in.StoreID == "" {
		return nil, fmt.Errorf("%w: store_id is required", ErrEmptyOrder)
	}

	c, err := s.carts.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	wanted := map[string]bool{}
	for _, id := range in.ProductIDs {
		wanted[id] = true
	}

	var (
		items     []Item
		purchased []string
		total     = decimal.Zero
	)
	for _, line := range c.Items {
		if line.SourceID != in.StoreID {
			continue
		}
		if len(wanted) > 0 && !wanted[line.ProductID] {
			continue
		}
		price, err := decimal.NewFromString(line.Price)
		if err != nil {
			return nil, fmt.Errorf("bad price on cart line %s: %w", line.ID, err)
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		items = append(items, Item{
			ID:        uuid.NewString(),
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
		purchased = append(purchased, line.ProductID)
	}
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	address, room := in.Address, in.RoomNumber
	if address == "" && s.users != nil {
		if a, r, err := s.users.DeliveryAddress(ctx, userID); err == nil {
			address, room = a, r
		}
	}

	o := &Order{
		ID:         uuid.NewString(),
		UserID:     userID,
		StoreID:    in.StoreID,
		Status:     StatusPending,
		Total:      total.StringFixed(2),
		Address:    address,
		RoomNumber: room,
	}
	if err := s.repo.Create(ctx, o, items); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.sendNotification(ctx, o, items)

	if err := s.carts.RemoveByProduct(ctx, c.ID, purchased); err != nil {
		// the order exists; a stale cart line is an annoyance, not a failure
		log.Printf("[order] clear cart after order %s: %v", o.ID, err)
	}
	return o, nil
}

func (s *Service) sendNotification(ctx context.Context, o *Order, items []Item) {
	if s.notify == nil || s.stores == nil {
		return
	}
	to, err := s.stores.EmailByID(ctx, o.StoreID)
	if err != nil || to == "" {
		log.Printf("[order] no notification recipient for store %s: %v", o.StoreID, err)
		return
	}
	summary := mail.OrderSummary{ID: o.ID, TotalAmount: o.Total}
	for _, it := range items {
		summary.Items = append(summary.Items, mail.SummaryItem{Name: it.Name, Quantity: it.Quantity})
	}
	if res := s.notify.SendOrderNotification(to, summary); !res.Success && !res.Skipped {
		log.Printf("[order] notification for %s failed: %v", o.ID, res.Err)
	}
}

// Cancel marks the user's order CANCELLED while it is still ongoing.
func (s *Service) Cancel(ctx context.Context, userID, orderID string) error {
	o, _, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if o.UserID != userID {
		return ErrNotFound
	}
	if !o.Status.Ongoing() {
		return ErrNotCancellable
	}
	return s.repo.UpdateStatus(ctx, orderID, StatusCancelled)
}

// SetStatus applies an arbitrary valid status; used by the store dashboard.
func (s *Service) SetStatus(ctx context.Context, orderID string, status string) error {
	st, err := ParseStatus(status)
	if err != nil {
		return err
	}
	return s.repo.UpdateStatus(ctx, orderID, st)
}

func (s *Service) Get(ctx context.Context, userID, orderID string) (*Order, []Item, error) {
	o, items, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	if o.UserID != userID {
		return nil, nil, ErrNotFound
	}
	return o, items, nil
}

// ListBuckets returns the user's orders split into ongoing and history.
func (s *Service) ListBuckets(ctx context.Context, userID string, limit, offset int) (Buckets, error) {
	orders, err := s.repo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return Buckets{}, err
	}
	ongoing, history := Bucket(orders)
	return Buckets{Ongoing: ongoing, History: history}, nil
}
