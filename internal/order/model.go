package order

import "time"

type Order struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	StoreID    string    `json:"store_id"`
	Status     Status    `json:"status"`
	Total      string    `json:"total"` // NUMERIC -> string
	Address    string    `json:"address,omitempty"`
	RoomNumber string    `json:"room_number,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Item is an immutable snapshot of a purchased line; it keeps its own name
// and price so later product edits never rewrite order history.
type Item struct {
	ID        string `json:"id"`
	OrderID   string `json:"order_id"`
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}
