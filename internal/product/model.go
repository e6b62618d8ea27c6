package product

import "time"

const (
	AvailabilityInStock    = "inStock"
	AvailabilityOutOfStock = "outOfStock"
)

type Product struct {
	ID string `json:"id"`
	// StoreID is the owning store's internal id, never its slug.
	StoreID     string `json:"store_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	// We store price as a string to avoid rounding errors (NUMERIC in Postgres)
	Price        string    `json:"price"`
	Availability string    `json:"availability"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateProductRequest payload of creation.
// swagger:model CreateProductRequest
type CreateProductRequest struct {
	StoreID      string `json:"store_id"    example:"4e7d4e5c-5cb9-4a3f-9f21-7e1a4f9f2b2a"`
	Name         string `json:"name"        example:"Veg Sandwich"`
	Description  string `json:"description" example:"Grilled, with chutney"`
	Price        string `json:"price"       example:"49.00"`
	Availability string `json:"availability" example:"inStock"`
}
