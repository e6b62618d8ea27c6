package store

import "time"

// Store is a campus storefront. ID is the immutable internal id every other
// collection references; Slug is the human-chosen identifier used in admin
// workflows and may be renamed.
type Store struct {
	ID           string    `json:"_id"`
	Slug         string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Type         string    `json:"type"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Image        string    `json:"image,omitempty"`
	Location     string    `json:"location"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateStoreRequest payload of store creation.
// swagger:model CreateStoreRequest
type CreateStoreRequest struct {
	Slug        string `json:"id"          example:"midnight-munchies"`
	Name        string `json:"name"        example:"Midnight Munchies"`
	Description string `json:"description" example:"Late night snacks"`
	Type        string `json:"type"        example:"snacks"`
	Username    string `json:"username"    example:"munchies_admin"`
	Password    string `json:"password"    example:"s3cret"`
	Phone       string `json:"phone"       example:"+91 9000000000"`
	Email       string `json:"email"       example:"munchies@campus.edu"`
	Image       string `json:"image"`
	Location    string `json:"location"    example:"Hostel Block C"`
}

// UpdateStoreRequest payload of store update. OriginalID addresses the store;
// Slug is the (possibly new) identifier being set.
// swagger:model UpdateStoreRequest
type UpdateStoreRequest struct {
	OriginalID  string `json:"originalId"`
	Slug        string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Username    string `json:"username"`
	Password    string `json:"password"` // empty => keep current hash
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Image       string `json:"image"`
	Location    string `json:"location"`
}
