package user

import "time"

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"` // hostel
	RoomNumber   string    `json:"roomNumber,omitempty"`
	ProfileImage string    `json:"profileImage,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RegisterRequest payload of signup.
// swagger:model RegisterRequest
type RegisterRequest struct {
	Name     string `json:"name"     example:"Asha"`
	Email    string `json:"email"    example:"asha@campus.edu"`
	Password string `json:"password" example:"s3cret"`
}

// LoginRequest payload of login.
// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest payload of profile update. Empty fields keep their
// current values; password is only re-hashed when supplied.
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	RoomNumber   string `json:"roomNumber"`
	ProfileImage string `json:"profileImage"`
	Password     string `json:"password"`
}
