package order

// PlaceOrderRequest payload of order creation.
// swagger:model PlaceOrderRequest
type PlaceOrderRequest struct {
	StoreID    string   `json:"store_id"    example:"4e7d4e5c-5cb9-4a3f-9f21-7e1a4f9f2b2a"`
	ProductIDs []string `json:"product_ids"` // cart lines to purchase; empty => whole cart
	Address    string   `json:"address"     example:"Hostel Block C"`
	RoomNumber string   `json:"room_number" example:"C-214"`
}

// Buckets is the ongoing/history split returned by the profile endpoints.
// swagger:model OrderBuckets
type Buckets struct {
	Ongoing []Order `json:"ongoing"`
	History []Order `json:"history"`
}
