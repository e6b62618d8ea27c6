package order

import "fmt"

// Status is the closed set of order states. Keeping it a distinct type forces
// exhaustive handling when states are added.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusPreparing Status = "PREPARING"
	StatusReady     Status = "READY"
	StatusDelivered Status = "DELIVERED"
	StatusCancelled Status = "CANCELLED"
)

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled:
		return st, nil
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

// Ongoing reports whether the order is still actionable by the user or store.
func (s Status) Ongoing() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady:
		return true
	case StatusDelivered, StatusCancelled:
		return false
	}
	return false
}

// Bucket partitions orders into ongoing and history, preserving the relative
// order of the input in both buckets.
func Bucket(orders []Order) (ongoing, history []Order) {
	for _, o := range orders {
		if o.Status.Ongoing() {
			ongoing = append(ongoing, o)
		} else {
			history = append(history, o)
		}
	}
	return ongoing, history
}
