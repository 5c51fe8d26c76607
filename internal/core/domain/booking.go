package domain

import "time"

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusAccepted  BookingStatus = "accepted"
	StatusRejected  BookingStatus = "rejected"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// transitionTargets lists the statuses an expert may move a pending booking
// into. Every booking starts in pending and leaves it exactly once; bookings
// that already left pending are finalized and reject further updates.
var transitionTargets = map[BookingStatus]struct{}{
	StatusAccepted:  {},
	StatusRejected:  {},
	StatusCompleted: {},
	StatusCancelled: {},
}

// ValidTarget reports whether s is an allowed transition target.
func (s BookingStatus) ValidTarget() bool {
	_, ok := transitionTargets[s]
	return ok
}

// Finalized reports whether the booking status no longer accepts transitions.
func (s BookingStatus) Finalized() bool {
	return s != StatusPending
}

// Booking is a customer's request to engage an expert for a service category.
type Booking struct {
	ID          string        `json:"id"`
	ClientID    string        `json:"client_id"`
	ExpertID    string        `json:"expert_id"`
	ServiceID   string        `json:"service_id,omitempty"`
	Category    string        `json:"category"`
	ScheduledAt time.Time     `json:"scheduled_at"`
	Notes       string        `json:"notes,omitempty"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
