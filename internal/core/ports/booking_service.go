package ports

import (
	"context"
	"time"

	"github.com/servnect/marketplace-api/internal/core/domain"
)

// CreateBookingInput carries the data a customer submits to request an
// expert. ServiceID is optional; when present the referenced catalog entry
// must exist.
type CreateBookingInput struct {
	ClientID    string
	ExpertID    string
	Category    string
	ServiceID   string
	ScheduledAt time.Time
	Notes       string
}

// BookingView is a booking enriched with the counterparty summary shown in
// the customer and expert dashboards.
type BookingView struct {
	Booking *domain.Booking
	// Expert is set on customer listings, Client on expert listings.
	Expert *domain.Identity
	Client *domain.Identity
}

// BookingService defines the booking use cases.
type BookingService interface {
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	// UpdateStatus transitions a booking; actorID must be the booking's expert.
	UpdateStatus(ctx context.Context, bookingID, actorID string, status domain.BookingStatus) (*domain.Booking, error)
	ListForClient(ctx context.Context, clientID string) ([]BookingView, error)
	ListForExpert(ctx context.Context, expertID string) ([]BookingView, error)
}
