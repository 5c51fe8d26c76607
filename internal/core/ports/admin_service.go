package ports

import (
	"context"

	"github.com/servnect/marketplace-api/internal/core/domain"
)

// Stats aggregates the collection counts shown on the admin dashboard.
type Stats struct {
	Users    int64 `json:"users"`
	Experts  int64 `json:"experts"`
	Services int64 `json:"services"`
	Bookings int64 `json:"bookings"`
}

// AdminService defines the admin-panel use cases.
type AdminService interface {
	Stats(ctx context.Context) (*Stats, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	ListBookings(ctx context.Context) ([]*domain.Booking, error)
	DeleteUser(ctx context.Context, id string) error
}
