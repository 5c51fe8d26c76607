package ports

import (
	"context"

	"github.com/servnect/marketplace-api/internal/core/domain"
)

// BookingRepository defines persistence operations for bookings. Bookings are
// never deleted; the status field is the only mutable part.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.Booking, error)
	ListByExpert(ctx context.Context, expertID string) ([]*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	Count(ctx context.Context) (int64, error)
}
