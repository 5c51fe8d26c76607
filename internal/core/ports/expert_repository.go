package ports

import (
	"context"

	"github.com/servnect/marketplace-api/internal/core/domain"
)

// ExpertProfileUpdate carries the whitelisted fields an expert may change on
// their own profile. Nil pointers leave the stored value untouched.
type ExpertProfileUpdate struct {
	FirstName  *string
	LastName   *string
	Specialty  *string
	Bio        *string
	HourlyRate *float64
	Location   *string
}

// ExpertRepository defines persistence operations for expert accounts.
type ExpertRepository interface {
	Create(ctx context.Context, expert *domain.Expert) (*domain.Expert, error)
	FindByEmail(ctx context.Context, email string) (*domain.Expert, error)
	FindByID(ctx context.Context, id string) (*domain.Expert, error)
	UpdateProfile(ctx context.Context, id string, update ExpertProfileUpdate) (*domain.Expert, error)
	// List returns experts for the public directory, optionally filtered by
	// service category.
	List(ctx context.Context, service string) ([]*domain.Expert, error)
	Count(ctx context.Context) (int64, error)
}
