package ports

import (
	"context"

	"github.com/servnect/marketplace-api/internal/core/domain"
)

// UserProfileUpdate carries the whitelisted fields a user may change on their
// own profile. Nil pointers leave the stored value untouched.
type UserProfileUpdate struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Bio       *string
}

// UserRepository defines persistence operations for customer accounts.
// Admins are user records with the admin role flag; there is no separate
// collection for them.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, update UserProfileUpdate) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
