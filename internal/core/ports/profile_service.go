package ports

import (
	"context"

	"github.com/servnect/marketplace-api/internal/core/domain"
)

// ProfileService exposes sanitized profile reads and whitelisted updates for
// both principal kinds, plus the public expert directory.
type ProfileService interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, update UserProfileUpdate) (*domain.User, error)
	GetExpert(ctx context.Context, id string) (*domain.Expert, error)
	UpdateExpert(ctx context.Context, id string, update ExpertProfileUpdate) (*domain.Expert, error)
	ListExperts(ctx context.Context, service string) ([]*domain.Expert, error)
}
