package service

import (
	"context"

	"github.com/servnect/marketplace-api/internal/core/domain"
	"github.com/servnect/marketplace-api/internal/core/ports"
)

// ProfileService implements sanitized profile reads, whitelisted updates and
// the public expert directory. Password hashes stay behind the json:"-" tag
// on the domain structs; nothing here ever copies them out.
type ProfileService struct {
	users   ports.UserRepository
	experts ports.ExpertRepository
}

func NewProfileService(users ports.UserRepository, experts ports.ExpertRepository) *ProfileService {
	return &ProfileService{users: users, experts: experts}
}

func (s *ProfileService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *ProfileService) UpdateUser(ctx context.Context, id string, update ports.UserProfileUpdate) (*domain.User, error) {
	return s.users.UpdateProfile(ctx, id, update)
}

func (s *ProfileService) GetExpert(ctx context.Context, id string) (*domain.Expert, error) {
	return s.experts.FindByID(ctx, id)
}

func (s *ProfileService) UpdateExpert(ctx context.Context, id string, update ports.ExpertProfileUpdate) (*domain.Expert, error) {
	return s.experts.UpdateProfile(ctx, id, update)
}

func (s *ProfileService) ListExperts(ctx context.Context, service string) ([]*domain.Expert, error) {
	return s.experts.List(ctx, service)
}
