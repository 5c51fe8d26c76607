package service

import (
	"context"
	"fmt"

	"github.com/servnect/marketplace-api/internal/core/domain"
	"github.com/servnect/marketplace-api/internal/core/ports"
)

// IdentityService resolves a verified token claim into the sanitized request
// identity. The switch over principal kind is the single place role dispatch
// happens.
type IdentityService struct {
	users   ports.UserRepository
	experts ports.ExpertRepository
}

func NewIdentityService(users ports.UserRepository, experts ports.ExpertRepository) *IdentityService {
	return &IdentityService{users: users, experts: experts}
}

func (s *IdentityService) Resolve(ctx context.Context, kind domain.PrincipalKind, principalID string) (domain.Identity, error) {
	switch kind {
	case domain.KindUser, domain.KindAdmin:
		user, err := s.users.FindByID(ctx, principalID)
		if err != nil {
			return domain.Identity{}, err
		}
		identity := domain.UserIdentity(user)
		// A token minted as admin stays admin only while the record still
		// carries the role; a demoted account falls back to user.
		if kind == domain.KindAdmin && identity.Kind != domain.KindAdmin {
			identity.Kind = domain.KindUser
		}
		return identity, nil
	case domain.KindExpert:
		expert, err := s.experts.FindByID(ctx, principalID)
		if err != nil {
			return domain.Identity{}, err
		}
		return domain.ExpertIdentity(expert), nil
	default:
		return domain.Identity{}, fmt.Errorf("unknown principal kind %q", kind)
	}
}
