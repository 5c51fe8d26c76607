package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/servnect/marketplace-api/internal/core/domain"
	"github.com/servnect/marketplace-api/internal/core/ports"
)

// AdminService implements the admin dashboard: aggregate counts, raw
// listings, and user removal.
type AdminService struct {
	users    ports.UserRepository
	experts  ports.ExpertRepository
	services ports.ServiceRepository
	bookings ports.BookingRepository
	logger   zerolog.Logger
}

func NewAdminService(users ports.UserRepository, experts ports.ExpertRepository, services ports.ServiceRepository, bookings ports.BookingRepository, logger zerolog.Logger) *AdminService {
	return &AdminService{users: users, experts: experts, services: services, bookings: bookings, logger: logger}
}

func (s *AdminService) Stats(ctx context.Context) (*ports.Stats, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	experts, err := s.experts.Count(ctx)
	if err != nil {
		return nil, err
	}
	services, err := s.services.Count(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookings.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &ports.Stats{
		Users:    users,
		Experts:  experts,
		Services: services,
		Bookings: bookings,
	}, nil
}

func (s *AdminService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *AdminService) ListBookings(ctx context.Context) ([]*domain.Booking, error) {
	return s.bookings.List(ctx)
}

func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted by admin")
	return nil
}
