package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/servnect/marketplace-api/internal/core/domain"
	"github.com/servnect/marketplace-api/internal/core/ports"
)

// BookingService implements booking creation, listings and the status
// transition contract.
type BookingService struct {
	bookings ports.BookingRepository
	experts  ports.ExpertRepository
	users    ports.UserRepository
	services ports.ServiceRepository
	logger   zerolog.Logger
}

func NewBookingService(bookings ports.BookingRepository, experts ports.ExpertRepository, users ports.UserRepository, services ports.ServiceRepository, logger zerolog.Logger) *BookingService {
	return &BookingService{bookings: bookings, experts: experts, users: users, services: services, logger: logger}
}

// Create starts a booking in pending. The referenced expert must exist; when
// a service id is supplied the catalog entry must exist too.
func (s *BookingService) Create(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
	if input.ClientID == "" || input.ExpertID == "" || input.Category == "" {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.experts.FindByID(ctx, input.ExpertID); err != nil {
		return nil, err
	}
	if input.ServiceID != "" {
		if _, err := s.services.FindByID(ctx, input.ServiceID); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ClientID:    input.ClientID,
		ExpertID:    input.ExpertID,
		ServiceID:   input.ServiceID,
		Category:    input.Category,
		ScheduledAt: input.ScheduledAt,
		Notes:       input.Notes,
		Status:      domain.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.bookings.Create(ctx, booking)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create booking")
		return nil, err
	}

	s.logger.Info().
		Str("booking_id", created.ID).
		Str("expert_id", created.ExpertID).
		Str("category", created.Category).
		Msg("booking created")

	return created, nil
}

// UpdateStatus transitions a booking out of pending. Only the booking's
// expert may do so, and a booking that already left pending is flagged
// rather than silently rewritten.
func (s *BookingService) UpdateStatus(ctx context.Context, bookingID, actorID string, status domain.BookingStatus) (*domain.Booking, error) {
	if !status.ValidTarget() {
		return nil, domain.ErrInvalidStatus
	}

	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.ExpertID != actorID {
		return nil, domain.ErrForbidden
	}
	if booking.Status.Finalized() {
		return nil, domain.ErrBookingFinalized
	}

	updated, err := s.bookings.UpdateStatus(ctx, bookingID, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("booking_id", bookingID).
		Str("status", string(status)).
		Msg("booking status updated")

	return updated, nil
}

// ListForClient returns the customer's bookings with expert summaries.
func (s *BookingService) ListForClient(ctx context.Context, clientID string) ([]ports.BookingView, error) {
	bookings, err := s.bookings.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	views := make([]ports.BookingView, 0, len(bookings))
	for _, b := range bookings {
		view := ports.BookingView{Booking: b}
		if expert, err := s.experts.FindByID(ctx, b.ExpertID); err == nil {
			identity := domain.ExpertIdentity(expert)
			view.Expert = &identity
		}
		views = append(views, view)
	}
	return views, nil
}

// ListForExpert returns the bookings assigned to an expert with client
// summaries.
func (s *BookingService) ListForExpert(ctx context.Context, expertID string) ([]ports.BookingView, error) {
	bookings, err := s.bookings.ListByExpert(ctx, expertID)
	if err != nil {
		return nil, err
	}

	views := make([]ports.BookingView, 0, len(bookings))
	for _, b := range bookings {
		view := ports.BookingView{Booking: b}
		if client, err := s.users.FindByID(ctx, b.ClientID); err == nil {
			identity := domain.UserIdentity(client)
			view.Client = &identity
		}
		views = append(views, view)
	}
	return views, nil
}
