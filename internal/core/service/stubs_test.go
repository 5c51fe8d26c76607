package service

import (
	"context"
	"fmt"

	"github.com/servnect/marketplace-api/internal/core/domain"
	"github.com/servnect/marketplace-api/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	copy := cloneUser(user)
	copy.ID = fmt.Sprintf("user_%d", r.nextID)
	r.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, id string, update ports.UserProfileUpdate) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if update.FirstName != nil {
		u.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		u.LastName = *update.LastName
	}
	if update.Phone != nil {
		u.Phone = *update.Phone
	}
	if update.Bio != nil {
		u.Bio = *update.Bio
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type stubExpertRepo struct {
	experts map[string]*domain.Expert
	nextID  int
}

func newStubExpertRepo() *stubExpertRepo {
	return &stubExpertRepo{experts: make(map[string]*domain.Expert)}
}

func cloneExpert(e *domain.Expert) *domain.Expert {
	if e == nil {
		return nil
	}
	clone := *e
	return &clone
}

func (r *stubExpertRepo) Create(_ context.Context, expert *domain.Expert) (*domain.Expert, error) {
	for _, existing := range r.experts {
		if existing.Email == expert.Email {
			return nil, domain.ErrExpertExists
		}
	}
	r.nextID++
	copy := cloneExpert(expert)
	copy.ID = fmt.Sprintf("expert_%d", r.nextID)
	r.experts[copy.ID] = cloneExpert(copy)
	return copy, nil
}

func (r *stubExpertRepo) FindByEmail(_ context.Context, email string) (*domain.Expert, error) {
	for _, e := range r.experts {
		if e.Email == email {
			return cloneExpert(e), nil
		}
	}
	return nil, domain.ErrExpertNotFound
}

func (r *stubExpertRepo) FindByID(_ context.Context, id string) (*domain.Expert, error) {
	e, ok := r.experts[id]
	if !ok {
		return nil, domain.ErrExpertNotFound
	}
	return cloneExpert(e), nil
}

func (r *stubExpertRepo) UpdateProfile(_ context.Context, id string, update ports.ExpertProfileUpdate) (*domain.Expert, error) {
	e, ok := r.experts[id]
	if !ok {
		return nil, domain.ErrExpertNotFound
	}
	if update.FirstName != nil {
		e.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		e.LastName = *update.LastName
	}
	if update.Specialty != nil {
		e.Specialty = *update.Specialty
	}
	if update.Bio != nil {
		e.Bio = *update.Bio
	}
	if update.HourlyRate != nil {
		e.HourlyRate = *update.HourlyRate
	}
	if update.Location != nil {
		e.Location = *update.Location
	}
	return cloneExpert(e), nil
}

func (r *stubExpertRepo) List(_ context.Context, service string) ([]*domain.Expert, error) {
	out := make([]*domain.Expert, 0, len(r.experts))
	for _, e := range r.experts {
		if service != "" && e.Service != service {
			continue
		}
		out = append(out, cloneExpert(e))
	}
	return out, nil
}

func (r *stubExpertRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.experts)), nil
}

type stubBookingRepo struct {
	bookings map[string]*domain.Booking
	nextID   int
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{bookings: make(map[string]*domain.Booking)}
}

func cloneBooking(b *domain.Booking) *domain.Booking {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}

func (r *stubBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.nextID++
	copy := cloneBooking(b)
	copy.ID = fmt.Sprintf("booking_%d", r.nextID)
	r.bookings[copy.ID] = cloneBooking(copy)
	return copy, nil
}

func (r *stubBookingRepo) FindByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return cloneBooking(b), nil
}

func (r *stubBookingRepo) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	b.Status = status
	return cloneBooking(b), nil
}

func (r *stubBookingRepo) ListByClient(_ context.Context, clientID string) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if b.ClientID == clientID {
			out = append(out, cloneBooking(b))
		}
	}
	return out, nil
}

func (r *stubBookingRepo) ListByExpert(_ context.Context, expertID string) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if b.ExpertID == expertID {
			out = append(out, cloneBooking(b))
		}
	}
	return out, nil
}

func (r *stubBookingRepo) List(_ context.Context) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, cloneBooking(b))
	}
	return out, nil
}

func (r *stubBookingRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.bookings)), nil
}

type stubServiceRepo struct {
	services map[string]*domain.ServiceOffering
	nextID   int
}

func newStubServiceRepo() *stubServiceRepo {
	return &stubServiceRepo{services: make(map[string]*domain.ServiceOffering)}
}

func cloneOffering(s *domain.ServiceOffering) *domain.ServiceOffering {
	if s == nil {
		return nil
	}
	clone := *s
	return &clone
}

func (r *stubServiceRepo) Create(_ context.Context, s *domain.ServiceOffering) (*domain.ServiceOffering, error) {
	r.nextID++
	copy := cloneOffering(s)
	copy.ID = fmt.Sprintf("service_%d", r.nextID)
	r.services[copy.ID] = cloneOffering(copy)
	return copy, nil
}

func (r *stubServiceRepo) FindByID(_ context.Context, id string) (*domain.ServiceOffering, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, domain.ErrServiceNotFound
	}
	return cloneOffering(s), nil
}

func (r *stubServiceRepo) ListActive(_ context.Context, filter ports.ServiceFilter) ([]*domain.ServiceOffering, error) {
	out := make([]*domain.ServiceOffering, 0)
	for _, s := range r.services {
		if !s.IsActive {
			continue
		}
		if filter.Category != "" && s.Category != filter.Category {
			continue
		}
		out = append(out, cloneOffering(s))
	}
	return out, nil
}

func (r *stubServiceRepo) ListByExpert(_ context.Context, expertID string) ([]*domain.ServiceOffering, error) {
	out := make([]*domain.ServiceOffering, 0)
	for _, s := range r.services {
		if s.ExpertID == expertID {
			out = append(out, cloneOffering(s))
		}
	}
	return out, nil
}

func (r *stubServiceRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.services)), nil
}
