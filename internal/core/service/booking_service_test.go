package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/servnect/marketplace-api/internal/core/domain"
	"github.com/servnect/marketplace-api/internal/core/ports"
)

func newTestBookingService() (*BookingService, *stubUserRepo, *stubExpertRepo, *stubBookingRepo, *stubServiceRepo) {
	users := newStubUserRepo()
	experts := newStubExpertRepo()
	bookings := newStubBookingRepo()
	services := newStubServiceRepo()
	svc := NewBookingService(bookings, experts, users, services, zerolog.Nop())
	return svc, users, experts, bookings, services
}

func seedExpert(t *testing.T, experts *stubExpertRepo) *domain.Expert {
	t.Helper()
	expert, err := experts.Create(context.Background(), &domain.Expert{
		FirstName: "Nina", LastName: "Reed", Email: "nina@example.com", Service: "plumbing",
	})
	if err != nil {
		t.Fatalf("seed expert: %v", err)
	}
	return expert
}

func TestBookingService_Create_StartsPending(t *testing.T) {
	svc, _, experts, _, _ := newTestBookingService()
	expert := seedExpert(t, experts)

	booking, err := svc.Create(context.Background(), ports.CreateBookingInput{
		ClientID:    "user_1",
		ExpertID:    expert.ID,
		Category:    "plumbing",
		ScheduledAt: time.Now().Add(24 * time.Hour),
		Notes:       "leaky faucet",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if booking.Status != domain.StatusPending {
		t.Fatalf("expected pending, got %s", booking.Status)
	}
	if booking.ID == "" {
		t.Fatalf("expected assigned id")
	}
}

func TestBookingService_Create_MissingFields(t *testing.T) {
	svc, _, _, _, _ := newTestBookingService()

	if _, err := svc.Create(context.Background(), ports.CreateBookingInput{ClientID: "user_1"}); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestBookingService_Create_UnknownExpert(t *testing.T) {
	svc, _, _, _, _ := newTestBookingService()

	_, err := svc.Create(context.Background(), ports.CreateBookingInput{
		ClientID: "user_1", ExpertID: "ghost", Category: "plumbing",
	})
	if err != domain.ErrExpertNotFound {
		t.Fatalf("expected ErrExpertNotFound, got %v", err)
	}
}

func TestBookingService_Create_UnknownService(t *testing.T) {
	svc, _, experts, _, _ := newTestBookingService()
	expert := seedExpert(t, experts)

	_, err := svc.Create(context.Background(), ports.CreateBookingInput{
		ClientID: "user_1", ExpertID: expert.ID, Category: "plumbing", ServiceID: "ghost",
	})
	if err != domain.ErrServiceNotFound {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
}

func TestBookingService_UpdateStatus_Accept(t *testing.T) {
	svc, _, experts, _, _ := newTestBookingService()
	expert := seedExpert(t, experts)

	booking, err := svc.Create(context.Background(), ports.CreateBookingInput{
		ClientID: "user_1", ExpertID: expert.ID, Category: "plumbing",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), booking.ID, expert.ID, domain.StatusAccepted)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != domain.StatusAccepted {
		t.Fatalf("expected accepted, got %s", updated.Status)
	}
}

func TestBookingService_UpdateStatus_InvalidTarget(t *testing.T) {
	svc, _, experts, _, _ := newTestBookingService()
	expert := seedExpert(t, experts)

	booking, _ := svc.Create(context.Background(), ports.CreateBookingInput{
		ClientID: "user_1", ExpertID: expert.ID, Category: "plumbing",
	})

	// pending is never a transition target, nor is an arbitrary string.
	if _, err := svc.UpdateStatus(context.Background(), booking.ID, expert.ID, domain.StatusPending); err != domain.ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus for pending, got %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), booking.ID, expert.ID, "archived"); err != domain.ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus for unknown status, got %v", err)
	}
}

func TestBookingService_UpdateStatus_WrongExpert(t *testing.T) {
	svc, _, experts, _, _ := newTestBookingService()
	expert := seedExpert(t, experts)
	other, err := experts.Create(context.Background(), &domain.Expert{
		FirstName: "Omar", LastName: "Diaz", Email: "omar@example.com", Service: "plumbing",
	})
	if err != nil {
		t.Fatalf("seed expert: %v", err)
	}

	booking, _ := svc.Create(context.Background(), ports.CreateBookingInput{
		ClientID: "user_1", ExpertID: expert.ID, Category: "plumbing",
	})

	if _, err := svc.UpdateStatus(context.Background(), booking.ID, other.ID, domain.StatusAccepted); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestBookingService_UpdateStatus_AlreadyFinalized(t *testing.T) {
	svc, _, experts, _, _ := newTestBookingService()
	expert := seedExpert(t, experts)

	booking, _ := svc.Create(context.Background(), ports.CreateBookingInput{
		ClientID: "user_1", ExpertID: expert.ID, Category: "plumbing",
	})

	if _, err := svc.UpdateStatus(context.Background(), booking.ID, expert.ID, domain.StatusRejected); err != nil {
		t.Fatalf("first transition failed: %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), booking.ID, expert.ID, domain.StatusAccepted); err != domain.ErrBookingFinalized {
		t.Fatalf("expected ErrBookingFinalized, got %v", err)
	}
}

func TestBookingService_UpdateStatus_NotFound(t *testing.T) {
	svc, _, _, _, _ := newTestBookingService()

	if _, err := svc.UpdateStatus(context.Background(), "ghost", "expert_1", domain.StatusAccepted); err != domain.ErrBookingNotFound {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestBookingService_ListForClient_EnrichesExpert(t *testing.T) {
	svc, _, experts, _, _ := newTestBookingService()
	expert := seedExpert(t, experts)

	if _, err := svc.Create(context.Background(), ports.CreateBookingInput{
		ClientID: "user_1", ExpertID: expert.ID, Category: "plumbing",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	views, err := svc.ListForClient(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("ListForClient: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(views))
	}
	if views[0].Expert == nil || views[0].Expert.ID != expert.ID {
		t.Fatalf("expected expert summary on booking view: %+v", views[0].Expert)
	}
	if views[0].Expert.Kind != domain.KindExpert {
		t.Fatalf("unexpected counterparty kind: %s", views[0].Expert.Kind)
	}
}

func TestBookingService_ListForExpert_EnrichesClient(t *testing.T) {
	svc, users, experts, _, _ := newTestBookingService()
	expert := seedExpert(t, experts)
	client, err := users.Create(context.Background(), &domain.User{
		FirstName: "Paula", LastName: "Webb", Email: "paula@example.com",
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	if _, err := svc.Create(context.Background(), ports.CreateBookingInput{
		ClientID: client.ID, ExpertID: expert.ID, Category: "plumbing",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	views, err := svc.ListForExpert(context.Background(), expert.ID)
	if err != nil {
		t.Fatalf("ListForExpert: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(views))
	}
	if views[0].Client == nil || views[0].Client.ID != client.ID {
		t.Fatalf("expected client summary on booking view: %+v", views[0].Client)
	}
}
