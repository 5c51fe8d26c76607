package service

import (
	"context"
	"testing"

	"github.com/servnect/marketplace-api/internal/core/domain"
)

func TestIdentityService_Resolve_User(t *testing.T) {
	users := newStubUserRepo()
	user, _ := users.Create(context.Background(), &domain.User{
		FirstName: "Alice", LastName: "Smith", Email: "alice@example.com",
	})
	svc := NewIdentityService(users, newStubExpertRepo())

	identity, err := svc.Resolve(context.Background(), domain.KindUser, user.ID)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if identity.Kind != domain.KindUser || identity.ID != user.ID {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestIdentityService_Resolve_Expert(t *testing.T) {
	experts := newStubExpertRepo()
	expert, _ := experts.Create(context.Background(), &domain.Expert{
		FirstName: "Nina", LastName: "Reed", Email: "nina@example.com", Service: "plumbing",
	})
	svc := NewIdentityService(newStubUserRepo(), experts)

	identity, err := svc.Resolve(context.Background(), domain.KindExpert, expert.ID)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if identity.Kind != domain.KindExpert || identity.ID != expert.ID {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestIdentityService_Resolve_Admin(t *testing.T) {
	users := newStubUserRepo()
	admin, _ := users.Create(context.Background(), &domain.User{
		FirstName: "Root", LastName: "Admin", Email: "admin@example.com", Role: domain.RoleAdmin,
	})
	svc := NewIdentityService(users, newStubExpertRepo())

	identity, err := svc.Resolve(context.Background(), domain.KindAdmin, admin.ID)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if identity.Kind != domain.KindAdmin {
		t.Fatalf("expected admin kind, got %s", identity.Kind)
	}
}

func TestIdentityService_Resolve_DemotedAdmin(t *testing.T) {
	users := newStubUserRepo()
	user, _ := users.Create(context.Background(), &domain.User{
		FirstName: "Former", LastName: "Admin", Email: "former@example.com",
	})
	svc := NewIdentityService(users, newStubExpertRepo())

	// An admin token for a record that lost the role flag resolves as user.
	identity, err := svc.Resolve(context.Background(), domain.KindAdmin, user.ID)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if identity.Kind != domain.KindUser {
		t.Fatalf("expected fallback to user kind, got %s", identity.Kind)
	}
}

func TestIdentityService_Resolve_MissingRecord(t *testing.T) {
	svc := NewIdentityService(newStubUserRepo(), newStubExpertRepo())

	if _, err := svc.Resolve(context.Background(), domain.KindUser, "ghost"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := svc.Resolve(context.Background(), domain.KindExpert, "ghost"); err != domain.ErrExpertNotFound {
		t.Fatalf("expected ErrExpertNotFound, got %v", err)
	}
}

func TestIdentityService_Resolve_UnknownKind(t *testing.T) {
	svc := NewIdentityService(newStubUserRepo(), newStubExpertRepo())

	if _, err := svc.Resolve(context.Background(), "robot", "abc"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}
