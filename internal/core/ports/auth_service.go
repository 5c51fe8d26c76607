package ports

import (
	"context"

	"github.com/servnect/marketplace-api/internal/core/domain"
)

// RegisterUserInput carries the fields of a customer registration.
type RegisterUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// RegisterExpertInput carries the fields of an expert registration. Service
// is the category the expert offers and is required.
type RegisterExpertInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
	Service   string
	DOB       string
	Location  string
}

// AuthService implements registration and login for both principal kinds.
// Login returns the signed bearer token alongside the account record.
// Expert registration also returns a token so the dashboard can sign the
// expert in immediately.
type AuthService interface {
	RegisterUser(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	LoginUser(ctx context.Context, email, password string) (string, *domain.User, error)
	RegisterExpert(ctx context.Context, input RegisterExpertInput) (string, *domain.Expert, error)
	LoginExpert(ctx context.Context, email, password string) (string, *domain.Expert, error)
}

// IdentityResolver loads the sanitized identity for a verified token claim,
// dispatching on principal kind.
type IdentityResolver interface {
	Resolve(ctx context.Context, kind domain.PrincipalKind, principalID string) (domain.Identity, error)
}
