package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/servnect/marketplace-api/internal/core/domain"
	"github.com/servnect/marketplace-api/internal/core/ports"
	"github.com/servnect/marketplace-api/internal/core/token"
)

// passwordHashCost matches the cost the original deployment hashed with, so
// existing credentials keep verifying.
const passwordHashCost = 12

// LoginThrottle abstracts the failed-attempt counter (Redis).
type LoginThrottle interface {
	// Blocked reports whether the account has exceeded the failure budget.
	Blocked(ctx context.Context, email string) (bool, error)
	NoteFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// AuthService implements registration and login for users and experts.
type AuthService struct {
	users    ports.UserRepository
	experts  ports.ExpertRepository
	issuer   *token.Issuer
	throttle LoginThrottle
	logger   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, experts ports.ExpertRepository, issuer *token.Issuer, throttle LoginThrottle, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, experts: experts, issuer: issuer, throttle: throttle, logger: logger}
}

func (s *AuthService) RegisterUser(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error) {
	if input.FirstName == "" || input.LastName == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), passwordHashCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        normalizeEmail(input.Email),
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

func (s *AuthService) LoginUser(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}
	email = normalizeEmail(email)

	if err := s.checkThrottle(ctx, email); err != nil {
		return "", nil, err
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.noteFailure(ctx, email)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.noteFailure(ctx, email)
		return "", nil, domain.ErrInvalidCredentials
	}

	tkn, err := s.issuer.Issue(user.ID, user.Kind())
	if err != nil {
		return "", nil, err
	}

	s.resetThrottle(ctx, email)
	return tkn, user, nil
}

func (s *AuthService) RegisterExpert(ctx context.Context, input ports.RegisterExpertInput) (string, *domain.Expert, error) {
	if input.Email == "" || input.Password == "" || input.Service == "" {
		return "", nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), passwordHashCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	expert := &domain.Expert{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        normalizeEmail(input.Email),
		Phone:        input.Phone,
		Service:      input.Service,
		DOB:          input.DOB,
		Location:     input.Location,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.experts.Create(ctx, expert)
	if err != nil {
		return "", nil, err
	}

	// The dashboard signs the expert in straight after registration.
	tkn, err := s.issuer.Issue(created.ID, domain.KindExpert)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("expert_id", created.ID).Str("service", created.Service).Msg("expert registered")
	return tkn, created, nil
}

func (s *AuthService) LoginExpert(ctx context.Context, email, password string) (string, *domain.Expert, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}
	email = normalizeEmail(email)

	if err := s.checkThrottle(ctx, email); err != nil {
		return "", nil, err
	}

	expert, err := s.experts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrExpertNotFound) {
			s.noteFailure(ctx, email)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(expert.PasswordHash), []byte(password)) != nil {
		s.noteFailure(ctx, email)
		return "", nil, domain.ErrInvalidCredentials
	}

	tkn, err := s.issuer.Issue(expert.ID, domain.KindExpert)
	if err != nil {
		return "", nil, err
	}

	s.resetThrottle(ctx, email)
	return tkn, expert, nil
}

// checkThrottle consults the failure counter. A broken throttle store must
// not lock everyone out, so store errors only log.
func (s *AuthService) checkThrottle(ctx context.Context, email string) error {
	if s.throttle == nil {
		return nil
	}
	blocked, err := s.throttle.Blocked(ctx, email)
	if err != nil {
		s.logger.Warn().Err(err).Msg("login throttle check failed")
		return nil
	}
	if blocked {
		return domain.ErrTooManyAttempts
	}
	return nil
}

func (s *AuthService) noteFailure(ctx context.Context, email string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.NoteFailure(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("login throttle update failed")
	}
}

func (s *AuthService) resetThrottle(ctx context.Context, email string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.Reset(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("login throttle reset failed")
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
