package service

import (
	"context"
	"errors"
	"time"

	"github.com/projectify-app/projectify-backend/internal/auth"
	"github.com/projectify-app/projectify-backend/internal/auth/domain"
	"github.com/projectify-app/projectify-backend/internal/auth/repository"
	"github.com/projectify-app/projectify-backend/internal/notify"
)

type AuthService struct {
	provider   auth.Provider
	users      *repository.UserRepository
	notifier   *notify.Service
	adminEmail string
	now        func() time.Time
}

func NewAuthService(provider auth.Provider, users *repository.UserRepository, notifier *notify.Service, adminEmail string) *AuthService {
	return &AuthService{
		provider:   provider,
		users:      users,
		notifier:   notifier,
		adminEmail: adminEmail,
		now:        time.Now,
	}
}

// SetNow overrides the clock. Tests only.
func (s *AuthService) SetNow(now func() time.Time) { s.now = now }

// Register creates the account with the identity provider, writes the
// profile document, and returns the user plus a custom token for immediate
// login. The role is fixed here and never changes afterwards: the configured
// admin email gets admin, everyone else gets user.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	uid, err := s.provider.CreateUser(ctx, email, password, name)
	if err != nil {
		return nil, "", err
	}

	role := domain.RoleUser
	if email == s.adminEmail {
		role = domain.RoleAdmin
	}

	now := s.now()
	user := &domain.User{
		ID:        uid,
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.provider.CustomToken(ctx, uid)
	if err != nil {
		return nil, "", err
	}

	// Welcome email is best-effort and never fails registration.
	s.notifier.SendWelcome(email, name)

	return user, token, nil
}

// Login looks the account up by email and mints a custom token. The password
// itself is checked by the identity provider when the client exchanges the
// token, not here.
func (s *AuthService) Login(ctx context.Context, email string) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	token, err := s.provider.CustomToken(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout revokes every session of the identity at the provider.
func (s *AuthService) Logout(ctx context.Context, uid string) error {
	return s.provider.RevokeTokens(ctx, uid)
}

// Resolve verifies the bearer credential and merges the provider-verified
// identity with the profile document. A missing profile is not an error: the
// caller gets an identity with no name or role.
func (s *AuthService) Resolve(ctx context.Context, idToken string) (*domain.User, error) {
	id, err := s.provider.VerifyToken(ctx, idToken)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	user, err := s.users.GetByID(ctx, id.UID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return &domain.User{ID: id.UID, Email: id.Email}, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
