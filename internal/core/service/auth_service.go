package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/lakeview/hotel-system/internal/core/domain"
	"github.com/lakeview/hotel-system/internal/core/ports"
)

// AuthService implements registration, login, session checks and logout. It
// is the only writer of session state.
type AuthService struct {
	users      ports.UserRepository
	sessions   ports.SessionStore
	bcryptCost int
	log        zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, bcryptCost int, log zerolog.Logger) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{users: users, sessions: sessions, bcryptCost: bcryptCost, log: log}
}

// Register creates a customer account. Staff accounts are created by admins
// through the user service.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" || input.FirstName == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
		Phone:        input.Phone,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("customer registered")
	return created, nil
}

// Login verifies credentials and issues a new session. An unknown email and a
// wrong password both yield ErrInvalidCredentials; a deactivated account is
// surfaced as ErrAccountDeactivated so the caller can render a different
// message.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if !user.Active {
		return "", nil, domain.ErrAccountDeactivated
	}

	token, err := newSessionToken()
	if err != nil {
		return "", nil, err
	}

	session := &domain.Session{
		Token:     token,
		UserID:    user.ID,
		Role:      user.Role,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return "", nil, fmt.Errorf("create session: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("login")
	return token, user, nil
}

// SessionCheck resolves a session token to its user projection. Any failure
// is treated as unauthenticated (fail closed), except a deactivated account,
// which destroys the session and returns the distinguished signal.
func (s *AuthService) SessionCheck(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrSessionNotFound
	}

	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, domain.ErrSessionNotFound
	}

	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		// The account is gone; the session is worthless.
		_ = s.sessions.Delete(ctx, token)
		return nil, domain.ErrSessionNotFound
	}

	if !user.Active {
		_ = s.sessions.Delete(ctx, token)
		return nil, domain.ErrAccountDeactivated
	}

	return user, nil
}

// Logout invalidates the session. The caller completes local cleanup even if
// the store delete fails.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		s.log.Warn().Err(err).Msg("session delete failed on logout")
		return err
	}
	return nil
}

// newSessionToken returns 32 bytes of entropy, hex encoded. The token is
// opaque: all session data lives server-side.
func newSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
