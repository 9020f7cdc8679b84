package ports

import (
	"context"

	"github.com/lakeview/hotel-system/internal/core/domain"
)

// UserRepository defines the persistence interface for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*domain.User, error)
	SetActive(ctx context.Context, id string, active bool) error
	List(ctx context.Context, role string) ([]domain.User, error)
}

// SessionStore holds opaque server-side sessions. Implementations own the TTL.
type SessionStore interface {
	Create(ctx context.Context, session *domain.Session) error
	Get(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
}

// RegisterInput carries a customer self-registration.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
}

// CreateStaffInput carries an admin-created staff account. Role must be one
// of the staff roles; customers register themselves.
type CreateStaffInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
}

// ProfileUpdate carries a wholesale profile edit. Role and Active are
// deliberately absent: neither is self-editable.
type ProfileUpdate struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	RoomNumber string
	// ProfileImage is the stored image path; empty means keep the current one.
	ProfileImage string
}

// AuthService owns the session lifecycle: the only code paths permitted to
// establish or destroy a session.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login returns the opaque session token alongside the user projection.
	// A deactivated account surfaces as domain.ErrAccountDeactivated, never
	// collapsed into domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// SessionCheck resolves a token to its user. A deactivated account
	// destroys the session and returns domain.ErrAccountDeactivated.
	SessionCheck(ctx context.Context, token string) (*domain.User, error)
	// Logout invalidates the session server-side. Callers must treat a
	// returned error as non-blocking: local cleanup always proceeds.
	Logout(ctx context.Context, token string) error
}

// UserService covers profile edits and admin account management.
type UserService interface {
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*domain.User, error)
	CreateStaff(ctx context.Context, input CreateStaffInput) (*domain.User, error)
	List(ctx context.Context, role string) ([]domain.User, error)
	SetActive(ctx context.Context, userID string, active bool) error
}
