package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/lakeview/hotel-system/internal/core/domain"
	"github.com/lakeview/hotel-system/internal/core/ports"
)

// UserService covers profile edits and admin account management.
type UserService struct {
	users      ports.UserRepository
	bcryptCost int
	log        zerolog.Logger
}

func NewUserService(users ports.UserRepository, bcryptCost int, log zerolog.Logger) *UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{users: users, bcryptCost: bcryptCost, log: log}
}

// UpdateProfile replaces the user's editable fields wholesale and returns the
// full updated projection. Role and Active are never touched here.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, update ports.ProfileUpdate) (*domain.User, error) {
	if update.Email == "" || update.FirstName == "" {
		return nil, domain.ErrInvalidCredentials
	}

	updated, err := s.users.UpdateProfile(ctx, userID, update)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", userID).Msg("profile updated")
	return updated, nil
}

// CreateStaff creates a manager, receptionist or cashier account. Customer
// and admin accounts are out of reach: customers self-register, admins are
// seeded.
func (s *UserService) CreateStaff(ctx context.Context, input ports.CreateStaffInput) (*domain.User, error) {
	role, err := domain.ParseRole(input.Role)
	if err != nil {
		return nil, err
	}
	staff := false
	for _, r := range domain.StaffRoles() {
		if r == role {
			staff = true
			break
		}
	}
	if !staff {
		return nil, domain.ErrForbidden
	}
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
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("role", string(role)).Msg("staff account created")
	return created, nil
}

// List returns users, optionally filtered by role.
func (s *UserService) List(ctx context.Context, role string) ([]domain.User, error) {
	if role != "" {
		if _, err := domain.ParseRole(role); err != nil {
			return nil, err
		}
	}
	return s.users.List(ctx, role)
}

// SetActive activates or deactivates an account. Existing sessions of a
// deactivated account die on their next session check.
func (s *UserService) SetActive(ctx context.Context, userID string, active bool) error {
	if err := s.users.SetActive(ctx, userID, active); err != nil {
		return err
	}
	s.log.Info().Str("user_id", userID).Bool("active", active).Msg("account activation changed")
	return nil
}
