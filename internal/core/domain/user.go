package domain

import (
	"errors"
	"time"
)

// Role is the closed set of actor roles in the hotel system.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleManager      Role = "manager"
	RoleReceptionist Role = "receptionist"
	RoleCashier      Role = "cashier"
	RoleCustomer     Role = "customer"
)

// PublicRoot is the landing path for anonymous visitors and the fallback for
// any role value outside the enumeration.
const PublicRoot = "/"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrAccountDeactivated = errors.New("account deactivated")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrForbidden = errors.New("access forbidden")
var ErrUnknownRole = errors.New("unknown role")

// ParseRole validates a raw role string against the closed enumeration.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleAdmin, RoleManager, RoleReceptionist, RoleCashier, RoleCustomer:
		return Role(raw), nil
	}
	return "", ErrUnknownRole
}

// Valid reports whether the role belongs to the closed enumeration.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// LandingPath maps a role to its canonical dashboard path. External data is
// never fully trusted, so values outside the enumeration resolve to the
// public root instead of failing.
func (r Role) LandingPath() string {
	switch r {
	case RoleAdmin:
		return "/admin"
	case RoleManager:
		return "/manager"
	case RoleReceptionist:
		return "/receptionist"
	case RoleCashier:
		return "/cashier"
	case RoleCustomer:
		return "/customer"
	default:
		return PublicRoot
	}
}

// Roles enumerates every valid role.
func Roles() []Role {
	return []Role{RoleAdmin, RoleManager, RoleReceptionist, RoleCashier, RoleCustomer}
}

// StaffRoles are the roles an admin may assign when creating staff accounts.
func StaffRoles() []Role {
	return []Role{RoleManager, RoleReceptionist, RoleCashier}
}

// User models an account in the hotel system. Role is assigned at creation
// and never self-editable; Active gates every authenticated operation.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	ProfileImage string    `json:"profile_image,omitempty"`
	RoomNumber   string    `json:"room_number,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
