package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/lakeview/hotel-system/internal/core/domain"
	"github.com/lakeview/hotel-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID   map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.byID {
		if existing.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	copy := cloneUser(user)
	copy.ID = "u" + strconv.Itoa(r.nextID)
	r.byID[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, id string, update ports.ProfileUpdate) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.FirstName = update.FirstName
	u.LastName = update.LastName
	u.Email = update.Email
	u.Phone = update.Phone
	u.RoomNumber = update.RoomNumber
	if update.ProfileImage != "" {
		u.ProfileImage = update.ProfileImage
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) SetActive(_ context.Context, id string, active bool) error {
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Active = active
	return nil
}

func (r *stubUserRepo) List(_ context.Context, role string) ([]domain.User, error) {
	var out []domain.User
	for _, u := range r.byID {
		if role == "" || string(u.Role) == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

type stubSessionStore struct {
	sessions  map[string]*domain.Session
	createErr error
	deleteErr error
	deleted   []string
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]*domain.Session)}
}

func (s *stubSessionStore) Create(_ context.Context, session *domain.Session) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.sessions[session.Token] = session
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, token string) (*domain.Session, error) {
	session, ok := s.sessions[token]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (s *stubSessionStore) Delete(_ context.Context, token string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.sessions, token)
	s.deleted = append(s.deleted, token)
	return nil
}

func newAuthSvc(users *stubUserRepo, sessions *stubSessionStore) *AuthService {
	return NewAuthService(users, sessions, bcrypt.MinCost, zerolog.Nop())
}

func registeredUser(t *testing.T, svc *AuthService, email, password string) *domain.User {
	t.Helper()
	user, err := svc.Register(context.Background(), ports.RegisterInput{
		FirstName: "Dana",
		Email:     email,
		Password:  password,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	return user
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo, newStubSessionStore())

	user := registeredUser(t, svc, "dana@example.com", "pass1234")

	if user.Role != domain.RoleCustomer {
		t.Errorf("expected customer role, got %s", user.Role)
	}
	if !user.Active {
		t.Error("expected new accounts to start active")
	}
	if user.PasswordHash == "pass1234" {
		t.Fatal("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass1234")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newAuthSvc(newStubUserRepo(), newStubSessionStore())

	_, err := svc.Register(context.Background(), ports.RegisterInput{Email: "x@example.com"})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := newAuthSvc(newStubUserRepo(), newStubSessionStore())

	registeredUser(t, svc, "dana@example.com", "pass1234")
	_, err := svc.Register(context.Background(), ports.RegisterInput{
		FirstName: "Dana",
		Email:     "dana@example.com",
		Password:  "other",
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	sessions := newStubSessionStore()
	svc := newAuthSvc(repo, sessions)

	registeredUser(t, svc, "dana@example.com", "pass1234")

	token, user, err := svc.Login(context.Background(), "dana@example.com", "pass1234")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected a session token")
	}
	stored, ok := sessions.sessions[token]
	if !ok {
		t.Fatal("expected session to be stored")
	}
	if stored.UserID != user.ID || stored.Role != domain.RoleCustomer {
		t.Errorf("unexpected session: %+v", stored)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newAuthSvc(newStubUserRepo(), newStubSessionStore())

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "pass1234")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := newAuthSvc(newStubUserRepo(), newStubSessionStore())
	registeredUser(t, svc, "dana@example.com", "pass1234")

	_, _, err := svc.Login(context.Background(), "dana@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_Deactivated(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo, newStubSessionStore())
	user := registeredUser(t, svc, "dana@example.com", "pass1234")

	repo.byID[user.ID].Active = false

	_, _, err := svc.Login(context.Background(), "dana@example.com", "pass1234")
	if !errors.Is(err, domain.ErrAccountDeactivated) {
		t.Fatalf("expected ErrAccountDeactivated, got %v", err)
	}
}

// A wrong password on a deactivated account must not reveal the deactivation.
func TestAuthService_Login_Deactivated_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthSvc(repo, newStubSessionStore())
	user := registeredUser(t, svc, "dana@example.com", "pass1234")

	repo.byID[user.ID].Active = false

	_, _, err := svc.Login(context.Background(), "dana@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_SessionCheck_Success(t *testing.T) {
	repo := newStubUserRepo()
	sessions := newStubSessionStore()
	svc := newAuthSvc(repo, sessions)
	registeredUser(t, svc, "dana@example.com", "pass1234")

	token, want, err := svc.Login(context.Background(), "dana@example.com", "pass1234")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	got, err := svc.SessionCheck(context.Background(), token)
	if err != nil {
		t.Fatalf("session check failed: %v", err)
	}
	if got.ID != want.ID {
		t.Errorf("expected user %s, got %s", want.ID, got.ID)
	}
}

func TestAuthService_SessionCheck_UnknownToken(t *testing.T) {
	svc := newAuthSvc(newStubUserRepo(), newStubSessionStore())

	if _, err := svc.SessionCheck(context.Background(), "bogus"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := svc.SessionCheck(context.Background(), ""); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for empty token, got %v", err)
	}
}

// Deactivation mid-session destroys the session and surfaces the
// distinguished error, not a plain unauthenticated.
func TestAuthService_SessionCheck_DeactivatedDestroysSession(t *testing.T) {
	repo := newStubUserRepo()
	sessions := newStubSessionStore()
	svc := newAuthSvc(repo, sessions)
	user := registeredUser(t, svc, "dana@example.com", "pass1234")

	token, _, err := svc.Login(context.Background(), "dana@example.com", "pass1234")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	repo.byID[user.ID].Active = false

	if _, err := svc.SessionCheck(context.Background(), token); !errors.Is(err, domain.ErrAccountDeactivated) {
		t.Fatalf("expected ErrAccountDeactivated, got %v", err)
	}
	if _, ok := sessions.sessions[token]; ok {
		t.Error("expected session to be destroyed")
	}
}

func TestAuthService_SessionCheck_DeletedUser(t *testing.T) {
	repo := newStubUserRepo()
	sessions := newStubSessionStore()
	svc := newAuthSvc(repo, sessions)
	user := registeredUser(t, svc, "dana@example.com", "pass1234")

	token, _, err := svc.Login(context.Background(), "dana@example.com", "pass1234")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	delete(repo.byID, user.ID)

	if _, err := svc.SessionCheck(context.Background(), token); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestAuthService_Logout(t *testing.T) {
	repo := newStubUserRepo()
	sessions := newStubSessionStore()
	svc := newAuthSvc(repo, sessions)
	registeredUser(t, svc, "dana@example.com", "pass1234")

	token, _, err := svc.Login(context.Background(), "dana@example.com", "pass1234")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(context.Background(), token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, ok := sessions.sessions[token]; ok {
		t.Error("expected session to be removed")
	}

	// Empty token logout is a no-op.
	if err := svc.Logout(context.Background(), ""); err != nil {
		t.Fatalf("expected nil for empty token, got %v", err)
	}
}

func TestAuthService_Logout_StoreFailure(t *testing.T) {
	sessions := newStubSessionStore()
	sessions.deleteErr = errors.New("redis down")
	svc := newAuthSvc(newStubUserRepo(), sessions)

	if err := svc.Logout(context.Background(), "tok"); err == nil {
		t.Fatal("expected error when the store delete fails")
	}
}

func TestSessionTokensAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 64; i++ {
		token, err := newSessionToken()
		if err != nil {
			t.Fatalf("token generation failed: %v", err)
		}
		if len(token) != 64 {
			t.Fatalf("expected 64 hex chars, got %d", len(token))
		}
		if seen[token] {
			t.Fatal("duplicate session token")
		}
		seen[token] = true
	}
}
