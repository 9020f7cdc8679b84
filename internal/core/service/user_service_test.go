package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/lakeview/hotel-system/internal/core/domain"
	"github.com/lakeview/hotel-system/internal/core/ports"
)

func newUserSvc(repo *stubUserRepo) *UserService {
	return NewUserService(repo, bcrypt.MinCost, zerolog.Nop())
}

func staffInput(role string) ports.CreateStaffInput {
	return ports.CreateStaffInput{
		FirstName: "Dana",
		LastName:  "Ops",
		Email:     "dana." + role + "@lakeview.test",
		Password:  "s3cretpass",
		Role:      role,
	}
}

func TestCreateStaff_AllStaffRoles(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserSvc(repo)

	for _, role := range domain.StaffRoles() {
		created, err := svc.CreateStaff(context.Background(), staffInput(string(role)))
		if err != nil {
			t.Fatalf("CreateStaff(%s): %v", role, err)
		}
		if created.Role != role {
			t.Errorf("role = %s, want %s", created.Role, role)
		}
		if !created.Active {
			t.Errorf("new %s account not active", role)
		}
		if created.PasswordHash == "s3cretpass" {
			t.Error("password stored in plain text")
		}
	}
}

func TestCreateStaff_RejectsNonStaffRoles(t *testing.T) {
	svc := newUserSvc(newStubUserRepo())

	for _, role := range []string{"admin", "customer"} {
		_, err := svc.CreateStaff(context.Background(), staffInput(role))
		if !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("CreateStaff(%s) err = %v, want ErrForbidden", role, err)
		}
	}

	_, err := svc.CreateStaff(context.Background(), staffInput("janitor"))
	if !errors.Is(err, domain.ErrUnknownRole) {
		t.Errorf("CreateStaff(janitor) err = %v, want ErrUnknownRole", err)
	}
}

func TestCreateStaff_DuplicateEmail(t *testing.T) {
	svc := newUserSvc(newStubUserRepo())

	input := staffInput("manager")
	if _, err := svc.CreateStaff(context.Background(), input); err != nil {
		t.Fatalf("first CreateStaff: %v", err)
	}
	if _, err := svc.CreateStaff(context.Background(), input); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("second CreateStaff err = %v, want ErrUserExists", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserSvc(repo)

	created, err := svc.CreateStaff(context.Background(), staffInput("cashier"))
	if err != nil {
		t.Fatalf("CreateStaff: %v", err)
	}

	updated, err := svc.UpdateProfile(context.Background(), created.ID, ports.ProfileUpdate{
		FirstName: "Dana",
		LastName:  "Reyes",
		Email:     created.Email,
		Phone:     "555-0102",
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.LastName != "Reyes" || updated.Phone != "555-0102" {
		t.Errorf("update not applied: %+v", updated)
	}
	if updated.Role != domain.RoleCashier {
		t.Errorf("role changed by profile update: %s", updated.Role)
	}

	// Empty image keeps the existing one.
	repo.byID[created.ID].ProfileImage = "/uploads/old.png"
	updated, err = svc.UpdateProfile(context.Background(), created.ID, ports.ProfileUpdate{
		FirstName: "Dana",
		Email:     created.Email,
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.ProfileImage != "/uploads/old.png" {
		t.Errorf("profile image dropped: %q", updated.ProfileImage)
	}
}

func TestUpdateProfile_RequiresNameAndEmail(t *testing.T) {
	svc := newUserSvc(newStubUserRepo())

	_, err := svc.UpdateProfile(context.Background(), "u1", ports.ProfileUpdate{Email: "a@b.test"})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestListUsers_ByRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserSvc(repo)

	for _, role := range domain.StaffRoles() {
		if _, err := svc.CreateStaff(context.Background(), staffInput(string(role))); err != nil {
			t.Fatalf("CreateStaff(%s): %v", role, err)
		}
	}

	managers, err := svc.List(context.Background(), "manager")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(managers) != 1 {
		t.Fatalf("managers = %d, want 1", len(managers))
	}

	all, err := svc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != len(domain.StaffRoles()) {
		t.Fatalf("all = %d, want %d", len(all), len(domain.StaffRoles()))
	}

	if _, err := svc.List(context.Background(), "janitor"); !errors.Is(err, domain.ErrUnknownRole) {
		t.Fatalf("List(janitor) err = %v, want ErrUnknownRole", err)
	}
}

func TestSetActive(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserSvc(repo)

	created, err := svc.CreateStaff(context.Background(), staffInput("receptionist"))
	if err != nil {
		t.Fatalf("CreateStaff: %v", err)
	}

	if err := svc.SetActive(context.Background(), created.ID, false); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	if repo.byID[created.ID].Active {
		t.Error("account still active")
	}

	if err := svc.SetActive(context.Background(), "missing", false); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("SetActive(missing) err = %v, want ErrUserNotFound", err)
	}
}
