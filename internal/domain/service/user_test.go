package service

import (
	"context"
	"errors"
	"testing"

	"github.com/campushub/api/internal/adapters/database/memory"
	"github.com/campushub/api/internal/domain/common/errorz"
	"github.com/campushub/api/internal/domain/dto"
	"github.com/campushub/api/internal/domain/entity"
)

type staticTokenIssuer struct{}

func (staticTokenIssuer) Issue(user *entity.User) (string, error) {
	return "token-" + user.ID, nil
}

func newUserFixture() *UserService {
	return NewUserService(memory.NewUserStorage(), staticTokenIssuer{})
}

func registerReq(email, role string) dto.Register {
	return dto.Register{
		Email:    email,
		Password: "s3cret",
		Name:     "Alex",
		Role:     role,
	}
}

func TestUserRegisterDefaultsToParticipant(t *testing.T) {
	svc := newUserFixture()
	ctx := context.Background()

	for _, role := range []string{"", "superuser"} {
		auth, err := svc.Register(ctx, registerReq(role+"a@campus.edu", role))
		if err != nil {
			t.Fatalf("register with role %q: %v", role, err)
		}
		if auth.User.Role != entity.RoleParticipant {
			t.Fatalf("role %q should default to participant, got %s", role, auth.User.Role)
		}
	}

	auth, err := svc.Register(ctx, registerReq("org@campus.edu", "organizer"))
	if err != nil {
		t.Fatalf("register organizer: %v", err)
	}
	if auth.User.Role != entity.RoleOrganizer {
		t.Fatalf("expected organizer, got %s", auth.User.Role)
	}
	if auth.Token == "" {
		t.Fatal("expected token in the register response")
	}
}

func TestUserRegisterHashesPassword(t *testing.T) {
	svc := newUserFixture()

	auth, err := svc.Register(context.Background(), registerReq("a@campus.edu", ""))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if auth.User.Password == "s3cret" {
		t.Fatal("password stored in plain text")
	}
}

func TestUserRegisterDuplicateEmail(t *testing.T) {
	svc := newUserFixture()
	ctx := context.Background()

	if _, err := svc.Register(ctx, registerReq("a@campus.edu", "")); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(ctx, registerReq("a@campus.edu", "")); !errors.Is(err, errorz.AlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}
}

func TestUserRegisterInvalidEmail(t *testing.T) {
	svc := newUserFixture()

	if _, err := svc.Register(context.Background(), registerReq("not-an-email", "")); !errors.Is(err, errorz.InvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestUserLogin(t *testing.T) {
	svc := newUserFixture()
	ctx := context.Background()

	if _, err := svc.Register(ctx, registerReq("a@campus.edu", "")); err != nil {
		t.Fatalf("register: %v", err)
	}

	auth, err := svc.Login(ctx, dto.Login{Email: "a@campus.edu", Password: "s3cret"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if auth.Token == "" || auth.User.Email != "a@campus.edu" {
		t.Fatalf("unexpected login response %+v", auth)
	}
}

func TestUserLoginBadCredentials(t *testing.T) {
	svc := newUserFixture()
	ctx := context.Background()

	if _, err := svc.Register(ctx, registerReq("a@campus.edu", "")); err != nil {
		t.Fatalf("register: %v", err)
	}

	// Unknown email and wrong password look identical to the caller.
	for _, req := range []dto.Login{
		{Email: "nobody@campus.edu", Password: "s3cret"},
		{Email: "a@campus.edu", Password: "wrong"},
	} {
		if _, err := svc.Login(ctx, req); !errors.Is(err, errorz.InvalidInput) {
			t.Fatalf("login %s: expected invalid input, got %v", req.Email, err)
		}
	}
}
