package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/campushub/api/internal/domain/common/errorz"
	"github.com/campushub/api/internal/domain/entity"
)

func testUser() *entity.User {
	return &entity.User{
		ID:    "user-1",
		Email: "a@campus.edu",
		Role:  entity.RoleOrganizer,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	token, err := m.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID() != "user-1" {
		t.Fatalf("expected subject user-1, got %q", claims.UserID())
	}
	if claims.Email != "a@campus.edu" || claims.Role != entity.RoleOrganizer {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestTokenExpired(t *testing.T) {
	m := NewTokenManager("secret", -time.Minute)

	token, err := m.Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err = m.Parse(token); !errors.Is(err, errorz.Unauthenticated) {
		t.Fatalf("expected unauthenticated for expired token, got %v", err)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret", time.Hour).Issue(testUser())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err = NewTokenManager("other", time.Hour).Parse(token); !errors.Is(err, errorz.Unauthenticated) {
		t.Fatalf("expected unauthenticated for wrong secret, got %v", err)
	}
}

func TestTokenGarbage(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := m.Parse(token); !errors.Is(err, errorz.Unauthenticated) {
			t.Fatalf("token %q: expected unauthenticated, got %v", token, err)
		}
	}
}

func TestTokenUnsignedRejected(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Role: entity.RoleAdmin,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}

	if _, err = m.Parse(token); !errors.Is(err, errorz.Unauthenticated) {
		t.Fatalf("expected unauthenticated for alg none, got %v", err)
	}
}

func TestTokenInvalidRoleRejected(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Role: entity.Role("superuser"),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err = m.Parse(token); !errors.Is(err, errorz.Unauthenticated) {
		t.Fatalf("expected unauthenticated for invalid role, got %v", err)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash equals the plain text")
	}
	if !CheckPassword(hash, "s3cret") {
		t.Fatal("correct password rejected")
	}
	if CheckPassword(hash, "wrong") {
		t.Fatal("wrong password accepted")
	}
}
