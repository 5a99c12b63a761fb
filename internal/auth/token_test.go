package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lostfound-app/apiserver/types"
)

const testSecret = "test-secret-key-that-is-long-enough"

func testUser() types.User {
	return types.User{
		ID:    "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		Email: "a@b.com",
		Name:  "A",
	}
}

func TestIssueAndVerify(t *testing.T) {
	svc := NewTokenService(testSecret, 24)

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}

	if claims.UserID != "7c9e6679-7425-40de-944b-e07fc1f90ae7" {
		t.Errorf("unexpected userId %q", claims.UserID)
	}
	if claims.Email != "a@b.com" {
		t.Errorf("unexpected email %q", claims.Email)
	}
	if claims.Name != "A" {
		t.Errorf("unexpected name %q", claims.Name)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	token, _ := NewTokenService("secret1", 24).Issue(testUser())

	if _, err := NewTokenService("secret2", 24).Verify(token); err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestVerifyMalformed(t *testing.T) {
	if _, err := NewTokenService(testSecret, 24).Verify("not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestVerifyExpired(t *testing.T) {
	now := time.Now()
	claims := Claims{
		UserID: "some-user",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("signing expired token: %v", err)
	}

	if _, err := NewTokenService(testSecret, 24).Verify(token); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestExpirySetFromConfig(t *testing.T) {
	svc := NewTokenService(testSecret, 48)
	token, _ := svc.Issue(testUser())
	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}

	expected := time.Now().Add(48 * time.Hour)
	diff := expected.Sub(claims.ExpiresAt.Time)
	if diff < -5*time.Second || diff > 5*time.Second {
		t.Errorf("token expiry too far from expected: diff=%v", diff)
	}
}
