package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// signToken firma un token como lo haria el servicio de identidad.
func signToken(t *testing.T, secret, issuer, userID string, expiresAt time.Time) string {
	t.Helper()
	claims := Claims{
		UserID:    userID,
		Email:     "user@example.com",
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(expiresAt.Add(-time.Hour)),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return token
}

func TestJWTService_ParseAccess(t *testing.T) {
	svc := NewJWTService("secret")
	token := signToken(t, "secret", JWTIssuer, "u1", time.Now().Add(15*time.Minute))

	claims, err := svc.ParseAccessToken(token)
	if err != nil {
		t.Fatalf("parse access: %v", err)
	}
	if claims.UserID != "u1" || claims.Email != "user@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestJWTService_RejectsExpired(t *testing.T) {
	svc := NewJWTService("secret")
	token := signToken(t, "secret", JWTIssuer, "u1", time.Now().Add(-time.Hour))

	if _, err := svc.ParseAccessToken(token); !errors.Is(err, ErrJWTExpired) {
		t.Fatalf("expected ErrJWTExpired, got %v", err)
	}
}

func TestJWTService_RejectsWrongSecretAndIssuer(t *testing.T) {
	svc := NewJWTService("secret")
	exp := time.Now().Add(time.Hour)

	if _, err := svc.ParseAccessToken(signToken(t, "other", JWTIssuer, "u1", exp)); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid for foreign secret, got %v", err)
	}
	if _, err := svc.ParseAccessToken(signToken(t, "secret", "someone-else", "u1", exp)); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid for foreign issuer, got %v", err)
	}
	if _, err := svc.ParseAccessToken(signToken(t, "secret", JWTIssuer, "", exp)); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid without user, got %v", err)
	}
}

func TestJWTService_Disabled(t *testing.T) {
	svc := NewJWTService("")
	if svc.Enabled() {
		t.Fatalf("expected disabled service")
	}
	if _, err := svc.ParseAccessToken("x"); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid, got %v", err)
	}
}
