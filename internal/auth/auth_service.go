package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Service checks the single admin credential and issues/validates the
// bearer tokens that gate every mutating endpoint.
type Service struct {
	secret            []byte
	tokenTTL          time.Duration
	adminEmail        string
	adminPasswordHash string
}

// TokenClaims carries the authenticated principal inside the JWT.
type TokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// NewService hashes the configured admin password once so no plaintext is
// retained, and keeps the HMAC signing secret.
func NewService(secret string, tokenTTL time.Duration, adminEmail, adminPassword string) (*Service, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if adminEmail == "" || adminPassword == "" {
		return nil, errors.New("admin credentials are required")
	}

	hash, err := HashPassword(adminPassword)
	if err != nil {
		return nil, err
	}

	return &Service{
		secret:            []byte(secret),
		tokenTTL:          tokenTTL,
		adminEmail:        adminEmail,
		adminPasswordHash: hash,
	}, nil
}

// Authenticate reports whether email/password identify the administrator.
func (s *Service) Authenticate(email, password string) bool {
	if email != s.adminEmail {
		return false
	}
	return CheckPasswordHash(password, s.adminPasswordHash)
}

// GenerateToken signs a bearer token for the administrator.
func (s *Service) GenerateToken() (string, error) {
	now := time.Now()
	claims := TokenClaims{
		Email: s.adminEmail,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.adminEmail,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a bearer token.
func (s *Service) ValidateToken(tokenString string) (*TokenClaims, error) {
	if tokenString == "" {
		return nil, errors.New("token string is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

// AdminEmail exposes the configured administrator identity.
func (s *Service) AdminEmail() string {
	return s.adminEmail
}

// TokenTTL exposes the configured token lifetime.
func (s *Service) TokenTTL() time.Duration {
	return s.tokenTTL
}
