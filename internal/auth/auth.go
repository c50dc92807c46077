// Package auth issues and verifies account credentials: bcrypt password
// hashes, HS256 access tokens and opaque refresh tokens.
package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rentx-lk/rentx-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token expired")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")
	ErrPasswordTooLong    = errors.New("password must be at most 72 bytes")
)

const (
	issuer        = "rentx-api"
	defaultSecret = "default-secret-key-change-in-production"
	defaultExpiry = 24 * time.Hour
	refreshBytes  = 32

	// bcrypt only reads this many bytes of a password.
	maxPasswordBytes = 72
)

// accessClaims is the payload of an access token. The subject is the user id.
type accessClaims struct {
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
	jwt.RegisteredClaims
}

// Service signs and checks renter credentials.
type Service struct {
	jwtSecret []byte
	tokenExp  time.Duration
	now       func() time.Time
}

// NewService creates a new authentication service. An empty secret or a
// non-positive expiry falls back to the development defaults.
func NewService(secret string, exp time.Duration) *Service {
	if secret == "" {
		secret = defaultSecret
	}
	if exp <= 0 {
		exp = defaultExpiry
	}
	return &Service{
		jwtSecret: []byte(secret),
		tokenExp:  exp,
		now:       time.Now,
	}
}

// HashPassword hashes a password using bcrypt
func (s *Service) HashPassword(password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches hash.
func (s *Service) CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Verify checks a log-in attempt against a stored account. A wrong password
// is reported before an inactive account so the form does not leak which
// accounts are disabled.
func (s *Service) Verify(user *models.User, password string) error {
	if user == nil || !s.CheckPassword(password, user.PasswordHash) {
		return ErrInvalidCredentials
	}
	if !user.IsActive {
		return ErrUserInactive
	}
	return nil
}

// GenerateToken signs an access token for user.
func (s *Service) GenerateToken(user *models.User) (string, error) {
	now := s.now()
	claims := accessClaims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   user.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenExp)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}

// GenerateRefreshToken returns a random URL-safe token.
func (s *Service) GenerateRefreshToken() (string, error) {
	buf := make([]byte, refreshBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return base64.URLEncoding.EncodeToString(buf), nil
}

// ValidateToken parses an access token, with or without the "Bearer "
// prefix, and returns its claims.
func (s *Service) ValidateToken(tokenString string) (*models.Claims, error) {
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	var claims accessClaims
	key := func(*jwt.Token) (interface{}, error) { return s.jwtSecret, nil }
	_, err := jwt.ParseWithClaims(tokenString, &claims, key,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		return nil, ErrInvalidToken
	}

	if claims.Subject == "" || !models.IsValidRole(claims.Role) {
		return nil, ErrInvalidToken
	}

	return &models.Claims{
		UserID: claims.Subject,
		Email:  claims.Email,
		Role:   claims.Role,
		Exp:    claims.ExpiresAt.Unix(),
	}, nil
}

// ExtractTokenFromHeader returns the token of an "Authorization: Bearer"
// header.
func (s *Service) ExtractTokenFromHeader(authHeader string) (string, error) {
	scheme, token, ok := strings.Cut(authHeader, " ")
	if !ok || scheme != "Bearer" || token == "" || strings.Contains(token, " ") {
		return "", ErrInvalidToken
	}
	return token, nil
}
