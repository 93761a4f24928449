package service

import (
	"errors"
	"os"
	"time"

	"dancenavi/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// AuthService issues and validates tenant-scoped operator tokens. The engine
// itself is auth-agnostic; this only backs the thin transport boundary.
type AuthService struct {
	username  string
	password  string
	jwtSecret []byte
}

// NewAuthService creates a new auth service from environment credentials
func NewAuthService() *AuthService {
	username := os.Getenv("OPERATOR_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("OPERATOR_PASSWORD")
	if password == "" {
		password = "password123"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "super-secret-key-change-in-production"
	}

	return &AuthService{
		username:  username,
		password:  password,
		jwtSecret: []byte(secret),
	}
}

// Login validates operator credentials and returns a token scoped to the
// requested school
func (s *AuthService) Login(username, password, schoolID string) (*model.LoginResponse, error) {
	if username != s.username || password != s.password {
		return nil, ErrInvalidCredentials
	}
	if schoolID == "" {
		return nil, errNoSchoolID()
	}

	token, err := s.GenerateTenantToken(schoolID)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		Token:    token,
		SchoolID: schoolID,
	}, nil
}

// GenerateTenantToken creates a school-scoped JWT valid for 24 hours
func (s *AuthService) GenerateTenantToken(schoolID string) (string, error) {
	claims := &model.TenantClaims{
		SchoolID: schoolID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateTenantToken validates a tenant JWT and returns its claims
func (s *AuthService) ValidateTenantToken(tokenString string) (*model.TenantClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.TenantClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.TenantClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
