package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"travelplanner/internal/repository"

	"travelplanner/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Domain errors for auth flows.
var (
	ErrInvalidPassword = errors.New("incorrect password")
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidToken    = errors.New("invalid token")
)

// AuthService issues and verifies access tokens for users.
type AuthService struct {
	users repository.Users
	cfg   AuthConfig
}

func NewAuthService(users repository.Users, cfg AuthConfig) *AuthService {
	return &AuthService{users: users, cfg: cfg}
}

// Claims defines the JWT payload.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// Login validates credentials and returns a signed JWT. The token id (jti)
// is appended to the user's issued-token list.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrUserNotFound
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", ErrInvalidPassword
	}

	token, jti, err := s.issueToken(u)
	if err != nil {
		return "", err
	}
	if err := s.users.AddToken(ctx, u.ID, jti); err != nil {
		return "", err
	}
	return token, nil
}

// ChangePassword hashes the new password and stores it on the user record.
func (s *AuthService) ChangePassword(ctx context.Context, userID, newPassword string) error {
	oid, err := parseID(userID)
	if err != nil {
		return err
	}
	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.users.SetPassword(ctx, oid, hash)
}

// Authenticate parses a bearer token and resolves the user it belongs to.
func (s *AuthService) Authenticate(ctx context.Context, accessToken string) (*models.User, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.cfg.SigningKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}

	oid, err := parseID(claims.UserID)
	if err != nil {
		return nil, ErrInvalidToken
	}
	u, err := s.users.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *AuthService) issueToken(u *models.User) (token, jti string, err error) {
	now := time.Now()
	jti = uuid.NewString()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: u.ID.Hex(),
	})
	signed, err := t.SignedString(s.cfg.SigningKey)
	if err != nil {
		return "", "", fmt.Errorf("sign token: %w", err)
	}
	return signed, jti, nil
}

// HashPassword bcrypt-hashes a non-empty password.
func HashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", fmt.Errorf("password is empty: %w", ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
