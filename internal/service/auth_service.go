package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/orenbz/course-admin-api/internal/models"
	"github.com/orenbz/course-admin-api/internal/store"
	"github.com/orenbz/course-admin-api/internal/validation"
	appErrors "github.com/orenbz/course-admin-api/pkg/errors"
)

const minPasswordLength = 6

// AuthService owns login accounts and session tokens. Accounts live in
// their own collection, separate from user profiles.
type AuthService struct {
	accounts      store.AuthAccountStore
	jwtSecret     []byte
	jwtExpiration time.Duration
	logger        *zap.Logger
}

func NewAuthService(accounts store.AuthAccountStore, jwtSecret string, jwtExpiration time.Duration, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		accounts:      accounts,
		jwtSecret:     []byte(jwtSecret),
		jwtExpiration: jwtExpiration,
		logger:        logger,
	}
}

// CreateAccount provisions a login account and returns its id. Weak
// passwords and already-registered emails are provisioning failures, not
// validation ones, so callers can tell them apart from payload problems.
func (s *AuthService) CreateAccount(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if len(password) < minPasswordLength {
		return "", appErrors.Clone(appErrors.ErrAuthProvision, "password must be at least 6 characters")
	}

	if _, err := s.accounts.FindByEmail(ctx, email); err == nil {
		return "", appErrors.Clone(appErrors.ErrAuthProvision, "an account with this email already exists")
	} else if !errors.Is(err, store.ErrNotFound) {
		return "", persistenceError(err, "failed to check existing accounts")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	account := &models.AuthAccount{Email: email, PasswordHash: string(hash)}
	if err := s.accounts.Create(ctx, account); err != nil {
		return "", persistenceError(err, "failed to create auth account")
	}
	return account.ID, nil
}

// Login verifies credentials and issues a signed session token.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if errs := validation.Struct(req); !errs.Empty() {
		return nil, appErrors.WithFields(appErrors.ErrValidation, errs)
	}

	account, err := s.accounts.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, persistenceError(err, "failed to load auth account")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, appErrors.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	claims := models.JWTClaims{
		AccountID: account.ID,
		Email:     account.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiration)),
			Subject:   account.ID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign session token")
	}

	return &models.LoginResponse{
		AccessToken: signed,
		ExpiresIn:   int64(s.jwtExpiration.Seconds()),
		IssuedAt:    now,
		Email:       account.Email,
	}, nil
}

// ValidateToken parses a session token and returns its claims.
func (s *AuthService) ValidateToken(tokenString string) (*models.JWTClaims, error) {
	claims := &models.JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, appErrors.ErrUnauthorized
	}
	return claims, nil
}
