package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/orenbz/course-admin-api/internal/models"
	"github.com/orenbz/course-admin-api/internal/store"
	"github.com/orenbz/course-admin-api/internal/validation"
	appErrors "github.com/orenbz/course-admin-api/pkg/errors"
)

// UserInput is the registration payload. Password is handed to the auth
// provider only and is never written to the profile store.
type UserInput struct {
	FullName string `json:"fullName" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,phone_digits"`
	Age      int    `json:"age" validate:"required,gte=12,lte=120"`
	City     string `json:"city" validate:"required,max=30"`
	Password string `json:"password" validate:"required,min=6"`
}

// accountProvisioner creates a login account for a new user and returns
// its identifier.
type accountProvisioner interface {
	CreateAccount(ctx context.Context, email, password string) (string, error)
}

// UserService manages user profiles. Account creation happens first so a
// rejected credential never leaves a profile behind; the reverse failure
// mode (account created, profile write failed) is logged as an orphan.
type UserService struct {
	users    store.UserStore
	accounts accountProvisioner
	logger   *zap.Logger
}

func NewUserService(users store.UserStore, accounts accountProvisioner, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{users: users, accounts: accounts, logger: logger}
}

// List returns profiles newest first.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, persistenceError(err, "failed to list users")
	}
	return users, nil
}

// Get returns a profile by id.
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return nil, persistenceError(err, "failed to load user")
	}
	return user, nil
}

// Create provisions the login account first, then persists the profile.
func (s *UserService) Create(ctx context.Context, input UserInput) (*models.User, error) {
	if errs := validation.Struct(input); !errs.Empty() {
		return nil, appErrors.WithFields(appErrors.ErrValidation, errs)
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	accountID, err := s.accounts.CreateAccount(ctx, email, input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName: strings.TrimSpace(input.FullName),
		Email:    email,
		Phone:    input.Phone,
		Age:      input.Age,
		City:     strings.TrimSpace(input.City),
		AuthRef:  accountID,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// The account exists but the profile does not; record enough to
		// reconcile the orphan by hand.
		s.logger.Error("orphaned auth account after profile save failure",
			zap.String("email", email),
			zap.String("accountId", accountID),
			zap.Error(err))
		return nil, persistenceError(err, "account was created but the profile could not be saved")
	}
	return user, nil
}

// Delete removes a profile. The matching auth account is kept; a login
// without a profile is harmless and reconciliation is a manual step.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return appErrors.Clone(appErrors.ErrNotFound, "user not found")
		}
		return persistenceError(err, "failed to delete user")
	}
	return nil
}
