package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/orenbz/course-admin-api/internal/models"
	appErrors "github.com/orenbz/course-admin-api/pkg/errors"
)

func newAuthService(accounts *mockAuthAccountStore) *AuthService {
	return NewAuthService(accounts, "test-secret", time.Hour, zap.NewNop())
}

func TestAuthServiceCreateAccount(t *testing.T) {
	accounts := &mockAuthAccountStore{}
	svc := newAuthService(accounts)

	id, err := svc.CreateAccount(context.Background(), "Noa@Example.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	require.Len(t, accounts.accounts, 1)
	assert.Equal(t, "noa@example.com", accounts.accounts[0].Email)
	assert.NotEqual(t, "secret1", accounts.accounts[0].PasswordHash, "password is stored hashed")
}

func TestAuthServiceCreateAccountWeakPassword(t *testing.T) {
	accounts := &mockAuthAccountStore{}
	svc := newAuthService(accounts)

	_, err := svc.CreateAccount(context.Background(), "noa@example.com", "12345")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrAuthProvision.Code, appErrors.FromError(err).Code)
	assert.Empty(t, accounts.accounts)
}

func TestAuthServiceCreateAccountDuplicateEmail(t *testing.T) {
	accounts := &mockAuthAccountStore{}
	svc := newAuthService(accounts)

	_, err := svc.CreateAccount(context.Background(), "noa@example.com", "secret1")
	require.NoError(t, err)

	_, err = svc.CreateAccount(context.Background(), "NOA@example.com", "secret2")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrAuthProvision.Code, appErrors.FromError(err).Code)
	assert.Len(t, accounts.accounts, 1)
}

func TestAuthServiceLogin(t *testing.T) {
	accounts := &mockAuthAccountStore{}
	svc := newAuthService(accounts)

	_, err := svc.CreateAccount(context.Background(), "noa@example.com", "secret1")
	require.NoError(t, err)

	res, err := svc.Login(context.Background(), models.LoginRequest{Email: "noa@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, int64(3600), res.ExpiresIn)
	assert.Equal(t, "noa@example.com", res.Email)

	claims, err := svc.ValidateToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "noa@example.com", claims.Email)
	assert.Equal(t, accounts.accounts[0].ID, claims.AccountID)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	accounts := &mockAuthAccountStore{}
	svc := newAuthService(accounts)

	_, err := svc.CreateAccount(context.Background(), "noa@example.com", "secret1")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), models.LoginRequest{Email: "noa@example.com", Password: "wrong1"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLoginUnknownEmail(t *testing.T) {
	svc := newAuthService(&mockAuthAccountStore{})

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "ghost@example.com", Password: "secret1"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceValidateTokenRejectsTampered(t *testing.T) {
	accounts := &mockAuthAccountStore{}
	svc := newAuthService(accounts)

	_, err := svc.CreateAccount(context.Background(), "noa@example.com", "secret1")
	require.NoError(t, err)

	res, err := svc.Login(context.Background(), models.LoginRequest{Email: "noa@example.com", Password: "secret1"})
	require.NoError(t, err)

	other := NewAuthService(accounts, "other-secret", time.Hour, zap.NewNop())
	_, err = other.ValidateToken(res.AccessToken)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)

	_, err = svc.ValidateToken("not.a.token")
	require.Error(t, err)
}
