package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/orenbz/course-admin-api/internal/models"
	"github.com/orenbz/course-admin-api/internal/store"
)

// UserStore manages persistence for application user profiles.
type UserStore struct {
	db *sqlx.DB
}

// NewUserStore constructs a UserStore.
func NewUserStore(db *sqlx.DB) *UserStore {
	return &UserStore{db: db}
}

const userColumns = "id, full_name, email, phone, age, city, auth_ref, created_at"

// List returns users newest first.
func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users ORDER BY created_at DESC", userColumns)
	users := []models.User{}
	if err := s.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// FindByID fetches a user by id.
func (s *UserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE id = $1", userColumns)
	var user models.User
	if err := s.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

// Create inserts a new user profile.
func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO users (id, full_name, email, phone, age, city, auth_ref, created_at)
		VALUES (:id, :full_name, :email, :phone, :age, :city, :auth_ref, :created_at)`
	if _, err := s.db.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Delete removes a user profile. The identity account is not touched.
func (s *UserStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return checkAffected(res)
}

// AuthAccountStore manages persistence for identity accounts.
type AuthAccountStore struct {
	db *sqlx.DB
}

// NewAuthAccountStore constructs an AuthAccountStore.
func NewAuthAccountStore(db *sqlx.DB) *AuthAccountStore {
	return &AuthAccountStore{db: db}
}

// FindByEmail fetches an account by its case-insensitive email.
func (s *AuthAccountStore) FindByEmail(ctx context.Context, email string) (*models.AuthAccount, error) {
	const query = `SELECT id, email, password_hash, created_at FROM auth_accounts WHERE LOWER(email) = LOWER($1)`
	var account models.AuthAccount
	if err := s.db.GetContext(ctx, &account, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("find auth account: %w", err)
	}
	return &account, nil
}

// Create inserts a new identity account.
func (s *AuthAccountStore) Create(ctx context.Context, account *models.AuthAccount) error {
	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO auth_accounts (id, email, password_hash, created_at)
		VALUES (:id, :email, :password_hash, :created_at)`
	if _, err := s.db.NamedExecContext(ctx, query, account); err != nil {
		return fmt.Errorf("create auth account: %w", err)
	}
	return nil
}
