package local

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/orenbz/course-admin-api/internal/models"
	"github.com/orenbz/course-admin-api/internal/store"
)

// UserStore implements store.UserStore on the local blob store.
type UserStore struct {
	db *DB
}

func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	users, err := readAll[models.User](s.db, usersKey)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(users, func(u models.User) time.Time { return u.CreatedAt })
	return users, nil
}

func (s *UserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	users, err := readAll[models.User](s.db, usersKey)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			u := users[i]
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	users, err := readAll[models.User](s.db, usersKey)
	if err != nil {
		return err
	}
	users = append(users, *user)
	return writeAll(s.db, usersKey, users)
}

func (s *UserStore) Delete(ctx context.Context, id string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	users, err := readAll[models.User](s.db, usersKey)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == id {
			users = append(users[:i], users[i+1:]...)
			return writeAll(s.db, usersKey, users)
		}
	}
	return store.ErrNotFound
}

// AuthAccountStore implements store.AuthAccountStore on the local blob store.
type AuthAccountStore struct {
	db *DB
}

func (s *AuthAccountStore) FindByEmail(ctx context.Context, email string) (*models.AuthAccount, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	accounts, err := readAll[models.AuthAccount](s.db, authAccountsKey)
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if strings.EqualFold(accounts[i].Email, email) {
			a := accounts[i]
			return &a, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *AuthAccountStore) Create(ctx context.Context, account *models.AuthAccount) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now().UTC()
	}

	accounts, err := readAll[models.AuthAccount](s.db, authAccountsKey)
	if err != nil {
		return err
	}
	accounts = append(accounts, *account)
	return writeAll(s.db, authAccountsKey, accounts)
}
