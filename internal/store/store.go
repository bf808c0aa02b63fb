// Package store declares the persistence gateway: the storage-agnostic
// contract the entity services talk to. Two interchangeable backends
// implement it, a postgres document-per-row collection and a local
// one-blob-per-collection file store.
package store

import (
	"context"
	"errors"

	"github.com/orenbz/course-admin-api/internal/models"
)

// ErrNotFound is returned by every backend for update/delete/find against
// an id that does not exist.
var ErrNotFound = errors.New("record not found")

// CourseStore persists the courses collection, listed createdAt-descending.
type CourseStore interface {
	List(ctx context.Context, filter models.CourseFilter) ([]models.Course, error)
	FindByID(ctx context.Context, id string) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id string) error
}

// TeacherStore persists the teachers collection.
type TeacherStore interface {
	List(ctx context.Context) ([]models.Teacher, error)
	FindByID(ctx context.Context, id string) (*models.Teacher, error)
	Create(ctx context.Context, teacher *models.Teacher) error
	Update(ctx context.Context, teacher *models.Teacher) error
	Delete(ctx context.Context, id string) error
}

// CourseFileStore persists the course files collection.
type CourseFileStore interface {
	List(ctx context.Context, filter models.CourseFileFilter) ([]models.CourseFile, error)
	FindByID(ctx context.Context, id string) (*models.CourseFile, error)
	Create(ctx context.Context, file *models.CourseFile) error
	Delete(ctx context.Context, id string) error
}

// UserStore persists application user profiles.
type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id string) error
}

// AuthAccountStore persists identity-provider accounts.
type AuthAccountStore interface {
	FindByEmail(ctx context.Context, email string) (*models.AuthAccount, error)
	Create(ctx context.Context, account *models.AuthAccount) error
}

// Stores bundles one backend's gateways for wiring.
type Stores struct {
	Courses      CourseStore
	Teachers     TeacherStore
	CourseFiles  CourseFileStore
	Users        UserStore
	AuthAccounts AuthAccountStore
}
