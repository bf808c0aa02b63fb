// Package postgres implements the persistence gateway on a PostgreSQL
// database via sqlx, one row per record with server-side created_at
// ordering.
package postgres

import (
	"github.com/jmoiron/sqlx"

	"github.com/orenbz/course-admin-api/internal/store"
)

// NewStores wires every collection gateway onto one database handle.
func NewStores(db *sqlx.DB) store.Stores {
	return store.Stores{
		Courses:      NewCourseStore(db),
		Teachers:     NewTeacherStore(db),
		CourseFiles:  NewCourseFileStore(db),
		Users:        NewUserStore(db),
		AuthAccounts: NewAuthAccountStore(db),
	}
}
