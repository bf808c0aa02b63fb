// Package local implements the persistence gateway on plain files: each
// collection lives under a fixed, well-known key (its file name) and every
// write re-serializes the whole collection as one JSON blob. It exists so
// the admin console can run without a database; behaviour is interchangeable
// with the postgres backend.
package local

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/orenbz/course-admin-api/internal/store"
)

// Collection keys. These are part of the on-disk contract.
const (
	coursesKey      = "courses"
	teachersKey     = "teachers"
	courseFilesKey  = "course_files"
	usersKey        = "users"
	authAccountsKey = "auth_accounts"
)

// DB owns the base directory holding one JSON file per collection. A single
// mutex serializes access; the console issues one operation at a time.
type DB struct {
	dir string
	mu  sync.Mutex
}

// Open ensures the base directory exists and returns a handle.
func Open(dir string) (*DB, error) {
	if dir == "" {
		dir = "./data"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	return &DB{dir: dir}, nil
}

// NewStores wires every collection gateway onto one directory handle.
func NewStores(db *DB) store.Stores {
	return store.Stores{
		Courses:      &CourseStore{db: db},
		Teachers:     &TeacherStore{db: db},
		CourseFiles:  &CourseFileStore{db: db},
		Users:        &UserStore{db: db},
		AuthAccounts: &AuthAccountStore{db: db},
	}
}

func (db *DB) path(key string) string {
	return filepath.Join(db.dir, key+".json")
}

// readAll loads a whole collection. A missing file is an empty collection.
func readAll[T any](db *DB, key string) ([]T, error) {
	raw, err := os.ReadFile(db.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read collection %s: %w", key, err)
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode collection %s: %w", key, err)
	}
	return items, nil
}

// writeAll replaces a whole collection on disk. The write goes through a
// temp file and rename so a crash never leaves a half-written blob.
func writeAll[T any](db *DB, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", key, err)
	}
	path := db.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write collection %s: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace collection %s: %w", key, err)
	}
	return nil
}
