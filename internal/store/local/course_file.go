package local

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/orenbz/course-admin-api/internal/models"
	"github.com/orenbz/course-admin-api/internal/store"
)

// CourseFileStore implements store.CourseFileStore on the local blob store.
type CourseFileStore struct {
	db *DB
}

func (s *CourseFileStore) List(ctx context.Context, filter models.CourseFileFilter) ([]models.CourseFile, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	files, err := readAll[models.CourseFile](s.db, courseFilesKey)
	if err != nil {
		return nil, err
	}
	if filter.CourseID != "" {
		filtered := files[:0]
		for _, f := range files {
			if f.CourseID == filter.CourseID {
				filtered = append(filtered, f)
			}
		}
		files = filtered
	}
	sortNewestFirst(files, func(f models.CourseFile) time.Time { return f.CreatedAt })
	return files, nil
}

func (s *CourseFileStore) FindByID(ctx context.Context, id string) (*models.CourseFile, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	files, err := readAll[models.CourseFile](s.db, courseFilesKey)
	if err != nil {
		return nil, err
	}
	for i := range files {
		if files[i].ID == id {
			f := files[i]
			return &f, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *CourseFileStore) Create(ctx context.Context, file *models.CourseFile) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if file.ID == "" {
		file.ID = uuid.NewString()
	}
	if file.CreatedAt.IsZero() {
		file.CreatedAt = time.Now().UTC()
	}

	files, err := readAll[models.CourseFile](s.db, courseFilesKey)
	if err != nil {
		return err
	}
	files = append(files, *file)
	return writeAll(s.db, courseFilesKey, files)
}

func (s *CourseFileStore) Delete(ctx context.Context, id string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	files, err := readAll[models.CourseFile](s.db, courseFilesKey)
	if err != nil {
		return err
	}
	for i := range files {
		if files[i].ID == id {
			files = append(files[:i], files[i+1:]...)
			return writeAll(s.db, courseFilesKey, files)
		}
	}
	return store.ErrNotFound
}
