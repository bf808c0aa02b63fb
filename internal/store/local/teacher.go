package local

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/orenbz/course-admin-api/internal/models"
	"github.com/orenbz/course-admin-api/internal/store"
)

// TeacherStore implements store.TeacherStore on the local blob store.
type TeacherStore struct {
	db *DB
}

func (s *TeacherStore) List(ctx context.Context) ([]models.Teacher, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	teachers, err := readAll[models.Teacher](s.db, teachersKey)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(teachers, func(t models.Teacher) time.Time { return t.CreatedAt })
	return teachers, nil
}

func (s *TeacherStore) FindByID(ctx context.Context, id string) (*models.Teacher, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	teachers, err := readAll[models.Teacher](s.db, teachersKey)
	if err != nil {
		return nil, err
	}
	for i := range teachers {
		if teachers[i].ID == id {
			t := teachers[i]
			return &t, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *TeacherStore) Create(ctx context.Context, teacher *models.Teacher) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if teacher.ID == "" {
		teacher.ID = uuid.NewString()
	}
	if teacher.CreatedAt.IsZero() {
		teacher.CreatedAt = time.Now().UTC()
	}

	teachers, err := readAll[models.Teacher](s.db, teachersKey)
	if err != nil {
		return err
	}
	teachers = append(teachers, *teacher)
	return writeAll(s.db, teachersKey, teachers)
}

func (s *TeacherStore) Update(ctx context.Context, teacher *models.Teacher) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	teachers, err := readAll[models.Teacher](s.db, teachersKey)
	if err != nil {
		return err
	}
	for i := range teachers {
		if teachers[i].ID == teacher.ID {
			teacher.CreatedAt = teachers[i].CreatedAt
			teachers[i] = *teacher
			return writeAll(s.db, teachersKey, teachers)
		}
	}
	return store.ErrNotFound
}

func (s *TeacherStore) Delete(ctx context.Context, id string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	teachers, err := readAll[models.Teacher](s.db, teachersKey)
	if err != nil {
		return err
	}
	for i := range teachers {
		if teachers[i].ID == id {
			teachers = append(teachers[:i], teachers[i+1:]...)
			return writeAll(s.db, teachersKey, teachers)
		}
	}
	return store.ErrNotFound
}
