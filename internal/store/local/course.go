package local

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/orenbz/course-admin-api/internal/models"
	"github.com/orenbz/course-admin-api/internal/store"
)

// CourseStore implements store.CourseStore on the local blob store.
type CourseStore struct {
	db *DB
}

func (s *CourseStore) List(ctx context.Context, filter models.CourseFilter) ([]models.Course, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	courses, err := readAll[models.Course](s.db, coursesKey)
	if err != nil {
		return nil, err
	}
	if filter.Search != "" {
		q := strings.ToLower(filter.Search)
		filtered := courses[:0]
		for _, c := range courses {
			if strings.Contains(strings.ToLower(c.Code), q) || strings.Contains(strings.ToLower(c.Name), q) {
				filtered = append(filtered, c)
			}
		}
		courses = filtered
	}
	sortNewestFirst(courses, func(c models.Course) time.Time { return c.CreatedAt })
	return courses, nil
}

func (s *CourseStore) FindByID(ctx context.Context, id string) (*models.Course, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	courses, err := readAll[models.Course](s.db, coursesKey)
	if err != nil {
		return nil, err
	}
	for i := range courses {
		if courses[i].ID == id {
			c := courses[i]
			return &c, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *CourseStore) Create(ctx context.Context, course *models.Course) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	if course.CreatedAt.IsZero() {
		course.CreatedAt = time.Now().UTC()
	}

	courses, err := readAll[models.Course](s.db, coursesKey)
	if err != nil {
		return err
	}
	courses = append(courses, *course)
	return writeAll(s.db, coursesKey, courses)
}

func (s *CourseStore) Update(ctx context.Context, course *models.Course) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	courses, err := readAll[models.Course](s.db, coursesKey)
	if err != nil {
		return err
	}
	for i := range courses {
		if courses[i].ID == course.ID {
			course.CreatedAt = courses[i].CreatedAt
			courses[i] = *course
			return writeAll(s.db, coursesKey, courses)
		}
	}
	return store.ErrNotFound
}

func (s *CourseStore) Delete(ctx context.Context, id string) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	courses, err := readAll[models.Course](s.db, coursesKey)
	if err != nil {
		return err
	}
	for i := range courses {
		if courses[i].ID == id {
			courses = append(courses[:i], courses[i+1:]...)
			return writeAll(s.db, coursesKey, courses)
		}
	}
	return store.ErrNotFound
}

// sortNewestFirst orders records createdAt-descending to match the postgres
// backend's ordering contract.
func sortNewestFirst[T any](items []T, createdAt func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(items[i]).After(createdAt(items[j]))
	})
}
