package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/orenbz/course-admin-api/internal/models"
	"github.com/orenbz/course-admin-api/internal/store"
)

// CourseStore manages persistence for courses.
type CourseStore struct {
	db *sqlx.DB
}

// NewCourseStore constructs a CourseStore.
func NewCourseStore(db *sqlx.DB) *CourseStore {
	return &CourseStore{db: db}
}

const courseColumns = "id, code, name, credits, teacher_ids, created_at"

// List returns courses newest first, optionally filtered by a
// case-insensitive search over code and name.
func (s *CourseStore) List(ctx context.Context, filter models.CourseFilter) ([]models.Course, error) {
	query := fmt.Sprintf("SELECT %s FROM courses", courseColumns)
	var args []interface{}
	if filter.Search != "" {
		query += " WHERE LOWER(code) LIKE $1 OR LOWER(name) LIKE $1"
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
	}
	query += " ORDER BY created_at DESC"

	courses := []models.Course{}
	if err := s.db.SelectContext(ctx, &courses, query, args...); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// FindByID fetches a course by id.
func (s *CourseStore) FindByID(ctx context.Context, id string) (*models.Course, error) {
	query := fmt.Sprintf("SELECT %s FROM courses WHERE id = $1", courseColumns)
	var course models.Course
	if err := s.db.GetContext(ctx, &course, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}
	return &course, nil
}

// Create inserts a new course record, assigning id and createdAt.
func (s *CourseStore) Create(ctx context.Context, course *models.Course) error {
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	if course.CreatedAt.IsZero() {
		course.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO courses (id, code, name, credits, teacher_ids, created_at)
		VALUES (:id, :code, :name, :credits, :teacher_ids, :created_at)`
	if _, err := s.db.NamedExecContext(ctx, query, course); err != nil {
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}

// Update modifies an existing course, preserving id and createdAt.
func (s *CourseStore) Update(ctx context.Context, course *models.Course) error {
	const query = `UPDATE courses SET code = :code, name = :name, credits = :credits, teacher_ids = :teacher_ids WHERE id = :id`
	res, err := s.db.NamedExecContext(ctx, query, course)
	if err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	return checkAffected(res)
}

// Delete removes a course. References held elsewhere are left dangling.
func (s *CourseStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM courses WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
