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

// TeacherStore manages persistence for teachers.
type TeacherStore struct {
	db *sqlx.DB
}

// NewTeacherStore constructs a TeacherStore.
func NewTeacherStore(db *sqlx.DB) *TeacherStore {
	return &TeacherStore{db: db}
}

const teacherColumns = "id, full_name, email, phone, expertise, course_ids, created_at"

// List returns teachers newest first.
func (s *TeacherStore) List(ctx context.Context) ([]models.Teacher, error) {
	query := fmt.Sprintf("SELECT %s FROM teachers ORDER BY created_at DESC", teacherColumns)
	teachers := []models.Teacher{}
	if err := s.db.SelectContext(ctx, &teachers, query); err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	return teachers, nil
}

// FindByID fetches a teacher by id.
func (s *TeacherStore) FindByID(ctx context.Context, id string) (*models.Teacher, error) {
	query := fmt.Sprintf("SELECT %s FROM teachers WHERE id = $1", teacherColumns)
	var teacher models.Teacher
	if err := s.db.GetContext(ctx, &teacher, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("find teacher: %w", err)
	}
	return &teacher, nil
}

// Create inserts a new teacher record.
func (s *TeacherStore) Create(ctx context.Context, teacher *models.Teacher) error {
	if teacher.ID == "" {
		teacher.ID = uuid.NewString()
	}
	if teacher.CreatedAt.IsZero() {
		teacher.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO teachers (id, full_name, email, phone, expertise, course_ids, created_at)
		VALUES (:id, :full_name, :email, :phone, :expertise, :course_ids, :created_at)`
	if _, err := s.db.NamedExecContext(ctx, query, teacher); err != nil {
		return fmt.Errorf("create teacher: %w", err)
	}
	return nil
}

// Update modifies an existing teacher.
func (s *TeacherStore) Update(ctx context.Context, teacher *models.Teacher) error {
	const query = `UPDATE teachers SET full_name = :full_name, email = :email, phone = :phone, expertise = :expertise, course_ids = :course_ids WHERE id = :id`
	res, err := s.db.NamedExecContext(ctx, query, teacher)
	if err != nil {
		return fmt.Errorf("update teacher: %w", err)
	}
	return checkAffected(res)
}

// Delete removes a teacher.
func (s *TeacherStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM teachers WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete teacher: %w", err)
	}
	return checkAffected(res)
}
