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

// CourseFileStore manages persistence for course file attachments.
type CourseFileStore struct {
	db *sqlx.DB
}

// NewCourseFileStore constructs a CourseFileStore.
func NewCourseFileStore(db *sqlx.DB) *CourseFileStore {
	return &CourseFileStore{db: db}
}

const courseFileColumns = "id, course_id, display_name, original_name, mime_type, size_bytes, content, created_at"

// List returns files newest first, optionally restricted to one course.
func (s *CourseFileStore) List(ctx context.Context, filter models.CourseFileFilter) ([]models.CourseFile, error) {
	query := fmt.Sprintf("SELECT %s FROM course_files", courseFileColumns)
	var args []interface{}
	if filter.CourseID != "" {
		query += " WHERE course_id = $1"
		args = append(args, filter.CourseID)
	}
	query += " ORDER BY created_at DESC"

	files := []models.CourseFile{}
	if err := s.db.SelectContext(ctx, &files, query, args...); err != nil {
		return nil, fmt.Errorf("list course files: %w", err)
	}
	return files, nil
}

// FindByID fetches a file by id.
func (s *CourseFileStore) FindByID(ctx context.Context, id string) (*models.CourseFile, error) {
	query := fmt.Sprintf("SELECT %s FROM course_files WHERE id = $1", courseFileColumns)
	var file models.CourseFile
	if err := s.db.GetContext(ctx, &file, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("find course file: %w", err)
	}
	return &file, nil
}

// Create inserts a new file record with its inline content.
func (s *CourseFileStore) Create(ctx context.Context, file *models.CourseFile) error {
	if file.ID == "" {
		file.ID = uuid.NewString()
	}
	if file.CreatedAt.IsZero() {
		file.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO course_files (id, course_id, display_name, original_name, mime_type, size_bytes, content, created_at)
		VALUES (:id, :course_id, :display_name, :original_name, :mime_type, :size_bytes, :content, :created_at)`
	if _, err := s.db.NamedExecContext(ctx, query, file); err != nil {
		return fmt.Errorf("create course file: %w", err)
	}
	return nil
}

// Delete removes a file record.
func (s *CourseFileStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM course_files WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete course file: %w", err)
	}
	return checkAffected(res)
}
