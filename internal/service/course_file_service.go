package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/orenbz/course-admin-api/internal/models"
	"github.com/orenbz/course-admin-api/internal/store"
	"github.com/orenbz/course-admin-api/internal/validation"
	appErrors "github.com/orenbz/course-admin-api/pkg/errors"
)

// CourseFileInput is the upload payload. Content carries the file as a
// data-URL (`data:<mime>;base64,<payload>`), exactly as the console reads
// it from the file picker.
type CourseFileInput struct {
	CourseID     string `json:"courseId" validate:"required"`
	DisplayName  string `json:"displayName" validate:"required"`
	OriginalName string `json:"originalName" validate:"required"`
	Content      string `json:"content" validate:"required"`
}

// CourseFileService enforces size and referential rules for course file
// attachments.
type CourseFileService struct {
	files   store.CourseFileStore
	courses store.CourseStore
	labels  labelResolver
	maxSize int64
	logger  *zap.Logger
}

// NewCourseFileService constructs a CourseFileService. maxSize falls back
// to MaxCourseFileBytes when not positive.
func NewCourseFileService(files store.CourseFileStore, courses store.CourseStore, labels labelResolver, maxSize int64, logger *zap.Logger) *CourseFileService {
	if maxSize <= 0 {
		maxSize = models.MaxCourseFileBytes
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseFileService{files: files, courses: courses, labels: labels, maxSize: maxSize, logger: logger}
}

// List returns files newest first, restricted to one course when the
// filter carries a courseId, with course references resolved to labels.
func (s *CourseFileService) List(ctx context.Context, filter models.CourseFileFilter) ([]models.CourseFileView, error) {
	files, err := s.files.List(ctx, filter)
	if err != nil {
		return nil, persistenceError(err, "failed to list course files")
	}

	labels, err := s.labels.LabelMap(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]models.CourseFileView, 0, len(files))
	for _, f := range files {
		label, ok := labels[f.CourseID]
		if !ok {
			label = models.UnknownLabel
		}
		views = append(views, models.CourseFileView{CourseFile: f, CourseLabel: label})
	}
	return views, nil
}

// Create validates the payload, decodes and size-checks the data-URL and
// verifies the course reference, all before any persistence call.
func (s *CourseFileService) Create(ctx context.Context, input CourseFileInput) (*models.CourseFile, error) {
	if errs := validation.Struct(input); !errs.Empty() {
		return nil, appErrors.WithFields(appErrors.ErrValidation, errs)
	}

	mimeType, size, err := decodeDataURL(input.Content)
	if err != nil {
		return nil, appErrors.WithField(appErrors.Clone(appErrors.ErrValidation, "invalid file content"), "content", err.Error())
	}
	if size > s.maxSize {
		msg := fmt.Sprintf("file is too large (max %d bytes)", s.maxSize)
		return nil, appErrors.WithField(appErrors.Clone(appErrors.ErrValidation, msg), "content", msg)
	}

	if err := s.ensureCourseExists(ctx, input.CourseID); err != nil {
		return nil, err
	}

	file := &models.CourseFile{
		CourseID:     input.CourseID,
		DisplayName:  strings.TrimSpace(input.DisplayName),
		OriginalName: strings.TrimSpace(input.OriginalName),
		MimeType:     mimeType,
		SizeBytes:    size,
		Content:      input.Content,
	}
	if err := s.files.Create(ctx, file); err != nil {
		return nil, persistenceError(err, "failed to save course file")
	}
	return file, nil
}

// Get returns a file by id, content included.
func (s *CourseFileService) Get(ctx context.Context, id string) (*models.CourseFile, error) {
	file, err := s.files.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course file not found")
		}
		return nil, persistenceError(err, "failed to load course file")
	}
	return file, nil
}

// Delete removes a file.
func (s *CourseFileService) Delete(ctx context.Context, id string) error {
	if err := s.files.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return appErrors.Clone(appErrors.ErrNotFound, "course file not found")
		}
		return persistenceError(err, "failed to delete course file")
	}
	return nil
}

func (s *CourseFileService) ensureCourseExists(ctx context.Context, courseID string) error {
	_, err := s.courses.FindByID(ctx, courseID)
	if err == nil {
		return nil
	}
	if errors.Is(err, store.ErrNotFound) {
		msg := fmt.Sprintf("course %s does not exist", courseID)
		return appErrors.WithField(appErrors.Clone(appErrors.ErrReferential, msg), "courseId", msg)
	}
	return persistenceError(err, "failed to check course reference")
}

// decodeDataURL parses a `data:<mime>;base64,<payload>` string and returns
// the declared MIME type and the decoded byte size.
func decodeDataURL(raw string) (string, int64, error) {
	rest, ok := strings.CutPrefix(raw, "data:")
	if !ok {
		return "", 0, errors.New("content must be a data URL")
	}
	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", 0, errors.New("content is missing its payload")
	}
	mimeType, found := strings.CutSuffix(header, ";base64")
	if !found {
		return "", 0, errors.New("content must be base64 encoded")
	}
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", 0, fmt.Errorf("content payload is not valid base64: %w", err)
	}
	return mimeType, int64(len(decoded)), nil
}
