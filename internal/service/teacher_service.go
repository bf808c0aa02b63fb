package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/orenbz/course-admin-api/internal/models"
	"github.com/orenbz/course-admin-api/internal/store"
	"github.com/orenbz/course-admin-api/internal/validation"
	appErrors "github.com/orenbz/course-admin-api/pkg/errors"
)

// labelResolver supplies the course id to display label map for listings.
type labelResolver interface {
	LabelMap(ctx context.Context) (map[string]string, error)
}

// TeacherInput is the payload shared by the add and edit teacher forms.
// At least one course assignment is required.
type TeacherInput struct {
	FullName  string   `json:"fullName" validate:"required,min=2,max=50"`
	Email     string   `json:"email" validate:"required,email"`
	Phone     string   `json:"phone" validate:"required,phone_digits"`
	Expertise string   `json:"expertise" validate:"required,max=40"`
	CourseIDs []string `json:"courseIds" validate:"required,min=1"`
}

// TeacherService enforces validation and course referential integrity for
// teachers.
type TeacherService struct {
	teachers store.TeacherStore
	courses  store.CourseStore
	labels   labelResolver
	logger   *zap.Logger
}

// NewTeacherService constructs a TeacherService.
func NewTeacherService(teachers store.TeacherStore, courses store.CourseStore, labels labelResolver, logger *zap.Logger) *TeacherService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeacherService{teachers: teachers, courses: courses, labels: labels, logger: logger}
}

// List returns teachers newest first with course references resolved to
// display labels; dangling references render the Unknown sentinel.
func (s *TeacherService) List(ctx context.Context) ([]models.TeacherView, error) {
	teachers, err := s.teachers.List(ctx)
	if err != nil {
		return nil, persistenceError(err, "failed to list teachers")
	}

	labels, err := s.labels.LabelMap(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]models.TeacherView, 0, len(teachers))
	for _, t := range teachers {
		view := models.TeacherView{Teacher: t, CourseLabels: make([]string, 0, len(t.CourseIDs))}
		for _, cid := range t.CourseIDs {
			label, ok := labels[cid]
			if !ok {
				label = models.UnknownLabel
			}
			view.CourseLabels = append(view.CourseLabels, label)
		}
		views = append(views, view)
	}
	return views, nil
}

// Get returns a teacher by id.
func (s *TeacherService) Get(ctx context.Context, id string) (*models.Teacher, error) {
	teacher, err := s.teachers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
		}
		return nil, persistenceError(err, "failed to load teacher")
	}
	return teacher, nil
}

// Create validates the input, verifies every referenced course exists and
// persists the teacher. The referential check runs before any write.
func (s *TeacherService) Create(ctx context.Context, input TeacherInput) (*models.Teacher, error) {
	if errs := validation.Struct(input); !errs.Empty() {
		return nil, appErrors.WithFields(appErrors.ErrValidation, errs)
	}
	if err := s.ensureCoursesExist(ctx, input.CourseIDs); err != nil {
		return nil, err
	}

	teacher := &models.Teacher{
		FullName:  strings.TrimSpace(input.FullName),
		Email:     strings.TrimSpace(input.Email),
		Phone:     strings.TrimSpace(input.Phone),
		Expertise: strings.TrimSpace(input.Expertise),
		CourseIDs: input.CourseIDs,
	}
	if err := s.teachers.Create(ctx, teacher); err != nil {
		return nil, persistenceError(err, "failed to create teacher")
	}
	return teacher, nil
}

// Update runs the same validation and referential checks as Create.
func (s *TeacherService) Update(ctx context.Context, id string, input TeacherInput) (*models.Teacher, error) {
	if errs := validation.Struct(input); !errs.Empty() {
		return nil, appErrors.WithFields(appErrors.ErrValidation, errs)
	}

	teacher, err := s.teachers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
		}
		return nil, persistenceError(err, "failed to load teacher")
	}

	if err := s.ensureCoursesExist(ctx, input.CourseIDs); err != nil {
		return nil, err
	}

	teacher.FullName = strings.TrimSpace(input.FullName)
	teacher.Email = strings.TrimSpace(input.Email)
	teacher.Phone = strings.TrimSpace(input.Phone)
	teacher.Expertise = strings.TrimSpace(input.Expertise)
	teacher.CourseIDs = input.CourseIDs

	if err := s.teachers.Update(ctx, teacher); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
		}
		return nil, persistenceError(err, "failed to update teacher")
	}
	return teacher, nil
}

// Delete removes a teacher.
func (s *TeacherService) Delete(ctx context.Context, id string) error {
	if err := s.teachers.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
		}
		return persistenceError(err, "failed to delete teacher")
	}
	return nil
}

// ensureCoursesExist verifies every id against a fresh course listing, not
// a cached one.
func (s *TeacherService) ensureCoursesExist(ctx context.Context, courseIDs []string) error {
	courses, err := s.courses.List(ctx, models.CourseFilter{})
	if err != nil {
		return persistenceError(err, "failed to check course references")
	}
	existing := make(map[string]struct{}, len(courses))
	for _, c := range courses {
		existing[c.ID] = struct{}{}
	}
	for _, cid := range courseIDs {
		if _, ok := existing[cid]; !ok {
			msg := fmt.Sprintf("course %s does not exist", cid)
			return appErrors.WithField(appErrors.Clone(appErrors.ErrReferential, msg), "courseIds", msg)
		}
	}
	return nil
}
