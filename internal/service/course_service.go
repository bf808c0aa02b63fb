package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/orenbz/course-admin-api/internal/models"
	"github.com/orenbz/course-admin-api/internal/store"
	"github.com/orenbz/course-admin-api/internal/store/cache"
	"github.com/orenbz/course-admin-api/internal/validation"
	appErrors "github.com/orenbz/course-admin-api/pkg/errors"
)

const labelCacheKey = "courses:labels"

// CourseInput is the payload shared by the add and edit course forms.
type CourseInput struct {
	Code       string   `json:"code" validate:"required,course_code"`
	Name       string   `json:"name" validate:"required"`
	Credits    int      `json:"credits" validate:"gte=0,lte=30"`
	TeacherIDs []string `json:"teacherIds"`
}

// CourseService enforces validation and code uniqueness for courses and
// owns the id-to-label map consumed by the other listing views.
type CourseService struct {
	courses  store.CourseStore
	teachers store.TeacherStore
	cache    *cache.Store
	cacheTTL time.Duration
	metrics  *MetricsService
	logger   *zap.Logger
}

// NewCourseService constructs a CourseService. cacheStore may be nil, in
// which case the label map is rebuilt on every call.
func NewCourseService(courses store.CourseStore, teachers store.TeacherStore, cacheStore *cache.Store, cacheTTL time.Duration, metrics *MetricsService, logger *zap.Logger) *CourseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{courses: courses, teachers: teachers, cache: cacheStore, cacheTTL: cacheTTL, metrics: metrics, logger: logger}
}

// List returns courses newest first with teacher references resolved to
// full names; a dangling reference renders the Unknown sentinel.
func (s *CourseService) List(ctx context.Context, filter models.CourseFilter) ([]models.CourseView, error) {
	courses, err := s.courses.List(ctx, filter)
	if err != nil {
		return nil, persistenceError(err, "failed to list courses")
	}

	teachers, err := s.teachers.List(ctx)
	if err != nil {
		return nil, persistenceError(err, "failed to list teachers")
	}
	nameByID := make(map[string]string, len(teachers))
	for _, t := range teachers {
		nameByID[t.ID] = t.FullName
	}

	views := make([]models.CourseView, 0, len(courses))
	for _, c := range courses {
		view := models.CourseView{Course: c, TeacherNames: make([]string, 0, len(c.TeacherIDs))}
		for _, tid := range c.TeacherIDs {
			name, ok := nameByID[tid]
			if !ok {
				name = models.UnknownLabel
			}
			view.TeacherNames = append(view.TeacherNames, name)
		}
		views = append(views, view)
	}
	return views, nil
}

// Get returns a course by id.
func (s *CourseService) Get(ctx context.Context, id string) (*models.Course, error) {
	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return nil, persistenceError(err, "failed to load course")
	}
	return course, nil
}

// Create validates the input, checks code uniqueness against a fresh
// listing and persists the course. The code is stored uppercase.
func (s *CourseService) Create(ctx context.Context, input CourseInput) (*models.Course, error) {
	if errs := validation.Struct(input); !errs.Empty() {
		return nil, appErrors.WithFields(appErrors.ErrValidation, errs)
	}

	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if err := s.ensureUniqueCode(ctx, code, ""); err != nil {
		return nil, err
	}

	course := &models.Course{
		Code:       code,
		Name:       strings.TrimSpace(input.Name),
		Credits:    input.Credits,
		TeacherIDs: input.TeacherIDs,
	}
	if err := s.courses.Create(ctx, course); err != nil {
		return nil, persistenceError(err, "failed to create course")
	}
	s.invalidateLabels(ctx)
	return course, nil
}

// Update runs the same checks as Create, excluding the edited record from
// the uniqueness scan. Id and createdAt are preserved.
func (s *CourseService) Update(ctx context.Context, id string, input CourseInput) (*models.Course, error) {
	if errs := validation.Struct(input); !errs.Empty() {
		return nil, appErrors.WithFields(appErrors.ErrValidation, errs)
	}

	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return nil, persistenceError(err, "failed to load course")
	}

	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if err := s.ensureUniqueCode(ctx, code, id); err != nil {
		return nil, err
	}

	course.Code = code
	course.Name = strings.TrimSpace(input.Name)
	course.Credits = input.Credits
	course.TeacherIDs = input.TeacherIDs

	if err := s.courses.Update(ctx, course); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return nil, persistenceError(err, "failed to update course")
	}
	s.invalidateLabels(ctx)
	return course, nil
}

// Delete removes a course unconditionally. Teachers and files referencing
// it keep their ids and resolve to the Unknown sentinel from then on.
func (s *CourseService) Delete(ctx context.Context, id string) error {
	if err := s.courses.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return persistenceError(err, "failed to delete course")
	}
	s.invalidateLabels(ctx)
	return nil
}

// LabelMap returns the course id to "CODE - Name" display label mapping,
// served from cache when available.
func (s *CourseService) LabelMap(ctx context.Context) (map[string]string, error) {
	if s.cache != nil {
		labels := map[string]string{}
		if err := s.cache.Get(ctx, labelCacheKey, &labels); err == nil {
			s.metrics.RecordCacheLookup(true)
			return labels, nil
		}
		s.metrics.RecordCacheLookup(false)
	}

	courses, err := s.courses.List(ctx, models.CourseFilter{})
	if err != nil {
		return nil, persistenceError(err, "failed to list courses")
	}
	labels := make(map[string]string, len(courses))
	for _, c := range courses {
		labels[c.ID] = c.Label()
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, labelCacheKey, labels, s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache course labels", zap.Error(err))
		}
	}
	return labels, nil
}

// ensureUniqueCode fails with a duplicate error when another live course
// carries the same uppercase-normalized code. The listing is fetched fresh
// on every check.
func (s *CourseService) ensureUniqueCode(ctx context.Context, code, excludeID string) error {
	courses, err := s.courses.List(ctx, models.CourseFilter{})
	if err != nil {
		return persistenceError(err, "failed to check code uniqueness")
	}
	for _, c := range courses {
		if c.ID == excludeID {
			continue
		}
		if strings.EqualFold(c.Code, code) {
			return appErrors.WithField(appErrors.Clone(appErrors.ErrDuplicate, "course code already exists"), "code", "course code already exists")
		}
	}
	return nil
}

func (s *CourseService) invalidateLabels(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, labelCacheKey); err != nil {
		s.logger.Warn("failed to invalidate course label cache", zap.Error(err))
	}
}

func persistenceError(err error, msg string) error {
	return appErrors.Wrap(err, appErrors.ErrPersistence.Code, appErrors.ErrPersistence.Status, msg)
}
