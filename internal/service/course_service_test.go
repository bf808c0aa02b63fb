package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/orenbz/course-admin-api/internal/models"
	appErrors "github.com/orenbz/course-admin-api/pkg/errors"
)

func newCourseService(courses *mockCourseStore, teachers *mockTeacherStore) *CourseService {
	return NewCourseService(courses, teachers, nil, time.Minute, nil, zap.NewNop())
}

func TestCourseServiceCreate(t *testing.T) {
	courses := &mockCourseStore{}
	svc := newCourseService(courses, &mockTeacherStore{})

	course, err := svc.Create(context.Background(), CourseInput{Code: "cs101", Name: "Intro to CS", Credits: 5})
	require.NoError(t, err)
	assert.Equal(t, "CS101", course.Code, "code is stored uppercase")
	assert.NotEmpty(t, course.ID)
	assert.Len(t, courses.courses, 1)
}

func TestCourseServiceCreateValidation(t *testing.T) {
	courses := &mockCourseStore{}
	svc := newCourseService(courses, &mockTeacherStore{})

	_, err := svc.Create(context.Background(), CourseInput{Code: "1CS", Name: "", Credits: 31})
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Contains(t, appErr.Fields, "code")
	assert.Contains(t, appErr.Fields, "name")
	assert.Contains(t, appErr.Fields, "credits")
	assert.Zero(t, courses.writeCalls, "invalid input must not reach the store")
}

func TestCourseServiceCreateDuplicateCode(t *testing.T) {
	courses := &mockCourseStore{courses: []models.Course{{ID: "c1", Code: "CS101", Name: "Intro"}}}
	svc := newCourseService(courses, &mockTeacherStore{})

	_, err := svc.Create(context.Background(), CourseInput{Code: "cs101", Name: "Other", Credits: 3})
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrDuplicate.Code, appErr.Code)
	assert.Contains(t, appErr.Fields, "code")
	assert.Zero(t, courses.writeCalls, "duplicate code must not reach the store")
}

func TestCourseServiceUpdateKeepsOwnCode(t *testing.T) {
	courses := &mockCourseStore{courses: []models.Course{
		{ID: "c1", Code: "CS101", Name: "Intro", CreatedAt: time.Now().UTC()},
		{ID: "c2", Code: "MA201", Name: "Calculus"},
	}}
	svc := newCourseService(courses, &mockTeacherStore{})

	// Saving with an unchanged code must not trip the duplicate check.
	course, err := svc.Update(context.Background(), "c1", CourseInput{Code: "CS101", Name: "Intro v2", Credits: 4})
	require.NoError(t, err)
	assert.Equal(t, "Intro v2", course.Name)
	assert.Equal(t, "c1", course.ID)
}

func TestCourseServiceUpdateDuplicateOfOther(t *testing.T) {
	courses := &mockCourseStore{courses: []models.Course{
		{ID: "c1", Code: "CS101", Name: "Intro"},
		{ID: "c2", Code: "MA201", Name: "Calculus"},
	}}
	svc := newCourseService(courses, &mockTeacherStore{})

	_, err := svc.Update(context.Background(), "c1", CourseInput{Code: "ma201", Name: "Intro", Credits: 4})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrDuplicate.Code, appErrors.FromError(err).Code)
}

func TestCourseServiceUpdateNotFound(t *testing.T) {
	svc := newCourseService(&mockCourseStore{}, &mockTeacherStore{})

	_, err := svc.Update(context.Background(), "missing", CourseInput{Code: "CS101", Name: "Intro", Credits: 4})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestCourseServiceListResolvesTeacherNames(t *testing.T) {
	courses := &mockCourseStore{courses: []models.Course{
		{ID: "c1", Code: "CS101", Name: "Intro", TeacherIDs: []string{"t1", "gone"}},
	}}
	teachers := &mockTeacherStore{teachers: []models.Teacher{{ID: "t1", FullName: "Dana Levi"}}}
	svc := newCourseService(courses, teachers)

	views, err := svc.List(context.Background(), models.CourseFilter{})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, []string{"Dana Levi", models.UnknownLabel}, views[0].TeacherNames)
}

func TestCourseServiceDeleteLeavesReferencesDangling(t *testing.T) {
	courses := &mockCourseStore{courses: []models.Course{{ID: "c1", Code: "CS101", Name: "Intro"}}}
	teachers := &mockTeacherStore{teachers: []models.Teacher{{ID: "t1", FullName: "Dana Levi", CourseIDs: []string{"c1"}}}}
	svc := newCourseService(courses, teachers)

	require.NoError(t, svc.Delete(context.Background(), "c1"))
	assert.Empty(t, courses.courses)
	// The teacher keeps the id; it renders as Unknown from now on.
	assert.Equal(t, []string{"c1"}, []string(teachers.teachers[0].CourseIDs))
}

func TestCourseServiceLabelMap(t *testing.T) {
	courses := &mockCourseStore{courses: []models.Course{
		{ID: "c1", Code: "CS101", Name: "Intro"},
		{ID: "c2", Code: "MA201", Name: "Calculus"},
	}}
	svc := newCourseService(courses, &mockTeacherStore{})

	labels, err := svc.LabelMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"c1": "CS101 - Intro",
		"c2": "MA201 - Calculus",
	}, labels)
}
