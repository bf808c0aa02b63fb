package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/orenbz/course-admin-api/internal/models"
	appErrors "github.com/orenbz/course-admin-api/pkg/errors"
)

func validTeacherInput() TeacherInput {
	return TeacherInput{
		FullName:  "Dana Levi",
		Email:     "dana@example.com",
		Phone:     "054123456",
		Expertise: "Algorithms",
		CourseIDs: []string{"c1"},
	}
}

func TestTeacherServiceCreate(t *testing.T) {
	teachers := &mockTeacherStore{}
	courses := &mockCourseStore{courses: []models.Course{{ID: "c1", Code: "CS101", Name: "Intro"}}}
	svc := NewTeacherService(teachers, courses, staticLabels{}, zap.NewNop())

	teacher, err := svc.Create(context.Background(), validTeacherInput())
	require.NoError(t, err)
	assert.NotEmpty(t, teacher.ID)
	assert.Len(t, teachers.teachers, 1)
}

func TestTeacherServiceCreateUnknownCourse(t *testing.T) {
	teachers := &mockTeacherStore{}
	courses := &mockCourseStore{courses: []models.Course{{ID: "c1", Code: "CS101", Name: "Intro"}}}
	svc := NewTeacherService(teachers, courses, staticLabels{}, zap.NewNop())

	input := validTeacherInput()
	input.CourseIDs = []string{"c1", "ghost"}

	_, err := svc.Create(context.Background(), input)
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrReferential.Code, appErr.Code)
	assert.Contains(t, appErr.Fields, "courseIds")
	assert.Zero(t, teachers.writeCalls, "referential failure must precede any write")
}

func TestTeacherServiceCreateValidation(t *testing.T) {
	teachers := &mockTeacherStore{}
	svc := NewTeacherService(teachers, &mockCourseStore{}, staticLabels{}, zap.NewNop())

	input := TeacherInput{FullName: "D", Email: "not-an-email", Phone: "12", Expertise: "", CourseIDs: nil}
	_, err := svc.Create(context.Background(), input)
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Contains(t, appErr.Fields, "fullName")
	assert.Contains(t, appErr.Fields, "email")
	assert.Contains(t, appErr.Fields, "phone")
	assert.Contains(t, appErr.Fields, "expertise")
	assert.Contains(t, appErr.Fields, "courseIds")
	assert.Zero(t, teachers.writeCalls)
}

func TestTeacherServiceUpdateChecksFreshCourses(t *testing.T) {
	teachers := &mockTeacherStore{teachers: []models.Teacher{{ID: "t1", FullName: "Dana Levi", CourseIDs: []string{"c1"}}}}
	// The course was deleted after the teacher was created; re-saving with
	// the stale reference must now fail.
	courses := &mockCourseStore{}
	svc := NewTeacherService(teachers, courses, staticLabels{}, zap.NewNop())

	_, err := svc.Update(context.Background(), "t1", validTeacherInput())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrReferential.Code, appErrors.FromError(err).Code)
}

func TestTeacherServiceListResolvesLabels(t *testing.T) {
	teachers := &mockTeacherStore{teachers: []models.Teacher{
		{ID: "t1", FullName: "Dana Levi", CourseIDs: []string{"c1", "gone"}},
	}}
	svc := NewTeacherService(teachers, &mockCourseStore{}, staticLabels{"c1": "CS101 - Intro"}, zap.NewNop())

	views, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, []string{"CS101 - Intro", models.UnknownLabel}, views[0].CourseLabels)
}

func TestTeacherServiceDeleteNotFound(t *testing.T) {
	svc := NewTeacherService(&mockTeacherStore{}, &mockCourseStore{}, staticLabels{}, zap.NewNop())

	err := svc.Delete(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
