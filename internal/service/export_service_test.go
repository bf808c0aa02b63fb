package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/orenbz/course-admin-api/internal/models"
	appErrors "github.com/orenbz/course-admin-api/pkg/errors"
)

type staticCourseViews []models.CourseView

func (s staticCourseViews) List(ctx context.Context, filter models.CourseFilter) ([]models.CourseView, error) {
	return s, nil
}

type staticTeacherViews []models.TeacherView

func (s staticTeacherViews) List(ctx context.Context) ([]models.TeacherView, error) {
	return s, nil
}

func TestExportServiceCoursesCSV(t *testing.T) {
	courses := staticCourseViews{
		{
			Course:       models.Course{Code: "CS101", Name: "Intro", Credits: 5},
			TeacherNames: []string{"Dana Levi", models.UnknownLabel},
		},
	}
	svc := NewExportService(courses, staticTeacherViews{}, nil, nil, zap.NewNop())

	result, err := svc.Courses(context.Background(), ExportFormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.Equal(t, "courses.csv", result.Filename)

	body := string(result.Payload)
	assert.True(t, strings.HasPrefix(body, "Code,Name,Credits,Teachers\n"))
	assert.Contains(t, body, "CS101,Intro,5,")
	assert.Contains(t, body, "Dana Levi, Unknown")
}

func TestExportServiceTeachersPDF(t *testing.T) {
	teachers := staticTeacherViews{
		{
			Teacher:      models.Teacher{FullName: "Dana Levi", Email: "dana@example.com", Phone: "054123456", Expertise: "Algorithms"},
			CourseLabels: []string{"CS101 - Intro"},
		},
	}
	svc := NewExportService(staticCourseViews{}, teachers, nil, nil, zap.NewNop())

	result, err := svc.Teachers(context.Background(), ExportFormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.Equal(t, "teachers.pdf", result.Filename)
	assert.True(t, strings.HasPrefix(string(result.Payload), "%PDF"))
}

func TestExportServiceUnsupportedFormat(t *testing.T) {
	svc := NewExportService(staticCourseViews{}, staticTeacherViews{}, nil, nil, zap.NewNop())

	_, err := svc.Courses(context.Background(), ExportFormat("xlsx"))
	require.Error(t, err)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Contains(t, appErr.Fields, "format")
}
