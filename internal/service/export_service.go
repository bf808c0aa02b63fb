package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/orenbz/course-admin-api/internal/models"
	appErrors "github.com/orenbz/course-admin-api/pkg/errors"
	"github.com/orenbz/course-admin-api/pkg/export"
)

// ExportFormat selects the rendered output encoding.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

// ExportResult carries a rendered document and the metadata needed to
// serve it as a download.
type ExportResult struct {
	Payload     []byte
	ContentType string
	Filename    string
}

type courseViewLister interface {
	List(ctx context.Context, filter models.CourseFilter) ([]models.CourseView, error)
}

type teacherViewLister interface {
	List(ctx context.Context) ([]models.TeacherView, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportService renders course and teacher listings into downloadable
// documents. Exports are generated synchronously and returned inline.
type ExportService struct {
	courses  courseViewLister
	teachers teacherViewLister
	csv      csvRenderer
	pdf      pdfRenderer
	logger   *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(courses courseViewLister, teachers teacherViewLister, csv csvRenderer, pdf pdfRenderer, logger *zap.Logger) *ExportService {
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{courses: courses, teachers: teachers, csv: csv, pdf: pdf, logger: logger}
}

// Courses renders the course catalogue with resolved teacher names.
func (s *ExportService) Courses(ctx context.Context, format ExportFormat) (*ExportResult, error) {
	views, err := s.courses.List(ctx, models.CourseFilter{})
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{
		Headers: []string{"Code", "Name", "Credits", "Teachers"},
		Rows:    make([]map[string]string, 0, len(views)),
	}
	for _, v := range views {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Code":     v.Code,
			"Name":     v.Name,
			"Credits":  strconv.Itoa(v.Credits),
			"Teachers": strings.Join(v.TeacherNames, ", "),
		})
	}
	return s.render(dataset, "Courses", "courses", format)
}

// Teachers renders the teacher roster with resolved course labels.
func (s *ExportService) Teachers(ctx context.Context, format ExportFormat) (*ExportResult, error) {
	views, err := s.teachers.List(ctx)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{
		Headers: []string{"Full Name", "Email", "Phone", "Expertise", "Courses"},
		Rows:    make([]map[string]string, 0, len(views)),
	}
	for _, v := range views {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Full Name": v.FullName,
			"Email":     v.Email,
			"Phone":     v.Phone,
			"Expertise": v.Expertise,
			"Courses":   strings.Join(v.CourseLabels, ", "),
		})
	}
	return s.render(dataset, "Teachers", "teachers", format)
}

func (s *ExportService) render(dataset export.Dataset, title, basename string, format ExportFormat) (*ExportResult, error) {
	switch format {
	case ExportFormatCSV:
		payload, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv export")
		}
		return &ExportResult{
			Payload:     payload,
			ContentType: "text/csv",
			Filename:    basename + ".csv",
		}, nil
	case ExportFormatPDF:
		payload, err := s.pdf.Render(dataset, title)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf export")
		}
		return &ExportResult{
			Payload:     payload,
			ContentType: "application/pdf",
			Filename:    basename + ".pdf",
		}, nil
	default:
		msg := fmt.Sprintf("unsupported export format %q", format)
		return nil, appErrors.WithField(appErrors.Clone(appErrors.ErrValidation, msg), "format", msg)
	}
}
