package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/orenbz/course-admin-api/internal/models"
	"github.com/orenbz/course-admin-api/internal/service"
	appErrors "github.com/orenbz/course-admin-api/pkg/errors"
	"github.com/orenbz/course-admin-api/pkg/response"
)

// CourseFileHandler exposes course file endpoints.
type CourseFileHandler struct {
	files *service.CourseFileService
}

// NewCourseFileHandler constructs CourseFileHandler.
func NewCourseFileHandler(files *service.CourseFileService) *CourseFileHandler {
	return &CourseFileHandler{files: files}
}

// List godoc
// @Summary List course files
// @Tags Files
// @Produce json
// @Param courseId query string false "Filter by course"
// @Success 200 {object} response.Envelope
// @Router /files [get]
func (h *CourseFileHandler) List(c *gin.Context) {
	filter := models.CourseFileFilter{CourseID: strings.TrimSpace(c.Query("courseId"))}

	files, err := h.files.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, files, nil)
}

// Get godoc
// @Summary Get course file detail
// @Tags Files
// @Produce json
// @Param id path string true "File ID"
// @Success 200 {object} response.Envelope
// @Router /files/{id} [get]
func (h *CourseFileHandler) Get(c *gin.Context) {
	file, err := h.files.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, file, nil)
}

// Create godoc
// @Summary Upload course file
// @Tags Files
// @Accept json
// @Produce json
// @Param payload body service.CourseFileInput true "File payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /files [post]
func (h *CourseFileHandler) Create(c *gin.Context) {
	var input service.CourseFileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	file, err := h.files.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, file)
}

// Delete godoc
// @Summary Delete course file
// @Tags Files
// @Produce json
// @Param id path string true "File ID"
// @Success 204
// @Router /files/{id} [delete]
func (h *CourseFileHandler) Delete(c *gin.Context) {
	if err := h.files.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
