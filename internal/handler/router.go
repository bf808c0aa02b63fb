package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/orenbz/course-admin-api/internal/middleware"
	"github.com/orenbz/course-admin-api/internal/service"
	"github.com/orenbz/course-admin-api/pkg/config"
	"github.com/orenbz/course-admin-api/pkg/logger"
	corsmiddleware "github.com/orenbz/course-admin-api/pkg/middleware/cors"
	reqidmiddleware "github.com/orenbz/course-admin-api/pkg/middleware/requestid"
)

// RouterDeps bundles everything the HTTP surface needs.
type RouterDeps struct {
	Config   *config.Config
	Logger   *zap.Logger
	Auth     *service.AuthService
	Courses  *service.CourseService
	Teachers *service.TeacherService
	Files    *service.CourseFileService
	Users    *service.UserService
	Exports  *service.ExportService
	Metrics  *service.MetricsService
}

// NewRouter builds the gin engine with all routes registered. Reads are
// open; every mutating route requires a session token.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(deps.Logger))
	r.Use(corsmiddleware.New(deps.Config.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(deps.Metrics))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	if deps.Config.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(deps.Config.APIPrefix)
	requireAuth := middleware.JWT(deps.Auth)

	authHandler := NewAuthHandler(deps.Auth)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/session", requireAuth, authHandler.Session)

	courseHandler := NewCourseHandler(deps.Courses)
	courses := api.Group("/courses")
	{
		courses.GET("", courseHandler.List)
		courses.GET("/:id", courseHandler.Get)
		courses.POST("", requireAuth, courseHandler.Create)
		courses.PUT("/:id", requireAuth, courseHandler.Update)
		courses.DELETE("/:id", requireAuth, courseHandler.Delete)
	}

	teacherHandler := NewTeacherHandler(deps.Teachers)
	teachers := api.Group("/teachers")
	{
		teachers.GET("", teacherHandler.List)
		teachers.GET("/:id", teacherHandler.Get)
		teachers.POST("", requireAuth, teacherHandler.Create)
		teachers.PUT("/:id", requireAuth, teacherHandler.Update)
		teachers.DELETE("/:id", requireAuth, teacherHandler.Delete)
	}

	fileHandler := NewCourseFileHandler(deps.Files)
	files := api.Group("/files")
	{
		files.GET("", fileHandler.List)
		files.GET("/:id", fileHandler.Get)
		files.POST("", requireAuth, fileHandler.Create)
		files.DELETE("/:id", requireAuth, fileHandler.Delete)
	}

	userHandler := NewUserHandler(deps.Users)
	users := api.Group("/users")
	{
		users.GET("", requireAuth, userHandler.List)
		users.GET("/:id", requireAuth, userHandler.Get)
		users.POST("", userHandler.Create)
		users.DELETE("/:id", requireAuth, userHandler.Delete)
	}

	exportHandler := NewExportHandler(deps.Exports)
	api.GET("/export/courses", requireAuth, exportHandler.Courses)
	api.GET("/export/teachers", requireAuth, exportHandler.Teachers)

	return r
}
