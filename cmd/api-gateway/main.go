package main

import (
	"fmt"
	"log"

	"go.uber.org/zap"

	_ "github.com/orenbz/course-admin-api/api/swagger"
	"github.com/orenbz/course-admin-api/internal/handler"
	"github.com/orenbz/course-admin-api/internal/service"
	"github.com/orenbz/course-admin-api/internal/store"
	labelcache "github.com/orenbz/course-admin-api/internal/store/cache"
	"github.com/orenbz/course-admin-api/internal/store/local"
	"github.com/orenbz/course-admin-api/internal/store/postgres"
	rediscache "github.com/orenbz/course-admin-api/pkg/cache"
	"github.com/orenbz/course-admin-api/pkg/config"
	"github.com/orenbz/course-admin-api/pkg/database"
	"github.com/orenbz/course-admin-api/pkg/logger"
)

// @title Course Admin API
// @version 1.0.0
// @description Backend for the course management admin console
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	stores, err := openStores(cfg, logr)
	if err != nil {
		logr.Sugar().Fatalw("failed to open storage backend", "backend", cfg.Storage.Backend, "error", err)
	}

	var labels *labelcache.Store
	if cfg.Labels.Enabled {
		redisClient, err := rediscache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, label cache disabled", zap.Error(err))
		} else {
			labels = labelcache.New(redisClient, logr)
		}
	}

	metricsSvc := service.NewMetricsService()
	courseSvc := service.NewCourseService(stores.Courses, stores.Teachers, labels, cfg.Labels.TTL, metricsSvc, logr)
	teacherSvc := service.NewTeacherService(stores.Teachers, stores.Courses, courseSvc, logr)
	fileSvc := service.NewCourseFileService(stores.CourseFiles, stores.Courses, courseSvc, cfg.Files.MaxSizeBytes, logr)
	authSvc := service.NewAuthService(stores.AuthAccounts, cfg.JWT.Secret, cfg.JWT.Expiration, logr)
	userSvc := service.NewUserService(stores.Users, authSvc, logr)
	exportSvc := service.NewExportService(courseSvc, teacherSvc, nil, nil, logr)

	r := handler.NewRouter(handler.RouterDeps{
		Config:   cfg,
		Logger:   logr,
		Auth:     authSvc,
		Courses:  courseSvc,
		Teachers: teacherSvc,
		Files:    fileSvc,
		Users:    userSvc,
		Exports:  exportSvc,
		Metrics:  metricsSvc,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "backend", cfg.Storage.Backend)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

func openStores(cfg *config.Config, logr *zap.Logger) (store.Stores, error) {
	switch cfg.Storage.Backend {
	case config.BackendLocal:
		db, err := local.Open(cfg.Storage.LocalDir)
		if err != nil {
			return store.Stores{}, err
		}
		logr.Info("using local file storage", zap.String("dir", cfg.Storage.LocalDir))
		return local.NewStores(db), nil
	default:
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			return store.Stores{}, err
		}
		return postgres.NewStores(db), nil
	}
}
