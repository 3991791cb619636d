package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/khushijha-kj/signvibe-api/api/swagger"
	"github.com/khushijha-kj/signvibe-api/internal/handler"
	"github.com/khushijha-kj/signvibe-api/internal/middleware"
	"github.com/khushijha-kj/signvibe-api/internal/repository"
	"github.com/khushijha-kj/signvibe-api/internal/service"
	"github.com/khushijha-kj/signvibe-api/pkg/cache"
	"github.com/khushijha-kj/signvibe-api/pkg/config"
	"github.com/khushijha-kj/signvibe-api/pkg/database"
	appErrors "github.com/khushijha-kj/signvibe-api/pkg/errors"
	"github.com/khushijha-kj/signvibe-api/pkg/export"
	"github.com/khushijha-kj/signvibe-api/pkg/genai"
	"github.com/khushijha-kj/signvibe-api/pkg/logger"
	corsmiddleware "github.com/khushijha-kj/signvibe-api/pkg/middleware/cors"
	reqidmiddleware "github.com/khushijha-kj/signvibe-api/pkg/middleware/requestid"
)

// @title SignVibe API
// @version 1.0.0
// @description Role-based school management backend with accessible STEM help
// @BasePath /api/v1
// @schemes http

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

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close() //nolint:errcheck

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, help responses will not be cached", "error", err)
		redisClient = nil
	}

	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	userRepo := repository.NewUserRepository(db)
	academicRepo := repository.NewAcademicRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	academicSvc := service.NewAcademicService(userRepo, academicRepo, export.NewPDFExporter(), logr)
	helpSvc := service.NewHelpService(genai.NewClient(cfg.Help), cacheRepo, metricsSvc, cfg.Help.CacheTTL, logr)

	authHandler := handler.NewAuthHandler(authSvc, cfg.Cookie)
	academicHandler := handler.NewAcademicHandler(academicSvc)
	helpHandler := handler.NewHelpHandler(helpSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logr.Error("panic recovered", zap.Any("panic", recovered))
		c.AbortWithStatusJSON(appErrors.ErrInternal.Status, gin.H{"error": appErrors.ErrInternal.Message})
	}))
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := middleware.Auth(authSvc, cfg.Cookie.Name)

	api := r.Group(cfg.APIPrefix)

	auth := api.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", requireAuth, authHandler.Me)

	acad := api.Group("/acad", requireAuth)
	acad.GET("/student", academicHandler.ListRecords)
	acad.GET("/student/:id", academicHandler.GetByStudent)
	acad.POST("/teacher", academicHandler.Upsert)
	acad.GET("/teacher/students", academicHandler.ListStudents)
	acad.GET("/teacher/student/:id", academicHandler.StudentDetail)
	acad.GET("/teacher/student/:id/report", academicHandler.ExportReport)

	api.POST("/help", requireAuth, helpHandler.Ask)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
