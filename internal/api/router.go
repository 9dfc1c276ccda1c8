package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/devport/portfolio-api/internal/api/handler"
	"github.com/devport/portfolio-api/internal/api/middleware"
	"github.com/devport/portfolio-api/internal/core/domain"
	"github.com/devport/portfolio-api/internal/core/service"
	"github.com/devport/portfolio-api/internal/infrastructure/config"
	mongodb "github.com/devport/portfolio-api/internal/infrastructure/db/mongo"
	"github.com/devport/portfolio-api/internal/infrastructure/imghost"
	"github.com/devport/portfolio-api/internal/infrastructure/upload"
	"github.com/devport/portfolio-api/internal/realtime"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, hub *realtime.Hub, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{cfg.CORSOrigin},
	}))
	e.Use(echoprometheus.NewMiddleware("portfolio"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	skillRepo := mongodb.NewSkillRepository(db)
	experienceRepo := mongodb.NewExperienceRepository(db)

	stager, err := upload.NewStager(cfg.UploadDir, log)
	if err != nil {
		return nil, err
	}
	images := imghost.NewClient(cfg.ImgBB.APIKey, log)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	projectService := service.NewProjectService(projectRepo, images, log)
	skillService := service.NewSkillService(skillRepo, log)
	experienceService := service.NewExperienceService(experienceRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService, stager)
	skillHandler := handler.NewSkillHandler(skillService)
	experienceHandler := handler.NewExperienceHandler(experienceService)
	wsHandler := handler.NewWSHandler(hub, log)

	authMW := middleware.Auth(cfg.JWTSecret)
	// Content mutations are open to collaborators and the owner; the
	// administrative user update is owner-only.
	editors := middleware.RequireRole(userRepo, domain.RoleOwner, domain.RoleCollaborator)
	ownerOnly := middleware.RequireRole(userRepo, domain.RoleOwner)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/createuser", authHandler.CreateUser)
	auth.POST("/login", authHandler.Login)
	auth.GET("/getuser", authHandler.GetUser, authMW)
	auth.GET("/getAllUsers", authHandler.GetAllUsers)
	auth.PUT("/updateuser/:id", authHandler.UpdateUser, authMW, ownerOnly)

	// --- Project routes ---
	projects := e.Group("/api/projects")
	projects.GET("", projectHandler.List)
	projects.GET("/:projectId", projectHandler.Get)
	projects.POST("/add", projectHandler.Create, authMW, editors)
	projects.PUT("/update/:id", projectHandler.Update, authMW, editors)
	projects.DELETE("/delete/:id", projectHandler.Delete, authMW, editors)

	// --- Skill routes ---
	skills := e.Group("/api/skills")
	skills.GET("", skillHandler.List)
	skills.POST("/add", skillHandler.Create, authMW, editors)
	skills.PUT("/update/:id", skillHandler.Update, authMW, editors)
	skills.DELETE("/delete/:id", skillHandler.Delete, authMW, editors)

	// --- Experience routes ---
	experiences := e.Group("/api/experiences")
	experiences.GET("", experienceHandler.List)
	experiences.POST("/add", experienceHandler.Create, authMW, editors)
	experiences.PUT("/update/:id", experienceHandler.Update, authMW, editors)
	experiences.DELETE("/delete/:id", experienceHandler.Delete, authMW, editors)

	// --- Realtime fan-out ---
	e.GET("/ws", wsHandler.Serve)

	// --- Health probes and operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, nil
}
