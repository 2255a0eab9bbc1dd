package bootstrap

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/courseplan/internal/app/controllers"
	appRoutes "github.com/yigit/courseplan/internal/app/routes"
	appServices "github.com/yigit/courseplan/internal/app/services"
	"github.com/yigit/courseplan/internal/client"
	"github.com/yigit/courseplan/internal/config"
	appMiddleware "github.com/yigit/courseplan/internal/middleware"
	"github.com/yigit/courseplan/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	PrereqEvaluator appServices.PrereqEvaluator // Interface type
	PlannerService  appServices.PlannerService  // Interface type
	CourseClient    *client.CourseClient
	PlanController  *appControllers.PlanController
	Logger          zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	logger.Debug().Str("configPath", configPath).Msg("Loading configuration")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies initializes the application services, client, and controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.PrereqEvaluator = appServices.NewPrereqEvaluator()
	deps.PlannerService = appServices.NewPlannerService(deps.PrereqEvaluator, lgr)
	deps.CourseClient = client.NewCourseClient(cfg, lgr)
	deps.PlanController = appControllers.NewPlanController(deps.PlannerService)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router, deps.PlanController)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
