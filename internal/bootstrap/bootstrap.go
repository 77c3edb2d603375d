package bootstrap

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/learnsetu/lms-backend/internal/app/controllers"
	appMigrations "github.com/learnsetu/lms-backend/internal/app/migrations"
	appRepos "github.com/learnsetu/lms-backend/internal/app/repositories"
	appRoutes "github.com/learnsetu/lms-backend/internal/app/routes"
	appServices "github.com/learnsetu/lms-backend/internal/app/services"
	"github.com/learnsetu/lms-backend/internal/config"
	"github.com/learnsetu/lms-backend/internal/db"
	appMiddleware "github.com/learnsetu/lms-backend/internal/middleware"
	pkgAuth "github.com/learnsetu/lms-backend/internal/pkg/auth"
	"github.com/learnsetu/lms-backend/internal/pkg/catalog"
	"github.com/learnsetu/lms-backend/internal/pkg/filestorage"
	"github.com/learnsetu/lms-backend/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            appServices.AuthService
	UserService            appServices.UserService
	CatalogService         appServices.CatalogService
	CustomCourseService    appServices.CustomCourseService
	ExamService            appServices.ExamService
	AuthController         *appControllers.AuthController
	UserController         *appControllers.UserController
	CourseController       *appControllers.CourseController
	CustomCourseController *appControllers.CustomCourseController
	ExamController         *appControllers.ExamController
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	CatalogFetcher         catalog.Fetcher
	FileStorage            *filestorage.LocalStorage
	Logger                 zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
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

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	// The base URL must match the static file serving path
	baseURL := "http://localhost:" + cfg.Server.Port
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL+"/uploads")
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	tokenExp, err := time.ParseDuration(cfg.JWT.TokenExpiration)
	if err != nil {
		tokenExp = 24 * time.Hour
	}
	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    tokenExp,
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.CatalogFetcher = catalog.NewClient(cfg.ExternalCatalog.URL)
	normalizer := catalog.NewNormalizer(cfg.ExternalCatalog.IDConvention, cfg.ExternalCatalog.IDPrefix)

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.FileStorage,
		deps.JWTService,
		lgr,
	)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository)
	deps.CatalogService = appServices.NewCatalogService(deps.Repos.CatalogRepository)
	deps.CustomCourseService = appServices.NewCustomCourseService(
		deps.Repos.CustomCourseRepository,
		deps.CatalogFetcher,
		normalizer,
	)
	deps.ExamService = appServices.NewExamService(deps.Repos.ExamRepository)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.UserController = appControllers.NewUserController(deps.UserService, lgr)
	deps.CourseController = appControllers.NewCourseController(deps.CatalogService, lgr)
	deps.CustomCourseController = appControllers.NewCustomCourseController(deps.CustomCourseService, lgr)
	deps.ExamController = appControllers.NewExamController(deps.ExamService, lgr)

	return deps, nil
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

	router := gin.Default()
	router.Use(appMiddleware.CORS())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.CourseController,
		deps.CustomCourseController,
		deps.ExamController,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
