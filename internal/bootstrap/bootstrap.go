package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appAuth "github.com/yigit/practicum/internal/app/auth"
	appControllers "github.com/yigit/practicum/internal/app/controllers"
	appMigrations "github.com/yigit/practicum/internal/app/migrations"
	appRepos "github.com/yigit/practicum/internal/app/repositories"
	appRoutes "github.com/yigit/practicum/internal/app/routes"
	appServices "github.com/yigit/practicum/internal/app/services"
	"github.com/yigit/practicum/internal/config"
	"github.com/yigit/practicum/internal/db"
	appMiddleware "github.com/yigit/practicum/internal/middleware"
	pkgAuth "github.com/yigit/practicum/internal/pkg/auth"
	"github.com/yigit/practicum/internal/pkg/helpers"
	"github.com/yigit/practicum/internal/pkg/logger"
	"github.com/yigit/practicum/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	AuthzService   *appAuth.AuthorizationService
	AuthMiddleware *appMiddleware.AuthMiddleware
	Controllers    appRoutes.Controllers
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	logger.Configure(logger.Options{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr := logger.Get()
	lgr.Info().Str("logLevel", logLevel.String()).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and seeds the admin account.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	lgr.Info().Str("path", cfg.Server.MigrationsPath).Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool, lgr)
	if err := migrator.MigrateFromDirectory(ctx, cfg.Server.MigrationsPath); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultAdmin(ctx, appRepos.NewUserRepository(database.Pool), cfg, lgr); err != nil {
		// a missing seed account does not stop the API
		lgr.Error().Err(err).Msg("Failed to create default admin, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}
	repos := appRepos.NewRepositories(database.Pool)
	deps.Repos = repos

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.TokenExpiration, 12*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})
	deps.AuthzService = appAuth.NewAuthorizationService(repos.StudentRepository)
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	authService := appServices.NewAuthService(repos.UserRepository, deps.JWTService, logger.Component("auth"))
	locationService := appServices.NewLocationService(repos.LocationRepository)
	groupService := appServices.NewGroupService(repos.GroupRepository)
	roleService := appServices.NewRoleService(repos.RoleRepository)
	positionService := appServices.NewPositionService(repos.PositionRepository, repos.CatalogRepository)
	supervisorService := appServices.NewSupervisorService(repos.SupervisorRepository, repos.PositionRepository, repos.RoleRepository, repos.CatalogRepository)
	catalogService := appServices.NewCatalogService(repos.CatalogRepository)
	studentService := appServices.NewStudentService(repos.StudentRepository)
	diaryService := appServices.NewDiaryService(repos.DiaryRepository, deps.AuthzService)
	workService := appServices.NewIndividualWorkService(repos.IndividualWorkRepository, deps.AuthzService)
	queryService := appServices.NewQueryService(repos.ReportRepository, database)
	procedureService := appServices.NewProcedureService(repos.ReportRepository)
	transactionService := appServices.NewTransactionService(database, repos.StudentRepository, repos.DiaryRepository, repos.IndividualWorkRepository)

	deps.Controllers = appRoutes.Controllers{
		Auth:        appControllers.NewAuthController(authService),
		Reference:   appControllers.NewReferenceController(locationService, groupService, roleService),
		Position:    appControllers.NewPositionController(positionService),
		Supervisor:  appControllers.NewSupervisorController(supervisorService),
		Catalog:     appControllers.NewCatalogController(catalogService),
		Student:     appControllers.NewStudentController(studentService, diaryService, workService),
		Query:       appControllers.NewQueryController(queryService),
		Procedure:   appControllers.NewProcedureController(procedureService),
		Transaction: appControllers.NewTransactionController(transactionService),
	}

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

	metrics := appMiddleware.NewMetrics()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(metrics.Middleware())
	router.Use(appMiddleware.RequestLogger(logger.Component("http")))
	router.Use(appMiddleware.CORS(cfg.Server.AllowedOrigins))

	router.GET("/metrics", metrics.Handler())
	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	return router
}
