package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/mtendere/educonsult-admin/internal/app/controllers"
	appMigrations "github.com/mtendere/educonsult-admin/internal/app/migrations"
	appRepos "github.com/mtendere/educonsult-admin/internal/app/repositories"
	appRoutes "github.com/mtendere/educonsult-admin/internal/app/routes"
	appServices "github.com/mtendere/educonsult-admin/internal/app/services"
	"github.com/mtendere/educonsult-admin/internal/config"
	"github.com/mtendere/educonsult-admin/internal/db"
	appMiddleware "github.com/mtendere/educonsult-admin/internal/middleware"
	pkgAuth "github.com/mtendere/educonsult-admin/internal/pkg/auth"
	"github.com/mtendere/educonsult-admin/internal/pkg/email"
	"github.com/mtendere/educonsult-admin/internal/pkg/filestorage"
	"github.com/mtendere/educonsult-admin/internal/pkg/helpers"
	"github.com/mtendere/educonsult-admin/internal/pkg/logger"
	"github.com/mtendere/educonsult-admin/internal/seed"
)

// visitorLogSkipPrefixes lists request paths that never produce visitor log
// rows. Static assets and health probes would otherwise drown the table.
var visitorLogSkipPrefixes = []string{"/health", "/uploads", "/static"}

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos         *appRepos.Repositories
	JWTService    *pkgAuth.JWTService
	EmailService  email.Service
	FileStorage   *filestorage.LocalStorage
	Controllers   *appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	VisitorLogger *appMiddleware.VisitorLogger
	Logger        zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default admin account.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database)
	if err := migrator.Migrate(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultAdmin(ctx, database.Pool, lgr); err != nil {
		// A missing default admin locks everyone out, so this is fatal.
		lgr.Error().Err(err).Msg("Failed to seed default admin account")
		database.Close()
		return nil, fmt.Errorf("admin seeding failed: %w", err)
	}

	return database, nil
}

// BuildDependencies initializes repositories, services, controllers and
// middleware from the configuration and connection pool.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(
		cfg.Upload.StoragePath,
		cfg.Upload.MaxFileSize,
		cfg.AllowedUploadExtensions(),
	)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.EmailService = email.NewService(email.SMTPConfig{
		Host:       cfg.Email.Host,
		Port:       cfg.Email.Port,
		Username:   cfg.Email.Username,
		Password:   cfg.Email.Password,
		FromName:   cfg.Email.FromName,
		AdminEmail: cfg.Email.AdminEmail,
	}, lgr)

	authService := appServices.NewAuthService(deps.Repos.User, deps.JWTService, lgr)
	userService := appServices.NewUserService(deps.Repos.User, deps.EmailService, lgr)
	blogService := appServices.NewBlogService(deps.Repos.BlogPost, deps.EmailService, lgr)
	testimonialService := appServices.NewTestimonialService(deps.Repos.Testimonial, deps.EmailService, lgr)
	teamService := appServices.NewTeamService(deps.Repos.TeamMember, deps.EmailService, lgr)
	scholarshipService := appServices.NewScholarshipService(deps.Repos.Scholarship, deps.EmailService, lgr)
	insightService := appServices.NewInsightService(deps.Repos.Insight, deps.EmailService, lgr)
	applicationService := appServices.NewApplicationService(deps.Repos.Application, deps.EmailService, lgr)
	contactService := appServices.NewContactService(deps.Repos.ContactInquiry, deps.EmailService, lgr)
	newsletterService := appServices.NewNewsletterService(deps.Repos.Newsletter, deps.EmailService, lgr)
	visitorService := appServices.NewVisitorService(deps.Repos.VisitorLog, lgr)
	analyticsService := appServices.NewAnalyticsService(
		deps.Repos.VisitorLog,
		deps.Repos.Application,
		deps.Repos.BlogPost,
		deps.Repos.TeamMember,
		deps.Repos.Testimonial,
		deps.Repos.Scholarship,
		helpers.ParseDuration(cfg.Cache.AnalyticsTTL, 5*time.Minute),
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)
	deps.VisitorLogger = appMiddleware.NewVisitorLogger(deps.Repos.VisitorLog, visitorLogSkipPrefixes, lgr)

	deps.Controllers = &appRoutes.Controllers{
		Auth:        appControllers.NewAuthController(authService),
		User:        appControllers.NewUserController(userService),
		BlogPost:    appControllers.NewBlogPostController(blogService),
		Testimonial: appControllers.NewTestimonialController(testimonialService),
		TeamMember:  appControllers.NewTeamMemberController(teamService),
		Scholarship: appControllers.NewScholarshipController(scholarshipService),
		Insight:     appControllers.NewInsightController(insightService),
		Application: appControllers.NewApplicationController(applicationService),
		Contact:     appControllers.NewContactInquiryController(contactService, cfg.Pagination),
		Newsletter:  appControllers.NewNewsletterController(newsletterService, cfg.Pagination),
		Analytics:   appControllers.NewAnalyticsController(analyticsService, visitorService),
		Upload:      appControllers.NewUploadController(deps.FileStorage),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins()
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	corsConfig.ExposeHeaders = []string{"X-Process-Time", "X-Request-Count", "X-Error-Count"}
	router.Use(cors.New(corsConfig))

	router.Use(appMiddleware.SecurityHeaders())
	router.Use(deps.VisitorLogger.Handler())

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, cfg.Upload.StoragePath)

	return router
}
