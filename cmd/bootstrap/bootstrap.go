package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"record-registry/config"
	"record-registry/internal/delivery/console"
	deliveryHttp "record-registry/internal/delivery/http"
	"record-registry/internal/delivery/http/handler"
	"record-registry/internal/delivery/http/middleware"
	"record-registry/internal/infrastructure/cache"
	"record-registry/internal/infrastructure/database"
	"record-registry/internal/repository"
	"record-registry/internal/service"
	"record-registry/internal/usecase"
	"record-registry/pkg/prompt"
	"record-registry/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Runner      *console.Runner
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database when session archival is on
	if cfg.Archive.Enabled {
		db, err := database.NewPostgresConnection(cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.RunMigrations(db, cfg.Archive.MigrationsDir); err != nil {
			return nil, err
		}
		app.DB = db
	}

	// Initialize Redis when session summaries are on
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
	}

	// Initialize all layers
	app.Runner = initializeConsole(app.DB, app.RedisClient)
	if cfg.HTTP.Enabled {
		if app.DB == nil {
			return nil, fmt.Errorf("the archive API requires ARCHIVE_ENABLED=true")
		}
		app.Server = initializeServer(cfg, app.DB)
	}

	return app, nil
}

// setupLogger configures the logrus logger. Logs go to stderr so they do not
// interleave with the interactive prompts on stdout.
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeConsole wires the interactive programs onto stdin/stdout.
func initializeConsole(db *gorm.DB, redisClient *redis.Client) *console.Runner {
	log := logrus.StandardLogger()

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	sessionRepo := repository.NewArchiveSessionRepository()
	recordRepo := repository.NewArchiveRecordRepository()

	// Initialize services
	summaryService := service.NewSummaryService(redisClient, log)

	// Usecase factories: each program run gets fresh state
	newLedger := func() usecase.LedgerUsecase {
		return usecase.NewLedgerUsecase(db, log, repository.NewRegistry(), sessionRepo, recordRepo, summaryService)
	}
	newHospital := func(capacity int) usecase.HospitalUsecase {
		return usecase.NewHospitalUsecase(log, repository.NewRegistryWithCapacity(capacity))
	}
	newPayroll := func() usecase.PayrollUsecase {
		return usecase.NewPayrollUsecase(log)
	}
	newLibrary := func() usecase.LibraryUsecase {
		return usecase.NewLibraryUsecase(log)
	}

	// Initialize console programs
	in := prompt.NewReader(os.Stdin, os.Stdout)
	hospital := console.NewHospitalConsole(log, customValidator, newHospital)
	ledger := console.NewLedgerMenu(log, newLedger)
	payroll := console.NewPayrollConsole(log, newPayroll)
	library := console.NewLibraryConsole(log, newLibrary)

	return console.NewRunner(log, in, os.Stdout, hospital, ledger, payroll, library)
}

// initializeServer creates and configures the read-only archive API server
func initializeServer(cfg *config.Config, db *gorm.DB) *http.Server {
	log := logrus.StandardLogger()

	// Initialize repositories
	sessionRepo := repository.NewArchiveSessionRepository()
	recordRepo := repository.NewArchiveRecordRepository()

	// Initialize usecases
	archiveUsecase := usecase.NewArchiveUsecase(db, log, sessionRepo, recordRepo)

	// Initialize handlers
	archiveHandler := handler.NewArchiveHandler(archiveUsecase)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(archiveHandler, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.HTTP.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run drives the interactive console and, when enabled, serves the archive
// API alongside it. It returns when the console exits.
func (app *App) Run() {
	if app.Server != nil {
		go func() {
			logrus.Infof("Archive API listening on port %s", app.Config.HTTP.Port)
			if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logrus.Fatalf("Failed to start server: %v", err)
			}
		}()
	}

	app.Runner.Run(context.Background())

	app.shutdown()
}

// shutdown stops the HTTP server gracefully and closes all connections.
func (app *App) shutdown() {
	if app.Server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.Server.Shutdown(ctx); err != nil {
			logrus.Errorf("Server forced to shutdown: %v", err)
		}
	}

	app.Close()

	logrus.Info("Shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
