package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MatheusScaranello/AgendaProBack/config"
	deliveryHttp "github.com/MatheusScaranello/AgendaProBack/internal/delivery/http"
	"github.com/MatheusScaranello/AgendaProBack/internal/delivery/http/handler"
	"github.com/MatheusScaranello/AgendaProBack/internal/delivery/http/middleware"
	"github.com/MatheusScaranello/AgendaProBack/internal/infrastructure/cache"
	"github.com/MatheusScaranello/AgendaProBack/internal/infrastructure/database"
	"github.com/MatheusScaranello/AgendaProBack/internal/repository"
	"github.com/MatheusScaranello/AgendaProBack/internal/service"
	"github.com/MatheusScaranello/AgendaProBack/internal/usecase"
	"github.com/MatheusScaranello/AgendaProBack/pkg/jwt"
	"github.com/MatheusScaranello/AgendaProBack/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
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

	// Apply pending migrations before opening the pool
	if cfg.DB.Migrate {
		if err := database.RunMigrations(cfg.DB); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	appointmentRepo := repository.NewAppointmentRepository()
	clientRepo := repository.NewClientRepository()
	serviceRepo := repository.NewServiceRepository()
	professionalRepo := repository.NewProfessionalRepository()
	absenceRepo := repository.NewAbsenceRepository()
	assetRepo := repository.NewAssetRepository()
	establishmentRepo := repository.NewEstablishmentRepository()
	saleRepo := repository.NewSaleRepository()
	cancellationRepo := repository.NewCancellationRepository()
	policyRepo := repository.NewCancellationPolicyRepository()
	waitlistRepo := repository.NewWaitlistRepository()

	// Initialize domain services
	conflictService := service.NewConflictService(log, appointmentRepo)
	feeService := service.NewCancellationFeeService()
	metricsService := service.NewClientMetricsService(log, clientRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, establishmentRepo, jwtService, redisClient)
	appointmentUsecase := usecase.NewAppointmentUsecase(
		db, log,
		appointmentRepo, serviceRepo, clientRepo, professionalRepo, assetRepo,
		saleRepo, cancellationRepo, policyRepo,
		conflictService, feeService, metricsService,
	)
	waitlistUsecase := usecase.NewWaitlistUsecase(db, log, waitlistRepo, appointmentRepo, clientRepo, professionalRepo, serviceRepo)
	policyUsecase := usecase.NewCancellationPolicyUsecase(db, log, policyRepo)
	clientUsecase := usecase.NewClientUsecase(db, log, clientRepo)
	serviceUsecase := usecase.NewServiceUsecase(db, log, serviceRepo)
	professionalUsecase := usecase.NewProfessionalUsecase(db, log, professionalRepo)
	absenceUsecase := usecase.NewAbsenceUsecase(db, log, absenceRepo, professionalRepo)
	assetUsecase := usecase.NewAssetUsecase(db, log, assetRepo)
	saleUsecase := usecase.NewSaleUsecase(db, log, saleRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	cancellationHandler := handler.NewCancellationHandler(appointmentUsecase, policyUsecase, customValidator)
	waitlistHandler := handler.NewWaitlistHandler(waitlistUsecase, customValidator)
	clientHandler := handler.NewClientHandler(clientUsecase, customValidator)
	serviceHandler := handler.NewServiceHandler(serviceUsecase, customValidator)
	professionalHandler := handler.NewProfessionalHandler(professionalUsecase, customValidator)
	absenceHandler := handler.NewAbsenceHandler(absenceUsecase, customValidator)
	assetHandler := handler.NewAssetHandler(assetUsecase, customValidator)
	saleHandler := handler.NewSaleHandler(saleUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler, appointmentHandler, cancellationHandler, waitlistHandler,
		clientHandler, serviceHandler, professionalHandler, absenceHandler,
		assetHandler, saleHandler,
		authMiddleware, corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
