package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/virtuacademy/touchpoint/config"
	"github.com/virtuacademy/touchpoint/internal/database"
	"github.com/virtuacademy/touchpoint/internal/domain"
	httpHandler "github.com/virtuacademy/touchpoint/internal/http"
	"github.com/virtuacademy/touchpoint/internal/repository"
	"github.com/virtuacademy/touchpoint/internal/service"
	"github.com/virtuacademy/touchpoint/internal/service/queue"
	"github.com/virtuacademy/touchpoint/pkg/logger"
)

// AppInterface defines the interface for the App
type AppInterface interface {
	Initialize() error
	Start() error
	Shutdown(ctx context.Context) error

	GetConfig() *config.Config
	GetLogger() logger.Logger
	GetMux() *http.ServeMux
	GetDB() *sql.DB

	// Methods for initialization steps
	InitDB() error
	InitRepositories() error
	InitServices() error
	InitHandlers() error
}

// App encapsulates the application dependencies and configuration
type App struct {
	config *config.Config
	logger logger.Logger
	db     *sql.DB

	// Repositories
	visitorRepo     domain.VisitorRepository
	sessionRepo     domain.SessionRepository
	attributionRepo domain.AttributionRepository
	webhookRepo     domain.InboundWebhookRepository
	appointmentRepo domain.AppointmentRepository
	eventRepo       domain.CanonicalEventRepository
	deliveryRepo    domain.DeliveryRepository

	// Services
	identityService *service.IdentityService
	acuityService   *service.AcuityService
	webhookService  *service.WebhookService
	deliveryService *service.DeliveryService
	publisher       *queue.Publisher
	receiver        *queue.Receiver

	mux    *http.ServeMux
	server *http.Server

	serverMu sync.RWMutex
}

// AppOption defines a functional option for configuring the App
type AppOption func(*App)

// WithMockDB configures the app to use an already opened database
func WithMockDB(db *sql.DB) AppOption {
	return func(a *App) {
		a.db = db
	}
}

// WithLogger sets a custom logger
func WithLogger(logger logger.Logger) AppOption {
	return func(a *App) {
		a.logger = logger
	}
}

// NewApp creates a new application instance
func NewApp(cfg *config.Config, opts ...AppOption) *App {
	app := &App{
		config: cfg,
		logger: logger.NewLoggerWithLevel(cfg.LogLevel),
		mux:    http.NewServeMux(),
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// InitDB opens the connection pool and creates the schema if needed. A mock
// database injected through WithMockDB is kept as-is.
func (a *App) InitDB() error {
	if a.db == nil {
		db, err := database.Connect(&a.config.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		a.db = db
	}

	if err := database.InitializeDatabase(a.db); err != nil {
		a.db.Close()
		return fmt.Errorf("failed to initialize database schema: %w", err)
	}
	return nil
}

// InitRepositories initializes all repositories
func (a *App) InitRepositories() error {
	if a.db == nil {
		return fmt.Errorf("database must be initialized before repositories")
	}

	a.visitorRepo = repository.NewVisitorRepository(a.db)
	a.sessionRepo = repository.NewSessionRepository(a.db)
	a.attributionRepo = repository.NewAttributionRepository(a.db)
	a.webhookRepo = repository.NewInboundWebhookRepository(a.db)
	a.appointmentRepo = repository.NewAppointmentRepository(a.db)
	a.eventRepo = repository.NewCanonicalEventRepository(a.db)
	a.deliveryRepo = repository.NewDeliveryRepository(a.db)

	return nil
}

// InitServices initializes all application services
func (a *App) InitServices() error {
	httpClient := &http.Client{
		Timeout: 10 * time.Second,
	}

	a.identityService = service.NewIdentityService(
		a.visitorRepo,
		a.sessionRepo,
		a.attributionRepo,
		a.logger,
	)

	a.acuityService = service.NewAcuityService(httpClient, &a.config.Acuity, a.logger)
	a.publisher = queue.NewPublisher(httpClient, &a.config.QStash, a.logger)
	a.receiver = queue.NewReceiver(&a.config.QStash)

	a.webhookService = service.NewWebhookService(
		a.webhookRepo,
		a.appointmentRepo,
		a.eventRepo,
		a.deliveryRepo,
		a.acuityService,
		a.publisher,
		&a.config.Acuity,
		a.logger,
	)

	adapters := []domain.PlatformAdapter{
		service.NewMetaService(httpClient, &a.config.Meta, a.config.DefaultPhoneCountryCode, a.logger),
		service.NewGoogleAdsService(httpClient, &a.config.GoogleAds, a.config.DefaultPhoneCountryCode, a.logger),
		service.NewTikTokService(httpClient, &a.config.TikTok, a.config.DefaultPhoneCountryCode, a.logger),
		service.NewHubSpotService(httpClient, &a.config.HubSpot, a.logger),
	}

	a.deliveryService = service.NewDeliveryService(
		a.eventRepo,
		a.deliveryRepo,
		a.appointmentRepo,
		a.attributionRepo,
		a.sessionRepo,
		adapters,
		a.config,
		a.logger,
	)

	return nil
}

// InitHandlers initializes and registers all HTTP handlers
func (a *App) InitHandlers() error {
	rootHandler := httpHandler.NewRootHandler(a.config.Version, a.logger)
	ingestHandler := httpHandler.NewIngestHandler(a.identityService, &a.config.Cookies, &a.config.CORS, a.logger)
	webhookHandler := httpHandler.NewWebhookHandler(a.webhookService, a.logger)
	deliveryHandler := httpHandler.NewDeliveryHandler(a.deliveryService, a.receiver, a.logger)

	rootHandler.RegisterRoutes(a.mux)
	ingestHandler.RegisterRoutes(a.mux)
	webhookHandler.RegisterRoutes(a.mux)
	deliveryHandler.RegisterRoutes(a.mux)

	return nil
}

// Initialize sets up all components of the application
func (a *App) Initialize() error {
	a.logger.WithField("version", a.config.Version).Info("Starting touchpoint application")

	if err := a.InitDB(); err != nil {
		return err
	}

	if err := a.InitRepositories(); err != nil {
		return err
	}

	if err := a.InitServices(); err != nil {
		return err
	}

	if err := a.InitHandlers(); err != nil {
		return err
	}

	a.logger.Info("Application successfully initialized")
	return nil
}

// Start starts the HTTP server and blocks until it stops
func (a *App) Start() error {
	addr := fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port)

	a.serverMu.Lock()
	a.server = &http.Server{
		Addr:              addr,
		Handler:           a.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	server := a.server
	a.serverMu.Unlock()

	a.logger.WithField("address", addr).Info("Server starting")
	return server.ListenAndServe()
}

// Shutdown gracefully shuts down the server and closes resources
func (a *App) Shutdown(ctx context.Context) error {
	a.serverMu.RLock()
	server := a.server
	a.serverMu.RUnlock()

	var shutdownErr error
	if server != nil {
		if err := server.Shutdown(ctx); err != nil {
			a.logger.WithField("error", err.Error()).Error("HTTP server shutdown failed")
			shutdownErr = err
		}
	}

	if a.db != nil {
		a.logger.Info("Closing database connection")
		if err := a.db.Close(); err != nil {
			a.logger.WithField("error", err.Error()).Error("Error closing database connection")
			if shutdownErr == nil {
				shutdownErr = err
			}
		}
	}

	if shutdownErr == nil {
		a.logger.Info("Graceful shutdown completed")
	}
	return shutdownErr
}

// GetConfig returns the app's configuration
func (a *App) GetConfig() *config.Config {
	return a.config
}

// GetLogger returns the app's logger
func (a *App) GetLogger() logger.Logger {
	return a.logger
}

// GetMux returns the app's HTTP multiplexer
func (a *App) GetMux() *http.ServeMux {
	return a.mux
}

// GetDB returns the app's database connection
func (a *App) GetDB() *sql.DB {
	return a.db
}

// Ensure App implements AppInterface
var _ AppInterface = (*App)(nil)
