package main

import (
	"github.com/labstack/echo/v4"
	"github.com/sociable/sociableapi/api/auth"
	"github.com/sociable/sociableapi/api/setup"
	"github.com/sociable/sociableapi/config"
	"github.com/sociable/sociableapi/database"
	"github.com/sociable/sociableapi/services"
	"github.com/sociable/sociableapi/shared/middleware"
	"github.com/sociable/sociableapi/shared/zaplogger"
)

func main() {
	defer zaplogger.Sync()

	// Load configuration
	cfg := config.Get()
	zaplogger.SetLogLevel(cfg.ServerLogLevel)
	zaplogger.Info(config.SingleLine)
	zaplogger.Info("Initializing " + cfg.APIName)
	zaplogger.Info(config.SingleLine)

	// Create a new Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Setup middleware
	middleware.SetupLoggerMiddleware(e)

	// Database handle holder; populated at bootstrap or by the setup wizard
	provider := database.NewProvider()

	// Session store: redis-backed when a redis url is configured
	var sessions auth.SessionStore = auth.NewMemoryStore(auth.SessionTTL)
	if cfg.RedisURL != "" {
		redisClient, err := database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			zaplogger.Fatal("failed to connect to redis", zaplogger.Fields{"error": err.Error()})
		}
		sessions = auth.NewRedisStore(redisClient, auth.SessionTTL)
		zaplogger.Info("Using redis session store")
	}

	// Setup service and first-boot connection
	setupService := setup.NewService(
		setup.NewConfigStore(cfg.ConfigFile),
		setup.NewProvisioner(cfg.PostgresRootUser, cfg.PostgresRootPass),
		provider,
		cfg.PostgresLogLevel,
	)
	configured, err := setupService.Bootstrap()
	if err != nil {
		zaplogger.Fatal("failed to connect to configured database", zaplogger.Fields{"error": err.Error()})
	}
	if !configured {
		zaplogger.Warn("Application is not configured; only the setup endpoints are available")
	}

	// Setup routes
	adminService := setupRoutes(e, cfg, provider, setupService, sessions)

	// Start cron jobs
	cronService := services.NewCronService(cfg, sessions, adminService, provider)
	cronService.Start()

	// Start the server
	startServer(e, cfg)
}

// startServer starts the HTTP server on the configured port
func startServer(e *echo.Echo, cfg *config.Config) {
	port := cfg.ServerPort
	zaplogger.Info(config.SingleLine)
	zaplogger.Info("Starting server")
	zaplogger.Info("  * port : " + port)
	zaplogger.Info(config.SingleLine)

	if err := e.Start(":" + port); err != nil {
		zaplogger.Fatal("failed to start server", zaplogger.Fields{"error": err.Error()})
	}
}
