package main

import (
	"log/slog"

	"timebot/internal/bot"
	"timebot/internal/config"
	"timebot/internal/localtime"
	"timebot/internal/providers/slackapi"

	"github.com/gin-gonic/gin"
)

// App encapsulates application dependencies
type App struct {
	router *gin.Engine
	logger *slog.Logger
	bot    *bot.Bot
	cfg    *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	times := localtime.NewService(cfg.Google.APIKey, logger)

	// The user directory exists only when a Slack token is configured;
	// without one the "time for" command replies that it is unsupported.
	var directory bot.UserDirectory
	if cfg.Slack.Token != "" {
		directory = slackapi.NewClient(cfg.Slack.Token)
	}

	app := &App{
		router: router,
		logger: logger,
		bot:    bot.New(times, directory, logger),
		cfg:    cfg,
	}

	logger.Info("application initialized", "slack_directory", directory != nil)

	// Register routes
	app.registerRoutes()

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
