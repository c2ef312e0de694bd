package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"foodiefind-client/backend"
	"foodiefind-client/config"
	"foodiefind-client/dashboard"
	"foodiefind-client/logger"
	"foodiefind-client/probe"
	"foodiefind-client/session"
	"foodiefind-client/tokenstore"
	"foodiefind-client/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	log.Info().Str("env", cfg.App.Env).Str("backend", cfg.Backend.URL).Msg("starting FoodieFind client")

	// Set Gin mode
	if os.Getenv("GIN_MODE") == "" && cfg.App.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	tokens, err := tokenstore.Open(cfg.Backend.TokenPath)
	if err != nil {
		log.Fatal().Err(err).Msg("open session token store")
	}

	client := backend.NewClient(cfg.Backend.URL, cfg.Backend.AppID, tokens, log)

	ctx := context.Background()

	// Advisory connectivity check; failure only flips the badge
	result := (&probe.Prober{
		Check:       client.Health,
		Delay:       probe.FixedDelay(time.Duration(cfg.Probe.DelayMillis) * time.Millisecond),
		MaxAttempts: cfg.Probe.MaxAttempts,
		Log:         log,
	}).Run(ctx)
	conn := web.ConnStatus{Connected: result.Success, Status: "Connected"}
	if !result.Success {
		conn.Status = "Connection Failed"
		log.Warn().Err(result.Err).Int("attempts", result.Attempts).Msg("backend unreachable, continuing anyway")
	}

	// Resolve the initial screen before serving anything that depends on it
	sessions := session.NewController(client, log)
	sessions.Bootstrap(ctx)

	loader := dashboard.NewLoader(client, log)

	r := gin.Default()
	handlers := web.NewHandlers(sessions, loader, conn, cfg.Backend.AdminPanelURL(), log)
	web.SetupRoutes(r, handlers, sessions)

	log.Info().Str("addr", cfg.HTTP.Addr()).Msg("🚀 FoodieFind running")
	if err := r.Run(cfg.HTTP.Addr()); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
