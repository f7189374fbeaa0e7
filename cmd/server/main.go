package main

import (
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/youruser/badgeapp/internal/api"
	"github.com/youruser/badgeapp/internal/badge"
	"github.com/youruser/badgeapp/internal/config"
	"github.com/youruser/badgeapp/internal/logger"
)

func main() {
	// Load .env if present (best-effort).
	_ = godotenv.Load()

	cfg, err := config.Load("")
	if err != nil {
		slog.Error("loading config", "err", err)
		os.Exit(1)
	}

	log, closer := logger.New(cfg.Log)
	defer closer.Close()

	composer := badge.New(badge.Config{
		LogoPath: cfg.Assets.LogoPath,
		FontPath: cfg.Assets.FontPath,
		Logger:   log,
	})

	r := gin.Default()
	api.RegisterRoutes(r, api.NewHandler(composer, log, cfg.Server))

	addr := ":" + strconv.Itoa(cfg.Server.Port)
	log.Info("starting server", "addr", addr)
	if err := r.Run(addr); err != nil && err != http.ErrServerClosed {
		log.Error("server exited", "err", err)
		os.Exit(1)
	}
}
