package main

import (
	"time"

	"anoa.com/civicwaste/internal/config"
	"anoa.com/civicwaste/internal/server"
	"anoa.com/civicwaste/internal/store"
	"anoa.com/civicwaste/pkg/database"
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

func main() {
	log.SetTimeFormat(time.Stamp)
	log.SetReportCaller(true)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config", "err", err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn("unknown LOG_LEVEL, using info", "value", cfg.LogLevel)
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	redisClient := database.ConnectRedis(cfg.RedisURL)
	if redisClient != nil {
		defer redisClient.Close()
	}

	srv, err := server.NewServer(cfg, store.New(time.Now), redisClient)
	if err != nil {
		log.Fatal("failed to build server", "err", err)
	}

	log.Info("server starting", "port", cfg.Port, "env", cfg.AppEnv)
	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", "err", err)
	}
}
