package main

import (
	"log"
	"net/http"
	"time"

	"med-reminder/internal/config"
	"med-reminder/internal/platform/logger"
	"med-reminder/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	lg := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	r, err := router.New(router.Options{Cfg: cfg, Log: lg})
	if err != nil {
		lg.Fatal().Err(err).Msg("router init failed")
	}

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	lg.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		lg.Fatal().Err(err).Msg("server error")
	}
}
