package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Sowmya0405/Super-mall-web-application/internal/api"
	"github.com/Sowmya0405/Super-mall-web-application/internal/auth"
	"github.com/Sowmya0405/Super-mall-web-application/internal/config"
	"github.com/Sowmya0405/Super-mall-web-application/internal/logger"
	"github.com/Sowmya0405/Super-mall-web-application/internal/metrics"
	"github.com/Sowmya0405/Super-mall-web-application/internal/models"
	"github.com/Sowmya0405/Super-mall-web-application/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg := config.MustLoad()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	var backend store.Backend
	if cfg.StorageDSN != "" {
		gb, err := store.OpenGorm(cfg.StorageDSN)
		if err != nil {
			log.Error("failed to open database", "err", err)
			os.Exit(1)
		}
		backend = gb
	} else {
		backend = store.NewFileBackend(cfg.DataFile)
	}

	adminUser := models.AdminUser{
		ID:       1,
		Username: cfg.AdminUsername,
		Password: auth.MustHashPassword(cfg.AdminPassword),
		Role:     "admin",
	}
	st := store.Open(backend, store.DefaultDocument(adminUser), log)

	tokens := auth.NewTokens(cfg.SessionSecret, cfg.SessionTTL)
	router := api.NewRouter(st, tokens, log, metrics.NewHTTPMetrics())

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("shutdown failed", "err", err)
		}
		close(idleConnsClosed)
	}()

	log.Info("starting server", "addr", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("listen failed", "err", err)
		os.Exit(1)
	}
	<-idleConnsClosed
	log.Info("server stopped")
}
