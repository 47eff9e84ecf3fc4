// @title           Lumbung Group Contact API
// @version         1.0
// @description     Contact form schema, validation and delivery for the Lumbung Group website.
// @BasePath        /v1
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/lumbunggroup/lumbung-backend/config"
	"github.com/lumbunggroup/lumbung-backend/handlers"
	"github.com/lumbunggroup/lumbung-backend/logger"
	"github.com/lumbunggroup/lumbung-backend/models/contact"
	"github.com/lumbunggroup/lumbung-backend/router"
	"github.com/lumbunggroup/lumbung-backend/services"
	"github.com/lumbunggroup/lumbung-backend/types"
)

func main() {
	logger.InitLogger()
	log := logger.GetLogger()
	defer logger.Close()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	schema := contact.ContactSchema()
	deliverer := services.NewDeliverer(cfg, schema, log)
	metrics := services.NewContactMetrics()

	sessions := services.NewContactSessionService(schema, deliverer, services.ContactSessionConfig{
		TTL:             cfg.Contact.SessionTTL(),
		SweepInterval:   cfg.Contact.SweepInterval(),
		MaxSessions:     cfg.Contact.MaxSessions,
		DeliveryTimeout: cfg.Contact.DeliveryTimeout(),
	}, metrics)
	sweeperDone := make(chan struct{})
	go func() {
		defer close(sweeperDone)
		sessions.Run(ctx)
	}()

	emailReady := cfg.Email.ResendAPIKey != "" && cfg.Email.FromAddress != ""
	r := router.SetupRouter(router.Dependencies{
		Config:                cfg,
		HealthHandler:         handlers.NewHealthHandler(services.NewHealthService(cfg.Contact.DeliveryMode, emailReady, sessions, cfg.Server.Version)),
		SiteHandler:           handlers.NewSiteHandler(types.DefaultSiteInfo(cfg.Server.Version, "")),
		ContactHandler:        handlers.NewContactHandler(schema, deliverer, metrics, cfg.Contact.DeliveryTimeout()),
		ContactSessionHandler: handlers.NewContactSessionHandler(sessions),
		Logger:                log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infow("Starting server",
			"port", cfg.Server.Port,
			"environment", cfg.Server.Environment,
			"delivery_mode", cfg.Contact.DeliveryMode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Errorw("Server stopped", "error", err)
		}
		stop()
	case <-ctx.Done():
		log.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("Graceful shutdown failed", "error", err)
	}
	<-sweeperDone
	log.Info("Server exited")
}
