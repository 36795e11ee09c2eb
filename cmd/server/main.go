// cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/productlist/internal/apiclient"
	"github.com/javajoker/productlist/internal/config"
	"github.com/javajoker/productlist/internal/i18n"
	"github.com/javajoker/productlist/internal/router"
	"github.com/javajoker/productlist/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	logger := logrus.StandardLogger()
	if err := cfg.Log.ConfigureLogger(logger); err != nil {
		logger.WithError(err).Fatal("Failed to configure logger")
	}

	// Initialize i18n
	if err := i18n.Initialize(); err != nil {
		logger.WithError(err).Fatal("Failed to initialize i18n")
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, err := apiclient.New(cfg.API.BaseURL,
		apiclient.WithTimeout(cfg.API.TimeoutDuration()),
		apiclient.WithUserAgent(cfg.API.UserAgent),
		apiclient.WithLogger(logger.WithField("component", "apiclient")),
	)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create API client")
	}

	storeOpts := []store.Option{store.WithLogger(logger.WithField("component", "store"))}
	if cfg.Store.LatestDetailOnly {
		storeOpts = append(storeOpts, store.WithLatestDetailOnly())
	}
	productStore := store.New(ctx, client, storeOpts...)
	defer productStore.Close()

	// Initialize router
	r, err := router.Initialize(ctx, productStore, cfg, logger.WithField("component", "http"))
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize router")
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:        cfg.Server.Addr(),
		Handler:     r,
		ReadTimeout: time.Duration(cfg.Server.ReadTimeout) * time.Second,
		IdleTimeout: time.Duration(cfg.Server.IdleTimeout) * time.Second,
		// no WriteTimeout: /v1/state/stream is long-lived
	}

	// Start server in a goroutine
	go func() {
		logger.WithFields(logrus.Fields{
			"port":     cfg.Server.Port,
			"api_base": cfg.API.BaseURL,
		}).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// end open state streams before Shutdown waits on them
	cancel()
	productStore.Close()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Fatal("Server forced to shutdown")
	}

	logger.Info("Server exited")
}
