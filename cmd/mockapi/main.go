// cmd/mockapi/main.go
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

	"github.com/javajoker/productlist/internal/catalogfake"
	"github.com/javajoker/productlist/internal/config"
)

// mockapi serves a fake product catalog for local development of the view server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	logger := logrus.StandardLogger()
	if err := cfg.Log.ConfigureLogger(logger); err != nil {
		logger.WithError(err).Fatal("Failed to configure logger")
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	fake := catalogfake.NewDefault()
	if cfg.MockAPI.SeedFile != "" {
		seed, err := os.ReadFile(cfg.MockAPI.SeedFile)
		if err != nil {
			logger.WithError(err).Fatal("Failed to read seed file")
		}
		if err := fake.Load(seed); err != nil {
			logger.WithError(err).Fatal("Failed to load seed file")
		}
	}
	fake.SetDelay(cfg.MockAPI.Delay())

	srv := &http.Server{
		Addr:    ":" + cfg.MockAPI.Port,
		Handler: fake.Router(),
	}

	go func() {
		logger.WithFields(logrus.Fields{
			"port":  cfg.MockAPI.Port,
			"delay": cfg.MockAPI.Delay().String(),
			"seed":  cfg.MockAPI.SeedFile,
		}).Info("Starting mock catalog API")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("Failed to start mock catalog API")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Fatal("Mock catalog API forced to shutdown")
	}
	logger.Info("Mock catalog API exited")
}
