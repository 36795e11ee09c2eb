// internal/router/router.go
package router

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/javajoker/productlist/internal/config"
	"github.com/javajoker/productlist/internal/handlers"
	"github.com/javajoker/productlist/internal/middleware"
	"github.com/javajoker/productlist/internal/store"
	"github.com/javajoker/productlist/internal/utils"
)

const Version = "1.0.0"

// Initialize builds the view server. ctx bounds background work owned by the
// router, such as rate limiter cleanup.
func Initialize(ctx context.Context, productStore *store.ProductStore, cfg *config.Config, logger logrus.FieldLogger) (*gin.Engine, error) {
	tmpl, err := handlers.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	// Initialize handlers
	productHandler := handlers.NewProductHandler(productStore)
	stateHandler := handlers.NewStateHandler(productStore)

	limiter := middleware.NewRateLimiter(ctx, rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst)

	// Initialize Gin router
	r := gin.New()
	r.SetHTMLTemplate(tmpl)

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.I18nMiddleware())
	r.Use(limiter.Middleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": Version,
		})
	})

	// Pages
	r.GET("/", productHandler.ListPage)
	r.GET("/products/:id", productHandler.DetailPage)

	// API v1 routes
	v1 := r.Group("/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/:id", productHandler.GetProduct)
		}

		state := v1.Group("/state")
		{
			state.GET("", stateHandler.GetState)
			state.GET("/stream", stateHandler.Stream)
		}
	}

	r.NoRoute(utils.NotFoundResponse)

	return r, nil
}
