// api/router/router.go

package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dev-mohitbeniwal/etmf/api/config"
	"github.com/dev-mohitbeniwal/etmf/api/controller"
	"github.com/dev-mohitbeniwal/etmf/api/middleware"
)

type Options struct {
	Auth              config.AuthConfiguration
	AllowedOrigins    []string
	RateLimitRequests int
	RateLimitDuration time.Duration
	RequestTimeout    time.Duration
}

func SetupRouter(controllers *controller.Controllers, opts Options) *gin.Engine {
	router := gin.New()
	// Handlers pass *gin.Context as their context; this makes it carry the request deadline.
	router.ContextWithFallback = true

	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())
	router.Use(cors.New(corsConfig(opts.AllowedOrigins)))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	api.Use(middleware.Timeout(opts.RequestTimeout))
	api.Use(middleware.Auth(opts.Auth))
	api.Use(middleware.RateLimiter(opts.RateLimitRequests, opts.RateLimitDuration))

	controllers.RegisterRoutes(api)

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", "X-User-ID")
	return cfg
}
