package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/etmf/api/audit"
	"github.com/dev-mohitbeniwal/etmf/api/config"
	"github.com/dev-mohitbeniwal/etmf/api/controller"
	"github.com/dev-mohitbeniwal/etmf/api/dao"
	"github.com/dev-mohitbeniwal/etmf/api/db"
	logger "github.com/dev-mohitbeniwal/etmf/api/logging"
	"github.com/dev-mohitbeniwal/etmf/api/router"
	"github.com/dev-mohitbeniwal/etmf/api/service"
	"github.com/dev-mohitbeniwal/etmf/api/storage"
	"github.com/dev-mohitbeniwal/etmf/api/util"
)

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}
	cfg := config.GetConfig()

	// Initialize logger
	logger.InitLogger(logger.Options{
		Dir:     cfg.Log.Dir,
		Level:   cfg.Log.Level,
		Service: cfg.Log.Service,
	})
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the primary store
	store, err := initStore(ctx, cfg.Store)
	if err != nil {
		logger.Fatal("Failed to initialize store", zap.Error(err))
	}
	defer db.CloseMongo()

	// Initialize Neo4j; the classification tree falls back to the store without it
	var graph service.ClassificationGraph
	if cfg.Neo4j.Enabled {
		if err := db.InitNeo4j(ctx); err != nil {
			logger.Warn("Neo4j unavailable, classification graph disabled", zap.Error(err))
		} else {
			graphDAO := dao.NewGraphDAO(db.Neo4jDriver, cfg.Neo4j.Timeout)
			if err := graphDAO.EnsureUniqueConstraints(ctx); err != nil {
				logger.Warn("Failed to ensure graph constraints", zap.Error(err))
			}
			graph = graphDAO
		}
	}
	defer db.CloseNeo4j()

	// Initialize Redis
	cacheEnabled := false
	if cfg.Redis.Enabled {
		if err := db.InitRedis(); err != nil {
			logger.Warn("Redis unavailable, caching and rate limiting disabled", zap.Error(err))
			db.CloseRedis()
			db.RedisClient = nil
		} else {
			cacheEnabled = true
		}
	}
	defer db.CloseRedis()

	// Initialize the audit sink
	var auditRepository audit.Repository = audit.NopRepository{}
	if cfg.Elasticsearch.Enabled {
		esRepository, err := audit.NewElasticsearchRepository(cfg.Elasticsearch.URL, cfg.Elasticsearch.Index)
		if err != nil {
			logger.Warn("Elasticsearch unavailable, audit events are only logged", zap.Error(err))
		} else {
			auditRepository = esRepository
		}
	}
	auditService := audit.NewService(auditRepository, 5*time.Second)

	// Initialize blob storage
	blobStore, err := storage.NewMinioStore(ctx, cfg.Storage)
	if err != nil {
		logger.Fatal("Failed to initialize blob storage", zap.Error(err))
	}

	// Initialize EventBus
	eventBus := util.NewEventBus()
	eventBus.Start(ctx)

	// Initialize services
	services, err := service.InitializeServices(service.Dependencies{
		Store:          store,
		Graph:          graph,
		BlobStore:      blobStore,
		AuditService:   auditService,
		ValidationUtil: util.NewValidationUtil(),
		CacheService:   util.NewCacheService(cacheEnabled),
		EventBus:       eventBus,
	})
	if err != nil {
		logger.Fatal("Failed to initialize services", zap.Error(err))
	}

	// Initialize controllers
	controllers := controller.InitializeControllers(services)

	// Set up Gin
	gin.SetMode(cfg.Server.Mode)
	engine := router.SetupRouter(controllers, router.Options{
		Auth:              cfg.Auth,
		AllowedOrigins:    config.GetStringSlice("cors.allowedOrigins"),
		RateLimitRequests: cfg.RateLimit.Requests,
		RateLimitDuration: cfg.RateLimit.Window,
		RequestTimeout:    cfg.Server.RequestTimeout,
	})

	// Set up the server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: engine,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	eventBus.Wait()

	logger.Info("Server exiting")
}

func initStore(ctx context.Context, cfg config.StoreConfiguration) (*dao.Store, error) {
	switch cfg.Driver {
	case "memory":
		logger.Warn("Using the in-memory store; data is lost on restart")
		return dao.NewMemoryStore(cfg.MaxRetries), nil
	case "mongo", "":
		database, err := db.InitMongo(ctx)
		if err != nil {
			return nil, err
		}
		return dao.NewMongoStore(ctx, database, cfg.Timeout, cfg.MaxRetries)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
