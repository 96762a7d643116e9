package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/lorenzobuompane/Software-Engineering-Project/internal/middleware"
	"github.com/lorenzobuompane/Software-Engineering-Project/internal/shared/notify"
	"github.com/lorenzobuompane/Software-Engineering-Project/internal/shared/sse"
	"github.com/lorenzobuompane/Software-Engineering-Project/internal/wms/entity"
	"github.com/lorenzobuompane/Software-Engineering-Project/internal/wms/handler"
	"github.com/lorenzobuompane/Software-Engineering-Project/internal/wms/repository"
	"github.com/lorenzobuompane/Software-Engineering-Project/internal/wms/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var autoMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

func init() {
	serveCmd.Flags().BoolVar(&autoMigrate, "migrate", false, "migrate tables before serving")
}

func runServer() error {
	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting ezwh service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	db, err := initDatabase(cfg.Database, cfg.Log.Level)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if autoMigrate {
		if err := db.AutoMigrate(entity.All()...); err != nil {
			zapLogger.Fatal("AutoMigrate failed", zap.Error(err))
		}
	}

	rdb := initRedis(cfg.Redis)
	if rdb != nil {
		defer rdb.Close()
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			zapLogger.Warn("Redis unreachable, order events will be dropped", zap.Error(err))
		}
	}
	publisher := notify.NewPublisher(rdb, zapLogger)
	hub := sse.NewHub(zapLogger)
	docs := initDocumentStore(cfg.MinIO, zapLogger)

	repos := repository.NewRepositories(db)
	svcs := service.NewServices(repos, notify.Fanout{publisher, hub}, docs, zapLogger)
	handlers := handler.NewHandlers(svcs, publisher, hub)

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS())
	router.Use(middleware.Metrics())
	router.Use(gzip.Gzip(gzip.DefaultCompression,
		gzip.WithExcludedPaths([]string{"/api/orderEvents/stream"})))

	router.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": Version})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if err := handler.RegisterRoutes(router, handlers); err != nil {
		zapLogger.Fatal("Failed to register routes", zap.Error(err))
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zapLogger.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	zapLogger.Info("Server exited")
	return nil
}
