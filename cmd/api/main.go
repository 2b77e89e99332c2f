/*
Package main - Shift Planning Backend Entry Point

==============================================================================
FILE: cmd/api/main.go
==============================================================================

DESCRIPTION:
    Entry point for the shift planning backend API server. Initializes
    configuration, logging, the database connection, and the HTTP router,
    then serves until an interrupt signal triggers a graceful shutdown.

ARCHITECTURE:
    main() → LoadAppConfig → Setup logger → NewConnection → Migrate
                                                                 ↓
    ShutdownServer ← WaitForSignal ← ListenAndServe ← setupRouter()
*/
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/caretech/shiftplan/internal/api"
	"github.com/caretech/shiftplan/internal/config"
	"github.com/caretech/shiftplan/internal/database"
	"github.com/caretech/shiftplan/internal/logger"
)

func main() {
	cfg := config.LoadAppConfig()

	appLogger := logger.Setup(cfg.Env)

	db, err := database.NewConnection(cfg.DatabaseURL, cfg.DBDriver)
	if err != nil {
		appLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if cfg.Env == "development" {
		if err := database.Migrate(db); err != nil {
			appLogger.Warnf("Migration failed: %v", err)
		}
	}

	router := setupRouter(cfg, db, appLogger)

	srv := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		appLogger.Infof("Starting server on port %s in %s mode", strconv.Itoa(cfg.ServerPort), cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatalf("Server forced to shutdown: %v", err)
	}

	sqlDB, err := db.DB()
	if err == nil {
		sqlDB.Close()
	}

	appLogger.Info("Server exited properly")
}

func setupRouter(cfg *config.AppConfig, db *gorm.DB, appLogger *logrus.Logger) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(logger.GinLogger(appLogger))
	router.Use(gin.Recovery())

	apiRouter := api.NewRouter(db, cfg)
	apiRouter.Setup(router.Group(""))

	return router
}
