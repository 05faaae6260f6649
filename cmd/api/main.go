package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"jobportal/internal/config"
	"jobportal/internal/database"
	"jobportal/internal/handlers"
	"jobportal/internal/services"
)

func main() {
	// 1. Environment & configuration
	_ = godotenv.Load()
	cfg := config.Load()

	// 2. Database connection (creates missing tables)
	db := database.Connect(cfg.DatabasePath)

	// 3. Core services
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db)
	notificationService := services.NewNotificationService(db)

	// 4. Router with all routes wired
	router := handlers.NewRouter(cfg.SessionSecret, jobService, applicationService, notificationService)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infof("Server starting on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Shutdown: %v", err)
	}
}
