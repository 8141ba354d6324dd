package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"zenvy-storefront/config"
	"zenvy-storefront/database"
	"zenvy-storefront/internal/api"
	"zenvy-storefront/internal/checkout"
	"zenvy-storefront/internal/inventory"
	"zenvy-storefront/internal/session"
	"zenvy-storefront/internal/store"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	// Initialize the session database
	db, err := database.Initialize(cfg.SessionDBPath)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Session cookies and their persisted records
	maxAge := time.Duration(cfg.SessionMaxAge) * time.Second
	manager := session.NewManager(session.NewSQLiteStore(db), cfg.SessionSecret, maxAge)

	// One runtime per browser session, evicted when idle
	scripts := checkout.NewScriptLoader()
	if cfg.CheckoutScriptURL != "" {
		scripts.URL = cfg.CheckoutScriptURL
	}
	registry := store.NewRegistry(cfg.APIBaseURL, manager, store.RuntimeOptions{
		Scripts:              scripts,
		Uploader:             inventory.NewUploader(),
		NotificationInterval: time.Duration(cfg.NotificationPollSecs) * time.Second,
		OrderPollInterval:    time.Duration(cfg.OrderPollSecs) * time.Second,
	})
	registry.StartEviction(
		time.Duration(cfg.SessionSweepSecs)*time.Second,
		time.Duration(cfg.SessionIdleTTL)*time.Second,
	)
	defer registry.StopEviction()

	router := api.SetupRouter(cfg, manager, registry)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Storefront gateway listening on port %s (%s)", cfg.Port, cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed:", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Forced shutdown:", err)
	}
	log.Println("Server stopped")
}
