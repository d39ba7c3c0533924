// cmd/stubapi/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/your-org/storefront-client/internal/config"
	"github.com/your-org/storefront-client/internal/domain/catalog"
	"github.com/your-org/storefront-client/internal/interfaces/http"
	"github.com/your-org/storefront-client/internal/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog := logger.New(cfg)
	appLog.Infof("🚀 Starting %s stub API v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Seed a small catalog and script the payment to resolve on the
	// second status lookup.
	store := http.NewStore(seedProducts(), "PENDING", "SUCCESS")
	server := http.NewServer(cfg, appLog, store)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLog.Info("👋 Shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		appLog.Errorf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	appLog.Info("✅ Server shutdown completed")
}

func seedProducts() []catalog.Product {
	return []catalog.Product{
		{ID: 1, Name: "Mechanical Keyboard", Description: "Hot-swappable 75% board", Picture: "/images/keyboard.png", Price: 32000000, Stock: 12, WeightGrams: 950, TrackStock: true},
		{ID: 2, Name: "Wireless Mouse", Description: "Low-latency 2.4GHz mouse", Picture: "/images/mouse.png", Price: 9500000, Stock: 30, WeightGrams: 120, TrackStock: true},
		{ID: 3, Name: "USB-C Hub", Description: "7-in-1 aluminium hub", Picture: "/images/hub.png", Price: 14900000, Stock: 8, WeightGrams: 85, TrackStock: true},
		{ID: 4, Name: "Laptop Stand", Description: "Foldable ergonomic stand", Picture: "/images/stand.png", Price: 11000000, Stock: 5, WeightGrams: 540, TrackStock: true},
	}
}
