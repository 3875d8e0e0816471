package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/LovationAdmin/calc-api/config"
	"github.com/LovationAdmin/calc-api/handlers"
	"github.com/LovationAdmin/calc-api/routes"
	"github.com/LovationAdmin/calc-api/services"
	"github.com/LovationAdmin/calc-api/utils"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	registry := services.NewRegistry()
	wsHandler := handlers.NewWSHandler(registry, cfg)
	router := routes.NewRouter(cfg, registry, wsHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	utils.LogStartup("calc-api", routes.Version, cfg.Port)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Fatal("Failed to start server: ", err)
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	// Hijacked websocket connections are not tracked by Shutdown
	if err := wsHandler.Close(); err != nil {
		log.Printf("⚠️ Error closing websocket sessions: %v", err)
	}
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("❌ Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
