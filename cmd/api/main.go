package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fulfillment-admin/internal/core/cache"
	"fulfillment-admin/internal/core/config"
	"fulfillment-admin/internal/core/httpclient"
	"fulfillment-admin/internal/core/logger"
	"fulfillment-admin/internal/core/server"
	orderadapter "fulfillment-admin/internal/features/orders/adapters"
	orderhandler "fulfillment-admin/internal/features/orders/handler"
	orderservice "fulfillment-admin/internal/features/orders/service"
	trackingadapter "fulfillment-admin/internal/features/tracking/adapters"
	trackinghandler "fulfillment-admin/internal/features/tracking/handler"
	trackingservice "fulfillment-admin/internal/features/tracking/service"

	"go.uber.org/zap"
)

// @title Fulfillment Admin API
// @version 1.0
// @description Order fulfillment tracking workflow for the admin console.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	store, err := cache.New(cfg.Cache.RedisURL)
	if err != nil {
		l.Fatal("Failed to connect to cache", zap.Error(err))
	}
	defer store.Close()

	httpClient := httpclient.NewClient(cfg.Remote.Timeout(), cfg.Proxy.Settings())
	api := httpclient.NewAPIClient(cfg.Remote.URL, cfg.Remote.Token, httpClient, cfg.Remote.RateLimit, cfg.Remote.RateBurst)

	// Orders
	orderAdapter := orderadapter.NewRemoteOrderAdapter(api)
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), cfg.Remote.Timeout())
	if err := orderAdapter.HealthCheck(startupCtx); err != nil {
		l.Fatal("Remote API Health Check Failed", zap.Error(err))
	}
	cancelStartup()
	l.Info("Remote API connection verified")

	orderService := orderservice.NewOrderService(orderAdapter, store, cfg.Cache.TTL())
	orderHdl := orderhandler.NewOrderHandler(orderService)

	// Tracking
	gateway := trackingadapter.NewRemoteTrackingGateway(api)
	trackingStore := trackingadapter.NewCacheTrackingStore(store, cfg.Cache.TTL())
	workflow := trackingservice.NewWorkflowService(orderService, gateway, trackingStore)
	trackingHdl := trackinghandler.NewTrackingHandler(workflow)

	srv := server.New(cfg)
	srv.RegisterHealth(map[string]server.HealthCheck{
		"cache":  store.Ping,
		"remote": orderService.HealthCheck,
	})

	// Register Routes
	srv.App.Get("/orders/:id", orderHdl.GetOrder)
	srv.App.Get("/orders/:id/tracking", trackingHdl.GetTracking)
	srv.App.Post("/orders/:id/tracking", trackingHdl.CreateTracking)
	srv.App.Post("/orders/:id/tracking/decisions", trackingHdl.ProposeStatus)
	srv.App.Patch("/orders/:id/tracking/status", trackingHdl.UpdateStatus)
	srv.App.Post("/orders/:id/tracking/reset", trackingHdl.ResetTracking)
	srv.App.Get("/tracking/statuses", trackingHdl.ListStatuses)

	go func() {
		if err := srv.Run(); err != nil {
			l.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		l.Error("Server shutdown failed", zap.Error(err))
	}
}
