package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/config"
	"storefront/db"
	"storefront/logger"
	"storefront/realtime"
	"storefront/repository"
	"storefront/routes"
	"storefront/usecases"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(2)
	}

	log, err := logger.New(cfg.LogLevel, cfg.IsDevelopment())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(2)
	}
	defer log.Sync()

	// Initialize database
	conn, err := db.Open(cfg.DatabasePath, log)
	if err != nil {
		log.Fatal("could not open database", zap.Error(err))
	}

	// Create uploads directory if it doesn't exist
	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		log.Fatal("could not create upload directory", zap.Error(err))
	}

	productRepo := repository.NewProductRepository(conn)
	categoryRepo := repository.NewProductCategoryRepository(conn)
	subcategoryRepo := repository.NewSubcategoryRepository(conn)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := realtime.NewHub(log)
	go hub.Run(ctx)

	app := routes.NewApp(routes.Dependencies{
		Products:    usecases.NewProductUseCases(productRepo, categoryRepo, subcategoryRepo, hub, cfg.PageLimitMax, log),
		Categories:  usecases.NewProductCategoryUseCases(categoryRepo, subcategoryRepo, productRepo, log),
		Events:      hub,
		UploadDir:   cfg.UploadDir,
		CORSOrigins: cfg.CORSOrigins,
		AccessLog:   true,
		Log:         log,
	})

	go func() {
		log.Info("starting http server", zap.String("addr", cfg.Addr))
		if err := app.Listen(cfg.Addr); err != nil {
			log.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	cancel()
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error("shutdown failed", zap.Error(err))
	}
	if sqlDB, err := conn.DB(); err == nil {
		sqlDB.Close()
	}
	log.Info("server stopped")
}
