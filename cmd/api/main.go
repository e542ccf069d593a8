package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jikgusignalstore/internal/client"
	"jikgusignalstore/internal/config"
	"jikgusignalstore/internal/logging"
	"jikgusignalstore/internal/payment"
	"jikgusignalstore/internal/repository"
	"jikgusignalstore/internal/server"
	"jikgusignalstore/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// A missing store disables the store-backed endpoints instead of
	// preventing startup; they answer with a configuration error.
	var db *gorm.DB
	if cfg.StoreConfigured() {
		db, err = client.InitDatabase(cfg.StoreDSN())
		if err != nil {
			logger.Fatal("database init", zap.Error(err))
		}
	} else {
		logger.Warn("DATABASE_URL or DATABASE_ROLE_KEY not set, store-backed endpoints disabled")
	}

	userRepo := repository.NewUserRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	cartRepo := repository.NewCartRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	webhookEventRepo := repository.NewWebhookEventRepository(db)

	if db != nil && cfg.Environment.Name == "development" {
		if err := productRepo.Seed(context.Background()); err != nil {
			logger.Warn("seed products", zap.Error(err))
		}
	}

	authorizer := payment.NewStubAuthorizer()

	checkoutService := service.NewCheckoutService(
		db, cfg.Checkout, authorizer,
		userRepo,
		addressRepo,
		cartRepo,
		orderRepo,
		logger,
	)
	statsService := service.NewStatsService(db, orderRepo, userRepo, productRepo, logger)
	webhookService := service.NewWebhookService(db, webhookEventRepo, logger)
	catalogService := service.NewCatalogService(db, productRepo)
	orderQueryService := service.NewOrderQueryService(db, orderRepo)

	srv := server.NewServer(
		logger,
		checkoutService,
		statsService,
		webhookService,
		catalogService,
		orderQueryService,
	)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	logger.Info("starting HTTP server", zap.String("addr", serverAddr))
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	logger.Info("signal received, starting graceful shutdown")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("HTTP server shutdown error", zap.Error(err))
	}
}
