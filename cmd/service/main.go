package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pressdesk/config"
	"pressdesk/internal/producer"
	"pressdesk/internal/repository"
	"pressdesk/internal/service"
	htransport "pressdesk/internal/transport/http"
	"pressdesk/pkg/database"
	"pressdesk/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}

	defer logger.Sync()

	log := logger.L()

	cfg := config.Load(log)
	db := database.ConnectDB(&cfg.DB.Config, log)
	defer database.CloseDB(db, log)

	repos := repository.New(db)

	// Event bus is optional: without brokers the ledger events stay local
	var events service.EventBus
	if len(cfg.KafkaBrokers) > 0 && cfg.KafkaTopic != "" {
		ledgerProducer := producer.NewLedgerProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer ledgerProducer.Close()
		events = ledgerProducer
	}

	orders := service.NewOrderService(repos, events)
	directory := service.NewDirectoryService(repos)
	ledger := service.NewLedgerService(repos, events)

	router := htransport.Router(orders, directory, ledger, log)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("starting pressdesk HTTP server", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-quit
	log.Info("shutting down pressdesk HTTP server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	log.Info("pressdesk HTTP server stopped gracefully")
}
