package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Majormiles/job-portal-sub004/internal/config"
	"github.com/Majormiles/job-portal-sub004/internal/data"
	"github.com/Majormiles/job-portal-sub004/internal/db"
	"github.com/Majormiles/job-portal-sub004/internal/gateway"
	"github.com/Majormiles/job-portal-sub004/internal/handler"
	"github.com/Majormiles/job-portal-sub004/internal/metrics"
	"github.com/Majormiles/job-portal-sub004/internal/service"
	"github.com/Majormiles/job-portal-sub004/pkg/logging"
)

func main() {
	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}

	logger := logging.New(zapLogger)

	ctx = logging.ContextWithLogger(ctx, logger)

	cfg, err := config.New()
	if err != nil {
		logger.Fatal(ctx, "cannot create config", zap.Error(err))
	}
	logger.Info(ctx, "created config")

	metrics.Register()

	database, err := db.New(ctx, cfg)
	if err != nil {
		logger.Fatal(ctx, "cannot create db", zap.Error(err))
	}
	defer database.Close()
	logger.Info(ctx, "connected db")

	feeRepo := data.NewFeeScheduleRepository(database)
	paymentRepo := data.NewUserPaymentRepository(database)

	feeService := service.NewFeeService(feeRepo, cfg.RetryBaseDelay)
	reconciler := service.NewReconciler(paymentRepo, feeService, logger, cfg.ReconcileWorkerCount)

	consumer := gateway.NewConsumer(cfg.KafkaBrokers, cfg.KafkaTopic, cfg.KafkaGroupID, reconciler, logger)
	defer func() { _ = consumer.Close() }()
	go consumer.Run(ctx)

	adminServer := handler.NewAdminServer(feeService, reconciler)

	router := chi.NewRouter()
	router.Use(logging.NewHTTPLoggingMiddleware(logger))
	adminServer.Register(router)
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: router,
	}

	logger.Info(ctx, "Starting HTTP server...", zap.Int("port", cfg.HTTPPort))
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal(ctx, "failed to serve", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "http shutdown failed", zap.Error(err))
	}
	logger.Info(ctx, "Server Stopped")
}
