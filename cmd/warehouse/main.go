package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	_ "github.com/tair/warehouse/docs"
	"github.com/tair/warehouse/internal/app"
	"github.com/tair/warehouse/internal/config"
	"github.com/tair/warehouse/internal/order/idempotency"
	ordercommand "github.com/tair/warehouse/internal/order/usecase/command"
	"github.com/tair/warehouse/internal/store"
	"github.com/tair/warehouse/kafka"
	"github.com/tair/warehouse/pkg/database"
	"github.com/tair/warehouse/pkg/grpcserver"
	"github.com/tair/warehouse/pkg/logger"
	"github.com/tair/warehouse/pkg/tracing"
)

const healthRefreshInterval = 15 * time.Second

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		logger.Init("warehouse", true)
		logger.Logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	logger.Init(cfg.ServiceName, cfg.IsDevelopment())
	logger.SetLevel(cfg.LogLevel)

	logger.Logger.Info().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Str("store", cfg.StoreDriver).
		Msg("Starting warehouse service")

	// Initialize tracer
	tp, err := tracing.InitTracer(cfg.ServiceName, cfg.JaegerEndpoint)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Failed to initialize tracer, continuing without tracing")
	} else {
		defer tracing.Shutdown(context.Background(), tp)
	}

	s, closeStore := openStore(cfg)
	defer closeStore()

	var guard ordercommand.IdempotencyGuard
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		defer client.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := client.Ping(pingCtx).Err(); err != nil {
			logger.Logger.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("Failed to connect to Redis")
		}
		cancel()

		guard = idempotency.NewRedisGuard(client, cfg.IdempotencyTTL)
		logger.Logger.Info().Str("addr", cfg.RedisAddr).Msg("Pick idempotency enabled")
	}

	var publisher ordercommand.PickPublisher
	if len(cfg.KafkaBrokers) > 0 {
		p, err := kafka.NewPublisher(cfg.KafkaBrokers)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka publisher")
		}
		defer p.Close()
		publisher = p
	}

	// Initialize application with Wire DI
	application, err := app.InitializeApp(cfg, s, guard, publisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize application")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.SeedInventory {
		if err := application.Seed(ctx); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to seed inventory")
		}
	}

	if len(cfg.KafkaBrokers) > 0 {
		consumer, err := kafka.NewConsumer(cfg.KafkaBrokers, cfg.KafkaGroupID, []string{kafka.TopicStockReceived})
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka consumer")
		}
		defer consumer.Close()

		application.Stock.Register(consumer)
		go consumer.Start(ctx)
	}

	grpcServer := startGRPCServer(ctx, s, cfg.GRPCPort)
	httpServer := startHTTPServer(application, cfg.HTTPPort)

	<-ctx.Done()
	logger.Logger.Info().Msg("Shutting down servers...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}
	grpcServer.Stop()

	logger.Logger.Info().Msg("Warehouse service stopped")
}

// openStore returns the configured store and a function releasing its resources
func openStore(cfg *config.Config) (store.Store, func()) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		logger.Logger.Warn().Msg("Using in-memory store, data is lost on restart")
		return store.NewMemoryStore(), func() {}
	}

	db, err := database.NewGormConnection(cfg.Database)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}

	s := store.NewGormStore(db)
	if err := s.AutoMigrate(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")
	return s, func() { sqlDB.Close() }
}

func startGRPCServer(ctx context.Context, pinger grpcserver.Pinger, port string) *grpcserver.Server {
	lis, err := net.Listen("tcp", ":"+port)
	if err != nil {
		logger.Logger.Fatal().Err(err).Str("port", port).Msg("Failed to listen for gRPC")
	}

	server := grpcserver.New(pinger)
	go func() {
		if err := server.Serve(lis); err != nil {
			logger.Logger.Error().Err(err).Msg("gRPC server stopped")
		}
	}()

	go func() {
		ticker := time.NewTicker(healthRefreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				server.Refresh(ctx)
			}
		}
	}()

	return server
}

func startHTTPServer(application *app.App, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           application.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Logger.Info().
		Str("port", port).
		Str("metrics_endpoint", "/metrics").
		Str("swagger", "/swagger/index.html").
		Msg("HTTP server started")

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	return server
}
