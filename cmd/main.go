package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/roommate-service/internal/config"
	"github.com/sbilibin2017/roommate-service/internal/db"
	"github.com/sbilibin2017/roommate-service/internal/logger"
	"github.com/sbilibin2017/roommate-service/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title Roommate Service API
// @version 1.0.0
// @description Roommate marketplace: accounts, profiles, images and ads
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, database, Redis, the Kafka writer and the HTTP
// server, and blocks until ctx is done or a shutdown signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel, cfg.ProjectName); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	if cfg.SecretKeyGenerated() {
		logger.Log.Warn("SECRET_KEY is not set, using a random key: issued tokens will not survive a restart")
	}

	// Connect to PostgreSQL
	database, err := db.Open(ctx, db.Options{
		DSN:             cfg.DatabaseURL,
		MaxOpenConns:    cfg.DatabaseMaxOpenConns,
		MaxIdleConns:    cfg.DatabaseMaxIdleConns,
		ConnMaxLifetime: cfg.DatabaseConnMaxLifetime,
	})
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer database.Close()
	logger.Log.Info("Connected to PostgreSQL")

	if cfg.Debug {
		if err := db.CreateSchema(ctx, database); err != nil {
			return err
		}
		logger.Log.Info("Database schema created")
	}

	// Connect to Redis
	redisOpts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	rdb := redis.NewClient(redisOpts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()
	logger.Log.Infof("Connected to Redis at %s", redisOpts.Addr)

	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaUserEventsTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer func() {
			if err := w.Close(); err != nil {
				logger.Log.Errorw("failed to close Kafka writer", "error", err)
			}
		}()
		kafkaWriter = w
		logger.Log.Infof("Publishing user events to Kafka topic %s", cfg.KafkaUserEventsTopic)
	} else {
		logger.Log.Warn("KAFKA_BROKERS is empty, user events will not be published")
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newRouter(cfg, database, rdb, kafkaWriter),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
