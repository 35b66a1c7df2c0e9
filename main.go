package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ziado0/kvoter-app/cliparse"
	"github.com/ziado0/kvoter-app/db"
	"github.com/ziado0/kvoter-app/events"
	"github.com/ziado0/kvoter-app/leaderboard"
	"github.com/ziado0/kvoter-app/ledger"
	"github.com/ziado0/kvoter-app/metrics"
	"github.com/ziado0/kvoter-app/middleware"
	"github.com/ziado0/kvoter-app/router"
)

func main() {
	// Local development reads secrets from .env; absent in production
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	policy, err := ledger.ParsePolicy(cfg.PeriodPolicy)
	if err != nil {
		slog.Error("invalid period policy", "error", err)
		os.Exit(1)
	}

	// Optional collaborators
	var publisher events.Publisher = events.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		slog.Info("Vote event stream enabled", "topic", cfg.KafkaTopic)
	}
	defer publisher.Close()

	var cache leaderboard.Cache = leaderboard.NopCache{}
	if cfg.RedisURL != "" {
		rc, err := leaderboard.NewRedisCache(context.Background(), cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			slog.Error("redis connection failed", "error", err)
			os.Exit(1)
		}
		cache = rc
		slog.Info("Leaderboard cache enabled", "ttl", cfg.CacheTTL)
	}
	defer cache.Close()

	// Create router
	mux := router.NewRouter(router.Deps{
		DB:        dbConn,
		Cfg:       cfg,
		Ledger:    ledger.New(dbConn, policy),
		Cache:     cache,
		Publisher: publisher,
		Metrics:   metrics.New(prometheus.DefaultRegisterer),
	})

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "policy", cfg.PeriodPolicy)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
