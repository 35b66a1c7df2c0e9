package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ziado0/kvoter-app/models"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	PeriodPolicy string

	// Secrets
	AdminKey            string
	IdentityTokenSecret string

	// Optional collaborators
	KafkaBrokers []string
	KafkaTopic   string
	RedisURL     string
	CacheTTL     time.Duration
}

// ParseFlags validates flags and applies environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var brokers string
	var cacheTTLSeconds int

	fs := flag.NewFlagSet("kvoter", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.PeriodPolicy, "period-policy", "", "Voting period policy (account or account-daily)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKey, "admin-key", "", "Admin key for candidate seeding (prefer env)")
	fs.StringVar(&cfg.IdentityTokenSecret, "identity-secret", "", "Identity token HMAC secret (prefer env)")

	// Optional collaborators
	fs.StringVar(&brokers, "kafka-brokers", "", "Comma-separated Kafka brokers for vote events")
	fs.StringVar(&cfg.KafkaTopic, "kafka-topic", "", "Kafka topic for vote events")
	fs.StringVar(&cfg.RedisURL, "redis-url", "", "Redis URL for leaderboard caching")
	fs.IntVar(&cacheTTLSeconds, "cache-ttl", 0, "Leaderboard cache TTL in seconds")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8090 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, fmt.Errorf("unsupported database type %q (want sqlite or postgres)", cfg.DatabaseType)
	}

	if cfg.PeriodPolicy == "" {
		cfg.PeriodPolicy = os.Getenv("PERIOD_POLICY")
		if cfg.PeriodPolicy == "" {
			cfg.PeriodPolicy = models.PolicyAccountDaily
		}
	}
	if cfg.PeriodPolicy != models.PolicyAccount && cfg.PeriodPolicy != models.PolicyAccountDaily {
		return Config{}, fmt.Errorf("unsupported period policy %q (want %s or %s)",
			cfg.PeriodPolicy, models.PolicyAccount, models.PolicyAccountDaily)
	}

	// Secrets - MUST be provided
	if cfg.AdminKey == "" {
		cfg.AdminKey = os.Getenv("ADMIN_KEY")
	}
	if cfg.AdminKey == "" {
		return Config{}, errors.New("ADMIN_KEY required")
	}

	if cfg.IdentityTokenSecret == "" {
		cfg.IdentityTokenSecret = os.Getenv("IDENTITY_TOKEN_SECRET")
	}
	if cfg.IdentityTokenSecret == "" {
		return Config{}, errors.New("IDENTITY_TOKEN_SECRET required")
	}

	// Optional collaborators - absent means the nop implementation is used
	if brokers == "" {
		brokers = os.Getenv("KAFKA_BROKERS")
	}
	if brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	if cfg.KafkaTopic == "" {
		cfg.KafkaTopic = os.Getenv("KAFKA_TOPIC")
		if cfg.KafkaTopic == "" {
			cfg.KafkaTopic = "kvoter.votes"
		}
	}

	if cfg.RedisURL == "" {
		cfg.RedisURL = os.Getenv("REDIS_URL")
	}

	if cacheTTLSeconds == 0 {
		if ttlStr := os.Getenv("CACHE_TTL_SECONDS"); ttlStr != "" {
			ttl, err := strconv.Atoi(ttlStr)
			if err != nil {
				return Config{}, errors.New("invalid CACHE_TTL_SECONDS env variable")
			}
			cacheTTLSeconds = ttl
		} else {
			cacheTTLSeconds = 2 // default
		}
	}
	cfg.CacheTTL = time.Duration(cacheTTLSeconds) * time.Second

	return cfg, nil
}
