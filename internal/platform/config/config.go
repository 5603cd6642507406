// Package config reads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Lock modes for CLAIM_KEY_LOCK.
const (
	LockNone   = "none"
	LockMemory = "memory"
	LockRedis  = "redis"
)

// Config is the full process configuration.
type Config struct {
	Server   Server
	Log      Log
	Database Database
	Redis    RedisConfig
	Kafka    Kafka
	PixKey   PixKey
	Claims   Claims
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// Log selects the slog handler.
type Log struct {
	Level  string
	Format string
}

// Database configures Postgres. An empty URL selects the in-memory stores.
type Database struct {
	URL          string
	MaxOpenConns int
}

// RedisConfig configures the shared Redis client. An empty URL disables Redis.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Kafka configures topic ingestion. No brokers disables the consumer.
type Kafka struct {
	Brokers     []string
	Topic       string
	Group       string
	CreateTopic bool
}

// PixKey configures the Pix-key service client.
type PixKey struct {
	URL         string
	Timeout     time.Duration
	JWTKey      string
	JWTIssuer   string
	JWTAudience string

	// BreakerFailures of zero disables the circuit breaker.
	BreakerFailures int
	BreakerCooldown time.Duration
}

// Claims configures the pipeline itself.
type Claims struct {
	ReconciliationEnabled bool
	KeyLock               string
	KeyLockTTL            time.Duration
	KeyLockWait           time.Duration
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() (Config, error) {
	p := &parser{}
	cfg := Config{
		Server: Server{
			Addr:            getEnv("PIXCLAIM_ADDR", ":8080"),
			ShutdownTimeout: p.duration("PIXCLAIM_SHUTDOWN_TIMEOUT", 15*time.Second),
		},
		Log: Log{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Database: Database{
			URL:          os.Getenv("DATABASE_URL"),
			MaxOpenConns: p.int("DATABASE_MAX_OPEN_CONNS", 20),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     p.int("REDIS_POOL_SIZE", 10),
			MinIdleConns: p.int("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  p.duration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  p.duration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: p.duration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Kafka: Kafka{
			Brokers:     splitList(os.Getenv("KAFKA_BROKERS")),
			Topic:       getEnv("KAFKA_CLAIM_TOPIC", "pix.claims.notifications"),
			Group:       getEnv("KAFKA_CONSUMER_GROUP", "pixclaim"),
			CreateTopic: p.bool("KAFKA_CREATE_TOPIC", false),
		},
		PixKey: PixKey{
			URL:         os.Getenv("PIXKEY_SERVICE_URL"),
			Timeout:     p.duration("PIXKEY_SERVICE_TIMEOUT", 5*time.Second),
			JWTKey:      os.Getenv("PIXKEY_SERVICE_JWT_KEY"),
			JWTIssuer:   getEnv("PIXKEY_SERVICE_JWT_ISSUER", "pixclaim"),
			JWTAudience: getEnv("PIXKEY_SERVICE_AUDIENCE", "pix-key-service"),

			BreakerFailures: p.int("PIXKEY_BREAKER_FAILURES", 5),
			BreakerCooldown: p.duration("PIXKEY_BREAKER_COOLDOWN", 10*time.Second),
		},
		Claims: Claims{
			ReconciliationEnabled: p.bool("CLAIM_RECONCILIATION_ENABLED", true),
			KeyLock:               strings.ToLower(getEnv("CLAIM_KEY_LOCK", LockMemory)),
			KeyLockTTL:            p.duration("CLAIM_KEY_LOCK_TTL", 30*time.Second),
			KeyLockWait:           p.duration("CLAIM_KEY_LOCK_WAIT", 5*time.Second),
		},
	}
	if err := errors.Join(p.errs...); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field rules.
func (c Config) Validate() error {
	var errs []error
	if c.PixKey.URL == "" {
		errs = append(errs, errors.New("PIXKEY_SERVICE_URL is required"))
	}
	switch c.Claims.KeyLock {
	case LockNone, LockMemory:
	case LockRedis:
		if c.Redis.URL == "" {
			errs = append(errs, errors.New("CLAIM_KEY_LOCK=redis requires REDIS_URL"))
		}
	default:
		errs = append(errs, fmt.Errorf("CLAIM_KEY_LOCK must be none, memory or redis, got %q", c.Claims.KeyLock))
	}
	if len(c.Kafka.Brokers) > 0 && c.Kafka.Topic == "" {
		errs = append(errs, errors.New("KAFKA_CLAIM_TOPIC is required when KAFKA_BROKERS is set"))
	}
	return errors.Join(errs...)
}

func getEnv(name, def string) string {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v
	}
	return def
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parser collects every malformed variable instead of stopping at the first.
type parser struct {
	errs []error
}

func (p *parser) duration(name string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		p.errs = append(p.errs, fmt.Errorf("%s: invalid duration %q", name, raw))
		return def
	}
	return d
}

func (p *parser) int(name string, def int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		p.errs = append(p.errs, fmt.Errorf("%s: invalid integer %q", name, raw))
		return def
	}
	return n
}

func (p *parser) bool(name string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return def
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: invalid boolean %q", name, raw))
		return def
	}
	return b
}
