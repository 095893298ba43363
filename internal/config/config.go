package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // DAY_BOUNDARY_TZ must resolve in minimal images

	"github.com/joho/godotenv"

	"github.com/osse101/TaskQuest_Go/internal/database"
)

// Config holds the application configuration
type Config struct {
	Port   int
	APIKey string // API key for authentication

	LogLevel    string
	LogFormat   string
	LogDir      string
	ServiceName string
	Version     string
	Environment string

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBSSLMode         string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// RedisAddr enables the Redis leaderboard; empty falls back to Postgres
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// DayBoundaryTZ is the IANA zone whose midnight separates streak days
	DayBoundaryTZ   string
	SeedCatalog     bool
	CatalogPath     string
	CatalogCacheTTL time.Duration

	RateLimitRPS   float64
	RateLimitBurst int
	// TrustedProxies are peers whose X-Forwarded-For header is believed
	TrustedProxies []string

	DeadLetterPath  string
	EventMaxRetries int
	EventRetryDelay time.Duration

	// ActivityLogRetentionDays of zero keeps the activity log forever
	ActivityLogRetentionDays int
	ActivityCleanupInterval  time.Duration
	// LeaderboardSyncInterval only applies to the Redis leaderboard
	LeaderboardSyncInterval time.Duration

	ShutdownTimeout time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:      getEnv("API_KEY", ""),
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		LogDir:      getEnv("LOG_DIR", ""),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", DefaultDBName),
		DBSSLMode:         getEnv("DB_SSLMODE", DefaultDBSSLMode),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		DayBoundaryTZ:   getEnv("DAY_BOUNDARY_TZ", DefaultDayBoundaryTZ),
		SeedCatalog:     getEnvAsBool("SEED_CATALOG", false),
		CatalogPath:     getEnv("CATALOG_PATH", ""),
		CatalogCacheTTL: getEnvAsDuration("CATALOG_CACHE_TTL", DefaultCatalogCacheTTL),

		RateLimitRPS:   getEnvAsFloat("RATE_LIMIT_RPS", DefaultRateLimitRPS),
		RateLimitBurst: getEnvAsInt("RATE_LIMIT_BURST", DefaultRateLimitBurst),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),

		DeadLetterPath:  getEnv("DEAD_LETTER_PATH", DefaultDeadLetterPath),
		EventMaxRetries: getEnvAsInt("EVENT_MAX_RETRIES", DefaultEventMaxRetries),
		EventRetryDelay: getEnvAsDuration("EVENT_RETRY_DELAY", DefaultEventRetryDelay),

		ActivityLogRetentionDays: getEnvAsInt("ACTIVITY_LOG_RETENTION_DAYS", DefaultActivityLogRetentionDays),
		ActivityCleanupInterval:  getEnvAsDuration("ACTIVITY_CLEANUP_INTERVAL", DefaultActivityCleanupInterval),
		LeaderboardSyncInterval:  getEnvAsDuration("LEADERBOARD_SYNC_INTERVAL", DefaultLeaderboardSyncInterval),

		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
	}

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if _, err := time.LoadLocation(cfg.DayBoundaryTZ); err != nil {
		return nil, fmt.Errorf("invalid DAY_BOUNDARY_TZ value: %w", err)
	}

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// Location returns the day-boundary time zone. Load has already validated it.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.DayBoundaryTZ)
	if err != nil {
		return time.UTC
	}
	return loc
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	sslMode := c.DBSSLMode
	if sslMode == "" {
		sslMode = DefaultDBSSLMode
	}
	return database.ConnString(c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, sslMode)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvAsInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}
