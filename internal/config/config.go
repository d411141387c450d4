package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the configuration settings for the accessible-venue finder.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - Port: The port for the monitoring (healthz/metrics) server.
// - APIAddr: The listen address for the JSON API consumed by the chat front-end.
// - ProviderType: The geocoding provider to use (nominatim, google).
// - APIKey: The API key for the geocoding provider (required for Google).
// - CityHint: Suffix appended to free-text queries to pin them to the target city.
// - CountryCodes: Country restriction passed to the place-name search index.
// - RadiusMeters: Search radius around the resolved origin point.
// - ResultLimit: Maximum number of venues returned per search.
// - EnrichWorkers: Concurrency bound for per-venue address enrichment.
// - SessionBackend: Session store backend (memory, redis, postgres).
// - SessionTTL: Lifetime of a stored session in the redis backend.
// - RedisAddr: Redis server address for the redis session backend.
// - Database: PostgreSQL settings for the postgres session backend.
type Config struct {
	Env            string
	Port           int
	APIAddr        string
	ProviderType   string
	APIKey         string
	CityHint       string
	CountryCodes   string
	RadiusMeters   int
	ResultLimit    int
	EnrichWorkers  int
	SessionBackend string
	SessionTTL     time.Duration
	RedisAddr      string
	Database       PostgresConfig
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string // Host is the database server address.
	Port     string // Port is the database server port.
	User     string // User is the database user.
	Password string // Password is the database user's password.
	Name     string // Name is the name of the database.
}

// MustLoad loads the configuration from environment variables and returns a Config struct.
// It panics with a clear message when a numeric or duration value cannot be parsed.
func MustLoad() *Config {
	_ = godotenv.Load()

	healthPort, err := strconv.Atoi(setDefaultEnv("FINDER_HEALTH_PORT", "8081"))
	if err != nil {
		panic("failed to parse port for monitoring server from configuration")
	}

	radius, err := strconv.Atoi(setDefaultEnv("FINDER_RADIUS_METERS", "5000"))
	if err != nil {
		panic("failed to parse search radius from configuration, must be an integer")
	}

	limit, err := strconv.Atoi(setDefaultEnv("FINDER_RESULT_LIMIT", "5"))
	if err != nil {
		panic("failed to parse result limit from configuration, must be an integer")
	}

	workers, err := strconv.Atoi(setDefaultEnv("FINDER_ENRICH_WORKERS", "5"))
	if err != nil {
		panic("failed to parse enrichment workers from configuration, must be an integer")
	}

	sessionTTL, err := time.ParseDuration(setDefaultEnv("FINDER_SESSION_TTL", "24h"))
	if err != nil {
		panic("failed to parse session TTL from configuration")
	}

	return &Config{
		Env:            setDefaultEnv("FINDER_ENV", "production"),
		Port:           healthPort,
		APIAddr:        setDefaultEnv("FINDER_API_ADDR", ":8080"),
		ProviderType:   setDefaultEnv("FINDER_PROVIDER_TYPE", "nominatim"),
		APIKey:         os.Getenv("FINDER_PROVIDER_KEY"),
		CityHint:       setDefaultEnv("FINDER_CITY_HINT", "Москва, Россия"),
		CountryCodes:   setDefaultEnv("FINDER_COUNTRY_CODES", "ru"),
		RadiusMeters:   radius,
		ResultLimit:    limit,
		EnrichWorkers:  workers,
		SessionBackend: setDefaultEnv("FINDER_SESSION_BACKEND", "memory"),
		SessionTTL:     sessionTTL,
		RedisAddr:      setDefaultEnv("FINDER_REDIS_ADDR", "localhost:6379"),
		Database: PostgresConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     os.Getenv("DB_PORT"),
			User:     os.Getenv("DB_USERNAME"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
		},
	}
}

func setDefaultEnv(key, override string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		value = override
	}

	return value
}
