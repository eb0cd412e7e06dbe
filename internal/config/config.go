package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Supported token signing algorithms.
var supportedAlgorithms = map[string]struct{}{
	"HS256": {},
	"HS384": {},
	"HS512": {},
}

// Config holds every externally supplied setting of the service.
// It is built once at startup and passed by reference to the components that need it.
type Config struct {
	// Application
	AppHost  string
	AppPort  string
	LogLevel string

	// PostgreSQL
	PostgresHost         string
	PostgresPort         int
	PostgresUser         string
	PostgresPassword     string
	PostgresDB           string
	PostgresMaxOpenConns int
	PostgresMaxIdleConns int

	// Tokens
	SecretKey         string
	Algorithm         string
	AccessTokenExpire time.Duration

	// Bootstrap admin, checked only at registration time
	AdminEmail    string
	AdminPassword string

	BcryptCost int

	// Recipe events; publishing is disabled when no brokers are set
	KafkaBrokers []string
	KafkaTopic   string
}

// Parse loads environment variables from the file at path (if present)
// and builds a Config from the environment, falling back to defaults.
func Parse(path string) (*Config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %w", key, err)
		}
		return v, nil
	}

	cfg := &Config{}
	var err error

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PostgresHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PostgresUser = getEnv("POSTGRES_USER", "user")
	cfg.PostgresPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PostgresDB = getEnv("POSTGRES_DB", "database")
	if cfg.PostgresPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return nil, err
	}
	if cfg.PostgresMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return nil, err
	}
	if cfg.PostgresMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return nil, err
	}

	// Token config
	cfg.SecretKey = getEnv("SECRET_KEY", "")
	if cfg.SecretKey == "" {
		return nil, errors.New("SECRET_KEY must be set")
	}
	cfg.Algorithm = strings.ToUpper(getEnv("ALGORITHM", "HS256"))
	if _, ok := supportedAlgorithms[cfg.Algorithm]; !ok {
		return nil, fmt.Errorf("unsupported ALGORITHM %q", cfg.Algorithm)
	}
	expMinutes, err := getInt("ACCESS_TOKEN_EXPIRE_MINUTES", "15")
	if err != nil {
		return nil, err
	}
	if expMinutes <= 0 {
		return nil, fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be positive, got %d", expMinutes)
	}
	cfg.AccessTokenExpire = time.Duration(expMinutes) * time.Minute

	// Bootstrap admin
	cfg.AdminEmail = getEnv("ADMIN_EMAIL", "")
	cfg.AdminPassword = getEnv("ADMIN_PASSWORD", "")

	if cfg.BcryptCost, err = getInt("BCRYPT_COST", "10"); err != nil {
		return nil, err
	}

	// Kafka config
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "recipe-events")

	return cfg, nil
}

// PostgresDSN returns the connection string for the pgx driver.
// Credentials are escaped.
func (c *Config) PostgresDSN() string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUser, c.PostgresPassword),
		Host:     net.JoinHostPort(c.PostgresHost, strconv.Itoa(c.PostgresPort)),
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=disable",
	}
	return dsn.String()
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}
