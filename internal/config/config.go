package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	defaultPort         = "3000"
	defaultSQLitePath   = "/tmp/test.db"
	defaultUserID       = "1"
	defaultCORSOrigins  = "*"
	defaultServiceName  = "starwars-api"
	defaultAppEnv       = "dev"
	minJWTSecretLenProd = 32
)

type Config struct {
	AppEnv      string
	ServiceName string
	Port        int
	// DatabaseURL is a postgres URL or an SQLite path.
	DatabaseURL   string
	DefaultUserID int64
	// JWTSecret enables bearer-token identity when non-empty.
	JWTSecret          string
	CORSAllowedOrigins []string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = defaultAppEnv
	}
	cfg.AppEnv = strings.ToLower(appEnv)
	cfg.ServiceName = strings.TrimSpace(getEnv("SERVICE_NAME", defaultServiceName))

	var err error
	cfg.Port, err = parseIntEnv("PORT", defaultPort)
	if err != nil {
		return nil, err
	}

	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = strings.TrimSpace(getEnv("SQLITE_PATH", defaultSQLitePath))
	}

	userID, err := parseIntEnv("DEFAULT_USER_ID", defaultUserID)
	if err != nil {
		return nil, err
	}
	cfg.DefaultUserID = int64(userID)

	cfg.JWTSecret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	cfg.CORSAllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", defaultCORSOrigins))

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return isProdLike(c.AppEnv)
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func validateConfig(cfg *Config) error {
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}
	if cfg.DefaultUserID <= 0 {
		return fmt.Errorf("DEFAULT_USER_ID must be > 0")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL or SQLITE_PATH must be set")
	}
	if isProdLike(cfg.AppEnv) && cfg.JWTSecret != "" && len(cfg.JWTSecret) < minJWTSecretLenProd {
		return fmt.Errorf("in prod/release JWT_SECRET must be at least %d characters", minJWTSecretLenProd)
	}
	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func parseIntEnv(name, fallback string) (int, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
