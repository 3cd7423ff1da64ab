package shared

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv         string
	LogLevel       string
	HTTPAddr       string
	MetricsAddr    string
	APIOrigin      string
	APIRPS         int
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	SnapshotTTL    time.Duration
	RequestTimeout time.Duration
	Auth           AuthConfig
}

// AuthConfig drives the token cookie and the auth redirects.
type AuthConfig struct {
	CookieName     string
	TokenDays      int
	CheckExpiry    bool
	LoginRedirect  string
	LogoutRedirect string
}

// Load reads an optional .env file, then the environment. Missing or
// malformed values fall back to defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg(".env load failed")
	}

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		LogLevel:       env("LOG_LEVEL", "info"),
		HTTPAddr:       env("HTTP_ADDR", ":8080"),
		MetricsAddr:    env("METRICS_ADDR", ""),
		APIOrigin:      strings.TrimRight(env("API_ORIGIN", "http://localhost:5000"), "/"),
		APIRPS:         atoi("API_RPS", 0),
		RedisAddr:      env("REDIS_ADDR", ""),
		RedisPass:      env("REDIS_PASSWORD", ""),
		RedisDB:        atoi("REDIS_DB", 0),
		SnapshotTTL:    time.Duration(atoi("SNAPSHOT_TTL_SECONDS", 900)) * time.Second,
		RequestTimeout: time.Duration(atoi("REQUEST_TIMEOUT_SECONDS", 15)) * time.Second,
		Auth: AuthConfig{
			CookieName:     env("AUTH_COOKIE_NAME", "token"),
			TokenDays:      atoi("AUTH_TOKEN_DAYS", 1),
			CheckExpiry:    boolEnv("AUTH_CHECK_EXPIRY", false),
			LoginRedirect:  DefaultAuth().LoginRedirect,
			LogoutRedirect: DefaultAuth().LogoutRedirect,
		},
	}
	if c.Auth.TokenDays <= 0 {
		log.Warn().Int("days", c.Auth.TokenDays).Msg("AUTH_TOKEN_DAYS must be positive, using 1")
		c.Auth.TokenDays = 1
	}
	if c.RedisAddr == "" {
		log.Info().Msg("REDIS_ADDR is empty, places snapshots kept in process")
	}
	return c
}

// DefaultAuth is the stock cookie and redirect setup.
func DefaultAuth() AuthConfig {
	return AuthConfig{
		CookieName:     "token",
		TokenDays:      1,
		LoginRedirect:  "/login",
		LogoutRedirect: "/",
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func boolEnv(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
