package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env         string
	LogLevel    string
	ListenAddr  string
	BackendURL  string
	AuthURL     string
	HTTPTimeout time.Duration
	Profile     string

	Redis    RedisConfig
	Database DatabaseConfig
}

type RedisConfig struct {
	Enabled       bool
	Addr          string
	Password      string
	DB            int
	EventCacheTTL time.Duration
}

type DatabaseConfig struct {
	Enabled  bool
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// Load reads .env (when present) and then the environment.
func Load() *Config {
	_ = godotenv.Load()

	backendURL := getEnv("BACKEND_URL", "http://localhost:8080")

	return &Config{
		Env:         getEnv("APP_ENV", "dev"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		ListenAddr:  getEnv("LISTEN_ADDR", "127.0.0.1:8090"),
		BackendURL:  backendURL,
		AuthURL:     getEnv("AUTH_URL", backendURL),
		HTTPTimeout: getDuration("HTTP_TIMEOUT", 15*time.Second),
		Profile:     getEnv("PROFILE", ""),
		Redis: RedisConfig{
			Enabled:       getBool("REDIS_ENABLED", true),
			Addr:          redisAddr(),
			Password:      getEnv("REDIS_PASSWORD", ""),
			DB:            getInt("REDIS_DB", 0),
			EventCacheTTL: getDuration("EVENT_CACHE_TTL", time.Minute),
		},
		Database: DatabaseConfig{
			Enabled:  getBool("DB_ENABLED", false),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "seatflow"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
	}
}

func redisAddr() string {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		return addr
	}

	return getEnv("REDIS_HOST", "localhost") + ":" + getEnv("REDIS_PORT", "6379")
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil && v > 0 {
		return v
	}
	return fallback
}
