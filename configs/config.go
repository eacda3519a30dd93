package configs

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultSessionSecret is only fit for local development.
const DefaultSessionSecret = "change-me"

var ErrDefaultSessionSecret = errors.New("SESSION_SECRET must be set in release mode")

type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	Session SessionConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	Mode            string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

// StoreConfig describes who receives the order message.
type StoreConfig struct {
	Name         string
	ContactPhone string
	LinkBaseURL  string
}

type SessionConfig struct {
	Secret   string
	TTL      time.Duration
	Capacity int
}

type LogConfig struct {
	Level  string
	Format string
}

// LoadConfig reads the environment, after loading a .env file when one is
// present in the working directory.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Mode:            getEnv("GIN_MODE", "debug"),
			ShutdownTimeout: getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			AllowedOrigins:  getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Store: StoreConfig{
			Name:         getEnv("STORE_NAME", "بقالة أمواج صلالة"),
			ContactPhone: getEnv("STORE_CONTACT_PHONE", "96896755118"),
			LinkBaseURL:  getEnv("STORE_LINK_BASE_URL", "https://api.whatsapp.com/send"),
		},
		Session: SessionConfig{
			Secret:   getEnv("SESSION_SECRET", DefaultSessionSecret),
			TTL:      getEnvDuration("SESSION_TTL", 12*time.Hour),
			Capacity: getEnvInt("SESSION_CAPACITY", 10000),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}
}

// UsesDefaultSecret reports whether tokens would be signed with the public
// default key.
func (c SessionConfig) UsesDefaultSecret() bool {
	return c.Secret == DefaultSessionSecret
}

// Validate rejects settings that are unsafe for a release deployment.
func (c *Config) Validate() error {
	if c.Server.Mode == "release" && c.Session.UsesDefaultSecret() {
		return ErrDefaultSessionSecret
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// getEnvList splits a comma separated value, dropping empty entries.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
