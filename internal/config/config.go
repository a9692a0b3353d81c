package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rachitsingh/baatein/backend/internal/service/ai"
)

// Config aggregates every runtime setting of the service.
type Config struct {
	Server ServerConfig
	AI     AIConfig
	Auth   AuthConfig
	DB     DBConfig
	Redis  RedisConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	aiCfg, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	auth, err := loadAuthConfig()
	if err != nil {
		return nil, err
	}

	redisCfg, err := loadRedisConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server: server,
		AI:     aiCfg,
		Auth:   auth,
		DB:     DBConfig{DSN: strings.TrimSpace(os.Getenv("POSTGRES_DSN"))},
		Redis:  redisCfg,
	}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Allow passing ":8080" or "127.0.0.1:8080" directly.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// AIConfig describes the completion service settings.
type AIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Enabled reports whether the required credentials are present.
func (c AIConfig) Enabled() bool {
	return c.APIKey != ""
}

// NewClient builds the completion client from this config.
func (c AIConfig) NewClient() (*ai.Client, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("GEMINI_API_KEY is not configured")
	}
	return ai.NewClient(ai.ClientConfig{
		APIKey:  c.APIKey,
		Model:   c.Model,
		BaseURL: c.BaseURL,
		Timeout: c.Timeout,
	})
}

func loadAIConfig() (AIConfig, error) {
	timeoutSeconds := 30
	if override, err := parseOptionalIntEnv("AI_TIMEOUT_SECONDS"); err != nil {
		return AIConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return AIConfig{}, fmt.Errorf("AI_TIMEOUT_SECONDS must be positive")
		}
		timeoutSeconds = *override
	}

	return AIConfig{
		APIKey:  strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		Model:   getEnvOrDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		BaseURL: strings.TrimSpace(os.Getenv("GEMINI_BASE_URL")),
		Timeout: time.Duration(timeoutSeconds) * time.Second,
	}, nil
}

// AuthConfig describes session-token issuance and sign-in verification.
type AuthConfig struct {
	JWTSecret      string
	SessionTTL     time.Duration
	GoogleClientID string
}

func loadAuthConfig() (AuthConfig, error) {
	secret := strings.TrimSpace(os.Getenv("AUTH_JWT_SECRET"))
	if secret == "" {
		return AuthConfig{}, fmt.Errorf("AUTH_JWT_SECRET is required")
	}

	ttlHours := 72
	if override, err := parseOptionalIntEnv("AUTH_SESSION_TTL_HOURS"); err != nil {
		return AuthConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return AuthConfig{}, fmt.Errorf("AUTH_SESSION_TTL_HOURS must be positive")
		}
		ttlHours = *override
	}

	return AuthConfig{
		JWTSecret:      secret,
		SessionTTL:     time.Duration(ttlHours) * time.Hour,
		GoogleClientID: strings.TrimSpace(os.Getenv("GOOGLE_CLIENT_ID")),
	}, nil
}

// DBConfig describes the profile database. An empty DSN selects the
// in-memory store.
type DBConfig struct {
	DSN string
}

// RedisConfig describes the transcript store. An empty address selects
// the in-memory fallback.
type RedisConfig struct {
	Addr          string
	Password      string
	TranscriptTTL time.Duration
}

func loadRedisConfig() (RedisConfig, error) {
	ttlHours := 720
	if override, err := parseOptionalIntEnv("TRANSCRIPT_TTL_HOURS"); err != nil {
		return RedisConfig{}, err
	} else if override != nil {
		if *override < 0 {
			return RedisConfig{}, fmt.Errorf("TRANSCRIPT_TTL_HOURS must not be negative")
		}
		ttlHours = *override
	}

	return RedisConfig{
		Addr:          strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		Password:      os.Getenv("REDIS_PASSWORD"),
		TranscriptTTL: time.Duration(ttlHours) * time.Hour,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
