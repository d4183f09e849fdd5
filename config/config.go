package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Storage   StorageConfig
	Postgres  PostgresConfig
	Memcached MemcachedConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Natural-language intake
	Intake IntakeConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// StorageConfig selects the task store backend: "memory" or "postgres".
type StorageConfig struct {
	Driver string
}

type PostgresConfig struct {
	DSN      string
	MaxConns int32
}

// MemcachedConfig enables the task cache when Addr is set.
type MemcachedConfig struct {
	Addr       string
	Expiration time.Duration
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig
	FallbackEnabled bool
	Timeout         time.Duration
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string
	Enabled  bool
	Priority int
	APIKey   string
	BaseURL  string
	Model    string
}

type IntakeConfig struct {
	RateLimitPerMin int
}

// Load loads configuration using Viper. A .env file in the working directory
// is loaded first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return build(v), nil
}

func build(v *viper.Viper) *Config {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Storage
	cfg.Storage.Driver = strings.ToLower(v.GetString("storage.driver"))
	cfg.Postgres.DSN = v.GetString("postgres.dsn")
	if dsn := v.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}
	cfg.Postgres.MaxConns = v.GetInt32("postgres.max_conns")
	cfg.Memcached.Addr = v.GetString("memcached.addr")
	cfg.Memcached.Expiration = v.GetDuration("memcached.expiration")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.Timeout = v.GetDuration("llm.timeout")

	if providersList, ok := v.Get("llm.providers").([]interface{}); ok {
		for _, p := range providersList {
			providerMap, ok := p.(map[string]interface{})
			if !ok {
				continue
			}
			cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
				Name:     getStringFromMap(providerMap, "name"),
				Enabled:  getBoolFromMap(providerMap, "enabled"),
				Priority: getIntFromMap(providerMap, "priority"),
				APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
				BaseURL:  getStringFromMap(providerMap, "base_url"),
				Model:    getStringFromMap(providerMap, "model"),
			})
		}
	}

	// A bare OPENAI_API_KEY is enough to run with OpenAI.
	if len(cfg.LLM.Providers) == 0 {
		if key := v.GetString("openai_api_key"); key != "" {
			cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
				Name:     "openai",
				Enabled:  true,
				Priority: 1,
				APIKey:   key,
				Model:    v.GetString("openai_model"),
			})
		}
	}

	// Intake
	cfg.Intake.RateLimitPerMin = v.GetInt("intake.rate_limit_per_min")

	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("storage.driver", StorageMemory)
	v.SetDefault("postgres.max_conns", 10)
	v.SetDefault("memcached.expiration", "5m")

	// LLM defaults
	v.SetDefault("llm.fallback_enabled", false)
	v.SetDefault("llm.timeout", "30s")

	v.SetDefault("intake.rate_limit_per_min", 30)
}

// Warnings lists configuration problems that do not prevent startup.
func (c *Config) Warnings() []string {
	var warnings []string

	enabled := 0
	for _, p := range c.LLM.Providers {
		if p.Enabled {
			enabled++
		}
	}
	if enabled == 0 {
		warnings = append(warnings, "no LLM provider configured, natural-language intake will be unavailable")
	}

	if c.Storage.Driver == StoragePostgres && c.Postgres.DSN == "" {
		warnings = append(warnings, "storage.driver is postgres but postgres.dsn is empty")
	}

	return warnings
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		switch n := val.(type) {
		case int:
			return n
		case float64:
			return int(n)
		}
	}
	return 0
}
