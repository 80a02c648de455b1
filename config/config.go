// Package config loads configuration from environment variables.
package config

import (
	"os"
	"reflect"
	"strings"
	"sync"
)

// Config represents the application configuration
//
// Every value has a default so the process can boot before the setup
// wizard has run. The unprefixed DATABASE_URL override is not loaded
// here: the setup service reads it live, because completing setup
// exports it for the current process.
type Config struct {
	APIName          string `env:"SB_API_APP_NAME" default:"Sociable API"`
	APIVersion       string `env:"SB_API_APP_VERSION" default:"v1"`
	ServerPort       string `env:"SB_API_SERVER_PORT" default:"3000"`
	ServerLogLevel   string `env:"SB_API_SERVER_LOG_LEVEL" default:"info"`
	ConfigFile       string `env:"SB_API_CONFIG_FILE" default:"app-config.json"`
	PostgresLogLevel string `env:"SB_API_PG_LOG_LEVEL" default:"warn"`
	PostgresRootUser string `env:"SB_API_PG_ROOT_USER" default:"postgres"`
	PostgresRootPass string `env:"SB_API_PG_ROOT_PASSWORD" default:"postgres"`
	RedisURL         string `env:"SB_API_REDIS_URL" default:""`
}

var (
	SingleLine string = "--------------------------------------------------"
)

var (
	instance *Config
	once     sync.Once
)

// Get returns the application configuration
func Get() *Config {
	once.Do(func() {
		instance = loadConfig()
	})
	return instance
}

// loadConfig loads configuration from environment variables
func loadConfig() *Config {
	cfg := &Config{}
	cfg.loadFromEnv()
	return cfg
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	t := reflect.TypeOf(*c)
	v := reflect.ValueOf(c).Elem()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		value := os.Getenv(field.Tag.Get("env"))
		if value == "" {
			value = field.Tag.Get("default")
		}
		v.Field(i).SetString(value)
	}
}

// String returns the configuration as a string
func (c *Config) String() string {
	var sb strings.Builder
	sb.WriteString("\n--------------------------------------\n")
	sb.WriteString("Configuration:\n")
	sb.WriteString("--------------------------------------\n")

	t := reflect.TypeOf(*c)
	v := reflect.ValueOf(*c)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		value := maskSensitiveField(field.Name, v.Field(i).String())
		sb.WriteString("  " + field.Name + ":  " + value + "\n")
	}

	sb.WriteString("--------------------------------------\n")

	return sb.String()
}

func maskSensitiveField(fieldName, value string) string {
	sensitiveFields := []string{"dsn", "secret", "password", "url"}

	fieldNameLower := strings.ToLower(fieldName)
	for _, sensitive := range sensitiveFields {
		if strings.Contains(fieldNameLower, sensitive) && value != "" {
			return maskValue(value)
		}
	}

	return value
}

func maskValue(value string) string {
	if len(value) <= 3 {
		return strings.Repeat("*", 7)
	}
	return value[:3] + strings.Repeat("*", 7)
}
