// Package config loads the service configuration from the environment.
//
// An optional .env file in the working directory is loaded first; real
// environment variables always win over it.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Enquiry field policies.
const (
	FieldsPassthrough = "passthrough"
	FieldsStrict      = "strict"
)

// Config is the root configuration object.
type Config struct {
	Port          string `validate:"required,numeric"`
	StaticDir     string
	EnquiryFields string `validate:"oneof=passthrough strict"`
	Store         StoreConfig
	RabbitMQ      RabbitMQConfig
	Log           LogConfig
}

// StoreConfig selects and locates the record store.
type StoreConfig struct {
	Driver        string `validate:"oneof=mongo postgres sqlite memory"`
	MongoURI      string `validate:"required_if=Driver mongo"`
	MongoDatabase string
	DSN           string
}

// RabbitMQConfig enables enquiry event publishing when URL is set.
type RabbitMQConfig struct {
	URL   string
	Queue string `validate:"required"`
}

// LogConfig configures zerolog.
type LogConfig struct {
	Level  string `validate:"required"`
	Format string `validate:"oneof=console json"`
}

// StrictEnquiryFields reports whether unknown enquiry fields are rejected.
func (c *Config) StrictEnquiryFields() bool {
	return c.EnquiryFields == FieldsStrict
}

// Load reads .env (if present) and the environment into a validated Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()

	return FromViper(v)
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "5000")
	v.SetDefault("STATIC_DIR", "build")
	v.SetDefault("ENQUIRY_FIELDS", FieldsPassthrough)
	v.SetDefault("STORE_DRIVER", DriverMongo)
	v.SetDefault("MONGODB_URI", "")
	v.SetDefault("MONGODB_DATABASE", "")
	v.SetDefault("DATABASE_DSN", "")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_QUEUE", "enquiry_queue")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:          v.GetString("PORT"),
		StaticDir:     v.GetString("STATIC_DIR"),
		EnquiryFields: v.GetString("ENQUIRY_FIELDS"),
		Store: StoreConfig{
			Driver:        v.GetString("STORE_DRIVER"),
			MongoURI:      v.GetString("MONGODB_URI"),
			MongoDatabase: v.GetString("MONGODB_DATABASE"),
			DSN:           v.GetString("DATABASE_DSN"),
		},
		RabbitMQ: RabbitMQConfig{
			URL:   v.GetString("RABBITMQ_URL"),
			Queue: v.GetString("RABBITMQ_QUEUE"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	switch cfg.Store.Driver {
	case DriverPostgres, DriverSQLite:
		if cfg.Store.DSN == "" {
			return nil, fmt.Errorf("invalid configuration: DATABASE_DSN is required for the %s driver", cfg.Store.Driver)
		}
	}

	return cfg, nil
}
