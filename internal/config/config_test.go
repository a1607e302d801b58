package config_test

import (
	"testing"

	"storefront/internal/config"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(values map[string]string) *viper.Viper {
	v := viper.New()
	config.SetDefaults(v)
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := config.FromViper(newViper(map[string]string{
		"MONGODB_URI": "mongodb://localhost:27017/shop",
	}))
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "build", cfg.StaticDir)
	assert.Equal(t, config.DriverMongo, cfg.Store.Driver)
	assert.Equal(t, "enquiry_queue", cfg.RabbitMQ.Queue)
	assert.Empty(t, cfg.RabbitMQ.URL)
	assert.False(t, cfg.StrictEnquiryFields())
}

func TestFromViper_MongoRequiresURI(t *testing.T) {
	_, err := config.FromViper(newViper(nil))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "MongoURI")
}

func TestFromViper_SQLRequiresDSN(t *testing.T) {
	_, err := config.FromViper(newViper(map[string]string{"STORE_DRIVER": "postgres"}))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_DSN")

	cfg, err := config.FromViper(newViper(map[string]string{
		"STORE_DRIVER": "sqlite",
		"DATABASE_DSN": "file::memory:",
	}))
	require.NoError(t, err)
	assert.Equal(t, "file::memory:", cfg.Store.DSN)
}

func TestFromViper_RejectsUnknownValues(t *testing.T) {
	tests := map[string]map[string]string{
		"driver":         {"STORE_DRIVER": "redis"},
		"enquiry fields": {"STORE_DRIVER": "memory", "ENQUIRY_FIELDS": "loose"},
		"port":           {"STORE_DRIVER": "memory", "PORT": ":5000"},
		"log format":     {"STORE_DRIVER": "memory", "LOG_FORMAT": "xml"},
	}
	for name, values := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.FromViper(newViper(values))
			assert.Error(t, err)
		})
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("PORT", "8088")
	t.Setenv("ENQUIRY_FIELDS", "strict")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "8088", cfg.Port)
	assert.Equal(t, config.DriverMemory, cfg.Store.Driver)
	assert.True(t, cfg.StrictEnquiryFields())
}
