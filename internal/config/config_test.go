package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ENVIRONMENT", "HTTP_PORT", "STORE_DRIVER", "KAFKA_BROKERS", "REQUEST_TIMEOUT", "SEED_INVENTORY"} {
		t.Setenv(key, "")
	}

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "8000", cfg.HTTPPort)
	assert.Equal(t, StoreDriverPostgres, cfg.StoreDriver)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.SeedInventory)
	assert.True(t, cfg.IsDevelopment())
	assert.Empty(t, cfg.KafkaBrokers)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("STORE_DRIVER", "Memory")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("SEED_INVENTORY", "false")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, StoreDriverMemory, cfg.StoreDriver)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.False(t, cfg.SeedInventory)
}

func TestLoad_EnvFile(t *testing.T) {
	// t.Setenv restores the original value; unset so the file can provide it
	t.Setenv("DB_NAME", "placeholder")
	require.NoError(t, os.Unsetenv("DB_NAME"))
	t.Setenv("HTTP_PORT", "9999")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DB_NAME=from_file\nHTTP_PORT=1111\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from_file", cfg.Database.DBName)
	assert.Equal(t, "9999", cfg.HTTPPort, "environment wins over the file")
}

func TestLoad_MissingEnvFileIsIgnored(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mysql")
	_, err := Load("")
	assert.Error(t, err)

	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("REQUEST_TIMEOUT", "soon")
	_, err = Load("")
	assert.Error(t, err)
}
