package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableside/config"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v, ":8081")

	cfg, err := config.Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, ":8081", cfg.HTTPAddr)
	assert.Equal(t, "restaurant-events", cfg.KafkaTopic)
	assert.Equal(t, 3*time.Second, cfg.RefreshInterval)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("REQUEST_TIMEOUT", "45s")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "tableside")

	v := viper.New()
	config.SetDefaults(v, ":8081")

	cfg, err := config.Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, "cache:6379", cfg.RedisAddr)
	assert.Equal(t, 45*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "host=db port=5432 user=app password=secret dbname=tableside sslmode=disable", cfg.DatabaseURL)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "order.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kafka_broker: kafka:9092\nrate_limit_rps: 0\n"), 0o600))

	v := viper.New()
	config.SetDefaults(v, ":8081")

	cfg, err := config.Load(v, path)
	require.NoError(t, err)
	assert.Equal(t, "kafka:9092", cfg.KafkaBroker)
	assert.Zero(t, cfg.RateLimitRPS)

	_, err = config.Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNewCommand_FlagsOverride(t *testing.T) {
	var got config.Settings
	cmd := config.NewCommand("order-svc", ":8081", "test", func(ctx context.Context, cfg config.Settings, log *logrus.Entry) error {
		got = cfg
		assert.Equal(t, logrus.DebugLevel, log.Logger.GetLevel())
		return nil
	})
	cmd.SetArgs([]string{"--http-addr", ":9999", "--log-level", "debug"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Equal(t, ":9999", got.HTTPAddr)
	assert.Equal(t, "debug", got.LogLevel)
}

func TestNewKafkaWriter_KeyedPartitioning(t *testing.T) {
	w := config.NewKafkaWriter("localhost:9092", "orders")
	t.Cleanup(func() { w.Close() })

	assert.Equal(t, "orders", w.Topic)
	assert.IsType(t, &kafka.Hash{}, w.Balancer)
	assert.Equal(t, 10*time.Millisecond, w.BatchTimeout)
}
