package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "environment: production\n"))
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "sample_output.png", cfg.Output.ChartPath)
	require.Equal(t, 4096, cfg.Bus.Capacity)
	require.Equal(t, "none", cfg.Export.Backend)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, 8080, cfg.Server.Port)
	require.False(t, cfg.Server.Enabled)
}

func TestLoadMinimalFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	require.Equal(t, "development", cfg.Environment)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadInvalidBackend(t *testing.T) {
	_, err := Load(writeConfig(t, "export:\n  backend: s3\n"))
	require.Error(t, err)
}

func TestKafkaBackendRequiresBrokers(t *testing.T) {
	_, err := Load(writeConfig(t, "export:\n  backend: kafka\n"))
	require.Error(t, err)

	cfg, err := Load(writeConfig(t, `
export:
  backend: kafka
  kafka:
    brokers: ["localhost:9092"]
`))
	require.NoError(t, err)
	require.Equal(t, "analytics.reports", cfg.Export.Kafka.Topic)
}

func TestClickHouseBackendRequiresHost(t *testing.T) {
	_, err := Load(writeConfig(t, "export:\n  backend: clickhouse\n"))
	require.Error(t, err)

	cfg, err := Load(writeConfig(t, `
export:
  backend: clickhouse
  clickhouse:
    host: localhost
`))
	require.NoError(t, err)
	require.Equal(t, 9000, cfg.Export.ClickHouse.Port)
	require.Equal(t, "analytics_reports", cfg.Export.ClickHouse.Table)
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("CHART_OUTPUT", "/tmp/out.png")
	t.Setenv("EXPORT_BACKEND", "kafka")
	t.Setenv("KAFKA_BROKERS", "a:9092,b:9092")
	t.Setenv("KAFKA_TOPIC", "reports.v2")

	cfg, err := LoadWithEnv(writeConfig(t, "environment: staging\n"))
	require.NoError(t, err)

	require.Equal(t, "/tmp/out.png", cfg.Output.ChartPath)
	require.Equal(t, "kafka", cfg.Export.Backend)
	require.Equal(t, []string{"a:9092", "b:9092"}, cfg.Export.Kafka.Brokers)
	require.Equal(t, "reports.v2", cfg.Export.Kafka.Topic)
}
