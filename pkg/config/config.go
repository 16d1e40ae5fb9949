package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the module configuration. Defaults come from struct tags and
// are applied before validation, so a minimal YAML file is enough.
type Config struct {
	Environment string `yaml:"environment" default:"development" validate:"required"`

	Output struct {
		ChartPath string `yaml:"chart_path" default:"sample_output.png" validate:"required"`
	} `yaml:"output"`

	Bus struct {
		Capacity int `yaml:"capacity" default:"4096" validate:"gt=0"`
	} `yaml:"bus"`

	Log struct {
		Level  string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
		Format string `yaml:"format" default:"console" validate:"oneof=json console"`
		Output string `yaml:"output" default:"stdout"`
	} `yaml:"log"`

	Server struct {
		Enabled         bool          `yaml:"enabled"`
		Port            int           `yaml:"port" default:"8080" validate:"gte=0,lte=65535"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"10s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
	} `yaml:"server"`

	Export struct {
		Backend string `yaml:"backend" default:"none" validate:"oneof=none kafka clickhouse"`

		Kafka struct {
			Brokers      []string      `yaml:"brokers"`
			Topic        string        `yaml:"topic" default:"analytics.reports"`
			RequiredAcks int           `yaml:"required_acks" default:"-1"`
			Compression  string        `yaml:"compression" default:"gzip"`
			MaxAttempts  int           `yaml:"max_attempts" default:"3"`
			WriteTimeout time.Duration `yaml:"write_timeout" default:"10s"`
			ReadTimeout  time.Duration `yaml:"read_timeout" default:"10s"`
		} `yaml:"kafka"`

		ClickHouse struct {
			Host        string        `yaml:"host"`
			Port        int           `yaml:"port" default:"9000"`
			Database    string        `yaml:"database" default:"tradescope"`
			Table       string        `yaml:"table" default:"analytics_reports"`
			User        string        `yaml:"user" default:"default"`
			Password    string        `yaml:"password"`
			DialTimeout time.Duration `yaml:"dial_timeout" default:"5s"`
			ReadTimeout time.Duration `yaml:"read_timeout" default:"10s"`
		} `yaml:"clickhouse"`
	} `yaml:"export"`
}

// Load reads and parses a YAML configuration file, fills defaults, and
// validates the result.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := Finalize(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment
// variables.
func LoadWithEnv(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyEnv(&c)

	if err := Finalize(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Finalize applies defaults and validates. Exposed so tests and embedding
// hosts can build a Config in code.
func Finalize(c *Config) error {
	if err := defaults.Set(c); err != nil {
		return fmt.Errorf("apply defaults: %w", err)
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}

func applyEnv(c *Config) {
	if v := os.Getenv("CHART_OUTPUT"); v != "" {
		c.Output.ChartPath = v
	}
	if v := os.Getenv("EXPORT_BACKEND"); v != "" {
		c.Export.Backend = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Export.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		c.Export.Kafka.Topic = v
	}
	if v := os.Getenv("CLICKHOUSE_HOST"); v != "" {
		c.Export.ClickHouse.Host = v
	}
}

// Validate checks struct tags plus the cross-field backend requirements.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	switch c.Export.Backend {
	case "kafka":
		if len(c.Export.Kafka.Brokers) == 0 {
			return fmt.Errorf("export.kafka.brokers cannot be empty with the kafka backend")
		}
	case "clickhouse":
		if c.Export.ClickHouse.Host == "" {
			return fmt.Errorf("export.clickhouse.host is required with the clickhouse backend")
		}
	}
	return nil
}
