package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment" env:"SUANMING_ENV" default:"development" validate:"required"`
	Server      struct {
		Port            int           `yaml:"port" env:"SUANMING_PORT" default:"8080" validate:"gte=1,lte=65535"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"10s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
		SlowThreshold   time.Duration `yaml:"slow_threshold" default:"500ms"`
		RateLimit       struct {
			Enabled      bool    `yaml:"enabled" default:"true"`
			Capacity     float64 `yaml:"capacity" default:"20" validate:"gte=1"`
			RefillPerSec float64 `yaml:"refill_per_sec" default:"5" validate:"gt=0"`
		} `yaml:"rate_limit"`
		CORS struct {
			Enabled      bool          `yaml:"enabled" default:"true"`
			AllowOrigins []string      `yaml:"allow_origins" env:"SUANMING_CORS_ORIGINS" envSeparator:"," default:"[\"*\"]"`
			MaxAge       time.Duration `yaml:"max_age" default:"10m"`
		} `yaml:"cors"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level" env:"SUANMING_LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
		Format string `yaml:"format" env:"SUANMING_LOG_FORMAT" default:"json" validate:"oneof=json console"`
		Output string `yaml:"output" default:"stdout"`
	} `yaml:"log"`
	Metrics struct {
		Enabled bool   `yaml:"enabled" default:"true"`
		Path    string `yaml:"path" default:"/metrics"`
	} `yaml:"metrics"`
	Lunar struct {
		Provider   string        `yaml:"provider" env:"SUANMING_LUNAR_PROVIDER" default:"calendar" validate:"oneof=calendar identity http"`
		ServiceURL string        `yaml:"service_url" env:"SUANMING_LUNAR_URL"`
		Timeout    time.Duration `yaml:"timeout" default:"3s"`
	} `yaml:"lunar"`
	Cache struct {
		Enabled       bool          `yaml:"enabled" env:"SUANMING_CACHE_ENABLED" default:"true"`
		TTL           time.Duration `yaml:"ttl" default:"24h"`
		MemoryMaxSize int           `yaml:"memory_max_size" default:"1000" validate:"gte=1"`
		Redis         struct {
			Enabled  bool   `yaml:"enabled" env:"SUANMING_REDIS_ENABLED"`
			Host     string `yaml:"host" env:"SUANMING_REDIS_HOST" default:"localhost"`
			Port     int    `yaml:"port" default:"6379"`
			Password string `yaml:"password" env:"SUANMING_REDIS_PASSWORD"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix" default:"suanming"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	Kafka struct {
		Enabled      bool     `yaml:"enabled" env:"SUANMING_KAFKA_ENABLED"`
		Brokers      []string `yaml:"brokers" env:"SUANMING_KAFKA_BROKERS" envSeparator:","`
		Topic        string   `yaml:"topic" env:"SUANMING_KAFKA_TOPIC" default:"suanming.charts"`
		RequiredAcks int      `yaml:"required_acks" default:"-1"`
		Compression  string   `yaml:"compression" default:"gzip" validate:"oneof=gzip snappy lz4 zstd"`
		Producer     struct {
			MaxAttempts  int           `yaml:"max_attempts" default:"3"`
			Linger       time.Duration `yaml:"linger" default:"100ms"`
			BatchBytes   int           `yaml:"batch_bytes" default:"1048576"`
			BatchSize    int           `yaml:"batch_size" default:"100"`
			WriteTimeout time.Duration `yaml:"write_timeout" default:"10s"`
			ReadTimeout  time.Duration `yaml:"read_timeout" default:"10s"`
			Async        bool          `yaml:"async" default:"true"`
		} `yaml:"producer"`
	} `yaml:"kafka"`
	ClickHouse struct {
		Enabled          bool          `yaml:"enabled" env:"SUANMING_CLICKHOUSE_ENABLED"`
		Host             string        `yaml:"host" env:"SUANMING_CLICKHOUSE_HOST" default:"localhost"`
		Port             int           `yaml:"port" default:"9000"`
		Database         string        `yaml:"database" default:"suanming"`
		Table            string        `yaml:"table" default:"charts"`
		User             string        `yaml:"user" env:"SUANMING_CLICKHOUSE_USER" default:"default"`
		Password         string        `yaml:"password" env:"SUANMING_CLICKHOUSE_PASSWORD"`
		UseHTTP          bool          `yaml:"use_http"`
		AsyncInsert      bool          `yaml:"async_insert" default:"true"`
		WaitForAsync     bool          `yaml:"wait_for_async_insert"`
		DialTimeout      time.Duration `yaml:"dial_timeout" default:"5s"`
		ReadTimeout      time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout     time.Duration `yaml:"write_timeout" default:"10s"`
		MaxExecutionTime time.Duration `yaml:"max_execution_time" default:"30s"`
	} `yaml:"clickhouse"`
}

var validate = validator.New()

// Default returns a configuration populated from struct defaults only.
func Default() (*Config, error) {
	var c Config
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("set defaults: %w", err)
	}
	return &c, nil
}

// Load reads a YAML file over the defaults. An empty path yields defaults.
func Load(path string) (*Config, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// LoadWithEnv loads config from YAML and overrides with SUANMING_* variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// Validate checks field constraints and cross-field requirements.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Lunar.Provider == "http" && c.Lunar.ServiceURL == "" {
		return errors.New("lunar.service_url is required when lunar.provider is 'http'")
	}
	if c.Server.CORS.Enabled && len(c.Server.CORS.AllowOrigins) == 0 {
		return errors.New("server.cors.allow_origins cannot be empty when cors is enabled")
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return errors.New("kafka.brokers cannot be empty when kafka is enabled")
	}
	if c.Kafka.Enabled && c.Kafka.Topic == "" {
		return errors.New("kafka.topic is required when kafka is enabled")
	}
	if c.ClickHouse.Enabled && c.ClickHouse.Host == "" {
		return errors.New("clickhouse.host is required when clickhouse is enabled")
	}
	return nil
}
