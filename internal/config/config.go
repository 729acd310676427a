package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Environment string `toml:"environment"`

	// logging
	LogLevel    string `toml:"log_level"`
	LogsPath    string `toml:"logs_path"`
	LogToStdout bool   `toml:"log_to_stdout"`

	SentryEnabled bool   `toml:"sentry_enabled"`
	SentryDSN     string `toml:"-" env:"PERIODIZER_SENTRY_DSN"`

	// postgres
	DBHost string `toml:"db_host" env:"PERIODIZER_DB_HOST, overwrite"`
	DBPort string `toml:"db_port" env:"PERIODIZER_DB_PORT, overwrite"`
	DBName string `toml:"db_name" env:"PERIODIZER_DB_NAME, overwrite"`

	// redis, used to serialize concurrent evaluations per plan
	RedisHost     string `toml:"redis_host" env:"PERIODIZER_REDIS_HOST, overwrite"`
	RedisPort     string `toml:"redis_port" env:"PERIODIZER_REDIS_PORT, overwrite"`
	RedisPassword string `toml:"-" env:"PERIODIZER_REDIS_PASS"`

	MetricsPort    int    `toml:"metrics_port"`
	TracingEnabled bool   `toml:"tracing_enabled"`
	EvalSchedule   string `toml:"eval_schedule"`

	Engine EngineConfig `toml:"engine"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML config for the given environment, then overlays
// the env vars on top of it.
func Load(ctx context.Context, env, path string) (*Config, error) {
	var confs Toml
	if _, err := toml.DecodeFile(path, &confs); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	cfg, err := confs.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}

	if err := envconfig.Process(ctx, cfg); err != nil {
		return nil, fmt.Errorf("process env vars: %w", err)
	}

	cfg.Engine.ApplyDefaults()

	return cfg, nil
}
