// Package config loads the server configuration from defaults, an optional
// YAML file and the environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. JUKEBOX_DATABASE_DSN.
const EnvPrefix = "JUKEBOX"

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	HTTPPort    int      `mapstructure:"http_port"`
	GRPCPort    int      `mapstructure:"grpc_port"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

type DatabaseConfig struct {
	Driver         string `mapstructure:"driver"`
	DSN            string `mapstructure:"dsn"`
	AutoMigrate    bool   `mapstructure:"auto_migrate"`
	MaxOpenConns   int    `mapstructure:"max_open_conns"`
	MaxIdleConns   int    `mapstructure:"max_idle_conns"`
	ConnectRetries int    `mapstructure:"connect_retries"`
	LogQueries     bool   `mapstructure:"log_queries"`
}

// KafkaConfig enables domain events when Brokers is non-empty.
type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

type LogConfig struct {
	Development bool `mapstructure:"development"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.http_port", 2022)
	v.SetDefault("server.grpc_port", 9090)
	v.SetDefault("server.cors_origins", []string{"*"})

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.connect_retries", 5)
	v.SetDefault("database.log_queries", false)

	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.topic", "jukebox.events")

	v.SetDefault("log.development", false)
}

// Load reads the configuration. path names a YAML file explicitly; when it
// is empty config.yaml is looked up in the working directory, ./config and
// /etc/jukebox, and a missing file is not an error. Variables from a .env
// file in the working directory are loaded first and never override the
// real environment.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Names used by existing deployments.
	if err := v.BindEnv("server.http_port", EnvPrefix+"_SERVER_HTTP_PORT", "PORT", "SERVER_PORT"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("database.dsn", EnvPrefix+"_DATABASE_DSN", "DATABASE_URL"); err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/jukebox")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Server),
		validation.Field(&c.Database),
	)
}

func (c ServerConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.HTTPPort, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.GRPCPort, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

func (c DatabaseConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Driver, validation.Required, validation.In("postgres", "sqlite")),
		validation.Field(&c.DSN, validation.Required),
		validation.Field(&c.MaxOpenConns, validation.Min(0)),
		validation.Field(&c.MaxIdleConns, validation.Min(0)),
		validation.Field(&c.ConnectRetries, validation.Min(0)),
	)
}
