package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"time"

	"github.com/NssGourav/shuttle-tracker/pkg/configparser"
	"github.com/NssGourav/shuttle-tracker/pkg/postgres"
)

// Config contains all configuration variables of the application
type (
	Config struct {
		Server    ServerConfig
		Database  DatabaseConfig
		RabbitMQ  RabbitMQConfig
		Auth      AuthConfig
		Simulator SimulatorConfig
		Log       LogConfig
	}

	ServerConfig struct {
		Host string `env:"SERVER_HOST" default:"0.0.0.0"`
		Port string `env:"SERVER_PORT" default:"4000"`
	}

	DatabaseConfig struct {
		Host     string `env:"DATABASE_HOST" default:"localhost"`
		Port     string `env:"DATABASE_PORT" default:"5432"`
		User     string `env:"DATABASE_USER" default:"shuttle_user"`
		Password string `env:"DATABASE_PASSWORD" default:"shuttle_pass"`
		Database string `env:"DATABASE_DATABASE" default:"shuttle_db"`

		MigrationsPath string `env:"DATABASE_MIGRATIONS_PATH" default:"migrations"`

		MaxConns        int32         `env:"DATABASE_MAXCONNS" default:"20"`
		MinConns        int32         `env:"DATABASE_MINCONNS" default:"2"`
		MaxConnLifetime time.Duration `env:"DATABASE_MAXCONNLIFETIME" default:"30m"`
		MaxConnIdleTime time.Duration `env:"DATABASE_MAXCONNIDLETIME" default:"5m"`
	}

	RabbitMQConfig struct {
		Enabled  bool   `env:"RABBITMQ_ENABLED" default:"false"`
		Host     string `env:"RABBITMQ_HOST" default:"localhost"`
		Port     string `env:"RABBITMQ_PORT" default:"5672"`
		User     string `env:"RABBITMQ_USER" default:"guest"`
		Password string `env:"RABBITMQ_PASSWORD" default:"guest"`
	}

	AuthConfig struct {
		TokenTTL  time.Duration `env:"AUTH_TOKEN_TTL" default:"168h"`
		JWTSecret string        `env:"AUTH_JWT_SECRET" default:"supersecretkey"`
	}

	SimulatorConfig struct {
		Enabled  bool          `env:"SIMULATOR_ENABLED" default:"true"`
		Interval time.Duration `env:"SIMULATOR_INTERVAL" default:"2s"`
	}

	LogConfig struct {
		Level string `env:"LOG_LEVEL" default:"DEBUG"`
	}
)

func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func (c DatabaseConfig) PoolSettings() postgres.PoolSettings {
	return postgres.PoolSettings{
		MaxConns:        c.MaxConns,
		MinConns:        c.MinConns,
		MaxConnLifetime: c.MaxConnLifetime,
		MaxConnIdleTime: c.MaxConnIdleTime,
	}
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

func (c RabbitMQConfig) GetDSN() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/",
		c.User,
		c.Password,
		c.Host,
		c.Port,
	)
}

// NewConfig loads the YAML file into the environment and fills the Config
// struct from env vars, falling back to the tag defaults.
func NewConfig(configPath string) (*Config, error) {
	if configPath != "" {
		if err := configparser.LoadYamlFile(configPath); err != nil && !os.IsNotExist(err) {
			// A missing file is fine; env vars and defaults still apply.
			if err != configparser.ErrNoFilePath {
				fmt.Fprintf(os.Stderr, "config: %v (continuing with env/defaults)\n", err)
			}
		}
	}

	cfg := &Config{}
	if err := fillFromEnv(reflect.ValueOf(cfg).Elem()); err != nil {
		return nil, err
	}
	return cfg, nil
}

// fillFromEnv walks the struct and assigns each `env`-tagged field from the
// environment, or from the `default` tag when the variable is unset.
func fillFromEnv(v reflect.Value) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := v.Field(i)
		structField := t.Field(i)

		if field.Kind() == reflect.Struct && structField.Tag.Get("env") == "" {
			if field.Type() == reflect.TypeOf(time.Duration(0)) {
				continue
			}
			if err := fillFromEnv(field); err != nil {
				return err
			}
			continue
		}

		envName := structField.Tag.Get("env")
		if envName == "" {
			continue
		}

		raw := os.Getenv(envName)
		if raw == "" {
			raw = structField.Tag.Get("default")
		}
		if raw == "" {
			continue
		}

		switch field.Interface().(type) {
		case string:
			field.SetString(raw)
		case bool:
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return fmt.Errorf("%s: invalid bool %q", envName, raw)
			}
			field.SetBool(b)
		case int32:
			n, err := strconv.ParseInt(raw, 10, 32)
			if err != nil {
				return fmt.Errorf("%s: invalid int %q", envName, raw)
			}
			field.SetInt(n)
		case time.Duration:
			d, err := time.ParseDuration(raw)
			if err != nil {
				return fmt.Errorf("%s: invalid duration %q", envName, raw)
			}
			field.SetInt(int64(d))
		default:
			return fmt.Errorf("%s: unsupported config field type %s", envName, field.Type())
		}
	}
	return nil
}
