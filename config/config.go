// Package config loads the booking services' configuration from YAML files
// with environment variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath     = "."
	defaultEnv      = "config"
	envPrefix       = "BOOKING_"
	defaultPageSize = 5
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout  time.Duration `json:"readTimeout" yaml:"readTimeout"`
			WriteTimeout time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout  time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *PostgresConfig `json:"postgres" yaml:"postgres"`

	// Auth describes the external token issuer every service validates against.
	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Services holds the base URLs for cross-service calls.
	Services ServicesConfig `json:"services" yaml:"services"`

	// Blob configures the bucket backing profile and property images.
	Blob *BlobConfig `json:"blob" yaml:"blob"`

	Search  SearchConfig  `json:"search" yaml:"search"`
	Cleanup CleanupConfig `json:"cleanup" yaml:"cleanup"`
}

// Log defines logging configuration.
type Log struct {
	Level  string `json:"level" yaml:"level"`
	Pretty bool   `json:"pretty" yaml:"pretty"`
}

// PostgresConfig defines the database connection settings.
type PostgresConfig struct {
	Host         string `json:"host" yaml:"host"`
	Port         int    `json:"port" yaml:"port"`
	User         string `json:"user" yaml:"user"`
	Password     string `json:"password" yaml:"password"`
	DBName       string `json:"dbName" yaml:"dbName"`
	SSLMode      string `json:"sslMode" yaml:"sslMode"`
	MaxOpenConns int    `json:"maxOpenConns" yaml:"maxOpenConns"`
	MaxIdleConns int    `json:"maxIdleConns" yaml:"maxIdleConns"`
}

// AuthConfig defines the trust anchor for inbound bearer tokens.
type AuthConfig struct {
	// JWKSURL is the issuer's JSON Web Key Set endpoint.
	JWKSURL string `json:"jwksUrl" yaml:"jwksUrl"`
	// Issuer is the expected `iss` claim.
	Issuer string `json:"issuer" yaml:"issuer"`
	// RefreshInterval controls how often the key set is re-fetched.
	RefreshInterval time.Duration `json:"refreshInterval" yaml:"refreshInterval"`
}

// ServicesConfig holds base URLs of the downstream services.
type ServicesConfig struct {
	PropertyURL    string `json:"propertyUrl" yaml:"propertyUrl"`
	ReservationURL string `json:"reservationUrl" yaml:"reservationUrl"`
	UserURL        string `json:"userUrl" yaml:"userUrl"`
}

// BlobConfig defines the image bucket. URL uses gocloud.dev syntax,
// e.g. "gs://booking-project" or "file:///var/booking/images".
type BlobConfig struct {
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
}

// SearchConfig defines property search pagination.
type SearchConfig struct {
	PageSize int `json:"pageSize" yaml:"pageSize"`
}

// CleanupConfig tunes the compensating reservation cleanup on property delete.
type CleanupConfig struct {
	MaxAttempts    int           `json:"maxAttempts" yaml:"maxAttempts"`
	InitialBackoff time.Duration `json:"initialBackoff" yaml:"initialBackoff"`
}

// PageSize returns the configured page size, falling back to the default of 5.
func (c *Config) PageSize() int {
	if c.Search.PageSize > 0 {
		return c.Search.PageSize
	}

	return defaultPageSize
}

// New loads the configuration for the current environment. The file name is
// taken from BOOKING_ENV (e.g. "dev" loads dev.yaml) and defaults to
// config.yaml in the working directory.
func New() (*Config, error) {
	name := os.Getenv(envPrefix + "ENV")
	if name == "" {
		name = defaultEnv
	}

	return Load(name, defaultPath)
}

// Load reads <name>.yaml from the given search paths and applies
// BOOKING_-prefixed environment overrides (BOOKING_POSTGRES_HOST -> postgres.host).
func Load(name string, searchPaths ...string) (*Config, error) {
	k := koanf.New(".")

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, name+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}
	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", name)
	}

	if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", name)
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))

			return strings.ReplaceAll(key, "_", "."), value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	cfg := new(Config)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", name)
	}

	if cfg.Cleanup.MaxAttempts <= 0 {
		cfg.Cleanup.MaxAttempts = 3
	}
	if cfg.Cleanup.InitialBackoff <= 0 {
		cfg.Cleanup.InitialBackoff = 250 * time.Millisecond
	}

	return cfg, nil
}
