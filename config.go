package seamon

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// FeedConfig contains the upstream vessel report feed configuration.
// The credential never lives in the yaml file; it is resolved from the
// environment variable named by apiKeyEnv.
type FeedConfig struct {
	URL              string `yaml:"url" validate:"omitempty,url"`
	APIKeyEnv        string `yaml:"apiKeyEnv"`
	ReconnectDelayMS int    `yaml:"reconnectDelayMS" validate:"gte=0"`

	APIKey string `yaml:"-"`
}

// StoreConfig contains vessel store tuning
type StoreConfig struct {
	TTLSeconds      int `yaml:"ttlSeconds" validate:"gte=0"`
	SweepIntervalMS int `yaml:"sweepIntervalMS" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server ServerConfig `yaml:"server" validate:"required"`
	Feed   FeedConfig   `yaml:"feed"`
	Store  StoreConfig  `yaml:"store"`
}

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from
// config.yml and the environment. A missing credential is not an error
// here; it only disables the ingestion subsystem.
func LoadAppConfig() error {
	_ = godotenv.Load()

	paths := []string{"config.yml", "./config/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	applyConfigDefaults(&cfg)
	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return err
	}
	if err := v.Struct(cfg.Feed); err != nil {
		return err
	}
	if err := v.Struct(cfg.Store); err != nil {
		return err
	}
	cfg.Feed.APIKey = os.Getenv(cfg.Feed.APIKeyEnv)
	Config = cfg
	return nil
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Feed.URL == "" {
		cfg.Feed.URL = "wss://stream.aisstream.io/v0/stream"
	}
	if cfg.Feed.APIKeyEnv == "" {
		cfg.Feed.APIKeyEnv = "AIS_STREAM_API_KEY"
	}
	if cfg.Feed.ReconnectDelayMS == 0 {
		cfg.Feed.ReconnectDelayMS = 5000
	}
	if cfg.Store.TTLSeconds == 0 {
		cfg.Store.TTLSeconds = 86400
	}
	if cfg.Store.SweepIntervalMS == 0 {
		cfg.Store.SweepIntervalMS = 300000
	}
}
