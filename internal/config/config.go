package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"antipodes-api/internal/selection"

	"github.com/spf13/viper"
)

const (
	ProviderW3W      = "w3w"
	ProviderPostgres = "postgres"

	// placeholderAPIKey is the demo key shipped in sample configuration.
	placeholderAPIKey = "YOUR_W3W_API_KEY"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress   string        `mapstructure:"SERVER_ADDRESS"`
	DBSource        string        `mapstructure:"DB_SOURCE"`
	LookupProvider  string        `mapstructure:"LOOKUP_PROVIDER"`
	W3WAPIKey       string        `mapstructure:"W3W_API_KEY"`
	W3WBaseURL      string        `mapstructure:"W3W_BASE_URL"`
	W3WLanguage     string        `mapstructure:"W3W_LANGUAGE"`
	LookupTimeout   time.Duration `mapstructure:"LOOKUP_TIMEOUT"`
	ParallelLookups bool          `mapstructure:"PARALLEL_LOOKUPS"`
	SelectionPolicy string        `mapstructure:"SELECTION_POLICY"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	LogFormat       string        `mapstructure:"LOG_FORMAT"`
}

// LoadConfig reads app.env from path, lets environment variables override it
// and validates the result.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	setDefaults(v)
	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: failed to read config: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: failed to decode config: %w", err)
	}

	err = config.Validate()
	return config, err
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("DB_SOURCE", "")
	v.SetDefault("LOOKUP_PROVIDER", ProviderW3W)
	v.SetDefault("W3W_API_KEY", "")
	v.SetDefault("W3W_BASE_URL", "https://api.what3words.com/v3")
	v.SetDefault("W3W_LANGUAGE", "en")
	v.SetDefault("LOOKUP_TIMEOUT", "10s")
	v.SetDefault("PARALLEL_LOOKUPS", false)
	v.SetDefault("SELECTION_POLICY", "last-write-wins")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

// Validate checks that the selected lookup provider can be built.
func (c Config) Validate() error {
	switch c.LookupProvider {
	case ProviderW3W:
		key := strings.TrimSpace(c.W3WAPIKey)
		if key == "" || key == placeholderAPIKey {
			return fmt.Errorf("config: W3W_API_KEY must be set when LOOKUP_PROVIDER=%s", ProviderW3W)
		}
	case ProviderPostgres:
		if strings.TrimSpace(c.DBSource) == "" {
			return fmt.Errorf("config: DB_SOURCE must be set when LOOKUP_PROVIDER=%s", ProviderPostgres)
		}
	default:
		return fmt.Errorf("config: unknown LOOKUP_PROVIDER %q", c.LookupProvider)
	}

	if _, err := selection.ParsePolicy(c.SelectionPolicy); err != nil {
		return fmt.Errorf("config: invalid SELECTION_POLICY: %w", err)
	}

	if c.LookupTimeout < 0 {
		return fmt.Errorf("config: LOOKUP_TIMEOUT must not be negative")
	}
	return nil
}
