package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime configuration, loaded from the environment.
type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"json"`
	CORSOrigins string `envconfig:"CORS_ORIGINS" default:"http://localhost:3000"`

	// Postgres connection for survey definitions and call logs.
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	// Managed data store that holds the survey responses.
	SupabaseURL    string `envconfig:"SUPABASE_URL" required:"true"`
	SupabaseKey    string `envconfig:"SUPABASE_KEY" required:"true"`
	ResponsesTable string `envconfig:"RESPONSES_TABLE" default:"survey_responses"`

	// Remote call-initiation service.
	CallServiceURL     string        `envconfig:"CALL_SERVICE_URL" required:"true"`
	CallServiceTimeout time.Duration `envconfig:"CALL_SERVICE_TIMEOUT" default:"30s"`

	// Response cache behaviour.
	CacheTTL           time.Duration `envconfig:"CACHE_TTL" default:"5m"`
	FetchTimeout       time.Duration `envconfig:"FETCH_TIMEOUT" default:"15s"`
	RefreshMinDuration time.Duration `envconfig:"REFRESH_MIN_DURATION" default:"2s"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}
