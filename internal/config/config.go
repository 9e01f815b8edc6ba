package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// JWTConfig holds the signing material and lifetimes for the token pair.
// Access and refresh tokens are signed with independent secrets.
type JWTConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// Config is the process-wide configuration, loaded once at startup and
// treated as immutable afterwards.
type Config struct {
	AppPort         string
	DatabaseDSN     string
	RabbitMQURL     string
	StripeSecretKey string
	JWT             JWTConfig
}

// Load reads configuration from environment variables via Viper.
// The JWT signing secrets have no fallback values: running without them
// would silently issue forgeable tokens, so Load fails instead.
func Load() (*Config, error) {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DSN", "file:goru.db?cache=shared")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("STRIPE_SECRET_KEY", "")
	viper.SetDefault("JWT_ACCESS_EXPIRY", "15m")
	viper.SetDefault("JWT_REFRESH_EXPIRY", "168h")
	viper.AutomaticEnv()

	cfg := &Config{
		AppPort:         viper.GetString("APP_PORT"),
		DatabaseDSN:     viper.GetString("DATABASE_DSN"),
		RabbitMQURL:     viper.GetString("RABBITMQ_URL"),
		StripeSecretKey: viper.GetString("STRIPE_SECRET_KEY"),
		JWT: JWTConfig{
			AccessSecret:  viper.GetString("JWT_ACCESS_SECRET"),
			RefreshSecret: viper.GetString("JWT_REFRESH_SECRET"),
			AccessExpiry:  viper.GetDuration("JWT_ACCESS_EXPIRY"),
			RefreshExpiry: viper.GetDuration("JWT_REFRESH_EXPIRY"),
		},
	}

	if cfg.JWT.AccessSecret == "" {
		return nil, fmt.Errorf("JWT_ACCESS_SECRET environment variable is required")
	}
	if cfg.JWT.RefreshSecret == "" {
		return nil, fmt.Errorf("JWT_REFRESH_SECRET environment variable is required")
	}
	if cfg.JWT.AccessExpiry <= 0 || cfg.JWT.RefreshExpiry <= 0 {
		return nil, fmt.Errorf("token expiries must be positive durations")
	}

	return cfg, nil
}
