package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"ulascansenturk/weather-fetcher/internal/providers"
)

type Config struct {
	ServiceName   string `validate:"required"`
	ServerAddress string `validate:"required,hostname_port"`

	Env         string
	LogLevel    string
	HTTPTimeout int32 `validate:"gt=0"`

	UpstreamTimeout  time.Duration `validate:"gte=0"`
	GeocodingBaseURL string        `validate:"required,url"`
	ForecastBaseURL  string        `validate:"required,url"`

	SessionTTL           time.Duration `validate:"gt=0"`
	SessionSweepInterval time.Duration `validate:"gte=1s"`
}

var validate = validator.New()

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading .env file: %w", err)
		}
	} else {
		log.Info().Str("file", ".env").Msg("Config file loaded")
	}

	v := viper.New()

	v.SetDefault("SERVICE_NAME", "weather-fetcher")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("HTTP_TIMEOUT", 175)
	v.SetDefault("UPSTREAM_TIMEOUT", 10*time.Second)
	v.SetDefault("GEOCODING_BASE_URL", providers.DefaultGeocodingURL)
	v.SetDefault("FORECAST_BASE_URL", providers.DefaultForecastURL)
	v.SetDefault("SESSION_TTL", 30*time.Minute)
	v.SetDefault("SESSION_SWEEP_INTERVAL", time.Minute)

	v.AutomaticEnv()

	config := &Config{
		ServiceName:          v.GetString("SERVICE_NAME"),
		ServerAddress:        v.GetString("SERVER_ADDRESS"),
		Env:                  v.GetString("ENV"),
		LogLevel:             v.GetString("LOG_LEVEL"),
		HTTPTimeout:          v.GetInt32("HTTP_TIMEOUT"),
		UpstreamTimeout:      v.GetDuration("UPSTREAM_TIMEOUT"),
		GeocodingBaseURL:     v.GetString("GEOCODING_BASE_URL"),
		ForecastBaseURL:      v.GetString("FORECAST_BASE_URL"),
		SessionTTL:           v.GetDuration("SESSION_TTL"),
		SessionSweepInterval: v.GetDuration("SESSION_SWEEP_INTERVAL"),
	}

	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}
