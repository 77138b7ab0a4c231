package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-fetcher/internal/providers"
)

var ErrEmptyCity = errors.New("city cannot be empty")

// WeatherReading is the normalized result of a city lookup.
type WeatherReading struct {
	City             string    `json:"city"`
	Country          string    `json:"country"`
	TemperatureC     float64   `json:"temperatureC"`
	WindspeedKmh     float64   `json:"windspeedKmh"`
	WindDirectionDeg float64   `json:"windDirectionDeg"`
	WeatherCode      int       `json:"weatherCode"`
	ObservedAt       time.Time `json:"time"`
}

type WeatherService interface {
	GetWeather(ctx context.Context, city string) (WeatherReading, error)
}

type weatherService struct {
	weatherAPI providers.WeatherAPIService
}

func NewWeatherService(weatherAPI providers.WeatherAPIService) WeatherService {
	return &weatherService{
		weatherAPI: weatherAPI,
	}
}

// GetWeather geocodes the city and then fetches current conditions for the first match.
// Both calls are made on every invocation.
func (s *weatherService) GetWeather(ctx context.Context, city string) (WeatherReading, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return WeatherReading{}, ErrEmptyCity
	}

	place, err := s.weatherAPI.Geocode(ctx, city)
	if err != nil {
		return WeatherReading{}, err
	}

	log.Ctx(ctx).Debug().
		Str("city", city).
		Str("resolved", place.Name).
		Float64("latitude", place.Latitude).
		Float64("longitude", place.Longitude).
		Msg("city geocoded")

	conditions, err := s.weatherAPI.CurrentWeather(ctx, place.Latitude, place.Longitude)
	if err != nil {
		return WeatherReading{}, err
	}

	return WeatherReading{
		City:             place.Name,
		Country:          place.Country,
		TemperatureC:     conditions.Temperature,
		WindspeedKmh:     conditions.WindSpeed,
		WindDirectionDeg: conditions.WindDirection,
		WeatherCode:      conditions.WeatherCode,
		ObservedAt:       conditions.Time,
	}, nil
}
