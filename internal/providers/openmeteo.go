package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	DefaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
	DefaultForecastURL  = "https://api.open-meteo.com/v1/forecast"
)

// Open-Meteo reports current_weather.time in GMT without a zone suffix.
var observationLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

type WeatherAPIService interface {
	Geocode(ctx context.Context, name string) (GeocodeResult, error)
	CurrentWeather(ctx context.Context, latitude, longitude float64) (CurrentConditions, error)
	GetHTTPClient() *http.Client
}

type GeocodeResult struct {
	Latitude  float64
	Longitude float64
	Name      string
	Country   string
}

type CurrentConditions struct {
	Temperature   float64
	WindSpeed     float64
	WindDirection float64
	WeatherCode   int
	Time          time.Time
}

type weatherAPIService struct {
	geocodingURL string
	forecastURL  string
	client       *http.Client
}

// NewWeatherAPIService builds an Open-Meteo client. Empty URLs fall back to the public endpoints.
func NewWeatherAPIService(geocodingURL, forecastURL string, timeout time.Duration) WeatherAPIService {
	if geocodingURL == "" {
		geocodingURL = DefaultGeocodingURL
	}
	if forecastURL == "" {
		forecastURL = DefaultForecastURL
	}

	return &weatherAPIService{
		geocodingURL: geocodingURL,
		forecastURL:  forecastURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type geocodeResponse struct {
	Results []struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Name      string  `json:"name"`
		Country   string  `json:"country"`
	} `json:"results"`
}

type forecastResponse struct {
	CurrentWeather *struct {
		Temperature   float64 `json:"temperature"`
		WindSpeed     float64 `json:"windspeed"`
		WindDirection float64 `json:"winddirection"`
		WeatherCode   int     `json:"weathercode"`
		Time          string  `json:"time"`
	} `json:"current_weather"`
}

func (s *weatherAPIService) Geocode(ctx context.Context, name string) (GeocodeResult, error) {
	values := url.Values{}
	values.Set("name", name)
	values.Set("count", "1")

	resp, err := s.get(ctx, s.geocodingURL, values)
	if err != nil {
		return GeocodeResult{}, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return GeocodeResult{}, &GeocodeHTTPError{StatusCode: resp.StatusCode}
	}

	var apiResp geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return GeocodeResult{}, &MalformedResponseError{Source: "geocoding", Err: err}
	}

	if len(apiResp.Results) == 0 {
		return GeocodeResult{}, ErrCityNotFound
	}

	match := apiResp.Results[0]

	return GeocodeResult{
		Latitude:  match.Latitude,
		Longitude: match.Longitude,
		Name:      match.Name,
		Country:   match.Country,
	}, nil
}

func (s *weatherAPIService) CurrentWeather(ctx context.Context, latitude, longitude float64) (CurrentConditions, error) {
	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	values.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	values.Set("current_weather", "true")

	resp, err := s.get(ctx, s.forecastURL, values)
	if err != nil {
		return CurrentConditions{}, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return CurrentConditions{}, &WeatherHTTPError{StatusCode: resp.StatusCode}
	}

	var apiResp forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return CurrentConditions{}, &MalformedResponseError{Source: "forecast", Err: err}
	}

	cw := apiResp.CurrentWeather
	if cw == nil {
		return CurrentConditions{}, ErrNoCurrentWeather
	}

	observedAt, err := parseObservationTime(cw.Time)
	if err != nil {
		return CurrentConditions{}, &MalformedResponseError{Source: "forecast", Err: err}
	}

	return CurrentConditions{
		Temperature:   cw.Temperature,
		WindSpeed:     cw.WindSpeed,
		WindDirection: cw.WindDirection,
		WeatherCode:   cw.WeatherCode,
		Time:          observedAt,
	}, nil
}

func (s *weatherAPIService) GetHTTPClient() *http.Client {
	return s.client
}

func (s *weatherAPIService) get(ctx context.Context, baseURL string, values url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+values.Encode(), nil)
	if err != nil {
		return nil, err
	}

	return s.client.Do(req)
}

func parseObservationTime(value string) (time.Time, error) {
	for _, layout := range observationLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognised observation time %q", value)
}
