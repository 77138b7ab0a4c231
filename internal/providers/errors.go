package providers

import (
	"errors"
	"fmt"
)

var (
	ErrCityNotFound     = errors.New("city not found")
	ErrNoCurrentWeather = errors.New("no current weather data in forecast response")
)

// GeocodeHTTPError is returned when the geocoding endpoint answers with a non-2xx status.
type GeocodeHTTPError struct {
	StatusCode int
}

func (e *GeocodeHTTPError) Error() string {
	return fmt.Sprintf("Geocoding failed with status %d", e.StatusCode)
}

// WeatherHTTPError is returned when the forecast endpoint answers with a non-2xx status.
type WeatherHTTPError struct {
	StatusCode int
}

func (e *WeatherHTTPError) Error() string {
	return fmt.Sprintf("Weather fetch failed with status %d", e.StatusCode)
}

// MalformedResponseError wraps a body that could not be decoded into the expected shape.
type MalformedResponseError struct {
	Source string
	Err    error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("%s returned malformed JSON: %v", e.Source, e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
