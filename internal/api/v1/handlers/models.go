package handlers

import "time"

type WeatherResponse struct {
	Query            string    `json:"query"`
	City             string    `json:"city"`
	Country          string    `json:"country"`
	TemperatureC     float64   `json:"temperatureC"`
	WindspeedKmh     float64   `json:"windspeedKmh"`
	WindDirectionDeg float64   `json:"windDirectionDeg"`
	WeatherCode      int       `json:"weatherCode"`
	Description      string    `json:"description"`
	Time             time.Time `json:"time"`
}

type Error struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
	Title  string `json:"title"`
}

type ErrorResponse struct {
	Errors []Error `json:"errors"`
}
