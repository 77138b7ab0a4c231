package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-fetcher/internal/service"
	"ulascansenturk/weather-fetcher/internal/ui"
)

// WeatherHandler serves the stateless JSON lookup.
type WeatherHandler struct {
	weatherService service.WeatherService
	timeout        time.Duration
}

func NewWeatherHandler(weatherService service.WeatherService, timeout time.Duration) *WeatherHandler {
	return &WeatherHandler{
		weatherService: weatherService,
		timeout:        timeout,
	}
}

func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	city := strings.TrimSpace(r.URL.Query().Get("q"))
	if city == "" {
		respondWithError(w, http.StatusBadRequest, "city parameter 'q' is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	reading, err := h.weatherService.GetWeather(ctx, city)
	if err != nil {
		code := statusForLookupError(err)
		log.Ctx(ctx).Error().Err(err).Str("city", city).Int("status", code).Msg("failed to get weather data")
		respondWithError(w, code, ui.MessageFor(err))
		return
	}

	respondWithJSON(w, http.StatusOK, WeatherResponse{
		Query:            city,
		City:             reading.City,
		Country:          reading.Country,
		TemperatureC:     reading.TemperatureC,
		WindspeedKmh:     reading.WindspeedKmh,
		WindDirectionDeg: reading.WindDirectionDeg,
		WeatherCode:      reading.WeatherCode,
		Description:      ui.DescribeWeatherCode(reading.WeatherCode),
		Time:             reading.ObservedAt,
	})
}
