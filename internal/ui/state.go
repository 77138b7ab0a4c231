package ui

import (
	"errors"
	"fmt"
	"strings"

	"ulascansenturk/weather-fetcher/internal/providers"
	"ulascansenturk/weather-fetcher/internal/service"
)

const (
	cityNotFoundMessage     = "City not found. Please check the spelling and try again."
	noCurrentWeatherMessage = "No current weather data available for the selected location."
	fallbackMessage         = "Something went wrong while fetching weather."
)

type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	switch string(text) {
	case "idle":
		*s = StatusIdle
	case "loading":
		*s = StatusLoading
	case "success":
		*s = StatusSuccess
	case "error":
		*s = StatusError
	default:
		return fmt.Errorf("unknown status %q", text)
	}
	return nil
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// State is everything one page session knows. Result is only meaningful in StatusSuccess
// and Err only in StatusError.
type State struct {
	Theme  Theme
	Input  string
	Status Status
	Result *service.WeatherReading
	Err    string
}

func NewState() State {
	return State{Theme: ThemeLight, Status: StatusIdle}
}

// Query is the trimmed input that a submit would dispatch.
func (s State) Query() string {
	return strings.TrimSpace(s.Input)
}

type Event interface {
	isEvent()
}

type InputChanged struct {
	Value string
}

type Submitted struct{}

type LookupSucceeded struct {
	Reading service.WeatherReading
}

type LookupFailed struct {
	Err error
}

type ThemeToggled struct{}

func (InputChanged) isEvent()    {}
func (Submitted) isEvent()       {}
func (LookupSucceeded) isEvent() {}
func (LookupFailed) isEvent()    {}
func (ThemeToggled) isEvent()    {}

// Transition applies e to s. The returned flag is true when the caller must start a lookup
// for next.Query().
func Transition(s State, e Event) (State, bool) {
	switch ev := e.(type) {
	case InputChanged:
		s.Input = ev.Value
		return s, false

	case Submitted:
		if s.Query() == "" || s.Status == StatusLoading {
			return s, false
		}
		s.Status = StatusLoading
		s.Result = nil
		s.Err = ""
		return s, true

	case LookupSucceeded:
		if s.Status != StatusLoading {
			return s, false
		}
		reading := ev.Reading
		s.Result = &reading
		s.Status = StatusSuccess
		return s, false

	case LookupFailed:
		if s.Status != StatusLoading {
			return s, false
		}
		s.Err = MessageFor(ev.Err)
		s.Status = StatusError
		return s, false

	case ThemeToggled:
		s.Theme = s.Theme.Toggle()
		return s, false
	}

	return s, false
}

// MessageFor turns a lookup failure into the text shown to the user.
func MessageFor(err error) string {
	switch {
	case err == nil:
		return fallbackMessage
	case errors.Is(err, providers.ErrCityNotFound):
		return cityNotFoundMessage
	case errors.Is(err, providers.ErrNoCurrentWeather):
		return noCurrentWeatherMessage
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallbackMessage
}
