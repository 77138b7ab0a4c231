package ui

import (
	"fmt"
	"math"
)

const (
	submitLabel        = "Get Weather"
	submitLabelLoading = "Fetching..."
	observedAtLayout   = "1/2/2006, 3:04:05 PM"
)

type View struct {
	Theme            Theme        `json:"theme"`
	ThemeToggleLabel string       `json:"themeToggleLabel"`
	ThemeToggleAria  string       `json:"themeToggleAria"`
	Input            string       `json:"input"`
	Status           Status       `json:"status"`
	SubmitDisabled   bool         `json:"submitDisabled"`
	SubmitLabel      string       `json:"submitLabel"`
	ShowError        bool         `json:"showError"`
	Error            string       `json:"error,omitempty"`
	ShowNoResult     bool         `json:"showNoResult"`
	Result           *ResultPanel `json:"result,omitempty"`
}

type ResultPanel struct {
	Place       string `json:"place"`
	ObservedAt  string `json:"observedAt"`
	Temperature string `json:"temperature"`
	Description string `json:"description"`
	Wind        string `json:"wind"`
}

// Render derives what the page shows from s.
func Render(s State) View {
	v := View{
		Theme:          s.Theme,
		Input:          s.Input,
		Status:         s.Status,
		SubmitDisabled: s.Query() == "" || s.Status == StatusLoading,
		SubmitLabel:    submitLabel,
	}

	if s.Theme == ThemeDark {
		v.ThemeToggleLabel = "☀️ Light"
		v.ThemeToggleAria = "Switch to light mode"
	} else {
		v.ThemeToggleLabel = "🌙 Dark"
		v.ThemeToggleAria = "Switch to dark mode"
	}

	switch s.Status {
	case StatusLoading:
		v.SubmitLabel = submitLabelLoading
	case StatusError:
		v.ShowError = true
		v.Error = s.Err
	case StatusSuccess:
		if s.Result == nil {
			v.ShowNoResult = true
			break
		}
		r := s.Result
		v.Result = &ResultPanel{
			Place:       fmt.Sprintf("%s, %s", r.City, r.Country),
			ObservedAt:  r.ObservedAt.Format(observedAtLayout),
			Temperature: fmt.Sprintf("%d°C", roundHalfUp(r.TemperatureC)),
			Description: DescribeWeatherCode(r.WeatherCode),
			Wind:        fmt.Sprintf("Wind: %d km/h (%d°)", roundHalfUp(r.WindspeedKmh), roundHalfUp(r.WindDirectionDeg)),
		}
	}

	return v
}

// roundHalfUp rounds .5 toward positive infinity, so -2.5 becomes -2.
func roundHalfUp(f float64) int {
	return int(math.Floor(f + 0.5))
}
