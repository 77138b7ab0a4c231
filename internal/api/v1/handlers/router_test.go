package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
	"ulascansenturk/weather-fetcher/internal/api/v1/handlers"
	"ulascansenturk/weather-fetcher/internal/mocks"
	"ulascansenturk/weather-fetcher/internal/providers"
	"ulascansenturk/weather-fetcher/internal/service"
	"ulascansenturk/weather-fetcher/internal/sessions"
	"ulascansenturk/weather-fetcher/internal/ui"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RouterTestSuite struct {
	suite.Suite
	mockService *mocks.MockWeatherService
	store       *sessions.InMemoryStore
	server      *httptest.Server
	client      *http.Client
}

func (s *RouterTestSuite) SetupTest() {
	s.mockService = mocks.NewMockWeatherService(s.T())
	s.store = sessions.NewInMemoryStore(time.Minute, func() *ui.Controller {
		return ui.NewController(s.mockService)
	})

	router := handlers.NewRouter(
		zerolog.Nop(),
		handlers.NewWeatherHandler(s.mockService, time.Second),
		handlers.NewPageHandler(s.store, false),
	)
	s.server = httptest.NewServer(router)

	jar, err := cookiejar.New(nil)
	s.Require().NoError(err)
	s.client = &http.Client{Jar: jar, Timeout: 5 * time.Second}
}

func (s *RouterTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *RouterTestSuite) get(path string) *http.Response {
	resp, err := s.client.Get(s.server.URL + path)
	s.Require().NoError(err)
	return resp
}

func (s *RouterTestSuite) postForm(path string, form url.Values) *http.Response {
	resp, err := s.client.PostForm(s.server.URL+path, form)
	s.Require().NoError(err)
	return resp
}

func (s *RouterTestSuite) readBody(resp *http.Response) string {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return string(body)
}

func (s *RouterTestSuite) state() ui.View {
	resp := s.get("/api/v1/state")
	defer resp.Body.Close()

	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var view ui.View
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&view))
	return view
}

func (s *RouterTestSuite) waitForStatus(status ui.Status) ui.View {
	var view ui.View
	s.Require().Eventually(func() bool {
		view = s.state()
		return view.Status == status
	}, 2*time.Second, 10*time.Millisecond)
	return view
}

func (s *RouterTestSuite) TestInitialPage() {
	resp := s.get("/")
	body := s.readBody(resp)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(resp.Header.Get("Content-Type"), "text/html")
	s.Contains(body, `<html lang="en" data-theme="light">`)
	s.Contains(body, "Get Weather")
	s.Contains(body, "🌙 Dark")
	s.NotContains(body, "No result.")
	s.Equal(1, s.store.Len())

	view := s.state()
	s.Equal(ui.StatusIdle, view.Status)
	s.True(view.SubmitDisabled)
	s.Equal(1, s.store.Len())
}

func (s *RouterTestSuite) TestLookupSuccess() {
	s.mockService.On("GetWeather", mock.Anything, "London").Return(service.WeatherReading{
		City:             "London",
		Country:          "United Kingdom",
		TemperatureC:     15.46,
		WindspeedKmh:     10.04,
		WindDirectionDeg: 199.5,
		WeatherCode:      3,
		ObservedAt:       time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}, nil).Once()

	resp := s.postForm("/lookup", url.Values{"city": {"London"}})
	s.readBody(resp)
	s.Equal(http.StatusOK, resp.StatusCode)

	view := s.waitForStatus(ui.StatusSuccess)
	s.Require().NotNil(view.Result)
	s.Equal("London, United Kingdom", view.Result.Place)
	s.Equal("15°C", view.Result.Temperature)
	s.Equal("Overcast", view.Result.Description)
	s.Equal("Wind: 10 km/h (200°)", view.Result.Wind)

	page := s.readBody(s.get("/"))
	s.Contains(page, "London, United Kingdom")
	s.Contains(page, "15°C")
	s.Contains(page, "Overcast")
}

func (s *RouterTestSuite) TestLookupError() {
	s.mockService.On("GetWeather", mock.Anything, "Atlantis").
		Return(service.WeatherReading{}, providers.ErrCityNotFound).Once()

	s.readBody(s.postForm("/lookup", url.Values{"city": {"Atlantis"}}))

	view := s.waitForStatus(ui.StatusError)
	s.True(view.ShowError)
	s.Equal("City not found. Please check the spelling and try again.", view.Error)
	s.Nil(view.Result)

	page := s.readBody(s.get("/"))
	s.Contains(page, `role="alert"`)
	s.Contains(page, "City not found")
}

func (s *RouterTestSuite) TestBlankLookupIsIgnored() {
	s.readBody(s.postForm("/lookup", url.Values{"city": {"   "}}))

	view := s.state()
	s.Equal(ui.StatusIdle, view.Status)
	s.Equal("   ", view.Input)
	s.mockService.AssertNotCalled(s.T(), "GetWeather")
}

func (s *RouterTestSuite) TestLoadingPageAutoRefreshes() {
	release := make(chan struct{})
	s.mockService.On("GetWeather", mock.Anything, "Tokyo").
		Run(func(args mock.Arguments) {
			<-release
		}).
		Return(service.WeatherReading{City: "Tokyo", Country: "Japan"}, nil).Once()

	page := s.readBody(s.postForm("/lookup", url.Values{"city": {"Tokyo"}}))
	s.Contains(page, "Fetching...")
	s.Contains(page, `http-equiv="refresh"`)

	s.readBody(s.postForm("/lookup", url.Values{"city": {"Tokyo"}}))

	close(release)
	s.waitForStatus(ui.StatusSuccess)
	s.mockService.AssertNumberOfCalls(s.T(), "GetWeather", 1)
}

func (s *RouterTestSuite) TestToggleTheme() {
	page := s.readBody(s.postForm("/theme", nil))
	s.Contains(page, `<html lang="en" data-theme="dark">`)
	s.Contains(page, "☀️ Light")

	view := s.state()
	s.Equal(ui.ThemeDark, view.Theme)
	s.Equal("Switch to light mode", view.ThemeToggleAria)

	s.readBody(s.postForm("/theme", nil))
	s.Equal(ui.ThemeLight, s.state().Theme)
}

func (s *RouterTestSuite) TestSessionsAreIsolated() {
	s.readBody(s.postForm("/theme", nil))
	s.Equal(ui.ThemeDark, s.state().Theme)

	other := &http.Client{Timeout: 5 * time.Second}
	resp, err := other.Get(s.server.URL + "/api/v1/state")
	s.Require().NoError(err)
	defer resp.Body.Close()

	var view ui.View
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&view))
	s.Equal(ui.ThemeLight, view.Theme)
}

func (s *RouterTestSuite) TestSessionCookie() {
	resp := s.get("/")
	s.readBody(resp)

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == handlers.SessionCookieName {
			cookie = c
		}
	}
	s.Require().NotNil(cookie)
	s.True(cookie.HttpOnly)
	s.Equal(http.SameSiteLaxMode, cookie.SameSite)

	_, ok := s.store.Get(cookie.Value)
	s.True(ok)

	// a known session is not re-issued
	resp = s.get("/")
	s.readBody(resp)
	s.Empty(resp.Cookies())
}

func (s *RouterTestSuite) TestWeatherEndpoint() {
	s.mockService.On("GetWeather", mock.Anything, "Oslo").
		Return(service.WeatherReading{City: "Oslo", Country: "Norway", WeatherCode: 0}, nil).Once()

	resp := s.get("/weather?q=Oslo")
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("application/json", resp.Header.Get("Content-Type"))

	var response handlers.WeatherResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))
	s.Equal("Oslo", response.City)
	s.Equal("Clear sky", response.Description)
}

func (s *RouterTestSuite) TestHealthz() {
	resp := s.get("/healthz")
	body := s.readBody(resp)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.JSONEq(`{"status":"ok"}`, body)
}

func (s *RouterTestSuite) TestUnknownRoute() {
	resp := s.get("/nope")
	defer resp.Body.Close()

	s.Equal(http.StatusNotFound, resp.StatusCode)

	var response handlers.ErrorResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))
	s.Require().Len(response.Errors, 1)
	s.Equal("NOT_FOUND", response.Errors[0].Code)
}

func (s *RouterTestSuite) TestWrongMethod() {
	req, err := http.NewRequest(http.MethodDelete, s.server.URL+"/weather?q=Oslo", strings.NewReader(""))
	s.Require().NoError(err)

	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusMethodNotAllowed, resp.StatusCode)

	var response handlers.ErrorResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))
	s.Equal("METHOD_NOT_ALLOWED", response.Errors[0].Code)
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
