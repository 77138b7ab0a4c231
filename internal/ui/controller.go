package ui

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-fetcher/internal/service"
)

// Controller owns the State of one page session and runs lookups on its behalf.
type Controller struct {
	weatherService service.WeatherService

	mu    sync.Mutex
	state State
	wg    sync.WaitGroup
}

func NewController(weatherService service.WeatherService) *Controller {
	return &Controller{
		weatherService: weatherService,
		state:          NewState(),
	}
}

func (c *Controller) SetInput(value string) {
	c.dispatch(InputChanged{Value: value})
}

func (c *Controller) ToggleTheme() {
	c.dispatch(ThemeToggled{})
}

// Submit starts a lookup for the current input. It returns false when the submit was ignored
// because the input is blank or a lookup is already running. The lookup outlives ctx's
// cancellation but keeps its values.
func (c *Controller) Submit(ctx context.Context) bool {
	c.mu.Lock()
	next, start := Transition(c.state, Submitted{})
	c.state = next
	if start {
		c.wg.Add(1)
	}
	c.mu.Unlock()

	if !start {
		return false
	}

	query := next.Query()
	lookupCtx := context.WithoutCancel(ctx)

	go func() {
		defer c.wg.Done()

		reading, err := c.weatherService.GetWeather(lookupCtx, query)
		if err != nil {
			log.Ctx(lookupCtx).Warn().Err(err).Str("city", query).Msg("weather lookup failed")
			c.dispatch(LookupFailed{Err: err})
			return
		}
		c.dispatch(LookupSucceeded{Reading: reading})
	}()

	return true
}

// Wait blocks until the in-flight lookup, if any, has been applied.
func (c *Controller) Wait() {
	c.wg.Wait()
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

func (c *Controller) View() View {
	return Render(c.State())
}

func (c *Controller) dispatch(e Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state, _ = Transition(c.state, e)
}
