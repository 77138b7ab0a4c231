package scheduler_test

import (
	"sync/atomic"
	"testing"
	"time"
	"ulascansenturk/weather-fetcher/internal/scheduler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSweeper struct {
	calls atomic.Int32
}

func (c *countingSweeper) Sweep() int {
	c.calls.Add(1)
	return 1
}

func TestSchedulerRunsSweep(t *testing.T) {
	sweeper := &countingSweeper{}
	s := scheduler.New(time.Second, sweeper)

	require.NoError(t, s.Start())
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return sweeper.calls.Load() >= 1
	}, 3*time.Second, 50*time.Millisecond)
}

func TestSchedulerWaitsForFirstInterval(t *testing.T) {
	sweeper := &countingSweeper{}
	s := scheduler.New(time.Hour, sweeper)

	require.NoError(t, s.Start())
	defer s.Stop()

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), sweeper.calls.Load())
}

func TestSchedulerStopWithoutStart(t *testing.T) {
	s := scheduler.New(time.Minute, &countingSweeper{})

	assert.NotPanics(t, s.Stop)
}
