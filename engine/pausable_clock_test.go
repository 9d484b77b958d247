package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPausableClockFreezesWhilePaused(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)
	clock := NewPausableClockWith(mock)

	mock.Advance(time.Second)
	assert.Equal(t, start.Add(time.Second), clock.Now())

	clock.Pause()
	assert.True(t, clock.IsPaused())
	mock.Advance(5 * time.Second)
	assert.Equal(t, start.Add(time.Second), clock.Now())
	assert.Equal(t, 5*time.Second, clock.TotalPauseDuration())

	clock.Resume()
	mock.Advance(2 * time.Second)
	assert.Equal(t, start.Add(3*time.Second), clock.Now())
	assert.Equal(t, 5*time.Second, clock.TotalPauseDuration())
}

func TestPausableClockIdempotentPauseResume(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewPausableClockWith(mock)

	clock.Resume() // not paused, no-op
	clock.Pause()
	mock.Advance(time.Second)
	clock.Pause() // must not reset pause start
	mock.Advance(time.Second)
	clock.Resume()

	assert.Equal(t, 2*time.Second, clock.TotalPauseDuration())
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)
	assert.Equal(t, startTime, mock.Now())

	newTime := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.SetTime(newTime)
	mock.Advance(time.Hour)
	assert.Equal(t, newTime.Add(time.Hour), mock.Now())
}
