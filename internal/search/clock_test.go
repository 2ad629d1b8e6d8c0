package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualClockFiresInDeadlineOrder(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewManualClock(start)

	var fired []string
	c.AfterFunc(200*time.Millisecond, func() { fired = append(fired, "late") })
	c.AfterFunc(100*time.Millisecond, func() { fired = append(fired, "early") })
	c.AfterFunc(time.Second, func() { fired = append(fired, "never") })

	c.Advance(50 * time.Millisecond)
	assert.Empty(t, fired)
	assert.Equal(t, 3, c.Pending())

	c.Advance(150 * time.Millisecond)
	assert.Equal(t, []string{"early", "late"}, fired)
	assert.Equal(t, 1, c.Pending())
	assert.Equal(t, start.Add(200*time.Millisecond), c.Now())
}

func TestManualTimerStop(t *testing.T) {
	c := NewManualClock(time.Time{})

	fired := false
	timer := c.AfterFunc(time.Millisecond, func() { fired = true })
	require.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	c.Advance(time.Second)
	assert.False(t, fired)
	assert.Zero(t, c.Pending())

	timer = c.AfterFunc(time.Millisecond, func() { fired = true })
	c.Advance(time.Millisecond)
	assert.True(t, fired)
	assert.False(t, timer.Stop(), "already fired")
}

func TestRealClockAfterFunc(t *testing.T) {
	done := make(chan struct{})
	RealClock().AfterFunc(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
}
