package alerttest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClock_Advance_fires_in_deadline_order(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewClock(start)

	var fired []string
	var firedAt []time.Time
	record := func(name string) func() {
		return func() {
			fired = append(fired, name)
			firedAt = append(firedAt, c.Now())
		}
	}

	c.AfterFunc(3*time.Second, record("late"))
	c.AfterFunc(time.Second, record("early"))
	c.AfterFunc(time.Second, record("early-second"))
	c.AfterFunc(10*time.Second, record("never"))

	c.Advance(5 * time.Second)

	assert.Equal(t, []string{"early", "early-second", "late"}, fired)
	assert.Equal(t, []time.Time{start.Add(time.Second), start.Add(time.Second), start.Add(3 * time.Second)}, firedAt)
	assert.Equal(t, start.Add(5*time.Second), c.Now())
	assert.Equal(t, 1, c.Pending())
}

func TestClock_Stop(t *testing.T) {
	c := NewClock(time.Now())

	fired := false
	tm := c.AfterFunc(time.Second, func() { fired = true })

	assert.True(t, tm.Stop())
	assert.False(t, tm.Stop())

	c.Advance(time.Minute)
	assert.False(t, fired)
	assert.Equal(t, 0, c.Pending())
}

func TestClock_callback_can_schedule(t *testing.T) {
	c := NewClock(time.Now())

	count := 0
	var tick func()
	tick = func() {
		count++
		if count < 3 {
			c.AfterFunc(time.Second, tick)
		}
	}
	c.AfterFunc(time.Second, tick)

	c.Advance(10 * time.Second)
	assert.Equal(t, 3, count)
}
