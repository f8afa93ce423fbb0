package tui

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/devboard/internal/core/alert"
	"github.com/hay-kot/devboard/internal/core/alert/alerttest"
)

func newSignalStore() (*alert.Store, *alerttest.Clock) {
	clock := alerttest.NewClock(time.Now())
	return alert.NewStore(zerolog.Nop(), alert.WithClock(clock)), clock
}

func TestAlertSignal_WaitForSignal_after_raise(t *testing.T) {
	store, _ := newSignalStore()
	s := NewAlertSignal(store)
	defer s.Close()

	store.Raise("hello", alert.SeverityInfo)

	msg := s.WaitForSignal()()
	_, ok := msg.(alertsChangedMsg)
	require.True(t, ok)
}

func TestAlertSignal_coalesces(t *testing.T) {
	store, clock := newSignalStore()
	s := NewAlertSignal(store)
	defer s.Close()

	store.RaiseFor("one", alert.SeverityInfo, time.Second)
	store.Raise("two", alert.SeverityInfo)
	clock.Advance(time.Second)

	_ = s.WaitForSignal()()
	assert.Empty(t, s.signal, "multiple mutations should collapse into one signal")
}

func TestAlertSignal_Close_stops_signals(t *testing.T) {
	store, _ := newSignalStore()
	s := NewAlertSignal(store)
	s.Close()

	store.Raise("ignored", alert.SeverityInfo)
	assert.Empty(t, s.signal)
}

func TestAlertSignal_from_timer_goroutine(t *testing.T) {
	store := alert.NewStore(zerolog.Nop())
	s := NewAlertSignal(store)
	defer s.Close()

	store.RaiseFor("expires", alert.SeverityInfo, 10*time.Millisecond)
	_ = s.WaitForSignal()() // raised

	done := make(chan struct{})
	go func() {
		_ = s.WaitForSignal()() // expired
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expiry did not signal")
	}
	assert.Equal(t, 0, store.Len())
}
