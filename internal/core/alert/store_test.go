package alert_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/devboard/internal/core/alert"
	"github.com/hay-kot/devboard/internal/core/alert/alerttest"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T, opts ...alert.Option) (*alert.Store, *alerttest.Clock) {
	t.Helper()
	clock := alerttest.NewClock(epoch)
	opts = append([]alert.Option{alert.WithClock(clock)}, opts...)
	return alert.NewStore(zerolog.Nop(), opts...), clock
}

func ids(alerts []alert.Alert) []string {
	out := make([]string, len(alerts))
	for i, a := range alerts {
		out[i] = a.ID
	}
	return out
}

func TestStore_Raise_visible_before_return(t *testing.T) {
	s, _ := newTestStore(t)

	id := s.RaiseFor("Please enter something to post.", alert.SeverityDanger, 3*time.Second)

	snap := s.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, id, snap[0].ID)
	assert.Equal(t, "Please enter something to post.", snap[0].Message)
	assert.Equal(t, alert.SeverityDanger, snap[0].Severity)
	assert.Equal(t, epoch, snap[0].CreatedAt)
	assert.Equal(t, epoch.Add(3*time.Second), snap[0].ExpiresAt)
}

func TestStore_Raise_expires_after_timeout(t *testing.T) {
	s, clock := newTestStore(t)

	s.RaiseFor("Please enter something to post.", alert.SeverityDanger, 3*time.Second)

	clock.Advance(2999 * time.Millisecond)
	assert.Len(t, s.Snapshot(), 1)

	clock.Advance(time.Millisecond)
	assert.Empty(t, s.Snapshot())
	assert.Equal(t, 0, clock.Pending())
}

func TestStore_Raise_uses_default_timeout(t *testing.T) {
	s, clock := newTestStore(t)
	assert.Equal(t, alert.DefaultTimeout, s.DefaultTimeout())

	s.Raise("default", alert.SeverityInfo)

	clock.Advance(alert.DefaultTimeout - time.Millisecond)
	assert.Equal(t, 1, s.Len())
	clock.Advance(time.Millisecond)
	assert.Equal(t, 0, s.Len())
}

func TestStore_WithDefaultTimeout(t *testing.T) {
	s, clock := newTestStore(t, alert.WithDefaultTimeout(500*time.Millisecond))

	s.Infof("short %d", 1)

	clock.Advance(499 * time.Millisecond)
	assert.Equal(t, 1, s.Len())
	clock.Advance(time.Millisecond)
	assert.Equal(t, 0, s.Len())
}

func TestStore_WithDefaultTimeout_ignores_negative(t *testing.T) {
	s, _ := newTestStore(t, alert.WithDefaultTimeout(-time.Second))
	assert.Equal(t, alert.DefaultTimeout, s.DefaultTimeout())
}

func TestStore_RaiseFor_zero_timeout(t *testing.T) {
	s, clock := newTestStore(t)

	id := s.RaiseFor("blink", alert.SeverityInfo, 0)
	assert.Equal(t, []string{id}, ids(s.Snapshot()))

	clock.Advance(0)
	assert.Empty(t, s.Snapshot())
}

func TestStore_RaiseFor_negative_timeout_treated_as_zero(t *testing.T) {
	s, clock := newTestStore(t)

	s.RaiseFor("negative", alert.SeverityInfo, -5*time.Second)
	snap := s.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, snap[0].CreatedAt, snap[0].ExpiresAt)

	clock.Advance(0)
	assert.Empty(t, s.Snapshot())
}

func TestStore_Raise_ids_unique(t *testing.T) {
	s, _ := newTestStore(t)

	seen := make(map[string]bool)
	for i := range 500 {
		id := s.Raise(fmt.Sprintf("msg %d", i), alert.SeverityInfo)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Equal(t, 500, s.Len())
}

func TestStore_Raise_accepts_any_input(t *testing.T) {
	s, _ := newTestStore(t)

	s.Raise("", "")
	s.Raise("custom", alert.Severity("not-a-known-severity"))

	snap := s.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "", snap[0].Message)
	assert.Equal(t, alert.Severity("not-a-known-severity"), snap[1].Severity)
}

func TestStore_Remove_before_expiry(t *testing.T) {
	s, clock := newTestStore(t)

	id := s.RaiseFor("Saved", alert.SeveritySuccess, 3*time.Second)
	s.Remove(id)

	assert.Empty(t, s.Snapshot())
	assert.Equal(t, 0, clock.Pending(), "remove should cancel the expiry timer")

	clock.Advance(3 * time.Second)
	assert.Empty(t, s.Snapshot())
}

func TestStore_Remove_unknown_is_noop(t *testing.T) {
	s, _ := newTestStore(t)
	keep := s.Raise("keep", alert.SeverityInfo)

	before := s.Snapshot()
	s.Remove("does-not-exist")
	s.Remove("")

	assert.Equal(t, before, s.Snapshot())
	assert.Equal(t, []string{keep}, ids(s.Snapshot()))
}

func TestStore_Remove_idempotent(t *testing.T) {
	s, _ := newTestStore(t)
	a := s.Raise("a", alert.SeverityInfo)
	b := s.Raise("b", alert.SeverityInfo)

	s.Remove(a)
	once := s.Snapshot()
	s.Remove(a)

	assert.Equal(t, once, s.Snapshot())
	assert.Equal(t, []string{b}, ids(s.Snapshot()))
}

func TestStore_Remove_after_expiry_is_noop(t *testing.T) {
	s, clock := newTestStore(t)
	id := s.RaiseFor("gone", alert.SeverityInfo, time.Second)

	clock.Advance(time.Second)
	require.Empty(t, s.Snapshot())

	s.Remove(id)
	assert.Empty(t, s.Snapshot())
}

func TestStore_Snapshot_preserves_insertion_order(t *testing.T) {
	s, clock := newTestStore(t)

	a := s.RaiseFor("a", alert.SeverityInfo, 10*time.Second)
	b := s.RaiseFor("b", alert.SeverityInfo, time.Second)
	c := s.RaiseFor("c", alert.SeverityInfo, 10*time.Second)
	d := s.RaiseFor("d", alert.SeverityInfo, 10*time.Second)

	assert.Equal(t, []string{a, b, c, d}, ids(s.Snapshot()))

	s.Remove(c)
	assert.Equal(t, []string{a, b, d}, ids(s.Snapshot()))

	clock.Advance(time.Second)
	assert.Equal(t, []string{a, d}, ids(s.Snapshot()))

	e := s.Raise("e", alert.SeverityInfo)
	assert.Equal(t, []string{a, d, e}, ids(s.Snapshot()))
}

func TestStore_Snapshot_empty_not_nil(t *testing.T) {
	s, _ := newTestStore(t)

	snap := s.Snapshot()
	assert.NotNil(t, snap)
	assert.Empty(t, snap)
}

func TestStore_Snapshot_is_a_copy(t *testing.T) {
	s, _ := newTestStore(t)
	id := s.Raise("original", alert.SeverityInfo)

	snap := s.Snapshot()
	snap[0].Message = "mutated"
	snap[0].ID = "other"
	_ = append(snap[:0], alert.Alert{ID: "injected"})

	fresh := s.Snapshot()
	require.Len(t, fresh, 1)
	assert.Equal(t, id, fresh[0].ID)
	assert.Equal(t, "original", fresh[0].Message)
}

func TestStore_same_message_is_independent(t *testing.T) {
	s, clock := newTestStore(t)

	x := s.RaiseFor("Saved", alert.SeveritySuccess, time.Second)
	y := s.RaiseFor("Saved", alert.SeveritySuccess, 2*time.Second)
	require.NotEqual(t, x, y)

	s.Remove(x)
	assert.Equal(t, []string{y}, ids(s.Snapshot()))

	clock.Advance(time.Second)
	assert.Equal(t, []string{y}, ids(s.Snapshot()), "raising the same message must not refresh or share timers")

	clock.Advance(time.Second)
	assert.Empty(t, s.Snapshot())
}

func TestStore_short_timeout_expires_first(t *testing.T) {
	s, clock := newTestStore(t)

	s.RaiseFor("A", alert.SeverityInfo, 100*time.Millisecond)
	y := s.RaiseFor("B", alert.SeverityInfo, 5000*time.Millisecond)

	clock.Advance(150 * time.Millisecond)

	snap := s.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, y, snap[0].ID)
	assert.Equal(t, "B", snap[0].Message)
}

func TestStore_Clear(t *testing.T) {
	s, clock := newTestStore(t)
	s.Raise("a", alert.SeverityInfo)
	s.Raise("b", alert.SeverityDanger)

	s.Clear()

	assert.Empty(t, s.Snapshot())
	assert.Equal(t, 0, clock.Pending())

	id := s.Raise("after clear", alert.SeverityInfo)
	assert.Equal(t, []string{id}, ids(s.Snapshot()))
}

func TestStore_formatted_helpers(t *testing.T) {
	s, _ := newTestStore(t)

	s.Successf("saved %s", "profile")
	s.Dangerf("failed %d", 2)
	s.Warnf("careful")
	s.Infof("fyi")

	snap := s.Snapshot()
	require.Len(t, snap, 4)
	assert.Equal(t, "saved profile", snap[0].Message)
	assert.Equal(t, alert.SeveritySuccess, snap[0].Severity)
	assert.Equal(t, "failed 2", snap[1].Message)
	assert.Equal(t, alert.SeverityDanger, snap[1].Severity)
	assert.Equal(t, alert.SeverityWarning, snap[2].Severity)
	assert.Equal(t, alert.SeverityInfo, snap[3].Severity)
}

func TestStore_Subscribe_receives_events(t *testing.T) {
	s, clock := newTestStore(t)

	var events []alert.Event
	s.Subscribe(func(e alert.Event) {
		events = append(events, e)
	})

	a := s.RaiseFor("a", alert.SeverityInfo, time.Second)
	b := s.RaiseFor("b", alert.SeverityInfo, 10*time.Second)
	s.Remove(b)
	s.Remove(b)
	clock.Advance(time.Second)
	s.Raise("c", alert.SeverityInfo)
	s.Clear()
	s.Clear()

	require.Len(t, events, 5)
	assert.Equal(t, alert.EventRaised, events[0].Kind)
	assert.Equal(t, a, events[0].Alert.ID)
	assert.Equal(t, alert.EventRaised, events[1].Kind)
	assert.Equal(t, alert.EventRemoved, events[2].Kind)
	assert.Equal(t, b, events[2].Alert.ID)
	assert.Equal(t, alert.EventExpired, events[3].Kind)
	assert.Equal(t, a, events[3].Alert.ID)
	assert.Equal(t, alert.EventCleared, events[4].Kind)
}

func TestStore_Subscribe_sees_updated_snapshot(t *testing.T) {
	s, _ := newTestStore(t)

	var lens []int
	s.Subscribe(func(alert.Event) {
		lens = append(lens, s.Len())
	})

	id := s.Raise("a", alert.SeverityInfo)
	s.Raise("b", alert.SeverityInfo)
	s.Remove(id)

	assert.Equal(t, []int{1, 2, 1}, lens)
}

func TestStore_Subscribe_unsubscribe(t *testing.T) {
	s, _ := newTestStore(t)

	calls := 0
	unsubscribe := s.Subscribe(func(alert.Event) { calls++ })

	s.Raise("a", alert.SeverityInfo)
	unsubscribe()
	s.Raise("b", alert.SeverityInfo)

	assert.Equal(t, 1, calls)
}

func TestStore_system_clock_expiry(t *testing.T) {
	s := alert.NewStore(zerolog.Nop())

	id := s.RaiseFor("real timer", alert.SeverityInfo, 20*time.Millisecond)
	assert.Equal(t, []string{id}, ids(s.Snapshot()))

	assert.Eventually(t, func() bool {
		return s.Len() == 0
	}, time.Second, 5*time.Millisecond)
}

func TestStore_concurrent_use(t *testing.T) {
	s := alert.NewStore(zerolog.Nop())
	t.Cleanup(s.Clear)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := s.RaiseFor(fmt.Sprintf("worker %d", i), alert.SeverityInfo, time.Millisecond)
			_ = s.Snapshot()
			if i%2 == 0 {
				s.Remove(id)
			}
		}()
	}
	wg.Wait()

	assert.Eventually(t, func() bool {
		return s.Len() == 0
	}, time.Second, 5*time.Millisecond)
}

func TestStore_Now_follows_clock(t *testing.T) {
	s, clock := newTestStore(t)
	assert.Equal(t, epoch, s.Now())

	clock.Advance(1500 * time.Millisecond)
	assert.Equal(t, epoch.Add(1500*time.Millisecond), s.Now())
}
