package alert

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultTimeout is how long an alert stays visible when no timeout is given.
const DefaultTimeout = 3 * time.Second

// Subscriber is invoked after every mutation of the store.
type Subscriber func(Event)

type subscription struct {
	fn Subscriber
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the system clock, mainly for tests.
func WithClock(c Clock) Option {
	return func(s *Store) {
		s.clock = c
	}
}

// WithDefaultTimeout sets the timeout used by Raise and the formatted helpers.
// Negative values are ignored.
func WithDefaultTimeout(d time.Duration) Option {
	return func(s *Store) {
		if d >= 0 {
			s.defaultTimeout = d
		}
	}
}

// Store is the ordered collection of visible alerts. Every alert is removed
// automatically once its timeout elapses, or earlier through Remove.
//
// A Store is owned by one application session and handed to every component
// that raises or renders alerts. It is safe for concurrent use; expiry
// callbacks run on timer goroutines.
type Store struct {
	log            zerolog.Logger
	clock          Clock
	defaultTimeout time.Duration

	mu          sync.Mutex
	alerts      []Alert
	timers      map[string]Timer
	subscribers []*subscription
}

// NewStore creates an empty store.
func NewStore(logger zerolog.Logger, opts ...Option) *Store {
	s := &Store{
		log:            logger,
		clock:          SystemClock(),
		defaultTimeout: DefaultTimeout,
		timers:         make(map[string]Timer),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DefaultTimeout returns the timeout applied by Raise.
func (s *Store) DefaultTimeout() time.Duration {
	return s.defaultTimeout
}

// Now returns the store clock's current time, for computing Alert.Remaining.
func (s *Store) Now() time.Time {
	return s.clock.Now()
}

// Raise adds an alert that expires after the store's default timeout and
// returns its id.
func (s *Store) Raise(message string, severity Severity) string {
	return s.RaiseFor(message, severity, s.defaultTimeout)
}

// RaiseFor adds an alert that expires after timeout and returns its id. A
// timeout of zero or less schedules the removal immediately, so the alert may
// already be gone by the time the caller reads a snapshot; with a positive
// timeout it is visible until the timeout elapses or it is removed.
func (s *Store) RaiseFor(message string, severity Severity, timeout time.Duration) string {
	timeout = max(timeout, 0)

	now := s.clock.Now()
	a := Alert{
		ID:        uuid.NewString(),
		Message:   message,
		Severity:  severity,
		CreatedAt: now,
		ExpiresAt: now.Add(timeout),
	}

	s.mu.Lock()
	s.alerts = append(s.alerts, a)
	// Registered under the lock so an immediate expiry cannot run before the
	// timer is recorded.
	s.timers[a.ID] = s.clock.AfterFunc(timeout, func() { s.expire(a.ID) })
	s.mu.Unlock()

	s.log.Debug().
		Str("alert_id", a.ID).
		Str("severity", string(severity)).
		Dur("timeout", timeout).
		Msg("alert raised")

	s.publish(Event{Kind: EventRaised, Alert: a})
	return a.ID
}

// Successf raises a success alert with the default timeout.
func (s *Store) Successf(format string, args ...any) string {
	return s.Raise(fmt.Sprintf(format, args...), SeveritySuccess)
}

// Dangerf raises a danger alert with the default timeout.
func (s *Store) Dangerf(format string, args ...any) string {
	return s.Raise(fmt.Sprintf(format, args...), SeverityDanger)
}

// Warnf raises a warning alert with the default timeout.
func (s *Store) Warnf(format string, args ...any) string {
	return s.Raise(fmt.Sprintf(format, args...), SeverityWarning)
}

// Infof raises an info alert with the default timeout.
func (s *Store) Infof(format string, args ...any) string {
	return s.Raise(fmt.Sprintf(format, args...), SeverityInfo)
}

// Remove deletes the alert with the given id and cancels its expiry. Unknown
// ids are ignored.
func (s *Store) Remove(id string) {
	a, ok := s.take(id)
	if !ok {
		return
	}

	s.log.Debug().Str("alert_id", id).Msg("alert removed")
	s.publish(Event{Kind: EventRemoved, Alert: a})
}

func (s *Store) expire(id string) {
	a, ok := s.take(id)
	if !ok {
		return
	}

	s.log.Debug().Str("alert_id", id).Msg("alert expired")
	s.publish(Event{Kind: EventExpired, Alert: a})
}

// take removes id from the collection and stops its timer.
func (s *Store) take(id string) (Alert, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.alerts, func(a Alert) bool { return a.ID == id })
	if idx < 0 {
		return Alert{}, false
	}

	a := s.alerts[idx]
	s.alerts = slices.Delete(s.alerts, idx, idx+1)
	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}
	return a, true
}

// Clear removes every alert and cancels all pending expiries.
func (s *Store) Clear() {
	s.mu.Lock()
	n := len(s.alerts)
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
	s.alerts = nil
	s.mu.Unlock()

	if n == 0 {
		return
	}

	s.log.Debug().Int("count", n).Msg("alerts cleared")
	s.publish(Event{Kind: EventCleared})
}

// Snapshot returns the visible alerts in the order they were raised. The
// returned slice is a copy and is never nil.
func (s *Store) Snapshot() []Alert {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Alert, len(s.alerts))
	copy(out, s.alerts)
	return out
}

// Len returns the number of visible alerts.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.alerts)
}

// Subscribe registers fn to be called after every mutation. Subscribers run
// synchronously on the goroutine that mutated the store, without the store
// lock held. The returned func unregisters fn.
func (s *Store) Subscribe(fn Subscriber) func() {
	sub := &subscription{fn: fn}

	s.mu.Lock()
	s.subscribers = append(s.subscribers, sub)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.subscribers = slices.DeleteFunc(s.subscribers, func(o *subscription) bool { return o == sub })
	}
}

func (s *Store) publish(e Event) {
	s.mu.Lock()
	subs := make([]*subscription, len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(e)
	}
}
