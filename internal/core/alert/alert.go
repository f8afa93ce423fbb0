// Package alert holds the transient user-facing notifications raised by the
// rest of the application and removes them once their timeout elapses.
package alert

import "time"

// Severity is a free-form presentation label. The constants below are the
// labels the client styles know about; any other value is accepted as-is.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityDanger  Severity = "danger"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
	SeverityPrimary Severity = "primary"
	SeverityDark    Severity = "dark"
	SeverityLight   Severity = "light"
)

// Alert is a single visible notification.
type Alert struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Remaining returns how long the alert stays visible as of now, never negative.
func (a Alert) Remaining(now time.Time) time.Duration {
	return max(a.ExpiresAt.Sub(now), 0)
}

// EventKind describes the mutation that produced an Event.
type EventKind string

const (
	EventRaised  EventKind = "raised"
	EventRemoved EventKind = "removed"
	EventExpired EventKind = "expired"
	EventCleared EventKind = "cleared"
)

// Event is delivered to subscribers after every mutation of the store.
// Alert is the zero value for EventCleared.
type Event struct {
	Kind  EventKind
	Alert Alert
}
