package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a new logger with a component identifier.
// Uses the "cmp" key for consistency with zerolog conventions.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}

// SessionComponent is Component with the application session ID attached to
// every event, for components whose lifetime is bound to one session.
func SessionComponent(name, sessionID string) zerolog.Logger {
	return log.With().Str("cmp", name).Str("session_id", sessionID).Logger()
}
