package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hay-kot/devboard/internal/core/alert"
)

type alertsChangedMsg struct{}

// AlertSignal turns alert store mutations into bubbletea messages. Pending
// signals collapse into one; the model re-reads the snapshot on render.
type AlertSignal struct {
	signal      chan struct{}
	unsubscribe func()
}

// NewAlertSignal subscribes to store.
func NewAlertSignal(store *alert.Store) *AlertSignal {
	s := &AlertSignal{signal: make(chan struct{}, 1)}
	s.unsubscribe = store.Subscribe(func(alert.Event) {
		select {
		case s.signal <- struct{}{}:
		default:
		}
	})
	return s
}

// WaitForSignal blocks until the store has changed since the last signal.
func (s *AlertSignal) WaitForSignal() tea.Cmd {
	return func() tea.Msg {
		<-s.signal
		return alertsChangedMsg{}
	}
}

// Close stops listening to the store.
func (s *AlertSignal) Close() {
	s.unsubscribe()
}
