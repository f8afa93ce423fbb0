package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/hay-kot/devboard/internal/core/alert"
	"github.com/hay-kot/devboard/internal/core/styles"
)

const toastWidth = 50

// ToastView renders the alert store's snapshot as a vertical stack of
// toasts, oldest at the top and newest at the bottom.
type ToastView struct {
	store  *alert.Store
	styles *styles.Severities
	width  int
}

func NewToastView(store *alert.Store, severities *styles.Severities) *ToastView {
	return &ToastView{
		store:  store,
		styles: severities,
		width:  toastWidth,
	}
}

// SetWidth sets the width of each toast. Values below 10 are ignored.
func (v *ToastView) SetWidth(w int) {
	if w >= 10 {
		v.width = w
	}
}

// View renders the current snapshot. It returns "" when no alerts are visible.
func (v *ToastView) View() string {
	alerts := v.store.Snapshot()
	if len(alerts) == 0 {
		return ""
	}

	now := v.store.Now()
	rendered := make([]string, 0, len(alerts))
	for _, a := range alerts {
		rendered = append(rendered, v.renderToast(a, now))
	}

	return strings.Join(rendered, "\n")
}

func (v *ToastView) renderToast(a alert.Alert, now time.Time) string {
	content := styles.Icon(a.Severity) + " " + a.Message
	if remaining := a.Remaining(now); remaining > 0 {
		content += fmt.Sprintf("  %ds", int(remaining.Round(time.Second).Seconds()))
	}
	return v.styles.Style(a.Severity).Width(v.width).Render(content)
}
