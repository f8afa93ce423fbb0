package commands

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/hay-kot/devboard/internal/core/alert"
	"github.com/hay-kot/devboard/internal/core/styles"
	"github.com/hay-kot/devboard/pkg/iojson"
)

// writeAlerts prints the snapshot as a table, or as JSON lines when
// jsonOutput is set.
func writeAlerts(w io.Writer, alerts []alert.Alert, now time.Time, jsonOutput bool) error {
	if jsonOutput {
		for _, a := range alerts {
			if err := iojson.WriteLine(w, a); err != nil {
				return fmt.Errorf("encode alert: %w", err)
			}
		}
		return nil
	}

	if len(alerts) == 0 {
		_, _ = fmt.Fprintln(w, "No alerts")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tSEVERITY\tMESSAGE\tEXPIRES IN")
	for _, a := range alerts {
		_, _ = fmt.Fprintf(tw, "%s\t%s %s\t%s\t%s\n",
			a.ID, styles.Icon(a.Severity), a.Severity, a.Message, a.Remaining(now).Round(time.Millisecond))
	}
	return tw.Flush()
}

// eventLine is the JSON output format for raise --wait --json.
type eventLine struct {
	Event alert.EventKind `json:"event"`
	Alert *alert.Alert    `json:"alert,omitempty"`
}

// writeEvent prints one store mutation.
func writeEvent(w io.Writer, sev *styles.Severities, e alert.Event, jsonOutput bool) error {
	if jsonOutput {
		line := eventLine{Event: e.Kind}
		if e.Kind != alert.EventCleared {
			line.Alert = &e.Alert
		}
		if err := iojson.WriteLine(w, line); err != nil {
			return fmt.Errorf("encode event: %w", err)
		}
		return nil
	}

	if e.Kind == alert.EventCleared {
		_, err := fmt.Fprintln(w, "cleared")
		return err
	}

	toast := sev.Style(e.Alert.Severity).Render(styles.Icon(e.Alert.Severity) + " " + e.Alert.Message)
	_, err := fmt.Fprintf(w, "%-8s %s\n", e.Kind, toast)
	return err
}
