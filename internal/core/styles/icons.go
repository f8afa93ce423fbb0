package styles

import "github.com/hay-kot/devboard/internal/core/alert"

var (
	IconSuccess = "✓"
	IconDanger  = "✗"
	IconWarning = "!"
	IconInfo    = "i"
	IconDefault = "•"
)

// Icon returns the glyph shown in front of an alert message.
func Icon(sev alert.Severity) string {
	switch sev {
	case alert.SeveritySuccess:
		return IconSuccess
	case alert.SeverityDanger:
		return IconDanger
	case alert.SeverityWarning:
		return IconWarning
	case alert.SeverityInfo, alert.SeverityPrimary:
		return IconInfo
	default:
		return IconDefault
	}
}
