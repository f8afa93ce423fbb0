package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/devboard/internal/core/styles"
)

const iconDot = "•"

type viewStyles struct {
	title   lipgloss.Style
	heading lipgloss.Style
	muted   lipgloss.Style
}

func newViewStyles(p styles.Palette) viewStyles {
	return viewStyles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
		heading: lipgloss.NewStyle().Bold(true).Foreground(p.Foreground),
		muted:   lipgloss.NewStyle().Foreground(p.Muted),
	}
}
