package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	themeDark  = "dark"
	themeLight = "light"
)

type palette struct {
	accent lipgloss.Color
	muted  lipgloss.Color
	danger lipgloss.Color
	ok     lipgloss.Color
}

var palettes = map[string]palette{
	themeDark: {
		accent: lipgloss.Color("#BD93F9"),
		muted:  lipgloss.Color("#6272A4"),
		danger: lipgloss.Color("#FF5555"),
		ok:     lipgloss.Color("#50FA7B"),
	},
	themeLight: {
		accent: lipgloss.Color("#5A3FC0"),
		muted:  lipgloss.Color("#8A8A8A"),
		danger: lipgloss.Color("#C0392B"),
		ok:     lipgloss.Color("#1E8449"),
	},
}

type styles struct {
	app     lipgloss.Style
	title   lipgloss.Style
	help    lipgloss.Style
	err     lipgloss.Style
	status  lipgloss.Style
	cursor  lipgloss.Style
	overlay lipgloss.Style
	offline lipgloss.Style
}

func newStyles(theme string) styles {
	p, ok := palettes[theme]
	if !ok {
		p = palettes[themeDark]
	}

	return styles{
		app:     lipgloss.NewStyle().Padding(1, 2),
		title:   lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		help:    lipgloss.NewStyle().Faint(true).Foreground(p.muted),
		err:     lipgloss.NewStyle().Bold(true).Foreground(p.danger),
		status:  lipgloss.NewStyle().Foreground(p.ok),
		cursor:  lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		overlay: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.danger).Padding(1, 2),
		offline: lipgloss.NewStyle().Foreground(p.danger),
	}
}

// resolveTheme picks the local preference unless it defers to the backend,
// then the backend's theme, then dark.
func resolveTheme(preferred, remote string) string {
	for _, candidate := range []string{preferred, remote} {
		candidate = strings.ToLower(strings.TrimSpace(candidate))
		if _, ok := palettes[candidate]; ok {
			return candidate
		}
	}
	return themeDark
}
