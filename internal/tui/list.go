package tui

import (
	"fmt"
	"strings"
)

const nameWidth = 48

func (m appModel) header() string {
	user := m.appCtx.User()
	header := fmt.Sprintf("eightball  ·  %s  ·  %s", user.DisplayName(), m.appCtx.APIBaseURL())
	if m.snapshot.Loading || m.refreshing || m.saving {
		header += "  " + m.spinner.View()
	}
	return header
}

func (m appModel) viewList() string {
	var b strings.Builder

	switch {
	case m.snapshot.Loading && len(m.snapshot.Schedules) == 0:
		b.WriteString("Loading...\n")
	case len(m.snapshot.Schedules) == 0:
		b.WriteString("No schedules\n")
	default:
		for i, item := range m.snapshot.Schedules {
			cursor := "  "
			name := fitText(item.Name(), nameWidth)
			if name == "" {
				name = "(unnamed)"
			}
			line := fmt.Sprintf("%s%s", cursor, name)
			if i == m.idx {
				line = m.styles.cursor.Render("> " + name)
			}
			b.WriteString(line)
			if id := item.ID(); id != "" && id != item.Name() {
				b.WriteString(m.styles.help.Render("  #" + id))
			}
			b.WriteString("\n")
		}
	}

	if m.snapshot.FromCache {
		b.WriteString("\n" + m.styles.offline.Render("offline: showing cached schedules") + "\n")
	} else if m.snapshot.IsOffline() {
		b.WriteString("\n" + m.styles.offline.Render("offline") + "\n")
	}
	if m.snapshot.LastError != nil {
		b.WriteString("\n" + m.styles.err.Render("Error: "+humanizeError(m.snapshot.LastError)) + "\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.styles.status.Render(m.status) + "\n")
	}

	return renderPage(m.styles, m.header(), b.String(), "enter open  e edit  c copy  r refresh  v about  q quit")
}
