package tui

import "strings"

func (m appModel) viewEdit() string {
	var b strings.Builder

	b.WriteString("Editing #")
	b.WriteString(m.editID)
	b.WriteString("\n\n")
	b.WriteString(m.editor.View())
	b.WriteString("\n")

	if m.saving {
		b.WriteString("\n" + m.spinner.View() + " saving...\n")
	}

	return renderPage(m.styles, m.header(), b.String(), "ctrl+s save  esc cancel")
}
