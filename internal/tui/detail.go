package tui

import (
	"strings"

	"github.com/MKhiriev/go-eightball/models"
)

func (m appModel) viewDetail(item models.Schedule) string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render(item.Name()))
	b.WriteString("\n\n")
	b.WriteString(prettyJSON(item))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n" + m.styles.status.Render(m.status) + "\n")
	}

	return renderPage(m.styles, m.header(), b.String(), "e edit  c copy json  esc back")
}
