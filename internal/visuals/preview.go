package visuals

import (
	"fmt"
	"strings"
	"time"

	"planchart/internal/planning"
	"planchart/internal/sheet"
	"planchart/internal/weeks"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const cellWidth = 4

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	emptyCell   = strings.Repeat("·", cellWidth-1) + " "
)

// RenderPreview draws the planning chart for [start, end) as terminal text:
// a month line, a week number line, one line per asset and the legend.
func RenderPreview(assets []planning.AssetPlanning, start, end time.Time, palette sheet.Palette) string {
	columns := weeks.Columns(start, end)
	swatches := swatchStyles(palette)

	labelWidth := runewidth.StringWidth("Week")
	for _, a := range assets {
		labelWidth = max(labelWidth, runewidth.StringWidth(a.Label()))
	}
	label := func(s string) string {
		return runewidth.FillRight(s, labelWidth) + " "
	}

	var sb strings.Builder

	sb.WriteString(label(""))
	for _, span := range weeks.MonthSpans(columns) {
		width := (span.Last - span.First + 1) * cellWidth
		sb.WriteString(headerStyle.Render(runewidth.FillRight(runewidth.Truncate(span.Month, width-1, ""), width)))
	}
	sb.WriteString("\n")

	sb.WriteString(label("Week"))
	for _, c := range columns {
		sb.WriteString(fmt.Sprintf("%-*d", cellWidth, c.Week))
	}
	sb.WriteString("\n")

	for _, a := range assets {
		sb.WriteString(label(a.Label()))
		for _, c := range columns {
			status := a.StatusFor(c.WeekStart)
			if style, ok := swatches[status]; ok {
				sb.WriteString(style.Render(strings.Repeat(" ", cellWidth-1)) + " ")
				continue
			}
			sb.WriteString(emptyCell)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(headerStyle.Render("Legend"))
	sb.WriteString("\n")
	for _, entry := range sheet.Legend {
		sb.WriteString(swatches[entry.Status].Render("  "))
		sb.WriteString(" " + entry.Label + "\n")
	}

	return sb.String()
}

func swatchStyles(p sheet.Palette) map[planning.Status]lipgloss.Style {
	swatch := func(hex string) lipgloss.Style {
		return lipgloss.NewStyle().Background(lipgloss.Color("#" + hex))
	}
	return map[planning.Status]lipgloss.Style{
		planning.StatusPlanned:   swatch(p.Planned),
		planning.StatusOngoing:   swatch(p.Ongoing),
		planning.StatusCompleted: swatch(p.Completed),
	}
}
