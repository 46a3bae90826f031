package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/astralforge/starcalc/internal/income"
)

// renderResults renders the per-category report pane.
func (m DashboardModel) renderResults(height int) string {
	var b strings.Builder

	if m.calcErr != nil {
		b.WriteString(statusErrStyle.Render("profile invalid"))
		b.WriteString("\n\n")
		b.WriteString(wordWrap(m.calcErr.Error(), resultsWidth-4))
		return resultsStyle.Render(b.String())
	}

	for _, c := range m.report.Categories {
		b.WriteString(categoryTitleStyle.Render(c.Title))
		b.WriteString("\n")
		if c.Err != nil {
			b.WriteString(statusErrStyle.Render("  " + c.Err.Error()))
			b.WriteString("\n\n")
			continue
		}

		bd := c.Breakdown
		b.WriteString(fmt.Sprintf("  base     %12s\n", formatRate(bd.Base)))
		b.WriteString(fmt.Sprintf("  bonus    %12s\n", formatRate(bd.Bonus)))
		b.WriteString(fmt.Sprintf("  refresh  %12s\n", formatRate(bd.Refresh)))
		b.WriteString(fmt.Sprintf("  total    %12s %s\n", formatRate(bd.Total), bd.Unit))
		b.WriteString(fmt.Sprintf("  share    %11.1f%%  %s\n", c.Share*100, shareBar(c.Share)))
		b.WriteString("\n")
	}

	b.WriteString(grandTotalStyle.Render(fmt.Sprintf("GRAND TOTAL  %s/h", formatRate(m.report.GrandTotal))))
	if m.report.Failed > 0 {
		b.WriteString("\n")
		b.WriteString(statusErrStyle.Render(fmt.Sprintf("%d category(ies) failed", m.report.Failed)))
	}

	// Detail: the multipliers of the category the cursor sits in.
	if detail, ok := m.cursorCategory(); ok && len(detail.Breakdown.Multipliers) > 0 && detail.Err == nil {
		b.WriteString("\n\n")
		b.WriteString(sectionStyle.Render(detail.Title + " detail"))
		b.WriteString("\n")
		for _, nv := range detail.Breakdown.Multipliers {
			b.WriteString(fmt.Sprintf("  %-24s %10.4g\n", nv.Name, nv.Value))
		}
	}

	content := strings.TrimRight(b.String(), "\n")
	return resultsStyle.Height(height).Render(clipLines(content, height))
}

// cursorCategory maps the selected editor section to its report category.
func (m DashboardModel) cursorCategory() (income.CategoryResult, bool) {
	if m.cursor >= len(m.fields) {
		return income.CategoryResult{}, false
	}

	var id string
	switch section := m.fields[m.cursor].section; {
	case section == "Claims" || section == "Warp":
		id = "claims"
	case section == "Stargazing":
		id = "stargazing"
	default:
		id = "beacons"
	}
	return m.report.Category(id)
}

// shareBar renders a small proportional bar for attribution display.
func shareBar(share float64) string {
	const width = 16
	filled := int(share*width + 0.5)
	if filled > width {
		filled = width
	}
	return barStyle.Render(strings.Repeat("█", filled) + strings.Repeat("░", width-filled))
}

// formatRate formats an hourly rate with a sensible precision.
func formatRate(v float64) string {
	switch {
	case v >= 1000:
		return fmt.Sprintf("%.0f", v)
	case v >= 10:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.3f", v)
	}
}

// clipLines truncates a block to at most n lines.
func clipLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n")
}

// wordWrap does a simple greedy wrap for error text.
func wordWrap(s string, width int) string {
	if width < 10 {
		width = 10
	}
	words := strings.Fields(s)
	var b strings.Builder
	lineLen := 0
	for _, w := range words {
		if lineLen > 0 && lineLen+1+len(w) > width {
			b.WriteString("\n")
			lineLen = 0
		} else if lineLen > 0 {
			b.WriteString(" ")
			lineLen++
		}
		b.WriteString(w)
		lineLen += len(w)
	}
	return b.String()
}

const resultsWidth = 48

var (
	resultsStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(resultsWidth)

	categoryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("213"))

	grandTotalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("57"))
)
