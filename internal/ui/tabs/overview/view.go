package overview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/k-mensah/ussd-dash-tui/internal/models"
	"github.com/k-mensah/ussd-dash-tui/internal/ui/components"
	"github.com/k-mensah/ussd-dash-tui/internal/ui/styles"
)

// View renders the overview tab.
func (m *Model) View() string {
	if m.state.IsInitialLoading() {
		return components.RenderSpinnerCentered(m.spinner, m.width, m.height)
	}

	snap := m.state.GetVolume()
	if snap == nil || len(snap.Records) == 0 {
		return m.renderEmpty()
	}

	var sections []string
	sections = append(sections,
		m.renderHeader(),
		m.renderSummary(),
		m.renderVolumeChart(),
		m.renderServiceMix(),
	)

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderEmpty() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("Traffic Overview"),
		"",
		styles.HelpStyle.Render("No traffic data available for this range."),
		styles.HelpStyle.Render("Press r to refresh."),
	)
	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(content)
}

func (m *Model) renderHeader() string {
	title := styles.TitleStyle.Render("Traffic Overview")
	subtitle := styles.HelpStyle.Render(
		fmt.Sprintf("USSD session volume, last %s", m.state.GetTimeRange()),
	)
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) renderSummary() string {
	snap := m.state.GetVolume()
	s := snap.Summary
	cardWidth := max(m.width-6, 40)

	var rows []string
	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("◈")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon, styles.CardTitleStyle.Render("Summary")), "")

	label := lipgloss.NewStyle().Foreground(styles.TextSecondary).Width(16)
	value := lipgloss.NewStyle().Bold(true)

	rows = append(rows, fmt.Sprintf("  %s %s",
		label.Render("Total sessions"),
		value.Render(fmt.Sprintf("%d", s.Total)),
	))
	rows = append(rows, fmt.Sprintf("  %s %s",
		label.Render("Average"),
		value.Render(fmt.Sprintf("%d per interval", s.Average)),
	))
	rows = append(rows, fmt.Sprintf("  %s %s %s",
		label.Render("Peak"),
		value.Render(fmt.Sprintf("%d", s.Peak.Value)),
		styles.HelpStyle.Render("at "+s.Peak.Label),
	))
	rows = append(rows, fmt.Sprintf("  %s %s",
		label.Render("Revenue"),
		value.Render(fmt.Sprintf("R %d", s.RevenueTotal)),
	))
	rows = append(rows, fmt.Sprintf("  %s %s",
		label.Render("Success rate"),
		styles.GetRateStyle(s.SuccessRate).Render(fmt.Sprintf("%.1f%%", s.SuccessRate)),
	))
	rows = append(rows, fmt.Sprintf("  %s %s",
		label.Render("Trend"),
		formatTrend(s.Trend),
	))
	rows = append(rows, fmt.Sprintf("  %s %s",
		label.Render("Growth (7d)"),
		formatTrend(s.GrowthRate),
	))
	rows = append(rows, "")

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderVolumeChart() string {
	snap := m.state.GetVolume()
	cardWidth := max(m.width-6, 40)

	var rows []string
	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("📈")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon, styles.CardTitleStyle.Render("Session Volume")), "")

	totals := make([]float64, len(snap.Records))
	rates := make([]float64, len(snap.Records))
	for i, r := range snap.Records {
		totals[i] = float64(r.Total)
		rates[i] = r.SuccessRate
	}

	chartWidth := max(cardWidth-12, 30)
	chartHeight := 8

	chart := components.RenderLineChart(totals, chartWidth, chartHeight,
		fmt.Sprintf("%d intervals, %s → %s",
			len(snap.Records),
			snap.Records[0].Label,
			snap.Records[len(snap.Records)-1].Label,
		))
	for _, line := range strings.Split(chart, "\n") {
		rows = append(rows, "  "+line)
	}

	rows = append(rows, "")
	rows = append(rows, "  "+styles.HelpStyle.Render("Success rate per interval"))
	rows = append(rows, "  "+components.RenderRateSparkline(rates, chartWidth))
	rows = append(rows, "")

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderServiceMix() string {
	snap := m.state.GetVolume()
	cardWidth := max(m.width-6, 40)

	var rows []string
	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("◇")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon, styles.CardTitleStyle.Render("Service Mix")), "")

	totals := make(map[models.ServiceCategory]int)
	grand := 0
	for _, r := range snap.Records {
		for _, c := range models.ServiceCategories {
			n := r.ServiceCount(c)
			totals[c] += n
			grand += n
		}
	}

	if grand == 0 {
		rows = append(rows, styles.HelpStyle.Render("  No per-service breakdown available"))
	} else {
		barWidth := max(cardWidth-40, 20)
		for _, c := range models.ServiceCategories {
			pct := float64(totals[c]) / float64(grand) * 100
			rows = append(rows, "  "+components.SimpleShareBar(pct, c.String(), barWidth))
		}
	}
	rows = append(rows, "")

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func formatTrend(trend float64) string {
	arrow := "→"
	if trend > 0 {
		arrow = "▲"
	} else if trend < 0 {
		arrow = "▼"
	}
	return styles.GetTrendStyle(trend).Render(fmt.Sprintf("%s %+.1f%%", arrow, trend))
}
