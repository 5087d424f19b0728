package revenue

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/k-mensah/ussd-dash-tui/internal/ui/components"
	"github.com/k-mensah/ussd-dash-tui/internal/ui/styles"
)

// View renders the revenue tab.
func (m *Model) View() string {
	if m.state.IsInitialLoading() {
		return components.RenderSpinnerCentered(m.spinner, m.width, m.height)
	}

	snap := m.state.GetRevenue()
	if snap == nil || len(snap.Records) == 0 {
		return m.renderEmpty()
	}

	sections := []string{
		m.renderHeader(),
		m.renderShares(),
		m.renderTrendChart(),
		m.renderInsights(),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderEmpty() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("Revenue"),
		"",
		styles.HelpStyle.Render("No revenue data available for this range."),
		styles.HelpStyle.Render("Press r to refresh."),
	)
	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(content)
}

func (m *Model) renderHeader() string {
	title := styles.TitleStyle.Render("Revenue")
	subtitle := styles.HelpStyle.Render(
		fmt.Sprintf("Revenue by service line, last %s", m.state.GetTimeRange()),
	)
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) renderShares() string {
	snap := m.state.GetRevenue()
	cardWidth := max(m.width-6, 40)

	var rows []string
	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("◈")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon, styles.CardTitleStyle.Render("Service Shares")), "")

	if len(snap.Shares) == 0 {
		rows = append(rows, styles.HelpStyle.Render("  No share breakdown available"))
	} else {
		barWidth := max(cardWidth-52, 20)
		for _, share := range snap.Shares {
			bar := components.SimpleShareBar(float64(share.Percentage), share.Name, barWidth)
			amount := styles.HelpStyle.Render(fmt.Sprintf("R %.0f", share.Value))
			trend := formatTrend(share.Trend)
			rows = append(rows, fmt.Sprintf("  %s  %8s  %s", bar, amount, trend))
		}
	}
	rows = append(rows, "")

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderTrendChart() string {
	snap := m.state.GetRevenue()
	cardWidth := max(m.width-6, 40)

	var rows []string
	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("📈")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon, styles.CardTitleStyle.Render("Revenue Trend")), "")

	totals := make([]float64, len(snap.Records))
	peakDays := 0
	for i, r := range snap.Records {
		var sum float64
		for _, v := range r.Amounts {
			sum += v
		}
		totals[i] = sum
		if r.PeakWindow {
			peakDays++
		}
	}

	chartWidth := max(cardWidth-12, 30)
	chartHeight := 8

	chart := components.RenderLineChart(totals, chartWidth, chartHeight,
		fmt.Sprintf("Total revenue per interval (%d intervals)", len(snap.Records)))
	for _, line := range strings.Split(chart, "\n") {
		rows = append(rows, "  "+line)
	}

	if peakDays > 0 {
		rows = append(rows, "")
		rows = append(rows, "  "+styles.HelpStyle.Render(
			fmt.Sprintf("%d of %d intervals fall inside the mid-month activity window", peakDays, len(snap.Records)),
		))
	}
	rows = append(rows, "")

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderInsights() string {
	snap := m.state.GetRevenue()
	cardWidth := max(m.width-6, 40)

	var rows []string
	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("◆")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon, styles.CardTitleStyle.Render("Insights")), "")

	highlight := lipgloss.NewStyle().Bold(true).Foreground(styles.Primary)

	rows = append(rows, fmt.Sprintf("  Dominant service:  %s", highlight.Render(snap.Insights.Dominant)))
	rows = append(rows, fmt.Sprintf("  Fastest growing:   %s", highlight.Render(snap.Insights.FastestGrowing)))
	rows = append(rows, fmt.Sprintf("  Mid-month window:  %s of revenue",
		highlight.Render(fmt.Sprintf("%d%%", snap.Insights.PeakWindowShare))))
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
