package peakhours

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/k-mensah/ussd-dash-tui/internal/models"
	"github.com/k-mensah/ussd-dash-tui/internal/ui/components"
	"github.com/k-mensah/ussd-dash-tui/internal/ui/styles"
)

// View renders the peak-hours tab.
func (m *Model) View() string {
	if m.state.IsInitialLoading() {
		return components.RenderSpinnerCentered(m.spinner, m.width, m.height)
	}

	snap := m.state.GetPeakHours()
	if snap == nil || len(snap.Cells) == 0 {
		return m.renderEmpty()
	}

	sections := []string{
		m.renderHeader(),
		m.renderHeatmap(),
	}
	if m.showPivot {
		sections = append(sections, m.renderPivot())
	}
	sections = append(sections,
		m.renderDayTotals(),
		m.renderInsights(),
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
		styles.TitleStyle.Render("Peak Hours"),
		"",
		styles.HelpStyle.Render("No peak-hours data available for this range."),
		styles.HelpStyle.Render("Press r to refresh."),
	)
	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(content)
}

func (m *Model) renderHeader() string {
	title := styles.TitleStyle.Render("Peak Hours")
	subtitle := styles.HelpStyle.Render(
		fmt.Sprintf("Weekly activity heatmap, last %s", m.state.GetTimeRange()),
	)
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) renderHeatmap() string {
	snap := m.state.GetPeakHours()
	cardWidth := max(m.width-6, 44)

	var rows []string
	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("🕐")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon, styles.CardTitleStyle.Render("Activity by Hour")), "")

	grid := components.RenderHeatmapGrid(snap.Cells)
	for _, line := range strings.Split(grid, "\n") {
		rows = append(rows, "  "+line)
	}

	rows = append(rows, "")
	legend := fmt.Sprintf("  %s quiet  %s busy  %s peak",
		styles.GetHeatStyle(0).Render(string(components.HeatmapBlocks[0])),
		styles.GetHeatStyle(models.MaxIntensity).Render(string(components.HeatmapBlocks[models.MaxIntensity])),
		styles.GetHeatStyle(models.MaxIntensity).Bold(true).Render(string(components.HeatmapBlocks[models.MaxIntensity])),
	)
	rows = append(rows, styles.HelpStyle.Render(legend), "")

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderPivot() string {
	snap := m.state.GetPeakHours()
	cardWidth := max(m.width-6, 44)

	var rows []string
	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("▦")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon, styles.CardTitleStyle.Render("Hourly Pivot")), "")

	header := "  " + styles.TableHeaderStyle.Render(fmt.Sprintf("%-6s", "Hour"))
	for _, d := range models.Weekdays {
		header += styles.TableHeaderStyle.Render(fmt.Sprintf("%6s", d.Short()))
	}
	rows = append(rows, header)

	for _, row := range snap.Pivot {
		line := "  " + styles.TableCellStyle.Render(fmt.Sprintf("%-6s", row.Hour))
		for _, d := range models.Weekdays {
			line += styles.TableCellStyle.Render(fmt.Sprintf("%6d", row.ByDay[d.Key()]))
		}
		rows = append(rows, line)
	}
	rows = append(rows, "")

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderDayTotals() string {
	snap := m.state.GetPeakHours()
	cardWidth := max(m.width-6, 44)

	var rows []string
	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("📅")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon, styles.CardTitleStyle.Render("Daily Totals")), "")

	if len(snap.DayStats) == 0 {
		rows = append(rows, styles.HelpStyle.Render("  No daily data available"))
	} else {
		rows = append(rows, "  "+components.RenderDayTotals(snap.DayStats), "")
		for _, d := range snap.DayStats {
			rows = append(rows, fmt.Sprintf("  %-4s %6d total, peak %d at %s",
				d.Day.Short(), d.Total, d.Peak, d.PeakHour))
		}
	}
	rows = append(rows, "")

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderInsights() string {
	snap := m.state.GetPeakHours()
	cardWidth := max(m.width-6, 44)

	var rows []string
	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("◆")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon, styles.CardTitleStyle.Render("Insights")), "")

	highlight := lipgloss.NewStyle().Bold(true).Foreground(styles.Primary)

	rows = append(rows, fmt.Sprintf("  Busiest hour:  %s", highlight.Render(snap.Insights.BusiestHour)))
	rows = append(rows, fmt.Sprintf("  Busiest day:   %s", highlight.Render(snap.Insights.BusiestDay)))
	rows = append(rows, fmt.Sprintf("  Quietest hour: %s", highlight.Render(snap.Insights.QuietestHour)))

	if snap.Insights.WeekendsBusier {
		rows = append(rows, "  "+styles.InfoTextStyle.Render("Weekends carry more traffic per day than weekdays."))
	} else {
		rows = append(rows, "  "+styles.HelpStyle.Render("Weekday traffic outpaces weekends."))
	}
	rows = append(rows, "")

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}
