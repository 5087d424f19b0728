package demographics

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/k-mensah/ussd-dash-tui/internal/models"
	"github.com/k-mensah/ussd-dash-tui/internal/ui/components"
	"github.com/k-mensah/ussd-dash-tui/internal/ui/styles"
)

// View renders the demographics tab.
func (m *Model) View() string {
	if m.state.IsInitialLoading() {
		return components.RenderSpinnerCentered(m.spinner, m.width, m.height)
	}

	snap := m.state.GetDemographics()
	if snap == nil || (len(snap.Provinces) == 0 && len(snap.Networks) == 0) {
		return m.renderEmpty()
	}

	sections := []string{
		m.renderHeader(),
		m.renderShareCard("Provinces", "◈", snap.Provinces),
		m.renderShareCard("Networks", "◇", snap.Networks),
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
		styles.TitleStyle.Render("Demographics"),
		"",
		styles.HelpStyle.Render("No demographic data available for this range."),
		styles.HelpStyle.Render("Press r to refresh."),
	)
	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(content)
}

func (m *Model) renderHeader() string {
	title := styles.TitleStyle.Render("Demographics")
	subtitle := styles.HelpStyle.Render(
		fmt.Sprintf("Session volume by province and network, last %s", m.state.GetTimeRange()),
	)
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) renderShareCard(title, icon string, shares []models.DemographicShare) string {
	cardWidth := max(m.width-6, 40)

	var rows []string
	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render(icon)
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon, styles.CardTitleStyle.Render(title)), "")

	if len(shares) == 0 {
		rows = append(rows, styles.HelpStyle.Render("  No breakdown available"))
	} else {
		barWidth := max(cardWidth-52, 20)
		for _, share := range shares {
			bar := components.SimpleShareBar(float64(share.Percentage), share.Group.String(), barWidth)
			volume := styles.HelpStyle.Render(fmt.Sprintf("%.0f", share.Value))
			trend := formatTrend(share.Trend)
			rows = append(rows, fmt.Sprintf("  %s  %8s  %s", bar, volume, trend))
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
