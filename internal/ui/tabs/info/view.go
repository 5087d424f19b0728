package info

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/lipgloss"

	"github.com/k-mensah/ussd-dash-tui/internal/ui/components"
	"github.com/k-mensah/ussd-dash-tui/internal/ui/styles"
	"github.com/k-mensah/ussd-dash-tui/internal/version"
)

// View renders the info tab.
func (m *Model) View() string {
	var sections []string

	sections = append(sections, m.renderTitle())
	sections = append(sections, m.renderConfigCard())
	sections = append(sections, m.renderCatalogCard())
	sections = append(sections, m.renderHistoryCard())
	sections = append(sections, m.renderAboutCard())

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

// renderTitle renders the info tab title.
func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Info")
	subtitle := styles.HelpStyle.Render("Configuration and application information")

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

// renderConfigCard renders the configuration paths card.
func (m *Model) renderConfigCard() string {
	cardWidth := m.cardWidth()

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Configuration"))
	rows = append(rows, "")

	if m.config != nil {
		rows = append(rows, m.renderConfigRow("API Base URL", m.config.APIBaseURL))
		rows = append(rows, m.renderConfigRow("Database", m.config.DatabasePath))
		rows = append(rows, m.renderConfigRow("Catalog File", m.config.CatalogPath))
		rows = append(rows, m.renderConfigRow("Export Dir", m.config.ExportDir))
		rows = append(rows, m.renderConfigRow("Log File", m.config.LogFile))
		rows = append(rows, m.renderConfigRow("Poll Interval", m.config.PollInterval.String()))
	} else {
		rows = append(rows, styles.HelpStyle.Render("Configuration not loaded"))
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderConfigRow renders a configuration key-value row.
func (m *Model) renderConfigRow(label, value string) string {
	labelStyle := lipgloss.NewStyle().
		Width(18).
		Foreground(styles.TextMuted)

	valueStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimary)

	return labelStyle.Render(label+":") + " " + valueStyle.Render(value)
}

// renderCatalogCard renders the service catalog summary card.
func (m *Model) renderCatalogCard() string {
	cardWidth := m.cardWidth()

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Service Catalog"))
	rows = append(rows, "")

	entries := m.state.GetCatalog()
	if len(entries) == 0 {
		rows = append(rows, styles.HelpStyle.Render("No catalog entries loaded"))
	} else {
		enabled := 0
		for _, e := range entries {
			if e.Enabled {
				enabled++
			}
		}
		rows = append(rows, fmt.Sprintf("Services: %s (%d enabled)",
			styles.InfoTextStyle.Render(fmt.Sprintf("%d", len(entries))), enabled))
		for _, e := range entries {
			marker := styles.SuccessTextStyle.Render("●")
			if !e.Enabled {
				marker = styles.HelpStyle.Render("○")
			}
			rows = append(rows, fmt.Sprintf("  %s %-8s %s", marker, e.Code, e.Name))
		}
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderHistoryCard renders the local snapshot history card.
func (m *Model) renderHistoryCard() string {
	cardWidth := m.cardWidth()

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("Recent Sessions"))
	rows = append(rows, "")

	if len(m.snapshots) == 0 {
		rows = append(rows, styles.HelpStyle.Render("No snapshot history recorded yet"))
	} else {
		for _, s := range m.snapshots {
			rows = append(rows, fmt.Sprintf("  %s  %s  total %d, %s",
				styles.HelpStyle.Render(s.CapturedAt.Format("Jan 2 15:04")),
				s.TimeRange,
				s.Metrics.Total,
				styles.GetRateStyle(s.Metrics.SuccessRate).Render(fmt.Sprintf("%.1f%% ok", s.Metrics.SuccessRate)),
			))
		}
		if len(m.rates) > 1 {
			rows = append(rows, "")
			rows = append(rows, "  "+styles.HelpStyle.Render("Success rate across sessions"))
			rows = append(rows, "  "+components.RenderRateSparkline(m.rates, cardWidth-8))
		}
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderAboutCard renders the about/version information card.
func (m *Model) renderAboutCard() string {
	cardWidth := m.cardWidth()

	var rows []string
	rows = append(rows, styles.CardTitleStyle.Render("About USSD Dashboard TUI"))
	rows = append(rows, "")

	rows = append(rows, m.renderConfigRow("Version", version.GetVersion()))
	rows = append(rows, m.renderConfigRow("Build Date", version.GetDate()))
	rows = append(rows, m.renderConfigRow("Git Commit", version.GetCommit()))
	rows = append(rows, m.renderConfigRow("Go Version", runtime.Version()))
	rows = append(rows, m.renderConfigRow("Platform", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)))

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) cardWidth() int {
	w := m.width - 6
	if w < 50 {
		w = 50
	}
	if w > 80 {
		w = 80
	}
	return w
}
