package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/k-mensah/ussd-dash-tui/internal/ui/styles"
)

// LoadingSpinner pairs a bubble spinner with the fixed label a tab
// shows while its first snapshot is still in flight.
type LoadingSpinner struct {
	model      spinner.Model
	label      string
	labelStyle lipgloss.Style
}

// NewSpinner returns a dot spinner carrying label.
func NewSpinner(label string) LoadingSpinner {
	m := spinner.New()
	m.Spinner = spinner.Dot
	m.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	return LoadingSpinner{
		model:      m,
		label:      label,
		labelStyle: lipgloss.NewStyle().Foreground(styles.TextSecondary),
	}
}

// Init starts the tick loop.
func (l LoadingSpinner) Init() tea.Cmd {
	return l.model.Tick
}

// Update advances the animation on tick messages.
func (l LoadingSpinner) Update(msg tea.Msg) (LoadingSpinner, tea.Cmd) {
	var cmd tea.Cmd
	l.model, cmd = l.model.Update(msg)
	return l, cmd
}

// View renders the current frame followed by the label.
func (l LoadingSpinner) View() string {
	return l.model.View() + " " + l.labelStyle.Render(l.label)
}

// RenderSpinnerCentered renders s centered in a width-by-height box.
func RenderSpinnerCentered(s LoadingSpinner, width, height int) string {
	return styles.CenterBoth(s.View(), width, height)
}
