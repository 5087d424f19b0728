package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/k-mensah/ussd-dash-tui/internal/logger"
	"github.com/k-mensah/ussd-dash-tui/internal/ui/styles"
)

type AnimationTickMsg time.Time

func animationTick() tea.Cmd {
	return tea.Tick(time.Millisecond*50, func(t time.Time) tea.Msg {
		return AnimationTickMsg(t)
	})
}

// ShareBar renders a percentage-share progress bar with label.
type ShareBar struct {
	progress       progress.Model
	label          string
	percent        float64
	isAnimating    bool
	targetPercent  float64
	currentPercent float64
}

// NewShareBar creates a new share bar with gradient colors.
func NewShareBar() ShareBar {
	return NewShareBarWithWidth(30)
}

// NewShareBarWithWidth creates a share bar with a specific width.
func NewShareBarWithWidth(width int) ShareBar {
	p := progress.New(
		progress.WithScaledGradient("#6c5ce7", "#51cf66"),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)

	return ShareBar{
		progress: p,
	}
}

// Init initializes the progress bar model.
func (s ShareBar) Init() tea.Cmd {
	return nil
}

// Update handles progress bar animation messages.
func (s ShareBar) Update(msg tea.Msg) (ShareBar, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg.(type) {
	case AnimationTickMsg:
		if s.isAnimating {
			if s.currentPercent < s.targetPercent {
				step := (s.targetPercent - s.currentPercent) / 10
				if step < 0.5 {
					step = 0.5
				}
				s.currentPercent += step
				if s.currentPercent > s.targetPercent {
					s.currentPercent = s.targetPercent
				}
				cmds = append(cmds, animationTick())
			} else if s.currentPercent > s.targetPercent {
				step := (s.currentPercent - s.targetPercent) / 10
				if step < 0.5 {
					step = 0.5
				}
				s.currentPercent -= step
				if s.currentPercent < s.targetPercent {
					s.currentPercent = s.targetPercent
				}
				cmds = append(cmds, animationTick())
			} else {
				s.isAnimating = false
			}
		}
	}

	var cmd tea.Cmd
	model, cmd := s.progress.Update(msg)
	s.progress = model.(progress.Model)
	cmds = append(cmds, cmd)

	return s, tea.Batch(cmds...)
}

// SetPercent sets the current percentage.
func (s *ShareBar) SetPercent(percent float64) tea.Cmd {
	s.percent = percent
	s.targetPercent = percent

	if !s.isAnimating {
		s.isAnimating = true
		return tea.Batch(
			s.progress.SetPercent(percent/100),
			animationTick(),
		)
	}

	return s.progress.SetPercent(percent / 100)
}

// SetLabel sets the bar label.
func (s *ShareBar) SetLabel(label string) {
	s.label = label
}

// SetWidth sets the progress bar width.
func (s *ShareBar) SetWidth(width int) {
	s.progress.Width = width
}

// View renders the share bar with percentage and label.
func (s ShareBar) View(percent float64, label string, width int) string {
	// Update the progress bar width
	barWidth := width - 30 // Reserve space for label and percentage
	if barWidth < 10 {
		barWidth = 10
	}
	s.progress.Width = barWidth

	// Render the progress bar
	bar := s.progress.ViewAs(percent / 100)

	percentStr := lipgloss.NewStyle().
		Foreground(styles.TextPrimary).
		Width(6).
		Align(lipgloss.Right).
		Render(fmt.Sprintf("%.1f%%", percent))

	labelStr := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Width(15).
		Render(label)

	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		labelStr,
		bar,
		" ",
		percentStr,
	)
}

// ViewCompact renders a compact version without label.
func (s ShareBar) ViewCompact(percent float64, width int) string {
	barWidth := width - 8
	if barWidth < 5 {
		barWidth = 5
	}
	s.progress.Width = barWidth

	bar := s.progress.ViewAs(percent / 100)
	percentStr := lipgloss.NewStyle().
		Foreground(styles.TextPrimary).
		Render(fmt.Sprintf("%.1f%%", percent))

	return lipgloss.JoinHorizontal(lipgloss.Center, bar, " ", percentStr)
}

// RenderGradientBar renders just the bar part with gradient colors.
func RenderGradientBar(percent float64, width int) string {
	if width < 1 {
		return ""
	}

	filled := int(float64(width) * percent / 100)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	var barChars []string
	for i := 0; i < width; i++ {
		if i < filled {
			t := float64(i) / float64(max(1, width-1))
			color := interpolateColor("#6c5ce7", "#51cf66", t)
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			barChars = append(barChars, style.Render("█"))
		} else {
			style := lipgloss.NewStyle().Foreground(styles.Subtle)
			barChars = append(barChars, style.Render("░"))
		}
	}

	return strings.Join(barChars, "")
}

// SimpleShareBar renders a simple ASCII share bar with gradient colors.
func SimpleShareBar(percent float64, label string, width int) string {
	labelWidth := len(label) + 1
	percentWidth := 6
	barWidth := width - labelWidth - percentWidth - 4

	if barWidth < 5 {
		barWidth = 5
	}

	bar := RenderGradientBar(percent, barWidth)

	labelStr := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Render(label)

	percentStr := lipgloss.NewStyle().
		Foreground(styles.TextPrimary).
		Width(percentWidth).
		Align(lipgloss.Right).
		Render(fmt.Sprintf("%.1f%%", percent))

	return fmt.Sprintf("%s [%s] %s", labelStr, bar, percentStr)
}

func interpolateColor(fromHex, toHex string, t float64) string {
	from := hexToRGB(fromHex)
	to := hexToRGB(toHex)

	r := int(float64(from[0]) + t*(float64(to[0])-float64(from[0])))
	g := int(float64(from[1]) + t*(float64(to[1])-float64(from[1])))
	b := int(float64(from[2]) + t*(float64(to[2])-float64(from[2])))

	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func hexToRGB(hex string) [3]int {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b int
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		logger.Error("failed to parse hex color", "hex", hex, "error", err)
		return [3]int{0, 0, 0}
	}
	return [3]int{r, g, b}
}
