package overview

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/k-mensah/ussd-dash-tui/internal/app"
	"github.com/k-mensah/ussd-dash-tui/internal/models"
	"github.com/k-mensah/ussd-dash-tui/internal/services/metricsvc"
)

func TestNew(t *testing.T) {
	state := app.NewState()
	m := New(state)
	if m == nil {
		t.Fatal("New returned nil")
	}
}

func TestModel_Init(t *testing.T) {
	state := app.NewState()
	m := New(state)
	if m.Init() == nil {
		t.Error("Init returned nil")
	}
}

func TestModel_View_Empty(t *testing.T) {
	state := app.NewState()
	state.SetInitialLoading(false)
	m := New(state)
	m.SetSize(100, 50)

	view := m.View()
	if !strings.Contains(view, "No traffic data") {
		t.Error("View should show the empty message without a snapshot")
	}
}

func TestModel_View_WithData(t *testing.T) {
	state := app.NewState()
	state.SetInitialLoading(false)
	state.SetVolume(&metricsvc.VolumeSnapshot{
		TimeRange: models.Range7Days,
		Records: []models.IntervalRecord{
			{
				Label:       "Mon",
				Timestamp:   time.Now().Add(-24 * time.Hour),
				Total:       120,
				SuccessRate: 96.5,
				Services:    map[models.ServiceCategory]int{models.ServiceAirtime: 80},
			},
			{
				Label:       "Tue",
				Timestamp:   time.Now(),
				Total:       150,
				SuccessRate: 92.0,
				Services:    map[models.ServiceCategory]int{models.ServiceAirtime: 100},
			},
		},
		Summary: models.SummaryMetrics{
			Total:       270,
			Average:     135,
			Peak:        models.PeakRecord{Label: "Tue", Value: 150},
			SuccessRate: 94.3,
			Trend:       12.5,
		},
	})

	m := New(state)
	m.SetSize(100, 50)

	view := m.View()
	if !strings.Contains(view, "Traffic Overview") {
		t.Error("View should show the title")
	}
	if !strings.Contains(view, "270") {
		t.Error("View should show the total")
	}
	if !strings.Contains(view, "Tue") {
		t.Error("View should show the peak label")
	}

	// Scroll keys go through the viewport without panicking
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
}

func TestModel_SetSize(t *testing.T) {
	state := app.NewState()
	m := New(state)
	m.SetSize(100, 50)
}

func TestModel_Help(t *testing.T) {
	state := app.NewState()
	m := New(state)
	if len(m.ShortHelp()) == 0 {
		t.Error("ShortHelp empty")
	}
	if len(m.FullHelp()) == 0 {
		t.Error("FullHelp empty")
	}
}
