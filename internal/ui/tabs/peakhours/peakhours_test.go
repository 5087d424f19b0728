package peakhours

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/k-mensah/ussd-dash-tui/internal/app"
	"github.com/k-mensah/ussd-dash-tui/internal/models"
	"github.com/k-mensah/ussd-dash-tui/internal/services/metricsvc"
)

func testSnapshot() *metricsvc.PeakHoursSnapshot {
	var cells []models.HeatmapCell
	for _, d := range models.Weekdays {
		for _, h := range models.HourBuckets {
			cells = append(cells, models.HeatmapCell{Day: d, Hour: h, Value: 10, Intensity: 2})
		}
	}
	cells[0].Value = 99
	cells[0].Intensity = 5
	cells[0].IsPeak = true

	return &metricsvc.PeakHoursSnapshot{
		TimeRange: models.Range7Days,
		Cells:     cells,
		DayStats: []models.DayStat{
			{Day: models.Monday, Total: 300, Peak: 99, PeakHour: "00-02"},
			{Day: models.Tuesday, Total: 120, Peak: 10, PeakHour: "08-10"},
		},
		Pivot: []models.HourlyPivotRow{
			{Hour: "00-02", ByDay: map[string]int{"monday": 99, "tuesday": 10}},
		},
		Insights: models.HeatmapInsights{
			BusiestHour:  "00-02",
			BusiestDay:   "Monday",
			QuietestHour: "04-06",
		},
	}
}

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
	if !strings.Contains(view, "No peak-hours data") {
		t.Error("View should show the empty message without a snapshot")
	}
}

func TestModel_View_WithData(t *testing.T) {
	state := app.NewState()
	state.SetInitialLoading(false)
	state.SetPeakHours(testSnapshot())

	m := New(state)
	m.SetSize(120, 60)

	view := m.View()
	if !strings.Contains(view, "Peak Hours") {
		t.Error("View should show the title")
	}
	if !strings.Contains(view, "Mon") {
		t.Error("View should show the heatmap day axis")
	}
	if !strings.Contains(view, "Monday") {
		t.Error("View should show the busiest day insight")
	}
}

func TestModel_TogglePivot(t *testing.T) {
	state := app.NewState()
	state.SetInitialLoading(false)
	state.SetPeakHours(testSnapshot())

	m := New(state)
	m.SetSize(120, 60)

	if strings.Contains(m.View(), "Hourly Pivot") {
		t.Error("Pivot should be hidden by default")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	if !m.showPivot {
		t.Error("'p' should toggle the pivot on")
	}
	if !strings.Contains(m.View(), "Hourly Pivot") {
		t.Error("View should show the pivot table after toggle")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	if m.showPivot {
		t.Error("'p' should toggle the pivot off again")
	}
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
