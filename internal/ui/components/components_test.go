package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/k-mensah/ussd-dash-tui/internal/models"
)

func TestNewSpinner(t *testing.T) {
	s := NewSpinner("Loading traffic data...")
	if !strings.Contains(s.View(), "Loading traffic data...") {
		t.Errorf("View() = %q, want the label rendered", s.View())
	}
}

func TestSpinner_TickLoop(t *testing.T) {
	s := NewSpinner("Loading")

	if s.Init() == nil {
		t.Error("Init should return the tick command")
	}

	s, cmd := s.Update(spinner.TickMsg{})
	if cmd == nil {
		t.Error("Update should schedule the next tick")
	}
	if s.View() == "" {
		t.Error("View returned empty after tick")
	}
}

func TestRenderSpinnerCentered(t *testing.T) {
	s := NewSpinner("Loading...")
	view := RenderSpinnerCentered(s, 20, 5)
	if view == "" {
		t.Error("RenderSpinnerCentered returned empty")
	}
}

func TestRenderLineChart(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	s := RenderLineChart(data, 20, 5, "Test")
	if s == "" {
		t.Error("RenderLineChart returned empty")
	}
}

func TestRenderLineChart_Empty(t *testing.T) {
	s := RenderLineChart(nil, 20, 5, "Test")
	if !strings.Contains(s, "No data") {
		t.Errorf("expected no-data placeholder, got %q", s)
	}
}

func TestRenderDualLineChart(t *testing.T) {
	data1 := []float64{1, 2, 3}
	data2 := []float64{3, 2, 1}
	s := RenderDualLineChart(data1, data2, 20, 5, "Title")
	if s == "" {
		t.Error("RenderDualLineChart returned empty")
	}
}

func TestRenderBarChart(t *testing.T) {
	values := []float64{10, 20}
	labels := []string{"A", "B"}
	s := RenderBarChart(values, labels, 20)
	if s == "" {
		t.Error("RenderBarChart returned empty")
	}
}

func TestRenderHeatmapGrid(t *testing.T) {
	cells := []models.HeatmapCell{
		{Day: models.Monday, Hour: "08-10", Value: 120, Intensity: 5, IsPeak: true},
		{Day: models.Sunday, Hour: "22-24", Value: 10, Intensity: 1},
	}
	s := RenderHeatmapGrid(cells)
	if s == "" {
		t.Error("RenderHeatmapGrid returned empty")
	}

	// One header row plus one row per day of the week.
	lines := strings.Split(s, "\n")
	if len(lines) != 1+len(models.Weekdays) {
		t.Errorf("got %d lines, want %d", len(lines), 1+len(models.Weekdays))
	}
	if !strings.HasPrefix(lines[1], "Mon") {
		t.Errorf("first data row = %q, want Monday first", lines[1])
	}
}

func TestRenderHeatmapGrid_Empty(t *testing.T) {
	s := RenderHeatmapGrid(nil)
	if !strings.Contains(s, "No data") {
		t.Errorf("expected no-data placeholder, got %q", s)
	}
}

func TestRenderDayTotals(t *testing.T) {
	stats := []models.DayStat{
		{Day: models.Monday, Total: 100},
		{Day: models.Tuesday, Total: 50},
	}
	s := RenderDayTotals(stats)
	if s == "" {
		t.Error("RenderDayTotals returned empty")
	}
	if !strings.Contains(s, "Mon") || !strings.Contains(s, "Tue") {
		t.Errorf("day labels missing from %q", s)
	}
}

func TestRenderSparkline(t *testing.T) {
	data := []float64{1, 2, 3}
	s := RenderSparkline(data, 10)
	if s == "" {
		t.Error("RenderSparkline returned empty")
	}
}

func TestRenderRateSparkline(t *testing.T) {
	data := []float64{98.5, 94.2, 88.0}
	s := RenderRateSparkline(data, 10)
	if s == "" {
		t.Error("RenderRateSparkline returned empty")
	}
}

func TestRenderLegend(t *testing.T) {
	items := []LegendItem{
		{Label: "A", Color: lipgloss.Color("#ffffff")},
	}
	s := RenderLegend(items)
	if s == "" {
		t.Error("RenderLegend returned empty")
	}
}
