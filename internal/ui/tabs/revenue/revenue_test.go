package revenue

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/k-mensah/ussd-dash-tui/internal/app"
	"github.com/k-mensah/ussd-dash-tui/internal/models"
	"github.com/k-mensah/ussd-dash-tui/internal/services/metricsvc"
)

func testSnapshot() *metricsvc.RevenueSnapshot {
	return &metricsvc.RevenueSnapshot{
		TimeRange: models.Range7Days,
		Records: []models.RevenueRecord{
			{
				Label:     "Mon",
				Timestamp: time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
				Amounts:   map[models.ServiceCategory]float64{models.ServiceAirtime: 1000},
			},
			{
				Label:      "Sat",
				Timestamp:  time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
				Amounts:    map[models.ServiceCategory]float64{models.ServiceAirtime: 1500},
				PeakWindow: true,
			},
		},
		Shares: []models.ServiceShare{
			{Category: models.ServiceAirtime, Name: "Airtime", Value: 2500, Percentage: 100, Trend: 8.2},
		},
		Insights: models.RevenueInsights{
			Dominant:        "Airtime",
			FastestGrowing:  "Airtime",
			PeakWindowShare: 60,
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
	if !strings.Contains(view, "No revenue data") {
		t.Error("View should show the empty message without a snapshot")
	}
}

func TestModel_View_WithData(t *testing.T) {
	state := app.NewState()
	state.SetInitialLoading(false)
	state.SetRevenue(testSnapshot())

	m := New(state)
	m.SetSize(100, 50)

	view := m.View()
	if !strings.Contains(view, "Revenue") {
		t.Error("View should show the title")
	}
	if !strings.Contains(view, "Airtime") {
		t.Error("View should show the share name")
	}
	if !strings.Contains(view, "60%") {
		t.Error("View should show the mid-month window share")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
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
