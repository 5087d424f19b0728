package info

import (
	"strings"
	"testing"
	"time"

	"github.com/k-mensah/ussd-dash-tui/internal/app"
	"github.com/k-mensah/ussd-dash-tui/internal/config"
	"github.com/k-mensah/ussd-dash-tui/internal/db"
	"github.com/k-mensah/ussd-dash-tui/internal/models"
	"github.com/k-mensah/ussd-dash-tui/internal/services/catalog"
)

func TestNew(t *testing.T) {
	state := app.NewState()
	cfg := &config.Config{}
	m := New(state, cfg, nil)
	if m == nil {
		t.Fatal("New returned nil")
	}
}

func TestModel_Update(t *testing.T) {
	state := app.NewState()
	cfg := &config.Config{}
	m := New(state, cfg, nil)

	updated, _ := m.Update(nil)
	if updated == nil {
		t.Error("Update returned nil model")
	}
}

func TestModel_LoadHistoryCmd_NoServices(t *testing.T) {
	state := app.NewState()
	m := New(state, &config.Config{}, nil)

	if msg := m.loadHistoryCmd()(); msg != nil {
		t.Errorf("loadHistoryCmd without services = %T, want nil", msg)
	}
}

func TestModel_View(t *testing.T) {
	state := app.NewState()
	cfg := &config.Config{
		APIBaseURL:   "http://localhost:8080",
		DatabasePath: "/tmp/dash.db",
	}
	m := New(state, cfg, nil)
	m.SetSize(80, 24)

	view := m.View()
	if view == "" {
		t.Error("View returned empty string")
	}
	if !strings.Contains(view, "localhost:8080") {
		t.Error("View should show the API base URL")
	}
}

func TestModel_View_Catalog(t *testing.T) {
	state := app.NewState()
	state.SetCatalog([]catalog.Entry{
		{Code: "*171#", Name: "Airtime Topup", Enabled: true},
		{Code: "*120#", Name: "Legacy Menu", Enabled: false},
	})
	m := New(state, &config.Config{}, nil)
	m.SetSize(80, 40)

	view := m.View()
	if !strings.Contains(view, "*171#") {
		t.Error("View should list catalog codes")
	}
	if !strings.Contains(view, "(1 enabled)") {
		t.Error("View should show the enabled count")
	}
}

func TestModel_View_History(t *testing.T) {
	state := app.NewState()
	m := New(state, &config.Config{}, nil)
	m.SetSize(80, 40)

	m.Update(historyLoadedMsg{
		snapshots: []db.Snapshot{
			{
				CapturedAt: time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC),
				TimeRange:  models.Range7Days,
				Metrics:    models.SummaryMetrics{Total: 500, SuccessRate: 97.2},
			},
		},
		rates: []float64{95, 96, 97.2},
	})

	view := m.View()
	if !strings.Contains(view, "500") {
		t.Error("View should show the snapshot total")
	}
	if !strings.Contains(view, "97.2%") {
		t.Error("View should show the snapshot success rate")
	}
}

func TestModel_SetSize(t *testing.T) {
	state := app.NewState()
	m := New(state, &config.Config{}, nil)
	m.SetSize(100, 50)
}

func TestModel_Help(t *testing.T) {
	state := app.NewState()
	m := New(state, &config.Config{}, nil)
	if len(m.ShortHelp()) == 0 {
		t.Error("ShortHelp empty")
	}
	if len(m.FullHelp()) == 0 {
		t.Error("FullHelp empty")
	}
}
