package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/k-mensah/ussd-dash-tui/internal/models"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}
	return db
}

func TestNew(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	db, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	if db.Path() != dbPath {
		t.Errorf("Expected path %s, got %s", dbPath, db.Path())
	}

	// Verify file exists
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestNew_CreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "nested", "test.db")

	db, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create database with nested path: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(filepath.Dir(dbPath)); os.IsNotExist(err) {
		t.Error("Nested directories were not created")
	}
}

func TestSchema_TablesExist(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	var name string
	err := db.QueryRowContext(context.Background(),
		"SELECT name FROM sqlite_master WHERE type='table' AND name=?",
		"summary_snapshots").Scan(&name)
	if err != nil {
		t.Errorf("Table summary_snapshots does not exist: %v", err)
	}
}

func TestInsertAndGetSnapshots(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	m := models.SummaryMetrics{
		Total:        100,
		Average:      25,
		Peak:         models.PeakRecord{Label: "Wed", Value: 40},
		RevenueTotal: 900,
		Trend:        133.3,
		SuccessRate:  95.5,
		GrowthRate:   12.0,
	}
	if err := db.InsertSnapshot(models.Range7Days, m); err != nil {
		t.Fatalf("InsertSnapshot() failed: %v", err)
	}

	snapshots, err := db.GetRecentSnapshots(models.Range7Days, 10)
	if err != nil {
		t.Fatalf("GetRecentSnapshots() failed: %v", err)
	}
	if len(snapshots) != 1 {
		t.Fatalf("len(snapshots) = %v, want 1", len(snapshots))
	}
	if snapshots[0].Metrics != m {
		t.Errorf("snapshot metrics = %+v, want %+v", snapshots[0].Metrics, m)
	}

	// Different range sees nothing.
	other, err := db.GetRecentSnapshots(models.Range30Days, 10)
	if err != nil {
		t.Fatalf("GetRecentSnapshots() failed: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("len(other) = %v, want 0", len(other))
	}
}

func TestGetSuccessRateHistory(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	for _, rate := range []float64{90, 92, 94} {
		m := models.SummaryMetrics{SuccessRate: rate}
		if err := db.InsertSnapshot(models.RangeToday, m); err != nil {
			t.Fatalf("InsertSnapshot() failed: %v", err)
		}
	}

	rates, err := db.GetSuccessRateHistory(models.RangeToday, 10)
	if err != nil {
		t.Fatalf("GetSuccessRateHistory() failed: %v", err)
	}
	if len(rates) != 3 {
		t.Fatalf("len(rates) = %v, want 3", len(rates))
	}
}

func TestPruneSnapshots(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	// Insert a snapshot backdated beyond the retention window.
	old := time.Now().Add(-48 * time.Hour).Format("2006-01-02 15:04:05")
	_, err := db.ExecContext(context.Background(),
		"INSERT INTO summary_snapshots (captured_at, time_range) VALUES (?, ?)",
		old, models.Range7Days.Param())
	if err != nil {
		t.Fatalf("backdated insert failed: %v", err)
	}
	if err := db.InsertSnapshot(models.Range7Days, models.SummaryMetrics{}); err != nil {
		t.Fatalf("InsertSnapshot() failed: %v", err)
	}

	pruned, err := db.PruneSnapshots(24 * time.Hour)
	if err != nil {
		t.Fatalf("PruneSnapshots() failed: %v", err)
	}
	if pruned != 1 {
		t.Errorf("pruned = %v, want 1", pruned)
	}

	remaining, err := db.GetRecentSnapshots(models.Range7Days, 10)
	if err != nil {
		t.Fatalf("GetRecentSnapshots() failed: %v", err)
	}
	if len(remaining) != 1 {
		t.Errorf("len(remaining) = %v, want 1", len(remaining))
	}
}

func TestVacuum(t *testing.T) {
	db := newTestDB(t)
	defer db.Close()

	if err := db.Vacuum(); err != nil {
		t.Errorf("Vacuum failed: %v", err)
	}
}
