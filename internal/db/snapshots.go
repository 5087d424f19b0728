package db

import (
	"context"
	"fmt"
	"time"

	"github.com/k-mensah/ussd-dash-tui/internal/models"
)

// Snapshot is one persisted summary, captured after a volume fetch so
// trends survive across dashboard sessions.
type Snapshot struct {
	ID         int64
	CapturedAt time.Time
	TimeRange  models.TimeRange
	Metrics    models.SummaryMetrics
}

// InsertSnapshot persists a summary for the given time range.
func (db *DB) InsertSnapshot(tr models.TimeRange, m models.SummaryMetrics) error {
	query := `
		INSERT INTO summary_snapshots (
			captured_at, time_range, total, average, peak_label, peak_value,
			revenue_total, trend, success_rate, growth_rate
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := db.ExecContext(context.Background(), query,
		time.Now().Format("2006-01-02 15:04:05"),
		tr.Param(),
		m.Total,
		m.Average,
		m.Peak.Label,
		m.Peak.Value,
		m.RevenueTotal,
		m.Trend,
		m.SuccessRate,
		m.GrowthRate,
	)
	if err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}
	return nil
}

// GetRecentSnapshots returns the most recent snapshots for a time
// range, newest first.
func (db *DB) GetRecentSnapshots(tr models.TimeRange, limit int) ([]Snapshot, error) {
	query := `
		SELECT id, captured_at, total, average, peak_label, peak_value,
			   revenue_total, trend, success_rate, growth_rate
		FROM summary_snapshots
		WHERE time_range = ?
		ORDER BY captured_at DESC
		LIMIT ?
	`
	rows, err := db.QueryContext(context.Background(), query, tr.Param(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var snapshots []Snapshot
	for rows.Next() {
		s := Snapshot{TimeRange: tr}
		err := rows.Scan(
			&s.ID,
			&s.CapturedAt,
			&s.Metrics.Total,
			&s.Metrics.Average,
			&s.Metrics.Peak.Label,
			&s.Metrics.Peak.Value,
			&s.Metrics.RevenueTotal,
			&s.Metrics.Trend,
			&s.Metrics.SuccessRate,
			&s.Metrics.GrowthRate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		snapshots = append(snapshots, s)
	}

	return snapshots, rows.Err()
}

// GetSuccessRateHistory returns success rates for a range in capture
// order, oldest first, capped to the most recent limit entries. Used
// for the sparkline on the overview tab.
func (db *DB) GetSuccessRateHistory(tr models.TimeRange, limit int) ([]float64, error) {
	query := `
		SELECT success_rate FROM (
			SELECT success_rate, captured_at
			FROM summary_snapshots
			WHERE time_range = ?
			ORDER BY captured_at DESC
			LIMIT ?
		)
		ORDER BY captured_at ASC
	`
	rows, err := db.QueryContext(context.Background(), query, tr.Param(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query success rate history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var rates []float64
	for rows.Next() {
		var rate float64
		if err := rows.Scan(&rate); err != nil {
			return nil, fmt.Errorf("failed to scan success rate: %w", err)
		}
		rates = append(rates, rate)
	}

	return rates, rows.Err()
}

// PruneSnapshots deletes snapshots older than the retention window.
func (db *DB) PruneSnapshots(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan).Format("2006-01-02 15:04:05")
	result, err := db.ExecContext(context.Background(),
		"DELETE FROM summary_snapshots WHERE captured_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune snapshots: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, nil
	}
	return n, nil
}
