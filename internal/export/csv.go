// Package export writes fetched series to CSV files for offline use.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/k-mensah/ussd-dash-tui/internal/models"
)

// timestampFormat keeps exported filenames sortable.
const timestampFormat = "20060102-150405"

// Writer exports dashboard data into a target directory.
type Writer struct {
	dir string
	now func() time.Time
}

// NewWriter creates a Writer targeting dir, creating it if needed.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}
	return &Writer{dir: dir, now: time.Now}, nil
}

// Intervals writes the volume series and returns the file path.
func (w *Writer) Intervals(records []models.IntervalRecord) (string, error) {
	header := []string{"label", "timestamp", "total", "failed", "success_rate", "revenue", "sessions"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.Label,
			r.Timestamp.Format(time.RFC3339),
			strconv.Itoa(r.Total),
			strconv.Itoa(r.Failed),
			strconv.FormatFloat(r.SuccessRate, 'f', 1, 64),
			strconv.FormatFloat(r.Revenue, 'f', 2, 64),
			strconv.Itoa(r.Sessions),
		})
	}
	return w.write("volume", header, rows)
}

// Heatmap writes the peak-hours cells and returns the file path.
func (w *Writer) Heatmap(cells []models.HeatmapCell) (string, error) {
	header := []string{"day", "hour", "value", "intensity", "is_peak"}
	rows := make([][]string, 0, len(cells))
	for _, c := range cells {
		rows = append(rows, []string{
			c.Day.String(),
			c.Hour,
			strconv.Itoa(c.Value),
			strconv.Itoa(c.Intensity),
			strconv.FormatBool(c.IsPeak),
		})
	}
	return w.write("peak-hours", header, rows)
}

// Shares writes the revenue share table and returns the file path.
func (w *Writer) Shares(shares []models.ServiceShare) (string, error) {
	header := []string{"category", "value", "percentage", "trend"}
	rows := make([][]string, 0, len(shares))
	for _, s := range shares {
		rows = append(rows, []string{
			s.Name,
			strconv.FormatFloat(s.Value, 'f', 2, 64),
			strconv.Itoa(s.Percentage),
			strconv.FormatFloat(s.Trend, 'f', 1, 64),
		})
	}
	return w.write("revenue", header, rows)
}

// Groups writes a demographic share table and returns the file path.
func (w *Writer) Groups(name string, shares []models.DemographicShare) (string, error) {
	header := []string{"group", "value", "percentage", "trend"}
	rows := make([][]string, 0, len(shares))
	for _, s := range shares {
		rows = append(rows, []string{
			s.Group.String(),
			strconv.FormatFloat(s.Value, 'f', 2, 64),
			strconv.Itoa(s.Percentage),
			strconv.FormatFloat(s.Trend, 'f', 1, 64),
		})
	}
	return w.write(name, header, rows)
}

// write lands the rows in a temp file first, then renames it into
// place so a crash never leaves a half-written export behind.
func (w *Writer) write(prefix string, header []string, rows [][]string) (string, error) {
	name := fmt.Sprintf("%s-%s.csv", prefix, w.now().Format(timestampFormat))
	path := filepath.Join(w.dir, name)
	tmpPath := path + ".tmp"

	f, err := os.Create(tmpPath)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("failed to write header: %w", err)
	}
	if err := cw.WriteAll(rows); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("failed to write rows: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("failed to flush export: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close export file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return "", fmt.Errorf("failed to finalize export: %w", err)
	}
	return path, nil
}
