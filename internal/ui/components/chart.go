// Package components provides reusable UI components for the TUI.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/k-mensah/ussd-dash-tui/internal/models"
	"github.com/k-mensah/ussd-dash-tui/internal/ui/styles"
)

// ChartColors defines colors for chart elements.
var (
	ChartVolumeColor  = lipgloss.Color("#4285f4")
	ChartRevenueColor = lipgloss.Color("#42d77d")
	ChartPrimaryColor = lipgloss.Color("#7D56F4")
)

// RenderLineChart creates a single-series ASCII line chart.
func RenderLineChart(data []float64, width, height int, caption string) string {
	if len(data) == 0 {
		return styles.HelpStyle.Render("No data available")
	}

	// Ensure minimum dimensions
	if width < 20 {
		width = 20
	}
	if height < 3 {
		height = 3
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)

	return graph
}

// RenderDualLineChart creates a two-series chart, e.g. volume vs sessions.
func RenderDualLineChart(first, second []float64, width, height int, caption string) string {
	if len(first) == 0 && len(second) == 0 {
		return styles.HelpStyle.Render("No data available")
	}

	// Ensure minimum dimensions
	if width < 20 {
		width = 20
	}
	if height < 3 {
		height = 3
	}

	// Normalize lengths - pad shorter array with zeros
	maxLen := len(first)
	if len(second) > maxLen {
		maxLen = len(second)
	}

	firstData := make([]float64, maxLen)
	secondData := make([]float64, maxLen)
	copy(firstData, first)
	copy(secondData, second)

	graph := asciigraph.PlotMany([][]float64{firstData, secondData},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(
			asciigraph.Blue,
			asciigraph.Green,
		),
	)

	return graph
}

// RenderBarChart creates a simple horizontal bar chart.
func RenderBarChart(values []float64, labels []string, width int) string {
	if len(values) == 0 {
		return ""
	}

	// Find max value for scaling
	maxVal := 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	// Find max label length
	maxLabelLen := 0
	for _, l := range labels {
		if len(l) > maxLabelLen {
			maxLabelLen = len(l)
		}
	}

	barWidth := width - maxLabelLen - 10 // Leave room for label and value
	if barWidth < 10 {
		barWidth = 10
	}

	var lines []string
	for i, v := range values {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}

		// Pad label
		paddedLabel := fmt.Sprintf("%*s", maxLabelLen, label)

		// Calculate bar length
		barLen := int((v / maxVal) * float64(barWidth))
		if barLen < 0 {
			barLen = 0
		}

		bar := strings.Repeat("█", barLen)
		valueStr := fmt.Sprintf(" %.1f", v)

		line := paddedLabel + " │" + bar + valueStr
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// HeatmapBlocks are Unicode block characters for the six intensity levels.
var HeatmapBlocks = []rune{'·', '░', '░', '▒', '▓', '█'}

// heatCellWidth is the rendered width of one heatmap column.
const heatCellWidth = 3

// RenderHeatmapGrid creates the day-by-hour activity grid. Rows follow
// the Monday-first week, columns follow the two-hour buckets. The peak
// cell is drawn bold.
func RenderHeatmapGrid(cells []models.HeatmapCell) string {
	if len(cells) == 0 {
		return styles.HelpStyle.Render("No data available")
	}

	type key struct {
		day  models.Weekday
		hour string
	}
	lookup := make(map[key]models.HeatmapCell, len(cells))
	for _, c := range cells {
		lookup[key{c.Day, c.Hour}] = c
	}

	var result strings.Builder

	// Header row: starting hour of each bucket.
	result.WriteString("    ")
	for _, bucket := range models.HourBuckets {
		result.WriteString(styles.HelpStyle.Render(fmt.Sprintf("%-*s", heatCellWidth, bucket[:2])))
	}
	result.WriteString("\n")

	for _, day := range models.Weekdays {
		result.WriteString(fmt.Sprintf("%-4s", day.Short()))
		for _, bucket := range models.HourBuckets {
			cell := lookup[key{day, bucket}]
			intensity := cell.Intensity
			if intensity < 0 {
				intensity = 0
			}
			if intensity >= len(HeatmapBlocks) {
				intensity = len(HeatmapBlocks) - 1
			}

			style := styles.GetHeatStyle(intensity)
			if cell.IsPeak {
				style = style.Bold(true)
			}
			block := strings.Repeat(string(HeatmapBlocks[intensity]), 2)
			result.WriteString(style.Render(block))
			result.WriteString(" ")
		}
		result.WriteString("\n")
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderDayTotals creates a compact per-day activity summary using
// sparkline characters, e.g. "Mon ▃ Tue █ ...".
func RenderDayTotals(stats []models.DayStat) string {
	if len(stats) == 0 {
		return ""
	}

	maxVal := 0
	for _, s := range stats {
		if s.Total > maxVal {
			maxVal = s.Total
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	sparkChars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	var parts []string
	for _, s := range stats {
		level := int(float64(s.Total) / float64(maxVal) * float64(len(sparkChars)-1))
		if level >= len(sparkChars) {
			level = len(sparkChars) - 1
		}
		if level < 0 {
			level = 0
		}
		parts = append(parts, fmt.Sprintf("%s %s", s.Day.Short(), string(sparkChars[level])))
	}

	return strings.Join(parts, " ")
}

// RenderSparkline creates a compact inline sparkline chart.
func RenderSparkline(values []float64, width int) string {
	if len(values) == 0 {
		return ""
	}

	sparkChars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	// Find max value
	maxVal := 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	// Sample values to fit width
	var result strings.Builder
	step := float64(len(values)) / float64(width)
	if step < 1 {
		step = 1
	}

	for i := 0; i < width && int(float64(i)*step) < len(values); i++ {
		idx := int(float64(i) * step)
		val := values[idx]
		normalized := int((val / maxVal) * float64(len(sparkChars)-1))
		if normalized >= len(sparkChars) {
			normalized = len(sparkChars) - 1
		}
		if normalized < 0 {
			normalized = 0
		}
		result.WriteRune(sparkChars[normalized])
	}

	return result.String()
}

// RenderRateSparkline creates a sparkline of success rates, coloring
// each point by its health band.
func RenderRateSparkline(rates []float64, width int) string {
	if len(rates) == 0 {
		return ""
	}

	sparkChars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	var result strings.Builder
	step := float64(len(rates)) / float64(width)
	if step < 1 {
		step = 1
	}

	for i := 0; i < width && int(float64(i)*step) < len(rates); i++ {
		idx := int(float64(i) * step)
		rate := rates[idx]
		normalized := int(rate / 100 * float64(len(sparkChars)-1))
		if normalized >= len(sparkChars) {
			normalized = len(sparkChars) - 1
		}
		if normalized < 0 {
			normalized = 0
		}

		style := styles.GetRateStyle(rate)
		result.WriteString(style.Render(string(sparkChars[normalized])))
	}

	return result.String()
}

// RenderLegend creates a chart legend.
func RenderLegend(items []LegendItem) string {
	var parts []string
	for _, item := range items {
		colorBox := lipgloss.NewStyle().Foreground(item.Color).Render("■")
		parts = append(parts, fmt.Sprintf("%s %s", colorBox, item.Label))
	}
	return strings.Join(parts, "  ")
}

// LegendItem represents a single legend entry.
type LegendItem struct {
	Label string
	Color lipgloss.Color
}
