package metrics

import "github.com/k-mensah/ussd-dash-tui/internal/models"

// BuildDayStats aggregates heatmap cells per weekday: the day's summed
// volume plus its busiest cell's value and hour label. Every fixed day
// gets a stat; a day with no cells yields total 0 and an empty peak hour.
func BuildDayStats(cells []models.HeatmapCell) []models.DayStat {
	stats := make([]models.DayStat, 0, len(models.Weekdays))
	for _, day := range models.Weekdays {
		stat := models.DayStat{Day: day}
		seen := false
		for _, c := range cells {
			if c.Day != day {
				continue
			}
			stat.Total += c.Value
			if !seen || c.Value > stat.Peak {
				stat.Peak = c.Value
				stat.PeakHour = c.Hour
			}
			seen = true
		}
		stats = append(stats, stat)
	}
	return stats
}

// BuildHourlyPivot reshapes cells into one row per fixed hour bucket,
// carrying that bucket's value for every weekday keyed by lowercase day
// name. Missing (day, hour) pairs are zero-filled so downstream charts
// draw a zero point instead of a gap.
func BuildHourlyPivot(cells []models.HeatmapCell) []models.HourlyPivotRow {
	rows := make([]models.HourlyPivotRow, 0, len(models.HourBuckets))
	for _, hour := range models.HourBuckets {
		row := models.HourlyPivotRow{
			Hour:  hour,
			ByDay: make(map[string]int, len(models.Weekdays)),
		}
		for _, day := range models.Weekdays {
			row.ByDay[day.Key()] = 0
		}
		for _, c := range cells {
			if c.Hour == hour {
				row.ByDay[c.Day.Key()] = c.Value
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// BuildHeatmapInsights derives the summary callouts for the peak-hours
// view: busiest and quietest hour bucket across all days, busiest day,
// and whether weekends out-average weekdays. Ties resolve to whichever
// candidate appears first in the fixed day/hour enumeration order.
func BuildHeatmapInsights(cells []models.HeatmapCell) models.HeatmapInsights {
	if len(cells) == 0 {
		return models.HeatmapInsights{}
	}

	hourTotals := make(map[string]int, len(models.HourBuckets))
	var weekendSum, weekdaySum int
	for _, c := range cells {
		hourTotals[c.Hour] += c.Value
		if c.Day.IsWeekend() {
			weekendSum += c.Value
		} else {
			weekdaySum += c.Value
		}
	}

	var insights models.HeatmapInsights
	var busiestVal, quietestVal int
	for i, hour := range models.HourBuckets {
		v := hourTotals[hour]
		if i == 0 || v > busiestVal {
			busiestVal = v
			insights.BusiestHour = hour
		}
		if i == 0 || v < quietestVal {
			quietestVal = v
			insights.QuietestHour = hour
		}
	}

	var busiestDayTotal int
	for i, stat := range BuildDayStats(cells) {
		if i == 0 || stat.Total > busiestDayTotal {
			busiestDayTotal = stat.Total
			insights.BusiestDay = stat.Day.String()
		}
	}

	// Compare per-day averages: weekendSum/2 vs weekdaySum/5,
	// cross-multiplied to stay in integers.
	insights.WeekendsBusier = weekendSum*5 > weekdaySum*2
	return insights
}
