package metrics

import (
	"math"

	"github.com/k-mensah/ussd-dash-tui/internal/models"
)

// growthWindow is the number of trailing records compared against the
// records preceding them for the week-over-week growth rate.
const growthWindow = 7

// Summarize reduces an ordered interval series into its summary
// figures. An empty series yields the zero value for every field.
func Summarize(records []models.IntervalRecord) models.SummaryMetrics {
	if len(records) == 0 {
		return models.SummaryMetrics{}
	}

	var m models.SummaryMetrics
	var revenue, successSum float64
	for i, r := range records {
		m.Total += r.Total
		revenue += r.Revenue
		successSum += r.SuccessRate
		// Replace only on strictly greater so ties keep the earliest record.
		if i == 0 || r.Total > m.Peak.Value {
			m.Peak = models.PeakRecord{Label: r.Label, Value: r.Total}
		}
	}

	n := len(records)
	m.Average = int(math.Round(float64(m.Total) / float64(n)))
	m.RevenueTotal = int(math.Round(revenue))
	m.SuccessRate = round1(successSum / float64(n))
	m.Trend = halfTrend(records)
	m.GrowthRate = growthRate(records)
	return m
}

// halfTrend compares the mean volume of the first half of the series
// against the second half, split at len/2. A single-record series has
// an empty first half and reports 0.
func halfTrend(records []models.IntervalRecord) float64 {
	mid := len(records) / 2
	return pctChange(meanTotal(records[:mid]), meanTotal(records[mid:]))
}

// growthRate compares the trailing growthWindow records against the
// window preceding them. Partial windows average whatever is present;
// an empty preceding window reports 0.
func growthRate(records []models.IntervalRecord) float64 {
	n := len(records)
	cut := n - growthWindow
	if cut < 0 {
		cut = 0
	}
	prevStart := cut - growthWindow
	if prevStart < 0 {
		prevStart = 0
	}
	return pctChange(meanTotal(records[prevStart:cut]), meanTotal(records[cut:]))
}

func meanTotal(records []models.IntervalRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	var sum float64
	for _, r := range records {
		sum += float64(r.Total)
	}
	return sum / float64(len(records))
}
