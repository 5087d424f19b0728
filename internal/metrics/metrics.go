// Package metrics implements the aggregation pass that turns fetched
// interval series into the derived figures each dashboard tab renders.
// Every function here is pure: no I/O, no shared state, and degenerate
// inputs (empty series, zero denominators) resolve to zero values
// rather than errors.
package metrics

import "math"

// mean returns the arithmetic mean of vals, or 0 for an empty slice.
func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// pctChange returns the percentage change from earlier to later, rounded
// to one decimal. A zero earlier value yields 0 rather than Inf/NaN.
func pctChange(earlier, later float64) float64 {
	if earlier == 0 {
		return 0
	}
	return round1((later - earlier) / earlier * 100)
}

// windowTrend compares the leading and trailing windows of a series.
// The window length is min(3, len/2) so the windows never overlap;
// series too short to carve two windows out of report a flat trend.
func windowTrend(vals []float64) float64 {
	w := len(vals) / 2
	if w > 3 {
		w = 3
	}
	if w == 0 {
		return 0
	}
	return pctChange(mean(vals[:w]), mean(vals[len(vals)-w:]))
}

// sharePct returns part as an integer percentage of total, 0 when
// total is 0.
func sharePct(part, total float64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(part / total * 100))
}
