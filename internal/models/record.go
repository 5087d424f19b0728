package models

import "time"

// IntervalRecord is one time-bucketed row of USSD transaction metrics
// (hourly or daily depending on the selected time range).
//
// Records arrive ordered ascending by timestamp; the aggregator never
// reorders them. Category counts are non-negative and SuccessRate lies
// in [0,100].
type IntervalRecord struct {
	Label       string
	Timestamp   time.Time
	Total       int
	Failed      int
	SuccessRate float64
	Revenue     float64
	Sessions    int
	Services    map[ServiceCategory]int
}

// ServiceCount returns the count for a category, zero when absent.
func (r *IntervalRecord) ServiceCount(c ServiceCategory) int {
	if r.Services == nil {
		return 0
	}
	return r.Services[c]
}

// PeakRecord identifies the record with the highest total in a series.
type PeakRecord struct {
	Label string
	Value int
}

// SummaryMetrics is the scalar aggregate derived from an IntervalRecord
// series. It is recomputed from scratch on every fetch and replaced
// wholesale; fields are never mutated in place.
type SummaryMetrics struct {
	Total        int
	Average      int
	Peak         PeakRecord
	RevenueTotal int
	Trend        float64
	SuccessRate  float64
	GrowthRate   float64
}

// RevenueRecord is one time-bucketed row of the revenue series, broken
// down by service category. PeakWindow marks records whose calendar
// day-of-month falls inside the elevated-activity window.
type RevenueRecord struct {
	Label      string
	Timestamp  time.Time
	Amounts    map[ServiceCategory]float64
	PeakWindow bool
}

// Amount returns the revenue for a category, zero when absent.
func (r *RevenueRecord) Amount(c ServiceCategory) float64 {
	if r.Amounts == nil {
		return 0
	}
	return r.Amounts[c]
}

// ServiceShare is one category's slice of the revenue (or volume) pie.
type ServiceShare struct {
	Category   ServiceCategory
	Name       string
	Value      float64
	Percentage int
	Trend      float64
}

// RevenueInsights is the derived insight text for the revenue view.
type RevenueInsights struct {
	Dominant        string
	FastestGrowing  string
	PeakWindowShare int
}

// DemographicSeries is one demographic group's volume over time,
// aligned with the interval series the view fetched it alongside.
type DemographicSeries struct {
	Group  DemographicGroup
	Values []float64
}

// DemographicShare is one province's or network's slice of the volume pie.
type DemographicShare struct {
	Group      DemographicGroup
	Value      float64
	Percentage int
	Trend      float64
}
