package api

import (
	"time"

	"github.com/k-mensah/ussd-dash-tui/internal/metrics"
	"github.com/k-mensah/ussd-dash-tui/internal/models"
)

// envelope is the wire shape every endpoint responds with. A non-success
// envelope carries no usable payload and is treated as "no data".
type envelope[T any] struct {
	Success bool `json:"success"`
	Payload T    `json:"payload"`
}

// intervalDTO is one wire row of the volume series.
type intervalDTO struct {
	Label       string         `json:"label"`
	Timestamp   string         `json:"timestamp"`
	Total       int            `json:"total"`
	Failed      int            `json:"failed"`
	SuccessRate float64        `json:"successRate"`
	Revenue     float64        `json:"revenue"`
	Sessions    int            `json:"sessions"`
	Services    map[string]int `json:"services"`
}

func (d intervalDTO) toModel() models.IntervalRecord {
	r := models.IntervalRecord{
		Label:       d.Label,
		Timestamp:   parseTimestamp(d.Timestamp),
		Total:       d.Total,
		Failed:      d.Failed,
		SuccessRate: d.SuccessRate,
		Revenue:     d.Revenue,
		Sessions:    d.Sessions,
	}
	if len(d.Services) > 0 {
		r.Services = make(map[models.ServiceCategory]int, len(d.Services))
		for name, count := range d.Services {
			r.Services[models.ParseServiceCategory(name)] += count
		}
	}
	return r
}

// heatCellDTO is one wire cell of the peak-hours grid.
type heatCellDTO struct {
	Day       string `json:"day"`
	Hour      string `json:"hour"`
	Value     int    `json:"value"`
	Intensity int    `json:"intensity"`
	IsPeak    bool   `json:"isPeak"`
}

func (d heatCellDTO) toModel() (models.HeatmapCell, bool) {
	day, ok := models.ParseWeekday(d.Day)
	if !ok {
		return models.HeatmapCell{}, false
	}
	intensity := d.Intensity
	if intensity < 0 {
		intensity = 0
	}
	if intensity > models.MaxIntensity {
		intensity = models.MaxIntensity
	}
	return models.HeatmapCell{
		Day:       day,
		Hour:      d.Hour,
		Value:     d.Value,
		Intensity: intensity,
		IsPeak:    d.IsPeak,
	}, true
}

// revenueDTO is one wire row of the revenue series.
type revenueDTO struct {
	Label     string             `json:"label"`
	Timestamp string             `json:"timestamp"`
	Amounts   map[string]float64 `json:"amounts"`
}

func (d revenueDTO) toModel() models.RevenueRecord {
	ts := parseTimestamp(d.Timestamp)
	r := models.RevenueRecord{
		Label:      d.Label,
		Timestamp:  ts,
		PeakWindow: !ts.IsZero() && metrics.InPeakWindow(ts),
	}
	if len(d.Amounts) > 0 {
		r.Amounts = make(map[models.ServiceCategory]float64, len(d.Amounts))
		for name, amount := range d.Amounts {
			r.Amounts[models.ParseServiceCategory(name)] += amount
		}
	}
	return r
}

// groupDTO is one named demographic group's series.
type groupDTO struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// demographicsDTO is the wire payload of the demographics endpoint.
type demographicsDTO struct {
	Provinces []groupDTO `json:"provinces"`
	Networks  []groupDTO `json:"networks"`
}

func (d demographicsDTO) toModel() *Demographics {
	demo := &Demographics{}
	for _, g := range d.Provinces {
		demo.Provinces = mergeSeries(demo.Provinces, models.ParseProvince(g.Name), g.Values)
	}
	for _, g := range d.Networks {
		demo.Networks = mergeSeries(demo.Networks, models.ParseNetwork(g.Name), g.Values)
	}
	return demo
}

// mergeSeries folds values into group's series. Wire aliases and
// unknown names resolving to the same group sum into one row instead
// of duplicating it.
func mergeSeries(series []models.DemographicSeries, group models.DemographicGroup, values []float64) []models.DemographicSeries {
	for i := range series {
		if series[i].Group == group {
			series[i].Values = addValues(series[i].Values, values)
			return series
		}
	}
	vals := make([]float64, len(values))
	copy(vals, values)
	return append(series, models.DemographicSeries{Group: group, Values: vals})
}

func addValues(a, b []float64) []float64 {
	if len(b) > len(a) {
		a = append(a, make([]float64, len(b)-len(a))...)
	}
	for i, v := range b {
		a[i] += v
	}
	return a
}

// Demographics holds the converted demographic breakdowns.
type Demographics struct {
	Provinces []models.DemographicSeries
	Networks  []models.DemographicSeries
}

func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return ts
}
