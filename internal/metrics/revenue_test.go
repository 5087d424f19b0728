package metrics

import (
	"testing"
	"time"

	"github.com/k-mensah/ussd-dash-tui/internal/models"
)

func revenueSeries(airtime, data []float64) []models.RevenueRecord {
	n := len(airtime)
	if len(data) > n {
		n = len(data)
	}
	records := make([]models.RevenueRecord, n)
	for i := range records {
		amounts := make(map[models.ServiceCategory]float64)
		if i < len(airtime) {
			amounts[models.ServiceAirtime] = airtime[i]
		}
		if i < len(data) {
			amounts[models.ServiceData] = data[i]
		}
		records[i] = models.RevenueRecord{Amounts: amounts}
	}
	return records
}

func TestInPeakWindow(t *testing.T) {
	tests := []struct {
		name string
		day  int
		want bool
	}{
		{"BeforeWindow", 9, false},
		{"WindowStart", 10, true},
		{"MidWindow", 15, true},
		{"WindowEnd", 20, true},
		{"AfterWindow", 21, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := time.Date(2025, time.March, tt.day, 12, 0, 0, 0, time.UTC)
			if got := InPeakWindow(ts); got != tt.want {
				t.Errorf("InPeakWindow(day %v) = %v, want %v", tt.day, got, tt.want)
			}
		})
	}
}

func TestBuildShares(t *testing.T) {
	shares := BuildShares(revenueSeries(
		[]float64{10, 10, 10},
		[]float64{5, 5, 20},
	))

	if shares[0].Name != "Airtime" || shares[0].Value != 30 {
		t.Errorf("shares[0] = %+v, want Airtime with value 30", shares[0])
	}
	if shares[1].Name != "Data" || shares[1].Value != 30 {
		t.Errorf("shares[1] = %+v, want Data with value 30", shares[1])
	}

	// Airtime holds flat at 10; Data moves 5 -> 20.
	if shares[0].Trend != 0 {
		t.Errorf("Airtime trend = %v, want 0", shares[0].Trend)
	}
	if shares[1].Trend != 300 {
		t.Errorf("Data trend = %v, want 300", shares[1].Trend)
	}

	if shares[0].Percentage != 50 || shares[1].Percentage != 50 {
		t.Errorf("percentages = %v/%v, want 50/50", shares[0].Percentage, shares[1].Percentage)
	}
}

func TestBuildShares_PercentagesSumNear100(t *testing.T) {
	shares := BuildShares(revenueSeries(
		[]float64{33, 41, 27},
		[]float64{12, 18, 9},
	))
	var sum int
	for _, s := range shares {
		sum += s.Percentage
	}
	if sum < 98 || sum > 102 {
		t.Errorf("percentage sum = %v, want ~100", sum)
	}
}

func TestBuildShares_EmptySeries(t *testing.T) {
	shares := BuildShares(nil)
	for _, s := range shares {
		if s.Value != 0 || s.Percentage != 0 || s.Trend != 0 {
			t.Errorf("share %s = %+v, want all zeros", s.Name, s)
		}
	}
}

func TestBuildShares_SortedDescending(t *testing.T) {
	shares := BuildShares(revenueSeries(
		[]float64{1, 1, 1},
		[]float64{100, 100, 100},
	))
	if shares[0].Name != "Data" {
		t.Errorf("shares[0] = %q, want Data (largest value first)", shares[0].Name)
	}
	for i := 1; i < len(shares); i++ {
		if shares[i].Value > shares[i-1].Value {
			t.Errorf("shares not descending at %v: %v > %v", i, shares[i].Value, shares[i-1].Value)
		}
	}
}

func TestBuildRevenueInsights(t *testing.T) {
	records := revenueSeries(
		[]float64{10, 10, 10},
		[]float64{5, 5, 20},
	)
	records[1].PeakWindow = true
	shares := BuildShares(records)

	got := BuildRevenueInsights(shares, records)
	if got.Dominant != "Airtime" {
		t.Errorf("Dominant = %q, want Airtime", got.Dominant)
	}
	if got.FastestGrowing != "Data" {
		t.Errorf("FastestGrowing = %q, want Data", got.FastestGrowing)
	}
	// Peak-window record carries 15 of the 60 total.
	if got.PeakWindowShare != 25 {
		t.Errorf("PeakWindowShare = %v, want 25", got.PeakWindowShare)
	}
}

func TestBuildRevenueInsights_Empty(t *testing.T) {
	got := BuildRevenueInsights(nil, nil)
	want := models.RevenueInsights{}
	if got != want {
		t.Errorf("BuildRevenueInsights(nil, nil) = %+v, want zero value", got)
	}
}

func TestBuildGroupShares(t *testing.T) {
	series := []models.DemographicSeries{
		{Group: models.ProvinceGauteng, Values: []float64{30, 30}},
		{Group: models.ProvinceLimpopo, Values: []float64{10, 30}},
	}
	shares := BuildGroupShares(series)
	if shares[0].Group != models.ProvinceGauteng || shares[0].Percentage != 60 {
		t.Errorf("shares[0] = %+v, want Gauteng at 60%%", shares[0])
	}
	if shares[1].Trend != 200 {
		t.Errorf("Limpopo trend = %v, want 200", shares[1].Trend)
	}
}

func TestWindowTrend(t *testing.T) {
	tests := []struct {
		name string
		vals []float64
		want float64
	}{
		{"Empty", nil, 0},
		{"Single", []float64{5}, 0},
		{"TwoElements", []float64{10, 15}, 50},
		{"ThreeElements", []float64{5, 5, 20}, 300},
		{"SixElements", []float64{10, 10, 10, 20, 20, 20}, 100},
		{"ZeroLeadingMean", []float64{0, 0, 5, 5}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := windowTrend(tt.vals); got != tt.want {
				t.Errorf("windowTrend(%v) = %v, want %v", tt.vals, got, tt.want)
			}
		})
	}
}
