package metrics

import (
	"sort"
	"time"

	"github.com/k-mensah/ussd-dash-tui/internal/models"
)

// The mid-month calendar window flagged as elevated activity for
// revenue insight purposes.
const (
	peakWindowStartDay = 10
	peakWindowEndDay   = 20
)

// InPeakWindow reports whether ts falls inside the mid-month
// elevated-activity window, by calendar day of month.
func InPeakWindow(ts time.Time) bool {
	d := ts.Day()
	return d >= peakWindowStartDay && d <= peakWindowEndDay
}

// BuildShares sums each service category across the revenue series and
// computes its integer share of the grand total plus a trend over the
// category's own series. Shares come back ordered descending by value,
// largest contributor first; ties keep category enumeration order.
func BuildShares(records []models.RevenueRecord) []models.ServiceShare {
	categories := append([]models.ServiceCategory{}, models.ServiceCategories...)
	categories = append(categories, models.ServiceOther)

	var grand float64
	series := make(map[models.ServiceCategory][]float64, len(categories))
	for _, c := range categories {
		vals := make([]float64, len(records))
		for i := range records {
			vals[i] = records[i].Amount(c)
			grand += vals[i]
		}
		series[c] = vals
	}

	shares := make([]models.ServiceShare, 0, len(categories))
	for _, c := range categories {
		var sum float64
		for _, v := range series[c] {
			sum += v
		}
		shares = append(shares, models.ServiceShare{
			Category:   c,
			Name:       c.String(),
			Value:      sum,
			Percentage: sharePct(sum, grand),
			Trend:      windowTrend(series[c]),
		})
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Value > shares[j].Value
	})
	return shares
}

// BuildRevenueInsights derives the revenue callouts from an already
// sorted share list and the raw series: the dominant category, the
// fastest-growing category by trend, and the share of revenue falling
// inside the peak window.
func BuildRevenueInsights(shares []models.ServiceShare, records []models.RevenueRecord) models.RevenueInsights {
	var insights models.RevenueInsights
	if len(shares) == 0 {
		return insights
	}
	insights.Dominant = shares[0].Name

	var bestTrend float64
	for i, s := range shares {
		if i == 0 || s.Trend > bestTrend {
			bestTrend = s.Trend
			insights.FastestGrowing = s.Name
		}
	}

	var grand, peak float64
	for _, r := range records {
		for _, v := range r.Amounts {
			grand += v
			if r.PeakWindow {
				peak += v
			}
		}
	}
	insights.PeakWindowShare = sharePct(peak, grand)
	return insights
}

// BuildGroupShares computes each demographic group's share of the
// combined total with a trend over the group's own series, ordered
// descending by value.
func BuildGroupShares(series []models.DemographicSeries) []models.DemographicShare {
	var grand float64
	for _, s := range series {
		for _, v := range s.Values {
			grand += v
		}
	}

	shares := make([]models.DemographicShare, 0, len(series))
	for _, s := range series {
		var sum float64
		for _, v := range s.Values {
			sum += v
		}
		shares = append(shares, models.DemographicShare{
			Group:      s.Group,
			Value:      sum,
			Percentage: sharePct(sum, grand),
			Trend:      windowTrend(s.Values),
		})
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Value > shares[j].Value
	})
	return shares
}
