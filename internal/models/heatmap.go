package models

import "strings"

// Weekday is a day in the fixed 7-day heatmap axis, Monday first.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// Weekdays enumerates the heatmap day axis in fixed order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// String returns the display name for a weekday.
func (d Weekday) String() string {
	names := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	if d < Monday || d > Sunday {
		return "Unknown"
	}
	return names[d]
}

// Short returns the three-letter abbreviation for a weekday.
func (d Weekday) Short() string {
	s := d.String()
	if len(s) < 3 {
		return s
	}
	return s[:3]
}

// Key returns the lowercase day name used as a field key in pivot rows.
func (d Weekday) Key() string {
	return strings.ToLower(d.String())
}

// IsWeekend reports whether the day is Saturday or Sunday.
func (d Weekday) IsWeekend() bool {
	return d == Saturday || d == Sunday
}

// ParseWeekday maps a day name (any case) to a Weekday; the boolean is
// false when the name is not one of the seven fixed days.
func ParseWeekday(s string) (Weekday, bool) {
	for _, d := range Weekdays {
		if strings.EqualFold(s, d.String()) || strings.EqualFold(s, d.Short()) {
			return d, true
		}
	}
	return Monday, false
}

// HourBuckets enumerates the fixed 12 two-hour buckets of the heatmap
// hour axis, in chronological order.
var HourBuckets = []string{
	"00-02", "02-04", "04-06", "06-08", "08-10", "10-12",
	"12-14", "14-16", "16-18", "18-20", "20-22", "22-24",
}

// MaxIntensity is the top bin of the heatmap intensity quantization.
const MaxIntensity = 5

// HeatmapCell is one point of the fixed 7x12 peak-hours grid. Intensity
// is a 0-5 quantization of Value supplied by the upstream source.
type HeatmapCell struct {
	Day       Weekday
	Hour      string
	Value     int
	Intensity int
	IsPeak    bool
}

// DayStat aggregates one weekday's cells: the summed volume and the
// first max-value cell's value and hour label.
type DayStat struct {
	Day      Weekday
	Total    int
	Peak     int
	PeakHour string
}

// HourlyPivotRow is one fixed hour bucket's value for every weekday,
// keyed by lowercase day name, for the cross-day comparison chart.
type HourlyPivotRow struct {
	Hour  string
	ByDay map[string]int
}

// HeatmapInsights is the derived insight text for the peak-hours view.
type HeatmapInsights struct {
	BusiestHour  string
	BusiestDay   string
	QuietestHour string
	// WeekendsBusier reports whether the weekend per-day average volume
	// exceeds the weekday per-day average.
	WeekendsBusier bool
}
