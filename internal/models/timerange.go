package models

// TimeRange selects the window of interval data fetched and displayed.
type TimeRange int

const (
	RangeToday TimeRange = iota
	Range7Days
	Range30Days
	Range90Days
)

// TimeRanges enumerates every selectable range in cycle order.
var TimeRanges = []TimeRange{RangeToday, Range7Days, Range30Days, Range90Days}

// String returns the display label for the range selector.
func (r TimeRange) String() string {
	switch r {
	case RangeToday:
		return "Today"
	case Range7Days:
		return "7 Days"
	case Range30Days:
		return "30 Days"
	case Range90Days:
		return "90 Days"
	default:
		return "Unknown"
	}
}

// Param returns the query-string value sent to the metrics API.
func (r TimeRange) Param() string {
	switch r {
	case RangeToday:
		return "today"
	case Range7Days:
		return "7d"
	case Range30Days:
		return "30d"
	case Range90Days:
		return "90d"
	default:
		return "7d"
	}
}

// Days returns the nominal length of the range in days.
func (r TimeRange) Days() int {
	switch r {
	case RangeToday:
		return 1
	case Range7Days:
		return 7
	case Range30Days:
		return 30
	case Range90Days:
		return 90
	default:
		return 7
	}
}

// Next cycles to the following range, wrapping back to Today.
func (r TimeRange) Next() TimeRange {
	switch r {
	case RangeToday:
		return Range7Days
	case Range7Days:
		return Range30Days
	case Range30Days:
		return Range90Days
	default:
		return RangeToday
	}
}

// Prev cycles to the preceding range, wrapping to 90 Days.
func (r TimeRange) Prev() TimeRange {
	switch r {
	case RangeToday:
		return Range90Days
	case Range7Days:
		return RangeToday
	case Range30Days:
		return Range7Days
	default:
		return Range30Days
	}
}
