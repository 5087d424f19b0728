package models

import (
	"testing"
)

func TestTimeRange_String(t *testing.T) {
	tests := []struct {
		name string
		tr   TimeRange
		want string
	}{
		{"Today", RangeToday, "Today"},
		{"7Days", Range7Days, "7 Days"},
		{"30Days", Range30Days, "30 Days"},
		{"90Days", Range90Days, "90 Days"},
		{"Unknown", TimeRange(999), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tr.String(); got != tt.want {
				t.Errorf("TimeRange.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTimeRange_Param(t *testing.T) {
	tests := []struct {
		name string
		tr   TimeRange
		want string
	}{
		{"Today", RangeToday, "today"},
		{"7Days", Range7Days, "7d"},
		{"30Days", Range30Days, "30d"},
		{"90Days", Range90Days, "90d"},
		{"Unknown", TimeRange(999), "7d"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tr.Param(); got != tt.want {
				t.Errorf("TimeRange.Param() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTimeRange_Next(t *testing.T) {
	tests := []struct {
		name string
		tr   TimeRange
		want TimeRange
	}{
		{"Today -> 7Days", RangeToday, Range7Days},
		{"7Days -> 30Days", Range7Days, Range30Days},
		{"30Days -> 90Days", Range30Days, Range90Days},
		{"90Days -> Today", Range90Days, RangeToday},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tr.Next(); got != tt.want {
				t.Errorf("TimeRange.Next() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTimeRange_Prev(t *testing.T) {
	tests := []struct {
		name string
		tr   TimeRange
		want TimeRange
	}{
		{"Today -> 90Days", RangeToday, Range90Days},
		{"7Days -> Today", Range7Days, RangeToday},
		{"90Days -> 30Days", Range90Days, Range30Days},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tr.Prev(); got != tt.want {
				t.Errorf("TimeRange.Prev() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseServiceCategory(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want ServiceCategory
	}{
		{"Airtime", "Airtime", ServiceAirtime},
		{"LowercaseKey", "mobile_money", ServiceMobileMoney},
		{"DisplayName", "Mobile Money", ServiceMobileMoney},
		{"Data", "data", ServiceData},
		{"BillPay", "bill_pay", ServiceBillPay},
		{"UnknownFallsBack", "lottery", ServiceOther},
		{"Empty", "", ServiceOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseServiceCategory(tt.in); got != tt.want {
				t.Errorf("ParseServiceCategory(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseProvince(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Province
	}{
		{"Gauteng", "Gauteng", ProvinceGauteng},
		{"WesternCape", "western_cape", ProvinceWesternCape},
		{"UnknownFallsBack", "atlantis", ProvinceOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseProvince(tt.in); got != tt.want {
				t.Errorf("ParseProvince(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   Weekday
		wantOK bool
	}{
		{"Full", "Monday", Monday, true},
		{"Lowercase", "sunday", Sunday, true},
		{"Short", "Wed", Wednesday, true},
		{"Invalid", "Funday", Monday, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseWeekday(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseWeekday(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestWeekday_IsWeekend(t *testing.T) {
	for _, d := range Weekdays {
		want := d == Saturday || d == Sunday
		if got := d.IsWeekend(); got != want {
			t.Errorf("%v.IsWeekend() = %v, want %v", d, got, want)
		}
	}
}

func TestIntervalRecord_ServiceCount(t *testing.T) {
	r := &IntervalRecord{Services: map[ServiceCategory]int{ServiceAirtime: 12}}
	if got := r.ServiceCount(ServiceAirtime); got != 12 {
		t.Errorf("ServiceCount(Airtime) = %v, want 12", got)
	}
	if got := r.ServiceCount(ServiceData); got != 0 {
		t.Errorf("ServiceCount(Data) = %v, want 0", got)
	}
	empty := &IntervalRecord{}
	if got := empty.ServiceCount(ServiceAirtime); got != 0 {
		t.Errorf("ServiceCount on nil map = %v, want 0", got)
	}
}

func TestRevenueRecord_Amount(t *testing.T) {
	r := &RevenueRecord{Amounts: map[ServiceCategory]float64{ServiceBillPay: 450.5}}
	if got := r.Amount(ServiceBillPay); got != 450.5 {
		t.Errorf("Amount(BillPay) = %v, want 450.5", got)
	}
	if got := r.Amount(ServiceOther); got != 0 {
		t.Errorf("Amount(Other) = %v, want 0", got)
	}
}
