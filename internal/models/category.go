// Package models defines data structures and domain types.
package models

import "strings"

// ServiceCategory identifies a USSD service line in per-interval breakdowns.
type ServiceCategory int

const (
	// ServiceAirtime is airtime top-up transactions.
	ServiceAirtime ServiceCategory = iota
	// ServiceData is data bundle purchases.
	ServiceData
	// ServiceMobileMoney is wallet/mobile-money transactions.
	ServiceMobileMoney
	// ServiceBillPay is bill payment transactions.
	ServiceBillPay
	// ServiceOther is the fallback for categories the dashboard does not know.
	ServiceOther
)

// ServiceCategories lists all known categories in display order,
// excluding the fallback.
var ServiceCategories = []ServiceCategory{
	ServiceAirtime,
	ServiceData,
	ServiceMobileMoney,
	ServiceBillPay,
}

// String returns the display name for a service category.
func (c ServiceCategory) String() string {
	switch c {
	case ServiceAirtime:
		return "Airtime"
	case ServiceData:
		return "Data"
	case ServiceMobileMoney:
		return "Mobile Money"
	case ServiceBillPay:
		return "Bill Pay"
	default:
		return "Other"
	}
}

// Key returns the wire/API identifier for a service category.
func (c ServiceCategory) Key() string {
	switch c {
	case ServiceAirtime:
		return "airtime"
	case ServiceData:
		return "data"
	case ServiceMobileMoney:
		return "momo"
	case ServiceBillPay:
		return "billpay"
	default:
		return "other"
	}
}

// ParseServiceCategory maps a wire identifier to a category.
// Unknown identifiers resolve to ServiceOther rather than an error.
func ParseServiceCategory(s string) ServiceCategory {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "airtime":
		return ServiceAirtime
	case "data", "databundle", "data_bundle":
		return ServiceData
	case "momo", "mobilemoney", "mobile money", "mobile_money", "wallet":
		return ServiceMobileMoney
	case "billpay", "bill_pay", "bills":
		return ServiceBillPay
	default:
		return ServiceOther
	}
}

// DemographicGroup is the closed set of grouping values for demographic
// breakdowns: a Province or a Network, each with its Other fallback.
type DemographicGroup interface {
	String() string
	isDemographicGroup()
}

// Province identifies a subscriber region in demographics breakdowns.
type Province int

const (
	ProvinceGauteng Province = iota
	ProvinceWesternCape
	ProvinceKwaZuluNatal
	ProvinceEasternCape
	ProvinceLimpopo
	// ProvinceOther is the fallback for regions the dashboard does not know.
	ProvinceOther
)

// Provinces lists all known provinces in display order, excluding the fallback.
var Provinces = []Province{
	ProvinceGauteng,
	ProvinceWesternCape,
	ProvinceKwaZuluNatal,
	ProvinceEasternCape,
	ProvinceLimpopo,
}

// String returns the display name for a province.
func (p Province) String() string {
	switch p {
	case ProvinceGauteng:
		return "Gauteng"
	case ProvinceWesternCape:
		return "Western Cape"
	case ProvinceKwaZuluNatal:
		return "KwaZulu-Natal"
	case ProvinceEasternCape:
		return "Eastern Cape"
	case ProvinceLimpopo:
		return "Limpopo"
	default:
		return "Other"
	}
}

// ParseProvince maps a wire identifier to a province, falling back to
// ProvinceOther.
func ParseProvince(s string) Province {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gauteng", "gp":
		return ProvinceGauteng
	case "western cape", "western_cape", "wc":
		return ProvinceWesternCape
	case "kwazulu-natal", "kwazulu_natal", "kzn":
		return ProvinceKwaZuluNatal
	case "eastern cape", "eastern_cape", "ec":
		return ProvinceEasternCape
	case "limpopo", "lp":
		return ProvinceLimpopo
	default:
		return ProvinceOther
	}
}

func (Province) isDemographicGroup() {}

// Network identifies a mobile network operator in demographics breakdowns.
type Network int

const (
	NetworkMTN Network = iota
	NetworkVodacom
	NetworkCellC
	NetworkTelkom
	// NetworkOther is the fallback for operators the dashboard does not know.
	NetworkOther
)

// Networks lists all known operators in display order, excluding the fallback.
var Networks = []Network{
	NetworkMTN,
	NetworkVodacom,
	NetworkCellC,
	NetworkTelkom,
}

// String returns the display name for a network operator.
func (n Network) String() string {
	switch n {
	case NetworkMTN:
		return "MTN"
	case NetworkVodacom:
		return "Vodacom"
	case NetworkCellC:
		return "Cell C"
	case NetworkTelkom:
		return "Telkom"
	default:
		return "Other"
	}
}

// ParseNetwork maps a wire identifier to a network, falling back to
// NetworkOther.
func ParseNetwork(s string) Network {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mtn":
		return NetworkMTN
	case "vodacom":
		return NetworkVodacom
	case "cellc", "cell c", "cell_c":
		return NetworkCellC
	case "telkom":
		return NetworkTelkom
	default:
		return NetworkOther
	}
}

func (Network) isDemographicGroup() {}
