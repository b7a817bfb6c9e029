package models

// FieldDescriptions lists the bond fields the API serves, with the help
// text shown by the help operation.
var FieldDescriptions = map[string]string{
	"isin":                 "ISIN identifier",
	"cusip":                "CUSIP (US bonds)",
	"sedol":                "SEDOL (UK bonds)",
	"name":                 "Bond name",
	"country":              "Country code (US, GB, DE...)",
	"issuer":               "Issuing entity",
	"security_type":        "NOMINAL or INDEX_LINKED",
	"currency":             "Currency code (USD, GBP, EUR...)",
	"coupon_rate":          "Coupon rate (displayed as %)",
	"coupon_frequency":     "Payments per year (1=annual, 2=semi)",
	"day_count_convention": "Day count method",
	"maturity_date":        "Maturity date",
	"issue_date":           "Issue date",
	"first_coupon_date":    "First coupon payment date",
	"outstanding_amount":   "Amount outstanding",
	"original_tenor":       "Original term (e.g., 10Y)",
}

// FieldAliases maps spreadsheet-friendly shorthands to canonical field names.
var FieldAliases = map[string]string{
	"coupon":    "coupon_rate",
	"maturity":  "maturity_date",
	"issue":     "issue_date",
	"type":      "security_type",
	"freq":      "coupon_frequency",
	"frequency": "coupon_frequency",
}

// CountryNames maps the supported country codes to display names.
var CountryNames = map[string]string{
	"US": "United States",
	"GB": "United Kingdom",
	"DE": "Germany",
	"FR": "France",
	"IT": "Italy",
	"ES": "Spain",
	"JP": "Japan",
	"NL": "Netherlands",
}

// CouponFrequencyNames maps payments-per-year to display text.
var CouponFrequencyNames = map[int]string{
	1:  "Annual",
	2:  "Semi-annual",
	4:  "Quarterly",
	12: "Monthly",
}

// InfoColumns defines the column order for the full-record row returned by
// the info operation. Key is the bond field, Header the column title.
var InfoColumns = []struct {
	Key    string
	Header string
}{
	{"isin", "ISIN"},
	{"name", "Name"},
	{"country", "Country"},
	{"issuer", "Issuer"},
	{"security_type", "Type"},
	{"currency", "Currency"},
	{"coupon_rate", "Coupon %"},
	{"coupon_frequency", "Frequency"},
	{"maturity_date", "Maturity"},
	{"issue_date", "Issue Date"},
	{"outstanding_amount", "Outstanding"},
}
