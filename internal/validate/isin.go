package validate

import (
	"regexp"
	"strings"
	"time"
)

// isinPattern: 2 letters + 9 alphanumeric + 1 check digit.
var isinPattern = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]{9}[0-9]$`)

// extraISINPrefixes are accepted alongside the supported country codes.
// XS covers Eurobonds.
var extraISINPrefixes = map[string]bool{"XS": true, "EU": true}

// NormalizeISIN trims surrounding whitespace and uppercases.
func NormalizeISIN(isin string) string {
	return strings.ToUpper(strings.TrimSpace(isin))
}

// IsValidISINFormat reports whether the normalized ISIN matches the
// 12-character format.
func IsValidISINFormat(isin string) bool {
	return isinPattern.MatchString(NormalizeISIN(isin))
}

// IsValidISIN reports whether the ISIN has a valid format and a known
// country prefix.
func IsValidISIN(isin string, knownCountries map[string]string) bool {
	isin = NormalizeISIN(isin)
	if !isinPattern.MatchString(isin) {
		return false
	}
	prefix := isin[:2]
	if _, ok := knownCountries[prefix]; ok {
		return true
	}
	return extraISINPrefixes[prefix]
}

// NormalizeCountry uppercases and trims a country code.
func NormalizeCountry(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ParseDate parses an ISO date, tolerating a time suffix and a trailing Z
// as the API emits both "2054-02-15" and "2054-02-15T00:00:00Z".
func ParseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	value = strings.TrimSuffix(value, "Z")
	for _, layout := range []string{"2006-01-02", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
