package service

import (
	"fmt"
	"sort"
	"strings"

	"bondcache/internal/models"
)

// functionSummaries lists the operations for the help overview, in display
// order.
var functionSummaries = [][]string{
	{"static", "Get a single field value"},
	{"info", "Get all fields as a row"},
	{"list", "List ISINs by country"},
	{"search", "Search with filters"},
	{"count", "Count bonds"},
	{"years-to-maturity", "Years to maturity"},
	{"maturity-range", "Bonds maturing in date range"},
	{"coupon-frequency", "Payment frequency text"},
	{"is-linker", "Check if inflation-linked"},
	{"refresh", "Refresh data from sources"},
	{"lineage", "Data source attribution"},
	{"history", "Change history"},
	{"corporate-actions", "Corporate actions"},
	{"status", "Check API connection"},
	{"cache-clear", "Clear cache"},
	{"cache-stats", "Cache statistics"},
	{"help", "This help"},
}

// Help returns reference tables for the given topic: "" (overview),
// "fields", "countries", or "functions".
func (s *Service) Help(topic string) ([][]string, error) {
	switch strings.ToLower(strings.TrimSpace(topic)) {
	case "":
		return [][]string{
			{"BondMaster cache - quick reference"},
			{"Check connection: GET /status"},
			{"Lookup a field: POST /bond/static"},
			{"Help topics: fields, countries, functions"},
		}, nil
	case "fields":
		rows := [][]string{{"Field", "Description"}}
		for _, field := range sortedKeys(models.FieldDescriptions) {
			rows = append(rows, []string{field, models.FieldDescriptions[field]})
		}
		return rows, nil
	case "countries":
		rows := [][]string{{"Code", "Country"}}
		for _, code := range sortedKeys(models.CountryNames) {
			rows = append(rows, []string{code, models.CountryNames[code]})
		}
		return rows, nil
	case "functions":
		rows := [][]string{{"Operation", "Description"}}
		rows = append(rows, functionSummaries...)
		return rows, nil
	default:
		return nil, fmt.Errorf("%w: unknown topic %q, try fields, countries, functions", ErrInvalidInput, topic)
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
