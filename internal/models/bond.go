package models

// Bond is a single bond's reference data as returned by the BondMaster API.
// The field set is open-ended; known fields are listed in FieldDescriptions.
type Bond map[string]interface{}

// ISIN returns the bond's ISIN, or "" if the field is absent.
func (b Bond) ISIN() string {
	return b.StringField("isin")
}

// StringField returns the named field as a string, or "" when the field is
// missing or not a string.
func (b Bond) StringField(name string) string {
	s, _ := b[name].(string)
	return s
}

// NumberField returns the named field as a float64 and whether it was
// present as a JSON number.
func (b Bond) NumberField(name string) (float64, bool) {
	switch v := b[name].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// SecurityType values used by the reference API.
const (
	SecurityTypeNominal     = "NOMINAL"
	SecurityTypeIndexLinked = "INDEX_LINKED"
)
