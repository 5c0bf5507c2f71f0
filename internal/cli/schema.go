package cli

import (
	"strings"

	"github.com/vk/chime/internal/params"
)

// Kind selects the cast applied to a flag's raw string value.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindDate
	KindString
)

// cast applies the kind's cast function from the params package.
func (k Kind) cast(raw string) (any, error) {
	switch k {
	case KindInt:
		return params.CastInt(raw)
	case KindFloat:
		return params.CastFloat(raw)
	case KindDate:
		return params.CastDate(raw)
	default:
		return raw, nil
	}
}

// Def describes one command-line flag: its namespace name, cast kind,
// optional inclusive bounds, help text, and whether the resolved namespace
// must contain it after CLI and file layering.
type Def struct {
	Name     string
	Kind     Kind
	Min      *float64
	Max      *float64
	Help     string
	Required bool
}

// flagName converts a namespace name to its flag spelling.
func flagName(name string) string {
	return strings.ReplaceAll(name, "_", "-")
}

func bound(v float64) *float64 {
	return &v
}

// Defs is the ordered table of every command-line flag. It is the single
// source of truth for the parser; the disposition fields appear here in
// their decomposed days/rate form and are recomposed during resolution.
func Defs() []Def {
	return []Def{
		{Name: "parameters", Kind: KindString, Help: "Parameters file."},
		{Name: "current_hospitalized", Kind: KindInt, Min: bound(0), Help: "Currently hospitalized COVID-19 patients (>= 0)", Required: true},
		{Name: "current_date", Kind: KindDate, Help: "Current date (default is today)"},
		{Name: "date_first_hospitalized", Kind: KindDate, Help: "Date of first hospitalization"},
		{Name: "doubling_time", Kind: KindFloat, Min: bound(0.0), Help: "Doubling time before social distancing (days)", Required: true},
		{Name: "hospitalized_days", Kind: KindInt, Min: bound(0), Help: "Average hospital length of stay (in days)", Required: true},
		{Name: "hospitalized_rate", Kind: KindFloat, Min: bound(0.00001), Max: bound(1.0), Help: "Hospitalized Rate: 0.00001 - 1.0", Required: true},
		{Name: "icu_days", Kind: KindInt, Min: bound(0), Help: "Average days in ICU", Required: true},
		{Name: "icu_rate", Kind: KindFloat, Min: bound(0.0), Max: bound(1.0), Help: "ICU rate: 0.0 - 1.0", Required: true},
		{Name: "market_share", Kind: KindFloat, Min: bound(0.00001), Max: bound(1.0), Help: "Hospital market share (0.00001 - 1.0)", Required: true},
		{Name: "infectious_days", Kind: KindInt, Min: bound(0), Help: "Infectious days", Required: true},
		{Name: "mitigation_date", Kind: KindDate, Help: "Mitigation date for social distancing."},
		{Name: "max_y_axis", Kind: KindInt, Min: bound(0), Help: "Maximum y axis", Required: true},
		{Name: "n_days", Kind: KindInt, Min: bound(0), Help: "Number of days to project >= 0", Required: true},
		{Name: "recovered", Kind: KindInt, Min: bound(0), Help: "Initial recovered >= 0", Required: true},
		{Name: "relative_contact_rate", Kind: KindFloat, Min: bound(0.0), Max: bound(1.0), Help: "Social distancing reduction rate: 0.0 - 1.0", Required: true},
		{Name: "population", Kind: KindInt, Min: bound(1), Help: "Regional population >= 1"},
		{Name: "region_file", Kind: KindString, Help: "Region definition file (HCL); its sub-population sum supplies the population when --population is absent."},
		{Name: "ventilated_days", Kind: KindInt, Min: bound(0), Help: "Average days on ventilator", Required: true},
		{Name: "ventilated_rate", Kind: KindFloat, Min: bound(0.0), Max: bound(1.0), Help: "Ventilated Rate: 0.0 - 1.0", Required: true},
	}
}
