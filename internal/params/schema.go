package params

import (
	"github.com/vk/chime/internal/validate"
)

// FieldDef describes one recognized parameter: the validator its final typed
// value must satisfy, the cast from free text where one is meaningful (nil
// for composite and opaque fields), and help text.
type FieldDef struct {
	Validator validate.Func
	Cast      CastFunc
	Help      string
}

// validDisposition accepts a Disposition-shaped value by re-running the
// component validators Disposition itself enforces at construction.
func validDisposition(key string, value any) error {
	d, ok := value.(Disposition)
	if !ok {
		return &validate.Error{Key: key, Value: value, Constraint: "a disposition"}
	}
	if err := validate.Positive(key+" days", d.Days); err != nil {
		return err
	}
	return validate.Rate(key+" rate", d.Rate)
}

// acceptedParameters is the authoritative table of every parameter the
// Parameters constructor recognizes. Adding a field means adding one entry
// here; any keyword outside this table is rejected as unexpected.
var acceptedParameters = map[string]FieldDef{
	"current_hospitalized":    {validate.Positive, CastInt, "Currently hospitalized COVID-19 patients (>= 0)"},
	"current_date":            {validate.OptionalDate, CastDate, "Date on which the forecast should be based"},
	"date_first_hospitalized": {validate.OptionalDate, CastDate, "Date the first patient was hospitalized"},
	"doubling_time":           {validate.OptionalStrictlyPositive, CastFloat, "Doubling time before social distancing (days)"},
	"infectious_days":         {validate.StrictlyPositive, CastInt, "Infectious days"},
	"mitigation_date":         {validate.OptionalDate, CastDate, "Date on which social distancing measures took effect"},
	"market_share":            {validate.Rate, CastFloat, "Hospital market share (0.00001 - 1.0)"},
	"max_y_axis":              {validate.OptionalStrictlyPositive, CastInt, ""},
	"n_days":                  {validate.StrictlyPositive, CastInt, "Number of days to project >= 0"},
	"population":              {validate.OptionalStrictlyPositive, CastInt, "Regional population >= 1"},
	"recovered":               {validate.Positive, CastInt, "Number of patients already recovered (not yet implemented)"},
	"region":                  {validate.Any, nil, ""},
	"relative_contact_rate":   {validate.Rate, CastFloat, "Social distancing reduction rate: 0.0 - 1.0"},
	"hospitalized":            {validDisposition, nil, ""},
	"icu":                     {validDisposition, nil, ""},
	"ventilated":              {validDisposition, nil, ""},
}
