package params

import (
	"errors"
	"fmt"
	"time"

	"github.com/vk/chime/internal/validate"
)

// Parameters is the fully resolved, validated configuration consumed by the
// projection and reporting layers. It is assembled exactly once per run by
// New and never mutated afterwards.
type Parameters struct {
	Hospitalized Disposition
	ICU          Disposition
	Ventilated   Disposition

	CurrentHospitalized int
	DoublingTime        *float64
	InfectiousDays      int
	MarketShare         float64
	MaxYAxis            *int
	NDays               int
	Population          *int
	Recovered           int
	RelativeContactRate float64
	Region              *Regions

	CurrentDate           time.Time
	MitigationDate        time.Time
	DateFirstHospitalized *time.Time

	// Labels maps field names to their display names; Dispositions maps each
	// disposition name to its validated value. Both are populated once at
	// construction for the presentation layer.
	Labels       map[string]string
	Dispositions map[string]Disposition
}

// New builds Parameters from a namespace of typed values. Every key must be
// present in the field schema and satisfy its declared validator; cross-field
// invariants are enforced after assignment. No partial result is ever
// returned.
func New(values map[string]any) (*Parameters, error) {
	p := &Parameters{}

	for key, value := range values {
		def, ok := acceptedParameters[key]
		if !ok {
			return nil, fmt.Errorf("unexpected parameter %s", key)
		}
		if err := def.Validator(key, value); err != nil {
			return nil, fmt.Errorf("parameter '%s' with value '%v' failed validation: %w", key, value, err)
		}
		if err := p.assign(key, value); err != nil {
			return nil, err
		}
	}

	if p.Region == nil && p.Population == nil {
		return nil, errors.New("population or region must be provided")
	}

	today := Today()
	if p.CurrentDate.IsZero() {
		p.CurrentDate = today
	}
	if p.MitigationDate.IsZero() {
		p.MitigationDate = today
	}
	if err := validate.Date("current_date", p.CurrentDate); err != nil {
		return nil, err
	}
	if err := validate.Date("mitigation_date", p.MitigationDate); err != nil {
		return nil, err
	}

	p.Labels = map[string]string{
		"hospitalized": "Hospitalized",
		"icu":          "ICU",
		"ventilated":   "Ventilated",
		"day":          "Day",
		"date":         "Date",
		"susceptible":  "Susceptible",
		"infected":     "Infected",
		"recovered":    "Recovered",
	}
	p.Dispositions = map[string]Disposition{
		"hospitalized": p.Hospitalized,
		"icu":          p.ICU,
		"ventilated":   p.Ventilated,
	}

	return p, nil
}

// assign moves one validated value into its struct field. The validators
// have already vetted numeric types; the assertions here catch composite
// values of the wrong shape.
func (p *Parameters) assign(key string, value any) error {
	wrongType := func() error {
		return fmt.Errorf("parameter '%s' has unexpected type %T", key, value)
	}

	switch key {
	case "current_hospitalized":
		v, ok := value.(int)
		if !ok {
			return wrongType()
		}
		p.CurrentHospitalized = v
	case "current_date":
		v, ok := value.(time.Time)
		if !ok {
			return wrongType()
		}
		p.CurrentDate = v
	case "date_first_hospitalized":
		v, ok := value.(time.Time)
		if !ok {
			return wrongType()
		}
		p.DateFirstHospitalized = &v
	case "doubling_time":
		v, ok := value.(float64)
		if !ok {
			return wrongType()
		}
		p.DoublingTime = &v
	case "infectious_days":
		v, ok := value.(int)
		if !ok {
			return wrongType()
		}
		p.InfectiousDays = v
	case "mitigation_date":
		v, ok := value.(time.Time)
		if !ok {
			return wrongType()
		}
		p.MitigationDate = v
	case "market_share":
		v, ok := value.(float64)
		if !ok {
			return wrongType()
		}
		p.MarketShare = v
	case "max_y_axis":
		v, ok := value.(int)
		if !ok {
			return wrongType()
		}
		p.MaxYAxis = &v
	case "n_days":
		v, ok := value.(int)
		if !ok {
			return wrongType()
		}
		p.NDays = v
	case "population":
		v, ok := value.(int)
		if !ok {
			return wrongType()
		}
		p.Population = &v
	case "recovered":
		v, ok := value.(int)
		if !ok {
			return wrongType()
		}
		p.Recovered = v
	case "region":
		v, ok := value.(*Regions)
		if !ok {
			return wrongType()
		}
		p.Region = v
	case "relative_contact_rate":
		v, ok := value.(float64)
		if !ok {
			return wrongType()
		}
		p.RelativeContactRate = v
	case "hospitalized":
		v, ok := value.(Disposition)
		if !ok {
			return wrongType()
		}
		p.Hospitalized = v
	case "icu":
		v, ok := value.(Disposition)
		if !ok {
			return wrongType()
		}
		p.ICU = v
	case "ventilated":
		v, ok := value.(Disposition)
		if !ok {
			return wrongType()
		}
		p.Ventilated = v
	default:
		// Unreachable: New rejects unknown keys against the schema first.
		return fmt.Errorf("unexpected parameter %s", key)
	}
	return nil
}
