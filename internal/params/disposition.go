package params

import (
	"github.com/vk/chime/internal/validate"
)

// Disposition pairs the average number of days a patient spends in a
// clinical outcome (hospitalized, ICU, ventilated) with the rate of that
// outcome within the infected population.
type Disposition struct {
	Days int
	Rate float64
}

// NewDisposition validates both components and returns the immutable pair.
func NewDisposition(days int, rate float64) (Disposition, error) {
	if err := validate.Positive("days", days); err != nil {
		return Disposition{}, err
	}
	if err := validate.Rate("rate", rate); err != nil {
		return Disposition{}, err
	}
	return Disposition{Days: days, Rate: rate}, nil
}
