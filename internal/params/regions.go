package params

import (
	"github.com/vk/chime/internal/validate"
)

// Regions aggregates arbitrary named sub-population counts into a total.
// Population is computed once at construction and never recomputed.
type Regions struct {
	Counts     map[string]int
	Population int
}

// NewRegions sums the supplied counts. Every count must be non-negative.
func NewRegions(counts map[string]int) (*Regions, error) {
	r := &Regions{Counts: make(map[string]int, len(counts))}
	for name, count := range counts {
		if err := validate.Positive(name, count); err != nil {
			return nil, err
		}
		r.Counts[name] = count
		r.Population += count
	}
	return r, nil
}
