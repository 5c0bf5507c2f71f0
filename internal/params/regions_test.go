package params

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRegions_SumsSubPopulations(t *testing.T) {
	t.Parallel()

	r, err := NewRegions(map[string]int{
		"bucks":    628341,
		"chester":  519293,
		"delaware": 564696,
	})
	require.NoError(t, err)
	require.Equal(t, 628341+519293+564696, r.Population)
	require.Len(t, r.Counts, 3)
}

func TestNewRegions_Empty(t *testing.T) {
	t.Parallel()

	r, err := NewRegions(nil)
	require.NoError(t, err)
	require.Equal(t, 0, r.Population)
}

func TestNewRegions_NegativeCount(t *testing.T) {
	t.Parallel()

	_, err := NewRegions(map[string]int{"bucks": -1})
	require.Error(t, err)
	require.Contains(t, err.Error(), "bucks")
}
