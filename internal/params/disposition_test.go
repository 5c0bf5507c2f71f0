package params

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDisposition(t *testing.T) {
	t.Parallel()

	d, err := NewDisposition(7, 0.025)
	require.NoError(t, err)
	require.Equal(t, 7, d.Days)
	require.Equal(t, 0.025, d.Rate)

	// Zero is a valid duration and the rate bounds are inclusive.
	d, err = NewDisposition(0, 0.0)
	require.NoError(t, err)
	require.Equal(t, Disposition{Days: 0, Rate: 0.0}, d)

	d, err = NewDisposition(10, 1.0)
	require.NoError(t, err)
	require.Equal(t, Disposition{Days: 10, Rate: 1.0}, d)
}

func TestNewDisposition_NegativeDays(t *testing.T) {
	t.Parallel()

	_, err := NewDisposition(-1, 0.5)
	require.Error(t, err)
	require.Contains(t, err.Error(), "days")
}

func TestNewDisposition_RateOutOfBounds(t *testing.T) {
	t.Parallel()

	for _, rate := range []float64{-0.01, 1.01, 5} {
		_, err := NewDisposition(7, rate)
		require.Error(t, err, "rate %v should be rejected", rate)
		require.Contains(t, err.Error(), "rate")
	}
}
