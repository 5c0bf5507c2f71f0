package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPositive(t *testing.T) {
	t.Parallel()

	require.NoError(t, Positive("n", 0))
	require.NoError(t, Positive("n", 12))
	require.NoError(t, Positive("n", 0.5))

	err := Positive("n", -1)
	require.Error(t, err)
	require.Contains(t, err.Error(), "n must be greater than or equal to zero")
}

func TestPositive_RejectsNonNumbers(t *testing.T) {
	t.Parallel()

	err := Positive("n", "twelve")
	require.Error(t, err)
	require.Contains(t, err.Error(), "must be a number")

	err = Positive("n", nil)
	require.Error(t, err)
}

func TestStrictlyPositive(t *testing.T) {
	t.Parallel()

	require.NoError(t, StrictlyPositive("n", 1))
	require.Error(t, StrictlyPositive("n", 0))
	require.Error(t, StrictlyPositive("n", -3.5))
}

func TestOptionalStrictlyPositive(t *testing.T) {
	t.Parallel()

	require.NoError(t, OptionalStrictlyPositive("n", nil))
	require.NoError(t, OptionalStrictlyPositive("n", 4))
	require.Error(t, OptionalStrictlyPositive("n", 0))
}

func TestRate(t *testing.T) {
	t.Parallel()

	require.NoError(t, Rate("r", 0.0))
	require.NoError(t, Rate("r", 0.5))
	require.NoError(t, Rate("r", 1.0))

	for _, value := range []float64{-0.1, 1.1, 100} {
		err := Rate("r", value)
		require.Error(t, err, "rate %v should be rejected", value)
		require.Contains(t, err.Error(), "a rate within [0, 1]")
	}
}

func TestDate(t *testing.T) {
	t.Parallel()

	require.NoError(t, Date("d", time.Date(2020, 4, 8, 0, 0, 0, 0, time.UTC)))
	require.Error(t, Date("d", time.Time{}))
	require.Error(t, Date("d", "2020-04-08"))
	require.Error(t, Date("d", nil))
}

func TestOptionalDate(t *testing.T) {
	t.Parallel()

	require.NoError(t, OptionalDate("d", nil))
	require.NoError(t, OptionalDate("d", time.Date(2020, 4, 8, 0, 0, 0, 0, time.UTC)))
	require.Error(t, OptionalDate("d", time.Time{}))
}

func TestAny(t *testing.T) {
	t.Parallel()

	require.NoError(t, Any("v", nil))
	require.NoError(t, Any("v", -42))
	require.NoError(t, Any("v", struct{}{}))
}

func TestErrorNamesKeyValueAndConstraint(t *testing.T) {
	t.Parallel()

	err := &Error{Key: "market_share", Value: 1.5, Constraint: "a rate within [0, 1]"}
	require.Equal(t, "market_share must be a rate within [0, 1], got '1.5'", err.Error())
}
