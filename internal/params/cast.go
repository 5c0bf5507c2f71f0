package params

import (
	"fmt"
	"strconv"
	"time"
)

// dateLayout is the only accepted free-text date format.
const dateLayout = "2006-01-02"

// CastFunc turns the raw string form of a parameter into its typed value.
type CastFunc func(raw string) (any, error)

// CastInt parses a base-10 integer.
func CastInt(raw string) (any, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("'%s' is not an integer", raw)
	}
	return v, nil
}

// CastFloat parses a decimal number.
func CastFloat(raw string) (any, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("'%s' is not a number", raw)
	}
	return v, nil
}

// CastDate parses a YYYY-MM-DD calendar date.
func CastDate(raw string) (any, error) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("'%s' is not a date in the form %s", raw, dateLayout)
	}
	return t, nil
}

// Today returns the current calendar date, truncated to midnight UTC so it
// compares equal to dates produced by CastDate.
func Today() time.Time {
	year, month, day := time.Now().UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
