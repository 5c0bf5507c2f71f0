package validate

import (
	"fmt"
	"time"
)

// Error describes a single violated constraint.
type Error struct {
	Key        string
	Value      any
	Constraint string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s must be %s, got '%v'", e.Key, e.Constraint, e.Value)
}

// Func is the contract shared by all validators. Implementations carry no
// state and have no side effects beyond returning an error.
type Func func(key string, value any) error

// number extracts a numeric value. The namespace only ever holds int and
// float64 scalars, so anything else is a type violation.
func number(key string, value any) (float64, error) {
	switch v := value.(type) {
	case int:
		return float64(v), nil
	case float64:
		return v, nil
	default:
		return 0, &Error{Key: key, Value: value, Constraint: "a number"}
	}
}

// Positive accepts any number greater than or equal to zero.
func Positive(key string, value any) error {
	n, err := number(key, value)
	if err != nil {
		return err
	}
	if n < 0 {
		return &Error{Key: key, Value: value, Constraint: "greater than or equal to zero"}
	}
	return nil
}

// StrictlyPositive accepts any number greater than zero.
func StrictlyPositive(key string, value any) error {
	n, err := number(key, value)
	if err != nil {
		return err
	}
	if n <= 0 {
		return &Error{Key: key, Value: value, Constraint: "greater than zero"}
	}
	return nil
}

// OptionalStrictlyPositive accepts an absent value, otherwise defers to
// StrictlyPositive.
func OptionalStrictlyPositive(key string, value any) error {
	if value == nil {
		return nil
	}
	return StrictlyPositive(key, value)
}

// Rate accepts any number within [0, 1].
func Rate(key string, value any) error {
	n, err := number(key, value)
	if err != nil {
		return err
	}
	if n < 0 || n > 1 {
		return &Error{Key: key, Value: value, Constraint: "a rate within [0, 1]"}
	}
	return nil
}

// Date accepts a non-zero calendar date.
func Date(key string, value any) error {
	t, ok := value.(time.Time)
	if !ok || t.IsZero() {
		return &Error{Key: key, Value: value, Constraint: "a valid date"}
	}
	return nil
}

// OptionalDate accepts an absent value, otherwise defers to Date.
func OptionalDate(key string, value any) error {
	if value == nil {
		return nil
	}
	return Date(key, value)
}

// Any accepts every value, including an absent one.
func Any(key string, value any) error {
	return nil
}
