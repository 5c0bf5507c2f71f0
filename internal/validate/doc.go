// Package validate provides the scalar validators used by the parameter
// pipeline. Each validator is a pure function from (key, value) to an error;
// a nil return means the value is accepted. Violations are reported as a
// *validate.Error naming the offending key, its value, and the constraint.
package validate
