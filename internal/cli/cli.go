package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const (
	// Version identifies the model release this build tracks.
	Version = "1.1.5"
	// ChangeDate marks the last change affecting results or their presentation.
	ChangeDate = "2020-04-08"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Resolver holds the parsed flag namespace between the two layering passes.
// Parse fills it from argv; Resolve finishes the pipeline against the
// environment and an optional parameters file.
type Resolver struct {
	LogLevel  string
	LogFormat string

	flagSet *flag.FlagSet
	defs    []Def
	ns      map[string]any
}

// Parse builds the argument parser from the CLI schema and runs the first
// pass over argv. It returns the resolver, a boolean indicating the program
// should exit cleanly (help requested), or an ExitError.
func Parse(args []string, output io.Writer) (*Resolver, bool, error) {
	slog.Debug("CLI parser started.")
	r := &Resolver{
		defs: Defs(),
		ns:   make(map[string]any),
	}

	flagSet := flag.NewFlagSet("chime", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprintf(output, `
chime %s (%s) - hospital capacity planning for epidemics.

Usage:
  chime [options]

Options:
`, Version, ChangeDate)
		flagSet.PrintDefaults()
	}

	for _, def := range r.defs {
		flagSet.Func(flagName(def.Name), def.Help, r.flagHandler(def))
	}
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	r.LogLevel = logLevel
	r.LogFormat = logFormat
	r.flagSet = flagSet
	return r, false, nil
}

// flagHandler builds the per-flag validation function registered with the
// parser. It is the first, string-level filter on input; the field schema
// applies the second, semantic filter at Parameters construction.
func (r *Resolver) flagHandler(def Def) func(string) error {
	arg := "--" + flagName(def.Name)
	return func(raw string) error {
		// An empty value on a non-string flag means "absent".
		if raw == "" && def.Kind != KindString {
			if def.Required {
				return fmt.Errorf("%s is required", arg)
			}
			return nil
		}
		value, err := def.Kind.cast(raw)
		if err != nil {
			return err
		}
		if n, ok := asNumber(value); ok {
			if def.Min != nil && n < *def.Min {
				return fmt.Errorf("%s must be greater than %v", arg, *def.Min)
			}
			if def.Max != nil && n > *def.Max {
				return fmt.Errorf("%s must be less than %v", arg, *def.Max)
			}
		}
		r.ns[def.Name] = value
		return nil
	}
}

func asNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}
