// Package cli is responsible for parsing command-line arguments, layering an
// optional parameters file over them, validating user input, and handling
// process-level concerns like exit codes. It translates the flag namespace
// into the final params.Parameters aggregate.
package cli
