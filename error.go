package trieql

import "fmt"

// ArgumentError reports a precondition violation on a public call, e.g. a
// pattern string longer than Config.MaxPatternLength. Per spec.md §7,
// this is the host-conventional mechanism for argument errors, distinct
// from pattern.ParseError (a data-dependent parse failure, not a
// precondition violation).
type ArgumentError struct {
	Arg     string
	Message string
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("trieql: invalid argument %s: %s", e.Arg, e.Message)
}

// ConfigError reports an out-of-range Config field, mirroring the
// teacher's meta.ConfigError.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("trieql: invalid config: %s: %s", e.Field, e.Message)
}
