package morph

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the sentinel matched by every construction failure.
var ErrInvalidConfig = errors.New("morph: invalid configuration")

// ConfigError represents an invalid construction option.
type ConfigError struct {
	Option  string // option name
	Value   any    // offending value, if one was given
	Message string
}

// Error returns the error string.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("morph: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("morph: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
// This allows errors.Is(configErr, ErrInvalidConfig) to return true.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// NewConfigError returns a new ConfigError for the given option.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{Option: option, Value: value, Message: message}
}

// IsConfigError returns true if the error is a ConfigError.
func IsConfigError(err error) bool {
	if err == nil {
		return false
	}
	var e *ConfigError
	return errors.As(err, &e)
}
