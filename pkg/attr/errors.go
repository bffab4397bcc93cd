package attr

import (
	"errors"
	"fmt"
)

// ConfigurationError reports a malformed attribute specification or render
// configuration: bad spec grammar, a missing record, a spec without enough
// information to resolve, or an unknown format kind. These are caller bugs
// detected synchronously before any output is produced, never transient
// conditions.
type ConfigurationError struct {
	msg string
}

func (e *ConfigurationError) Error() string {
	return e.msg
}

// ConfigErrorf builds a ConfigurationError from a format string.
func ConfigErrorf(format string, args ...any) error {
	return &ConfigurationError{msg: fmt.Sprintf(format, args...)}
}

// IsConfigurationError reports whether err is (or wraps) a ConfigurationError.
func IsConfigurationError(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}
