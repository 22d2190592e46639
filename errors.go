// File: rcparams/errors.go
package rcparams

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped) by validators, the registry and the
// file loader. Use errors.Is to classify failures.
var (
	// ErrConversion reports a raw value that cannot be coerced to the
	// validator's target type.
	ErrConversion = errors.New("could not convert value")

	// ErrInvalidChoice reports a well-formed value that is not among the
	// accepted values or patterns for its key.
	ErrInvalidChoice = errors.New("value is not an accepted choice")

	// ErrOutOfRange reports a numeric value outside its required bounds.
	ErrOutOfRange = errors.New("value out of range")

	// ErrUnknownKey reports a write to a key absent from the schema.
	ErrUnknownKey = errors.New("not a valid rc parameter")

	// ErrNotSupported reports an attempt to delete, clear, pop or
	// setdefault a registry entry. Registry keys cannot be removed.
	ErrNotSupported = errors.New("rc parameter keys cannot be deleted")

	// ErrEncoding reports a configuration file that is not valid UTF-8.
	ErrEncoding = errors.New("configuration file is not valid utf-8")
)

// FileError wraps a validation failure with the location in the
// configuration file that produced it. Malformed lines (no colon) are
// skipped with a warning and never produce a FileError; invalid values
// and unknown keys abort the whole load with one.
type FileError struct {
	Path string // configuration file path
	Line int    // 1-based line number, 0 for structured (TOML/YAML) files
	Text string // raw line text as read from the file
	Err  error  // underlying validation error
}

func (e *FileError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("bad value on line #%d %q in file %q: %v", e.Line, e.Text, e.Path, e.Err)
	}
	return fmt.Sprintf("bad value %q in file %q: %v", e.Text, e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }
