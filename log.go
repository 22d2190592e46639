// File: rcparams/log.go
package rcparams

import "log/slog"

// logger receives the warnings emitted during file loading (malformed
// lines, duplicate keys, encoding problems) and backend auto-detection
// info. Defaults to the process-wide slog logger.
var logger = slog.Default()

// SetLogger replaces the package logger. Passing nil is a no-op.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}
