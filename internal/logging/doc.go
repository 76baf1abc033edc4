// Package logging provides structured logging for segbox.
//
// This package wraps a zap logger with package-level helpers. Logging is
// silent unless SEGBOX_LOG_LEVEL is set, so the interactive box and the
// curated CLI output are never interleaved with log lines.
//
// Because the box owns the terminal while it runs, logs can be redirected to
// a file with SEGBOX_LOG_FILE:
//
//	SEGBOX_LOG_LEVEL=debug SEGBOX_LOG_FILE=/tmp/segbox.log segbox --preset hello
//
// Domain helpers record box activity with consistent field names:
//
//	logging.LogValueChange("A_hello___", 0)
//	logging.LogFocusChange(0, 1)
//	logging.LogKey("backspace", 7, true)
package logging
