package log

import (
	"errors"
	"fmt"
	"io"
	"strings"

	charmlog "charm.land/log/v2"
)

// Format represents the log output format.
type Format string

const (
	// FormatText outputs human-readable logs with level prefixes.
	FormatText Format = "text"
	// FormatJSON outputs logs as JSON objects.
	FormatJSON Format = "json"
	// FormatLogfmt outputs logs in logfmt format.
	FormatLogfmt Format = "logfmt"
)

var (
	// ErrUnknownLogLevel indicates an unrecognized log level string.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrUnknownLogFormat indicates an unrecognized log format string.
	ErrUnknownLogFormat = errors.New("unknown log format")
)

// NewLogger creates a [*charmlog.Logger] writing to w with the given level
// and format. Timestamps are omitted; the launcher is a short-lived process
// and its diagnostics read like compiler output.
func NewLogger(w io.Writer, level charmlog.Level, format Format) *charmlog.Logger {
	formatter := charmlog.TextFormatter

	switch format {
	case FormatJSON:
		formatter = charmlog.JSONFormatter
	case FormatLogfmt:
		formatter = charmlog.LogfmtFormatter
	case FormatText:
	}

	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:     level,
		Formatter: formatter,
	})
}

// NewLoggerFromStrings creates a [*charmlog.Logger] by parsing level and
// format strings.
func NewLoggerFromStrings(w io.Writer, level, format string) (*charmlog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	logFmt, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}

	return NewLogger(w, lvl, logFmt), nil
}

// ParseLevel parses a log level string and returns the corresponding
// [charmlog.Level].
func ParseLevel(level string) (charmlog.Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return charmlog.ErrorLevel, nil
	case "warn", "warning":
		return charmlog.WarnLevel, nil
	case "info":
		return charmlog.InfoLevel, nil
	case "debug":
		return charmlog.DebugLevel, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownLogLevel, level)
}

// ParseFormat parses a log format string and returns the corresponding
// [Format].
func ParseFormat(format string) (Format, error) {
	switch logFmt := Format(strings.ToLower(format)); logFmt {
	case FormatText, FormatJSON, FormatLogfmt:
		return logFmt, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownLogFormat, format)
}

// GetAllLevelStrings returns all accepted level strings, for flag help and
// shell completion.
func GetAllLevelStrings() []string {
	return []string{"error", "warn", "info", "debug"}
}

// GetAllFormatStrings returns all accepted format strings, for flag help and
// shell completion.
func GetAllFormatStrings() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatLogfmt)}
}
