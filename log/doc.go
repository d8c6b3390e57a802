// Package log provides structured logger construction on top of
// [charm.land/log/v2].
//
// It supports multiple output formats ([FormatText], [FormatJSON], and
// [FormatLogfmt]) and the usual severity levels. Use [NewLogger] to create a
// logger directly, or use [Config] with CLI flag integration via
// [github.com/spf13/pflag] and shell completion support via
// [github.com/spf13/cobra].
//
// Typical usage creates a [Config], registers flags, then builds a logger at
// startup:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(flags)
//
//	logger, err := cfg.NewLogger(os.Stderr)
package log
