package launcher

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// ErrUsage indicates an invalid flag combination or a missing flag value.
var ErrUsage = errors.New("usage error")

// Mode is the profile selection mode chosen on the command line.
type Mode int

const (
	// ModeChoose selects a profile interactively. It is also the default
	// when no mode flag is given.
	ModeChoose Mode = iota
	// ModeLoad loads a named existing profile.
	ModeLoad
	// ModeNew creates or loads a named profile.
	ModeNew
)

// Invocation is the classified command-line intent: the selection mode and
// the residual arguments destined for qutebrowser.
type Invocation struct {
	Mode         Mode
	Profile      string
	OnlyExisting bool
	Passthrough  []string
}

// filteredFlag describes a qutebrowser flag the launcher strips instead of
// forwarding.
type filteredFlag struct {
	long       string
	short      string
	takesValue bool
}

// filteredFlags are qutebrowser's session-restore flags. Restoring a session
// would reach into state the per-profile basedir is supposed to isolate, so
// they are dropped with a warning.
var filteredFlags = []filteredFlag{
	{long: "restore", short: "r", takesValue: true},
	{long: "override-restore", short: "R"},
}

func matchFiltered(arg string) (filteredFlag, bool) {
	for _, ff := range filteredFlags {
		if arg == "--"+ff.long || strings.HasPrefix(arg, "--"+ff.long+"=") || arg == "-"+ff.short {
			return ff, true
		}
	}

	return filteredFlag{}, false
}

// splitArgs partitions raw command-line tokens into tokens owned by flags
// registered on fs and tokens passed through to qutebrowser verbatim.
//
// Recognition is driven by the FlagSet itself (long names, shorthands, and
// whether a flag takes a value), so the recognized set cannot drift from the
// parsed set. A flag that takes a value consumes the following token
// atomically, even when that token looks like a flag. A bare "--" ends
// classification; it and everything after it pass through.
//
// Filtered qutebrowser flags are dropped (with their value) and reported as
// warnings.
func splitArgs(fs *pflag.FlagSet, args []string) (recognized, passthrough, warnings []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			passthrough = append(passthrough, args[i:]...)

			break
		}

		if ff, ok := matchFiltered(arg); ok {
			warnings = append(warnings,
				fmt.Sprintf("ignoring %s: session restore conflicts with profile isolation", arg))

			if ff.takesValue && !strings.Contains(arg, "=") && i+1 < len(args) {
				i++
			}

			continue
		}

		var (
			flag   *pflag.Flag
			inline bool // value attached to the token itself
		)

		switch {
		case strings.HasPrefix(arg, "--"):
			name := strings.TrimPrefix(arg, "--")
			if eq := strings.IndexByte(name, '='); eq >= 0 {
				name, inline = name[:eq], true
			}

			flag = fs.Lookup(name)

		case len(arg) > 1 && arg[0] == '-':
			// Shorthand, possibly clustered ("-ce") or with an inline
			// value ("-lwork").
			flag = fs.ShorthandLookup(arg[1:2])
			inline = len(arg) > 2
		}

		if flag == nil {
			passthrough = append(passthrough, arg)

			continue
		}

		recognized = append(recognized, arg)

		if flag.NoOptDefVal == "" && !inline && i+1 < len(args) {
			i++
			recognized = append(recognized, args[i])
		}
		// A trailing flag missing its value is handed to pflag as-is; the
		// parse error carries the message.
	}

	return recognized, passthrough, warnings
}
