// Command qutebrowser-profile launches qutebrowser with isolated profiles.
//
// Each profile keeps its own cache and data under the XDG base directories
// while sharing the user's qutebrowser configuration. A per-profile session
// directory is assembled under the runtime dir and passed to qutebrowser via
// --basedir, with a window title naming the profile. Profiles are chosen
// interactively (an external menu utility such as dmenu, or a built-in
// terminal picker) or by name; running with no mode flag asks for a profile.
//
// # Usage
//
//	qutebrowser-profile [flags] [qutebrowser args...]
//
// # Flags
//
//	-c, --choose           select a profile interactively
//	-e, --only-existing    restrict interactive selection to existing profiles
//	-l, --load <name>      load the named existing profile
//	-n, --new <name>       create or load the named profile
//	    --list             print existing profile names and exit
//	    --selector <cmd>   external selector command ({prompt} is substituted)
//	    --browser <bin>    browser binary to launch (default qutebrowser)
//	    --prompt <text>    selector prompt text
//	    --log-level, --log-format
//	-V, --version
//	-h, --help
//
// Unrecognized arguments are forwarded to qutebrowser verbatim. The
// session-restore flags (-r/--restore, -R/--override-restore) are stripped
// with a warning because restoring a session conflicts with per-profile
// session directories.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Noname672/qutebrowser-profile/launcher"
	"github.com/Noname672/qutebrowser-profile/selector"
	"github.com/Noname672/qutebrowser-profile/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "qutebrowser-profile [flags] [qutebrowser args...]",
		Short: "Launch qutebrowser with isolated profiles",
		Long: `qutebrowser-profile launches qutebrowser with isolated profiles: each profile
gets its own cache and data directories while sharing your qutebrowser
configuration. Unrecognized arguments are forwarded to qutebrowser verbatim.`,
		// The classifier owns the argument list: launcher flags are split
		// from pass-through qutebrowser arguments in a single pass.
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE:               run,
	}

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "qutebrowser-profile: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	dirs, err := launcher.ResolveBaseDirs(os.Getenv)
	if err != nil {
		return err
	}

	cfg := launcher.NewConfig()

	err = cfg.LoadFile(launcher.DefaultConfigPath(dirs))
	if err != nil {
		return err
	}

	flags := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)
	flags.SortFlags = false
	cfg.RegisterFlags(flags)

	inv, warnings, err := cfg.Classify(flags, args)
	if err != nil {
		if errors.Is(err, launcher.ErrUsage) {
			fmt.Fprint(os.Stderr, usage(cmd, flags))
		}

		return err
	}

	if cfg.ShowHelp {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n%s", cmd.Long, usage(cmd, flags))

		return nil
	}

	if cfg.ShowVersion {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())

		return nil
	}

	logger, err := cfg.Log.NewLogger(os.Stderr)
	if err != nil {
		return err
	}

	for _, warning := range warnings {
		logger.Warn(warning)
	}

	sel, err := newSelector(cfg)
	if err != nil {
		return err
	}

	l := &launcher.Launcher{
		Config:   cfg,
		Dirs:     dirs,
		Selector: sel,
		Logger:   logger,
		Exec:     launcher.Exec,
		Stdout:   cmd.OutOrStdout(),
	}

	return l.Run(cmd.Context(), inv)
}

// newSelector picks the selector implementation: the configured external
// command if any, the built-in picker on an interactive terminal, and the
// default menu utility otherwise.
func newSelector(cfg *launcher.Config) (selector.Selector, error) {
	if cfg.Selector != "" {
		return selector.NewCommand(cfg.Selector)
	}

	if selector.InteractiveTerminal() {
		return selector.Menu{}, nil
	}

	return selector.NewCommand(selector.DefaultCommand)
}

func usage(cmd *cobra.Command, flags *pflag.FlagSet) string {
	return fmt.Sprintf("Usage: %s\n\nFlags:\n%s", cmd.Use, flags.FlagUsages())
}
