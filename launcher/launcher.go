package launcher

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	charmlog "charm.land/log/v2"
	"golang.org/x/sys/unix"

	"github.com/Noname672/qutebrowser-profile/selector"
)

// ExecFunc hands the process over to the browser. argv includes the program
// name at argv[0]. The default, [Exec], never returns on success.
type ExecFunc func(argv0 string, argv, env []string) error

// Exec looks up argv0 in PATH and replaces the launcher process via execve.
func Exec(argv0 string, argv, env []string) error {
	path, err := exec.LookPath(argv0)
	if err != nil {
		return fmt.Errorf("locating browser: %w", err)
	}

	err = unix.Exec(path, argv, env)
	if err != nil {
		return fmt.Errorf("exec %s: %w", path, err)
	}

	return nil
}

// Launcher wires the resolver and session director together and hands off
// to qutebrowser. The zero value is not usable; populate every field.
type Launcher struct {
	Config   *Config
	Dirs     BaseDirs
	Selector selector.Selector
	Logger   *charmlog.Logger
	Exec     ExecFunc
	Stdout   io.Writer
}

// Run executes a single classified invocation: resolve the profile, prepare
// its session directory, and exec the browser. Every error aborts before
// the browser is launched.
func (l *Launcher) Run(ctx context.Context, inv *Invocation) error {
	session := Session{Dirs: l.Dirs}

	resolver := &Resolver{
		Root:     session.ProfileRoot(),
		Selector: l.Selector,
		Prompt:   l.Config.Prompt,
	}

	if l.Config.List {
		names, err := resolver.List()
		if err != nil {
			return err
		}

		for _, name := range names {
			fmt.Fprintln(l.Stdout, name)
		}

		return nil
	}

	profile, err := resolver.Resolve(ctx, inv)
	if err != nil {
		return err
	}

	l.Logger.Debug("resolved profile", "name", profile)

	basedir := ""

	if HasBasedirOverride(inv.Passthrough) {
		l.Logger.Debug("explicit basedir in arguments, leaving session tree alone")
	} else {
		basedir, err = session.Prepare(profile)
		if err != nil {
			return err
		}

		l.Logger.Debug("session prepared", "basedir", basedir)
	}

	argv := append([]string{l.Config.Browser}, LaunchArgs(profile, basedir, inv.Passthrough)...)

	l.Logger.Debug("launching", "argv", strings.Join(argv, " "))

	return l.Exec(l.Config.Browser, argv, os.Environ())
}
