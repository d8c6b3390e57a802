package launcher

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// appName is the wrapped application's directory name under each base dir.
const appName = "qutebrowser"

// basedirFlags are qutebrowser flags that already pin a base directory. When
// the caller passes one, the launcher leaves the session tree alone and
// injects nothing.
var basedirFlags = []string{"--basedir", "--temp-basedir", "-T"}

// HasBasedirOverride reports whether args already carry an explicit base
// directory flag.
func HasBasedirOverride(args []string) bool {
	for _, arg := range args {
		for _, flag := range basedirFlags {
			if arg == flag || strings.HasPrefix(arg, flag+"=") {
				return true
			}
		}
	}

	return false
}

// Session computes and materializes the per-profile directory tree handed to
// qutebrowser via --basedir.
//
// The tree lives under the runtime dir: <runtime>/qutebrowser/<profile>
// holds a private runtime/ subdirectory plus config, cache, and data
// symlinks. Configuration is shared across profiles; cache and data are
// per-profile.
type Session struct {
	Dirs BaseDirs
}

// ProfileRoot returns the directory whose subdirectories are the known
// profiles.
func (s Session) ProfileRoot() string {
	return filepath.Join(s.Dirs.Runtime, appName)
}

// BaseDir returns the session base directory for profile.
func (s Session) BaseDir(profile string) string {
	return filepath.Join(s.ProfileRoot(), profile)
}

func (s Session) configDir() string {
	return filepath.Join(s.Dirs.ConfigHome, appName)
}

func (s Session) cacheDir(profile string) string {
	return filepath.Join(s.Dirs.CacheHome, appName, profile)
}

func (s Session) dataDir(profile string) string {
	return filepath.Join(s.Dirs.DataHome, appName, profile)
}

// Prepare creates the session tree for profile and refreshes its symlinks,
// returning the session base directory. It is idempotent: every directory
// creation tolerates existing directories and symlinks are replaced
// atomically, so concurrent launches of the same profile are safe without
// locking.
func (s Session) Prepare(profile string) (string, error) {
	base := s.BaseDir(profile)

	dirs := []struct {
		path string
		perm os.FileMode
	}{
		// The base and its runtime subdir are private, like the runtime dir
		// they live under.
		{filepath.Join(base, "runtime"), 0o700},
		{s.configDir(), 0o755},
		{s.cacheDir(profile), 0o755},
		{s.dataDir(profile), 0o755},
	}

	for _, dir := range dirs {
		err := os.MkdirAll(dir.path, dir.perm)
		if err != nil {
			return "", fmt.Errorf("creating %s: %w", dir.path, err)
		}
	}

	links := []struct {
		name   string
		target string
	}{
		{"config", s.configDir()},
		{"cache", s.cacheDir(profile)},
		{"data", s.dataDir(profile)},
	}

	for _, link := range links {
		err := replaceSymlink(link.target, filepath.Join(base, link.name))
		if err != nil {
			return "", err
		}
	}

	return base, nil
}

// replaceSymlink points link at target, replacing any previous link by
// renaming a fresh symlink over it so a stale target never survives and a
// concurrent reader never sees the entry missing.
func replaceSymlink(target, link string) error {
	current, err := os.Readlink(link)
	if err == nil && current == target {
		return nil
	}

	tmp := link + ".new"

	err = os.Remove(tmp)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing stale %s: %w", tmp, err)
	}

	err = os.Symlink(target, tmp)
	if err != nil {
		return fmt.Errorf("creating symlink %s: %w", link, err)
	}

	err = os.Rename(tmp, link)
	if err != nil {
		return fmt.Errorf("replacing symlink %s: %w", link, err)
	}

	return nil
}

// LaunchArgs builds the argument list handed to qutebrowser: the basedir
// flag (when the launcher owns the session tree), a window title naming the
// profile, then the pass-through arguments. The order is deterministic.
func LaunchArgs(profile, basedir string, passthrough []string) []string {
	args := make([]string, 0, len(passthrough)+5)

	if basedir != "" {
		args = append(args, "--basedir", basedir)
	}

	args = append(args, "--set", "window.title_format",
		fmt.Sprintf("{perc}{current_title}{title_sep}%s [%s]", appName, profile))

	return append(args, passthrough...)
}
