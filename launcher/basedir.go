package launcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// BaseDirs holds the base-directory-specification locations the launcher
// consults.
type BaseDirs struct {
	Runtime    string
	ConfigHome string
	CacheHome  string
	DataHome   string
}

// ResolveBaseDirs resolves the base directories from the environment via
// getenv, applying the documented fallbacks: /run/user/<uid> for the runtime
// dir and ~/.config, ~/.cache, ~/.local/share for the config, cache, and
// data homes.
func ResolveBaseDirs(getenv func(string) string) (BaseDirs, error) {
	dirs := BaseDirs{
		Runtime:    getenv("XDG_RUNTIME_DIR"),
		ConfigHome: getenv("XDG_CONFIG_HOME"),
		CacheHome:  getenv("XDG_CACHE_HOME"),
		DataHome:   getenv("XDG_DATA_HOME"),
	}

	if dirs.Runtime == "" {
		dirs.Runtime = filepath.Join("/run/user", strconv.Itoa(os.Getuid()))
	}

	if dirs.ConfigHome == "" || dirs.CacheHome == "" || dirs.DataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return BaseDirs{}, fmt.Errorf("resolving home directory: %w", err)
		}

		if dirs.ConfigHome == "" {
			dirs.ConfigHome = filepath.Join(home, ".config")
		}

		if dirs.CacheHome == "" {
			dirs.CacheHome = filepath.Join(home, ".cache")
		}

		if dirs.DataHome == "" {
			dirs.DataHome = filepath.Join(home, ".local", "share")
		}
	}

	return dirs, nil
}
