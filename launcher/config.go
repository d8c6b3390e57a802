package launcher

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/spf13/pflag"

	"github.com/Noname672/qutebrowser-profile/log"
)

// Flags holds CLI flag names for the launcher, allowing callers to customize
// flag names while keeping sensible defaults.
type Flags struct {
	Choose       string
	OnlyExisting string
	Load         string
	New          string
	List         string
	Selector     string
	Browser      string
	Prompt       string
	Version      string
	Help         string
}

// Config holds the launcher's CLI flag values and file-configurable
// defaults.
//
// Create instances with [NewConfig], optionally merge a config file with
// [Config.LoadFile], register CLI flags with [Config.RegisterFlags], and
// classify a command line with [Config.Classify].
type Config struct {
	Flags Flags

	// Mode flags.
	Choose       bool
	OnlyExisting bool
	Load         string
	New          string

	// Non-launch actions.
	List        bool
	ShowVersion bool
	ShowHelp    bool

	// File-configurable settings.
	Browser  string
	Selector string
	Prompt   string
	Log      *log.Config
}

// NewConfig returns a new [Config] with default flag names and defaults.
func NewConfig() *Config {
	f := Flags{
		Choose:       "choose",
		OnlyExisting: "only-existing",
		Load:         "load",
		New:          "new",
		List:         "list",
		Selector:     "selector",
		Browser:      "browser",
		Prompt:       "prompt",
		Version:      "version",
		Help:         "help",
	}

	return &Config{
		Flags:   f,
		Browser: "qutebrowser",
		Prompt:  "profile:",
		Log:     log.NewConfig(),
	}
}

// RegisterFlags adds launcher flags to the given [*pflag.FlagSet]. Current
// field values become the flag defaults, so config-file values survive
// unless overridden on the command line.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.BoolVarP(&c.Choose, c.Flags.Choose, "c", false,
		"select a profile interactively")
	flags.BoolVarP(&c.OnlyExisting, c.Flags.OnlyExisting, "e", false,
		"restrict interactive selection to existing profiles")
	flags.StringVarP(&c.Load, c.Flags.Load, "l", "",
		"load the named existing profile")
	flags.StringVarP(&c.New, c.Flags.New, "n", "",
		"create or load the named profile")
	flags.BoolVar(&c.List, c.Flags.List, false,
		"print existing profile names and exit")
	flags.StringVar(&c.Selector, c.Flags.Selector, c.Selector,
		"external selector command ({prompt} is substituted)")
	flags.StringVar(&c.Browser, c.Flags.Browser, c.Browser,
		"browser binary to launch")
	flags.StringVar(&c.Prompt, c.Flags.Prompt, c.Prompt,
		"selector prompt text")
	flags.BoolVarP(&c.ShowVersion, c.Flags.Version, "V", false,
		"print version and exit")
	flags.BoolVarP(&c.ShowHelp, c.Flags.Help, "h", false,
		"print usage and exit")

	c.Log.RegisterFlags(flags)
}

// Classify consumes the full raw argument list once, producing the selected
// mode plus the residual pass-through arguments, along with warnings for
// stripped qutebrowser flags.
//
// choose, load, and new are mutually exclusive, and only-existing requires
// choose; violations return an error wrapping [ErrUsage] before any
// directory I/O happens.
func (c *Config) Classify(flags *pflag.FlagSet, args []string) (*Invocation, []string, error) {
	recognized, passthrough, warnings := splitArgs(flags, args)

	err := flags.Parse(recognized)
	if err != nil {
		return nil, warnings, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	var modes []string

	for _, name := range []string{c.Flags.Choose, c.Flags.Load, c.Flags.New} {
		if flags.Changed(name) {
			modes = append(modes, name)
		}
	}

	if len(modes) > 1 {
		return nil, warnings, fmt.Errorf("%w: cannot use --%s with --%s", ErrUsage, modes[0], modes[1])
	}

	if c.OnlyExisting && !c.Choose {
		return nil, warnings, fmt.Errorf("%w: --%s requires --%s",
			ErrUsage, c.Flags.OnlyExisting, c.Flags.Choose)
	}

	inv := &Invocation{
		Mode:         ModeChoose,
		OnlyExisting: c.OnlyExisting,
		Passthrough:  passthrough,
	}

	switch {
	case flags.Changed(c.Flags.Load):
		inv.Mode, inv.Profile = ModeLoad, c.Load
	case flags.Changed(c.Flags.New):
		inv.Mode, inv.Profile = ModeNew, c.New
	}

	return inv, warnings, nil
}

// fileConfig is the YAML schema of the launcher's own config file. Only
// defaults live here; modes are command-line only.
type fileConfig struct {
	Browser   string `yaml:"browser"`
	Selector  string `yaml:"selector"`
	Prompt    string `yaml:"prompt"`
	LogLevel  string `yaml:"log-level"`
	LogFormat string `yaml:"log-format"`
}

// LoadFile merges settings from the YAML file at path into c. A missing
// file is not an error; a malformed one is. Call before
// [Config.RegisterFlags] so file values become flag defaults.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	var file fileConfig

	err = yaml.Unmarshal(data, &file)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	if file.Browser != "" {
		c.Browser = file.Browser
	}

	if file.Selector != "" {
		c.Selector = file.Selector
	}

	if file.Prompt != "" {
		c.Prompt = file.Prompt
	}

	if file.LogLevel != "" {
		c.Log.Level = file.LogLevel
	}

	if file.LogFormat != "" {
		c.Log.Format = file.LogFormat
	}

	return nil
}

// DefaultConfigPath returns the launcher's config file location under the
// resolved config home.
func DefaultConfigPath(dirs BaseDirs) string {
	return filepath.Join(dirs.ConfigHome, "qutebrowser-profile", "config.yaml")
}
