package selector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/term"
)

// ErrAborted indicates the user cancelled selection or the selector produced
// no choice.
var ErrAborted = errors.New("selection aborted")

// ErrEmptyCommand indicates an empty selector command line.
var ErrEmptyCommand = errors.New("empty selector command")

// DefaultCommand is the selector command used when none is configured and no
// interactive terminal is attached.
const DefaultCommand = "dmenu -p {prompt}"

// promptPlaceholder is substituted with the prompt text in command argv
// tokens.
const promptPlaceholder = "{prompt}"

// Options configures a single selection.
type Options struct {
	// Prompt is the prompt text shown by the selector.
	Prompt string
	// OnlyExisting asks the selector to refuse names outside the candidate
	// list. Callers must still validate the result; not every menu utility
	// can enforce this.
	OnlyExisting bool
}

// Selector presents candidate names and returns the chosen one.
type Selector interface {
	Select(ctx context.Context, candidates []string, opts Options) (string, error)
}

// Func adapts a function to the [Selector] interface.
type Func func(ctx context.Context, candidates []string, opts Options) (string, error)

// Select calls f.
func (f Func) Select(ctx context.Context, candidates []string, opts Options) (string, error) {
	return f(ctx, candidates, opts)
}

// Command runs an external menu utility. Candidates are written to its stdin
// one per line; the first line of its stdout is the choice.
type Command struct {
	// Argv is the command and its arguments. Tokens containing {prompt} have
	// the placeholder replaced with the prompt text.
	Argv []string
	// RestrictArgv is appended to Argv when [Options.OnlyExisting] is set,
	// for utilities that support refusing novel input (e.g. rofi's
	// -no-custom).
	RestrictArgv []string
	// Stderr receives the utility's stderr. Defaults to [os.Stderr].
	Stderr io.Writer
}

// NewCommand builds a [Command] from a whitespace-separated command line.
func NewCommand(cmdline string) (*Command, error) {
	argv := strings.Fields(cmdline)
	if len(argv) == 0 {
		return nil, ErrEmptyCommand
	}

	return &Command{Argv: argv}, nil
}

// Select runs the external command and returns its choice.
func (c *Command) Select(ctx context.Context, candidates []string, opts Options) (string, error) {
	if len(c.Argv) == 0 {
		return "", ErrEmptyCommand
	}

	argv := make([]string, len(c.Argv))
	for i, tok := range c.Argv {
		argv[i] = strings.ReplaceAll(tok, promptPlaceholder, opts.Prompt)
	}

	if opts.OnlyExisting {
		argv = append(argv, c.RestrictArgv...)
	}

	stderr := c.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	input := strings.Join(candidates, "\n")
	if input != "" {
		input += "\n"
	}

	//nolint:gosec // The selector command is the user's own configuration.
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = strings.NewReader(input)
	cmd.Stderr = stderr

	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrAborted, argv[0], err)
	}

	choice, _, _ := strings.Cut(string(out), "\n")

	choice = strings.TrimSpace(choice)
	if choice == "" {
		return "", ErrAborted
	}

	return choice, nil
}

// InteractiveTerminal reports whether stdin and stdout are terminals, i.e.
// whether the built-in [Menu] can run.
func InteractiveTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
