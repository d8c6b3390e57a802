package launcher

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Noname672/qutebrowser-profile/selector"
)

var (
	// ErrProfileNotFound indicates a profile name with no directory under
	// the profile root.
	ErrProfileNotFound = errors.New("profile does not exist")
	// ErrInvalidProfileName indicates a profile name unsafe to use as a
	// directory name.
	ErrInvalidProfileName = errors.New("invalid profile name")
)

// ValidateProfileName reports an error when name cannot serve as a profile
// directory name. Selector output passes through here too, so a misbehaving
// menu utility cannot smuggle in a path.
func ValidateProfileName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, string(os.PathSeparator)) {
		return fmt.Errorf("%w: %q", ErrInvalidProfileName, name)
	}

	return nil
}

// Resolver maps classified command-line intent to a concrete profile name.
type Resolver struct {
	// Root is the profile root directory.
	Root string
	// Selector handles interactive choice.
	Selector selector.Selector
	// Prompt is the selector prompt text.
	Prompt string
}

// List returns the names of existing profiles: the immediate subdirectories
// of the profile root, sorted. A missing root means no profiles yet.
func (r *Resolver) List() ([]string, error) {
	entries, err := os.ReadDir(r.Root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading profile root: %w", err)
	}

	var names []string

	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}

	return names, nil
}

// Exists reports whether name is an existing profile directory.
func (r *Resolver) Exists(name string) bool {
	info, err := os.Stat(filepath.Join(r.Root, name))

	return err == nil && info.IsDir()
}

// Resolve returns the profile name selected by inv.
//
// Load requires an existing profile. New accepts any valid name; the
// directory is created later. Choose enumerates existing profiles and
// delegates to the selector; with only-existing set, existence is
// re-validated after selection rather than trusting the selector's own
// restriction.
func (r *Resolver) Resolve(ctx context.Context, inv *Invocation) (string, error) {
	switch inv.Mode {
	case ModeLoad:
		err := ValidateProfileName(inv.Profile)
		if err != nil {
			return "", err
		}

		if !r.Exists(inv.Profile) {
			return "", fmt.Errorf("%w: %q", ErrProfileNotFound, inv.Profile)
		}

		return inv.Profile, nil

	case ModeNew:
		err := ValidateProfileName(inv.Profile)
		if err != nil {
			return "", err
		}

		return inv.Profile, nil
	}

	candidates, err := r.List()
	if err != nil {
		return "", err
	}

	name, err := r.Selector.Select(ctx, candidates, selector.Options{
		Prompt:       r.Prompt,
		OnlyExisting: inv.OnlyExisting,
	})
	if err != nil {
		return "", fmt.Errorf("choosing profile: %w", err)
	}

	err = ValidateProfileName(name)
	if err != nil {
		return "", err
	}

	if inv.OnlyExisting && !r.Exists(name) {
		return "", fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	}

	return name, nil
}
