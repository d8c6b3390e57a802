package launcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Noname672/qutebrowser-profile/launcher"
	"github.com/Noname672/qutebrowser-profile/selector"
)

// profileRoot creates a profile root populated with the given profiles.
func profileRoot(t *testing.T, profiles ...string) string {
	t.Helper()

	root := filepath.Join(t.TempDir(), "qutebrowser")
	for _, name := range profiles {
		require.NoError(t, os.MkdirAll(filepath.Join(root, name), 0o700))
	}

	return root
}

func selectorReturning(name string) selector.Selector {
	return selector.Func(func(context.Context, []string, selector.Options) (string, error) {
		return name, nil
	})
}

func TestResolverList(t *testing.T) {
	t.Parallel()

	t.Run("missing root means no profiles", func(t *testing.T) {
		t.Parallel()

		r := &launcher.Resolver{Root: filepath.Join(t.TempDir(), "nope")}

		names, err := r.List()
		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("lists directories sorted", func(t *testing.T) {
		t.Parallel()

		root := profileRoot(t, "work", "banking", "personal")
		// Stray files are not profiles.
		require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), nil, 0o644))

		r := &launcher.Resolver{Root: root}

		names, err := r.List()
		require.NoError(t, err)
		assert.Equal(t, []string{"banking", "personal", "work"}, names)
	})
}

func TestResolveLoad(t *testing.T) {
	t.Parallel()

	root := profileRoot(t, "work")
	r := &launcher.Resolver{Root: root}

	t.Run("existing profile", func(t *testing.T) {
		t.Parallel()

		name, err := r.Resolve(t.Context(), &launcher.Invocation{
			Mode:    launcher.ModeLoad,
			Profile: "work",
		})
		require.NoError(t, err)
		assert.Equal(t, "work", name)
	})

	t.Run("missing profile", func(t *testing.T) {
		t.Parallel()

		_, err := r.Resolve(t.Context(), &launcher.Invocation{
			Mode:    launcher.ModeLoad,
			Profile: "missing",
		})
		require.ErrorIs(t, err, launcher.ErrProfileNotFound)
		assert.Contains(t, err.Error(), "does not exist")
	})
}

func TestResolveNew(t *testing.T) {
	t.Parallel()

	r := &launcher.Resolver{Root: profileRoot(t)}

	name, err := r.Resolve(t.Context(), &launcher.Invocation{
		Mode:    launcher.ModeNew,
		Profile: "fresh",
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", name)
}

func TestResolveChoose(t *testing.T) {
	t.Parallel()

	t.Run("selector receives existing candidates", func(t *testing.T) {
		t.Parallel()

		var seen []string

		r := &launcher.Resolver{
			Root:   profileRoot(t, "personal", "work"),
			Prompt: "pick:",
			Selector: selector.Func(func(_ context.Context, candidates []string, opts selector.Options) (string, error) {
				seen = candidates

				assert.Equal(t, "pick:", opts.Prompt)

				return candidates[0], nil
			}),
		}

		name, err := r.Resolve(t.Context(), &launcher.Invocation{Mode: launcher.ModeChoose})
		require.NoError(t, err)
		assert.Equal(t, "personal", name)
		assert.Equal(t, []string{"personal", "work"}, seen)
	})

	t.Run("aborted selection", func(t *testing.T) {
		t.Parallel()

		r := &launcher.Resolver{
			Root: profileRoot(t, "work"),
			Selector: selector.Func(func(context.Context, []string, selector.Options) (string, error) {
				return "", selector.ErrAborted
			}),
		}

		_, err := r.Resolve(t.Context(), &launcher.Invocation{Mode: launcher.ModeChoose})
		require.ErrorIs(t, err, selector.ErrAborted)
	})

	t.Run("novel name allowed without only-existing", func(t *testing.T) {
		t.Parallel()

		r := &launcher.Resolver{
			Root:     profileRoot(t, "work"),
			Selector: selectorReturning("novel"),
		}

		name, err := r.Resolve(t.Context(), &launcher.Invocation{Mode: launcher.ModeChoose})
		require.NoError(t, err)
		assert.Equal(t, "novel", name)
	})

	t.Run("only-existing re-validates selector output", func(t *testing.T) {
		t.Parallel()

		// A misbehaving selector returns a name outside the candidate list.
		r := &launcher.Resolver{
			Root:     profileRoot(t, "work"),
			Selector: selectorReturning("novel"),
		}

		_, err := r.Resolve(t.Context(), &launcher.Invocation{
			Mode:         launcher.ModeChoose,
			OnlyExisting: true,
		})
		require.ErrorIs(t, err, launcher.ErrProfileNotFound)
	})
}

func TestValidateProfileName(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		name  string
		valid bool
	}{
		"plain name":      {name: "work", valid: true},
		"with dash":       {name: "side-project", valid: true},
		"empty":           {name: ""},
		"dot":             {name: "."},
		"dotdot":          {name: ".."},
		"path separator":  {name: "a/b"},
		"absolute path":   {name: "/etc"},
		"sneaky traverse": {name: "../../etc"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := launcher.ValidateProfileName(tc.name)
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, launcher.ErrInvalidProfileName)
			}
		})
	}
}

func TestResolveRejectsInvalidNames(t *testing.T) {
	t.Parallel()

	t.Run("from selector", func(t *testing.T) {
		t.Parallel()

		r := &launcher.Resolver{
			Root:     profileRoot(t, "work"),
			Selector: selectorReturning("../escape"),
		}

		_, err := r.Resolve(t.Context(), &launcher.Invocation{Mode: launcher.ModeChoose})
		require.ErrorIs(t, err, launcher.ErrInvalidProfileName)
	})

	t.Run("from new mode", func(t *testing.T) {
		t.Parallel()

		r := &launcher.Resolver{Root: profileRoot(t)}

		_, err := r.Resolve(t.Context(), &launcher.Invocation{
			Mode:    launcher.ModeNew,
			Profile: "a/b",
		})
		require.ErrorIs(t, err, launcher.ErrInvalidProfileName)
	})
}
