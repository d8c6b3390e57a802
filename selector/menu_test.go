package selector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterCandidates(t *testing.T) {
	t.Parallel()

	candidates := []string{"personal", "work", "banking"}

	tcs := map[string]struct {
		query    string
		expected []string
	}{
		"empty query keeps original order": {
			query:    "",
			expected: []string{"personal", "work", "banking"},
		},
		"exact substring": {
			query:    "work",
			expected: []string{"work"},
		},
		"fuzzy match": {
			query:    "bnk",
			expected: []string{"banking"},
		},
		"no match": {
			query:    "zzz",
			expected: []string{},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, filterCandidates(tc.query, candidates))
		})
	}
}

func TestMenuModelRefilter(t *testing.T) {
	t.Parallel()

	m := newMenuModel([]string{"personal", "work", "banking"}, Options{})
	m.cursor = 2

	m.query = "pers"
	m.refilter()

	assert.Equal(t, []string{"personal"}, m.filtered)
	assert.Equal(t, 0, m.cursor, "cursor resets when it falls off the filtered list")
}

func TestMenuModelView(t *testing.T) {
	t.Parallel()

	t.Run("marks the cursor line", func(t *testing.T) {
		t.Parallel()

		m := newMenuModel([]string{"personal", "work"}, Options{Prompt: "pick:"})
		m.cursor = 1

		view := m.render()
		assert.Contains(t, view, "pick:")
		assert.Contains(t, view, "> work")
		assert.Contains(t, view, "  personal")
	})

	t.Run("hints at novel names", func(t *testing.T) {
		t.Parallel()

		m := newMenuModel([]string{"personal"}, Options{})
		m.query = "scratch"
		m.refilter()

		view := m.render()
		assert.True(t, strings.Contains(view, `(enter creates "scratch")`))
	})

	t.Run("no hint when restricted to existing", func(t *testing.T) {
		t.Parallel()

		m := newMenuModel([]string{"personal"}, Options{OnlyExisting: true})
		m.query = "scratch"
		m.refilter()

		assert.NotContains(t, m.render(), "enter creates")
	})
}
