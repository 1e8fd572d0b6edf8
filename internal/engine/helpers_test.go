package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type stubHighlighter struct {
	langs []string
}

func (s stubHighlighter) Languages() []string { return s.langs }

func (s stubHighlighter) Highlight(_ string, code string) ([]Span, error) {
	return []Span{{Start: 0, End: len([]rune(code)), Color: "#7aa2f7"}}, nil
}

func newTestEditor(t *testing.T, blocks ...*Block) *Editor {
	t.Helper()
	ed, err := New(Options{
		Content:     NewDoc(blocks...),
		Highlighter: stubHighlighter{langs: []string{"javascript"}},
		Autofocus:   true,
	})
	require.NoError(t, err)
	return ed
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func selectRange(ed *Editor, from, to Pos) {
	ed.SetSelection(Selection{Anchor: from, Head: to})
}
