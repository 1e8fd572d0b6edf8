package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	r := NewRegistry("")
	require.NoError(t, r.Register("javascript"))
	require.NoError(t, r.Register("JavaScript"), "re-registering is a no-op")
	require.ErrorIs(t, r.Register("not-a-lang"), ErrUnknownLanguage)
	require.ErrorIs(t, r.Register(" "), ErrUnknownLanguage)
	assert.Equal(t, []string{"javascript"}, r.Languages())
}

func TestNewStopsAtUnknownLanguage(t *testing.T) {
	_, err := New(DefaultStyle, "go", "not-a-lang")
	require.ErrorIs(t, err, ErrUnknownLanguage)

	r, err := New(DefaultStyle, "javascript", "go")
	require.NoError(t, err)
	assert.Equal(t, []string{"javascript", "go"}, r.Languages())
}

func TestHighlightKeyword(t *testing.T) {
	r, err := New("monokai", "javascript")
	require.NoError(t, err)

	spans, err := r.Highlight("javascript", "const x = 1")
	require.NoError(t, err)
	require.NotEmpty(t, spans)

	first := spans[0]
	assert.Equal(t, 0, first.Start)
	assert.Equal(t, 5, first.End)
	assert.NotEmpty(t, first.Color)
	for _, s := range spans {
		assert.LessOrEqual(t, s.End, 11)
		assert.Less(t, s.Start, s.End)
	}
}

func TestHighlightUsesRuneOffsets(t *testing.T) {
	r, err := New("monokai", "javascript")
	require.NoError(t, err)

	spans, err := r.Highlight("javascript", "'héllo' + 1")
	require.NoError(t, err)
	require.NotEmpty(t, spans)
	assert.Equal(t, 0, spans[0].Start)
	assert.Equal(t, 7, spans[0].End)
}

func TestHighlightUnregistered(t *testing.T) {
	r := NewRegistry("")
	_, err := r.Highlight("go", "package main")
	require.ErrorIs(t, err, ErrUnknownLanguage)
}

func TestUnknownStyleFallsBack(t *testing.T) {
	r := NewRegistry("no-such-style")
	assert.NotEmpty(t, r.StyleName())
}
