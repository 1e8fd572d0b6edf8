package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeBeforeCutsAtCursor(t *testing.T) {
	ed := newTestEditor(t,
		Paragraph(Plain("A")),
		Paragraph(Plain("/x")),
		Paragraph(Marked("ab", MarkBold), Plain("/")),
	)

	cases := []struct {
		name string
		pos  Pos
		want string
		ok   bool
	}{
		{"block start has no node", Pos{Block: 1, Offset: 0}, "", false},
		{"single slash", Pos{Block: 1, Offset: 1}, "/", true},
		{"slash followed by text", Pos{Block: 1, Offset: 2}, "/x", true},
		{"run boundary returns whole run", Pos{Block: 2, Offset: 3}, "/", true},
		{"inside marked run", Pos{Block: 2, Offset: 1}, "a", true},
		{"end of marked run", Pos{Block: 2, Offset: 2}, "ab", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ed.SetSelection(Collapsed(tc.pos))
			got, ok := ed.State().NodeBefore()
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got.Text)
		})
	}
}

func TestNodeBeforeUsesSelectionStart(t *testing.T) {
	ed := newTestEditor(t, Paragraph(Plain("/abc")))
	selectRange(ed, Pos{Offset: 4}, Pos{Offset: 1})

	got, ok := ed.State().NodeBefore()
	require.True(t, ok)
	assert.Equal(t, "/", got.Text)
}

func TestMarksAtCursor(t *testing.T) {
	ed := newTestEditor(t, Paragraph(Marked("bold", MarkBold), Plain(" plain")))

	ed.SetSelection(Collapsed(Pos{Offset: 0}))
	assert.Equal(t, MarkSet{MarkBold}, ed.State().Marks(), "start of block takes the following run")

	ed.SetSelection(Collapsed(Pos{Offset: 4}))
	assert.Equal(t, MarkSet{MarkBold}, ed.State().Marks(), "end of run is inclusive")

	ed.SetSelection(Collapsed(Pos{Offset: 6}))
	assert.Empty(t, ed.State().Marks())
}

func TestIsActiveCoversWholeSelection(t *testing.T) {
	ed := newTestEditor(t, Paragraph(Marked("hello", MarkBold), Plain(" world")))

	selectRange(ed, Pos{Offset: 0}, Pos{Offset: 5})
	assert.True(t, ed.IsActive("bold", nil))

	selectRange(ed, Pos{Offset: 0}, Pos{Offset: 7})
	assert.False(t, ed.IsActive("bold", nil), "partially covered range is not active")
	assert.True(t, ed.IsActive("paragraph", nil))
	assert.False(t, ed.IsActive("heading", nil))
	assert.False(t, ed.IsActive("table", nil))
}

func TestIsActiveNodeAttributes(t *testing.T) {
	ed := newTestEditor(t, Heading(2, Plain("Title")), ListItem(NodeBulletList, Plain("one")))

	assert.True(t, ed.IsActive("heading", Attrs{"level": 2}))
	assert.False(t, ed.IsActive("heading", Attrs{"level": 1}))
	assert.True(t, ed.IsActive("heading", nil))

	ed.SetSelection(Collapsed(Pos{Block: 1}))
	assert.True(t, ed.IsActive("bulletList", nil))
	assert.True(t, ed.IsActive("listItem", nil))
	assert.False(t, ed.IsActive("orderedList", nil))
}

func TestTextBetweenSpansBlocks(t *testing.T) {
	ed := newTestEditor(t, Paragraph(Plain("hello")), Paragraph(Plain("world")))
	got := ed.State().TextBetween(Pos{Offset: 3}, Pos{Block: 1, Offset: 2})
	assert.Equal(t, "lo\nwo", got)
}
