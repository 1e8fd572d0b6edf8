package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(ed *Editor, s string) {
	for _, r := range s {
		ed.InsertText(string(r))
	}
}

func TestInputRules(t *testing.T) {
	cases := []struct {
		name  string
		typed string
		check func(t *testing.T, b *Block)
	}{
		{"heading", "## ", func(t *testing.T, b *Block) {
			assert.Equal(t, NodeHeading, b.Type)
			assert.Equal(t, 2, b.Level)
		}},
		{"bullet dash", "- ", func(t *testing.T, b *Block) {
			assert.Equal(t, NodeBulletList, b.List)
		}},
		{"bullet star", "* ", func(t *testing.T, b *Block) {
			assert.Equal(t, NodeBulletList, b.List)
		}},
		{"ordered", "1. ", func(t *testing.T, b *Block) {
			assert.Equal(t, NodeOrderedList, b.List)
		}},
		{"code fence", "```js ", func(t *testing.T, b *Block) {
			assert.Equal(t, NodeCodeBlock, b.Type)
			assert.Equal(t, "js", b.Language)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ed := newTestEditor(t)
			typeText(ed, tc.typed)
			b := ed.State().Doc.Blocks[0]
			assert.Equal(t, "", b.TextContent())
			assert.Equal(t, Collapsed(Pos{}), ed.State().Selection)
			tc.check(t, b)
		})
	}
}

func TestInputRulesIgnoreMidText(t *testing.T) {
	ed := newTestEditor(t, Paragraph(Plain("a")))
	ed.SetSelection(Collapsed(Pos{Offset: 1}))
	typeText(ed, "# ")
	assert.Equal(t, "a# ", ed.State().Doc.Text())
	assert.True(t, ed.IsActive("paragraph", nil))
}

func TestInsertReplacesSelection(t *testing.T) {
	ed := newTestEditor(t, Paragraph(Plain("hello")))
	selectRange(ed, Pos{Offset: 1}, Pos{Offset: 4})
	ed.InsertText("ipp")
	assert.Equal(t, "hippo", ed.State().Doc.Text())
	assert.Equal(t, Collapsed(Pos{Offset: 4}), ed.State().Selection)
}

func TestSplitBlock(t *testing.T) {
	t.Run("heading end opens paragraph", func(t *testing.T) {
		ed := newTestEditor(t, Heading(1, Plain("Title")))
		ed.SetSelection(Collapsed(Pos{Offset: 5}))
		ed.SplitBlock()

		doc := ed.State().Doc
		require.Equal(t, 2, doc.BlockCount())
		assert.Equal(t, NodeHeading, doc.Blocks[0].Type)
		assert.Equal(t, NodeParagraph, doc.Blocks[1].Type)
		assert.Equal(t, Collapsed(Pos{Block: 1}), ed.State().Selection)
	})

	t.Run("middle of paragraph", func(t *testing.T) {
		ed := newTestEditor(t, Paragraph(Plain("ab"), Marked("cd", MarkItalic)))
		ed.SetSelection(Collapsed(Pos{Offset: 3}))
		ed.SplitBlock()

		doc := ed.State().Doc
		assert.Equal(t, []Text{Plain("ab"), Marked("c", MarkItalic)}, doc.Blocks[0].Content)
		assert.Equal(t, []Text{Marked("d", MarkItalic)}, doc.Blocks[1].Content)
	})

	t.Run("list item continues then lifts", func(t *testing.T) {
		ed := newTestEditor(t, ListItem(NodeBulletList, Plain("one")))
		ed.SetSelection(Collapsed(Pos{Offset: 3}))
		ed.SplitBlock()
		require.Equal(t, 2, ed.State().Doc.BlockCount())
		assert.Equal(t, NodeBulletList, ed.State().Doc.Blocks[1].List)

		ed.SplitBlock()
		require.Equal(t, 2, ed.State().Doc.BlockCount())
		assert.Empty(t, ed.State().Doc.Blocks[1].List)
	})

	t.Run("code block exits on third enter", func(t *testing.T) {
		ed := newTestEditor(t, CodeBlock("javascript", "x"))
		ed.SetSelection(Collapsed(Pos{Offset: 1}))
		ed.SplitBlock()
		ed.SplitBlock()
		assert.Equal(t, "x\n\n", ed.State().Doc.Blocks[0].TextContent())

		ed.SplitBlock()
		doc := ed.State().Doc
		require.Equal(t, 2, doc.BlockCount())
		assert.Equal(t, "x", doc.Blocks[0].TextContent())
		assert.Equal(t, NodeParagraph, doc.Blocks[1].Type)
		assert.Equal(t, Collapsed(Pos{Block: 1}), ed.State().Selection)
	})
}

func TestDeleteBackward(t *testing.T) {
	t.Run("joins blocks", func(t *testing.T) {
		ed := newTestEditor(t, Paragraph(Plain("ab")), Paragraph(Plain("cd")))
		ed.SetSelection(Collapsed(Pos{Block: 1}))
		ed.DeleteBackward()

		assert.Equal(t, "abcd", ed.State().Doc.Text())
		assert.Equal(t, Collapsed(Pos{Offset: 2}), ed.State().Selection)
	})

	t.Run("removes whole grapheme", func(t *testing.T) {
		ed := newTestEditor(t, Paragraph(Plain("ok👍🏽")))
		ed.SetSelection(Collapsed(Pos{Offset: 4}))
		ed.DeleteBackward()
		assert.Equal(t, "ok", ed.State().Doc.Text())
	})

	t.Run("lifts list item at start", func(t *testing.T) {
		ed := newTestEditor(t, ListItem(NodeOrderedList, Plain("x")))
		ed.DeleteBackward()
		assert.Empty(t, ed.State().Doc.Blocks[0].List)
		assert.Equal(t, "x", ed.State().Doc.Text())
	})

	t.Run("first heading becomes paragraph", func(t *testing.T) {
		ed := newTestEditor(t, Heading(3, Plain("x")))
		ed.DeleteBackward()
		assert.True(t, ed.IsActive("paragraph", nil))
	})

	t.Run("empty doc start is a no-op", func(t *testing.T) {
		ed := newTestEditor(t)
		ed.DeleteBackward()
		assert.Zero(t, ed.Version())
	})
}

func TestDeleteForwardJoinsNextBlock(t *testing.T) {
	ed := newTestEditor(t, Paragraph(Plain("ab")), Paragraph(Plain("cd")))
	ed.SetSelection(Collapsed(Pos{Offset: 2}))
	ed.DeleteForward()
	assert.Equal(t, "abcd", ed.State().Doc.Text())
}

func TestMove(t *testing.T) {
	ed := newTestEditor(t, CodeBlock("javascript", "abc\nd\nefgh"))
	ed.SetSelection(Collapsed(Pos{Offset: 3}))

	ed.Move(MoveDown, false)
	assert.Equal(t, Pos{Offset: 5}, ed.State().Selection.Head, "column clamps to short line")

	ed.Move(MoveDown, false)
	assert.Equal(t, Pos{Offset: 7}, ed.State().Selection.Head)

	ed.Move(MoveLineEnd, false)
	assert.Equal(t, Pos{Offset: 10}, ed.State().Selection.Head)

	ed.Move(MoveDown, false)
	doc := ed.State().Doc
	require.Equal(t, 2, doc.BlockCount(), "leaving the last code block appends a paragraph")
	assert.Equal(t, Pos{Block: 1}, ed.State().Selection.Head)

	ed.Move(MoveDocStart, false)
	ed.Move(MoveWordRight, true)
	assert.Equal(t, Selection{Anchor: Pos{}, Head: Pos{Offset: 3}}, ed.State().Selection)

	ed.Move(MoveLeft, false)
	assert.Equal(t, Collapsed(Pos{}), ed.State().Selection, "left collapses to selection start")
}

func TestSelectAll(t *testing.T) {
	ed := newTestEditor(t, Paragraph(Plain("ab")), Paragraph(Plain("cde")))
	ed.SelectAll()
	assert.Equal(t, "ab\ncde", ed.State().SelectedText())
}
