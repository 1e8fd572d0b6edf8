package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/slashpad/internal/engine"
)

func TestBuildRegistry(t *testing.T) {
	reg := BuildRegistry()

	slash, ok := reg.Find(SlashID)
	require.True(t, ok)
	assert.Len(t, slash.Children, len(SlashItems()))

	for _, item := range SlashItems() {
		node, ok := reg.Child(SlashID, item.ID)
		require.True(t, ok, item.ID)
		assert.NotNil(t, node.Action, item.ID)
	}

	comment, ok := reg.Child(BubbleID, "comment")
	require.True(t, ok)
	assert.Nil(t, comment.Action, "comment is presentational")

	turnInto, ok := reg.Child(BubbleID, "turn-into")
	require.True(t, ok)
	assert.NotNil(t, turnInto.Loader)
	_, ok = reg.Find(TurnIntoID + ":heading2")
	assert.True(t, ok)

	_, ok = reg.Find("slash:missing")
	assert.False(t, ok)
}

func TestRegistryItems(t *testing.T) {
	reg := BuildRegistry()
	items, err := reg.Items(BubbleID, Context{})
	require.NoError(t, err)
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	assert.Equal(t, []string{"Text", "Comment", "Bold", "Italic", "Strike", "Code"}, labels)

	items, err = reg.Items("nope", Context{})
	assert.NoError(t, err)
	assert.Nil(t, items)
}

func TestSlashActionRemovesTrigger(t *testing.T) {
	ed := newEditor(t, engine.Paragraph(engine.Plain("/")))
	ed.SetSelection(engine.Collapsed(engine.Pos{Offset: 1}))
	reg := BuildRegistry()

	node, ok := reg.Child(SlashID, "heading1")
	require.True(t, ok)
	ctx := ContextFor(SlashID, ed.State())
	require.NoError(t, node.Action(ctx, ed.Chain().Focus()).Run())

	assert.True(t, ed.IsActive("heading", engine.Attrs{"level": 1}))
	assert.Equal(t, "", ed.State().Doc.Text())
	assert.False(t, SlashTrigger(ed.State()))
}

func TestTurnIntoKeepsText(t *testing.T) {
	ed := newEditor(t, engine.Paragraph(engine.Plain("keep me")))
	ed.SetSelection(engine.Selection{Anchor: engine.Pos{}, Head: engine.Pos{Offset: 4}})
	reg := BuildRegistry()

	node, ok := reg.Find(TurnIntoID + ":code-block")
	require.True(t, ok)
	require.NoError(t, node.Action(ContextFor(TurnIntoID, ed.State()), ed.Chain().Focus()).Run())

	assert.True(t, ed.IsActive("codeBlock", nil))
	assert.Equal(t, "keep me", ed.State().Doc.Text())
}

func TestMarkActionsToggle(t *testing.T) {
	ed := newEditor(t, engine.Paragraph(engine.Plain("hello")))
	ed.SetSelection(engine.Selection{Anchor: engine.Pos{}, Head: engine.Pos{Offset: 5}})
	handlers := ActionHandlers()

	for _, id := range []string{"bold", "italic", "strike"} {
		require.NoError(t, handlers["bubble:"+id](Context{}, ed.Chain()).Run())
		assert.True(t, ed.IsActive(id, nil), id)
	}
	require.NoError(t, handlers["bubble:code"](Context{}, ed.Chain()).Run())
	assert.True(t, ed.IsActive("code", nil))
	assert.False(t, ed.IsActive("bold", nil), "code excludes other marks")
}
