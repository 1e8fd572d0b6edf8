package engine

import (
	"strings"
	"unicode/utf8"
)

// Text is an inline run of characters that share one mark set.
type Text struct {
	Text  string
	Marks MarkSet
}

// Block is a textblock. List is empty, NodeBulletList or NodeOrderedList;
// list items are always paragraphs.
type Block struct {
	Type     NodeType
	Level    int
	Language string
	List     NodeType
	Content  []Text
}

// Paragraph builds a paragraph from runs.
func Paragraph(runs ...Text) *Block {
	return &Block{Type: NodeParagraph, Content: normalizeRuns(runs)}
}

// Heading builds a heading of the given level.
func Heading(level int, runs ...Text) *Block {
	return &Block{Type: NodeHeading, Level: level, Content: normalizeRuns(runs)}
}

// CodeBlock builds a code block holding plain text.
func CodeBlock(language, code string) *Block {
	return &Block{Type: NodeCodeBlock, Language: language, Content: normalizeRuns([]Text{{Text: code}})}
}

// ListItem builds a paragraph that belongs to a list of the given kind.
func ListItem(list NodeType, runs ...Text) *Block {
	return &Block{Type: NodeParagraph, List: list, Content: normalizeRuns(runs)}
}

// Plain is shorthand for an unmarked run.
func Plain(s string) Text {
	return Text{Text: s}
}

// Marked is shorthand for a run carrying marks.
func Marked(s string, marks ...MarkType) Text {
	return Text{Text: s, Marks: MarkSet(marks)}
}

// Len returns the block length in runes.
func (b *Block) Len() int {
	n := 0
	for _, run := range b.Content {
		n += utf8.RuneCountInString(run.Text)
	}
	return n
}

// TextContent returns the block text without marks.
func (b *Block) TextContent() string {
	if len(b.Content) == 1 {
		return b.Content[0].Text
	}
	var sb strings.Builder
	for _, run := range b.Content {
		sb.WriteString(run.Text)
	}
	return sb.String()
}

// IsListItem reports whether the block belongs to a list.
func (b *Block) IsListItem() bool {
	return b.List != ""
}

func (b *Block) clone() *Block {
	dup := *b
	dup.Content = append([]Text(nil), b.Content...)
	return &dup
}

// Doc is the document: an ordered list of textblocks, never empty.
type Doc struct {
	Blocks []*Block
}

// NewDoc builds a document. An empty block list yields one empty paragraph.
func NewDoc(blocks ...*Block) *Doc {
	if len(blocks) == 0 {
		blocks = []*Block{Paragraph()}
	}
	return &Doc{Blocks: blocks}
}

// Block returns block i or nil when out of range.
func (d *Doc) Block(i int) *Block {
	if d == nil || i < 0 || i >= len(d.Blocks) {
		return nil
	}
	return d.Blocks[i]
}

// BlockCount returns the number of blocks.
func (d *Doc) BlockCount() int {
	if d == nil {
		return 0
	}
	return len(d.Blocks)
}

// Text returns the text of every block joined with newlines.
func (d *Doc) Text() string {
	parts := make([]string, len(d.Blocks))
	for i, b := range d.Blocks {
		parts[i] = b.TextContent()
	}
	return strings.Join(parts, "\n")
}

func (d *Doc) clone() *Doc {
	blocks := make([]*Block, len(d.Blocks))
	for i, b := range d.Blocks {
		blocks[i] = b.clone()
	}
	return &Doc{Blocks: blocks}
}

// End returns the last position in the document.
func (d *Doc) End() Pos {
	last := len(d.Blocks) - 1
	return Pos{Block: last, Offset: d.Blocks[last].Len()}
}
