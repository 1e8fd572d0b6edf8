package engine

// NodeType names a node in the document schema.
type NodeType string

const (
	NodeDoc         NodeType = "doc"
	NodeParagraph   NodeType = "paragraph"
	NodeHeading     NodeType = "heading"
	NodeCodeBlock   NodeType = "codeBlock"
	NodeBulletList  NodeType = "bulletList"
	NodeOrderedList NodeType = "orderedList"
	NodeListItem    NodeType = "listItem"
	NodeText        NodeType = "text"
	NodeHardBreak   NodeType = "hardBreak"
)

// MarkType names an inline formatting mark.
type MarkType string

const (
	MarkBold   MarkType = "bold"
	MarkItalic MarkType = "italic"
	MarkStrike MarkType = "strike"
	MarkCode   MarkType = "code"
)

// MarkSpec describes a mark type. Marks are ranked by their position in the
// schema, which fixes the order inside a MarkSet.
type MarkSpec struct {
	Type MarkType
	// ExcludesAll marks cannot share a run with any other mark.
	ExcludesAll bool
}

// BlockSpec describes a textblock type.
type BlockSpec struct {
	Type   NodeType
	Marks  bool
	Levels []int
}

// Schema is the set of block and mark types a document may contain.
type Schema struct {
	blocks map[NodeType]BlockSpec
	marks  []MarkSpec
}

// NewSchema builds a schema from block and mark specs.
func NewSchema(blocks []BlockSpec, marks []MarkSpec) *Schema {
	s := &Schema{
		blocks: make(map[NodeType]BlockSpec, len(blocks)),
		marks:  append([]MarkSpec(nil), marks...),
	}
	for _, spec := range blocks {
		s.blocks[spec.Type] = spec
	}
	return s
}

// StarterKit returns the standard schema: paragraphs, six heading levels,
// code blocks without marks, and bold/italic/strike/code marks where code
// excludes everything else.
func StarterKit() *Schema {
	return NewSchema(
		[]BlockSpec{
			{Type: NodeParagraph, Marks: true},
			{Type: NodeHeading, Marks: true, Levels: []int{1, 2, 3, 4, 5, 6}},
			{Type: NodeCodeBlock},
		},
		[]MarkSpec{
			{Type: MarkBold},
			{Type: MarkItalic},
			{Type: MarkStrike},
			{Type: MarkCode, ExcludesAll: true},
		},
	)
}

// Block returns the spec for a textblock type.
func (s *Schema) Block(t NodeType) (BlockSpec, bool) {
	spec, ok := s.blocks[t]
	return spec, ok
}

// Mark returns the spec for a mark type.
func (s *Schema) Mark(t MarkType) (MarkSpec, bool) {
	for _, spec := range s.marks {
		if spec.Type == t {
			return spec, true
		}
	}
	return MarkSpec{}, false
}

// AllowsMarks reports whether inline marks may appear inside blocks of type t.
func (s *Schema) AllowsMarks(t NodeType) bool {
	spec, ok := s.blocks[t]
	return ok && spec.Marks
}

// HasHeadingLevel reports whether level is a valid heading level.
func (s *Schema) HasHeadingLevel(level int) bool {
	spec, ok := s.blocks[NodeHeading]
	if !ok {
		return false
	}
	for _, l := range spec.Levels {
		if l == level {
			return true
		}
	}
	return false
}

func (s *Schema) rank(t MarkType) int {
	for i, spec := range s.marks {
		if spec.Type == t {
			return i
		}
	}
	return len(s.marks)
}

func (s *Schema) excludesAll(t MarkType) bool {
	spec, ok := s.Mark(t)
	return ok && spec.ExcludesAll
}
