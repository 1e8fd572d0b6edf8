package engine

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// contentNode mirrors the JSON content tree accepted by ParseContent. YAML is
// a superset of JSON, so both encodings decode through it.
type contentNode struct {
	Type    string         `yaml:"type"`
	Attrs   map[string]any `yaml:"attrs"`
	Content []contentNode  `yaml:"content"`
	Marks   []contentMark  `yaml:"marks"`
	Text    string         `yaml:"text"`
}

type contentMark struct {
	Type string `yaml:"type"`
}

// ParseContent decodes a content tree ({type, attrs, content, marks, text})
// into a document. A nil schema means StarterKit.
func ParseContent(schema *Schema, data []byte) (*Doc, error) {
	if schema == nil {
		schema = StarterKit()
	}
	var root contentNode
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if NodeType(root.Type) != NodeDoc {
		return nil, fmt.Errorf("content root must be %q, got %q", NodeDoc, root.Type)
	}
	p := contentParser{schema: schema}
	var blocks []*Block
	for i, child := range root.Content {
		parsed, err := p.block(child, "")
		if err != nil {
			return nil, fmt.Errorf("content[%d]: %w", i, err)
		}
		blocks = append(blocks, parsed...)
	}
	return NewDoc(blocks...), nil
}

type contentParser struct {
	schema *Schema
}

func (p contentParser) block(n contentNode, list NodeType) ([]*Block, error) {
	switch t := NodeType(n.Type); t {
	case NodeParagraph:
		runs, err := p.inline(n.Content, true)
		if err != nil {
			return nil, err
		}
		return []*Block{{Type: NodeParagraph, List: list, Content: runs}}, nil
	case NodeHeading:
		level := 1
		if v, ok := n.Attrs["level"]; ok {
			l, ok := intAttr(v)
			if !ok {
				return nil, fmt.Errorf("heading level %v is not a number", v)
			}
			level = l
		}
		if !p.schema.HasHeadingLevel(level) {
			return nil, fmt.Errorf("heading level %d is not supported", level)
		}
		runs, err := p.inline(n.Content, true)
		if err != nil {
			return nil, err
		}
		return []*Block{{Type: NodeHeading, Level: level, Content: runs}}, nil
	case NodeCodeBlock:
		lang, _ := n.Attrs["language"].(string)
		runs, err := p.inline(n.Content, false)
		if err != nil {
			return nil, err
		}
		return []*Block{{Type: NodeCodeBlock, Language: lang, Content: runs}}, nil
	case NodeBulletList, NodeOrderedList:
		var blocks []*Block
		for i, item := range n.Content {
			if NodeType(item.Type) != NodeListItem {
				return nil, fmt.Errorf("%s item %d: expected %s, got %q", t, i, NodeListItem, item.Type)
			}
			for j, child := range item.Content {
				childList := NodeType("")
				if NodeType(child.Type) == NodeParagraph {
					childList = t
				}
				parsed, err := p.block(child, childList)
				if err != nil {
					return nil, fmt.Errorf("%s item %d[%d]: %w", t, i, j, err)
				}
				blocks = append(blocks, parsed...)
			}
		}
		return blocks, nil
	default:
		return nil, fmt.Errorf("unsupported node type %q", n.Type)
	}
}

func (p contentParser) inline(nodes []contentNode, marksAllowed bool) ([]Text, error) {
	runs := make([]Text, 0, len(nodes))
	for i, n := range nodes {
		switch NodeType(n.Type) {
		case NodeText:
			var marks MarkSet
			for _, m := range n.Marks {
				t := MarkType(m.Type)
				if _, ok := p.schema.Mark(t); !ok {
					return nil, fmt.Errorf("inline %d: unsupported mark %q", i, m.Type)
				}
				if marksAllowed {
					marks = p.schema.AddMark(marks, t)
				}
			}
			runs = append(runs, Text{Text: n.Text, Marks: marks})
		case NodeHardBreak:
			runs = append(runs, Text{Text: "\n"})
		default:
			return nil, fmt.Errorf("inline %d: unsupported node type %q", i, n.Type)
		}
	}
	return normalizeRuns(runs), nil
}
