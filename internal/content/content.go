// Package content supplies the document the editor starts with.
package content

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/atomicstack/slashpad/internal/engine"
)

//go:embed initial.yaml
var initial []byte

// Default returns the built-in demo document.
func Default(schema *engine.Schema) (*engine.Doc, error) {
	doc, err := engine.ParseContent(schema, initial)
	if err != nil {
		return nil, fmt.Errorf("default content: %w", err)
	}
	return doc, nil
}

// Load reads a content tree from path, or the built-in document when path is
// empty.
func Load(schema *engine.Schema, path string) (*engine.Doc, error) {
	if path == "" {
		return Default(schema)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	doc, err := engine.ParseContent(schema, data)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return doc, nil
}
