package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/slashpad/internal/engine"
)

func TestDefaultParses(t *testing.T) {
	doc, err := Default(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.BlockCount() < 5 {
		t.Fatalf("expected a demo document, got %d blocks", doc.BlockCount())
	}
	if first := doc.Block(0); first.Type != engine.NodeHeading || first.Level != 1 {
		t.Fatalf("expected heading 1 first, got %+v", first)
	}
	var code *engine.Block
	for _, b := range doc.Blocks {
		if b.Type == engine.NodeCodeBlock {
			code = b
		}
	}
	if code == nil || code.Language != "javascript" {
		t.Fatalf("expected a javascript code block, got %+v", code)
	}
}

func TestLoadOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	data := `{"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","text":"custom"}]}]}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	doc, err := Load(nil, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := doc.Text(); got != "custom" {
		t.Fatalf("expected custom text, got %q", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(nil, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	doc, err := Load(nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, _ := Default(nil)
	if doc.Text() != want.Text() {
		t.Fatalf("expected default content")
	}
}
