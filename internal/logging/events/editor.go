package events

import "github.com/atomicstack/slashpad/internal/logging"

type EditorTracer struct{}

var Editor = EditorTracer{}

func (EditorTracer) Loading(contentPath string, languages []string) {
	logging.Trace("editor.loading", map[string]interface{}{"content": contentPath, "languages": languages})
}

func (EditorTracer) Ready(blocks int, version uint64) {
	logging.Trace("editor.ready", map[string]interface{}{"blocks": blocks, "version": version})
}

func (EditorTracer) Failed(err error) {
	logging.Trace("editor.failed", map[string]interface{}{"error": err.Error()})
}

func (EditorTracer) Transaction(kind, source string, version uint64) {
	logging.Trace("editor.transaction", map[string]interface{}{"kind": kind, "source": source, "version": version})
}

func (EditorTracer) Input(key string) {
	logging.Trace("editor.input", map[string]interface{}{"key": key})
}

func (EditorTracer) History(op string, applied bool) {
	logging.Trace("editor.history", map[string]interface{}{"op": op, "applied": applied})
}
