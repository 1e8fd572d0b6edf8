// Package engine is the rich-text editing engine behind the editor page.
//
// It owns everything a block editor framework normally owns: the schema, the
// document model, selection, keyboard-level input handling, chainable
// commands, undo history and change notifications. Callers never mutate a
// State directly. Reads go through Editor.State and Editor.IsActive, writes
// go through Editor.Chain (commands) or the input methods (typing), and
// changes are observed with Editor.OnUpdate.
//
// Document shape:
//   - A Doc is an ordered list of textblocks (paragraph, heading, codeBlock).
//   - List membership is an attribute of a paragraph block rather than a
//     container node, so bullet and ordered lists are flat.
//   - Inline content is a normalized sequence of Text runs, each carrying a
//     canonical MarkSet.
//
// Positions are (block, rune offset) pairs. All engine methods are
// synchronous and must be called from a single goroutine.
package engine
