package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/slashpad/internal/content"
	"github.com/atomicstack/slashpad/internal/engine"
	"github.com/atomicstack/slashpad/internal/highlight"
	"github.com/atomicstack/slashpad/internal/logging/events"
	"github.com/atomicstack/slashpad/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Width        int
	Height       int
	ShowFooter   bool
	Mouse        bool
	ContentPath  string
	Languages    []string
	CodeStyle    string
	HistoryDepth int
}

// Run bootstraps and executes the Bubble Tea program. An editor that fails
// to initialise ends the program and its error is returned.
func Run(cfg Config) error {
	model := ui.NewModel(ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Loader:     EditorLoader(cfg),
	})
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	program := tea.NewProgram(model, opts...)
	final, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return err
	}
	if m, ok := final.(*ui.Model); ok {
		return m.Err()
	}
	return nil
}

// EditorLoader returns the function that builds the editor: it registers
// the highlight languages, loads the initial content and creates the engine.
func EditorLoader(cfg Config) ui.EditorLoader {
	return func() (*engine.Editor, error) {
		events.Editor.Loading(cfg.ContentPath, cfg.Languages)
		hl, err := highlight.New(cfg.CodeStyle, cfg.Languages...)
		if err != nil {
			return nil, fmt.Errorf("register highlight languages: %w", err)
		}
		schema := engine.StarterKit()
		doc, err := content.Load(schema, cfg.ContentPath)
		if err != nil {
			return nil, err
		}
		depth := cfg.HistoryDepth
		if depth == 0 {
			depth = -1
		}
		ed, err := engine.New(engine.Options{
			Schema:       schema,
			Content:      doc,
			Highlighter:  hl,
			HistoryDepth: depth,
			Autofocus:    true,
		})
		if err != nil {
			return nil, fmt.Errorf("create editor: %w", err)
		}
		return ed, nil
	}
}
