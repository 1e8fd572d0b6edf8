// Package highlight colours code block text with chroma lexers.
package highlight

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/atomicstack/slashpad/internal/engine"
)

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "tokyonight-night"

// ErrUnknownLanguage is returned when chroma has no lexer for a language.
var ErrUnknownLanguage = errors.New("unknown highlight language")

// Registry holds the languages code blocks may be highlighted with. The
// first registered language is the default.
type Registry struct {
	style  *chroma.Style
	names  []string
	lexers map[string]chroma.Lexer
}

// NewRegistry builds an empty registry using the named chroma style. Unknown
// style names fall back to chroma's default style.
func NewRegistry(styleName string) *Registry {
	if styleName == "" {
		styleName = DefaultStyle
	}
	return &Registry{
		style:  styles.Get(styleName),
		lexers: make(map[string]chroma.Lexer),
	}
}

// New registers every language in order.
func New(styleName string, languages ...string) (*Registry, error) {
	r := NewRegistry(styleName)
	for _, lang := range languages {
		if err := r.Register(lang); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a language by chroma lexer name or alias.
func (r *Registry) Register(name string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return fmt.Errorf("register %q: %w", name, ErrUnknownLanguage)
	}
	if _, ok := r.lexers[name]; ok {
		return nil
	}
	lexer := lexers.Get(name)
	if lexer == nil {
		return fmt.Errorf("register %q: %w", name, ErrUnknownLanguage)
	}
	r.lexers[name] = chroma.Coalesce(lexer)
	r.names = append(r.names, name)
	return nil
}

// Languages lists registered languages in registration order.
func (r *Registry) Languages() []string {
	return append([]string(nil), r.names...)
}

// StyleName reports the chroma style in use.
func (r *Registry) StyleName() string {
	return r.style.Name
}

// Background returns the style's background colour, or "" when unset.
func (r *Registry) Background() string {
	bg := r.style.Get(chroma.Background).Background
	if !bg.IsSet() {
		return ""
	}
	return bg.String()
}

// Highlight tokenizes code and returns coloured rune ranges. Whitespace and
// tokens without a colour produce no span.
func (r *Registry) Highlight(language, code string) ([]engine.Span, error) {
	lexer, ok := r.lexers[strings.ToLower(language)]
	if !ok {
		return nil, fmt.Errorf("highlight %q: %w", language, ErrUnknownLanguage)
	}
	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return nil, fmt.Errorf("tokenise %s: %w", language, err)
	}
	limit := utf8.RuneCountInString(code)
	var spans []engine.Span
	offset := 0
	for _, tok := range it.Tokens() {
		n := utf8.RuneCountInString(tok.Value)
		start, end := offset, min(offset+n, limit)
		offset += n
		if start >= end || strings.TrimSpace(tok.Value) == "" {
			continue
		}
		entry := r.style.Get(tok.Type)
		if !entry.Colour.IsSet() && entry.Bold != chroma.Yes && entry.Italic != chroma.Yes {
			continue
		}
		span := engine.Span{
			Start:  start,
			End:    end,
			Bold:   entry.Bold == chroma.Yes,
			Italic: entry.Italic == chroma.Yes,
		}
		if entry.Colour.IsSet() {
			span.Color = entry.Colour.String()
		}
		spans = append(spans, span)
	}
	return spans, nil
}
