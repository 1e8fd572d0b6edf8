package theme

import "github.com/charmbracelet/lipgloss"

// Zinc palette used across the page.
const (
	Zinc50  = lipgloss.Color("#fafafa")
	Zinc100 = lipgloss.Color("#f4f4f5")
	Zinc300 = lipgloss.Color("#d4d4d8")
	Zinc400 = lipgloss.Color("#a1a1aa")
	Zinc500 = lipgloss.Color("#71717a")
	Zinc600 = lipgloss.Color("#52525b")
	Zinc700 = lipgloss.Color("#3f3f46")
	Zinc800 = lipgloss.Color("#27272a")
	Zinc900 = lipgloss.Color("#18181b")
	Violet  = lipgloss.Color("#a78bfa")
	Red     = lipgloss.Color("#ef4444")
	Yellow  = lipgloss.Color("#eab308")
	Green   = lipgloss.Color("#22c55e")
)

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Loading *lipgloss.Style
	Error   *lipgloss.Style
	Info    *lipgloss.Style
	Status  *lipgloss.Style
	Footer  *lipgloss.Style

	Frame     *lipgloss.Style
	Separator *lipgloss.Style
	DotIdle   *lipgloss.Style
	DotRed    *lipgloss.Style
	DotYellow *lipgloss.Style
	DotGreen  *lipgloss.Style

	Text       *lipgloss.Style
	Headings   [3]*lipgloss.Style
	ListMarker *lipgloss.Style
	CodeBlock  *lipgloss.Style
	CodeLabel  *lipgloss.Style
	InlineCode *lipgloss.Style
	Selection  lipgloss.Color
	Caret      *lipgloss.Style

	Menu              *lipgloss.Style
	MenuBorder        lipgloss.Color
	Item              *lipgloss.Style
	ItemIcon          *lipgloss.Style
	ItemDescription   *lipgloss.Style
	SelectedItem      *lipgloss.Style
	SelectedItemIcon  *lipgloss.Style
	Pressed           *lipgloss.Style
	FocusedButton     *lipgloss.Style
	Filter            *lipgloss.Style
	FilterPrompt      *lipgloss.Style
	FilterPlaceholder *lipgloss.Style
	Cursor            *lipgloss.Style
}

var defaultStyles = Styles{
	Loading: ptr(
		lipgloss.NewStyle().Foreground(Zinc500).Italic(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(Red).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(Zinc400),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(Zinc500),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(Zinc600),
	),
	Frame: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Zinc700),
	),
	Separator: ptr(
		lipgloss.NewStyle().Foreground(Zinc700),
	),
	DotIdle: ptr(
		lipgloss.NewStyle().Foreground(Zinc600),
	),
	DotRed: ptr(
		lipgloss.NewStyle().Foreground(Red),
	),
	DotYellow: ptr(
		lipgloss.NewStyle().Foreground(Yellow),
	),
	DotGreen: ptr(
		lipgloss.NewStyle().Foreground(Green),
	),
	Text: ptr(
		lipgloss.NewStyle().Foreground(Zinc300),
	),
	Headings: [3]*lipgloss.Style{
		ptr(lipgloss.NewStyle().Foreground(Zinc50).Bold(true).Underline(true)),
		ptr(lipgloss.NewStyle().Foreground(Zinc50).Bold(true)),
		ptr(lipgloss.NewStyle().Foreground(Zinc100).Bold(true)),
	},
	ListMarker: ptr(
		lipgloss.NewStyle().Foreground(Zinc500),
	),
	CodeBlock: ptr(
		lipgloss.NewStyle().Foreground(Zinc300).Background(Zinc900),
	),
	CodeLabel: ptr(
		lipgloss.NewStyle().Foreground(Zinc500).Background(Zinc900).Italic(true),
	),
	InlineCode: ptr(
		lipgloss.NewStyle().Foreground(Violet).Background(Zinc800),
	),
	Selection: Zinc600,
	Caret: ptr(
		lipgloss.NewStyle().Reverse(true),
	),
	Menu: ptr(
		lipgloss.NewStyle().Background(Zinc800),
	),
	MenuBorder: Zinc600,
	Item: ptr(
		lipgloss.NewStyle().Foreground(Zinc300).Background(Zinc800),
	),
	ItemIcon: ptr(
		lipgloss.NewStyle().Foreground(Zinc400).Background(Zinc700).Bold(true),
	),
	ItemDescription: ptr(
		lipgloss.NewStyle().Foreground(Zinc500).Background(Zinc800),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(Zinc50).Background(Zinc700).Bold(true),
	),
	SelectedItemIcon: ptr(
		lipgloss.NewStyle().Foreground(Zinc50).Background(Zinc600).Bold(true),
	),
	Pressed: ptr(
		lipgloss.NewStyle().Foreground(Violet).Background(Zinc800).Bold(true),
	),
	FocusedButton: ptr(
		lipgloss.NewStyle().Foreground(Zinc50).Background(Zinc600).Bold(true),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(Zinc300).Background(Zinc800),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(Violet).Background(Zinc800).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(Zinc600).Background(Zinc800),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(Zinc900).Background(Violet).Blink(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Heading returns the style for a heading level; levels past the third share
// the third level's style.
func (s *Styles) Heading(level int) *lipgloss.Style {
	switch {
	case level <= 1:
		return s.Headings[0]
	case level == 2:
		return s.Headings[1]
	default:
		return s.Headings[2]
	}
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
