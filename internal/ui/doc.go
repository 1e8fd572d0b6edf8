// Package ui contains the Bubble Tea program that hosts the editor page.
// The Model type focuses on message orchestration, while dedicated helpers
// own key routing, filter input, document layout and page rendering.
//
// Message flow:
//   - Init starts the editor loader as a command. Until its editorReadyMsg
//     arrives the page shows a loading line and the command bus has no
//     target, so formatting shortcuts are traced and ignored.
//   - Update routes each tea.Msg through a typed handler registry: key
//     presses go to navigation.go, mouse events and resizes to view.go and
//     action results to commands.go.
//   - Key routing depends on focus. The editor receives text input unless a
//     visible slash menu claims the arrow keys and Enter. Tab moves focus
//     into the bubble menu, whose "Text" button opens the turn-into dropdown
//     with its fuzzy filter.
//
// State ownership:
//   - Document, selection and history live in the engine. The UI changes
//     them only through engine input methods and command chains run by the
//     internal/ui/command bus.
//   - Menu visibility is never stored. Each render asks menu.SlashTrigger
//     and menu.BubbleTrigger about the current engine state.
//   - Menu cursors and the dropdown filter live in internal/ui/state.Level.
//     The slash cursor returns to the top whenever the document changes.
package ui
