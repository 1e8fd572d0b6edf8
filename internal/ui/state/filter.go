package state

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/slashpad/internal/menu"
)

// SetFilter replaces the filter text and places the filter cursor. A
// non-empty query moves the menu cursor to the best match. Clearing the
// query returns the cursor to where it was before filtering began.
func (l *Level) SetFilter(query string, cursor int) {
	was := strings.TrimSpace(l.Filter) != ""
	now := strings.TrimSpace(query) != ""
	l.Filter = query
	l.FilterCursor = min(max(cursor, 0), len([]rune(query)))
	if now && !was {
		l.LastCursor = l.Cursor
	}
	l.applyFilter()
	switch {
	case now:
		l.Cursor = max(BestMatchIndex(l.Items, query), 0)
	case was:
		if l.LastCursor >= 0 && l.LastCursor < len(l.Items) {
			l.Cursor = l.LastCursor
		} else if len(l.Items) > 0 {
			l.Cursor = len(l.Items) - 1
		}
		l.LastCursor = -1
	}
}

func (l *Level) applyFilter() {
	l.Items = FilterItems(l.Full, l.Filter)
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 || l.Cursor >= n {
		l.Cursor = n - 1
	}
	if l.ViewportOffset >= n {
		l.ViewportOffset = 0
	}
}

// FilterCursorPos returns the rune offset of the filter cursor.
func (l *Level) FilterCursorPos() int {
	return min(max(l.FilterCursor, 0), len([]rune(l.Filter)))
}

// editFilter applies fn to the filter runes at the cursor. fn returns the
// new text and cursor, or false to leave the filter untouched.
func (l *Level) editFilter(fn func(runes []rune, pos int) ([]rune, int, bool)) bool {
	runes, pos, ok := fn([]rune(l.Filter), l.FilterCursorPos())
	if !ok {
		return false
	}
	l.SetFilter(string(runes), pos)
	return true
}

// moveFilterCursor sets the filter cursor to the offset fn computes.
func (l *Level) moveFilterCursor(fn func(runes []rune, pos int) int) bool {
	pos := l.FilterCursorPos()
	next := fn([]rune(l.Filter), pos)
	if next == pos {
		return false
	}
	l.FilterCursor = next
	return true
}

// InsertFilterText inserts text at the filter cursor.
func (l *Level) InsertFilterText(text string) bool {
	return l.editFilter(func(runes []rune, pos int) ([]rune, int, bool) {
		insert := []rune(text)
		if len(insert) == 0 {
			return nil, 0, false
		}
		out := make([]rune, 0, len(runes)+len(insert))
		out = append(append(append(out, runes[:pos]...), insert...), runes[pos:]...)
		return out, pos + len(insert), true
	})
}

// DeleteFilterRuneBackward deletes the rune before the filter cursor.
func (l *Level) DeleteFilterRuneBackward() bool {
	return l.editFilter(func(runes []rune, pos int) ([]rune, int, bool) {
		if pos == 0 {
			return nil, 0, false
		}
		return append(runes[:pos-1:pos-1], runes[pos:]...), pos - 1, true
	})
}

// DeleteFilterWordBackward deletes the word before the filter cursor along
// with the spaces that follow it.
func (l *Level) DeleteFilterWordBackward() bool {
	return l.editFilter(func(runes []rune, pos int) ([]rune, int, bool) {
		if pos == 0 {
			return nil, 0, false
		}
		start := wordStart(runes, pos)
		return append(runes[:start:start], runes[pos:]...), start, true
	})
}

// MoveFilterCursorStart moves the filter cursor to the start.
func (l *Level) MoveFilterCursorStart() bool {
	return l.moveFilterCursor(func([]rune, int) int { return 0 })
}

// MoveFilterCursorEnd moves the filter cursor to the end.
func (l *Level) MoveFilterCursorEnd() bool {
	return l.moveFilterCursor(func(runes []rune, _ int) int { return len(runes) })
}

// MoveFilterCursorWordBackward moves the filter cursor to the start of the
// previous word.
func (l *Level) MoveFilterCursorWordBackward() bool {
	return l.moveFilterCursor(wordStart)
}

// MoveFilterCursorWordForward moves the filter cursor past the next word
// and its trailing spaces.
func (l *Level) MoveFilterCursorWordForward() bool {
	return l.moveFilterCursor(wordEnd)
}

// MoveFilterCursorRuneBackward moves the filter cursor one rune backward.
func (l *Level) MoveFilterCursorRuneBackward() bool {
	return l.moveFilterCursor(func(_ []rune, pos int) int { return max(pos-1, 0) })
}

// MoveFilterCursorRuneForward moves the filter cursor one rune forward.
func (l *Level) MoveFilterCursorRuneForward() bool {
	return l.moveFilterCursor(func(runes []rune, pos int) int { return min(pos+1, len(runes)) })
}

func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}

func wordEnd(runes []rune, pos int) int {
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	return i
}

// FilterItems returns the block items matching query, in menu order. Labels
// match fuzzily ("hdr" finds "Header 1"). IDs, descriptions and shortcuts
// match by case-insensitive substring, so "heading" finds the header items
// and "snippet" finds "Code block".
func FilterItems(items []menu.Item, query string) []menu.Item {
	q := strings.TrimSpace(query)
	if q == "" {
		return CloneItems(items)
	}
	matched := make([]bool, len(items))
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	for _, rank := range fuzzy.RankFindNormalizedFold(q, labels) {
		matched[rank.OriginalIndex] = true
	}
	lower := strings.ToLower(q)
	for i, item := range items {
		if matched[i] {
			continue
		}
		for _, key := range secondaryKeys(item) {
			if strings.Contains(strings.ToLower(key), lower) {
				matched[i] = true
				break
			}
		}
	}
	out := make([]menu.Item, 0, len(items))
	for i, item := range items {
		if matched[i] {
			out = append(out, item)
		}
	}
	return out
}

func secondaryKeys(item menu.Item) []string {
	return []string{item.ID, item.Description, item.Shortcut}
}

// Match strength for BestMatchIndex, strongest first.
const (
	matchExact = iota
	matchLabelPrefix
	matchIDPrefix
	matchContains
	matchSecondary
	matchFuzzy
	matchNone
)

// BestMatchIndex returns the index of the item that matches query most
// strongly. Ties go to the earlier item. It returns 0 when nothing matches
// and -1 for an empty list.
func BestMatchIndex(items []menu.Item, query string) int {
	if len(items) == 0 {
		return -1
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 0
	}
	best, bestScore, bestDist := 0, matchNone, 0
	for i, item := range items {
		score, dist := matchScore(item, q)
		if score < bestScore || (score == bestScore && dist < bestDist) {
			best, bestScore, bestDist = i, score, dist
		}
	}
	return best
}

func matchScore(item menu.Item, q string) (int, int) {
	label, id := strings.ToLower(item.Label), strings.ToLower(item.ID)
	switch {
	case label == q || id == q:
		return matchExact, 0
	case strings.HasPrefix(label, q):
		return matchLabelPrefix, 0
	case strings.HasPrefix(id, q):
		return matchIDPrefix, 0
	case strings.Contains(label, q) || strings.Contains(id, q):
		return matchContains, 0
	}
	for _, key := range secondaryKeys(item)[1:] {
		if strings.Contains(strings.ToLower(key), q) {
			return matchSecondary, 0
		}
	}
	if fuzzy.MatchNormalizedFold(q, item.Label) {
		return matchFuzzy, fuzzy.LevenshteinDistance(q, label)
	}
	return matchNone, 0
}
