package state

// Home moves the cursor to the first item.
func (l *Level) Home() bool {
	return l.moveTo(0)
}

// End moves the cursor to the last item.
func (l *Level) End() bool {
	return l.moveTo(len(l.Items) - 1)
}

// PageUp moves the cursor up by one window of rows without wrapping.
func (l *Level) PageUp(rows int) bool {
	return l.moveTo(l.Cursor - l.pageSize(rows))
}

// PageDown moves the cursor down by one window of rows without wrapping.
func (l *Level) PageDown(rows int) bool {
	return l.moveTo(l.Cursor + l.pageSize(rows))
}

func (l *Level) moveTo(i int) bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	i = min(max(i, 0), n-1)
	if i == l.Cursor {
		return false
	}
	l.Cursor = i
	return true
}

// pageSize clamps rows to the list length. Zero or negative rows page over
// the whole list.
func (l *Level) pageSize(rows int) int {
	n := len(l.Items)
	if rows <= 0 || rows > n {
		return max(n, 1)
	}
	return rows
}

// Window scrolls the viewport so the cursor is among rows visible items and
// returns the visible range [start, end). Zero or negative rows show every
// item.
func (l *Level) Window(rows int) (start, end int) {
	n := len(l.Items)
	if rows <= 0 || rows >= n {
		l.ViewportOffset = 0
		return 0, n
	}
	cur := min(max(l.Cursor, 0), n-1)
	off := min(max(l.ViewportOffset, 0), n-rows)
	if cur < off {
		off = cur
	}
	if cur >= off+rows {
		off = cur - rows + 1
	}
	l.ViewportOffset = off
	return off, off + rows
}
