package engine

// Pos addresses a rune offset inside a block.
type Pos struct {
	Block  int
	Offset int
}

// ComparePos orders positions in document order.
func ComparePos(a, b Pos) int {
	switch {
	case a.Block < b.Block:
		return -1
	case a.Block > b.Block:
		return 1
	case a.Offset < b.Offset:
		return -1
	case a.Offset > b.Offset:
		return 1
	}
	return 0
}

// Selection is an anchored range. Head is where the cursor is drawn.
type Selection struct {
	Anchor Pos
	Head   Pos
}

// Collapsed returns an empty selection at p.
func Collapsed(p Pos) Selection {
	return Selection{Anchor: p, Head: p}
}

// From returns the start of the selection in document order.
func (s Selection) From() Pos {
	if ComparePos(s.Anchor, s.Head) <= 0 {
		return s.Anchor
	}
	return s.Head
}

// To returns the end of the selection in document order.
func (s Selection) To() Pos {
	if ComparePos(s.Anchor, s.Head) <= 0 {
		return s.Head
	}
	return s.Anchor
}

// Empty reports whether the selection is a cursor.
func (s Selection) Empty() bool {
	return s.Anchor == s.Head
}

// Range is a half-open span between two positions.
type Range struct {
	From Pos
	To   Pos
}

func clampPos(d *Doc, p Pos) Pos {
	if p.Block < 0 {
		return Pos{}
	}
	if p.Block >= len(d.Blocks) {
		return d.End()
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	if n := d.Blocks[p.Block].Len(); p.Offset > n {
		p.Offset = n
	}
	return p
}

// mapDeleted maps p through the deletion of [from, to).
func mapDeleted(p, from, to Pos) Pos {
	if ComparePos(p, from) <= 0 {
		return p
	}
	if ComparePos(p, to) < 0 {
		return from
	}
	if p.Block == to.Block {
		return Pos{Block: from.Block, Offset: from.Offset + p.Offset - to.Offset}
	}
	return Pos{Block: p.Block - (to.Block - from.Block), Offset: p.Offset}
}
