package termcell

import "strings"

// Row is a fixed-width line of cells.
// Cells are mutated in place; the row never reallocates them behind the caller's back.
type Row []Cell

// NewRow creates a row of cols default cells.
func NewRow(cols int) Row {
	r := make(Row, cols)
	for i := range r {
		r[i] = NewCell()
	}
	return r
}

// Cell returns a pointer to the cell at col.
// Returns nil if col is out of bounds.
func (r Row) Cell(col int) *Cell {
	if col < 0 || col >= len(r) {
		return nil
	}
	return &r[col]
}

// LineLength returns the number of leading cells holding content.
func (r Row) LineLength() int {
	return LineLength([]Cell(r))
}

// IsWrapped returns true if the line continues on the next row.
func (r Row) IsWrapped() bool {
	return len(r) > 0 && r[len(r)-1].HasFlag(FlagWrapline)
}

// SetWrapped marks whether the line continues on the next row (soft wrap)
// or ended with an explicit newline.
func (r Row) SetWrapped(wrapped bool) {
	if len(r) == 0 {
		return
	}
	r[len(r)-1].Flags.Set(FlagWrapline, wrapped)
}

// Write places ch at col using the pen's attributes and returns the column
// after the written glyph.
//
// A tab is stored as a glyph of width 1; other C0 controls and DEL are ignored.
// Zero-width characters are attached to the previous glyph and do not advance.
// A wide character occupies col and a spacer cell at col+1; if it does not fit,
// col is marked as a leading spacer and len(r) is returned so the caller can wrap.
// Writes at or past the end of the row are ignored.
func (r Row) Write(col int, ch rune, pen *Pen) int {
	if col < 0 || col > len(r) {
		return col
	}

	width := runeWidth(ch)
	switch {
	case ch == '\t':
		width = 1
	case ch < 0x20 || ch == 0x7f:
		return col
	}

	if width == 0 {
		if base := r.baseCell(col); base != nil {
			base.PushZerowidth(ch)
		}
		return col
	}

	if col == len(r) {
		return col
	}

	r.breakWide(col)

	if width == 2 && col+1 >= len(r) {
		cell := &r[col]
		cell.Reset(pen.Template())
		cell.SetFlag(FlagLeadingWideCharSpacer)
		return len(r)
	}

	cell := &r[col]
	cell.DropExtra()
	cell.Glyph = ch
	cell.Fg = pen.Fg
	cell.Bg = pen.Bg
	cell.Flags = pen.Flags.Difference(FlagWideChar | FlagWideCharSpacer | FlagLeadingWideCharSpacer | FlagWrapline)

	if width != 2 {
		return col + 1
	}

	r.breakWide(col + 1)
	cell.SetFlag(FlagWideChar)

	spacer := &r[col+1]
	spacer.Reset(pen.Template())
	spacer.Fg = pen.Fg
	spacer.SetFlag(FlagWideCharSpacer)

	return col + 2
}

// baseCell returns the cell a zero-width character written at col attaches to.
func (r Row) baseCell(col int) *Cell {
	idx := col - 1
	if idx >= 0 && idx < len(r) && r[idx].HasFlag(FlagWideCharSpacer) {
		idx--
	}
	if idx < 0 || idx >= len(r) {
		return nil
	}
	return &r[idx]
}

// breakWide blanks the other half of a wide character about to be overwritten at col.
func (r Row) breakWide(col int) {
	cell := &r[col]

	if cell.HasFlag(FlagWideCharSpacer) && col > 0 && r[col-1].IsWide() {
		prev := &r[col-1]
		prev.Reset(prev)
	}

	if cell.IsWide() && col+1 < len(r) && r[col+1].HasFlag(FlagWideCharSpacer) {
		next := &r[col+1]
		next.Reset(next)
	}
}

// Reset clears every cell of the row to the template's background.
//
// Trailing cells that LineLength treats as blank may still carry bold, hidden
// or tab glyphs, so the whole row is reset rather than the occupied prefix.
func (r Row) Reset(template *Cell) {
	for i := range r {
		r[i].Reset(template)
	}
}

// ClearRange resets cells from start (inclusive) to end (exclusive) to the template.
func (r Row) ClearRange(start, end int, template *Cell) {
	start = max(start, 0)
	end = min(end, len(r))
	for col := start; col < end; col++ {
		r[col].Reset(template)
	}
}

// InsertBlanks inserts n blank cells at col, shifting existing cells right.
// Cells shifted past the end are lost.
func (r Row) InsertBlanks(col, n int, template *Cell) {
	if col < 0 || col >= len(r) || n <= 0 {
		return
	}
	n = min(n, len(r)-col)

	copy(r[col+n:], r[col:len(r)-n])

	for c := col; c < col+n; c++ {
		r[c].Reset(template)
	}
}

// DeleteChars removes n cells at col, shifting remaining cells left and
// filling the end of the row with blanks.
func (r Row) DeleteChars(col, n int, template *Cell) {
	if col < 0 || col >= len(r) || n <= 0 {
		return
	}
	n = min(n, len(r)-col)

	copy(r[col:], r[col+n:])

	for c := len(r) - n; c < len(r); c++ {
		r[c].Reset(template)
	}
}

// Resize returns a row with cols columns, keeping the leading cells.
// New cells are default cells; truncated cells are dropped.
// The result never shares cells or extra storage with r.
func (r Row) Resize(cols int) Row {
	if cols <= 0 {
		return Row{}
	}

	resized := make(Row, cols)
	kept := min(cols, len(r))
	for i := range r[:kept] {
		resized[i] = r[i].Clone()
	}
	for i := kept; i < cols; i++ {
		resized[i] = NewCell()
	}
	return resized
}

// Clone returns a deep copy of the row.
func (r Row) Clone() Row {
	dup := make(Row, len(r))
	for i := range r {
		dup[i] = r[i].Clone()
	}
	return dup
}

// Text returns the text content of the row up to its line length.
// Spacer cells are skipped and combining characters follow their base glyph.
func (r Row) Text() string {
	n := r.LineLength()
	if n == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(n)
	for i := range r[:n] {
		cell := &r[i]
		if cell.IsSpacer() {
			continue
		}
		if cell.Glyph == 0 {
			b.WriteRune(' ')
		} else {
			b.WriteRune(cell.Glyph)
		}
		for _, z := range cell.Zerowidth() {
			b.WriteRune(z)
		}
	}
	return b.String()
}
