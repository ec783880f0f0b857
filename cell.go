package termcell

import (
	"encoding/json"
	"fmt"
	"slices"
	"unicode/utf8"
)

// cellExtra holds attributes that are too rare to deserve a field in every cell.
// It is only allocated once a cell actually needs it.
type cellExtra struct {
	zerowidth []rune
}

// Cell stores the glyph, colors and attributes for one grid position.
// Wide characters (2 columns) use a spacer cell in the second position.
//
// Cells are reused in place: grids reset them to a template instead of
// allocating new ones.
type Cell struct {
	Glyph rune
	Fg    Color
	Bg    Color
	Flags Flags

	extra *cellExtra
}

// NewCell creates a cell initialized with a space and the default colors.
func NewCell() Cell {
	return Cell{
		Glyph: ' ',
		Fg:    DefaultForeground,
		Bg:    DefaultBackground,
	}
}

// NewCellWithBackground creates a default cell filled with bg, as used for erase operations.
func NewCellWithBackground(bg Color) Cell {
	c := NewCell()
	c.Bg = bg
	return c
}

// Zerowidth returns the combining characters attached to this cell, or nil.
// The returned slice is owned by the cell.
func (c *Cell) Zerowidth() []rune {
	if c.extra == nil {
		return nil
	}
	return c.extra.zerowidth
}

// PushZerowidth attaches a combining character, allocating extra storage on first use.
func (c *Cell) PushZerowidth(r rune) {
	if c.extra == nil {
		c.extra = &cellExtra{}
	}
	c.extra.zerowidth = append(c.extra.zerowidth, r)
}

// DropExtra frees all dynamically allocated cell storage.
func (c *Cell) DropExtra() {
	c.extra = nil
}

// HasExtra returns true if extra storage is allocated, even if empty.
func (c *Cell) HasExtra() bool {
	return c.extra != nil
}

// HasFlag returns true if all bits of flag are set.
func (c *Cell) HasFlag(flag Flags) bool {
	return c.Flags.Contains(flag)
}

// SetFlag enables the specified flag without affecting others.
func (c *Cell) SetFlag(flag Flags) {
	c.Flags.Insert(flag)
}

// ClearFlag disables the specified flag without affecting others.
func (c *Cell) ClearFlag(flag Flags) {
	c.Flags.Remove(flag)
}

// IsWide returns true if this cell contains a character that occupies 2 columns.
func (c *Cell) IsWide() bool {
	return c.HasFlag(FlagWideChar)
}

// IsSpacer returns true if this cell only pads a wide character and has no glyph of its own.
func (c *Cell) IsSpacer() bool {
	return c.Flags.Intersects(FlagWideCharSpacer | FlagLeadingWideCharSpacer)
}

// Clone returns a deep copy of the cell. Extra storage is never shared between cells.
func (c *Cell) Clone() Cell {
	dup := *c
	if c.extra != nil {
		dup.extra = &cellExtra{zerowidth: slices.Clone(c.extra.zerowidth)}
	}
	return dup
}

// Equal compares two cells by value, including their extra storage.
// A cell with empty extra storage is not equal to one without any.
func (c *Cell) Equal(other *Cell) bool {
	if c.Glyph != other.Glyph || c.Fg != other.Fg || c.Bg != other.Bg || c.Flags != other.Flags {
		return false
	}
	if (c.extra == nil) != (other.extra == nil) {
		return false
	}
	return c.extra == nil || slices.Equal(c.extra.zerowidth, other.extra.zerowidth)
}

// IsEmpty returns true if the cell holds nothing worth keeping at the end of a line.
//
// Only attributes that are visible on a blank cell count: a bold or italic
// space is still empty.
func (c *Cell) IsEmpty() bool {
	return (c.Glyph == ' ' || c.Glyph == '\t') &&
		c.Bg == DefaultBackground &&
		c.Fg == DefaultForeground &&
		!c.Flags.Intersects(FlagInverse|
			FlagUnderline|
			FlagDoubleUnderline|
			FlagStrikeout|
			FlagWrapline|
			FlagWideCharSpacer|
			FlagLeadingWideCharSpacer) &&
		(c.extra == nil || len(c.extra.zerowidth) == 0)
}

// CellFlags returns the cell's attribute flags.
func (c *Cell) CellFlags() Flags {
	return c.Flags
}

// CellFlagsMut returns a pointer for in-place flag updates.
func (c *Cell) CellFlagsMut() *Flags {
	return &c.Flags
}

// Reset turns the cell into a default cell carrying the template's background.
// Extra storage is released.
func (c *Cell) Reset(template *Cell) {
	*c = NewCellWithBackground(template.Bg)
}

// Discriminant returns the background: cells only need a reset when it changes.
func (c *Cell) Discriminant() Color {
	return c.Bg
}

type cellRecord struct {
	Glyph string       `json:"glyph"`
	Fg    Color        `json:"fg"`
	Bg    Color        `json:"bg"`
	Flags Flags        `json:"flags"`
	Extra *extraRecord `json:"extra,omitempty"`
}

type extraRecord struct {
	Zerowidth string `json:"zerowidth"`
}

// MarshalJSON encodes the cell as {glyph, fg, bg, flags, extra}; extra is
// omitted when the cell has no extra storage.
// Invalid runes such as surrogates are rejected instead of being replaced.
func (c Cell) MarshalJSON() ([]byte, error) {
	if !utf8.ValidRune(c.Glyph) {
		return nil, fmt.Errorf("encode cell: invalid glyph %U", c.Glyph)
	}
	if c.extra != nil {
		for _, r := range c.extra.zerowidth {
			if !utf8.ValidRune(r) {
				return nil, fmt.Errorf("encode cell: invalid zerowidth %U", r)
			}
		}
	}

	rec := cellRecord{
		Glyph: string(c.Glyph),
		Fg:    c.Fg,
		Bg:    c.Bg,
		Flags: c.Flags,
	}
	if c.extra != nil {
		rec.Extra = &extraRecord{Zerowidth: string(c.extra.zerowidth)}
	}
	return json.Marshal(rec)
}

// UnmarshalJSON decodes the form produced by MarshalJSON.
// A missing extra field leaves the cell without extra storage.
func (c *Cell) UnmarshalJSON(data []byte) error {
	rec := cellRecord{
		Fg: DefaultForeground,
		Bg: DefaultBackground,
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("decode cell: %w", err)
	}

	glyph, size := utf8.DecodeRuneInString(rec.Glyph)
	if size == 0 || size != len(rec.Glyph) {
		return fmt.Errorf("decode cell: glyph %q is not a single character", rec.Glyph)
	}

	*c = Cell{
		Glyph: glyph,
		Fg:    rec.Fg,
		Bg:    rec.Bg,
		Flags: rec.Flags,
	}
	if rec.Extra != nil {
		c.extra = &cellExtra{}
		if rec.Extra.Zerowidth != "" {
			c.extra.zerowidth = []rune(rec.Extra.Zerowidth)
		}
	}
	return nil
}
