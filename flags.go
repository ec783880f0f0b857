package termcell

import (
	"strconv"
	"strings"
)

// Flags is a bitmask of cell rendering attributes.
// Bit positions are part of the persisted cell format and must never be renumbered.
type Flags uint16

const (
	FlagInverse               Flags = 0b0000_0000_0000_0001
	FlagBold                  Flags = 0b0000_0000_0000_0010
	FlagItalic                Flags = 0b0000_0000_0000_0100
	FlagUnderline             Flags = 0b0000_0000_0000_1000
	FlagWrapline              Flags = 0b0000_0000_0001_0000
	FlagWideChar              Flags = 0b0000_0000_0010_0000
	FlagWideCharSpacer        Flags = 0b0000_0000_0100_0000
	FlagDim                   Flags = 0b0000_0000_1000_0000
	FlagHidden                Flags = 0b0000_0001_0000_0000
	FlagStrikeout             Flags = 0b0000_0010_0000_0000
	FlagLeadingWideCharSpacer Flags = 0b0000_0100_0000_0000
	FlagDoubleUnderline       Flags = 0b0000_1000_0000_0000
)

const (
	// FlagBoldItalic is kept for format compatibility; nothing in the encoder reads it.
	FlagBoldItalic = FlagBold | FlagItalic
	FlagDimBold    = FlagDim | FlagBold
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{FlagInverse, "inverse"},
	{FlagBold, "bold"},
	{FlagItalic, "italic"},
	{FlagUnderline, "underline"},
	{FlagWrapline, "wrapline"},
	{FlagWideChar, "wide_char"},
	{FlagWideCharSpacer, "wide_char_spacer"},
	{FlagDim, "dim"},
	{FlagHidden, "hidden"},
	{FlagStrikeout, "strikeout"},
	{FlagLeadingWideCharSpacer, "leading_wide_char_spacer"},
	{FlagDoubleUnderline, "double_underline"},
}

// Contains returns true if every bit of mask is set.
func (f Flags) Contains(mask Flags) bool {
	return f&mask == mask
}

// Intersects returns true if any bit of mask is set.
func (f Flags) Intersects(mask Flags) bool {
	return f&mask != 0
}

// IsEmpty returns true if no bit is set.
func (f Flags) IsEmpty() bool {
	return f == 0
}

// Insert sets the bits of mask without affecting others.
func (f *Flags) Insert(mask Flags) {
	*f |= mask
}

// Remove clears the bits of mask without affecting others.
func (f *Flags) Remove(mask Flags) {
	*f &^= mask
}

// Toggle flips the bits of mask.
func (f *Flags) Toggle(mask Flags) {
	*f ^= mask
}

// Set inserts mask when on is true and removes it otherwise.
func (f *Flags) Set(mask Flags, on bool) {
	if on {
		f.Insert(mask)
	} else {
		f.Remove(mask)
	}
}

// Union returns the bits set in either f or other.
func (f Flags) Union(other Flags) Flags {
	return f | other
}

// Intersection returns the bits set in both f and other.
func (f Flags) Intersection(other Flags) Flags {
	return f & other
}

// SymmetricDifference returns the bits set in exactly one of f and other.
func (f Flags) SymmetricDifference(other Flags) Flags {
	return f ^ other
}

// Difference returns the bits of f that are not set in other.
func (f Flags) Difference(other Flags) Flags {
	return f &^ other
}

// Discriminant makes Flags its own reset discriminant.
func (f Flags) Discriminant() Flags {
	return f
}

// String returns a human-readable representation such as "bold|italic".
// Bits without a name are rendered in hex.
func (f Flags) String() string {
	if f == 0 {
		return "none"
	}

	var parts []string
	rest := f
	for _, fn := range flagNames {
		if f.Contains(fn.flag) {
			parts = append(parts, fn.name)
			rest &^= fn.flag
		}
	}
	if rest != 0 {
		parts = append(parts, "0x"+strconv.FormatUint(uint64(rest), 16))
	}
	return strings.Join(parts, "|")
}
