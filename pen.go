package termcell

import "github.com/danielgatis/go-ansicode"

// Pen holds the attributes applied to newly written characters.
// It is modified by SGR (Select Graphic Rendition) attributes decoded by go-ansicode.
type Pen struct {
	Cell
}

// NewPen creates a pen with default colors and no flags.
func NewPen() *Pen {
	return &Pen{Cell: NewCell()}
}

// Reset restores the default attributes (SGR 0).
func (p *Pen) Reset() {
	p.Cell = NewCell()
}

// Template returns the cell erase and write operations are based on.
func (p *Pen) Template() *Cell {
	return &p.Cell
}

// Apply updates the pen from a decoded SGR attribute.
// Curly, dotted and dashed underlines are stored as a plain underline;
// blink and underline color have no storage in a cell and are ignored.
func (p *Pen) Apply(attr ansicode.TerminalCharAttribute) {
	switch attr.Attr {
	case ansicode.CharAttributeReset:
		p.Reset()

	case ansicode.CharAttributeBold:
		p.SetFlag(FlagBold)

	case ansicode.CharAttributeDim:
		p.SetFlag(FlagDim)

	case ansicode.CharAttributeItalic:
		p.SetFlag(FlagItalic)

	case ansicode.CharAttributeUnderline,
		ansicode.CharAttributeCurlyUnderline,
		ansicode.CharAttributeDottedUnderline,
		ansicode.CharAttributeDashedUnderline:
		p.SetFlag(FlagUnderline)
		p.ClearFlag(FlagDoubleUnderline)

	case ansicode.CharAttributeDoubleUnderline:
		p.SetFlag(FlagDoubleUnderline)
		p.ClearFlag(FlagUnderline)

	case ansicode.CharAttributeReverse:
		p.SetFlag(FlagInverse)

	case ansicode.CharAttributeHidden:
		p.SetFlag(FlagHidden)

	case ansicode.CharAttributeStrike:
		p.SetFlag(FlagStrikeout)

	case ansicode.CharAttributeCancelBold:
		p.ClearFlag(FlagBold)

	case ansicode.CharAttributeCancelBoldDim:
		p.ClearFlag(FlagDimBold)

	case ansicode.CharAttributeCancelItalic:
		p.ClearFlag(FlagItalic)

	case ansicode.CharAttributeCancelUnderline:
		p.ClearFlag(FlagUnderline | FlagDoubleUnderline)

	case ansicode.CharAttributeCancelReverse:
		p.ClearFlag(FlagInverse)

	case ansicode.CharAttributeCancelHidden:
		p.ClearFlag(FlagHidden)

	case ansicode.CharAttributeCancelStrike:
		p.ClearFlag(FlagStrikeout)

	case ansicode.CharAttributeForeground:
		p.Fg = resolveAttrColor(attr, DefaultForeground)

	case ansicode.CharAttributeBackground:
		p.Bg = resolveAttrColor(attr, DefaultBackground)
	}
}

// resolveAttrColor converts the color carried by attr, or returns def when it carries none.
func resolveAttrColor(attr ansicode.TerminalCharAttribute, def Color) Color {
	if attr.RGBColor != nil {
		return Spec(Rgb{R: attr.RGBColor.R, G: attr.RGBColor.G, B: attr.RGBColor.B})
	}

	if attr.IndexedColor != nil {
		return Indexed(uint8(attr.IndexedColor.Index))
	}

	if attr.NamedColor != nil {
		return Named(NamedColor(*attr.NamedColor))
	}

	return def
}
