package termcell

import (
	"fmt"
	"image/color"
)

// SnapshotDetail specifies the level of detail in a snapshot.
type SnapshotDetail string

const (
	// SnapshotDetailText returns plain text only.
	SnapshotDetailText SnapshotDetail = "text"
	// SnapshotDetailStyled returns text with style segments per line.
	SnapshotDetailStyled SnapshotDetail = "styled"
	// SnapshotDetailFull returns full cell-by-cell data.
	SnapshotDetailFull SnapshotDetail = "full"
)

// Snapshot represents a capture of a set of rows.
type Snapshot struct {
	Size  SnapshotSize   `json:"size"`
	Lines []SnapshotLine `json:"lines"`
}

// SnapshotSize holds the captured dimensions. Cols is the widest row.
type SnapshotSize struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// SnapshotLine represents a single line in the snapshot.
type SnapshotLine struct {
	Text     string            `json:"text"`
	Length   int               `json:"length"`
	Wrapped  bool              `json:"wrapped,omitempty"`
	Segments []SnapshotSegment `json:"segments,omitempty"`
	Cells    []SnapshotCell    `json:"cells,omitempty"`
}

// SnapshotSegment represents a styled text segment within a line.
type SnapshotSegment struct {
	Text       string        `json:"text"`
	Fg         string        `json:"fg,omitempty"`
	Bg         string        `json:"bg,omitempty"`
	Attributes SnapshotAttrs `json:"attrs,omitempty"`
}

// SnapshotCell represents a single cell with full attributes.
type SnapshotCell struct {
	Char       string        `json:"char"`
	Fg         string        `json:"fg"`
	Bg         string        `json:"bg"`
	Attributes SnapshotAttrs `json:"attrs,omitempty"`
	Wide       bool          `json:"wide,omitempty"`
	WideSpacer bool          `json:"wide_spacer,omitempty"`
}

// SnapshotAttrs holds text formatting attributes.
type SnapshotAttrs struct {
	Bold            bool `json:"bold,omitempty"`
	Dim             bool `json:"dim,omitempty"`
	Italic          bool `json:"italic,omitempty"`
	Underline       bool `json:"underline,omitempty"`
	DoubleUnderline bool `json:"double_underline,omitempty"`
	Reverse         bool `json:"reverse,omitempty"`
	Hidden          bool `json:"hidden,omitempty"`
	Strikethrough   bool `json:"strikethrough,omitempty"`
}

// SnapshotOption configures snapshot creation.
type SnapshotOption func(*snapshotConfig)

type snapshotConfig struct {
	palette *Palette
}

// WithPalette sets the palette used to resolve colors to hex strings.
// Defaults to DefaultPalette.
func WithPalette(p *Palette) SnapshotOption {
	return func(c *snapshotConfig) {
		c.palette = p
	}
}

// NewSnapshot captures rows at the requested level of detail.
// The detail parameter controls how much information is included.
func NewSnapshot(rows []Row, detail SnapshotDetail, opts ...SnapshotOption) *Snapshot {
	cfg := snapshotConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.palette == nil {
		cfg.palette = DefaultPalette()
	}

	snap := &Snapshot{
		Size:  SnapshotSize{Rows: len(rows)},
		Lines: make([]SnapshotLine, len(rows)),
	}

	for i, row := range rows {
		snap.Size.Cols = max(snap.Size.Cols, len(row))
		snap.Lines[i] = snapshotLine(row, detail, cfg.palette)
	}

	return snap
}

// snapshotLine creates a snapshot of a single line.
func snapshotLine(row Row, detail SnapshotDetail, palette *Palette) SnapshotLine {
	line := SnapshotLine{
		Text:    row.Text(),
		Length:  row.LineLength(),
		Wrapped: row.IsWrapped(),
	}

	switch detail {
	case SnapshotDetailText:
		// Just text, already set

	case SnapshotDetailStyled:
		line.Segments = rowToSegments(row[:line.Length], palette)

	case SnapshotDetailFull:
		line.Cells = rowToCells(row, palette)
	}

	return line
}

// rowToSegments converts cells to styled segments (runs of same style).
func rowToSegments(cells []Cell, palette *Palette) []SnapshotSegment {
	var segments []SnapshotSegment
	var current *SnapshotSegment
	var currentChars []rune

	for i := range cells {
		cell := &cells[i]
		if cell.IsSpacer() {
			continue
		}

		fg := colorToHex(palette.Resolve(cell.Fg, true))
		bg := colorToHex(palette.Resolve(cell.Bg, false))
		attrs := cellAttrsToSnapshot(cell)

		// Check if we need to start a new segment
		if current == nil || current.Fg != fg || current.Bg != bg || current.Attributes != attrs {
			if current != nil && len(currentChars) > 0 {
				current.Text = string(currentChars)
				segments = append(segments, *current)
			}

			current = &SnapshotSegment{
				Fg:         fg,
				Bg:         bg,
				Attributes: attrs,
			}
			currentChars = nil
		}

		currentChars = appendGlyph(currentChars, cell)
	}

	// Don't forget the last segment
	if current != nil && len(currentChars) > 0 {
		current.Text = string(currentChars)
		segments = append(segments, *current)
	}

	return segments
}

// rowToCells converts a row to full cell data.
func rowToCells(row Row, palette *Palette) []SnapshotCell {
	cells := make([]SnapshotCell, 0, len(row))

	for i := range row {
		cell := &row[i]
		cells = append(cells, SnapshotCell{
			Char:       string(appendGlyph(nil, cell)),
			Fg:         colorToHex(palette.Resolve(cell.Fg, true)),
			Bg:         colorToHex(palette.Resolve(cell.Bg, false)),
			Attributes: cellAttrsToSnapshot(cell),
			Wide:       cell.IsWide(),
			WideSpacer: cell.IsSpacer(),
		})
	}

	return cells
}

// appendGlyph appends the cell's glyph followed by its combining characters.
func appendGlyph(dst []rune, cell *Cell) []rune {
	if cell.Glyph == 0 {
		dst = append(dst, ' ')
	} else {
		dst = append(dst, cell.Glyph)
	}
	return append(dst, cell.Zerowidth()...)
}

// colorToHex converts a resolved color to a hex string.
func colorToHex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// cellAttrsToSnapshot extracts cell attributes.
func cellAttrsToSnapshot(cell *Cell) SnapshotAttrs {
	return SnapshotAttrs{
		Bold:            cell.HasFlag(FlagBold),
		Dim:             cell.HasFlag(FlagDim),
		Italic:          cell.HasFlag(FlagItalic),
		Underline:       cell.HasFlag(FlagUnderline),
		DoubleUnderline: cell.HasFlag(FlagDoubleUnderline),
		Reverse:         cell.HasFlag(FlagInverse),
		Hidden:          cell.HasFlag(FlagHidden),
		Strikethrough:   cell.HasFlag(FlagStrikeout),
	}
}
