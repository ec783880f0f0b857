// Package termcell provides the cell-level data model of a terminal screen buffer
// and a minimal-diff SGR encoder for re-emitting it as escape sequences.
//
// It is the part of a terminal emulator that sits below the parser and the grid:
// the parser mutates cells, the grid stores rows of them, and exporters walk the
// rows to redraw or serialize the screen.
//
// # Quick Start
//
// Write styled text into a row and render it back to ANSI:
//
//	pen := termcell.NewPen()
//	row := termcell.NewRow(80)
//
//	pen.Apply(ansicode.TerminalCharAttribute{Attr: ansicode.CharAttributeBold})
//	col := 0
//	for _, r := range "Hello" {
//	    col = row.Write(col, r, pen)
//	}
//
//	fmt.Printf("%q\n", termcell.RenderANSI([]termcell.Row{row}))
//	// "\x1b[1mHello\x1b[22m"
//
// # Architecture
//
// The package is organized around these core types:
//
//   - [Cell]: A glyph with colors, [Flags] and optional combining characters
//   - [Color]: A named, indexed or direct RGB color
//   - [Row]: A fixed-width line of cells
//   - [Pen]: The attributes applied to newly written characters
//
// # Cells and Attributes
//
// Each cell stores a character with styling information:
//
//	cell := row.Cell(col)
//	if cell != nil {
//	    fmt.Printf("Char: %c\n", cell.Glyph)
//	    fmt.Printf("Bold: %v\n", cell.HasFlag(termcell.FlagBold))
//	    fmt.Printf("FG: %v\n", cell.Fg)
//	    fmt.Printf("BG: %v\n", cell.Bg)
//	}
//
// Combining characters are rare, so they live in storage that is only allocated
// when [Cell.PushZerowidth] is first called. Call [Cell.DropExtra] to release it.
//
// Cells are reused in place. [Cell.Reset] turns a cell into a blank carrying the
// template's background, which is how erase operations fill the screen.
//
// # Generic Rows
//
// [GridCell] is the contract a cell type must satisfy for generic row algorithms
// such as [LineLength]. [ResetDiscriminant] reports which part of a value decides
// whether a reset is needed; for cells it is the background color.
//
//	n := termcell.LineLength(cells) // trailing blank cells are not counted
//
// A row whose last cell carries [FlagWrapline] always uses its full width.
//
// # Escape Encoding
//
// [Cell.AppendEscape] appends the shortest SGR sequence that moves the terminal
// from the previously emitted cell's state to the next one. When nothing changed
// no bytes are written:
//
//	buf = cell.AppendEscape(buf, &previous)
//
// Colors come first, then intensity (1, 2 or 22), then italic, underline,
// inverse, hidden and strikeout, all in one sequence.
//
// # Snapshots
//
// Rows can be captured as JSON-friendly structures:
//
//	snap := termcell.NewSnapshot(rows, termcell.SnapshotDetailStyled)
//	data, _ := json.Marshal(snap)
//
// Cells themselves encode to {glyph, fg, bg, flags, extra}; extra is omitted
// when a cell has no combining characters.
//
// # Thread Safety
//
// Nothing in this package is synchronized. Rows must not be mutated while they
// are being rendered or captured.
package termcell
