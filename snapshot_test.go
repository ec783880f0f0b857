package termcell

import (
	"encoding/json"
	"image/color"
	"strings"
	"testing"
)

func snapshotRows() []Row {
	red := NewPen()
	red.Fg = Named(Red)
	red.SetFlag(FlagBold)

	first := NewRow(10)
	col := writeString(first, 0, "Hi ", NewPen())
	writeString(first, col, "there", red)

	second := NewRow(6)
	writeString(second, 0, "中x", NewPen())
	second.SetWrapped(true)

	return []Row{first, second, NewRow(8)}
}

func TestSnapshot_Text(t *testing.T) {
	snap := NewSnapshot(snapshotRows(), SnapshotDetailText)

	if snap.Size.Rows != 3 {
		t.Errorf("Size.Rows = %d, want 3", snap.Size.Rows)
	}
	if snap.Size.Cols != 10 {
		t.Errorf("Size.Cols = %d, want 10", snap.Size.Cols)
	}
	if len(snap.Lines) != 3 {
		t.Fatalf("len(Lines) = %d, want 3", len(snap.Lines))
	}

	if snap.Lines[0].Text != "Hi there" {
		t.Errorf("Lines[0].Text = %q, want %q", snap.Lines[0].Text, "Hi there")
	}
	if snap.Lines[0].Length != 8 {
		t.Errorf("Lines[0].Length = %d, want 8", snap.Lines[0].Length)
	}
	if snap.Lines[0].Wrapped {
		t.Error("Lines[0] should not be wrapped")
	}

	// A wrapped line keeps its trailing blanks
	if snap.Lines[1].Text != "中x   " {
		t.Errorf("Lines[1].Text = %q, want %q", snap.Lines[1].Text, "中x   ")
	}
	if !snap.Lines[1].Wrapped || snap.Lines[1].Length != 6 {
		t.Errorf("Lines[1] Wrapped=%v Length=%d, want true 6", snap.Lines[1].Wrapped, snap.Lines[1].Length)
	}

	if snap.Lines[2].Text != "" || snap.Lines[2].Length != 0 {
		t.Errorf("Lines[2] = %+v, want empty", snap.Lines[2])
	}

	// Text mode should not have segments or cells
	if snap.Lines[0].Segments != nil {
		t.Error("Text mode should not have segments")
	}
	if snap.Lines[0].Cells != nil {
		t.Error("Text mode should not have cells")
	}
}

func TestSnapshot_Styled(t *testing.T) {
	snap := NewSnapshot(snapshotRows(), SnapshotDetailStyled)

	segs := snap.Lines[0].Segments
	if len(segs) != 2 {
		t.Fatalf("len(Segments) = %d, want 2", len(segs))
	}

	if segs[0].Text != "Hi " {
		t.Errorf("Segments[0].Text = %q, want %q", segs[0].Text, "Hi ")
	}
	if segs[0].Fg != "#e5e5e5" || segs[0].Bg != "#000000" {
		t.Errorf("Segments[0] colors = %s/%s, want #e5e5e5/#000000", segs[0].Fg, segs[0].Bg)
	}
	if segs[0].Attributes.Bold {
		t.Error("Segments[0] should not be bold")
	}

	if segs[1].Text != "there" {
		t.Errorf("Segments[1].Text = %q, want %q", segs[1].Text, "there")
	}
	if segs[1].Fg != "#cd3131" {
		t.Errorf("Segments[1].Fg = %s, want #cd3131", segs[1].Fg)
	}
	if !segs[1].Attributes.Bold {
		t.Error("Segments[1] should be bold")
	}

	// The spacer is skipped; the wide char and the rest share a style
	wrapped := snap.Lines[1].Segments
	if len(wrapped) != 1 || wrapped[0].Text != "中x   " {
		t.Errorf("Lines[1].Segments = %+v", wrapped)
	}

	if snap.Lines[2].Segments != nil {
		t.Errorf("empty line segments = %+v, want nil", snap.Lines[2].Segments)
	}
	if snap.Lines[0].Cells != nil {
		t.Error("Styled mode should not have cells")
	}
}

func TestSnapshot_Full(t *testing.T) {
	snap := NewSnapshot(snapshotRows(), SnapshotDetailFull)

	cells := snap.Lines[0].Cells
	if len(cells) != 10 {
		t.Fatalf("len(Cells) = %d, want 10", len(cells))
	}
	if cells[3].Char != "t" || cells[3].Fg != "#cd3131" || !cells[3].Attributes.Bold {
		t.Errorf("Cells[3] = %+v", cells[3])
	}
	if cells[9].Char != " " {
		t.Errorf("Cells[9].Char = %q, want space", cells[9].Char)
	}

	wide := snap.Lines[1].Cells
	if !wide[0].Wide || wide[0].Char != "中" {
		t.Errorf("Cells[0] = %+v, want wide char", wide[0])
	}
	if !wide[1].WideSpacer {
		t.Errorf("Cells[1] = %+v, want spacer", wide[1])
	}

	if len(snap.Lines[2].Cells) != 8 {
		t.Errorf("len(Lines[2].Cells) = %d, want 8", len(snap.Lines[2].Cells))
	}
}

func TestSnapshot_Palette(t *testing.T) {
	p := DefaultPalette()
	p.Colors[Red] = color.RGBA{255, 0, 0, 255}

	snap := NewSnapshot(snapshotRows(), SnapshotDetailStyled, WithPalette(p))

	if fg := snap.Lines[0].Segments[1].Fg; fg != "#ff0000" {
		t.Errorf("Fg = %s, want #ff0000", fg)
	}
}

func TestSnapshot_CombiningCharacters(t *testing.T) {
	row := NewRow(4)
	writeString(row, 0, "e\u0301", NewPen())

	snap := NewSnapshot([]Row{row}, SnapshotDetailFull)

	if got := snap.Lines[0].Cells[0].Char; got != "e\u0301" {
		t.Errorf("Char = %q, want %q", got, "e\u0301")
	}
}

func TestSnapshot_JSON(t *testing.T) {
	snap := NewSnapshot(snapshotRows(), SnapshotDetailStyled)

	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	s := string(data)
	for _, want := range []string{`"size":{"rows":3,"cols":10}`, `"text":"there"`, `"bold":true`, `"wrapped":true`} {
		if !strings.Contains(s, want) {
			t.Errorf("JSON missing %s: %s", want, s)
		}
	}

	var decoded Snapshot
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if decoded.Lines[0].Text != "Hi there" {
		t.Errorf("decoded Lines[0].Text = %q", decoded.Lines[0].Text)
	}
}
