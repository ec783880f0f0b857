package termcell

import "testing"

func TestFlagBitsAreStable(t *testing.T) {
	tests := []struct {
		flag Flags
		bits uint16
	}{
		{FlagInverse, 0x0001},
		{FlagBold, 0x0002},
		{FlagItalic, 0x0004},
		{FlagUnderline, 0x0008},
		{FlagWrapline, 0x0010},
		{FlagWideChar, 0x0020},
		{FlagWideCharSpacer, 0x0040},
		{FlagDim, 0x0080},
		{FlagHidden, 0x0100},
		{FlagStrikeout, 0x0200},
		{FlagLeadingWideCharSpacer, 0x0400},
		{FlagDoubleUnderline, 0x0800},
		{FlagBoldItalic, 0x0006},
		{FlagDimBold, 0x0082},
	}

	for _, tt := range tests {
		if uint16(tt.flag) != tt.bits {
			t.Errorf("%v = %#04x, want %#04x", tt.flag, uint16(tt.flag), tt.bits)
		}
	}
}

func TestFlagsContainsAndIntersects(t *testing.T) {
	f := FlagBold | FlagUnderline

	if !f.Contains(FlagBold) {
		t.Error("expected bold to be contained")
	}
	if f.Contains(FlagDimBold) {
		t.Error("dim|bold should not be contained when dim is unset")
	}
	if !f.Intersects(FlagDimBold) {
		t.Error("dim|bold should intersect bold")
	}
	if f.Intersects(FlagItalic | FlagHidden) {
		t.Error("unexpected intersection with italic|hidden")
	}
	if f.IsEmpty() {
		t.Error("expected non-empty flags")
	}
	if !Flags(0).IsEmpty() {
		t.Error("expected zero flags to be empty")
	}
}

func TestFlagsMutation(t *testing.T) {
	var f Flags

	f.Insert(FlagBold | FlagItalic)
	if f != FlagBoldItalic {
		t.Errorf("after Insert = %v, want %v", f, FlagBoldItalic)
	}

	f.Remove(FlagBold)
	if f != FlagItalic {
		t.Errorf("after Remove = %v, want %v", f, FlagItalic)
	}

	f.Toggle(FlagItalic | FlagHidden)
	if f != FlagHidden {
		t.Errorf("after Toggle = %v, want %v", f, FlagHidden)
	}

	f.Set(FlagStrikeout, true)
	f.Set(FlagHidden, false)
	if f != FlagStrikeout {
		t.Errorf("after Set = %v, want %v", f, FlagStrikeout)
	}
}

func TestFlagsSetOperations(t *testing.T) {
	a := FlagBold | FlagItalic
	b := FlagItalic | FlagDim

	if got := a.Union(b); got != FlagBold|FlagItalic|FlagDim {
		t.Errorf("Union = %v", got)
	}
	if got := a.Intersection(b); got != FlagItalic {
		t.Errorf("Intersection = %v", got)
	}
	if got := a.SymmetricDifference(b); got != FlagBold|FlagDim {
		t.Errorf("SymmetricDifference = %v", got)
	}
	if got := a.Difference(b); got != FlagBold {
		t.Errorf("Difference = %v", got)
	}
}

func TestFlagsString(t *testing.T) {
	tests := []struct {
		flags Flags
		want  string
	}{
		{0, "none"},
		{FlagBold, "bold"},
		{FlagItalic | FlagBold, "bold|italic"},
		{FlagInverse | FlagWrapline, "inverse|wrapline"},
		{Flags(0x1000), "0x1000"},
		{FlagDim | Flags(0x8000), "dim|0x8000"},
	}

	for _, tt := range tests {
		if got := tt.flags.String(); got != tt.want {
			t.Errorf("Flags(%#04x).String() = %q, want %q", uint16(tt.flags), got, tt.want)
		}
	}
}
