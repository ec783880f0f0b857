package termcell

import "strconv"

// maxSGRParams bounds the parameters one cell transition can produce:
// two direct colors (5 each), one intensity code and five toggles.
const maxSGRParams = 16

// toggles are the attributes with independent set/unset codes, in emission order.
var toggles = [...]struct {
	flag  Flags
	set   int
	unset int
}{
	{FlagItalic, 3, 23},
	{FlagUnderline, 4, 24},
	{FlagInverse, 7, 27},
	{FlagHidden, 8, 28},
	{FlagStrikeout, 9, 29},
}

// AppendSGRParams appends the SGR parameters that move the terminal from
// last's rendering state to c's: colors first, then attributes.
func (c *Cell) AppendSGRParams(dst []int, last *Cell) []int {
	dst = c.Fg.AppendSGRParams(dst, last.Fg, true)
	dst = c.Bg.AppendSGRParams(dst, last.Bg, false)

	if c.Flags == last.Flags {
		return dst
	}

	diff := c.Flags.SymmetricDifference(last.Flags)

	if diff.Intersects(FlagDimBold) {
		switch {
		case !c.Flags.Intersects(FlagDimBold):
			dst = append(dst, 22)
		case c.Flags.Contains(FlagBold):
			dst = append(dst, 1)
		default:
			dst = append(dst, 2)
		}
	}

	for _, t := range toggles {
		if !diff.Contains(t.flag) {
			continue
		}
		if c.Flags.Contains(t.flag) {
			dst = append(dst, t.set)
		} else {
			dst = append(dst, t.unset)
		}
	}

	return dst
}

// AppendEscape appends the shortest SGR sequence that moves the terminal from
// last's rendering state to c's. Nothing is appended if no change is needed.
//
// All codes are combined into a single CSI ... m sequence.
func (c *Cell) AppendEscape(buf []byte, last *Cell) []byte {
	var stack [maxSGRParams]int
	return appendSGR(buf, c.AppendSGRParams(stack[:0], last))
}

// Escape returns the sequence AppendEscape would append.
func (c *Cell) Escape(last *Cell) string {
	return string(c.AppendEscape(nil, last))
}

// appendSGR writes params as ESC [ p;p;... m. The introducer is only written
// when there is at least one parameter.
func appendSGR(buf []byte, params []int) []byte {
	if len(params) == 0 {
		return buf
	}

	buf = append(buf, "\x1b["...)
	for i, p := range params {
		if i > 0 {
			buf = append(buf, ';')
		}
		buf = strconv.AppendInt(buf, int64(p), 10)
	}
	return append(buf, 'm')
}
