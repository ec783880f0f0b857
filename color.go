package termcell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned when a persisted color cannot be decoded.
var ErrInvalidColor = errors.New("invalid color")

// ColorKind selects how Color.Value is interpreted.
type ColorKind uint8

const (
	ColorNamed   ColorKind = iota // Value is a NamedColor
	ColorIndexed                  // Value is a 256-color palette index
	ColorSpec                     // Value is 0xRRGGBB
)

// NamedColor identifies a palette slot or a semantic color.
// The numbering matches go-ansicode so decoded attributes map directly.
type NamedColor uint16

const (
	Black NamedColor = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

const (
	Foreground NamedColor = 256 + iota // Default foreground text color
	Background                         // Default background color
	Cursor                             // Cursor color
	DimBlack
	DimRed
	DimGreen
	DimYellow
	DimBlue
	DimMagenta
	DimCyan
	DimWhite
	BrightForeground
	DimForeground
)

var namedColorNames = map[NamedColor]string{
	Black:            "black",
	Red:              "red",
	Green:            "green",
	Yellow:           "yellow",
	Blue:             "blue",
	Magenta:          "magenta",
	Cyan:             "cyan",
	White:            "white",
	BrightBlack:      "bright_black",
	BrightRed:        "bright_red",
	BrightGreen:      "bright_green",
	BrightYellow:     "bright_yellow",
	BrightBlue:       "bright_blue",
	BrightMagenta:    "bright_magenta",
	BrightCyan:       "bright_cyan",
	BrightWhite:      "bright_white",
	Foreground:       "foreground",
	Background:       "background",
	Cursor:           "cursor",
	DimBlack:         "dim_black",
	DimRed:           "dim_red",
	DimGreen:         "dim_green",
	DimYellow:        "dim_yellow",
	DimBlue:          "dim_blue",
	DimMagenta:       "dim_magenta",
	DimCyan:          "dim_cyan",
	DimWhite:         "dim_white",
	BrightForeground: "bright_foreground",
	DimForeground:    "dim_foreground",
}

var namedColorsByName = func() map[string]NamedColor {
	m := make(map[string]NamedColor, len(namedColorNames))
	for n, name := range namedColorNames {
		m[name] = n
	}
	return m
}()

// String returns the snake-case name used in the persisted form.
func (n NamedColor) String() string {
	if name, ok := namedColorNames[n]; ok {
		return name
	}
	return "named(" + strconv.Itoa(int(n)) + ")"
}

// Rgb is a direct 24-bit color.
type Rgb struct {
	R, G, B uint8
}

// Color is a terminal color: a named color, a palette index or a direct RGB value.
// It is a comparable value; two colors are equal iff kind and value match.
type Color struct {
	Kind  ColorKind
	Value uint32
}

var (
	// DefaultForeground is the color new cells are written with.
	DefaultForeground = Named(Foreground)
	// DefaultBackground is the color new and erased cells are filled with.
	DefaultBackground = Named(Background)
)

// Named returns a named color.
func Named(n NamedColor) Color {
	return Color{Kind: ColorNamed, Value: uint32(n)}
}

// Indexed returns a 256-color palette entry.
func Indexed(index uint8) Color {
	return Color{Kind: ColorIndexed, Value: uint32(index)}
}

// Spec returns a direct 24-bit color.
func Spec(rgb Rgb) Color {
	return Color{Kind: ColorSpec, Value: uint32(rgb.R)<<16 | uint32(rgb.G)<<8 | uint32(rgb.B)}
}

// Named returns the named color. Only meaningful when Kind is ColorNamed.
func (c Color) Named() NamedColor {
	return NamedColor(c.Value)
}

// Index returns the palette index. Only meaningful when Kind is ColorIndexed.
func (c Color) Index() uint8 {
	return uint8(c.Value)
}

// RGB returns the direct color. Only meaningful when Kind is ColorSpec.
func (c Color) RGB() Rgb {
	return Rgb{R: uint8(c.Value >> 16), G: uint8(c.Value >> 8), B: uint8(c.Value)}
}

// Discriminant makes Color its own reset discriminant.
func (c Color) Discriminant() Color {
	return c
}

// AppendSGRParams appends the SGR parameters that change the foreground (fg true)
// or background color from last to c. Nothing is appended when the colors are equal.
func (c Color) AppendSGRParams(dst []int, last Color, fg bool) []int {
	if c == last {
		return dst
	}

	base := 30
	if !fg {
		base = 40
	}

	switch c.Kind {
	case ColorIndexed:
		return append(dst, base+8, 5, int(c.Index()))
	case ColorSpec:
		rgb := c.RGB()
		return append(dst, base+8, 2, int(rgb.R), int(rgb.G), int(rgb.B))
	}

	n := c.Named()
	switch {
	case n <= White:
		return append(dst, base+int(n))
	case n <= BrightWhite:
		return append(dst, base+60+int(n-BrightBlack))
	case n >= DimBlack && n <= DimWhite:
		return append(dst, base+int(n-DimBlack))
	default:
		// Foreground, Background and the other semantic colors fall back to the default.
		return append(dst, base+9)
	}
}

// AppendEscape appends a complete SGR sequence changing the color from last to c.
// Zero bytes are appended when the colors are equal.
func (c Color) AppendEscape(buf []byte, last Color, fg bool) []byte {
	var stack [8]int
	return appendSGR(buf, c.AppendSGRParams(stack[:0], last, fg))
}

// String returns the persisted text form of the color.
func (c Color) String() string {
	text, _ := c.MarshalText()
	return string(text)
}

// MarshalText encodes named colors by name, indexed colors as decimal and
// direct colors as #rrggbb.
func (c Color) MarshalText() ([]byte, error) {
	switch c.Kind {
	case ColorNamed:
		name, ok := namedColorNames[c.Named()]
		if !ok {
			return nil, fmt.Errorf("marshal named color %d: %w", c.Value, ErrInvalidColor)
		}
		return []byte(name), nil
	case ColorIndexed:
		return strconv.AppendUint(nil, uint64(c.Index()), 10), nil
	case ColorSpec:
		rgb := c.RGB()
		return fmt.Appendf(nil, "#%02x%02x%02x", rgb.R, rgb.G, rgb.B), nil
	default:
		return nil, fmt.Errorf("marshal color kind %d: %w", c.Kind, ErrInvalidColor)
	}
}

// UnmarshalText decodes the form produced by MarshalText.
func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))

	if strings.HasPrefix(s, "#") {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil || len(s) != 7 {
			return fmt.Errorf("parse color %q: %w", s, ErrInvalidColor)
		}
		*c = Color{Kind: ColorSpec, Value: uint32(v)}
		return nil
	}

	if v, err := strconv.ParseUint(s, 10, 8); err == nil {
		*c = Indexed(uint8(v))
		return nil
	}

	if n, ok := namedColorsByName[s]; ok {
		*c = Named(n)
		return nil
	}

	return fmt.Errorf("parse color %q: %w", s, ErrInvalidColor)
}
