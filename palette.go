package termcell

import "image/color"

// Palette resolves colors to RGBA for exports that need concrete values.
// Cells never store resolved colors; the palette is only consulted at export time.
type Palette struct {
	// Colors is the 256-color palette: 16 named colors (0-15), 216 color cube (16-231), 24 grayscale (232-255).
	Colors     [256]color.RGBA
	Foreground color.RGBA
	Background color.RGBA
	Cursor     color.RGBA
}

var ansiColors = [16]color.RGBA{
	// Standard colors (0-7)
	{0, 0, 0, 255},       // Black
	{205, 49, 49, 255},   // Red
	{13, 188, 121, 255},  // Green
	{229, 229, 16, 255},  // Yellow
	{36, 114, 200, 255},  // Blue
	{188, 63, 188, 255},  // Magenta
	{17, 168, 205, 255},  // Cyan
	{229, 229, 229, 255}, // White

	// Bright colors (8-15)
	{102, 102, 102, 255}, // Bright Black
	{241, 76, 76, 255},   // Bright Red
	{35, 209, 139, 255},  // Bright Green
	{245, 245, 67, 255},  // Bright Yellow
	{59, 142, 234, 255},  // Bright Blue
	{214, 112, 214, 255}, // Bright Magenta
	{41, 184, 219, 255},  // Bright Cyan
	{255, 255, 255, 255}, // Bright White
}

// DefaultPalette returns the standard palette with a light gray on black theme.
func DefaultPalette() *Palette {
	p := &Palette{
		Foreground: color.RGBA{229, 229, 229, 255},
		Background: color.RGBA{0, 0, 0, 255},
		Cursor:     color.RGBA{229, 229, 229, 255},
	}
	copy(p.Colors[:], ansiColors[:])

	// 216 color cube (16-231)
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p.Colors[i] = color.RGBA{
					R: uint8(r * 51),
					G: uint8(g * 51),
					B: uint8(b * 51),
					A: 255,
				}
				i++
			}
		}
	}

	// Grayscale (232-255)
	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		p.Colors[232+j] = color.RGBA{gray, gray, gray, 255}
	}

	return p
}

// Resolve converts c to RGBA. Named semantic colors use the palette's theme colors;
// unknown named colors fall back to the foreground or background depending on fg.
func (p *Palette) Resolve(c Color, fg bool) color.RGBA {
	switch c.Kind {
	case ColorIndexed:
		return p.Colors[c.Index()]
	case ColorSpec:
		rgb := c.RGB()
		return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
	}

	name := c.Named()
	switch {
	case name <= BrightWhite:
		return p.Colors[name]
	case name == Foreground:
		return p.Foreground
	case name == Background:
		return p.Background
	case name == Cursor:
		return p.Cursor
	case name >= DimBlack && name <= DimWhite:
		return dim(p.Colors[name-DimBlack])
	case name == BrightForeground:
		return p.Colors[BrightWhite]
	case name == DimForeground:
		return dim(p.Foreground)
	default:
		if fg {
			return p.Foreground
		}
		return p.Background
	}
}

func dim(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.66),
		G: uint8(float64(c.G) * 0.66),
		B: uint8(float64(c.B) * 0.66),
		A: 255,
	}
}
