package termcell

import "unicode/utf8"

// RenderOption configures how rows are rendered to ANSI text.
type RenderOption func(*renderConfig)

type renderConfig struct {
	trim       bool
	separator  string
	finalReset bool
}

func defaultRenderConfig() renderConfig {
	return renderConfig{
		trim:       true,
		separator:  "\r\n",
		finalReset: true,
	}
}

// WithTrim controls whether each row stops at its line length (default true).
// Disabled, every column is emitted.
func WithTrim(trim bool) RenderOption {
	return func(c *renderConfig) {
		c.trim = trim
	}
}

// WithLineSeparator sets the bytes written between rows (default "\r\n").
func WithLineSeparator(sep string) RenderOption {
	return func(c *renderConfig) {
		c.separator = sep
	}
}

// WithFinalReset controls whether the output ends by returning to the default
// rendering state (default true).
func WithFinalReset(reset bool) RenderOption {
	return func(c *renderConfig) {
		c.finalReset = reset
	}
}

// AppendANSI appends rows as text with the SGR sequences needed to reproduce
// their colors and attributes. The terminal is assumed to start in the default
// rendering state; each cell only emits what changed since the previous one.
//
// Rows must not be mutated while they are rendered.
func AppendANSI(buf []byte, rows []Row, opts ...RenderOption) []byte {
	cfg := defaultRenderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	blank := NewCell()
	last := &blank

	for y, row := range rows {
		if y > 0 {
			buf = append(buf, cfg.separator...)
		}

		n := len(row)
		if cfg.trim {
			n = row.LineLength()
		}

		for x := range row[:n] {
			cell := &row[x]
			// The wide character already covered this column.
			if cell.IsSpacer() {
				continue
			}

			buf = cell.AppendEscape(buf, last)
			last = cell

			if cell.Glyph == 0 {
				buf = append(buf, ' ')
			} else {
				buf = utf8.AppendRune(buf, cell.Glyph)
			}
			for _, z := range cell.Zerowidth() {
				buf = utf8.AppendRune(buf, z)
			}
		}
	}

	if cfg.finalReset {
		buf = blank.AppendEscape(buf, last)
	}

	return buf
}

// RenderANSI returns rows rendered by AppendANSI.
func RenderANSI(rows []Row, opts ...RenderOption) string {
	return string(AppendANSI(nil, rows, opts...))
}

// AppendANSI appends the row alone, starting from the default rendering state.
func (r Row) AppendANSI(buf []byte, opts ...RenderOption) []byte {
	return AppendANSI(buf, []Row{r}, opts...)
}
