package thicket

import "github.com/mattn/go-runewidth"

// Font is the interface for text measurement during layout and paint.
type Font interface {
	Width(s string) int
	LineHeight() int
}

// CellFont measures text on a fixed cell grid. East Asian wide runes take
// two cells and combining marks take none.
type CellFont struct {
	CellWidth int
	Height    int
}

// DefaultFont is the measurer used when no host font is configured.
var DefaultFont Font = CellFont{CellWidth: 6, Height: 9}

// Width returns the pixel width of s.
func (f CellFont) Width(s string) int {
	return runewidth.StringWidth(s) * f.CellWidth
}

// LineHeight returns the cell height.
func (f CellFont) LineHeight() int {
	return f.Height
}

// TruncateToWidth shortens s with a trailing "..." so it fits width pixels.
func TruncateToWidth(f Font, s string, width int) string {
	if f.Width(s) <= width {
		return s
	}
	if cf, ok := f.(CellFont); ok && cf.CellWidth > 0 {
		return runewidth.Truncate(s, width/cf.CellWidth, "...")
	}
	runes := []rune(s)
	for n := len(runes) - 1; n > 0; n-- {
		t := string(runes[:n]) + "..."
		if f.Width(t) <= width {
			return t
		}
	}
	return ""
}
