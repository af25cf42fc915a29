package ebitenhost

import (
	"bytes"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontSize is the pixel size of the default face.
const DefaultFontSize = 9

// Face is a TrueType face that implements thicket.Font, so layout measures
// text with the same metrics the canvas draws with.
type Face struct {
	face *text.GoTextFace
	lh   float64
}

// LoadFace loads a TrueType font from raw TTF/OTF data at the given size.
func LoadFace(ttfData []byte, size float64) (*Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("thicket: font size must be positive, got %v", size)
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("thicket: failed to parse TTF data: %w", err)
	}
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &Face{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}, nil
}

// DefaultFace returns the Go Regular face at size.
func DefaultFace(size float64) (*Face, error) {
	return LoadFace(goregular.TTF, size)
}

// Width implements thicket.Font.
func (f *Face) Width(s string) int {
	return int(math.Ceil(text.Advance(s, f.face)))
}

// LineHeight implements thicket.Font.
func (f *Face) LineHeight() int {
	return int(math.Ceil(f.lh))
}

// GoTextFace returns the underlying face for direct text/v2 rendering.
func (f *Face) GoTextFace() *text.GoTextFace {
	return f.face
}
