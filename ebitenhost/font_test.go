package ebitenhost

import (
	"testing"

	"github.com/phanxgames/thicket"
)

func TestDefaultFaceMetrics(t *testing.T) {
	f, err := DefaultFace(DefaultFontSize)
	if err != nil {
		t.Fatal(err)
	}
	var _ thicket.Font = f
	if f.Width("") != 0 {
		t.Errorf("Width(\"\") = %d", f.Width(""))
	}
	short, long := f.Width("i"), f.Width("iiiiiiiiii")
	if short <= 0 || long <= short {
		t.Errorf("widths %d and %d should grow with the text", short, long)
	}
	if f.LineHeight() < DefaultFontSize {
		t.Errorf("LineHeight = %d, want at least the font size", f.LineHeight())
	}
	if f.GoTextFace() == nil {
		t.Error("GoTextFace is nil")
	}
}

func TestLoadFaceErrors(t *testing.T) {
	if _, err := LoadFace([]byte("not a font"), 12); err == nil {
		t.Error("expected an error for invalid font data")
	}
	if _, err := DefaultFace(0); err == nil {
		t.Error("expected an error for a zero size")
	}
}

func TestFaceTruncates(t *testing.T) {
	f, err := DefaultFace(DefaultFontSize)
	if err != nil {
		t.Fatal(err)
	}
	s := thicket.TruncateToWidth(f, "a rather long tab title", f.Width("a rather"))
	if f.Width(s) > f.Width("a rather") || s[len(s)-3:] != "..." {
		t.Errorf("TruncateToWidth = %q", s)
	}
}
