package ebitenhost

import (
	"math"
	"testing"

	"github.com/phanxgames/thicket"
)

func TestAffineGeoMMatchesTransformPoint(t *testing.T) {
	d := thicket.NewDrawList(thicket.StyleLight, nil)
	d.Translate(30, 40)
	d.Rotate(270)
	d.Fill(0, 0, 10, 5, thicket.ColorWhite)
	m := d.Commands[0].Transform

	g := affineGeoM(m)
	for _, p := range [][2]float64{{0, 0}, {10, 0}, {3, 7}} {
		gx, gy := g.Apply(p[0], p[1])
		wx, wy := thicket.TransformPoint(m, p[0], p[1])
		if math.Abs(gx-wx) > 1e-9 || math.Abs(gy-wy) > 1e-9 {
			t.Errorf("point %v: geom (%v,%v), want (%v,%v)", p, gx, gy, wx, wy)
		}
	}
}

func TestColorScalePremultiplies(t *testing.T) {
	cs := colorScale(thicket.Color{R: 1, G: 0.5, B: 0, A: 0.5})
	if cs.R() != 0.5 || cs.G() != 0.25 || cs.B() != 0 || cs.A() != 0.5 {
		t.Errorf("color scale = (%v, %v, %v, %v)", cs.R(), cs.G(), cs.B(), cs.A())
	}
}

func TestToRGBA(t *testing.T) {
	c := toRGBA(thicket.ColorARGB(0x80FF4000))
	if c.R != 255 || c.G != 64 || c.B != 0 || c.A != 128 {
		t.Errorf("toRGBA = %+v", c)
	}
}

func TestShadowColorKeepsAlpha(t *testing.T) {
	s := shadowColor(thicket.Color{R: 1, G: 0.8, B: 0.4, A: 0.7})
	if s.R != 0.25 || s.A != 0.7 {
		t.Errorf("shadow = %+v", s)
	}
}

func TestTooltipBox(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int
		want       [4]int
	}{
		{"room to the right", 20, 40, 30, 9, [4]int{32, 28, 36, 15}},
		{"flips left at the right edge", 180, 40, 30, 9, [4]int{132, 28, 36, 15}},
		{"clamped to the bottom", 20, 160, 30, 9, [4]int{32, 145, 36, 15}},
		{"clamped to the top", 20, 2, 30, 9, [4]int{32, 0, 36, 15}},
	}
	for _, tt := range tests {
		cmd := &thicket.DrawCommand{Type: thicket.CommandTooltip, X: tt.x, Y: tt.y, Width: tt.w, Height: tt.h}
		x, y, w, h := tooltipBox(cmd, 200, 160)
		if got := [4]int{x, y, w, h}; got != tt.want {
			t.Errorf("%s: box = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestNewCanvasDefaults(t *testing.T) {
	c := NewCanvas(nil, nil)
	if c.Atlas() == nil || c.Atlas().Len() != 0 {
		t.Error("nil atlas should become an empty atlas")
	}
}
