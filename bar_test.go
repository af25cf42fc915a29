package thicket

import "testing"

func TestBarFraction(t *testing.T) {
	g, root := newTestGUI(100, 100)
	props := IntProperties{30, 120}
	b := NewBar(0, 1, DirectionRight)
	root.Add(b, 0, 0, 40, 10)

	if b.Fraction() != 0 {
		t.Error("bar without a property delegate should be empty")
	}
	g.SetPropertyDelegate(props)
	assertNear(t, "fraction", b.Fraction(), 0.25)

	props.Set(0, 500)
	assertNear(t, "clamped fraction", b.Fraction(), 1)
	props.Set(1, 0)
	assertNear(t, "zero maximum", b.Fraction(), 0)

	constant := NewBar(0, -1, DirectionUp).SetMaxValue(1000)
	root.Add(constant, 0, 20, 10, 40)
	props.Set(0, 250)
	assertNear(t, "constant maximum", constant.Fraction(), 0.25)
}

func TestBarPaintDirections(t *testing.T) {
	tests := []struct {
		direction  Direction
		x, y, w, h int
	}{
		{DirectionRight, 0, 0, 10, 20},
		{DirectionLeft, 30, 0, 10, 20},
		{DirectionUp, 0, 15, 40, 5},
		{DirectionDown, 0, 0, 40, 5},
	}
	for _, tt := range tests {
		g, root := newTestGUI(100, 100)
		g.SetPropertyDelegate(IntProperties{1, 4})
		b := NewBar(0, 1, tt.direction)
		root.Add(b, 0, 0, 40, 20)

		d := NewDrawList(StyleLight, nil)
		b.Paint(d, 0, 0, -1, -1)
		if len(d.Commands) != 2 {
			t.Fatalf("direction %d: %d commands, want background and fill", tt.direction, len(d.Commands))
		}
		fill := d.Commands[1]
		if fill.X != tt.x || fill.Y != tt.y || fill.Width != tt.w || fill.Height != tt.h {
			t.Errorf("direction %d: fill (%d,%d) %dx%d, want (%d,%d) %dx%d", tt.direction,
				fill.X, fill.Y, fill.Width, fill.Height, tt.x, tt.y, tt.w, tt.h)
		}
	}
}

func TestBarTextureCropsToFill(t *testing.T) {
	g, root := newTestGUI(100, 100)
	g.SetPropertyDelegate(IntProperties{1, 2})
	b := NewBar(0, 1, DirectionLeft).SetTextures("bar_bg", "bar_fg")
	root.Add(b, 0, 0, 40, 10)

	d := NewDrawList(StyleLight, nil)
	b.Paint(d, 0, 0, -1, -1)
	fg := d.Commands[1]
	if fg.Texture.ID != "bar_fg" || fg.X != 20 || fg.Width != 20 {
		t.Fatalf("fill = %+v", fg)
	}
	assertNear(t, "U1", fg.Texture.U1, 0.5)
	assertNear(t, "U2", fg.Texture.U2, 1)
}
