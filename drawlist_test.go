package thicket

import "testing"

func TestDrawListSkipsDegenerateRects(t *testing.T) {
	d := NewDrawList(StyleLight, nil)
	d.Fill(5, 5, 5, 20, ColorBlack)
	d.Fill(5, 5, 20, 5, ColorBlack)
	d.DrawTexture(NewTexture("tex"), 0, 0, 0, 10, ColorWhite)
	d.DrawTexture(NewTexture("tex"), 0, 0, 10, -1, ColorWhite)
	d.DrawText("", 0, 0, ColorBlack, false)
	ColoredRect(d, 0, 0, -3, 4, ColorBlack)
	if len(d.Commands) != 0 {
		t.Errorf("recorded %d commands for zero-area draws", len(d.Commands))
	}
}

func TestDrawListFillNormalizesCorners(t *testing.T) {
	d := NewDrawList(StyleLight, nil)
	d.Fill(20, 30, 10, 5, ColorBlack)
	c := d.Commands[0]
	if c.X != 10 || c.Y != 5 || c.Width != 10 || c.Height != 25 {
		t.Errorf("fill = (%d,%d) %dx%d, want (10,5) 10x25", c.X, c.Y, c.Width, c.Height)
	}
}

func TestDrawListPopPoseWithoutPushPanics(t *testing.T) {
	d := NewDrawList(StyleLight, nil)
	expectPanicMessage(t, "PopPose", func() { d.PopPose() })
}

func TestDrawListPoseStack(t *testing.T) {
	d := NewDrawList(StyleLight, nil)
	d.PushPose()
	d.Translate(10, 20)
	d.Fill(0, 0, 4, 4, ColorBlack)
	d.PopPose()
	d.Fill(0, 0, 4, 4, ColorBlack)

	if d.Depth() != 0 {
		t.Errorf("Depth = %d after balanced push/pop", d.Depth())
	}
	x0, y0, _, _ := d.Commands[0].Bounds()
	assertNear(t, "translated x0", x0, 10)
	assertNear(t, "translated y0", y0, 20)
	x0, y0, _, _ = d.Commands[1].Bounds()
	assertNear(t, "restored x0", x0, 0)
	assertNear(t, "restored y0", y0, 0)
}

func TestDrawListRotatedBounds(t *testing.T) {
	d := NewDrawList(StyleLight, nil)
	d.Translate(0, 100)
	d.Rotate(270)
	d.Fill(0, 0, 100, 20, ColorBlack)
	x0, y0, x1, y1 := d.Commands[0].Bounds()
	assertNear(t, "x0", x0, 0)
	assertNear(t, "y0", y0, 0)
	assertNear(t, "x1", x1, 20)
	assertNear(t, "y1", y1, 100)
}

func TestDrawListTooltipsComeLast(t *testing.T) {
	d := NewDrawList(StyleLight, CellFont{CellWidth: 6, Height: 9})
	d.Tooltip([]string{"hello", "hi"}, 5, 5)
	d.Fill(0, 0, 10, 10, ColorBlack)
	d.Finish()

	if len(d.Commands) != 2 {
		t.Fatalf("commands = %d, want 2", len(d.Commands))
	}
	tip := d.Commands[1]
	if tip.Type != CommandTooltip {
		t.Fatalf("last command type = %d, want tooltip", tip.Type)
	}
	if tip.Width != 30 || tip.Height != 18 {
		t.Errorf("tooltip size = %dx%d, want 30x18", tip.Width, tip.Height)
	}
}

func TestDrawListResetReusesStorage(t *testing.T) {
	d := NewDrawList(StyleDark, nil)
	d.PushPose()
	d.Fill(0, 0, 1, 1, ColorBlack)
	d.Reset()
	if len(d.Commands) != 0 || d.Depth() != 0 {
		t.Errorf("after Reset: %d commands, depth %d", len(d.Commands), d.Depth())
	}
	if d.Style() != StyleDark {
		t.Errorf("Reset changed style to %v", d.Style())
	}
	if d.Font() != DefaultFont {
		t.Error("nil font should fall back to DefaultFont")
	}
}

func TestDrawStringAlignment(t *testing.T) {
	tests := []struct {
		align HorizontalAlignment
		wantX int
	}{
		{AlignLeft, 10},
		{AlignCenter, 10 + (40-12)/2},
		{AlignRight, 10 + 40 - 12},
	}
	for _, tt := range tests {
		d := NewDrawList(StyleLight, CellFont{CellWidth: 6, Height: 9})
		DrawString(d, "ab", tt.align, 10, 0, 40, ColorBlack, false)
		if got := d.Commands[0].X; got != tt.wantX {
			t.Errorf("align %d: x = %d, want %d", tt.align, got, tt.wantX)
		}
	}
}
