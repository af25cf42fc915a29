package thicket

import "testing"

func TestSlices(t *testing.T) {
	tests := []struct {
		name          string
		target, total int
		want          []int
	}{
		{"exact fit", 8, 4, []int{4, 4}},
		{"single short tile", 3, 16, []int{3}},
		{"remainder spread", 10, 4, []int{3, 3, 4}},
		{"remainder of two", 11, 4, []int{3, 4, 4}},
		{"tile of one", 3, 1, []int{1, 1, 1}},
		{"zero target", 0, 4, nil},
		{"zero total", 5, 0, nil},
		{"negative total", 5, -2, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slices(tt.target, tt.total)
			if len(got) != len(tt.want) {
				t.Fatalf("Slices(%d, %d) = %v, want %v", tt.target, tt.total, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("Slices(%d, %d) = %v, want %v", tt.target, tt.total, got, tt.want)
				}
			}
		})
	}
}

func TestSlicesProperties(t *testing.T) {
	for target := 1; target <= 80; target++ {
		for total := 1; total <= 20; total++ {
			parts := Slices(target, total)
			wantN := (target + total - 1) / total
			if len(parts) != wantN {
				t.Fatalf("Slices(%d, %d): %d parts, want %d", target, total, len(parts), wantN)
			}
			sum, lo, hi := 0, parts[0], parts[0]
			for _, p := range parts {
				sum += p
				lo = min(lo, p)
				hi = max(hi, p)
			}
			if sum != target {
				t.Fatalf("Slices(%d, %d) sums to %d", target, total, sum)
			}
			if hi > total {
				t.Fatalf("Slices(%d, %d) has part %d longer than the tile", target, total, hi)
			}
			if hi-lo > 1 {
				t.Fatalf("Slices(%d, %d) = %v: parts differ by more than one", target, total, parts)
			}
		}
	}
}

// coveredArea sums the destination areas of texture commands.
func coveredArea(d *DrawList) int {
	area := 0
	for _, c := range d.Commands {
		if c.Type == CommandTexture {
			area += c.Width * c.Height
		}
	}
	return area
}

func TestBlitNineSlicedCases(t *testing.T) {
	panel := UniformSlice(4, 4, 16, 16)
	button := UniformSlice(20, 4, 200, 20)
	tests := []struct {
		name          string
		slice         NineSlice
		width, height int
		commands      int
	}{
		{"native size", panel, 16, 16, 1},
		{"stretched width", button, 100, 20, 3},
		{"stretched height", UniformSlice(4, 4, 16, 16), 16, 40, 6},
		{"general", panel, 40, 40, 36},
		{"borders clamped", panel, 6, 6, 4},
		{"zero width", panel, 0, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDrawList(StyleLight, nil)
			BlitNineSliced(d, "tex", 0, 0, tt.width, tt.height, tt.slice, ColorWhite)
			if got := d.Count(CommandTexture); got != tt.commands {
				t.Errorf("commands = %d, want %d", got, tt.commands)
			}
			if got, want := coveredArea(d), tt.width*tt.height; tt.commands > 0 && got != want {
				t.Errorf("covered area = %d, want %d", got, want)
			}
		})
	}
}

func TestBlitNineSlicedCornerUVs(t *testing.T) {
	d := NewDrawList(StyleLight, nil)
	BlitNineSliced(d, "tex", 10, 20, 40, 40, UniformSlice(4, 4, 16, 16), ColorWhite)
	c := d.Commands[0]
	if c.X != 10 || c.Y != 20 || c.Width != 4 || c.Height != 4 {
		t.Errorf("top-left corner at (%d,%d) %dx%d", c.X, c.Y, c.Width, c.Height)
	}
	assertNear(t, "U1", c.Texture.U1, 0)
	assertNear(t, "V1", c.Texture.V1, 0)
	assertNear(t, "U2", c.Texture.U2, 0.25)
	assertNear(t, "V2", c.Texture.V2, 0.25)
}

func TestBlitRepeatingCentersPartialTiles(t *testing.T) {
	d := NewDrawList(StyleLight, nil)
	BlitRepeating(d, "tex", 0, 0, 10, 4, 4, 0, 8, 4, 16, 16, ColorWhite)
	if len(d.Commands) != 2 {
		t.Fatalf("commands = %d, want 2", len(d.Commands))
	}
	c := d.Commands[0]
	if c.Width != 5 {
		t.Errorf("tile width = %d, want 5", c.Width)
	}
	// A 5 px tile out of an 8 px source starts 1 px in.
	assertNear(t, "U1", c.Texture.U1, 5.0/16)
	if d.Commands[1].X != 5 {
		t.Errorf("second tile x = %d, want 5", d.Commands[1].X)
	}
}

func TestBlitSpriteUsesRegistry(t *testing.T) {
	RegisterSprite("test/sprite", UniformSlice(0, 0, 8, 8))
	d := NewDrawList(StyleLight, nil)
	BlitSprite(d, "test/sprite", 0, 0, 8, 8, ColorWhite)
	if len(d.Commands) != 1 {
		t.Errorf("native-size registered sprite: %d commands, want 1", len(d.Commands))
	}
}
