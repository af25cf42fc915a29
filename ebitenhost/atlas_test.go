package ebitenhost

import (
	"image"
	"strings"
	"testing"

	"github.com/phanxgames/thicket"
)

func TestLoadAtlasHashFormat(t *testing.T) {
	data := []byte(`{"frames": {
		"widget/button_light": {"frame": {"x": 0, "y": 16, "w": 200, "h": 20}},
		"widget/panel_light":  {"frame": {"x": 0, "y": 0, "w": 16, "h": 16}}
	}}`)
	atlas, err := LoadAtlas(data, nil)
	if err != nil {
		t.Fatal(err)
	}
	if atlas.Len() != 2 {
		t.Fatalf("Len = %d", atlas.Len())
	}
	r, ok := atlas.Region("widget/button_light")
	if !ok || r != (Region{Page: 0, X: 0, Y: 16, Width: 200, Height: 20}) {
		t.Errorf("region = %+v, %v", r, ok)
	}
}

func TestLoadAtlasArrayFormat(t *testing.T) {
	data := []byte(`{"textures": [
		{"image": "a.png", "frames": {"a": {"frame": {"x": 1, "y": 2, "w": 3, "h": 4}}}},
		{"image": "b.png", "frames": {"b": {"frame": {"x": 5, "y": 6, "w": 7, "h": 8}}}}
	]}`)
	atlas, err := LoadAtlas(data, nil)
	if err != nil {
		t.Fatal(err)
	}
	if r, _ := atlas.Region("b"); r.Page != 1 || r.X != 5 {
		t.Errorf("b = %+v", r)
	}
	if _, ok := atlas.Region("missing"); ok {
		t.Error("missing region reported present")
	}
}

func TestLoadAtlasErrors(t *testing.T) {
	tests := []struct {
		name, data, want string
	}{
		{"invalid json", `{`, "failed to parse atlas JSON"},
		{"no frames", `{"meta": {}}`, "neither"},
		{"rotated", `{"frames": {"r": {"frame": {"w": 1, "h": 1}, "rotated": true}}}`, `"r" is rotated or trimmed`},
		{"trimmed", `{"textures": [{"frames": {"t": {"frame": {"w": 1, "h": 1}, "trimmed": true}}}]}`, "rotated or trimmed"},
		{"bad frames", `{"frames": []}`, "failed to parse atlas frames"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadAtlas([]byte(tt.data), nil)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestUVRect(t *testing.T) {
	r := Region{X: 10, Y: 20, Width: 200, Height: 20}
	tests := []struct {
		tex  thicket.Texture
		want image.Rectangle
	}{
		{thicket.NewTexture("t"), image.Rect(10, 20, 210, 40)},
		{thicket.Texture{ID: "t", U1: 0.1, V1: 0.2, U2: 0.2, V2: 1}, image.Rect(30, 24, 50, 40)},
		{thicket.Texture{ID: "t", U1: 0.5, U2: 0.5, V2: 1}, image.Rect(110, 20, 110, 40)},
	}
	for _, tt := range tests {
		if got := uvRect(r, tt.tex); got != tt.want {
			t.Errorf("uvRect(%+v) = %v, want %v", tt.tex, got, tt.want)
		}
	}
}
