package ebitenhost

import (
	"testing"

	"github.com/phanxgames/thicket"
)

func TestSkinColor(t *testing.T) {
	light := skinColor(thicket.SpritePanel, thicket.StyleLight)
	dark := skinColor(thicket.SpritePanel, thicket.StyleDark)
	if dark.R >= light.R {
		t.Errorf("dark panel %v should be darker than light %v", dark, light)
	}
	if b1, b2 := skinColor(thicket.SpriteButton, thicket.StyleLight), skinColor(thicket.SpriteButton, thicket.StyleDark); b1 != b2 {
		t.Errorf("button colors differ between styles: %v vs %v", b1, b2)
	}
	if got := skinColor("widget/unknown_", thicket.StyleLight); got != thicket.ColorARGB(0xFFFF00FF) {
		t.Errorf("unknown prefix = %v, want magenta", got)
	}
}
