package ebitenhost

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/thicket"
)

// skinColors are the light-style base colors of the built-in sprites.
var skinColors = map[string]uint32{
	thicket.SpritePanel:               0xFFC6C6C6,
	thicket.SpriteButton:              0xFF6F6F6F,
	thicket.SpriteButtonDisabled:      0xFF2C2C2C,
	thicket.SpriteButtonHighlighted:   0xFF7E88BF,
	thicket.SpriteTabSelected:         0xFFC6C6C6,
	thicket.SpriteTabUnselected:       0xFF9A9A9A,
	thicket.SpriteTabFocus:            0xFFFFFFFF,
	thicket.SpriteScrollBarBackground: 0xFF8B8B8B,
	thicket.SpriteScrollBarThumb:      0xFFC6C6C6,
	thicket.SpriteScrollBarHovered:    0xFFE0E0E0,
	thicket.SpriteScrollBarPressed:    0xFFA8A8A8,
	thicket.SpriteSlider:              0xFF505050,
	thicket.SpriteSliderFocused:       0xFF606090,
	thicket.SpriteSliderHandle:        0xFFA0A0A0,
	thicket.SpriteSliderHandleHovered: 0xFFC8C8FF,
	thicket.SpriteToggleOn:            0xFF4CAF50,
	thicket.SpriteToggleOff:           0xFF8B8B8B,
	thicket.SpriteToggleFocus:         0xFFFFFFA0,
}

// skinColor returns the base color of a built-in sprite in style s. Dark
// style panels are darkened; other sprites keep their color.
func skinColor(prefix string, s thicket.Style) thicket.Color {
	argb, ok := skinColors[prefix]
	if !ok {
		argb = 0xFFFF00FF
	}
	c := thicket.ColorARGB(argb)
	if s.IsDark() && (prefix == thicket.SpritePanel || prefix == thicket.SpriteTabSelected ||
		prefix == thicket.SpriteTabUnselected || prefix == thicket.SpriteScrollBarBackground) {
		c = c.Multiply(0.35)
	}
	return c
}

// NewDefaultSkin returns an atlas with a flat beveled image for every
// built-in sprite in every style, sized from the sprite registry. It lets
// a GUI run without any image assets.
func NewDefaultSkin() *Atlas {
	atlas := NewAtlas()
	for prefix := range skinColors {
		for _, s := range thicket.Styles {
			id := thicket.StyledSprite(prefix, s)
			slices := thicket.LookupSprite(id)
			atlas.Add(id, bevelImage(slices.Width, slices.Height, skinColor(prefix, s)))
		}
	}
	return atlas
}

// bevelImage fills a w x h image with base and a one pixel bevel.
func bevelImage(w, h int, base thicket.Color) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(toRGBA(base))
	if w < 3 || h < 3 {
		return img
	}
	light := toRGBA(base.Multiply(1.4))
	dark := toRGBA(base.Multiply(0.6))
	sub := func(x0, y0, x1, y1 int) *ebiten.Image {
		return img.SubImage(image.Rect(x0, y0, x1, y1)).(*ebiten.Image)
	}
	sub(0, 0, w, 1).Fill(light)
	sub(0, 1, 1, h).Fill(light)
	sub(1, h-1, w, h).Fill(dark)
	sub(w-1, 1, w, h-1).Fill(dark)
	return img
}
