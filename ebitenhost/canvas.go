package ebitenhost

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/phanxgames/thicket"
)

// Tooltip box geometry in GUI pixels.
const (
	tooltipOffsetX = 12
	tooltipOffsetY = -12
	tooltipPadding = 3
)

// Canvas replays recorded draw lists onto an ebiten image. Textures come
// from the atlas and text from the face.
type Canvas struct {
	atlas *Atlas
	face  *Face
	op    ebiten.DrawImageOptions
	tops  text.DrawOptions
}

// NewCanvas creates a canvas. A nil atlas draws every texture as the
// magenta placeholder; a nil face skips text.
func NewCanvas(atlas *Atlas, face *Face) *Canvas {
	if atlas == nil {
		atlas = NewAtlas()
	}
	return &Canvas{atlas: atlas, face: face}
}

// Atlas returns the texture source.
func (c *Canvas) Atlas() *Atlas { return c.atlas }

// whitePixel is a lazily-initialized 1x1 white image for solid fills.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// Submit draws every command of list onto target in order. Tooltips are
// kept inside the target bounds.
func (c *Canvas) Submit(target *ebiten.Image, list *thicket.DrawList) {
	for i := range list.Commands {
		cmd := &list.Commands[i]
		switch cmd.Type {
		case thicket.CommandFill:
			c.fill(target, cmd.Transform, cmd.X, cmd.Y, cmd.Width, cmd.Height, cmd.Color)
		case thicket.CommandTexture:
			c.texture(target, cmd)
		case thicket.CommandText:
			if cmd.Shadow {
				c.text(target, cmd.Transform, cmd.Text, cmd.X+1, cmd.Y+1, shadowColor(cmd.Color))
			}
			c.text(target, cmd.Transform, cmd.Text, cmd.X, cmd.Y, cmd.Color)
		case thicket.CommandTooltip:
			c.tooltip(target, cmd)
		}
	}
}

// affineGeoM converts an [a, b, c, d, tx, ty] matrix into an ebiten.GeoM.
func affineGeoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// colorScale returns the premultiplied color scale for a straight-alpha
// color.
func colorScale(col thicket.Color) ebiten.ColorScale {
	var cs ebiten.ColorScale
	a := float32(col.A)
	cs.Scale(float32(col.R)*a, float32(col.G)*a, float32(col.B)*a, a)
	return cs
}

// toRGBA converts a straight-alpha color for image/color consumers.
func toRGBA(col thicket.Color) color.NRGBA {
	return color.NRGBA{
		R: uint8(col.R*255 + 0.5),
		G: uint8(col.G*255 + 0.5),
		B: uint8(col.B*255 + 0.5),
		A: uint8(col.A*255 + 0.5),
	}
}

// shadowColor darkens text colors for the drop shadow.
func shadowColor(col thicket.Color) thicket.Color {
	return col.Multiply(0.25)
}

func (c *Canvas) fill(target *ebiten.Image, m [6]float64, x, y, w, h int, col thicket.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	c.op.GeoM.Reset()
	c.op.GeoM.Scale(float64(w), float64(h))
	c.op.GeoM.Translate(float64(x), float64(y))
	c.op.GeoM.Concat(affineGeoM(m))
	c.op.ColorScale = colorScale(col)
	target.DrawImage(ensureWhitePixel(), &c.op)
}

func (c *Canvas) texture(target *ebiten.Image, cmd *thicket.DrawCommand) {
	img := c.atlas.Image(cmd.Texture)
	if img == nil {
		return
	}
	b := img.Bounds()
	c.op.GeoM.Reset()
	c.op.GeoM.Scale(float64(cmd.Width)/float64(b.Dx()), float64(cmd.Height)/float64(b.Dy()))
	c.op.GeoM.Translate(float64(cmd.X), float64(cmd.Y))
	c.op.GeoM.Concat(affineGeoM(cmd.Transform))
	c.op.ColorScale = colorScale(cmd.Color)
	target.DrawImage(img, &c.op)
}

func (c *Canvas) text(target *ebiten.Image, m [6]float64, s string, x, y int, col thicket.Color) {
	if c.face == nil || s == "" {
		return
	}
	c.tops.GeoM.Reset()
	c.tops.GeoM.Translate(float64(x), float64(y))
	c.tops.GeoM.Concat(affineGeoM(m))
	c.tops.ColorScale = colorScale(col)
	text.Draw(target, s, c.face.GoTextFace(), &c.tops)
}

func (c *Canvas) tooltip(target *ebiten.Image, cmd *thicket.DrawCommand) {
	b := target.Bounds()
	x, y, w, h := tooltipBox(cmd, b.Dx(), b.Dy())
	m := cmd.Transform

	c.fill(target, m, x, y, w, h, thicket.TooltipBackgroundColor)
	c.fill(target, m, x+1, y+1, w-2, 1, thicket.TooltipBorderColor)
	c.fill(target, m, x+1, y+h-2, w-2, 1, thicket.TooltipBorderColor)
	c.fill(target, m, x+1, y+2, 1, h-4, thicket.TooltipBorderColor)
	c.fill(target, m, x+w-2, y+2, 1, h-4, thicket.TooltipBorderColor)

	lh := 0
	if len(cmd.Lines) > 0 {
		lh = cmd.Height / len(cmd.Lines)
	}
	for i, line := range cmd.Lines {
		c.text(target, m, line, x+tooltipPadding, y+tooltipPadding+i*lh, thicket.TooltipTextColor)
	}
}

// tooltipBox places the tooltip box up and to the right of the cursor,
// keeping it inside a screen of the given size.
func tooltipBox(cmd *thicket.DrawCommand, screenW, screenH int) (x, y, w, h int) {
	w = cmd.Width + 2*tooltipPadding
	h = cmd.Height + 2*tooltipPadding
	x = cmd.X + tooltipOffsetX
	y = cmd.Y + tooltipOffsetY
	if x+w > screenW {
		x = cmd.X - tooltipOffsetX - w
	}
	if y+h > screenH {
		y = screenH - h
	}
	return max(x, 0), max(y, 0), w, h
}
