package thicket

// BackgroundPainter paints the background of a widget. left and top are the
// widget's absolute position in GUI pixels.
type BackgroundPainter interface {
	PaintBackground(ctx DrawContext, left, top int, w Widget)
}

// PainterFunc adapts a function to BackgroundPainter.
type PainterFunc func(ctx DrawContext, left, top int, w Widget)

// PaintBackground calls f.
func (f PainterFunc) PaintBackground(ctx DrawContext, left, top int, w Widget) {
	f(ctx, left, top, w)
}

// hasArea reports whether w can be painted at all.
func hasArea(w Widget) bool {
	b := w.base()
	return b.width > 0 && b.height > 0
}

// NewColorfulPainter paints a rounded panel in the given color.
func NewColorfulPainter(panel Color) BackgroundPainter {
	return PainterFunc(func(ctx DrawContext, left, top int, w Widget) {
		if !hasArea(w) {
			return
		}
		DrawGuiPanel(ctx, left, top, w.base().width, w.base().height, panel)
	})
}

// NewColorfulContrastPainter paints a rounded panel whose shadows and
// highlights differ from the panel color by contrast.
func NewColorfulContrastPainter(panel Color, contrast float64) BackgroundPainter {
	shadow := panel.Multiply(1 - contrast)
	hilight := panel.Multiply(1 + contrast)
	return PainterFunc(func(ctx DrawContext, left, top int, w Widget) {
		if !hasArea(w) {
			return
		}
		DrawGuiPanelColors(ctx, left, top, w.base().width, w.base().height, shadow, panel, hilight, ColorBlack)
	})
}

// PainterSlot draws a recessed slot one pixel larger than the widget.
var PainterSlot BackgroundPainter = PainterFunc(func(ctx DrawContext, left, top int, w Widget) {
	if !hasArea(w) {
		return
	}
	DrawBeveledPanel(ctx, left-1, top-1, w.base().width+2, w.base().height+2,
		ColorARGB(0xB8000000), ColorARGB(0x4C000000), ColorARGB(0xB8FFFFFF))
})

// NinePatchPainter paints a 16x16 nine-patch texture with 4 px borders over
// the widget bounds grown by its padding.
type NinePatchPainter struct {
	texture TextureID
	padding Insets
}

// NewNinePatchPainter creates a painter for texture with no padding.
func NewNinePatchPainter(texture TextureID) *NinePatchPainter {
	if texture == "" {
		fail(ErrInvalidArgument, "nine-patch texture is empty")
	}
	return &NinePatchPainter{texture: texture}
}

// Texture returns the painted texture.
func (p *NinePatchPainter) Texture() TextureID { return p.texture }

// Padding returns the current padding.
func (p *NinePatchPainter) Padding() Insets { return p.padding }

// SetPadding sets the same padding on every side.
func (p *NinePatchPainter) SetPadding(padding int) *NinePatchPainter {
	p.padding = UniformInsets(padding)
	return p
}

// SetPadding2 sets vertical (top, bottom) and horizontal (left, right) padding.
func (p *NinePatchPainter) SetPadding2(vertical, horizontal int) *NinePatchPainter {
	p.padding = Insets{Top: vertical, Left: horizontal, Bottom: vertical, Right: horizontal}
	return p
}

// SetPadding4 sets each side's padding.
func (p *NinePatchPainter) SetPadding4(top, left, bottom, right int) *NinePatchPainter {
	p.padding = Insets{Top: top, Left: left, Bottom: bottom, Right: right}
	return p
}

// SetTopPadding sets the top padding.
func (p *NinePatchPainter) SetTopPadding(v int) *NinePatchPainter { p.padding.Top = v; return p }

// SetLeftPadding sets the left padding.
func (p *NinePatchPainter) SetLeftPadding(v int) *NinePatchPainter { p.padding.Left = v; return p }

// SetBottomPadding sets the bottom padding.
func (p *NinePatchPainter) SetBottomPadding(v int) *NinePatchPainter { p.padding.Bottom = v; return p }

// SetRightPadding sets the right padding.
func (p *NinePatchPainter) SetRightPadding(v int) *NinePatchPainter { p.padding.Right = v; return p }

// PaintBackground implements BackgroundPainter.
func (p *NinePatchPainter) PaintBackground(ctx DrawContext, left, top int, w Widget) {
	if !hasArea(w) {
		return
	}
	b := w.base()
	BlitNineSliced(ctx, p.texture,
		left-p.padding.Left, top-p.padding.Top,
		b.width+p.padding.Width(), b.height+p.padding.Height(),
		UniformSlice(4, 4, 16, 16), ColorWhite)
}

// spritePainter nine-slices a registered sprite over the widget.
type spritePainter struct {
	texture TextureID
}

// NewSpritePainter creates a painter that draws a registered sprite using
// its slice data. Panics if texture is empty.
func NewSpritePainter(texture TextureID) BackgroundPainter {
	if texture == "" {
		fail(ErrInvalidArgument, "sprite texture is empty")
	}
	return spritePainter{texture: texture}
}

func (p spritePainter) PaintBackground(ctx DrawContext, left, top int, w Widget) {
	if !hasArea(w) {
		return
	}
	BlitSprite(ctx, p.texture, left, top, w.base().width, w.base().height, ColorWhite)
}

// styleVariants picks a painter by the style of the paint pass.
type styleVariants struct {
	painters [styleCount]BackgroundPainter
}

func (v *styleVariants) PaintBackground(ctx DrawContext, left, top int, w Widget) {
	s := ctx.Style()
	if s >= styleCount {
		s = StyleLight
	}
	v.painters[s].PaintBackground(ctx, left, top, w)
}

// variantCache holds one table per sprite prefix (no locking: thicket is
// single-threaded).
var variantCache = make(map[string]*styleVariants)

// StyleVariants returns a painter that draws the sprite prefix+style for
// the style of each paint pass. Tables are built once per prefix.
func StyleVariants(prefix string) BackgroundPainter {
	if v, ok := variantCache[prefix]; ok {
		return v
	}
	v := &styleVariants{}
	for _, s := range Styles {
		v.painters[s] = NewSpritePainter(StyledSprite(prefix, s))
	}
	variantCache[prefix] = v
	return v
}

// StyleVariantsNinePatch returns a style-switching painter built from
// nine-patch painters, each passed to configure once at construction.
func StyleVariantsNinePatch(prefix string, configure func(*NinePatchPainter)) BackgroundPainter {
	v := &styleVariants{}
	for _, s := range Styles {
		p := NewNinePatchPainter(StyledSprite(prefix, s))
		if configure != nil {
			configure(p)
		}
		v.painters[s] = p
	}
	return v
}

// PainterVanilla is the default root panel background.
var PainterVanilla = StyleVariants(SpritePanel)
