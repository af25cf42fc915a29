package thicket

// Bar is a progress bar filled from two properties of the GUI's property
// delegate: a current value and a maximum. It fills in its direction.
type Bar struct {
	BaseWidget
	field     int
	maxField  int
	maxValue  int
	direction Direction

	background TextureID
	bar        TextureID
	fillColor  Color
	backColor  Color
	label      string
}

// NewBar creates a bar reading property field, with maximum property
// maxField, filling toward direction. A negative maxField uses a constant
// maximum set with SetMaxValue.
func NewBar(field, maxField int, direction Direction) *Bar {
	b := &Bar{
		field:     field,
		maxField:  maxField,
		direction: direction,
		fillColor: ColorARGB(0xFF6BA53D),
		backColor: ColorARGB(0xFF373737),
	}
	b.self = b
	return b
}

func (b *Bar) CanResize() bool { return true }

// SetMaxValue sets the constant maximum used when maxField is negative.
func (b *Bar) SetMaxValue(limit int) *Bar {
	b.maxValue = limit
	return b
}

// SetTextures paints the bar with textures instead of flat colors. The bar
// texture is cropped to the filled part.
func (b *Bar) SetTextures(background, bar TextureID) *Bar {
	b.background = background
	b.bar = bar
	return b
}

// SetColors sets the flat fill and background colors.
func (b *Bar) SetColors(fill, background Color) *Bar {
	b.fillColor = fill
	b.backColor = background
	return b
}

// SetLabel sets text centered over the bar.
func (b *Bar) SetLabel(label string) *Bar {
	b.label = label
	return b
}

// Fraction returns the filled fraction in [0, 1]. It is 0 without a
// property delegate or with a non-positive maximum.
func (b *Bar) Fraction() float64 {
	g := b.GUI()
	if g == nil || g.PropertyDelegate() == nil {
		return 0
	}
	props := g.PropertyDelegate()
	limit := b.maxValue
	if b.maxField >= 0 {
		limit = props.Get(b.maxField)
	}
	if limit <= 0 {
		return 0
	}
	return min(max(float64(props.Get(b.field))/float64(limit), 0), 1)
}

func (b *Bar) Paint(ctx DrawContext, x, y, mouseX, mouseY int) {
	if b.background != "" {
		ctx.DrawTexture(NewTexture(b.background), x, y, b.width, b.height, ColorWhite)
	} else {
		ColoredRect(ctx, x, y, b.width, b.height, b.backColor)
	}

	f := b.Fraction()
	fx, fy, fw, fh := x, y, b.width, b.height
	u1, v1, u2, v2 := 0.0, 0.0, 1.0, 1.0
	switch b.direction {
	case DirectionRight:
		fw = int(f * float64(b.width))
		u2 = f
	case DirectionLeft:
		fw = int(f * float64(b.width))
		fx = x + b.width - fw
		u1 = 1 - f
	case DirectionUp:
		fh = int(f * float64(b.height))
		fy = y + b.height - fh
		v1 = 1 - f
	case DirectionDown:
		fh = int(f * float64(b.height))
		v2 = f
	}
	if b.bar != "" {
		ctx.DrawTexture(NewTexture(b.bar).Sub(u1, v1, u2, v2), fx, fy, fw, fh, ColorWhite)
	} else {
		ColoredRect(ctx, fx, fy, fw, fh, b.fillColor)
	}

	if b.label != "" {
		DrawString(ctx, b.label, AlignCenter, x, y+(b.height-ctx.Font().LineHeight())/2,
			b.width, ColorWhite, true)
	}
}
