package thicket

// CommandType identifies the kind of draw command.
type CommandType uint8

const (
	CommandFill    CommandType = iota // solid rectangle
	CommandTexture                    // textured rectangle
	CommandText                       // single line of text
	CommandTooltip                    // tooltip overlay, drawn last
)

// DrawCommand is a single draw instruction recorded by a DrawList.
// X, Y, Width and Height are in the local space given by Transform.
type DrawCommand struct {
	Type      CommandType
	Transform [6]float64
	X, Y      int
	Width     int
	Height    int
	Texture   Texture
	Color     Color
	Text      string
	Shadow    bool
	Lines     []string
}

// Bounds returns the screen-space axis-aligned bounds of the command's
// destination rectangle.
func (c *DrawCommand) Bounds() (x0, y0, x1, y1 float64) {
	lx := [4]float64{float64(c.X), float64(c.X + c.Width), float64(c.X), float64(c.X + c.Width)}
	ly := [4]float64{float64(c.Y), float64(c.Y), float64(c.Y + c.Height), float64(c.Y + c.Height)}
	for i := 0; i < 4; i++ {
		sx, sy := transformPoint(c.Transform, lx[i], ly[i])
		if i == 0 || sx < x0 {
			x0 = sx
		}
		if i == 0 || sy < y0 {
			y0 = sy
		}
		if i == 0 || sx > x1 {
			x1 = sx
		}
		if i == 0 || sy > y1 {
			y1 = sy
		}
	}
	return x0, y0, x1, y1
}

const defaultCommandCap = 256

// DrawList is a DrawContext that records commands instead of drawing them.
// Hosts replay the list onto their surface; tests inspect it directly.
// Tooltip commands are kept apart and appended after everything else.
type DrawList struct {
	Commands []DrawCommand

	tooltips []DrawCommand
	style    Style
	font     Font
	pose     [6]float64
	stack    [][6]float64
}

// NewDrawList creates an empty list painting with the given style and font.
// A nil font falls back to DefaultFont.
func NewDrawList(style Style, font Font) *DrawList {
	if font == nil {
		font = DefaultFont
	}
	return &DrawList{
		Commands: make([]DrawCommand, 0, defaultCommandCap),
		style:    style,
		font:     font,
		pose:     identityTransform,
	}
}

// Reset clears recorded commands and the pose stack for a new frame.
func (d *DrawList) Reset() {
	d.Commands = d.Commands[:0]
	d.tooltips = d.tooltips[:0]
	d.stack = d.stack[:0]
	d.pose = identityTransform
}

// Finish moves pending tooltips to the end of Commands. Call once per frame
// after painting.
func (d *DrawList) Finish() {
	d.Commands = append(d.Commands, d.tooltips...)
	d.tooltips = d.tooltips[:0]
}

// SetStyle changes the style reported to widgets.
func (d *DrawList) SetStyle(s Style) { d.style = s }

// SetFont changes the measuring font. A nil font falls back to DefaultFont.
func (d *DrawList) SetFont(f Font) {
	if f == nil {
		f = DefaultFont
	}
	d.font = f
}

// Style implements DrawContext.
func (d *DrawList) Style() Style { return d.style }

// Font implements DrawContext.
func (d *DrawList) Font() Font { return d.font }

// Depth returns the number of saved poses.
func (d *DrawList) Depth() int { return len(d.stack) }

// Fill implements DrawContext.
func (d *DrawList) Fill(x0, y0, x1, y1 int, c Color) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	if x0 == x1 || y0 == y1 {
		return
	}
	d.Commands = append(d.Commands, DrawCommand{
		Type:      CommandFill,
		Transform: d.pose,
		X:         x0,
		Y:         y0,
		Width:     x1 - x0,
		Height:    y1 - y0,
		Color:     c,
	})
}

// DrawTexture implements DrawContext.
func (d *DrawList) DrawTexture(tex Texture, x, y, width, height int, tint Color) {
	if width <= 0 || height <= 0 {
		return
	}
	d.Commands = append(d.Commands, DrawCommand{
		Type:      CommandTexture,
		Transform: d.pose,
		X:         x,
		Y:         y,
		Width:     width,
		Height:    height,
		Texture:   tex,
		Color:     tint,
	})
}

// DrawText implements DrawContext.
func (d *DrawList) DrawText(s string, x, y int, c Color, shadow bool) {
	if s == "" {
		return
	}
	d.Commands = append(d.Commands, DrawCommand{
		Type:      CommandText,
		Transform: d.pose,
		X:         x,
		Y:         y,
		Width:     d.font.Width(s),
		Height:    d.font.LineHeight(),
		Color:     c,
		Text:      s,
		Shadow:    shadow,
	})
}

// Tooltip implements DrawContext.
func (d *DrawList) Tooltip(lines []string, x, y int) {
	if len(lines) == 0 {
		return
	}
	w := 0
	for _, l := range lines {
		w = max(w, d.font.Width(l))
	}
	d.tooltips = append(d.tooltips, DrawCommand{
		Type:      CommandTooltip,
		Transform: d.pose,
		X:         x,
		Y:         y,
		Width:     w,
		Height:    len(lines) * d.font.LineHeight(),
		Lines:     append([]string(nil), lines...),
	})
}

// PushPose implements DrawContext.
func (d *DrawList) PushPose() {
	d.stack = append(d.stack, d.pose)
}

// PopPose implements DrawContext. Panics on an unbalanced pop.
func (d *DrawList) PopPose() {
	if len(d.stack) == 0 {
		panic("thicket: PopPose without matching PushPose")
	}
	d.pose = d.stack[len(d.stack)-1]
	d.stack = d.stack[:len(d.stack)-1]
}

// Translate implements DrawContext.
func (d *DrawList) Translate(dx, dy float64) {
	d.pose = multiplyAffine(d.pose, translationAffine(dx, dy))
}

// Rotate implements DrawContext.
func (d *DrawList) Rotate(degrees float64) {
	d.pose = multiplyAffine(d.pose, rotationAffine(degrees))
}

// Count returns how many recorded commands have the given type.
func (d *DrawList) Count(t CommandType) int {
	n := 0
	for i := range d.Commands {
		if d.Commands[i].Type == t {
			n++
		}
	}
	return n
}
