package thicket

// DrawContext is the drawing surface widgets paint into. Hosts provide an
// implementation; DrawList records commands for later replay.
//
// Coordinates are GUI pixels in the current pose. Degenerate rectangles are
// dropped silently.
type DrawContext interface {
	// Fill paints the rectangle spanning (x0, y0) to (x1, y1).
	Fill(x0, y0, x1, y1 int, c Color)
	// DrawTexture draws the texture region stretched over the destination.
	DrawTexture(tex Texture, x, y, width, height int, tint Color)
	// DrawText draws a single line with its top-left corner at (x, y).
	DrawText(s string, x, y int, c Color, shadow bool)

	// PushPose saves the current transform.
	PushPose()
	// Translate offsets subsequent drawing.
	Translate(dx, dy float64)
	// Rotate rotates subsequent drawing clockwise by degrees around the
	// current origin.
	Rotate(degrees float64)
	// PopPose restores the transform saved by the matching PushPose.
	PopPose()

	// Tooltip requests a tooltip drawn above everything else this frame.
	Tooltip(lines []string, x, y int)

	// Style is the visual style active for this paint pass.
	Style() Style
	// Font measures text drawn by DrawText.
	Font() Font
}

// DrawString draws s aligned inside a box of the given width starting at x.
func DrawString(ctx DrawContext, s string, align HorizontalAlignment, x, y, width int, c Color, shadow bool) {
	if s == "" {
		return
	}
	free := width - ctx.Font().Width(s)
	ctx.DrawText(s, x+alignOffset(free, int(align)), y, c, shadow)
}

// ColoredRect fills a rectangle given by position and size.
func ColoredRect(ctx DrawContext, x, y, width, height int, c Color) {
	if width <= 0 || height <= 0 {
		return
	}
	ctx.Fill(x, y, x+width, y+height, c)
}

// DrawBeveledPanel draws a flat panel with a one pixel bevel: topLeft on the
// top and left edges, bottomRight on the bottom and right edges.
func DrawBeveledPanel(ctx DrawContext, x, y, width, height int, topLeft, panel, bottomRight Color) {
	ColoredRect(ctx, x, y, width, height, panel)
	ColoredRect(ctx, x, y, width, 1, topLeft)
	ColoredRect(ctx, x, y+1, 1, height-1, topLeft)
	ColoredRect(ctx, x+width-1, y+1, 1, height-1, bottomRight)
	ColoredRect(ctx, x+1, y+height-1, width-1, 1, bottomRight)
}

// DrawGuiPanel draws a rounded panel with highlight and shadow edges derived
// from the panel color.
func DrawGuiPanel(ctx DrawContext, x, y, width, height int, panel Color) {
	DrawGuiPanelColors(ctx, x, y, width, height, panel.Multiply(0.69), panel, panel.Multiply(1.4), ColorBlack)
}

// DrawGuiPanelColors draws a rounded panel with explicit edge colors.
func DrawGuiPanelColors(ctx DrawContext, x, y, width, height int, shadow, panel, hilight, outline Color) {
	if width <= 0 || height <= 0 {
		return
	}
	ColoredRect(ctx, x+3, y+3, width-6, height-6, panel)
	ColoredRect(ctx, x+2, y+1, width-4, 2, hilight)
	ColoredRect(ctx, x+2, y+height-3, width-4, 2, shadow)
	ColoredRect(ctx, x+1, y+2, 2, height-4, hilight)
	ColoredRect(ctx, x+width-3, y+2, 2, height-4, shadow)
	ColoredRect(ctx, x+2, y, width-4, 1, outline)
	ColoredRect(ctx, x, y+2, 1, height-4, outline)
	ColoredRect(ctx, x+width-1, y+2, 1, height-4, outline)
	ColoredRect(ctx, x+2, y+height-1, width-4, 1, outline)
	ColoredRect(ctx, x+1, y+1, 1, 1, outline)
	ColoredRect(ctx, x+1, y+height-2, 1, 1, outline)
	ColoredRect(ctx, x+width-2, y+1, 1, 1, outline)
	ColoredRect(ctx, x+width-2, y+height-2, 1, 1, outline)
}
