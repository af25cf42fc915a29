package thicket

// Label is a single line of static text. The zero color follows the
// style's title color.
type Label struct {
	BaseWidget
	text      string
	color     *Color
	alignment HorizontalAlignment
	valign    VerticalAlignment
}

// NewLabel creates a left-aligned label.
func NewLabel(text string) *Label {
	l := &Label{text: text}
	l.self = l
	return l
}

func (l *Label) CanResize() bool { return true }

// Text returns the label text.
func (l *Label) Text() string { return l.text }

// SetText sets the label text.
func (l *Label) SetText(text string) *Label {
	l.text = text
	return l
}

// SetColor fixes the text color for every style.
func (l *Label) SetColor(c Color) *Label {
	l.color = &c
	return l
}

// Color returns the text color used with style s.
func (l *Label) Color(s Style) Color {
	if l.color != nil {
		return *l.color
	}
	return s.TitleColor()
}

// SetAlignment sets the horizontal text alignment.
func (l *Label) SetAlignment(a HorizontalAlignment) *Label {
	l.alignment = a
	return l
}

// SetVerticalAlignment sets the vertical text alignment.
func (l *Label) SetVerticalAlignment(a VerticalAlignment) *Label {
	l.valign = a
	return l
}

func (l *Label) Paint(ctx DrawContext, x, y, mouseX, mouseY int) {
	if l.text == "" {
		return
	}
	s := ctx.Style()
	dy := alignOffset(l.height-ctx.Font().LineHeight(), int(l.valign))
	DrawString(ctx, l.text, l.alignment, x, y+dy, l.width, l.Color(s), s.FontShadow())
}
