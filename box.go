package thicket

// DefaultSpacing is the gap between box children.
const DefaultSpacing = 4

// DefaultCellSize is the size given to children added without one.
const DefaultCellSize = 18

// boxEntry is the fixed size a child was registered with.
type boxEntry struct {
	width, height int
}

// BoxPanel stacks its children along one axis with a fixed spacing.
type BoxPanel struct {
	BasePanel
	axis    Axis
	spacing int
	halign  HorizontalAlignment
	valign  VerticalAlignment
	entries map[WidgetID]boxEntry
}

// NewBoxPanel creates an empty box stacking along axis.
func NewBoxPanel(axis Axis) *BoxPanel {
	b := &BoxPanel{
		axis:    axis,
		spacing: DefaultSpacing,
		entries: make(map[WidgetID]boxEntry),
	}
	b.self = b
	return b
}

// Axis returns the stacking axis.
func (b *BoxPanel) Axis() Axis { return b.axis }

// SetAxis changes the stacking axis.
func (b *BoxPanel) SetAxis(axis Axis) *BoxPanel {
	b.axis = axis
	return b
}

// Spacing returns the gap between children.
func (b *BoxPanel) Spacing() int { return b.spacing }

// SetSpacing sets the gap between children.
func (b *BoxPanel) SetSpacing(spacing int) *BoxPanel {
	b.spacing = spacing
	return b
}

// HorizontalAlignment returns the horizontal placement policy.
func (b *BoxPanel) HorizontalAlignment() HorizontalAlignment { return b.halign }

// SetHorizontalAlignment sets how children are placed horizontally: along
// the axis for a horizontal box, across it for a vertical one.
func (b *BoxPanel) SetHorizontalAlignment(a HorizontalAlignment) *BoxPanel {
	b.halign = a
	return b
}

// VerticalAlignment returns the vertical placement policy.
func (b *BoxPanel) VerticalAlignment() VerticalAlignment { return b.valign }

// SetVerticalAlignment sets how children are placed vertically.
func (b *BoxPanel) SetVerticalAlignment(a VerticalAlignment) *BoxPanel {
	b.valign = a
	return b
}

// Add appends w with the default cell size.
func (b *BoxPanel) Add(w Widget) {
	b.AddSized(w, DefaultCellSize, DefaultCellSize)
}

// AddSized appends w with a fixed size, applied when w is resizable.
func (b *BoxPanel) AddSized(w Widget, width, height int) {
	b.adopt(w)
	b.entries[w.base().ID()] = boxEntry{width, height}
	layoutChild(w, width, height)
}

// SetEntrySize changes the registered size of child.
func (b *BoxPanel) SetEntrySize(child Widget, width, height int) {
	id := child.base().ID()
	if _, ok := b.entries[id]; !ok {
		panic("thicket: child's parent is not this panel")
	}
	b.entries[id] = boxEntry{width, height}
}

// Remove detaches child and drops its size entry.
func (b *BoxPanel) Remove(child Widget) {
	b.detach(child)
	delete(b.entries, child.base().ID())
}

// extent returns the child's size along and across the axis.
func (b *BoxPanel) extent(c Widget) (along, across int) {
	cb := c.base()
	if b.axis == AxisVertical {
		return cb.height, cb.width
	}
	return cb.width, cb.height
}

// MinimumSize returns the size needed to hold every child: the sum of their
// extents along the axis plus spacing, and the largest cross extent, both
// including insets.
func (b *BoxPanel) MinimumSize() (width, height int) {
	along, across := 0, 0
	for i, c := range b.children {
		a, x := b.extent(c)
		along += a
		if i > 0 {
			along += b.spacing
		}
		across = max(across, x)
	}
	if b.axis == AxisVertical {
		return across + b.insets.Width(), along + b.insets.Height()
	}
	return along + b.insets.Width(), across + b.insets.Height()
}

// Layout sizes children from their entries, stacks them in order and grows
// the box to its minimum size.
func (b *BoxPanel) Layout() {
	for _, c := range b.children {
		e := b.entries[c.base().ID()]
		layoutChild(c, e.width, e.height)
	}

	minW, minH := b.MinimumSize()
	b.width = max(b.width, minW)
	b.height = max(b.height, minH)
	innerW := b.width - b.insets.Width()
	innerH := b.height - b.insets.Height()

	var pos int
	if b.axis == AxisVertical {
		pos = b.insets.Top + alignOffset(b.height-minH, int(b.valign))
	} else {
		pos = b.insets.Left + alignOffset(b.width-minW, int(b.halign))
	}

	for _, c := range b.children {
		cb := c.base()
		along, _ := b.extent(c)
		if b.axis == AxisVertical {
			cb.SetPosition(b.insets.Left+alignOffset(innerW-cb.width, int(b.halign)), pos)
		} else {
			cb.SetPosition(pos, b.insets.Top+alignOffset(innerH-cb.height, int(b.valign)))
		}
		pos += along + b.spacing
	}
}
