package thicket

// Panel is a widget that owns and lays out child widgets.
type Panel interface {
	Widget
	// Children returns the child list. The returned slice MUST NOT be mutated.
	Children() []Widget
	// Layout recomputes child positions and sizes from scratch. Calling it
	// twice in a row gives the same result.
	Layout()
	Background() BackgroundPainter
	SetBackground(p BackgroundPainter)
}

// BasePanel holds the child list, background and insets shared by panels.
// Concrete panels embed it and override Layout.
type BasePanel struct {
	BaseWidget
	children   []Widget
	background BackgroundPainter
	insets     Insets
}

// Children implements Panel.
func (p *BasePanel) Children() []Widget { return p.children }

// NumChildren returns the number of children.
func (p *BasePanel) NumChildren() int { return len(p.children) }

// ChildAt returns the child at index.
func (p *BasePanel) ChildAt(index int) Widget {
	if index < 0 || index >= len(p.children) {
		fail(ErrIndexOutOfRange, "child index %d of %d", index, len(p.children))
	}
	return p.children[index]
}

// Background implements Panel.
func (p *BasePanel) Background() BackgroundPainter { return p.background }

// SetBackground implements Panel. A nil painter disables the background.
func (p *BasePanel) SetBackground(painter BackgroundPainter) { p.background = painter }

// Insets returns the padding between the panel edges and its children.
func (p *BasePanel) Insets() Insets { return p.insets }

// SetInsets sets the padding between the panel edges and its children.
func (p *BasePanel) SetInsets(insets Insets) { p.insets = insets }

// CanResize reports true: panels are sized by their parents.
func (p *BasePanel) CanResize() bool { return true }

// owner returns the outermost widget embedding p.
func (p *BasePanel) owner() Widget {
	if p.self != nil {
		return p.self
	}
	return p
}

// adopt appends child and links it into this panel's tree.
// Panics if child is nil, already has a parent, or is an ancestor of p.
func (p *BasePanel) adopt(child Widget) {
	if child == nil {
		panic("thicket: cannot add nil child")
	}
	cb := child.base()
	if cb.parent != 0 {
		panic("thicket: widget already has a parent")
	}
	self := p.owner()
	if isAncestor(child, self) {
		panic("thicket: adding child would create a cycle")
	}
	if p.reg == nil {
		newRegistry().add(self)
	}
	p.reg.add(child)
	cb.parent = p.ID()
	p.children = append(p.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(p)
	}
}

// detach removes child from the child list and the tree index.
// Panics if child's parent is not this panel.
func (p *BasePanel) detach(child Widget) int {
	if child == nil || child.base().parent != p.ID() {
		panic("thicket: child's parent is not this panel")
	}
	index := p.indexOf(child)
	copy(p.children[index:], p.children[index+1:])
	p.children[len(p.children)-1] = nil
	p.children = p.children[:len(p.children)-1]
	child.base().parent = 0
	if p.reg != nil {
		p.reg.remove(child)
	}
	return index
}

func (p *BasePanel) indexOf(child Widget) int {
	for i, c := range p.children {
		if c == child {
			return i
		}
	}
	return -1
}

// Remove detaches child from this panel. Focus and pointer capture inside
// the removed subtree are cleared. Panics if child is not a child of p.
func (p *BasePanel) Remove(child Widget) {
	p.detach(child)
}

// ExpandToFit grows the panel so child fits inside it with the panel's
// insets on the right and bottom.
func (p *BasePanel) ExpandToFit(child Widget) {
	b := child.base()
	right := b.x + b.width + p.insets.Right
	bottom := b.y + b.height + p.insets.Bottom
	p.width = max(p.width, right)
	p.height = max(p.height, bottom)
}

// Layout lays out child panels without moving any children.
func (p *BasePanel) Layout() {
	for _, c := range p.children {
		if cp, ok := c.(Panel); ok {
			cp.Layout()
		}
	}
}

// Paint draws the background and then every visible child in order.
func (p *BasePanel) Paint(ctx DrawContext, x, y, mouseX, mouseY int) {
	if p.background != nil {
		p.background.PaintBackground(ctx, x, y, p.owner())
	}
	p.PaintChildren(ctx, x, y, mouseX, mouseY)
}

// PaintChildren paints the visible children of the panel at absolute
// position (x, y).
func (p *BasePanel) PaintChildren(ctx DrawContext, x, y, mouseX, mouseY int) {
	for _, c := range p.children {
		b := c.base()
		if b.hidden {
			continue
		}
		c.Paint(ctx, x+b.x, y+b.y, mouseX-b.x, mouseY-b.y)
	}
}

// layoutChild applies size to a resizable child and lays it out if it is a
// panel.
func layoutChild(c Widget, width, height int) {
	if c.CanResize() {
		c.SetSize(width, height)
	}
	if cp, ok := c.(Panel); ok {
		cp.Layout()
	}
}
