package thicket

// WidgetID identifies a widget within its tree. IDs are assigned lazily and
// never reused.
type WidgetID uint32

// widgetIDCounter is a plain counter (no atomic: thicket is single-threaded).
var widgetIDCounter uint32

func nextWidgetID() WidgetID {
	widgetIDCounter++
	return WidgetID(widgetIDCounter)
}

// Widget is a positioned, sized node in the UI tree. Concrete widgets embed
// BaseWidget, which supplies every method with a default.
//
// Paint receives the widget's absolute position and the cursor position in
// the widget's local space. Input handlers receive local coordinates.
type Widget interface {
	Paint(ctx DrawContext, x, y, mouseX, mouseY int)
	CanResize() bool
	CanFocus() bool
	SetSize(width, height int)

	OnClick(x, y int, button MouseButton) InputResult
	OnMouseDown(x, y int, button MouseButton) InputResult
	OnMouseDrag(x, y int, button MouseButton, deltaX, deltaY float64) InputResult
	OnMouseUp(x, y int, button MouseButton) InputResult
	OnMouseScroll(x, y int, horizontal, vertical float64) InputResult
	OnKeyPressed(ch rune, key Key, mods KeyModifiers) InputResult

	base() *BaseWidget
}

// TooltipProvider is implemented by widgets that show a tooltip on hover.
type TooltipProvider interface {
	Tooltip() []string
}

// registry indexes every widget of one tree by ID. Parent links are IDs
// resolved through it, so no widget holds a reference to its parent.
type registry struct {
	widgets map[WidgetID]Widget
	gui     *GUI
}

func newRegistry() *registry {
	return &registry{widgets: make(map[WidgetID]Widget)}
}

// add indexes w and its subtree.
func (r *registry) add(w Widget) {
	walk(w, func(c Widget) {
		b := c.base()
		b.reg = r
		b.self = c
		r.widgets[b.ID()] = c
	})
}

// remove drops w and its subtree from the index and returns them to a
// fresh registry of their own.
func (r *registry) remove(w Widget) {
	detached := newRegistry()
	walk(w, func(c Widget) {
		id := c.base().ID()
		delete(r.widgets, id)
		if r.gui != nil {
			r.gui.forget(id)
		}
	})
	detached.add(w)
}

// walk visits w and all descendants in tree order.
func walk(w Widget, fn func(Widget)) {
	fn(w)
	if p, ok := w.(Panel); ok {
		for _, c := range p.Children() {
			walk(c, fn)
		}
	}
}

// BaseWidget holds the state shared by all widgets. The zero value is a
// valid, unattached widget of size zero.
type BaseWidget struct {
	id     WidgetID
	self   Widget
	reg    *registry
	parent WidgetID

	x, y          int
	width, height int

	hovered bool
	focused bool
	hidden  bool
}

func (b *BaseWidget) base() *BaseWidget { return b }

// ID returns the widget's identifier.
func (b *BaseWidget) ID() WidgetID {
	if b.id == 0 {
		b.id = nextWidgetID()
	}
	return b.id
}

// X returns the position relative to the parent.
func (b *BaseWidget) X() int { return b.x }

// Y returns the position relative to the parent.
func (b *BaseWidget) Y() int { return b.y }

// Position returns the position relative to the parent.
func (b *BaseWidget) Position() (x, y int) { return b.x, b.y }

// SetPosition moves the widget within its parent.
func (b *BaseWidget) SetPosition(x, y int) {
	b.x = x
	b.y = y
}

// Width returns the widget width.
func (b *BaseWidget) Width() int { return b.width }

// Height returns the widget height.
func (b *BaseWidget) Height() int { return b.height }

// Size returns the widget size.
func (b *BaseWidget) Size() (width, height int) { return b.width, b.height }

// Bounds returns the widget rectangle in its parent's space.
func (b *BaseWidget) Bounds() Rect { return Rect{b.x, b.y, b.width, b.height} }

// SetSize resizes the widget. Parents only call it on resizable widgets.
func (b *BaseWidget) SetSize(width, height int) {
	b.width = max(width, 0)
	b.height = max(height, 0)
}

// CanResize reports whether parents may resize the widget. Default false.
func (b *BaseWidget) CanResize() bool { return false }

// CanFocus reports whether the widget accepts keyboard focus. Default false.
func (b *BaseWidget) CanFocus() bool { return false }

// IsWithinBounds reports whether the local point lies inside the widget.
func (b *BaseWidget) IsWithinBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

// IsHovered reports whether the cursor was over the widget at the last paint.
func (b *BaseWidget) IsHovered() bool { return b.hovered }

// IsFocused reports whether the widget holds keyboard focus.
func (b *BaseWidget) IsFocused() bool { return b.focused }

// IsVisible reports whether the widget is painted and hit-testable.
func (b *BaseWidget) IsVisible() bool { return !b.hidden }

// SetVisible shows or hides the widget. Hiding releases focus held by the
// widget or one of its descendants.
func (b *BaseWidget) SetVisible(visible bool) {
	b.hidden = !visible
	if !visible && b.reg != nil && b.reg.gui != nil {
		b.reg.gui.dropHiddenFocus()
	}
}

// Parent returns the enclosing panel, or nil for a root or unattached widget.
func (b *BaseWidget) Parent() Panel {
	if b.parent == 0 || b.reg == nil {
		return nil
	}
	p, _ := b.reg.widgets[b.parent].(Panel)
	return p
}

// GUI returns the GUI the widget's tree belongs to, or nil.
func (b *BaseWidget) GUI() *GUI {
	if b.reg == nil {
		return nil
	}
	return b.reg.gui
}

// RequestFocus asks the owning GUI to focus this widget. Ignored when the
// widget is not focusable or not part of a GUI.
func (b *BaseWidget) RequestFocus() {
	if g := b.GUI(); g != nil && b.self != nil {
		g.RequestFocus(b.self)
	}
}

// ReleaseFocus gives up focus if this widget holds it.
func (b *BaseWidget) ReleaseFocus() {
	if g := b.GUI(); g != nil && b.self != nil {
		g.ReleaseFocus(b.self)
	}
}

// Paint draws nothing by default.
func (b *BaseWidget) Paint(ctx DrawContext, x, y, mouseX, mouseY int) {}

// OnClick is called when a press and release both land on the widget.
func (b *BaseWidget) OnClick(x, y int, button MouseButton) InputResult { return InputIgnored }

// OnMouseDown is called when a button is pressed over the widget.
func (b *BaseWidget) OnMouseDown(x, y int, button MouseButton) InputResult { return InputIgnored }

// OnMouseDrag is called for pointer motion while the widget holds capture.
func (b *BaseWidget) OnMouseDrag(x, y int, button MouseButton, deltaX, deltaY float64) InputResult {
	return InputIgnored
}

// OnMouseUp is called on the capturing widget when the button is released.
func (b *BaseWidget) OnMouseUp(x, y int, button MouseButton) InputResult { return InputIgnored }

// OnMouseScroll is called when the wheel moves over the widget.
func (b *BaseWidget) OnMouseScroll(x, y int, horizontal, vertical float64) InputResult {
	return InputIgnored
}

// OnKeyPressed is called on the focused widget.
func (b *BaseWidget) OnKeyPressed(ch rune, key Key, mods KeyModifiers) InputResult {
	return InputIgnored
}

// AbsolutePosition returns the widget's position in GUI space: the sum of
// its own and all ancestor positions.
func AbsolutePosition(w Widget) (x, y int) {
	for b := w.base(); b != nil; {
		x += b.x
		y += b.y
		p := b.Parent()
		if p == nil {
			break
		}
		b = p.base()
	}
	return x, y
}

// BoundsOf returns the widget rectangle in its parent's space.
func BoundsOf(w Widget) Rect {
	return w.base().Bounds()
}

// Depth returns the number of ancestors of w.
func Depth(w Widget) int {
	d := 0
	for p := w.base().Parent(); p != nil; p = p.base().Parent() {
		d++
	}
	return d
}

// isAncestor reports whether a is w or one of w's ancestors.
func isAncestor(a, w Widget) bool {
	id := a.base().ID()
	for c := w; c != nil; {
		if c.base().ID() == id {
			return true
		}
		p := c.base().Parent()
		if p == nil {
			return false
		}
		c = p
	}
	return false
}

// clock returns the owning GUI's clock, or SystemClock for widgets outside
// a GUI.
func (b *BaseWidget) clock() Clock {
	if g := b.GUI(); g != nil {
		return g.Clock()
	}
	return SystemClock
}
