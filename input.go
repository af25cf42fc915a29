package thicket

// --- Handler registry ---

const eventTypeCount = int(EventFocusLost) + 1

type eventHandler struct {
	id uint32
	fn func(WidgetEvent)
}

type handlerRegistry struct {
	handlers [eventTypeCount][]eventHandler
	nextID   uint32
}

// CallbackHandle allows removing a registered GUI-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil || int(h.event) >= eventTypeCount {
		return
	}
	s := h.reg.handlers[h.event]
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = eventHandler{}
			h.reg.handlers[h.event] = s[:len(s)-1]
			return
		}
	}
}

// OnEvent registers a GUI-level callback fired after every dispatched
// event of type t, whether or not a widget processed it.
func (g *GUI) OnEvent(t EventType, fn func(WidgetEvent)) CallbackHandle {
	if int(t) >= eventTypeCount {
		fail(ErrInvalidArgument, "event type %d", t)
	}
	g.handlers.nextID++
	id := g.handlers.nextID
	g.handlers.handlers[t] = append(g.handlers.handlers[t], eventHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &g.handlers, event: t}
}

// emit fires GUI-level callbacks and forwards the event to the sink.
func (g *GUI) emit(ev WidgetEvent) {
	for _, h := range g.handlers.handlers[ev.Type] {
		h.fn(ev)
	}
	if g.sink != nil {
		g.sink.EmitEvent(ev)
	}
}

// pointerEvent builds an event for w at GUI-space point (x, y).
func pointerEvent(t EventType, w Widget, x, y int, button MouseButton) WidgetEvent {
	ax, ay := AbsolutePosition(w)
	return WidgetEvent{
		Type:     t,
		WidgetID: w.base().ID(),
		X:        x,
		Y:        y,
		LocalX:   x - ax,
		LocalY:   y - ay,
		Button:   button,
	}
}

// --- Hit testing ---

// HitTest returns the deepest visible widget containing the GUI-space
// point. Children are tested in reverse order so the last one added wins
// overlaps. A point inside a panel but outside all its children resolves to
// the panel. Returns nil outside the root.
func (g *GUI) HitTest(x, y int) Widget {
	rb := g.root.base()
	if rb.hidden || !rb.IsWithinBounds(x-rb.x, y-rb.y) {
		return nil
	}
	return hitTest(g.root, x-rb.x, y-rb.y)
}

// hitTest descends from w with (x, y) in w's local space.
func hitTest(w Widget, x, y int) Widget {
	p, ok := w.(Panel)
	if !ok {
		return w
	}
	children := p.Children()
	for i := len(children) - 1; i >= 0; i-- {
		cb := children[i].base()
		if !cb.hidden && cb.IsWithinBounds(x-cb.x, y-cb.y) {
			return hitTest(children[i], x-cb.x, y-cb.y)
		}
	}
	return w
}

// bubble offers the event to w and then each ancestor until one processes
// it. It returns the widget that processed the event, or nil.
func bubble(w Widget, x, y int, fn func(w Widget, localX, localY int) InputResult) Widget {
	for w != nil {
		ax, ay := AbsolutePosition(w)
		if fn(w, x-ax, y-ay) == InputProcessed {
			return w
		}
		p := w.base().Parent()
		if p == nil {
			return nil
		}
		w = p
	}
	return nil
}

// --- Pointer dispatch ---

// MouseDown delivers a button press at GUI-space (x, y) to the widget under
// the cursor, bubbling to ancestors while it is ignored. The hit widget
// captures the pointer until MouseUp. Pressing a focusable widget focuses
// it; pressing anywhere else releases focus.
func (g *GUI) MouseDown(x, y int, button MouseButton) InputResult {
	target := g.HitTest(x, y)
	if target == nil {
		g.setFocus(nil)
		return InputIgnored
	}
	if target.CanFocus() {
		g.RequestFocus(target)
	} else if g.focus != nil && g.focus != target {
		g.setFocus(nil)
	}

	g.captured = target
	g.captureButton = button
	g.lastX, g.lastY = x, y

	handled := bubble(target, x, y, func(w Widget, lx, ly int) InputResult {
		return w.OnMouseDown(lx, ly, button)
	})
	return g.emitPointer(EventMouseDown, target, handled, x, y, button)
}

// MouseDrag delivers pointer motion with a button held to the widget that
// captured the press, without re-hit-testing: local coordinates may lie
// outside its bounds. Ignored drags bubble to ancestors. Ignored when
// nothing holds capture.
func (g *GUI) MouseDrag(x, y int, button MouseButton) InputResult {
	w := g.captured
	if w == nil {
		return InputIgnored
	}
	dx, dy := float64(x-g.lastX), float64(y-g.lastY)
	g.lastX, g.lastY = x, y

	handled := bubble(w, x, y, func(c Widget, lx, ly int) InputResult {
		return c.OnMouseDrag(lx, ly, button, dx, dy)
	})
	ev := pointerEvent(EventMouseDrag, handlerOf(w, handled), x, y, button)
	ev.DeltaX, ev.DeltaY = dx, dy
	ev.Result = resultOf(handled)
	g.emit(ev)
	return ev.Result
}

// MouseUp delivers a button release to the capturing widget, bubbling to
// ancestors while ignored, and releases capture. If the cursor is still
// over the capturing widget a click follows, bubbling the same way.
func (g *GUI) MouseUp(x, y int, button MouseButton) InputResult {
	w := g.captured
	if w == nil {
		return InputIgnored
	}
	g.captured = nil
	g.lastX, g.lastY = x, y

	result := g.emitPointer(EventMouseUp, w, bubble(w, x, y, func(c Widget, lx, ly int) InputResult {
		return c.OnMouseUp(lx, ly, button)
	}), x, y, button)

	// The release handler may have detached w.
	if !g.contains(w) || g.HitTest(x, y) != w {
		return result
	}
	handled := bubble(w, x, y, func(c Widget, lx, ly int) InputResult {
		return c.OnClick(lx, ly, button)
	})
	return result.Or(g.emitPointer(EventClick, w, handled, x, y, button))
}

// MouseScroll delivers wheel motion to the widget under the cursor at the
// time of scrolling, bubbling to ancestors while ignored.
func (g *GUI) MouseScroll(x, y int, horizontal, vertical float64) InputResult {
	target := g.HitTest(x, y)
	if target == nil {
		return InputIgnored
	}
	handled := bubble(target, x, y, func(w Widget, lx, ly int) InputResult {
		return w.OnMouseScroll(lx, ly, horizontal, vertical)
	})
	ev := pointerEvent(EventScroll, handlerOf(target, handled), x, y, MouseButtonNone)
	ev.DeltaX, ev.DeltaY = horizontal, vertical
	ev.Result = resultOf(handled)
	g.emit(ev)
	return ev.Result
}

// emitPointer emits t for the widget that handled the event, or the
// original target when nothing did, and returns the result.
func (g *GUI) emitPointer(t EventType, target, handled Widget, x, y int, button MouseButton) InputResult {
	ev := pointerEvent(t, handlerOf(target, handled), x, y, button)
	ev.Result = resultOf(handled)
	g.emit(ev)
	return ev.Result
}

// handlerOf returns the widget that handled an event, or target when
// nothing did.
func handlerOf(target, handled Widget) Widget {
	if handled != nil {
		return handled
	}
	return target
}

func resultOf(handled Widget) InputResult {
	if handled != nil {
		return InputProcessed
	}
	return InputIgnored
}

// Captured returns the widget holding pointer capture, or nil.
func (g *GUI) Captured() Widget { return g.captured }

// --- Keyboard dispatch ---

// KeyPressed delivers a key to the focused widget only. When nothing is
// focused the key is ignored. Tab and Shift-Tab move focus when the focused
// widget ignores them.
func (g *GUI) KeyPressed(ch rune, key Key, mods KeyModifiers) InputResult {
	w := g.focus
	if w == nil {
		return InputIgnored
	}
	result := w.OnKeyPressed(ch, key, mods)
	g.emit(WidgetEvent{
		Type:      EventKeyPressed,
		WidgetID:  w.base().ID(),
		Key:       key,
		Char:      ch,
		Modifiers: mods,
		Result:    result,
	})
	if result == InputIgnored && key == KeyTab {
		if g.CycleFocus(mods&ModShift != 0) {
			return InputProcessed
		}
	}
	return result
}

// --- Focus ---

// Focus returns the focused widget, or nil.
func (g *GUI) Focus() Widget { return g.focus }

// IsFocused reports whether w holds focus.
func (g *GUI) IsFocused(w Widget) bool {
	return w != nil && g.focus == w
}

// RequestFocus moves focus to w. Requests for widgets that cannot focus,
// are hidden, or are not part of this GUI's tree are ignored.
func (g *GUI) RequestFocus(w Widget) {
	if w == nil || !w.CanFocus() || !g.contains(w) || !visibleInTree(w) {
		return
	}
	g.setFocus(w)
}

// dropHiddenFocus clears focus held by a widget that is no longer visible.
func (g *GUI) dropHiddenFocus() {
	if g.focus != nil && !visibleInTree(g.focus) {
		g.setFocus(nil)
	}
}

// ReleaseFocus clears focus if w holds it.
func (g *GUI) ReleaseFocus(w Widget) {
	if w != nil && g.focus == w {
		g.setFocus(nil)
	}
}

// setFocus flips focus flags and emits focus events. nil clears focus.
func (g *GUI) setFocus(w Widget) {
	old := g.focus
	if old == w {
		return
	}
	g.focus = w
	if old != nil {
		old.base().focused = false
		g.emit(WidgetEvent{Type: EventFocusLost, WidgetID: old.base().ID()})
	}
	if w != nil {
		w.base().focused = true
		g.emit(WidgetEvent{Type: EventFocusGained, WidgetID: w.base().ID()})
	}
}

// CycleFocus moves focus to the next focusable visible widget in tree
// order, or the previous one when backward is set, wrapping around. With
// nothing focused it starts from the first (or last) widget. It reports
// whether focus changed.
func (g *GUI) CycleFocus(backward bool) bool {
	var order []Widget
	collectFocusable(g.root, &order)
	if len(order) == 0 {
		return false
	}
	current := -1
	for i, w := range order {
		if w == g.focus {
			current = i
			break
		}
	}
	var next int
	switch {
	case current < 0 && backward:
		next = len(order) - 1
	case current < 0:
		next = 0
	case backward:
		next = (current - 1 + len(order)) % len(order)
	default:
		next = (current + 1) % len(order)
	}
	if order[next] == g.focus {
		return false
	}
	g.setFocus(order[next])
	return true
}

func collectFocusable(w Widget, out *[]Widget) {
	if w.base().hidden {
		return
	}
	if w.CanFocus() {
		*out = append(*out, w)
	}
	if p, ok := w.(Panel); ok {
		for _, c := range p.Children() {
			collectFocusable(c, out)
		}
	}
}

// visibleInTree reports whether w and all its ancestors are visible.
func visibleInTree(w Widget) bool {
	for b := w.base(); b != nil; {
		if b.hidden {
			return false
		}
		p := b.Parent()
		if p == nil {
			return true
		}
		b = p.base()
	}
	return true
}
