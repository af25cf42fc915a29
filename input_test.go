package thicket

import (
	"fmt"
	"testing"
)

// --- Hit testing ---

func TestHitTest(t *testing.T) {
	g, root := newTestGUI(200, 100)
	inner := NewPlainPanel()
	leaf := newProbe()
	root.Add(inner, 10, 10, 80, 60)
	inner.Add(leaf, 5, 5, 20, 20)
	g.Layout()

	tests := []struct {
		name string
		x, y int
		want Widget
	}{
		{"leaf", 20, 20, leaf},
		{"leaf top-left edge", 15, 15, leaf},
		{"leaf right edge exclusive", 35, 20, inner},
		{"inner panel", 60, 50, inner},
		{"root", 150, 80, root},
		{"outside", 250, 20, nil},
		{"negative", -1, 5, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.HitTest(tt.x, tt.y); got != tt.want {
				t.Errorf("HitTest(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitTestLastChildWins(t *testing.T) {
	g, root := newTestGUI(100, 100)
	below, above := newProbe(), newProbe()
	root.Add(below, 0, 0, 50, 50)
	root.Add(above, 25, 25, 50, 50)
	g.Layout()
	if got := g.HitTest(30, 30); got != Widget(above) {
		t.Errorf("overlap resolved to %v, want the later child", got)
	}
	above.SetVisible(false)
	if got := g.HitTest(30, 30); got != Widget(below) {
		t.Errorf("hidden child still hit")
	}
}

// --- Pointer dispatch ---

func TestDragCaptureOutsideBounds(t *testing.T) {
	g, root := newTestGUI(200, 200)
	p := newProbe()
	root.Add(p, 10, 10, 20, 20)
	g.Layout()

	g.MouseDown(15, 15, MouseButtonLeft)
	if g.Captured() != Widget(p) {
		t.Fatal("press should capture the widget under the cursor")
	}
	g.MouseDrag(150, 150, MouseButtonLeft)
	if got := p.last(); got != "drag 140,140" {
		t.Errorf("drag delivered as %q, want local coordinates outside bounds", got)
	}
	g.MouseUp(150, 150, MouseButtonLeft)
	if got := p.last(); got != "up 140,140" {
		t.Errorf("release delivered as %q", got)
	}
	if g.Captured() != nil {
		t.Error("capture not released")
	}
	for _, entry := range p.log {
		if entry == "click 140,140" {
			t.Error("release outside the widget must not click")
		}
	}
}

func TestClickFollowsReleaseOnSameWidget(t *testing.T) {
	g, root := newTestGUI(100, 100)
	p := newProbe()
	root.Add(p, 10, 10, 20, 20)
	g.Layout()

	g.MouseDown(12, 12, MouseButtonLeft)
	res := g.MouseUp(14, 16, MouseButtonLeft)
	want := []string{"down 2,2", "up 4,6", "click 4,6"}
	if len(p.log) != len(want) {
		t.Fatalf("log = %v, want %v", p.log, want)
	}
	for i := range want {
		if p.log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, p.log[i], want[i])
		}
	}
	if res != InputProcessed {
		t.Error("MouseUp should report the processed click")
	}
}

func TestClickBubblesToParent(t *testing.T) {
	g, root := newTestGUI(100, 100)
	outer := &bubblePanel{PlainPanel: NewPlainPanel()}
	outer.self = outer
	child := newProbe()
	child.consume = false
	root.Add(outer, 0, 0, 60, 60)
	outer.Add(child, 10, 10, 20, 20)
	g.Layout()

	g.MouseDown(15, 15, MouseButtonLeft)
	g.MouseUp(15, 15, MouseButtonLeft)
	if outer.clicks != 1 {
		t.Errorf("ignored click should bubble to the parent, got %d clicks", outer.clicks)
	}
	if outer.clickX != 15 || outer.clickY != 15 {
		t.Errorf("parent got click at (%d,%d), want its own local (15,15)", outer.clickX, outer.clickY)
	}
}

type bubblePanel struct {
	*PlainPanel
	clicks         int
	clickX, clickY int
}

func (b *bubblePanel) OnClick(x, y int, button MouseButton) InputResult {
	b.clicks++
	b.clickX, b.clickY = x, y
	return InputProcessed
}

func TestDragWithoutCaptureIgnored(t *testing.T) {
	g, _ := newTestGUI(100, 100)
	if g.MouseDrag(5, 5, MouseButtonLeft) != InputIgnored {
		t.Error("drag without capture should be ignored")
	}
	if g.MouseUp(5, 5, MouseButtonLeft) != InputIgnored {
		t.Error("release without capture should be ignored")
	}
}

func TestScrollGoesToWidgetUnderCursor(t *testing.T) {
	g, root := newTestGUI(100, 100)
	a, b := newProbe(), newProbe()
	root.Add(a, 0, 0, 20, 20)
	root.Add(b, 50, 50, 20, 20)
	g.Layout()

	g.MouseScroll(55, 55, 0, -1)
	if b.last() != "scroll -1" || len(a.log) != 0 {
		t.Errorf("scroll went to a=%v b=%v", a.log, b.log)
	}
}

func TestPressFocusesFocusableWidget(t *testing.T) {
	g, root := newTestGUI(100, 100)
	a, b := newFocusableProbe(), newFocusableProbe()
	plain := newProbe()
	root.Add(a, 0, 0, 20, 20)
	root.Add(b, 30, 0, 20, 20)
	root.Add(plain, 60, 0, 20, 20)
	g.Layout()

	g.MouseDown(5, 5, MouseButtonLeft)
	g.MouseUp(5, 5, MouseButtonLeft)
	if !a.IsFocused() || g.Focus() != Widget(a) {
		t.Fatal("a should be focused")
	}

	g.MouseDown(35, 5, MouseButtonLeft)
	g.MouseUp(35, 5, MouseButtonLeft)
	if a.IsFocused() || !b.IsFocused() {
		t.Error("focus should move to b and leave a")
	}

	g.MouseDown(65, 5, MouseButtonLeft)
	if g.Focus() != nil || b.IsFocused() {
		t.Error("pressing a non-focusable widget should release focus")
	}
}

// --- Keyboard dispatch ---

func TestKeysIgnoredWithoutFocus(t *testing.T) {
	g, root := newTestGUI(100, 100)
	p := newFocusableProbe()
	root.Add(p, 0, 0, 20, 20)
	g.Layout()

	if g.KeyPressed('a', KeyUnknown, 0) != InputIgnored {
		t.Error("key without focus should be ignored")
	}
	if len(p.log) != 0 {
		t.Errorf("unfocused widget received %v", p.log)
	}

	g.RequestFocus(p)
	if g.KeyPressed(0, KeyEnter, 0) != InputProcessed || p.last() != "key 1" {
		t.Errorf("focused widget log = %v", p.log)
	}
}

func TestTabCyclesFocus(t *testing.T) {
	g, root := newTestGUI(100, 100)
	a, b, c := newFocusableProbe(), newFocusableProbe(), newFocusableProbe()
	for _, p := range []*probe{a, b, c} {
		p.consume = false
	}
	root.Add(a, 0, 0, 10, 10)
	root.Add(b, 20, 0, 10, 10)
	root.Add(c, 40, 0, 10, 10)
	g.Layout()

	g.RequestFocus(a)
	g.KeyPressed(0, KeyTab, 0)
	if g.Focus() != Widget(b) {
		t.Fatalf("Tab should focus b")
	}
	g.KeyPressed(0, KeyTab, ModShift)
	if g.Focus() != Widget(a) {
		t.Fatalf("Shift-Tab should focus a")
	}
	g.KeyPressed(0, KeyTab, ModShift)
	if g.Focus() != Widget(c) {
		t.Errorf("Shift-Tab should wrap to c")
	}

	b.SetVisible(false)
	g.RequestFocus(a)
	g.KeyPressed(0, KeyTab, 0)
	if g.Focus() != Widget(c) {
		t.Errorf("Tab should skip hidden b")
	}
}

func TestCycleFocusFromNothing(t *testing.T) {
	g, root := newTestGUI(100, 100)
	a, b := newFocusableProbe(), newFocusableProbe()
	root.Add(a, 0, 0, 10, 10)
	root.Add(b, 20, 0, 10, 10)
	if !g.CycleFocus(false) || g.Focus() != Widget(a) {
		t.Error("forward cycle from nothing should focus the first widget")
	}
	g.ReleaseFocus(a)
	if !g.CycleFocus(true) || g.Focus() != Widget(b) {
		t.Error("backward cycle from nothing should focus the last widget")
	}
}

// --- Focus ---

func TestRequestFocusRejections(t *testing.T) {
	g, root := newTestGUI(100, 100)
	plain := newProbe()
	hidden := newFocusableProbe()
	hidden.SetVisible(false)
	root.Add(plain, 0, 0, 10, 10)
	root.Add(hidden, 20, 0, 10, 10)
	stranger := newFocusableProbe()

	for _, w := range []Widget{plain, hidden, stranger, nil} {
		g.RequestFocus(w)
		if g.Focus() != nil {
			t.Errorf("RequestFocus(%v) should be ignored", w)
		}
	}
}

func TestSingleFocusHolder(t *testing.T) {
	g, root := newTestGUI(100, 100)
	ws := []*probe{newFocusableProbe(), newFocusableProbe(), newFocusableProbe()}
	for i, w := range ws {
		root.Add(w, i*20, 0, 10, 10)
	}
	for _, target := range ws {
		g.RequestFocus(target)
		n := 0
		for _, w := range ws {
			if w.IsFocused() {
				n++
			}
		}
		if n != 1 || !target.IsFocused() {
			t.Errorf("%d widgets focused after focusing one", n)
		}
	}
}

func TestRemovalClearsFocusAndCapture(t *testing.T) {
	g, root := newTestGUI(100, 100)
	panel := NewPlainPanel()
	p := newFocusableProbe()
	root.Add(panel, 0, 0, 50, 50)
	panel.Add(p, 0, 0, 20, 20)
	g.Layout()

	g.MouseDown(5, 5, MouseButtonLeft)
	if g.Focus() != Widget(p) || g.Captured() != Widget(p) {
		t.Fatal("press should focus and capture p")
	}
	root.Remove(panel)
	if g.Focus() != nil || g.Captured() != nil {
		t.Error("removing an ancestor should clear focus and capture")
	}
	if p.IsFocused() {
		t.Error("removed widget still flagged focused")
	}
	if g.MouseUp(5, 5, MouseButtonLeft) != InputIgnored {
		t.Error("release after removal should be ignored")
	}
}

func TestFocusEvents(t *testing.T) {
	g, root := newTestGUI(100, 100)
	a, b := newFocusableProbe(), newFocusableProbe()
	root.Add(a, 0, 0, 10, 10)
	root.Add(b, 20, 0, 10, 10)

	var events []EventType
	for _, et := range []EventType{EventFocusGained, EventFocusLost} {
		g.OnEvent(et, func(ev WidgetEvent) { events = append(events, ev.Type) })
	}
	g.RequestFocus(a)
	g.RequestFocus(b)
	want := []EventType{EventFocusGained, EventFocusLost, EventFocusGained}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events[%d] = %v, want %v", i, events[i], want[i])
		}
	}
}

// --- Scene-level callbacks ---

func TestOnEventRemove(t *testing.T) {
	g, root := newTestGUI(100, 100)
	p := newProbe()
	root.Add(p, 0, 0, 20, 20)
	g.Layout()

	var clicks []WidgetEvent
	h := g.OnEvent(EventClick, func(ev WidgetEvent) { clicks = append(clicks, ev) })
	g.MouseDown(5, 6, MouseButtonLeft)
	g.MouseUp(5, 6, MouseButtonLeft)
	if len(clicks) != 1 {
		t.Fatalf("clicks = %d, want 1", len(clicks))
	}
	ev := clicks[0]
	if ev.WidgetID != p.ID() || ev.X != 5 || ev.Y != 6 || ev.Result != InputProcessed {
		t.Errorf("click event = %+v", ev)
	}

	h.Remove()
	g.MouseDown(5, 6, MouseButtonLeft)
	g.MouseUp(5, 6, MouseButtonLeft)
	if len(clicks) != 1 {
		t.Error("removed callback still fired")
	}
}

func TestOnEventInvalidType(t *testing.T) {
	g := NewGUI("")
	expectPanic(t, ErrInvalidArgument, func() { g.OnEvent(EventType(200), func(WidgetEvent) {}) })
}

type recordingSink struct {
	events []WidgetEvent
}

func (s *recordingSink) EmitEvent(ev WidgetEvent) { s.events = append(s.events, ev) }

func TestEventSinkReceivesDragDeltas(t *testing.T) {
	g, root := newTestGUI(100, 100)
	p := newProbe()
	root.Add(p, 0, 0, 20, 20)
	g.Layout()
	sink := &recordingSink{}
	g.SetEventSink(sink)

	g.MouseDown(5, 5, MouseButtonLeft)
	g.MouseDrag(8, 9, MouseButtonLeft)
	var drag *WidgetEvent
	for i := range sink.events {
		if sink.events[i].Type == EventMouseDrag {
			drag = &sink.events[i]
		}
	}
	if drag == nil {
		t.Fatal("no drag event emitted")
	}
	if drag.DeltaX != 3 || drag.DeltaY != 4 || drag.LocalX != 8 || drag.LocalY != 9 {
		t.Errorf("drag event = %+v", *drag)
	}
}

type dragPanel struct {
	*PlainPanel
	log []string
}

func (d *dragPanel) OnMouseDown(x, y int, button MouseButton) InputResult {
	d.log = append(d.log, fmt.Sprintf("down %d,%d", x, y))
	return InputProcessed
}

func (d *dragPanel) OnMouseDrag(x, y int, button MouseButton, dx, dy float64) InputResult {
	d.log = append(d.log, fmt.Sprintf("drag %d,%d", x, y))
	return InputProcessed
}

func (d *dragPanel) OnMouseUp(x, y int, button MouseButton) InputResult {
	d.log = append(d.log, fmt.Sprintf("up %d,%d", x, y))
	return InputProcessed
}

func TestDragAndReleaseBubbleToParent(t *testing.T) {
	g, root := newTestGUI(100, 100)
	outer := &dragPanel{PlainPanel: NewPlainPanel()}
	outer.self = outer
	child := newProbe()
	child.consume = false
	root.Add(outer, 10, 10, 60, 60)
	outer.Add(child, 10, 10, 20, 20)
	g.Layout()

	drags := 0
	g.OnEvent(EventMouseDrag, func(ev WidgetEvent) {
		drags++
		if ev.WidgetID != outer.ID() || ev.Result != InputProcessed {
			t.Errorf("drag event = %+v", ev)
		}
	})

	g.MouseDown(25, 25, MouseButtonLeft)
	if g.Captured() != Widget(child) {
		t.Fatal("the hit leaf should hold capture")
	}
	if g.MouseDrag(30, 28, MouseButtonLeft) != InputProcessed {
		t.Error("drag handled by the parent should report processed")
	}
	g.MouseUp(90, 90, MouseButtonLeft)

	want := []string{"down 15,15", "drag 20,18", "up 80,80"}
	if len(outer.log) != len(want) {
		t.Fatalf("parent log = %v, want %v", outer.log, want)
	}
	for i := range want {
		if outer.log[i] != want[i] {
			t.Errorf("parent log[%d] = %q, want %q", i, outer.log[i], want[i])
		}
	}
	if drags != 1 {
		t.Errorf("drag events = %d", drags)
	}
	if len(child.log) < 2 || child.log[1] != "drag 10,8" {
		t.Errorf("child should see the drag first, log = %v", child.log)
	}
}

func TestScrollEventHasNoButton(t *testing.T) {
	g, root := newTestGUI(100, 100)
	root.Add(newProbe(), 0, 0, 20, 20)
	g.Layout()

	var got []WidgetEvent
	g.OnEvent(EventScroll, func(ev WidgetEvent) { got = append(got, ev) })
	g.MouseScroll(5, 5, 0, 1)
	if len(got) != 1 || got[0].Button != MouseButtonNone {
		t.Errorf("scroll events = %+v", got)
	}
}
