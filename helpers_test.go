package thicket

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// probe is a resizable test widget that records the input it receives.
type probe struct {
	BaseWidget
	focusable bool
	consume   bool
	log       []string
}

func newProbe() *probe {
	p := &probe{consume: true}
	p.self = p
	return p
}

func newFocusableProbe() *probe {
	p := newProbe()
	p.focusable = true
	return p
}

func (p *probe) CanResize() bool { return true }
func (p *probe) CanFocus() bool  { return p.focusable }

func (p *probe) record(format string, args ...any) InputResult {
	p.log = append(p.log, fmt.Sprintf(format, args...))
	if p.consume {
		return InputProcessed
	}
	return InputIgnored
}

func (p *probe) OnMouseDown(x, y int, button MouseButton) InputResult {
	return p.record("down %d,%d", x, y)
}

func (p *probe) OnMouseDrag(x, y int, button MouseButton, dx, dy float64) InputResult {
	return p.record("drag %d,%d", x, y)
}

func (p *probe) OnMouseUp(x, y int, button MouseButton) InputResult {
	return p.record("up %d,%d", x, y)
}

func (p *probe) OnClick(x, y int, button MouseButton) InputResult {
	return p.record("click %d,%d", x, y)
}

func (p *probe) OnMouseScroll(x, y int, h, v float64) InputResult {
	return p.record("scroll %v", v)
}

func (p *probe) OnKeyPressed(ch rune, key Key, mods KeyModifiers) InputResult {
	return p.record("key %d", key)
}

func (p *probe) last() string {
	if len(p.log) == 0 {
		return ""
	}
	return p.log[len(p.log)-1]
}

// expectPanic runs fn and fails unless it panics with an error wrapping
// sentinel.
func expectPanic(t *testing.T, sentinel error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with %v, got none", sentinel)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, sentinel) {
			t.Fatalf("panic = %v, want %v", r, sentinel)
		}
	}()
	fn()
}

// expectPanicMessage runs fn and fails unless it panics with a message
// containing substr.
func expectPanicMessage(t *testing.T, substr string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic mentioning %q, got none", substr)
		}
		if msg := fmt.Sprint(r); !strings.Contains(msg, substr) {
			t.Fatalf("panic message %q should mention %q", msg, substr)
		}
	}()
	fn()
}

// newTestGUI returns a GUI with a plain root panel of the given size.
func newTestGUI(width, height int) (*GUI, *PlainPanel) {
	g := NewGUI("")
	root := NewPlainPanel()
	root.SetSize(width, height)
	g.SetRoot(root)
	return g, root
}

// textCommands returns the strings drawn by text commands.
func textCommands(d *DrawList) []string {
	var out []string
	for _, c := range d.Commands {
		if c.Type == CommandText {
			out = append(out, c.Text)
		}
	}
	return out
}
