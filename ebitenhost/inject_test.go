package ebitenhost

import (
	"testing"

	"github.com/phanxgames/thicket"
)

func TestInjectClickUsesScreenCoordinates(t *testing.T) {
	g, root := newHostGUI()
	clicks := 0
	btn := thicket.NewButton("OK").SetOnClick(func() { clicks++ })
	root.Add(btn, 10, 10, 40, 20)
	s := newTestScreen(g)

	if x, y := s.Origin(); x != 50 || y != 50 {
		t.Fatalf("origin = (%d,%d), want (50,50)", x, y)
	}

	s.InjectClick(65, 65)
	if s.PendingInjections() != 2 {
		t.Fatalf("pending = %d, want 2", s.PendingInjections())
	}
	s.processInjectedInput()
	if clicks != 0 || g.Captured() != btn {
		t.Fatalf("after press: clicks %d, captured %v", clicks, g.Captured())
	}
	s.processInjectedInput()
	if clicks != 1 || g.Captured() != nil {
		t.Errorf("after release: clicks %d, captured %v", clicks, g.Captured())
	}
	if s.processInjectedInput() {
		t.Error("empty queue reported an event")
	}
}

func TestInjectClickOutsideButton(t *testing.T) {
	g, root := newHostGUI()
	clicks := 0
	root.Add(thicket.NewButton("OK").SetOnClick(func() { clicks++ }), 10, 10, 40, 20)
	s := newTestScreen(g)

	s.InjectClick(15, 15) // GUI (-35,-35): outside the root
	drain(t, s)
	if clicks != 0 {
		t.Errorf("clicks = %d, want 0", clicks)
	}
}

func TestInjectDragInterpolates(t *testing.T) {
	g, root := newHostGUI()
	root.Add(thicket.NewButton("drag me"), 0, 0, 100, 20)
	s := newTestScreen(g)
	drags := recordEvents(g, thicket.EventMouseDrag)

	s.InjectDrag(50, 55, 80, 55, 4)
	if s.PendingInjections() != 4 {
		t.Fatalf("pending = %d, want 4", s.PendingInjections())
	}
	drain(t, s)

	if len(*drags) != 2 {
		t.Fatalf("drag events = %d, want 2", len(*drags))
	}
	for i, wantX := range []int{10, 20} {
		if e := (*drags)[i]; e.X != wantX || e.Y != 5 || e.DeltaX != 10 {
			t.Errorf("drag %d = (%d,%d) delta %v, want (%d,5) delta 10", i, e.X, e.Y, e.DeltaX, wantX)
		}
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	g, _ := newHostGUI()
	s := newTestScreen(g)
	s.InjectDrag(0, 0, 10, 10, 0)
	if s.PendingInjections() != 2 {
		t.Errorf("pending = %d, want press and release only", s.PendingInjections())
	}
}

func TestProcessPointerStateMachine(t *testing.T) {
	g, root := newHostGUI()
	root.Add(thicket.NewButton("b"), 0, 0, 50, 20)
	downs := recordEvents(g, thicket.EventMouseDown)
	drags := recordEvents(g, thicket.EventMouseDrag)
	ups := recordEvents(g, thicket.EventMouseUp)

	var ps pointerState
	processPointer(g, &ps, 5, 5, false, thicket.MouseButtonLeft) // hover
	processPointer(g, &ps, 5, 5, true, thicket.MouseButtonRight) // press
	processPointer(g, &ps, 5, 5, true, thicket.MouseButtonLeft)  // held, no motion
	processPointer(g, &ps, 8, 5, true, thicket.MouseButtonLeft)  // drag
	processPointer(g, &ps, 8, 5, false, thicket.MouseButtonLeft) // release
	processPointer(g, &ps, 9, 5, false, thicket.MouseButtonLeft) // hover

	if len(*downs) != 1 || len(*drags) != 1 || len(*ups) != 1 {
		t.Fatalf("downs %d drags %d ups %d, want 1 each", len(*downs), len(*drags), len(*ups))
	}
	if (*drags)[0].Button != thicket.MouseButtonRight || (*ups)[0].Button != thicket.MouseButtonRight {
		t.Error("drag and release should keep the button from the press")
	}
	if ps.down || ps.lastX != 9 {
		t.Errorf("final state = %+v", ps)
	}
}
