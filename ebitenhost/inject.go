package ebitenhost

import (
	"math"

	"github.com/phanxgames/thicket"
)

// syntheticPointerEvent is a single injected pointer sample in screen
// coordinates, the same space as the real cursor.
type syntheticPointerEvent struct {
	screenX, screenY int
	pressed          bool
	button           thicket.MouseButton
}

// InjectPress queues a left-button press at the given screen coordinates.
// The event is consumed on the next frame's Update.
func (s *Screen) InjectPress(x, y int) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: true,
		button:  thicket.MouseButtonLeft,
	})
}

// InjectMove queues pointer motion with the button held. Use it between
// InjectPress and InjectRelease to drag.
func (s *Screen) InjectMove(x, y int) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: true,
		button:  thicket.MouseButtonLeft,
	})
}

// InjectRelease queues a button release at the given screen coordinates.
func (s *Screen) InjectRelease(x, y int) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		screenX: x, screenY: y,
		pressed: false,
		button:  thicket.MouseButtonLeft,
	})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (s *Screen) InjectClick(x, y int) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), frames-2 interpolated moves
// and a release at (toX, toY). The sequence consumes frames frames; the
// minimum is 2.
func (s *Screen) InjectDrag(fromX, fromY, toX, toY, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + int(math.Round(float64(toX-fromX)*t))
		y := fromY + int(math.Round(float64(toY-fromY)*t))
		s.InjectMove(x, y)
	}
	s.InjectRelease(toX, toY)
}

// PendingInjections returns the number of queued synthetic events.
func (s *Screen) PendingInjections() int { return len(s.injectQueue) }

// processInjectedInput pops one queued event and feeds it through the same
// pointer path as the real mouse. It reports whether an event was consumed.
func (s *Screen) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	processPointer(s.gui, &s.pointer, evt.screenX-s.originX, evt.screenY-s.originY, evt.pressed, evt.button)
	return true
}
