package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/thicket"
)

// Key repeat timing in ticks.
const (
	keyRepeatDelay    = 30
	keyRepeatInterval = 3
)

// pointerState tracks one pointer across frames so presses, drags and
// releases are delivered exactly once.
type pointerState struct {
	down         bool
	button       thicket.MouseButton
	lastX, lastY int
}

// processPointer feeds one pointer sample in GUI coordinates through the
// GUI: a new press becomes MouseDown, motion while held becomes MouseDrag,
// and a release becomes MouseUp with the button from the press.
func processPointer(g *thicket.GUI, ps *pointerState, x, y int, pressed bool, button thicket.MouseButton) {
	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		g.MouseDown(x, y, button)
	case pressed && ps.down:
		if x != ps.lastX || y != ps.lastY {
			g.MouseDrag(x, y, ps.button)
		}
	case !pressed && ps.down:
		ps.down = false
		g.MouseUp(x, y, ps.button)
	}
	ps.lastX, ps.lastY = x, y
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() thicket.KeyModifiers {
	var mods thicket.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= thicket.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= thicket.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= thicket.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= thicket.ModMeta
	}
	return mods
}

// readMouseButton reports whether any button is held and which one, in
// left, right, middle priority.
func readMouseButton() (bool, thicket.MouseButton) {
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		return true, thicket.MouseButtonLeft
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		return true, thicket.MouseButtonRight
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		return true, thicket.MouseButtonMiddle
	}
	return false, thicket.MouseButtonLeft
}

// keyMap translates ebiten keys into thicket keys.
var keyMap = map[ebiten.Key]thicket.Key{
	ebiten.KeyEnter:       thicket.KeyEnter,
	ebiten.KeyNumpadEnter: thicket.KeyKPEnter,
	ebiten.KeySpace:       thicket.KeySpace,
	ebiten.KeyTab:         thicket.KeyTab,
	ebiten.KeyEscape:      thicket.KeyEscape,
	ebiten.KeyBackspace:   thicket.KeyBackspace,
	ebiten.KeyArrowLeft:   thicket.KeyLeft,
	ebiten.KeyArrowRight:  thicket.KeyRight,
	ebiten.KeyArrowUp:     thicket.KeyUp,
	ebiten.KeyArrowDown:   thicket.KeyDown,
	ebiten.KeyHome:        thicket.KeyHome,
	ebiten.KeyEnd:         thicket.KeyEnd,
	ebiten.KeyPageUp:      thicket.KeyPageUp,
	ebiten.KeyPageDown:    thicket.KeyPageDown,
}

// translateKey returns the thicket key for k, or KeyUnknown.
func translateKey(k ebiten.Key) thicket.Key {
	if key, ok := keyMap[k]; ok {
		return key
	}
	return thicket.KeyUnknown
}

// shouldRepeat reports whether a key held for the given number of ticks
// fires this tick. The first tick always fires.
func shouldRepeat(ticks int) bool {
	if ticks == 1 {
		return true
	}
	return ticks >= keyRepeatDelay && (ticks-keyRepeatDelay)%keyRepeatInterval == 0
}

// processKeys delivers pressed and repeating keys, then typed characters,
// to the focused widget.
func (s *Screen) processKeys(mods thicket.KeyModifiers) {
	s.keys = inpututil.AppendPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		key := translateKey(k)
		if key == thicket.KeyUnknown {
			continue
		}
		if shouldRepeat(inpututil.KeyPressDuration(k)) {
			s.gui.KeyPressed(0, key, mods)
		}
	}
	s.chars = ebiten.AppendInputChars(s.chars[:0])
	for _, ch := range s.chars {
		if ch == ' ' {
			continue
		}
		s.gui.KeyPressed(ch, thicket.KeyUnknown, mods)
	}
}

// processInput polls the mouse, wheel and keyboard. Injected pointer
// events replace the real mouse for the frame they are consumed in.
func (s *Screen) processInput() {
	mods := readModifiers()
	if !s.processInjectedInput() {
		mx, my := ebiten.CursorPosition()
		pressed, button := readMouseButton()
		processPointer(s.gui, &s.pointer, mx-s.originX, my-s.originY, pressed, button)
	}

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		s.gui.MouseScroll(s.pointer.lastX, s.pointer.lastY, wx*s.cfg.WheelScale, wy*s.cfg.WheelScale)
	}
	s.processKeys(mods)
}
