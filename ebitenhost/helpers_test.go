package ebitenhost

import (
	"testing"

	"github.com/phanxgames/thicket"
)

// newHostGUI returns a GUI whose root is a 100x60 plain panel.
func newHostGUI() (*thicket.GUI, *thicket.PlainPanel) {
	g := thicket.NewGUI("")
	root := thicket.NewPlainPanel()
	root.SetSize(100, 60)
	g.SetRoot(root)
	return g, root
}

// newTestScreen builds a screen without loading a font, arranged on a
// 200x160 logical screen so the GUI origin is (50, 50).
func newTestScreen(g *thicket.GUI) *Screen {
	s := &Screen{gui: g, cfg: withDefaults(RunConfig{})}
	s.screenshotDir = s.cfg.ScreenshotDir
	s.arrange(200, 160)
	return s
}

// recordEvents collects every event of type typ emitted by g.
func recordEvents(g *thicket.GUI, typ thicket.EventType) *[]thicket.WidgetEvent {
	var events []thicket.WidgetEvent
	g.OnEvent(typ, func(e thicket.WidgetEvent) { events = append(events, e) })
	return &events
}

// drain consumes the whole inject queue, one event per simulated frame.
func drain(t *testing.T, s *Screen) {
	t.Helper()
	for i := 0; s.processInjectedInput(); i++ {
		if i > 1000 {
			t.Fatal("inject queue never drained")
		}
	}
}
