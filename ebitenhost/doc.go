// Package ebitenhost runs a thicket GUI inside an Ebitengine game loop.
//
// A [Screen] implements [ebiten.Game]. Every tick it polls the mouse,
// wheel and keyboard and forwards them to the GUI; every frame it lays the
// GUI out, records a draw list and replays it with a [Canvas], which maps
// texture ids through an [Atlas] and draws text with a TrueType [Face].
//
//	if err := ebitenhost.Run(gui, ebitenhost.RunConfig{Title: "Demo"}); err != nil {
//		log.Fatal(err)
//	}
//
// # Automated testing
//
// Synthetic pointer input can be queued with [Screen.InjectClick] and
// [Screen.InjectDrag]; injected events go through the same path as the
// real mouse. A [TestRunner] loaded from a JSON script sequences clicks,
// drags, key presses, waits and screenshots:
//
//	{"steps": [
//	  {"action": "click", "x": 40, "y": 30},
//	  {"action": "wait", "frames": 5},
//	  {"action": "key", "key": "tab"},
//	  {"action": "screenshot", "label": "focused"}
//	]}
//
// # Configuration
//
// [LoadConfig] reads a YAML file with style, debug, font size, wheel scale,
// FPS overlay and screenshot directory settings. Set RunConfig.ConfigPath
// to apply one at startup.
package ebitenhost
