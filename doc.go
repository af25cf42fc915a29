// Package thicket is a retained-mode widget toolkit for game GUIs.
//
// Thicket owns the widget tree, layout, focus and input dispatch. Drawing
// goes through the [DrawContext] interface, so the core never touches a
// graphics API; the ebitenhost subpackage replays frames onto [Ebitengine].
//
// # Quick start
//
// Build a tree under a [GUI], then hand it to a host:
//
//	gui := thicket.NewGUI("Settings")
//	root := thicket.NewBoxPanel(thicket.AxisVertical)
//	gui.SetRoot(root)
//	root.AddSized(thicket.NewButton("Apply"), 80, 20)
//	gui.AddPainters()
//
//	ebitenhost.Run(gui, ebitenhost.RunConfig{Title: "Demo", Width: 320, Height: 240})
//
// For full control, drive the GUI from your own loop:
//
//	gui.MouseDown(x, y, thicket.MouseButtonLeft)
//	list := gui.Render(0, 0, mouseX, mouseY)
//	// replay list.Commands onto your surface
//
// # Widget tree
//
// Every widget embeds [BaseWidget]; panels embed [BasePanel]. A tree is
// indexed by [WidgetID], and parents are resolved through that index, so
// widgets never point back at their parents. Adding a widget that already
// has a parent panics, as does creating a cycle.
//
// Layout is explicit: call [GUI.Layout] (or [GUI.Render], which does it)
// after changing the tree. Layouts are idempotent.
//
// Panels: [BoxPanel] stacks along an axis, [GridPanel] places children on
// cells, [PlainPanel] uses absolute positions, [CardPanel] shows one child
// at a time and [TabPanel] adds a clickable ribbon over a card panel.
//
// # Input
//
// Hosts feed pointer and key events to [GUI.MouseDown], [GUI.MouseDrag],
// [GUI.MouseUp], [GUI.MouseScroll] and [GUI.KeyPressed]. The widget under a
// press captures the pointer until release; drags are delivered to it even
// outside its bounds. Keys go only to the focused widget.
//
// GUI-level callbacks are registered with [GUI.OnEvent]; every event is
// also forwarded to an optional [EventSink] such as the Donburi bridge in
// thicket/ecs.
//
// # Painting
//
// Sprites are nine-sliced from textures named by a prefix plus a [Style]
// suffix. Tiled regions are split by [Slices] so seams stay even.
// Background painters ([BackgroundPainter]) draw panels; [StyleVariants]
// switches sprite per style.
//
// Animated widgets read a [Clock] once per paint. Tests swap in a
// [ManualClock] via [GUI.SetClock].
//
// [Ebitengine]: https://ebitengine.org
package thicket
