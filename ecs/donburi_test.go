package ecs

import (
	"testing"

	"github.com/phanxgames/thicket"

	"github.com/yohamta/donburi"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []thicket.WidgetEvent
	WidgetEventType.Subscribe(world, func(w donburi.World, e thicket.WidgetEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(thicket.WidgetEvent{
		Type:     thicket.EventMouseDown,
		WidgetID: 42,
		X:        100,
		Y:        200,
		Button:   thicket.MouseButtonLeft,
	})
	sink.EmitEvent(thicket.WidgetEvent{
		Type: thicket.EventKeyPressed,
		Key:  thicket.KeyEnter,
	})

	// Events are queued until processed.
	WidgetEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != thicket.EventMouseDown || e0.WidgetID != 42 {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.X != 100 || e0.Y != 200 {
		t.Errorf("event 0 position: (%d,%d)", e0.X, e0.Y)
	}
	if received[1].Key != thicket.KeyEnter {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_GUIClick(t *testing.T) {
	world := donburi.NewWorld()
	gui := thicket.NewGUI("")
	gui.SetEventSink(NewDonburiSink(world))

	root := thicket.NewPlainPanel()
	gui.SetRoot(root)
	btn := thicket.NewButton("OK")
	root.Add(btn, 10, 10, 40, 20)
	gui.Layout()

	var clicks int
	WidgetEventType.Subscribe(world, func(w donburi.World, e thicket.WidgetEvent) {
		if e.Type == thicket.EventClick && e.WidgetID == btn.ID() {
			clicks++
		}
	})

	gui.MouseDown(20, 20, thicket.MouseButtonLeft)
	gui.MouseUp(20, 20, thicket.MouseButtonLeft)
	WidgetEventType.ProcessEvents(world)

	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}
