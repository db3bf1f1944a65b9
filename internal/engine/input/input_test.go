package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestMoveAxis(t *testing.T) {
	in := New()

	if f, r, u := in.MoveAxis(); f != 0 || r != 0 || u != 0 {
		t.Fatalf("expected idle axis, got %v %v %v", f, r, u)
	}

	in.apply(Event{Type: EventKeyDown, Key: sdl.SCANCODE_W})
	in.apply(Event{Type: EventKeyDown, Key: sdl.SCANCODE_A})
	in.apply(Event{Type: EventKeyDown, Key: sdl.SCANCODE_E})
	if f, r, u := in.MoveAxis(); f != 1 || r != -1 || u != 1 {
		t.Errorf("expected (1, -1, 1), got (%v, %v, %v)", f, r, u)
	}

	// Opposing keys cancel
	in.apply(Event{Type: EventKeyDown, Key: sdl.SCANCODE_DOWN})
	if f, _, _ := in.MoveAxis(); f != 0 {
		t.Errorf("expected W+Down to cancel, got %v", f)
	}

	in.apply(Event{Type: EventKeyUp, Key: sdl.SCANCODE_W})
	if f, _, _ := in.MoveAxis(); f != -1 {
		t.Errorf("expected backward after releasing W, got %v", f)
	}
	if in.IsKeyHeld(sdl.SCANCODE_W) {
		t.Error("W should no longer be held")
	}
}

func TestDragAndWheel(t *testing.T) {
	in := New()

	// Motion without a held button is not a drag
	in.apply(Event{Type: EventMouseMove, RelX: 5, RelY: 5})
	if dx, dy := in.Drag(); dx != 0 || dy != 0 {
		t.Errorf("expected no drag, got %v %v", dx, dy)
	}

	in.apply(Event{Type: EventMouseDown, Button: sdl.BUTTON_LEFT})
	in.apply(Event{Type: EventMouseMove, RelX: 3, RelY: -2})
	in.apply(Event{Type: EventMouseMove, RelX: 1, RelY: 1})
	in.apply(Event{Type: EventMouseWheel, Wheel: 2})
	if dx, dy := in.Drag(); dx != 4 || dy != -1 {
		t.Errorf("expected drag (4, -1), got (%v, %v)", dx, dy)
	}
	if in.Wheel() != 2 {
		t.Errorf("expected wheel 2, got %v", in.Wheel())
	}
	if len(in.Events()) != 5 {
		t.Errorf("expected 5 events, got %d", len(in.Events()))
	}

	in.beginFrame()
	if dx, dy := in.Drag(); dx != 0 || dy != 0 || in.Wheel() != 0 || len(in.Events()) != 0 {
		t.Error("frame state should reset")
	}

	// Button state survives the frame boundary
	in.apply(Event{Type: EventMouseMove, RelX: 1})
	if dx, _ := in.Drag(); dx != 1 {
		t.Errorf("expected drag to continue across frames, got %v", dx)
	}
}
