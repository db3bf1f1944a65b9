// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies an Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	MouseX int
	MouseY int
	// RelX and RelY are the motion since the previous mouse event.
	RelX   int
	RelY   int
	Wheel  float32
	Button uint8
}

// Input turns SDL events into per-frame events and held-key state.
type Input struct {
	events []Event
	held   map[sdl.Scancode]bool

	dragging     bool
	dragX, dragY float32
	wheel        float32
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
		held:   make(map[sdl.Scancode]bool),
	}
}

// Update polls SDL events. Returns true if the application should quit.
func (i *Input) Update() bool {
	i.beginFrame()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		e, ok := convert(event)
		if !ok {
			continue
		}
		i.apply(e)
		if e.Type == EventQuit {
			return true
		}
	}

	return false
}

func convert(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{Type: EventWindowResize, Width: int(e.Data1), Height: int(e.Data2)}, true
		}

	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return Event{}, false
		}
		if e.Type == sdl.KEYDOWN {
			return Event{Type: EventKeyDown, Key: e.Keysym.Scancode}, true
		}
		return Event{Type: EventKeyUp, Key: e.Keysym.Scancode}, true

	case *sdl.MouseMotionEvent:
		return Event{
			Type:   EventMouseMove,
			MouseX: int(e.X),
			MouseY: int(e.Y),
			RelX:   int(e.XRel),
			RelY:   int(e.YRel),
		}, true

	case *sdl.MouseButtonEvent:
		t := EventMouseUp
		if e.Type == sdl.MOUSEBUTTONDOWN {
			t = EventMouseDown
		}
		return Event{Type: t, MouseX: int(e.X), MouseY: int(e.Y), Button: e.Button}, true

	case *sdl.MouseWheelEvent:
		return Event{Type: EventMouseWheel, Wheel: float32(e.Y)}, true
	}
	return Event{}, false
}

func (i *Input) beginFrame() {
	i.events = i.events[:0]
	i.dragX, i.dragY = 0, 0
	i.wheel = 0
}

// apply records e and folds it into the held and accumulated state.
func (i *Input) apply(e Event) {
	i.events = append(i.events, e)

	switch e.Type {
	case EventKeyDown:
		i.held[e.Key] = true
	case EventKeyUp:
		delete(i.held, e.Key)
	case EventMouseDown:
		if e.Button == sdl.BUTTON_LEFT {
			i.dragging = true
		}
	case EventMouseUp:
		if e.Button == sdl.BUTTON_LEFT {
			i.dragging = false
		}
	case EventMouseMove:
		if i.dragging {
			i.dragX += float32(e.RelX)
			i.dragY += float32(e.RelY)
		}
	case EventMouseWheel:
		i.wheel += e.Wheel
	}
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed checks if a specific key was pressed this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}

// IsKeyHeld reports whether a key is currently down.
func (i *Input) IsKeyHeld(scancode sdl.Scancode) bool {
	return i.held[scancode]
}

// MoveAxis returns movement intent from WASD/arrows (forward, right) and
// E/Q (up), each in [-1, 1].
func (i *Input) MoveAxis() (forward, right, up float32) {
	axis := func(pos, neg bool) float32 {
		switch {
		case pos && !neg:
			return 1
		case neg && !pos:
			return -1
		}
		return 0
	}
	forward = axis(
		i.held[sdl.SCANCODE_W] || i.held[sdl.SCANCODE_UP],
		i.held[sdl.SCANCODE_S] || i.held[sdl.SCANCODE_DOWN],
	)
	right = axis(
		i.held[sdl.SCANCODE_D] || i.held[sdl.SCANCODE_RIGHT],
		i.held[sdl.SCANCODE_A] || i.held[sdl.SCANCODE_LEFT],
	)
	up = axis(i.held[sdl.SCANCODE_E], i.held[sdl.SCANCODE_Q])
	return forward, right, up
}

// Drag returns the left-button drag distance accumulated this frame.
func (i *Input) Drag() (dx, dy float32) {
	return i.dragX, i.dragY
}

// Wheel returns the scroll distance accumulated this frame.
func (i *Input) Wheel() float32 {
	return i.wheel
}
