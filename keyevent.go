package evdev

import "fmt"

type KeyEventState uint8

const (
	KeyUp   KeyEventState = 0x0
	KeyDown KeyEventState = 0x1
	KeyHold KeyEventState = 0x2
)

// KeyEvent is a typed view over an EV_KEY InputEvent, mapping the raw
// value onto up/down/hold states.
type KeyEvent struct {
	Event    *InputEvent
	Scancode EvCode
	State    KeyEventState
}

// NewKeyEvent wraps an EV_KEY event. Values other than 0, 1 and 2 do not
// occur for key events, such an event wraps with KeyUp.
func NewKeyEvent(ev *InputEvent) *KeyEvent {
	kev := &KeyEvent{Event: ev, Scancode: ev.Code}

	switch ev.Value {
	case 1:
		kev.State = KeyDown
	case 2:
		kev.State = KeyHold
	default:
		kev.State = KeyUp
	}

	return kev
}

func (kev *KeyEvent) String() string {
	state := "up"
	switch kev.State {
	case KeyDown:
		state = "down"
	case KeyHold:
		state = "hold"
	}
	return fmt.Sprintf("key %s [%s] (%s)",
		CodeName(EV_KEY, kev.Scancode), kev.Event.Timestamp(), state)
}
