package evdev

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewKeyEventStates(t *testing.T) {
	for _, tc := range []struct {
		value int32
		state KeyEventState
	}{
		{0, KeyUp},
		{1, KeyDown},
		{2, KeyHold},
		{-1, KeyUp},
		{3, KeyUp},
	} {
		ev := &InputEvent{Type: EV_KEY, Code: KEY_SPACE, Value: tc.value}
		kev := NewKeyEvent(ev)
		assert.Equal(t, tc.state, kev.State, "value %d", tc.value)
		assert.Equal(t, EvCode(KEY_SPACE), kev.Scancode)
		assert.Same(t, ev, kev.Event)
	}
}

func TestKeyEventString(t *testing.T) {
	kev := NewKeyEvent(&InputEvent{Type: EV_KEY, Code: KEY_A, Value: 1})
	assert.Contains(t, kev.String(), "KEY_A")
	assert.Contains(t, kev.String(), "down")
}
