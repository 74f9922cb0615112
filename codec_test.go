package evdev

import (
	"io"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestEventSizeMatchesKernelABI(t *testing.T) {
	// struct input_event is one timeval plus type, code and value
	assert.Equal(t, int(unsafe.Sizeof(unix.Timeval{}))+8, EventSize)
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	events := []InputEvent{
		{Type: EV_KEY, Code: KEY_A, Value: 1},
		{Type: EV_KEY, Code: KEY_A, Value: 0},
		{Type: EV_KEY, Code: KEY_LEFTSHIFT, Value: 2},
		{Type: EV_REL, Code: REL_X, Value: -17},
		{Type: EV_ABS, Code: ABS_MT_POSITION_X, Value: 1920},
		{Type: EV_SYN, Code: SYN_REPORT, Value: 0},
		{Type: EV_MSC, Code: MSC_SCAN, Value: 458756},
		{Type: EV_REL, Code: REL_WHEEL, Value: -2147483648},
		{Type: EV_ABS, Code: ABS_Z, Value: 2147483647},
	}

	var buf [EventSize]byte
	for _, ev := range events {
		ev.Time = unix.Timeval{Sec: 1694000000, Usec: 123456}

		n, err := MarshalEvent(&ev, buf[:])
		require.NoError(t, err)
		assert.Equal(t, EventSize, n)

		var decoded InputEvent
		n, err = UnmarshalEvent(buf[:], &decoded)
		require.NoError(t, err)
		assert.Equal(t, EventSize, n)
		assert.Equal(t, ev, decoded)
	}
}

func TestUnmarshalTruncated(t *testing.T) {
	var buf [EventSize]byte

	for size := 0; size < EventSize; size++ {
		var ev InputEvent
		n, err := UnmarshalEvent(buf[:size], &ev)
		assert.ErrorIs(t, err, ErrTruncated, "size %d", size)
		assert.Equal(t, 0, n)
	}
}

func TestMarshalShortBuffer(t *testing.T) {
	ev := InputEvent{Type: EV_KEY, Code: KEY_Q, Value: 1}
	buf := make([]byte, EventSize-1)

	n, err := MarshalEvent(&ev, buf)
	assert.ErrorIs(t, err, io.ErrShortBuffer)
	assert.Equal(t, 0, n)
}

func TestUnmarshalBatch(t *testing.T) {
	batch := []InputEvent{
		{Type: EV_KEY, Code: KEY_SPACE, Value: 1},
		{Type: EV_MSC, Code: MSC_SCAN, Value: 0x7002c},
		{Type: EV_SYN, Code: SYN_REPORT, Value: 0},
	}

	buf := make([]byte, 0, len(batch)*EventSize)
	for i := range batch {
		var record [EventSize]byte
		_, err := MarshalEvent(&batch[i], record[:])
		require.NoError(t, err)
		buf = append(buf, record[:]...)
	}

	var decoded []InputEvent
	for len(buf) > 0 {
		var ev InputEvent
		n, err := UnmarshalEvent(buf, &ev)
		require.NoError(t, err)
		buf = buf[n:]
		decoded = append(decoded, ev)
	}

	assert.Equal(t, batch, decoded)
}

func TestUnmarshalUnknownTypeAndCode(t *testing.T) {
	// codes the tables have never heard of decode fine and keep their
	// numeric identity
	ev := InputEvent{Type: EvType(0x1e), Code: EvCode(0x2fe), Value: 42}

	var buf [EventSize]byte
	_, err := MarshalEvent(&ev, buf[:])
	require.NoError(t, err)

	var decoded InputEvent
	_, err = UnmarshalEvent(buf[:], &decoded)
	require.NoError(t, err)
	assert.Equal(t, EvType(0x1e), decoded.Type)
	assert.Equal(t, EvCode(0x2fe), decoded.Code)
	assert.Equal(t, int32(42), decoded.Value)
}
