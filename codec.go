package evdev

import (
	"encoding/binary"
	"errors"
	"io"
)

// EventSize is the width in bytes of one struct input_event record for the
// target platform. The time-field width is fixed at compile time, it is a
// property of the kernel/libc ABI, not of the data.
const EventSize = 2*timeFieldBytes + 8

// ErrTruncated is returned when a buffer does not hold a complete event
// record. The kernel delivers whole records per read, so hitting this on
// live data indicates either corrupted input or a record-width mismatch.
var ErrTruncated = errors.New("truncated input event record")

// UnmarshalEvent decodes one input_event record from the front of buf into
// ev and returns the number of bytes consumed. It performs no allocation,
// decoding a batch read is a loop advancing buf by the returned count.
//
// Type and code are extracted as-is: values unknown to the code tables
// decode fine and keep their numeric identity.
func UnmarshalEvent(buf []byte, ev *InputEvent) (int, error) {
	if len(buf) < EventSize {
		return 0, ErrTruncated
	}
	unmarshalTime(buf, &ev.Time)
	ev.Type = EvType(binary.LittleEndian.Uint16(buf[2*timeFieldBytes:]))
	ev.Code = EvCode(binary.LittleEndian.Uint16(buf[2*timeFieldBytes+2:]))
	ev.Value = int32(binary.LittleEndian.Uint32(buf[2*timeFieldBytes+4:]))
	return EventSize, nil
}

// MarshalEvent encodes ev into the front of buf and returns the number of
// bytes written. io.ErrShortBuffer is returned when buf cannot hold a full
// record.
func MarshalEvent(ev *InputEvent, buf []byte) (int, error) {
	if len(buf) < EventSize {
		return 0, io.ErrShortBuffer
	}
	marshalTime(&ev.Time, buf)
	binary.LittleEndian.PutUint16(buf[2*timeFieldBytes:], uint16(ev.Type))
	binary.LittleEndian.PutUint16(buf[2*timeFieldBytes+2:], uint16(ev.Code))
	binary.LittleEndian.PutUint32(buf[2*timeFieldBytes+4:], uint32(ev.Value))
	return EventSize, nil
}
