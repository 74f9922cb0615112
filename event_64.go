//go:build linux && !(386 || arm || mips || mipsle)

package evdev

import (
	"encoding/binary"

	"golang.org/x/sys/unix"
)

// Targets with a 64-bit time_t: struct input_event starts with two
// signed 64-bit time fields.
const timeFieldBytes = 8

func unmarshalTime(b []byte, tv *unix.Timeval) {
	tv.Sec = int64(binary.LittleEndian.Uint64(b[0:8]))
	tv.Usec = int64(binary.LittleEndian.Uint64(b[8:16]))
}

func marshalTime(tv *unix.Timeval, b []byte) {
	binary.LittleEndian.PutUint64(b[0:8], uint64(tv.Sec))
	binary.LittleEndian.PutUint64(b[8:16], uint64(tv.Usec))
}
