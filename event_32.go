//go:build linux && (386 || arm || mips || mipsle)

package evdev

import (
	"encoding/binary"

	"golang.org/x/sys/unix"
)

// Targets with a 32-bit time_t: struct input_event starts with two
// signed 32-bit time fields.
const timeFieldBytes = 4

func unmarshalTime(b []byte, tv *unix.Timeval) {
	tv.Sec = int32(binary.LittleEndian.Uint32(b[0:4]))
	tv.Usec = int32(binary.LittleEndian.Uint32(b[4:8]))
}

func marshalTime(tv *unix.Timeval, b []byte) {
	binary.LittleEndian.PutUint32(b[0:4], uint32(tv.Sec))
	binary.LittleEndian.PutUint32(b[4:8], uint32(tv.Usec))
}
