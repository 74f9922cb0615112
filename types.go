package evdev

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// EvType is an event type as reported by the kernel, e.g. EV_KEY, EV_ABS.
type EvType uint16

// EvCode is an event code, meaningful only together with its EvType.
type EvCode uint16

// EvProp is an input device property bit, e.g. INPUT_PROP_POINTER.
type EvProp uint16

// InputID identifies a device by its bus type, vendor, product and version,
// matching struct input_id from the kernel uapi.
type InputID struct {
	BusType uint16
	Vendor  uint16
	Product uint16
	Version uint16
}

// AbsInfo describes one absolute axis, matching struct input_absinfo.
// Value is the last reported position on the axis, Minimum and Maximum its
// device-defined range. Fuzz and Flat are noise-filtering hints that the
// kernel reports but does not apply for evdev readers, Resolution is in
// units/mm (units/radian for rotational axes).
type AbsInfo struct {
	Value      int32
	Minimum    int32
	Maximum    int32
	Fuzz       int32
	Flat       int32
	Resolution int32
}

// InputEvent matches struct input_event. The timestamp width follows the
// platform's timeval ABI, which unix.Timeval already encodes per target.
type InputEvent struct {
	Time  unix.Timeval
	Type  EvType
	Code  EvCode
	Value int32
}

// TypeName returns the symbolic name of the event's type.
func (e *InputEvent) TypeName() string {
	return TypeName(e.Type)
}

// CodeName returns the symbolic name of the event's code.
func (e *InputEvent) CodeName() string {
	return CodeName(e.Type, e.Code)
}

// Timestamp converts the kernel timeval into a time.Time.
func (e *InputEvent) Timestamp() time.Time {
	return time.Unix(int64(e.Time.Sec), int64(e.Time.Usec)*1000)
}

func (e *InputEvent) String() string {
	return fmt.Sprintf("type: 0x%02x [%s], code: 0x%03x [%s], value: %d",
		uint16(e.Type), e.TypeName(), uint16(e.Code), e.CodeName(), e.Value)
}
