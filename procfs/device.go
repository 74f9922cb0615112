package procfs

import (
	"fmt"
	"strings"

	"github.com/hxkit/evdev"
)

// PhysicalID groups handlers that hang off the same physical connection.
type PhysicalID string

type HandlerType int

const (
	HandlerUnknown    HandlerType = iota
	HandlerKeyboard               // standard keyboard, 6KRO mode
	HandlerKeyboardN              // N-key rollover mode
	HandlerMultimedia             // media keys: next track, volume and so on
	HandlerSystem                 // system keys: sleep, power
	HandlerMouse
	HandlerJoystick
)

func (ht HandlerType) String() string {
	switch ht {
	case HandlerKeyboard:
		return "KEYBOARD"
	case HandlerKeyboardN:
		return "KEYBOARD_NKRO"
	case HandlerMultimedia:
		return "MULTIMEDIA"
	case HandlerSystem:
		return "SYSTEM"
	case HandlerMouse:
		return "MOUSE"
	case HandlerJoystick:
		return "JOYSTICK"
	default:
		return "UNKNOWN"
	}
}

// HandlerType classifies a handler by the event types it supports, falling
// back to the handler names the kernel attached. The EV-word patterns are
// the type sets typical keyboard and mouse interfaces expose.
func (d *DeviceInfo) HandlerType() HandlerType {
	switch d.Bitmaps.EV[0] {
	case 0x120013:
		return HandlerKeyboard
	case 0x100013:
		return HandlerKeyboardN
	case 0x17, 0x12001f:
		return HandlerMouse
	case 0x13:
		return HandlerSystem
	case 0x1f:
		return HandlerMultimedia
	}

	for _, h := range d.Handlers {
		switch {
		case strings.HasPrefix(h, "js"):
			return HandlerJoystick
		case strings.HasPrefix(h, "mouse"):
			return HandlerMouse
		}
	}

	return HandlerUnknown
}

type DeviceType int

const (
	UnknownDevice DeviceType = iota
	KeyboardDevice
	MouseDevice
	JoystickDevice
)

func (t DeviceType) String() string {
	switch t {
	case KeyboardDevice:
		return "Keyboard"
	case MouseDevice:
		return "Mouse"
	case JoystickDevice:
		return "Joystick"
	default:
		return "Unknown"
	}
}

// Device is one physical piece of hardware with all the handlers the
// kernel split it into.
type Device struct {
	ID   evdev.InputID
	Name string
	Uniq string
	// Phys is the common prefix of the handlers' Phys values, e.g.
	// "usb-0000:00:14.0-3" for "usb-0000:00:14.0-3/input0"
	Phys string

	DeviceType DeviceType
	Handlers   map[HandlerType]DeviceInfo
}

func (d *Device) String() string {
	return fmt.Sprintf(
		"[%s], \"%s\", %d handlers (0x%04x, 0x%04x, 0x%04x, 0x%04x, \"%s\")",
		d.DeviceType, d.Name, len(d.Handlers),
		d.ID.BusType, d.ID.Vendor, d.ID.Product, d.ID.Version, d.Uniq,
	)
}

// PhysicalID returns the grouping key for the device.
func (d *Device) PhysicalID() PhysicalID {
	return PhysicalID(d.Phys)
}

func contains(in map[HandlerType]DeviceInfo, handlerTypes ...HandlerType) bool {
	for _, ht := range handlerTypes {
		if _, ok := in[ht]; !ok {
			return false
		}
	}
	return true
}

func containsOnly(in map[HandlerType]DeviceInfo, handlerTypes ...HandlerType) bool {
	if len(in) != len(handlerTypes) {
		return false
	}
	return contains(in, handlerTypes...)
}

func determineDeviceType(handlers map[HandlerType]DeviceInfo) DeviceType {
	switch {
	case contains(handlers, HandlerJoystick):
		return JoystickDevice
	case contains(handlers, HandlerKeyboard, HandlerMultimedia, HandlerSystem):
		return KeyboardDevice
	case containsOnly(handlers, HandlerMouse):
		return MouseDevice
	default:
		return UnknownDevice
	}
}

// Group collects the flat handler list into physical devices, keyed by
// their common physical topology. The shortest handler name wins as the
// device name, vendors suffix the per-interface names.
func Group(deviceInfos []DeviceInfo) []Device {
	var collection = make(map[PhysicalID][]DeviceInfo)

	for _, di := range deviceInfos {
		key := di.PhysicalID()
		collection[key] = append(collection[key], di)
	}

	var devices = make([]Device, 0, len(collection))

	for devPhys, dis := range collection {
		var dev = Device{
			ID:       dis[0].ID,
			Handlers: make(map[HandlerType]DeviceInfo),
		}

		var name, uniq string

		for _, di := range dis {
			switch {
			case name == "":
				name = di.Name
			case len(di.Name) < len(name):
				name = di.Name
			}

			if di.Uniq != "" && uniq == "" {
				uniq = di.Uniq
			}

			// two handlers of the same kind under one phys would shadow
			// each other, keep the first
			if _, ok := dev.Handlers[di.HandlerType()]; ok {
				continue
			}
			dev.Handlers[di.HandlerType()] = di
		}

		dev.DeviceType = determineDeviceType(dev.Handlers)
		dev.Name = name
		dev.Uniq = uniq
		dev.Phys = string(devPhys)
		devices = append(devices, dev)
	}

	return devices
}
