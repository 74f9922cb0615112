// Package procfs reads input device metadata from /proc/bus/input/devices:
// the kernel's own view of which handlers (event nodes, mouse nodes, js
// nodes) belong to which piece of hardware. It complements the evdev
// package, which talks to the individual /dev/input/event* nodes.
package procfs

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/bits"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/hxkit/evdev"
)

const devicesPath = "/proc/bus/input/devices"

// DeviceInfo describes one input handler as reported by the kernel.
// Instances come out of Parse only.
type DeviceInfo struct {
	ID       evdev.InputID // bus/vendor/product/version
	Name     string        // device name
	Phys     string        // physical path in the system hierarchy
	Sysfs    string        // sysfs path
	Uniq     string        // unique identification code, often empty
	Handlers []string      // input handlers bound to the device
	Bitmaps  Bitmaps
}

// Bitmaps carries the capability words the kernel prints in the B: lines.
// Array lengths follow the kernel's BITS_TO_LONGS sizing for each code
// space. Words are stored least significant first, so code n lives at
// bit n%32 of word n/32 regardless of the kernel's native long width.
type Bitmaps struct {
	PROP [(evdev.INPUT_PROP_CNT + 32 - 1) / 32]uint32
	EV   [(evdev.EV_CNT + 32 - 1) / 32]uint32
	KEY  [(evdev.KEY_CNT + 32 - 1) / 32]uint32
	REL  [(evdev.REL_CNT + 32 - 1) / 32]uint32
	ABS  [(evdev.ABS_CNT + 32 - 1) / 32]uint32
	MSC  [(evdev.MSC_CNT + 32 - 1) / 32]uint32
	LED  [(evdev.LED_CNT + 32 - 1) / 32]uint32
	SND  [(evdev.SND_CNT + 32 - 1) / 32]uint32
	FF   [(evdev.FF_CNT + 32 - 1) / 32]uint32
	SW   [(evdev.SW_CNT + 32 - 1) / 32]uint32
}

// Event returns the event handler name, like "event0" for
// /dev/input/event0, or an empty string for handlers without one.
func (d *DeviceInfo) Event() string {
	for _, handler := range d.Handlers {
		if strings.HasPrefix(handler, "event") {
			return handler
		}
	}
	return ""
}

// EventPath returns the /dev/input/event* path for the handler.
func (d *DeviceInfo) EventPath() string {
	event := d.Event()
	if event == "" {
		return ""
	}
	return fmt.Sprintf("/dev/input/%s", event)
}

// PhysicalID identifies the physical connection a handler hangs off,
// e.g. "usb-0000:00:14.0-3" for "usb-0000:00:14.0-3/input1".
func (d *DeviceInfo) PhysicalID() PhysicalID {
	phys := strings.Split(d.Phys, "/")
	return PhysicalID(phys[0])
}

// ReadDeviceInfos returns every input handler currently known to the
// kernel. The listing can momentarily lag hotplug events, same as a
// /dev/input directory walk.
func ReadDeviceInfos() ([]DeviceInfo, error) {
	data, err := os.ReadFile(devicesPath)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Parse unmarshals the /proc/bus/input/devices format: per-device blocks
// of labeled lines separated by blank lines.
func Parse(data []byte) ([]DeviceInfo, error) {
	var devices = make([]DeviceInfo, 0)

	if len(data) == 0 {
		return devices, nil
	}

	var device DeviceInfo

	var emptyLineCounter = 0
	for _, line := range strings.Split(string(data), "\n") {
		if line == "" {
			emptyLineCounter += 1
			if emptyLineCounter < 2 {
				devices = append(devices, device)
				device = DeviceInfo{}
			}
			continue
		}
		emptyLineCounter = 0

		if len(line) < 3 {
			return devices, fmt.Errorf("malformed line: %q", line)
		}

		label := line[:1]
		info := line[3:]

		switch label {
		case "I":
			ps := reflect.ValueOf(&device.ID)
			s := ps.Elem()

			for _, param := range strings.Split(info, " ") {
				fields := strings.Split(param, "=")
				if len(fields) != 2 {
					return devices, fmt.Errorf("malformed ID parameter: %q", param)
				}
				l, v := fields[0], fields[1]
				f := s.FieldByName(idFieldName(l))
				if !f.IsValid() {
					continue
				}

				hv, err := hex.DecodeString(v)
				if err != nil {
					return devices, fmt.Errorf("hex decoding failed: %w", err)
				}
				f.SetUint(uint64(binary.BigEndian.Uint16(hv)))
			}
		case "N":
			device.Name = strings.Trim(strings.TrimPrefix(info, "Name="), "\"")
		case "P":
			device.Phys = strings.TrimPrefix(info, "Phys=")
		case "S":
			device.Sysfs = strings.TrimPrefix(info, "Sysfs=")
		case "U":
			device.Uniq = strings.TrimPrefix(info, "Uniq=")
		case "H":
			// with at least one handler the line carries a trailing space
			handlersChain := strings.TrimPrefix(info, "Handlers=")
			trimmed := strings.TrimRight(handlersChain, " ")
			if trimmed == "" {
				continue
			}
			device.Handlers = strings.Split(trimmed, " ")
		case "B":
			ps := reflect.ValueOf(&device.Bitmaps)
			s := ps.Elem()

			fields := strings.Split(info, "=")
			if len(fields) != 2 {
				return devices, fmt.Errorf("malformed bitmap line: %q", info)
			}
			l, vs := fields[0], fields[1]
			f := s.FieldByName(l)
			if !f.IsValid() {
				continue
			}

			// procfs prints one unpadded hex number per native kernel
			// long, most significant word first. The width is normally
			// the reader's own, a word wider than 32 bits betrays a
			// 64-bit kernel either way.
			words := strings.Split(vs, " ")
			wordBits := bits.UintSize
			for _, w := range words {
				if len(w) > 8 {
					wordBits = 64
					break
				}
			}

			idx := 0
			for i := len(words) - 1; i >= 0; i-- {
				uv, err := strconv.ParseUint(words[i], 16, 64)
				if err != nil {
					return devices, fmt.Errorf("hex decoding failed: %w", err)
				}
				for off := 0; off < wordBits/32; off++ {
					if idx >= f.Len() {
						if uv != 0 {
							return devices, fmt.Errorf("bitmap %s wider than its code space", l)
						}
						break
					}
					f.Index(idx).SetUint(uv & 0xffffffff)
					uv >>= 32
					idx++
				}
			}
		}
	}

	return devices, nil
}

// idFieldName maps procfs I: labels onto evdev.InputID field names.
func idFieldName(label string) string {
	switch label {
	case "Bus":
		return "BusType"
	default:
		return label
	}
}
