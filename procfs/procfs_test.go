package procfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hxkit/evdev"
)

// captured from a 64-bit kernel: one USB keyboard split into three
// handlers plus a separate mouse
var devicesFixture = []byte(`I: Bus=0003 Vendor=04d9 Product=0024 Version=0111
N: Name="USB Keyboard"
P: Phys=usb-0000:00:14.0-3/input0
S: Sysfs=/devices/pci0000:00/0000:00:14.0/usb1/1-3/1-3:1.0/0003:04D9:0024.0001/input/input5
U: Uniq=
H: Handlers=sysrq kbd leds event4
B: PROP=0
B: EV=120013
B: KEY=1000000000007 ff9f207ac14057ff febeffdfffefffff fffffffffffffffe
B: MSC=10
B: LED=7

I: Bus=0003 Vendor=04d9 Product=0024 Version=0111
N: Name="USB Keyboard Consumer Control"
P: Phys=usb-0000:00:14.0-3/input1
S: Sysfs=/devices/pci0000:00/0000:00:14.0/usb1/1-3/1-3:1.1/0003:04D9:0024.0002/input/input6
U: Uniq=
H: Handlers=kbd event5
B: PROP=0
B: EV=1f
B: KEY=306ff 0 0 483ffff17aff32d bfd4444600000000 1 130ff38b17c007 ffe77bfad9415fff febeffdfffefffff fffffffffffffffe
B: REL=1040
B: ABS=100000000
B: MSC=10

I: Bus=0003 Vendor=04d9 Product=0024 Version=0111
N: Name="USB Keyboard System Control"
P: Phys=usb-0000:00:14.0-3/input1
S: Sysfs=/devices/pci0000:00/0000:00:14.0/usb1/1-3/1-3:1.1/0003:04D9:0024.0003/input/input7
U: Uniq=
H: Handlers=kbd event6
B: PROP=0
B: EV=13
B: KEY=c000 10000000000000 0
B: MSC=10

I: Bus=0003 Vendor=046d Product=c077 Version=0111
N: Name="Logitech USB Optical Mouse"
P: Phys=usb-0000:00:14.0-4/input0
S: Sysfs=/devices/pci0000:00/0000:00:14.0/usb1/1-4/1-4:1.0/0003:046D:C077.0004/input/input8
U: Uniq=
H: Handlers=mouse0 event7
B: PROP=0
B: EV=17
B: KEY=ff0000 0 0 0 0
B: REL=143
B: MSC=10

`)

func TestParseFields(t *testing.T) {
	infos, err := Parse(devicesFixture)
	require.NoError(t, err)
	require.Len(t, infos, 4)

	kbd := infos[0]
	assert.Equal(t, evdev.InputID{
		BusType: 0x0003,
		Vendor:  0x04d9,
		Product: 0x0024,
		Version: 0x0111,
	}, kbd.ID)
	assert.Equal(t, "USB Keyboard", kbd.Name)
	assert.Equal(t, "usb-0000:00:14.0-3/input0", kbd.Phys)
	assert.Equal(t,
		"/devices/pci0000:00/0000:00:14.0/usb1/1-3/1-3:1.0/0003:04D9:0024.0001/input/input5",
		kbd.Sysfs)
	assert.Empty(t, kbd.Uniq)
	assert.Equal(t, []string{"sysrq", "kbd", "leds", "event4"}, kbd.Handlers)

	assert.Equal(t, "event4", kbd.Event())
	assert.Equal(t, "/dev/input/event4", kbd.EventPath())
	assert.Equal(t, PhysicalID("usb-0000:00:14.0-3"), kbd.PhysicalID())

	mouse := infos[3]
	assert.Equal(t, uint16(0x046d), mouse.ID.Vendor)
	assert.Equal(t, "event7", mouse.Event())
}

func TestParseBitmapWordOrder(t *testing.T) {
	infos, err := Parse(devicesFixture)
	require.NoError(t, err)
	require.Len(t, infos, 4)

	kbd := infos[0]
	assert.Equal(t, uint32(0x120013), kbd.Bitmaps.EV[0])
	assert.Equal(t, uint32(0x7), kbd.Bitmaps.LED[0])
	assert.Equal(t, uint32(0x10), kbd.Bitmaps.MSC[0])

	// the least significant 64-bit word of the KEY line lands in words
	// 0 and 1, the unpadded leading word in words 6 and 7
	assert.Equal(t, uint32(0xfffffffe), kbd.Bitmaps.KEY[0])
	assert.Equal(t, uint32(0xffffffff), kbd.Bitmaps.KEY[1])
	assert.Equal(t, uint32(0xffefffff), kbd.Bitmaps.KEY[2])
	assert.Equal(t, uint32(0xfebeffdf), kbd.Bitmaps.KEY[3])
	assert.Equal(t, uint32(0xc14057ff), kbd.Bitmaps.KEY[4])
	assert.Equal(t, uint32(0xff9f207a), kbd.Bitmaps.KEY[5])
	assert.Equal(t, uint32(0x00000007), kbd.Bitmaps.KEY[6])
	assert.Equal(t, uint32(0x00010000), kbd.Bitmaps.KEY[7])

	// KEY_ESC is code 1: bit 1 of word 0 and the whole low range is set
	assert.NotZero(t, kbd.Bitmaps.KEY[0]&(1<<uint(evdev.KEY_ESC)))

	sys := infos[2]
	// short words still span a full 64-bit kernel long each, so
	// KEY_POWER (code 116) sits at bit 20 of word 3 and the sleep and
	// wakeup keys at bits 14 and 15 of word 4
	assert.Equal(t, uint32(0x0), sys.Bitmaps.KEY[0])
	assert.Equal(t, uint32(0x0), sys.Bitmaps.KEY[2])
	assert.Equal(t, uint32(0x00100000), sys.Bitmaps.KEY[3])
	assert.Equal(t, uint32(0xc000), sys.Bitmaps.KEY[4])
}

func TestParseEmptyAndMalformed(t *testing.T) {
	infos, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, infos)

	_, err = Parse([]byte("I: Bus_0003\n\n"))
	assert.Error(t, err)
}

func TestHandlerTypes(t *testing.T) {
	infos, err := Parse(devicesFixture)
	require.NoError(t, err)
	require.Len(t, infos, 4)

	assert.Equal(t, HandlerKeyboard, infos[0].HandlerType())
	assert.Equal(t, HandlerMultimedia, infos[1].HandlerType())
	assert.Equal(t, HandlerSystem, infos[2].HandlerType())
	assert.Equal(t, HandlerMouse, infos[3].HandlerType())
}

func TestHandlerTypeFallsBackToHandlerNames(t *testing.T) {
	js := DeviceInfo{Handlers: []string{"js0", "event9"}}
	assert.Equal(t, HandlerJoystick, js.HandlerType())

	unknown := DeviceInfo{Handlers: []string{"event10"}}
	assert.Equal(t, HandlerUnknown, unknown.HandlerType())
}

func TestGroup(t *testing.T) {
	infos, err := Parse(devicesFixture)
	require.NoError(t, err)

	devices := Group(infos)
	require.Len(t, devices, 2)

	byPhys := make(map[string]Device)
	for _, d := range devices {
		byPhys[d.Phys] = d
	}

	kbd, ok := byPhys["usb-0000:00:14.0-3"]
	require.True(t, ok)
	assert.Equal(t, KeyboardDevice, kbd.DeviceType)
	// the shortest handler name is the hardware's own
	assert.Equal(t, "USB Keyboard", kbd.Name)
	require.Len(t, kbd.Handlers, 3)
	kbdHandler := kbd.Handlers[HandlerKeyboard]
	multimediaHandler := kbd.Handlers[HandlerMultimedia]
	systemHandler := kbd.Handlers[HandlerSystem]
	assert.Equal(t, "event4", kbdHandler.Event())
	assert.Equal(t, "event5", multimediaHandler.Event())
	assert.Equal(t, "event6", systemHandler.Event())

	mouse, ok := byPhys["usb-0000:00:14.0-4"]
	require.True(t, ok)
	assert.Equal(t, MouseDevice, mouse.DeviceType)
	assert.Equal(t, "Logitech USB Optical Mouse", mouse.Name)
}
