package evdev

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// ErrWouldBlock is returned by read operations on a device in non-blocking
// mode when no events are queued. It is a control-flow signal, not a device
// failure, the handle stays usable.
var ErrWouldBlock = errors.New("no events available")

// eventBatch is how many records the internal buffer holds. One read
// syscall can drain up to this many queued events at once.
const eventBatch = 64

// statefulTypes are the event types the kernel keeps global state for and
// the device handle mirrors in its active-code sets.
var statefulTypes = []EvType{EV_KEY, EV_LED, EV_SND, EV_SW}

// InputDevice represents one open evdev device node. It owns the
// descriptor, the capability bitsets, the absolute-axis table and the
// decode buffer.
//
// A handle is single-reader: the decode buffer and the state tables are
// mutated by the read path without locking. Sharing one handle between
// goroutines requires external synchronization.
type InputDevice struct {
	file          *os.File
	driverVersion int32

	// supported codes per event type, fetched once at open
	supported map[EvType]*AttributeSet
	// currently-active codes for stateful types, kept live by decoding
	active map[EvType]*AttributeSet
	// per-axis metadata and last value
	absAxes map[EvCode]*AbsInfo

	buf     []byte
	pending []InputEvent

	rep ReportTracker
}

// Open creates an InputDevice from the given device node path and issues
// the capability and state queries that populate its caches.
func Open(path string) (*InputDevice, error) {
	file, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}

	d := &InputDevice{
		file:      file,
		supported: make(map[EvType]*AttributeSet),
		active:    make(map[EvType]*AttributeSet),
		absAxes:   make(map[EvCode]*AbsInfo),
		buf:       make([]byte, EventSize*eventBatch),
	}

	d.driverVersion, err = ioctlEVIOCGVERSION(d.fd())
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("%s: cannot get driver version: %w", path, err)
	}

	if err := d.queryCapabilities(); err != nil {
		file.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if err := d.Resync(); err != nil {
		file.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// OpenByName opens the first device whose kernel-reported name matches.
func OpenByName(name string) (*InputDevice, error) {
	devices, err := ListDevicePaths()
	if err != nil {
		return nil, err
	}
	for _, d := range devices {
		if d.Name == name {
			return Open(d.Path)
		}
	}
	return nil, fmt.Errorf("no input device with name %q", name)
}

// Close releases the descriptor. The handle is unusable afterwards. Closing
// from another goroutine is the only way to abort a blocked read.
func (d *InputDevice) Close() error {
	return d.file.Close()
}

func (d *InputDevice) fd() uintptr {
	return d.file.Fd()
}

// Path returns the device node path the handle was opened under.
func (d *InputDevice) Path() string {
	return d.file.Name()
}

// DriverVersion returns the evdev protocol version as major, minor, micro.
func (d *InputDevice) DriverVersion() (int, int, int) {
	return int(d.driverVersion >> 16),
		int((d.driverVersion >> 8) & 0xff),
		int((d.driverVersion >> 0) & 0xff)
}

// Name returns the device name as reported by the kernel.
func (d *InputDevice) Name() (string, error) {
	return ioctlEVIOCGNAME(d.fd())
}

// PhysicalLocation returns the device's physical topology string.
func (d *InputDevice) PhysicalLocation() (string, error) {
	return ioctlEVIOCGPHYS(d.fd())
}

// UniqueID returns the device's unique identifier, empty for most devices.
func (d *InputDevice) UniqueID() (string, error) {
	return ioctlEVIOCGUNIQ(d.fd())
}

// InputID returns bus type, vendor, product and version of the device.
func (d *InputDevice) InputID() (InputID, error) {
	return ioctlEVIOCGID(d.fd())
}

// Properties returns the device property bits (INPUT_PROP_*).
func (d *InputDevice) Properties() []EvProp {
	var props []EvProp

	propBits, err := ioctlEVIOCGPROP(d.fd())
	if err != nil {
		return nil
	}

	for _, p := range bitsSet(propBits) {
		props = append(props, EvProp(p))
	}

	return props
}

// queryCapabilities populates the supported-code sets and the axis table.
// Supported sets are immutable afterwards, a device cannot grow
// capabilities without being reopened.
func (d *InputDevice) queryCapabilities() error {
	evBits, err := ioctlEVIOCGBIT(d.fd(), 0)
	if err != nil {
		return fmt.Errorf("cannot get event type bits: %w", err)
	}

	for _, t := range bitsSet(evBits) {
		evType := EvType(t)
		if evType == EV_SYN {
			continue
		}

		codeBits, err := ioctlEVIOCGBIT(d.fd(), int(evType))
		if err != nil {
			return fmt.Errorf("cannot get code bits for %s: %w", TypeName(evType), err)
		}
		d.supported[evType] = attributeSetFromBytes(evType, codeBits)
	}

	if abs, ok := d.supported[EV_ABS]; ok {
		for _, axis := range abs.Codes() {
			info, err := ioctlEVIOCGABS(d.fd(), int(axis))
			if err != nil {
				return fmt.Errorf("cannot get abs info for %s: %w", CodeName(EV_ABS, axis), err)
			}
			ai := info
			d.absAxes[axis] = &ai
		}
	}

	return nil
}

// Resync re-reads the kernel's global state for every stateful type the
// device supports, plus the current value of every absolute axis. The read
// path calls it on SYN_DROPPED, it only needs calling manually when events
// have not been consumed for a long time.
func (d *InputDevice) Resync() error {
	for _, t := range statefulTypes {
		if _, ok := d.supported[t]; !ok {
			continue
		}
		if err := d.RefreshState(t); err != nil {
			return err
		}
	}

	for axis, info := range d.absAxes {
		fresh, err := ioctlEVIOCGABS(d.fd(), int(axis))
		if err != nil {
			return fmt.Errorf("cannot refresh abs info for %s: %w", CodeName(EV_ABS, axis), err)
		}
		info.Value = fresh.Value
	}

	return nil
}

// RefreshState replaces the active-code set for one stateful type with a
// fresh kernel query.
func (d *InputDevice) RefreshState(t EvType) error {
	var stateBits []byte
	var err error

	switch t {
	case EV_KEY:
		stateBits, err = ioctlEVIOCGKEY(d.fd())
	case EV_LED:
		stateBits, err = ioctlEVIOCGLED(d.fd())
	case EV_SND:
		stateBits, err = ioctlEVIOCGSND(d.fd())
	case EV_SW:
		stateBits, err = ioctlEVIOCGSW(d.fd())
	default:
		return fmt.Errorf("%s is not a stateful event type", TypeName(t))
	}
	if err != nil {
		return fmt.Errorf("cannot get %s state: %w", TypeName(t), err)
	}

	set, ok := d.active[t]
	if !ok {
		set = NewAttributeSet(t)
		d.active[t] = set
	}
	set.replace(stateBits)

	return nil
}

// CapableTypes returns the event types the device can emit.
func (d *InputDevice) CapableTypes() []EvType {
	types := []EvType{EV_SYN}
	for t := EvType(1); t <= EV_MAX; t++ {
		if _, ok := d.supported[t]; ok {
			types = append(types, t)
		}
	}
	return types
}

// CapableEvents returns the codes the device supports for the given type,
// or nil if the type itself is unsupported. The returned set is a snapshot.
func (d *InputDevice) CapableEvents(t EvType) *AttributeSet {
	set, ok := d.supported[t]
	if !ok {
		return nil
	}
	return set.clone()
}

// State returns a snapshot of the currently-active codes for a stateful
// type: held keys for EV_KEY, lit LEDs for EV_LED, and so on. The snapshot
// reflects all events already yielded by the read path.
func (d *InputDevice) State(t EvType) (*AttributeSet, error) {
	set, ok := d.active[t]
	if !ok {
		return nil, fmt.Errorf("no state tracked for %s", TypeName(t))
	}
	return set.clone(), nil
}

// AbsInfo returns the metadata and last seen value for one absolute axis.
func (d *InputDevice) AbsInfo(axis EvCode) (AbsInfo, bool) {
	info, ok := d.absAxes[axis]
	if !ok {
		return AbsInfo{}, false
	}
	return *info, true
}

// AbsInfos returns a copy of the whole absolute-axis table.
func (d *InputDevice) AbsInfos() map[EvCode]AbsInfo {
	out := make(map[EvCode]AbsInfo, len(d.absAxes))
	for axis, info := range d.absAxes {
		out[axis] = *info
	}
	return out
}

// RepeatSettings returns the key autorepeat delay and period in
// milliseconds.
func (d *InputDevice) RepeatSettings() (delay, period uint32, err error) {
	rep, err := ioctlEVIOCGREP(d.fd())
	return rep[0], rep[1], err
}

// SetRepeatSettings sets the key autorepeat delay and period in
// milliseconds.
func (d *InputDevice) SetRepeatSettings(delay, period uint32) error {
	return ioctlEVIOCSREP(d.fd(), [2]uint32{delay, period})
}

// SetAbsInfo overwrites the kernel's parameters for one absolute axis,
// e.g. to recalibrate a joystick. The handle's own axis table follows.
func (d *InputDevice) SetAbsInfo(axis EvCode, info AbsInfo) error {
	if err := ioctlEVIOCSABS(d.fd(), int(axis), info); err != nil {
		return err
	}
	ai := info
	d.absAxes[axis] = &ai
	return nil
}

// Grab takes exclusive access: no other client receives events from the
// device until Ungrab or Close.
func (d *InputDevice) Grab() error {
	return ioctlEVIOCGRAB(d.fd(), 1)
}

// Ungrab releases exclusive access taken by Grab.
func (d *InputDevice) Ungrab() error {
	return ioctlEVIOCGRAB(d.fd(), 0)
}

// Revoke irrevocably disables the descriptor's access to the device.
func (d *InputDevice) Revoke() error {
	return ioctlEVIOCREVOKE(d.fd())
}

// NonBlock switches the descriptor into non-blocking mode. Read operations
// then return ErrWouldBlock instead of suspending when the queue is empty.
func (d *InputDevice) NonBlock() error {
	return unix.SetNonblock(int(d.fd()), true)
}

// readBatch performs one read syscall into the internal buffer and decodes
// every record in it, updating the state caches as a side effect. The
// kernel writes whole records only, a trailing partial record means the
// record width disagrees with the running kernel and is surfaced as
// ErrTruncated rather than skipped.
func (d *InputDevice) readBatch() error {
	n, err := d.file.Read(d.buf)
	if err != nil {
		if errors.Is(err, unix.EAGAIN) {
			return ErrWouldBlock
		}
		return err
	}

	buf := d.buf[:n]
	for len(buf) > 0 {
		var ev InputEvent
		consumed, err := UnmarshalEvent(buf, &ev)
		if err != nil {
			return err
		}
		buf = buf[consumed:]

		d.updateState(&ev)
		d.pending = append(d.pending, ev)

		// the kernel dropped events, incremental tracking is now behind
		// reality: re-query global state right here on the read path (the
		// only place touching the caches). Double-applying the still
		// queued events afterwards is harmless, bitset updates are
		// idempotent.
		if ev.Type == EV_SYN && ev.Code == SYN_DROPPED {
			if err := d.Resync(); err != nil {
				return err
			}
		}
	}

	return nil
}

// updateState folds one decoded event into the active bitsets and the axis
// table, before the event reaches the caller. A caller inspecting state
// mid-iteration therefore always sees state consistent with the events it
// already received.
func (d *InputDevice) updateState(ev *InputEvent) {
	switch ev.Type {
	case EV_KEY, EV_LED, EV_SND, EV_SW:
		set, ok := d.active[ev.Type]
		if !ok {
			set = NewAttributeSet(ev.Type)
			d.active[ev.Type] = set
		}
		// key value 2 is autorepeat, the key is still down
		if ev.Value == 0 {
			set.Remove(ev.Code)
		} else {
			set.Insert(ev.Code)
		}
	case EV_ABS:
		info, ok := d.absAxes[ev.Code]
		if !ok {
			// axis unknown to the open-time query: keep the value,
			// there is no range metadata to attach
			d.absAxes[ev.Code] = &AbsInfo{Value: ev.Value}
			return
		}
		info.Value = ev.Value
	}
}

// Read returns all events drained by one read syscall, at least one. It
// blocks until events are available unless the device is in non-blocking
// mode, in which case an empty queue yields ErrWouldBlock.
func (d *InputDevice) Read() ([]InputEvent, error) {
	if len(d.pending) == 0 {
		if err := d.readBatch(); err != nil {
			return nil, err
		}
	}

	out := make([]InputEvent, len(d.pending))
	copy(out, d.pending)
	d.pending = d.pending[:0]
	return out, nil
}

// ReadOne returns the next event, reading a fresh batch from the kernel
// when the previous one is exhausted.
func (d *InputDevice) ReadOne() (*InputEvent, error) {
	for len(d.pending) == 0 {
		if err := d.readBatch(); err != nil {
			return nil, err
		}
	}

	ev := d.pending[0]
	d.pending = d.pending[1:]
	return &ev, nil
}

// ReadReport reads events until the device emits a report boundary and
// returns the accumulated report. The handle's own state caches are
// re-queried automatically when a drop is decoded, AfterDrop tells the
// caller that state it derived from earlier reports is stale.
func (d *InputDevice) ReadReport() (*Report, error) {
	for {
		ev, err := d.ReadOne()
		if err != nil {
			return nil, err
		}
		if report, done := d.rep.Feed(ev); done {
			return report, nil
		}
	}
}

// WriteOne writes one event to the device, e.g. an EV_LED event to switch
// a keyboard LED.
func (d *InputDevice) WriteOne(ev *InputEvent) error {
	var buf [EventSize]byte
	if _, err := MarshalEvent(ev, buf[:]); err != nil {
		return err
	}
	_, err := d.file.Write(buf[:])
	return err
}
