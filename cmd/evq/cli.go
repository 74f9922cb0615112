package main

import (
	"fmt"
	"sort"

	"github.com/hxkit/evdev"
	"github.com/hxkit/evdev/procfs"
	"github.com/logrusorgru/aurora"
)

func listDevices(au aurora.Aurora) error {
	infos, err := procfs.ReadDeviceInfos()
	if err != nil {
		return fmt.Errorf("cannot read device list: %w", err)
	}

	devices := procfs.Group(infos)
	sort.Slice(devices, func(i, j int) bool {
		return devices[i].Phys < devices[j].Phys
	})

	for _, d := range devices {
		fmt.Printf("%s %s\n", au.Cyan(fmt.Sprintf("[%s]", d.DeviceType)), au.Bold(d.Name))
		for ht, h := range d.Handlers {
			fmt.Printf("  %-14s %s\n", ht, h.EventPath())
		}
	}

	return nil
}

func describeDevice(d *evdev.InputDevice, au aurora.Aurora) {
	major, minor, micro := d.DriverVersion()
	fmt.Printf("driver version: %d.%d.%d\n", major, minor, micro)

	if id, err := d.InputID(); err == nil {
		fmt.Printf("id: bus 0x%04x vendor 0x%04x product 0x%04x version 0x%04x\n",
			id.BusType, id.Vendor, id.Product, id.Version)
	}
	if name, err := d.Name(); err == nil {
		fmt.Printf("name: %s\n", au.Bold(name))
	}
	if phys, err := d.PhysicalLocation(); err == nil && phys != "" {
		fmt.Printf("phys: %s\n", phys)
	}
	if uniq, err := d.UniqueID(); err == nil && uniq != "" {
		fmt.Printf("uniq: %s\n", uniq)
	}
	for _, p := range d.Properties() {
		fmt.Printf("property: %s\n", evdev.PropName(p))
	}

	fmt.Println("supported events:")
	for _, t := range d.CapableTypes() {
		if t == evdev.EV_SYN {
			continue
		}
		fmt.Printf("  %s\n", au.Yellow(evdev.TypeName(t)))

		codes := d.CapableEvents(t)
		if codes == nil {
			continue
		}
		for _, code := range codes.Codes() {
			line := fmt.Sprintf("    %s", evdev.CodeName(t, code))
			if t == evdev.EV_ABS {
				if info, ok := d.AbsInfo(code); ok {
					line += fmt.Sprintf(" (value: %d, min: %d, max: %d, fuzz: %d, flat: %d, resolution: %d)",
						info.Value, info.Minimum, info.Maximum, info.Fuzz, info.Flat, info.Resolution)
				}
			}
			fmt.Println(line)
		}
	}
}

func printEvent(ev *evdev.InputEvent, au aurora.Aurora) {
	ts := ev.Timestamp().Format("15:04:05.000000")

	var code aurora.Value
	switch ev.Type {
	case evdev.EV_KEY:
		code = au.Green(ev.CodeName())
	case evdev.EV_ABS, evdev.EV_REL:
		code = au.Magenta(ev.CodeName())
	case evdev.EV_SYN:
		code = au.Gray(12, ev.CodeName())
	default:
		code = au.White(ev.CodeName())
	}

	fmt.Printf("%s %-12s %-22s %d\n", au.Gray(16, ts), ev.TypeName(), code, ev.Value)
}

func printReport(report *evdev.Report, au aurora.Aurora) {
	if report.AfterDrop {
		fmt.Println(au.Red("-------- report (after drop, state re-queried) --------"))
	} else {
		fmt.Println(au.Gray(12, "-------- report --------"))
	}
	for i := range report.Events {
		printEvent(&report.Events[i], au)
	}
}
