package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hxkit/evdev"
	"github.com/hxkit/evdev/internal/pkg/logger"
	"github.com/logrusorgru/aurora"
	"go.uber.org/zap"
)

var log = logger.GetLogger()

var (
	list    = flag.Bool("list", false, "list available input devices and exit")
	monitor = flag.Bool("monitor", false, "watch for devices being attached and detached")
	device  = flag.String("device", "", "device node to read, e.g. /dev/input/event0")
	byName  = flag.String("name", "", "open device by kernel-reported name instead of path")
	grab    = flag.Bool("grab", false, "grab the device for exclusive access")
	reports = flag.Bool("reports", false, "group events into synchronization reports")
	config  = flag.String("config", "evq.ini", "config file location")
)

func main() {
	flag.Parse()

	cfg, err := LoadConfig(*config)
	if err != nil {
		log.Error("cannot load config", zap.String("path", *config), zap.Error(err))
		os.Exit(1)
	}

	au := aurora.NewAurora(cfg.Color)

	if *list {
		if err := listDevices(au); err != nil {
			log.Error("device listing failed", zap.Error(err))
			os.Exit(1)
		}
		return
	}

	ctx, cancel := context.WithCancel(context.Background())

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("signal received, shutting down", zap.Stringer("signal", sig))
		cancel()
	}()

	if *monitor {
		if err := monitorDevices(ctx, au); err != nil {
			log.Error("device monitoring failed", zap.Error(err))
			os.Exit(1)
		}
		return
	}

	if *device == "" && *byName == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s [-device /dev/input/eventX | -name NAME | -list | -monitor]\n\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	var d *evdev.InputDevice
	if *device != "" {
		d, err = evdev.Open(*device)
	} else {
		d, err = evdev.OpenByName(*byName)
	}
	if err != nil {
		log.Error("cannot open device", zap.Error(err))
		os.Exit(1)
	}
	defer d.Close()

	describeDevice(d, au)

	if *grab || cfg.Grab {
		if err := d.Grab(); err != nil {
			log.Warn("cannot grab device", zap.String("device", d.Path()), zap.Error(err))
		} else {
			defer d.Ungrab()
		}
	}

	if *reports {
		err = dumpReports(ctx, d, au)
	} else {
		err = dumpEvents(ctx, d, cfg, au)
	}
	if err != nil {
		log.Error("event dump stopped", zap.Error(err))
		os.Exit(1)
	}
}

func dumpEvents(ctx context.Context, d *evdev.InputDevice, cfg EVQConfig, au aurora.Aurora) error {
	events, err := d.StreamEvents(ctx)
	if err != nil {
		return err
	}

	for ev := range events {
		if ev.Type == evdev.EV_SYN && !cfg.ShowSync {
			continue
		}
		printEvent(&ev, au)
	}
	return nil
}

func dumpReports(ctx context.Context, d *evdev.InputDevice, au aurora.Aurora) error {
	reports, err := d.StreamReports(ctx)
	if err != nil {
		return err
	}

	for report := range reports {
		printReport(&report, au)
	}
	return nil
}

func monitorDevices(ctx context.Context, au aurora.Aurora) error {
	changes, err := evdev.MonitorDevicePaths(ctx)
	if err != nil {
		return err
	}

	log.Info("watching /dev/input, ^C to stop")
	for change := range changes {
		switch change.Type {
		case evdev.DeviceAttached:
			fmt.Printf("%s %s\n", au.Green("attached"), change.Path)
		case evdev.DeviceDetached:
			fmt.Printf("%s %s\n", au.Red("detached"), change.Path)
		}
	}
	return nil
}
