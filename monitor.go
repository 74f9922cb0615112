package evdev

import (
	"context"
	"strings"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DeviceChangeType says whether a device node appeared or went away.
type DeviceChangeType int

const (
	DeviceAttached DeviceChangeType = iota
	DeviceDetached
)

func (t DeviceChangeType) String() string {
	if t == DeviceAttached {
		return "attached"
	}
	return "detached"
}

// DeviceChange is one hotplug notification for an event device node.
type DeviceChange struct {
	Type DeviceChangeType
	Path string
}

// MonitorDevicePaths watches /dev/input and reports event nodes being
// created and removed until ctx is cancelled. Note that a freshly attached
// node may reject opens for a moment while udev adjusts its permissions,
// callers usually retry briefly.
func MonitorDevicePaths(ctx context.Context) (<-chan DeviceChange, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(inputBasePath); err != nil {
		watcher.Close()
		return nil, err
	}

	changes := make(chan DeviceChange)

	go func() {
		<-ctx.Done()
		if err := watcher.Close(); err != nil {
			log.Debug("closing device watcher failed", zap.Error(err))
		}
	}()

	go func() {
		defer close(changes)
		for event := range watcher.Events {
			base := event.Name[strings.LastIndexByte(event.Name, '/')+1:]
			if !strings.HasPrefix(base, "event") {
				continue
			}

			var change DeviceChange
			switch {
			case event.Op&fsnotify.Create != 0:
				change = DeviceChange{Type: DeviceAttached, Path: event.Name}
			case event.Op&fsnotify.Remove != 0:
				change = DeviceChange{Type: DeviceDetached, Path: event.Name}
			default:
				continue
			}

			log.Debug("device change",
				zap.String("path", change.Path), zap.Stringer("type", change.Type))

			select {
			case changes <- change:
			case <-ctx.Done():
				return
			}
		}
	}()

	return changes, nil
}
