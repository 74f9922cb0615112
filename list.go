package evdev

import (
	"os"
	"path/filepath"
	"strings"
)

const inputBasePath = "/dev/input"

// InputPath pairs a device node path with the kernel-reported device name.
type InputPath struct {
	Name string
	Path string
}

// ListDevicePaths lists the event device nodes under /dev/input together
// with their names. Nodes the process cannot open are skipped, running
// without the right permissions yields a shorter list, not an error.
func ListDevicePaths() ([]InputPath, error) {
	var list []InputPath

	entries, err := os.ReadDir(inputBasePath)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), "event") {
			continue
		}

		full := filepath.Join(inputBasePath, entry.Name())
		d, err := Open(full)
		if err != nil {
			continue
		}
		name, _ := d.Name()
		list = append(list, InputPath{Name: name, Path: full})
		d.Close()
	}

	return list, nil
}
