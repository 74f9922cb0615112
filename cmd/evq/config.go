package main

import (
	"os"

	"github.com/go-ini/ini"
)

type EVQConfig struct {
	Grab     bool
	ShowSync bool
	Color    bool
}

var defaultConfig = EVQConfig{
	Grab:     false,
	ShowSync: false,
	Color:    true,
}

// LoadConfig reads the [evq] section of an ini config file. Missing file
// or missing keys fall back to defaults.
func LoadConfig(path string) (EVQConfig, error) {
	c := defaultConfig

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, err
	}

	cfg, err := ini.Load(data)
	if err != nil {
		return c, err
	}

	section := cfg.Section("evq")
	if k, err := section.GetKey("grab"); err == nil {
		if v, err := k.Bool(); err == nil {
			c.Grab = v
		}
	}
	if k, err := section.GetKey("show_sync"); err == nil {
		if v, err := k.Bool(); err == nil {
			c.ShowSync = v
		}
	}
	if k, err := section.GetKey("color"); err == nil {
		if v, err := k.Bool(); err == nil {
			c.Color = v
		}
	}

	return c, nil
}
