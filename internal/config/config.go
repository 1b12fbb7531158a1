// Package config loads the shared TOML configuration for the evdev
// command-line tools.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Log    Log    `toml:"log"`
	Dump   Dump   `toml:"dump"`
	Rumble Rumble `toml:"rumble"`
}

type Log struct {
	// Journal routes log output to the systemd journal instead of
	// stderr.
	Journal bool `toml:"journal"`
	Verbose bool `toml:"verbose"`
}

type Dump struct {
	// Devices is a list of device node globs to dump from when none
	// are given on the command line.
	Devices []string `toml:"devices"`
	Grab    bool     `toml:"grab"`
}

type Rumble struct {
	Strong   uint16   `toml:"strong"`
	Weak     uint16   `toml:"weak"`
	Length   Duration `toml:"length"`
	Interval Duration `toml:"interval"`
}

// Duration is a time.Duration that decodes from TOML duration strings
// like "500ms".
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	*d = Duration(v)
	return err
}

func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

func Default() Config {
	return Config{
		Rumble: Rumble{
			Strong:   0x8000,
			Weak:     0xc000,
			Length:   Duration(2 * time.Second),
			Interval: Duration(5 * time.Second),
		},
	}
}

func DefaultPath() (string, error) {
	c, err := os.UserConfigDir()
	return filepath.Join(c, "evdev", "config.toml"), err
}

// Load reads the config at path, or the defaults if no file exists
// there.
func Load(path string) (Config, error) {
	c := Default()
	meta, err := toml.DecodeFile(path, &c)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("decode %v: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) != 0 {
		return c, fmt.Errorf("unknown key %q in %v", undecoded[0], path)
	}
	return c, nil
}

// DumpDevices expands the configured device globs. Patterns that match
// nothing are skipped.
func (c Config) DumpDevices() ([]string, error) {
	var paths []string
	for _, pattern := range c.Dump.Devices {
		m, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("expand %q: %w", pattern, err)
		}
		paths = append(paths, m...)
	}
	return paths, nil
}
