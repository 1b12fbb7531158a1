package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"deedles.dev/evdev/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	c, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if c.Rumble.Length.Duration() != 2*time.Second {
		t.Errorf("unexpected default rumble length: %v", c.Rumble.Length)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	err := os.WriteFile(path, []byte(`
[log]
journal = true

[dump]
grab = true

[rumble]
strong = 1234
length = "500ms"
`), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	c, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !c.Log.Journal {
		t.Error("journal not set")
	}
	if !c.Dump.Grab {
		t.Error("grab not set")
	}
	if c.Rumble.Strong != 1234 {
		t.Errorf("strong = %v", c.Rumble.Strong)
	}
	if c.Rumble.Length.Duration() != 500*time.Millisecond {
		t.Errorf("length = %v", c.Rumble.Length)
	}
	// Unset keys keep their defaults.
	if c.Rumble.Weak != 0xc000 {
		t.Errorf("weak = %v", c.Rumble.Weak)
	}
}

func TestLoadUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	err := os.WriteFile(path, []byte("[nope]\nx = 1\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	_, err = config.Load(path)
	if err == nil {
		t.Fatal("expected an error for an unknown key")
	}
}
