package evdev

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// MonitorEventType distinguishes device arrivals from removals.
type MonitorEventType int

const (
	DeviceAdded MonitorEventType = iota
	DeviceRemoved
)

func (t MonitorEventType) String() string {
	switch t {
	case DeviceAdded:
		return "added"
	case DeviceRemoved:
		return "removed"
	default:
		return fmt.Sprintf("unknown (%d)", int(t))
	}
}

// MonitorEvent reports one event device node appearing or disappearing.
type MonitorEvent struct {
	Type MonitorEventType
	Path string
}

// Monitor watches an input device directory for event nodes coming and
// going.
type Monitor struct {
	// Dir is the directory to watch. Defaults to /dev/input.
	Dir string

	// C receives an event per node change. Run blocks on sends, so
	// the receiver should keep up.
	C chan<- MonitorEvent

	// Initial, if set, makes Run report the nodes already present
	// when it starts as DeviceAdded events.
	Initial bool
}

// Run watches until ctx is cancelled.
func (m Monitor) Run(ctx context.Context) error {
	dir := m.Dir
	if dir == "" {
		dir = "/dev/input"
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	err = watcher.Add(dir)
	if err != nil {
		return fmt.Errorf("watch %v: %w", dir, err)
	}

	if m.Initial {
		paths, err := ListDevices(dir)
		if err != nil {
			return err
		}
		for _, path := range paths {
			if err := m.send(ctx, MonitorEvent{Type: DeviceAdded, Path: path}); err != nil {
				return err
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isEventNode(ev.Name) {
				continue
			}

			var mev MonitorEvent
			switch {
			case ev.Has(fsnotify.Create):
				mev = MonitorEvent{Type: DeviceAdded, Path: ev.Name}
			case ev.Has(fsnotify.Remove):
				mev = MonitorEvent{Type: DeviceRemoved, Path: ev.Name}
			default:
				continue
			}
			if err := m.send(ctx, mev); err != nil {
				return err
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch %v: %w", dir, err)
		}
	}
}

func (m Monitor) send(ctx context.Context, ev MonitorEvent) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case m.C <- ev:
		return nil
	}
}

func isEventNode(path string) bool {
	name := filepath.Base(path)
	return strings.HasPrefix(name, "event") && len(name) > len("event")
}
