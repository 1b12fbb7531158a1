// evclear erases all force-feedback effects from input devices.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"deedles.dev/evdev"
	"deedles.dev/evdev/internal/glossy"
)

func clear(path string) error {
	d, err := evdev.Open(path)
	if err != nil {
		return fmt.Errorf("open %v: %w", path, err)
	}
	defer d.Close()

	if err := d.Grab(); err != nil {
		return fmt.Errorf("grab %v: %w", path, err)
	}
	defer d.Ungrab()

	slog.Info("clearing effects", "device", path, "name", d.Name, "slots", d.EffectCount)
	d.ClearEffects()
	return nil
}

func run() error {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %v /dev/input/event<N>...\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "Options:")
		flag.PrintDefaults()
	}
	useJournal := flag.Bool("journal", false, "log to the systemd journal")
	flag.Parse()

	slog.SetDefault(slog.New(glossy.Handler{UseJournal: *useJournal}))

	devices := flag.Args()
	if len(devices) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	for _, dev := range devices {
		if err := clear(dev); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	err := run()
	if err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}
