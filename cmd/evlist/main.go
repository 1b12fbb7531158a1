// evlist lists input device nodes and optionally watches for hotplug
// changes.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"deedles.dev/evdev"
	"deedles.dev/evdev/internal/glossy"
	"golang.org/x/sync/errgroup"
)

func describe(path string) string {
	d, err := evdev.Open(path)
	if err != nil {
		return fmt.Sprintf("%v: (unreadable: %v)", path, err)
	}
	defer d.Close()

	return fmt.Sprintf("%v: %q bus %v vendor 0x%04X product 0x%04X",
		path, d.Name, evdev.BusName(d.ID.BusType), d.ID.Vendor, d.ID.Product)
}

func watch(ctx context.Context, dir string) error {
	events := make(chan evdev.MonitorEvent)
	mon := evdev.Monitor{Dir: dir, C: events, Initial: true}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error { return mon.Run(ctx) })
	eg.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case ev := <-events:
				switch ev.Type {
				case evdev.DeviceAdded:
					fmt.Println("+", describe(ev.Path))
				case evdev.DeviceRemoved:
					fmt.Println("-", ev.Path)
				}
			}
		}
	})
	return eg.Wait()
}

func run(ctx context.Context) error {
	dir := flag.String("dir", "", "input device directory (default /dev/input)")
	doWatch := flag.Bool("watch", false, "watch for devices coming and going")
	useJournal := flag.Bool("journal", false, "log to the systemd journal")
	flag.Parse()

	slog.SetDefault(slog.New(glossy.Handler{UseJournal: *useJournal}))

	if *doWatch {
		err := watch(ctx, *dir)
		if (err != nil) && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	}

	paths, err := evdev.ListDevices(*dir)
	if err != nil {
		return err
	}
	for _, path := range paths {
		fmt.Println(describe(path))
	}
	return nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	err := run(ctx)
	if err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}
