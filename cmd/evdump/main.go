// evdump dumps input device capabilities and events.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"os/signal"
	"slices"
	"time"

	"deedles.dev/evdev"
	"deedles.dev/evdev/internal/config"
	"deedles.dev/evdev/internal/glossy"
	"golang.org/x/sync/errgroup"
)

func printCapabilities(d *evdev.Device) {
	fmt.Printf("Input driver version is %d.%d.%d\n",
		d.Version>>16, (d.Version>>8)&0xff, d.Version&0xff)
	fmt.Printf("Input device ID: bus 0x%04X (%v) vendor 0x%04X product 0x%04X version 0x%04X\n",
		d.ID.BusType, evdev.BusName(d.ID.BusType), d.ID.Vendor, d.ID.Product, d.ID.Version)
	fmt.Printf("Input device name: %q\n", d.Name)
	if d.Phys != "" {
		fmt.Printf("Input device phys: %q\n", d.Phys)
	}

	fmt.Println("Supported events:")
	printCodeSet(evdev.CategorySynch, d.Caps.Synchs)
	printCodeSet(evdev.CategoryKey, d.Caps.Keys)
	printCodeSet(evdev.CategoryRelativeAxis, d.Caps.RelativeAxes)
	printAxes(d.Caps.AbsoluteAxes)
	printCodeSet(evdev.CategoryMisc, d.Caps.Miscs)
	printCodeSet(evdev.CategorySwitch, d.Caps.Switches)
	printCodeSet(evdev.CategoryLED, d.Caps.LEDs)
	printCodeSet(evdev.CategorySound, d.Caps.Sounds)
	printCodeSet(evdev.CategoryAutorepeat, d.Caps.Autorepeats)
	printCodeSet(evdev.CategoryForceFeedback, d.Caps.ForceFeedbacks)

	if props, err := d.Properties(); err == nil && len(props) != 0 {
		fmt.Println("Properties:")
		for _, prop := range slices.Sorted(maps.Keys(props)) {
			fmt.Printf("  %v (0x%X)\n", evdev.PropName(prop), prop)
		}
	}
}

func printCodeSet(cat evdev.Category, codes map[uint16]bool) {
	if len(codes) == 0 {
		return
	}

	t := cat.EventType()
	if cat == evdev.CategoryForceFeedback {
		t = evdev.EvFf
	}
	fmt.Printf("  Event type %v (0x%X)\n", t, uint16(t))
	for _, code := range slices.Sorted(maps.Keys(codes)) {
		name := cat.Name(code)
		if cat == evdev.CategoryKey && name == evdev.UnknownCodeName {
			name = evdev.CategoryButton.Name(code)
		}
		if name == evdev.UnknownCodeName {
			continue
		}
		fmt.Printf("    Event code %v (0x%X)\n", name, code)
	}
}

func printAxes(axes map[uint16]evdev.AbsInfo) {
	if len(axes) == 0 {
		return
	}

	t := evdev.CategoryAbsoluteAxis.EventType()
	fmt.Printf("  Event type %v (0x%X)\n", t, uint16(t))
	for _, code := range slices.Sorted(maps.Keys(axes)) {
		name := evdev.CategoryAbsoluteAxis.Name(code)
		if name == evdev.UnknownCodeName {
			continue
		}

		info := axes[code]
		fmt.Printf("    Event code %v (0x%X)\n", name, code)
		fmt.Printf("      Value %6d\n", info.Value)
		fmt.Printf("      Min   %6d\n", info.Minimum)
		fmt.Printf("      Max   %6d\n", info.Maximum)
		fmt.Printf("      Fuzz  %6d\n", info.Fuzz)
		fmt.Printf("      Flat  %6d\n", info.Flat)
	}
}

type dumper struct {
	Device string
	Grab   bool
	Rumble bool
	Cfg    config.Rumble
}

func (du dumper) Run(ctx context.Context) error {
	logger := slog.Default().With("device", du.Device)

	d, err := evdev.Open(du.Device)
	if err != nil {
		return fmt.Errorf("open %v: %w", du.Device, err)
	}
	defer d.Close()

	// A cancelled context closes the device out from under the
	// blocking read so that the dump loop exits.
	go func() {
		<-ctx.Done()
		d.Close()
	}()

	printCapabilities(d)

	if du.Grab {
		if err := d.Grab(); err != nil {
			return err
		}
		defer d.Ungrab()
	}

	for {
		ready, err := d.Wait(5 * time.Second)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("wait for events: %w", err)
		}
		if !ready {
			if du.Rumble && d.Supports(evdev.EvFf, uint16(evdev.EffectPeriodic)) && d.Supports(evdev.EvFf, uint16(evdev.WaveSquare)) {
				if err := rumble(d, du.Cfg); err != nil {
					logger.Warn("rumble failed", "err", err)
				}
				continue
			}
			logger.Info("waiting for events")
			continue
		}

		ev, err := d.NextEvent()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("read event: %w", err)
		}
		fmt.Println(evdev.Categorize(ev))
	}
}

// rumble uploads a square-wave periodic effect, plays it briefly, and
// erases it again.
func rumble(d *evdev.Device, cfg config.Rumble) error {
	eff := evdev.Effect{
		Kind: evdev.EffectPeriodic,
		ID:   evdev.UnallocatedEffect,
		Periodic: evdev.PeriodicParams{
			Waveform:  evdev.WaveSquare,
			Period:    500 * time.Millisecond,
			Magnitude: int16(cfg.Strong),
		},
	}
	err := d.UploadEffect(&eff)
	if err != nil {
		return fmt.Errorf("upload effect: %w", err)
	}
	defer d.EraseEffect(eff.ID)

	err = d.PlayEffect(eff.ID, 1)
	if err != nil {
		return fmt.Errorf("play effect: %w", err)
	}
	time.Sleep(cfg.Length.Duration())
	return nil
}

func run(ctx context.Context) error {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %v [options] /dev/input/event<N>...\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "Options:")
		flag.PrintDefaults()
	}
	defaultConfig, _ := config.DefaultPath()
	configPath := flag.String("config", defaultConfig, "config file path")
	doRumble := flag.Bool("rumble", false, "rumble the device when a read times out")
	grab := flag.Bool("grab", false, "grab the device exclusively while dumping")
	verbose := flag.Bool("v", false, "enable debug logging")
	useJournal := flag.Bool("journal", false, "log to the systemd journal")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose || cfg.Log.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(glossy.Handler{
		UseJournal: *useJournal || cfg.Log.Journal,
		Level:      level,
	}))

	devices := flag.Args()
	if len(devices) == 0 {
		devices, err = cfg.DumpDevices()
		if err != nil {
			return err
		}
	}
	if len(devices) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	eg, ctx := errgroup.WithContext(ctx)
	for _, dev := range devices {
		du := dumper{
			Device: dev,
			Grab:   *grab || cfg.Dump.Grab,
			Rumble: *doRumble,
			Cfg:    cfg.Rumble,
		}
		eg.Go(func() error { return du.Run(ctx) })
	}

	err = eg.Wait()
	if (err != nil) && !errors.Is(err, context.Canceled) {
		return err
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
