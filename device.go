package evdev

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"
)

// InputID is the identity record of an input device.
type InputID struct {
	BusType uint16
	Vendor  uint16
	Product uint16
	Version uint16
}

// KeyRepeat is a keyboard's repeat configuration: the repeat rate in
// characters per second and the time a key must be held before it
// starts repeating.
type KeyRepeat struct {
	Rate  uint32
	Delay time.Duration
}

// Device is an input device node from which events can be read and to
// which feedback, calibration, and force-feedback effects can be
// written.
type Device struct {
	eventIO

	path string

	Name    string
	Phys    string
	Uniq    string
	ID      InputID
	Version int32

	// Caps is the device's capability set, read once at Open. Only
	// axis entries change afterwards, through SetAbsInfo.
	Caps Capabilities

	// EffectCount is the number of force-feedback effect slots the
	// device offers.
	EffectCount int32
}

// Open opens the device node at path. It tries read-write first so
// that effects can be uploaded, and falls back to read-only.
func Open(path string) (*Device, error) {
	file, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		file, err = os.Open(path)
	}
	if err != nil {
		return nil, err
	}

	d := Device{eventIO: eventIO{file: file}, path: path}
	return &d, d.init()
}

// Path returns the device node path the device was opened from.
func (d *Device) Path() string {
	return d.path
}

func (d *Device) init() error {
	conn, err := d.file.SyscallConn()
	if err != nil {
		return err
	}

	var buf [256]byte
	err = cctl(conn, eviocgname(uintptr(len(buf))), &buf[0])
	if err != nil {
		return fmt.Errorf("get device name: %w", err)
	}
	d.Name = fromNTString(buf[:])

	// Not every device has a physical topology or a unique identifier.
	clear(buf[:])
	if err := cctl(conn, eviocgphys(uintptr(len(buf))), &buf[0]); err == nil {
		d.Phys = fromNTString(buf[:])
	}
	clear(buf[:])
	if err := cctl(conn, eviocguniq(uintptr(len(buf))), &buf[0]); err == nil {
		d.Uniq = fromNTString(buf[:])
	}

	err = cctl(conn, eviocgid, &d.ID)
	if err != nil {
		return fmt.Errorf("get device info: %w", err)
	}

	err = cctl(conn, eviocgversion, &d.Version)
	if err != nil {
		return fmt.Errorf("get driver version: %w", err)
	}

	err = d.readCapabilities(conn)
	if err != nil {
		return fmt.Errorf("get device capabilities: %w", err)
	}

	err = cctl(conn, eviocgeffects, &d.EffectCount)
	if err != nil {
		return fmt.Errorf("get effect slot count: %w", err)
	}

	return nil
}

func (d *Device) readCapabilities(conn syscall.RawConn) error {
	var evBits [(evCount + 7) / 8]byte
	err := cctl(conn, eviocgbit(0, uintptr(len(evBits))), &evBits[0])
	if err != nil {
		return err
	}

	var caps Capabilities
	for t := range EventType(evCount) {
		if !isBitSet(evBits[:], uint16(t)) {
			continue
		}

		var codeBits [(keyCount + 7) / 8]byte
		if err := cctl(conn, eviocgbit(uintptr(t), uintptr(len(codeBits))), &codeBits[0]); err != nil {
			continue
		}
		codes := ParseBitmask(codeBits[:])

		switch t {
		case EvSyn:
			caps.Synchs = codes
		case EvKey:
			caps.Keys = codes
		case EvRel:
			caps.RelativeAxes = codes
		case EvAbs:
			caps.AbsoluteAxes = make(map[uint16]AbsInfo, len(codes))
			for code := range codes {
				var info AbsInfo
				// An axis whose calibration cannot be read is
				// skipped, not fatal to the whole read.
				if err := cctl(conn, eviocgabs(code), &info); err != nil {
					continue
				}
				caps.AbsoluteAxes[code] = info
			}
		case EvMsc:
			caps.Miscs = codes
		case EvSw:
			caps.Switches = codes
		case EvLed:
			caps.LEDs = codes
		case EvSnd:
			caps.Sounds = codes
		case EvRep:
			caps.Autorepeats = codes
		case EvFf, EvFfStatus:
			if caps.ForceFeedbacks == nil {
				caps.ForceFeedbacks = codes
			} else {
				for code := range codes {
					caps.ForceFeedbacks[code] = true
				}
			}
		}
	}

	d.Caps = caps
	return nil
}

// Supports reports whether the device supports the given code under the
// given wire event type.
func (d *Device) Supports(t EventType, code uint16) bool {
	switch t {
	case EvSyn:
		return d.Caps.Synchs[code]
	case EvKey:
		return d.Caps.Keys[code]
	case EvRel:
		return d.Caps.RelativeAxes[code]
	case EvAbs:
		_, ok := d.Caps.AbsoluteAxes[code]
		return ok
	case EvMsc:
		return d.Caps.Miscs[code]
	case EvSw:
		return d.Caps.Switches[code]
	case EvLed:
		return d.Caps.LEDs[code]
	case EvSnd:
		return d.Caps.Sounds[code]
	case EvRep:
		return d.Caps.Autorepeats[code]
	case EvFf, EvFfStatus:
		return d.Caps.ForceFeedbacks[code]
	default:
		return false
	}
}

// Grab claims the device exclusively: other readers receive no events
// until Ungrab. Grabbing an already grabbed device fails.
func (d *Device) Grab() error {
	conn, err := d.file.SyscallConn()
	if err != nil {
		return err
	}
	if err := vctl(conn, eviocgrab, 1); err != nil {
		return fmt.Errorf("grab device: %w", err)
	}
	return nil
}

// Ungrab releases a grab taken by Grab.
func (d *Device) Ungrab() error {
	conn, err := d.file.SyscallConn()
	if err != nil {
		return err
	}
	if err := vctl(conn, eviocgrab, 0); err != nil {
		return fmt.Errorf("ungrab device: %w", err)
	}
	return nil
}

// Properties returns the device's input properties and quirks.
func (d *Device) Properties() (map[uint16]bool, error) {
	conn, err := d.file.SyscallConn()
	if err != nil {
		return nil, err
	}

	var bits [(propCount + 7) / 8]byte
	err = cctl(conn, eviocgprop(uintptr(len(bits))), &bits[0])
	if err != nil {
		return nil, fmt.Errorf("get device properties: %w", err)
	}
	return ParseBitmask(bits[:]), nil
}

// ActiveKeys returns the codes of all currently depressed keys and
// buttons.
func (d *Device) ActiveKeys() (map[uint16]bool, error) {
	conn, err := d.file.SyscallConn()
	if err != nil {
		return nil, err
	}

	var bits [(keyCount + 7) / 8]byte
	err = cctl(conn, eviocgkey(uintptr(len(bits))), &bits[0])
	if err != nil {
		return nil, fmt.Errorf("get active keys: %w", err)
	}
	return ParseBitmask(bits[:]), nil
}

// ActiveLEDs returns the codes of all currently lit LEDs.
func (d *Device) ActiveLEDs() (map[uint16]bool, error) {
	conn, err := d.file.SyscallConn()
	if err != nil {
		return nil, err
	}

	var bits [(ledCount + 7) / 8]byte
	err = cctl(conn, eviocgled(uintptr(len(bits))), &bits[0])
	if err != nil {
		return nil, fmt.Errorf("get active LEDs: %w", err)
	}
	return ParseBitmask(bits[:]), nil
}

// ActiveSwitches returns the codes of all switches currently in their
// active position.
func (d *Device) ActiveSwitches() (map[uint16]bool, error) {
	conn, err := d.file.SyscallConn()
	if err != nil {
		return nil, err
	}

	var bits [(swCount + 7) / 8]byte
	err = cctl(conn, eviocgsw(uintptr(len(bits))), &bits[0])
	if err != nil {
		return nil, fmt.Errorf("get active switches: %w", err)
	}
	return ParseBitmask(bits[:]), nil
}

// ActiveSounds returns the codes of all sounds currently playing.
func (d *Device) ActiveSounds() (map[uint16]bool, error) {
	conn, err := d.file.SyscallConn()
	if err != nil {
		return nil, err
	}

	var bits [(sndCount + 7) / 8]byte
	err = cctl(conn, eviocgsnd(uintptr(len(bits))), &bits[0])
	if err != nil {
		return nil, fmt.Errorf("get active sounds: %w", err)
	}
	return ParseBitmask(bits[:]), nil
}

// SetLED sets the state of one LED.
func (d *Device) SetLED(code uint16, value int32) error {
	return d.WriteEvent(EvLed, code, value)
}

// Repeat returns the keyboard repeat configuration.
func (d *Device) Repeat() (KeyRepeat, error) {
	conn, err := d.file.SyscallConn()
	if err != nil {
		return KeyRepeat{}, err
	}

	var rep [2]uint32
	err = cctl(conn, eviocgrep, &rep)
	if err != nil {
		return KeyRepeat{}, fmt.Errorf("get key repeat: %w", err)
	}
	return KeyRepeat{Rate: rep[0], Delay: time.Duration(rep[1]) * time.Millisecond}, nil
}

// SetRepeat sets the keyboard repeat configuration.
func (d *Device) SetRepeat(rep KeyRepeat) error {
	conn, err := d.file.SyscallConn()
	if err != nil {
		return err
	}

	raw := [2]uint32{rep.Rate, uint32(rep.Delay.Milliseconds())}
	if err := cctl(conn, eviocsrep, &raw); err != nil {
		return fmt.Errorf("set key repeat: %w", err)
	}
	return nil
}

// SetAbsInfo rewrites one absolute axis's calibration and updates the
// cached capability entry.
func (d *Device) SetAbsInfo(code uint16, info AbsInfo) error {
	conn, err := d.file.SyscallConn()
	if err != nil {
		return err
	}

	if err := cctl(conn, eviocsabs(code), &info); err != nil {
		return fmt.Errorf("set axis info: %w", err)
	}

	if d.Caps.AbsoluteAxes == nil {
		d.Caps.AbsoluteAxes = make(map[uint16]AbsInfo)
	}
	d.Caps.AbsoluteAxes[code] = info
	return nil
}

// UploadEffect uploads a force-feedback effect to the device. An effect
// whose ID is UnallocatedEffect is assigned a slot by the kernel; the
// assigned ID is stored back into e. Re-uploading with an assigned ID
// updates that slot.
func (d *Device) UploadEffect(e *Effect) error {
	conn, err := d.file.SyscallConn()
	if err != nil {
		return err
	}

	var buf [EffectSize]byte
	e.Encode(buf[:])
	if err := cctl(conn, eviocsff, &buf[0]); err != nil {
		return fmt.Errorf("upload effect: %w", err)
	}
	e.ID = int16(binary.LittleEndian.Uint16(buf[2:]))
	return nil
}

// UpdateEffect rewrites an already uploaded effect in place. The effect
// must carry the ID assigned by a previous UploadEffect.
func (d *Device) UpdateEffect(e *Effect) error {
	if e.ID == UnallocatedEffect {
		return errors.New("update of an unallocated effect")
	}
	return d.UploadEffect(e)
}

// EraseEffect removes an uploaded effect from the device, stopping it
// if it is playing.
func (d *Device) EraseEffect(id int16) error {
	conn, err := d.file.SyscallConn()
	if err != nil {
		return err
	}
	if err := vctl(conn, eviocrmff, uintptr(id)); err != nil {
		return fmt.Errorf("erase effect: %w", err)
	}
	return nil
}

// PlayEffect starts or stops playback of an uploaded effect.
func (d *Device) PlayEffect(id int16, value int32) error {
	return d.WriteEvent(EvFf, uint16(id), value)
}

// ClearEffects erases every effect slot, best effort.
func (d *Device) ClearEffects() {
	for id := range d.EffectCount {
		_ = d.EraseEffect(int16(id))
	}
}

// ListDevices returns the event device nodes under dir, or /dev/input
// if dir is empty.
func ListDevices(dir string) ([]string, error) {
	if dir == "" {
		dir = "/dev/input"
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %v: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), "event") {
			continue
		}
		if entry.Type()&os.ModeCharDevice == 0 {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}
