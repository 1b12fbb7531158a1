package evdev

import (
	"encoding/binary"
	"fmt"
	"os"
	"unsafe"
)

const uinputPath = "/dev/uinput"

// uinputUserDev mirrors the setup record written to /dev/uinput before
// UI_DEV_CREATE.
type uinputUserDev struct {
	Name         [uinputMaxNameSize]byte
	ID           InputID
	FFEffectsMax uint32
	AbsMax       [uinputAbsSize]int32
	AbsMin       [uinputAbsSize]int32
	AbsFuzz      [uinputAbsSize]int32
	AbsFlat      [uinputAbsSize]int32
}

// UserDeviceOptions configures a virtual device created through
// CreateUserDevice.
type UserDeviceOptions struct {
	// Name is the device name reported to readers.
	Name string

	// ID is the reported identity. A zero value is fine.
	ID InputID

	// Capabilities is the set of events the device can emit. If nil,
	// the device claims every known key and button.
	Capabilities *Capabilities

	// Properties lists input property bits to set on the device.
	Properties []uint16

	// MaxEffects is the number of force-feedback effect slots to
	// offer. Leaving it zero disables force feedback even if the
	// capability set names effect types.
	MaxEffects uint32
}

// UserDevice is a virtual input device backed by uinput. Events written
// to it appear to the rest of the system as if a real device produced
// them.
type UserDevice struct {
	eventIO

	Name string
	Caps Capabilities
}

// CreateUserDevice creates a new virtual input device.
func CreateUserDevice(opts UserDeviceOptions) (*UserDevice, error) {
	file, err := os.OpenFile(uinputPath, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}

	caps := opts.Capabilities
	if caps == nil {
		all := AllKeys()
		caps = &all
	}

	d := UserDevice{
		eventIO: eventIO{file: file},
		Name:    opts.Name,
		Caps:    *caps,
	}

	err = d.setup(opts, caps)
	if err != nil {
		file.Close()
		return nil, err
	}
	return &d, nil
}

// CreateFromDevices creates a virtual device whose capabilities are the
// union of the given source devices'. Categories in exclude are left
// out; if none are given, synchronization and force-feedback are
// excluded, since the kernel provides the former and the latter needs
// an upload handler.
func CreateFromDevices(name string, sources []*Device, exclude ...Category) (*UserDevice, error) {
	if len(exclude) == 0 {
		exclude = []Category{CategorySynch, CategoryForceFeedback}
	}

	all := make([]Capabilities, 0, len(sources))
	for _, d := range sources {
		all = append(all, d.Caps)
	}

	caps := MergeCapabilities(all, exclude...)
	return CreateUserDevice(UserDeviceOptions{
		Name:         name,
		Capabilities: &caps,
	})
}

func (d *UserDevice) setup(opts UserDeviceOptions, caps *Capabilities) error {
	conn, err := d.file.SyscallConn()
	if err != nil {
		return err
	}

	setBits := func(evType EventType, setBit uintptr, codes map[uint16]bool) error {
		if len(codes) == 0 {
			return nil
		}
		if err := vctl(conn, uiSetEvBit, uintptr(evType)); err != nil {
			return fmt.Errorf("set event type %v: %w", evType, err)
		}
		for code := range codes {
			if err := vctl(conn, setBit, uintptr(code)); err != nil {
				return fmt.Errorf("set %v code %v: %w", evType, code, err)
			}
		}
		return nil
	}

	err = setBits(EvKey, uiSetKeyBit, caps.Keys)
	if err != nil {
		return err
	}
	err = setBits(EvRel, uiSetRelBit, caps.RelativeAxes)
	if err != nil {
		return err
	}
	err = setBits(EvMsc, uiSetMscBit, caps.Miscs)
	if err != nil {
		return err
	}
	err = setBits(EvSw, uiSetSwBit, caps.Switches)
	if err != nil {
		return err
	}
	err = setBits(EvLed, uiSetLedBit, caps.LEDs)
	if err != nil {
		return err
	}
	err = setBits(EvSnd, uiSetSndBit, caps.Sounds)
	if err != nil {
		return err
	}

	if opts.MaxEffects > 0 {
		err = setBits(EvFf, uiSetFfBit, caps.ForceFeedbacks)
		if err != nil {
			return err
		}
	}

	var dev uinputUserDev
	copy(dev.Name[:uinputMaxNameSize-1], opts.Name)
	dev.ID = opts.ID
	dev.FFEffectsMax = opts.MaxEffects

	if len(caps.AbsoluteAxes) != 0 {
		err = vctl(conn, uiSetEvBit, uintptr(EvAbs))
		if err != nil {
			return fmt.Errorf("set event type %v: %w", EvAbs, err)
		}
		for code, info := range caps.AbsoluteAxes {
			if err := vctl(conn, uiSetAbsBit, uintptr(code)); err != nil {
				return fmt.Errorf("set axis %v: %w", code, err)
			}
			if code < uinputAbsSize {
				dev.AbsMin[code] = info.Minimum
				dev.AbsMax[code] = info.Maximum
				dev.AbsFuzz[code] = info.Fuzz
				dev.AbsFlat[code] = info.Flat
			}
		}
	}

	for _, prop := range opts.Properties {
		if err := vctl(conn, uiSetPropBit, uintptr(prop)); err != nil {
			return fmt.Errorf("set property %v: %w", prop, err)
		}
	}

	buf := unsafe.Slice((*byte)(unsafe.Pointer(&dev)), unsafe.Sizeof(dev))
	_, err = d.file.Write(buf)
	if err != nil {
		return fmt.Errorf("write device setup: %w", err)
	}

	err = vctl(conn, uiDevCreate, 0)
	if err != nil {
		return fmt.Errorf("create device: %w", err)
	}
	return nil
}

// Sync emits a SYN_REPORT, marking the end of an event packet.
func (d *UserDevice) Sync() error {
	return d.WriteEvent(EvSyn, 0, 0)
}

// Close destroys the virtual device and releases the uinput handle.
func (d *UserDevice) Close() error {
	conn, err := d.file.SyscallConn()
	if err == nil {
		err = vctl(conn, uiDevDestroy, 0)
	}
	if cerr := d.file.Close(); cerr != nil {
		return cerr
	}
	return err
}

// FFUpload is an in-progress force-feedback upload request from a
// reader of the virtual device. Effect is the incoming effect; Old is
// the previous content of the slot when the request is an update.
// Retval is returned to the requester by EndUpload.
type FFUpload struct {
	RequestID uint32
	Retval    int32
	Effect    Effect
	Old       Effect
}

// FFErase is an in-progress force-feedback erase request. Retval is
// returned to the requester by EndErase.
type FFErase struct {
	RequestID uint32
	Retval    int32
	EffectID  uint32
}

// BeginUpload fetches the details of an upload request signalled by a
// UI_FF_UPLOAD event. id is that event's value.
func (d *UserDevice) BeginUpload(id uint32) (*FFUpload, error) {
	conn, err := d.file.SyscallConn()
	if err != nil {
		return nil, err
	}

	var buf [ffUploadSize]byte
	binary.LittleEndian.PutUint32(buf[0:], id)
	err = cctl(conn, uiBeginFFUpload, &buf[0])
	if err != nil {
		return nil, fmt.Errorf("begin effect upload: %w", err)
	}
	return decodeUpload(buf[:]), nil
}

// EndUpload completes an upload request, reporting up.Retval to the
// requester.
func (d *UserDevice) EndUpload(up *FFUpload) error {
	conn, err := d.file.SyscallConn()
	if err != nil {
		return err
	}

	var buf [ffUploadSize]byte
	encodeUpload(buf[:], up)
	if err := cctl(conn, uiEndFFUpload, &buf[0]); err != nil {
		return fmt.Errorf("end effect upload: %w", err)
	}
	return nil
}

// BeginErase fetches the details of an erase request signalled by a
// UI_FF_ERASE event. id is that event's value.
func (d *UserDevice) BeginErase(id uint32) (*FFErase, error) {
	conn, err := d.file.SyscallConn()
	if err != nil {
		return nil, err
	}

	var buf [ffEraseSize]byte
	binary.LittleEndian.PutUint32(buf[0:], id)
	err = cctl(conn, uiBeginFFErase, &buf[0])
	if err != nil {
		return nil, fmt.Errorf("begin effect erase: %w", err)
	}
	return &FFErase{
		RequestID: binary.LittleEndian.Uint32(buf[0:]),
		Retval:    int32(binary.LittleEndian.Uint32(buf[4:])),
		EffectID:  binary.LittleEndian.Uint32(buf[8:]),
	}, nil
}

// EndErase completes an erase request, reporting er.Retval to the
// requester.
func (d *UserDevice) EndErase(er *FFErase) error {
	conn, err := d.file.SyscallConn()
	if err != nil {
		return err
	}

	var buf [ffEraseSize]byte
	binary.LittleEndian.PutUint32(buf[0:], er.RequestID)
	binary.LittleEndian.PutUint32(buf[4:], uint32(er.Retval))
	binary.LittleEndian.PutUint32(buf[8:], er.EffectID)
	if err := cctl(conn, uiEndFFErase, &buf[0]); err != nil {
		return fmt.Errorf("end effect erase: %w", err)
	}
	return nil
}

func decodeUpload(buf []byte) *FFUpload {
	up := FFUpload{
		RequestID: binary.LittleEndian.Uint32(buf[0:]),
		Retval:    int32(binary.LittleEndian.Uint32(buf[4:])),
	}
	up.Effect = DecodeEffect(buf[8 : 8+EffectSize])
	up.Old = DecodeEffect(buf[8+EffectSize:])
	return &up
}

func encodeUpload(buf []byte, up *FFUpload) {
	binary.LittleEndian.PutUint32(buf[0:], up.RequestID)
	binary.LittleEndian.PutUint32(buf[4:], uint32(up.Retval))
	up.Effect.Encode(buf[8 : 8+EffectSize])
	up.Old.Encode(buf[8+EffectSize:])
}
