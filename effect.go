package evdev

import (
	"encoding/binary"
	"time"
)

// EffectKind is the wire type tag of a force-feedback effect record.
type EffectKind uint16

const (
	EffectRumble EffectKind = 0x50 + iota
	EffectPeriodic
	EffectConstant
	EffectSpring
	EffectFriction
	EffectDamper
	EffectInertia
	EffectRamp
)

// EffectCustom tags a custom periodic effect. It shares the waveform
// code space rather than the 0x50 block.
const EffectCustom EffectKind = 0x5d

func (k EffectKind) String() string {
	if name, ok := ffNames[uint16(k)]; ok {
		return name
	}
	return UnknownCodeName
}

// Waveform selects the wave shape of a periodic effect.
type Waveform uint16

const (
	WaveSquare Waveform = 0x58 + iota
	WaveTriangle
	WaveSine
	WaveSawUp
	WaveSawDown
	WaveCustom
)

// EffectSize is the size of an encoded effect record (64-bit ABI).
const EffectSize = 48

// UnallocatedEffect is the effect ID of an effect not yet allocated by
// the device. Uploading an effect with this ID asks the kernel to
// assign one.
const UnallocatedEffect = -1

// Trigger defines what triggers an effect: the triggering button and
// how soon the effect can be re-triggered.
type Trigger struct {
	Button   uint16
	Interval time.Duration
}

// Replay defines the scheduling of an effect: its duration and the
// delay before it starts playing.
type Replay struct {
	Length time.Duration
	Delay  time.Duration
}

// Envelope shapes the attack and fade of an effect. Levels are absolute
// values in the range 0x0000 to 0x7fff; the force-feedback core applies
// the polarity of the effect's base level.
type Envelope struct {
	AttackLength time.Duration
	AttackLevel  uint16
	FadeLength   time.Duration
	FadeLevel    uint16
}

// ConstantParams is the payload of a constant-force effect. Inertia
// effects reuse the same shape under a different kind tag.
type ConstantParams struct {
	Level    int16
	Envelope Envelope
}

// RampParams is the payload of a ramp effect.
type RampParams struct {
	StartLevel int16
	EndLevel   int16
	Envelope   Envelope
}

// Condition describes one axis of a spring, damper, or friction effect.
type Condition struct {
	RightSaturation uint16
	LeftSaturation  uint16
	RightCoeff      int16
	LeftCoeff       int16
	Deadband        uint16
	Center          int16
}

// PeriodicParams is the payload of a periodic effect. Custom effects
// reuse the same shape under a different kind tag. CustomData is an
// opaque reference to an externally owned sample buffer; it is carried
// through encode and decode untouched and never dereferenced here.
type PeriodicParams struct {
	Waveform   Waveform
	Period     time.Duration
	Magnitude  int16
	Offset     int16
	Phase      uint16
	Envelope   Envelope
	CustomLen  uint32
	CustomData uintptr
}

// RumbleParams is the payload of a rumble effect.
type RumbleParams struct {
	StrongMagnitude uint16
	WeakMagnitude   uint16
}

// Effect is a force-feedback effect of any kind: the base fields shared
// by every kind plus one payload selected by Kind. Exactly one payload
// is meaningful; the rest stay at their zero value. An Effect is a
// plain value, so copies are independent.
//
// Kinds sharing a payload shape: EffectConstant and EffectInertia use
// Constant; EffectSpring, EffectDamper, and EffectFriction use
// Conditions; EffectPeriodic and EffectCustom use Periodic.
type Effect struct {
	Kind      EffectKind
	ID        int16
	Direction uint16
	Trigger   Trigger
	Replay    Replay

	Constant   ConstantParams
	Ramp       RampParams
	Conditions [2]Condition
	Periodic   PeriodicParams
	Rumble     RumbleParams
}

func toMilliseconds(d time.Duration) uint16 {
	return uint16(d / time.Millisecond)
}

func putEnvelope(buf []byte, env Envelope) {
	binary.LittleEndian.PutUint16(buf[0:], toMilliseconds(env.AttackLength))
	binary.LittleEndian.PutUint16(buf[2:], env.AttackLevel)
	binary.LittleEndian.PutUint16(buf[4:], toMilliseconds(env.FadeLength))
	binary.LittleEndian.PutUint16(buf[6:], env.FadeLevel)
}

func getEnvelope(buf []byte) Envelope {
	return Envelope{
		AttackLength: time.Duration(binary.LittleEndian.Uint16(buf[0:])) * time.Millisecond,
		AttackLevel:  binary.LittleEndian.Uint16(buf[2:]),
		FadeLength:   time.Duration(binary.LittleEndian.Uint16(buf[4:])) * time.Millisecond,
		FadeLevel:    binary.LittleEndian.Uint16(buf[6:]),
	}
}

// Encode writes the effect into buf, which must be at least EffectSize
// bytes, in the fixed layout of the kernel's ff_effect record.
// Durations are truncated to 16-bit millisecond counts. Encode performs
// no validation: buffer sizing is the caller's contract.
func (e *Effect) Encode(buf []byte) {
	binary.LittleEndian.PutUint16(buf[0:], uint16(e.Kind))
	binary.LittleEndian.PutUint16(buf[2:], uint16(e.ID))
	binary.LittleEndian.PutUint16(buf[4:], e.Direction)
	binary.LittleEndian.PutUint16(buf[6:], e.Trigger.Button)
	binary.LittleEndian.PutUint16(buf[8:], toMilliseconds(e.Trigger.Interval))
	binary.LittleEndian.PutUint16(buf[10:], toMilliseconds(e.Replay.Length))
	binary.LittleEndian.PutUint16(buf[12:], toMilliseconds(e.Replay.Delay))
	binary.LittleEndian.PutUint16(buf[14:], 0)

	for i := 16; i < EffectSize; i++ {
		buf[i] = 0
	}

	switch e.Kind {
	case EffectConstant, EffectInertia:
		binary.LittleEndian.PutUint16(buf[16:], uint16(e.Constant.Level))
		putEnvelope(buf[18:], e.Constant.Envelope)
	case EffectRamp:
		binary.LittleEndian.PutUint16(buf[16:], uint16(e.Ramp.StartLevel))
		binary.LittleEndian.PutUint16(buf[18:], uint16(e.Ramp.EndLevel))
		putEnvelope(buf[20:], e.Ramp.Envelope)
	case EffectSpring, EffectDamper, EffectFriction:
		for i, cond := range e.Conditions {
			off := 16 + i*12
			binary.LittleEndian.PutUint16(buf[off+0:], cond.RightSaturation)
			binary.LittleEndian.PutUint16(buf[off+2:], cond.LeftSaturation)
			binary.LittleEndian.PutUint16(buf[off+4:], uint16(cond.RightCoeff))
			binary.LittleEndian.PutUint16(buf[off+6:], uint16(cond.LeftCoeff))
			binary.LittleEndian.PutUint16(buf[off+8:], cond.Deadband)
			binary.LittleEndian.PutUint16(buf[off+10:], uint16(cond.Center))
		}
	case EffectPeriodic, EffectCustom:
		binary.LittleEndian.PutUint16(buf[16:], uint16(e.Periodic.Waveform))
		binary.LittleEndian.PutUint16(buf[18:], toMilliseconds(e.Periodic.Period))
		binary.LittleEndian.PutUint16(buf[20:], uint16(e.Periodic.Magnitude))
		binary.LittleEndian.PutUint16(buf[22:], uint16(e.Periodic.Offset))
		binary.LittleEndian.PutUint16(buf[24:], e.Periodic.Phase)
		putEnvelope(buf[26:], e.Periodic.Envelope)
		binary.LittleEndian.PutUint32(buf[36:], e.Periodic.CustomLen)
		binary.LittleEndian.PutUint64(buf[40:], uint64(e.Periodic.CustomData))
	case EffectRumble:
		binary.LittleEndian.PutUint16(buf[16:], e.Rumble.StrongMagnitude)
		binary.LittleEndian.PutUint16(buf[18:], e.Rumble.WeakMagnitude)
	}
}

// Decode reads the base fields and the payload selected by e.Kind from
// buf, which must be at least EffectSize bytes. The tag embedded in buf
// is ignored; use DecodeEffect to dispatch on it.
func (e *Effect) Decode(buf []byte) {
	e.ID = int16(binary.LittleEndian.Uint16(buf[2:]))
	e.Direction = binary.LittleEndian.Uint16(buf[4:])
	e.Trigger = Trigger{
		Button:   binary.LittleEndian.Uint16(buf[6:]),
		Interval: time.Duration(binary.LittleEndian.Uint16(buf[8:])) * time.Millisecond,
	}
	e.Replay = Replay{
		Length: time.Duration(binary.LittleEndian.Uint16(buf[10:])) * time.Millisecond,
		Delay:  time.Duration(binary.LittleEndian.Uint16(buf[12:])) * time.Millisecond,
	}

	switch e.Kind {
	case EffectConstant, EffectInertia:
		e.Constant = ConstantParams{
			Level:    int16(binary.LittleEndian.Uint16(buf[16:])),
			Envelope: getEnvelope(buf[18:]),
		}
	case EffectRamp:
		e.Ramp = RampParams{
			StartLevel: int16(binary.LittleEndian.Uint16(buf[16:])),
			EndLevel:   int16(binary.LittleEndian.Uint16(buf[18:])),
			Envelope:   getEnvelope(buf[20:]),
		}
	case EffectSpring, EffectDamper, EffectFriction:
		for i := range e.Conditions {
			off := 16 + i*12
			e.Conditions[i] = Condition{
				RightSaturation: binary.LittleEndian.Uint16(buf[off+0:]),
				LeftSaturation:  binary.LittleEndian.Uint16(buf[off+2:]),
				RightCoeff:      int16(binary.LittleEndian.Uint16(buf[off+4:])),
				LeftCoeff:       int16(binary.LittleEndian.Uint16(buf[off+6:])),
				Deadband:        binary.LittleEndian.Uint16(buf[off+8:]),
				Center:          int16(binary.LittleEndian.Uint16(buf[off+10:])),
			}
		}
	case EffectPeriodic, EffectCustom:
		e.Periodic = PeriodicParams{
			Waveform:   Waveform(binary.LittleEndian.Uint16(buf[16:])),
			Period:     time.Duration(binary.LittleEndian.Uint16(buf[18:])) * time.Millisecond,
			Magnitude:  int16(binary.LittleEndian.Uint16(buf[20:])),
			Offset:     int16(binary.LittleEndian.Uint16(buf[22:])),
			Phase:      binary.LittleEndian.Uint16(buf[24:]),
			Envelope:   getEnvelope(buf[26:]),
			CustomLen:  binary.LittleEndian.Uint32(buf[36:]),
			CustomData: uintptr(binary.LittleEndian.Uint64(buf[40:])),
		}
	case EffectRumble:
		e.Rumble = RumbleParams{
			StrongMagnitude: binary.LittleEndian.Uint16(buf[16:]),
			WeakMagnitude:   binary.LittleEndian.Uint16(buf[18:]),
		}
	}
}

// DecodeEffect reconstructs an effect from an encoded record. The type
// tag is read first and the matching payload decoded. A tag naming no
// known kind is kept as-is and only the base fields are decoded, so
// callers can still inspect it.
func DecodeEffect(buf []byte) Effect {
	e := Effect{Kind: EffectKind(binary.LittleEndian.Uint16(buf[0:]))}
	switch e.Kind {
	case EffectRumble, EffectPeriodic, EffectConstant, EffectSpring,
		EffectFriction, EffectDamper, EffectInertia, EffectRamp, EffectCustom:
		e.Decode(buf)
	default:
		tag := e.Kind
		e.Kind = 0
		e.Decode(buf)
		e.Kind = tag
	}
	return e
}
