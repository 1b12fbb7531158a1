package evdev_test

import (
	"encoding/binary"
	"testing"
	"time"

	"deedles.dev/evdev"
)

func roundTrip(t *testing.T, e evdev.Effect) evdev.Effect {
	t.Helper()

	var buf [evdev.EffectSize]byte
	e.Encode(buf[:])
	got := evdev.DecodeEffect(buf[:])
	if got != e {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, e)
	}
	return got
}

func TestEffectRoundTrip(t *testing.T) {
	env := evdev.Envelope{
		AttackLength: 100 * time.Millisecond,
		AttackLevel:  0x1000,
		FadeLength:   200 * time.Millisecond,
		FadeLevel:    0x2000,
	}
	base := evdev.Effect{
		ID:        3,
		Direction: 0x4000,
		Trigger:   evdev.Trigger{Button: 0x120, Interval: 50 * time.Millisecond},
		Replay:    evdev.Replay{Length: time.Second, Delay: 250 * time.Millisecond},
	}

	tests := []struct {
		name string
		mod  func(*evdev.Effect)
	}{
		{"Rumble", func(e *evdev.Effect) {
			e.Kind = evdev.EffectRumble
			e.Rumble = evdev.RumbleParams{StrongMagnitude: 0x8000, WeakMagnitude: 0xc000}
		}},
		{"Constant", func(e *evdev.Effect) {
			e.Kind = evdev.EffectConstant
			e.Constant = evdev.ConstantParams{Level: -32768, Envelope: env}
		}},
		{"Inertia", func(e *evdev.Effect) {
			e.Kind = evdev.EffectInertia
			e.Constant = evdev.ConstantParams{Level: 32767, Envelope: env}
		}},
		{"Ramp", func(e *evdev.Effect) {
			e.Kind = evdev.EffectRamp
			e.Ramp = evdev.RampParams{StartLevel: -100, EndLevel: 100, Envelope: env}
		}},
		{"Spring", func(e *evdev.Effect) {
			e.Kind = evdev.EffectSpring
			e.Conditions = [2]evdev.Condition{
				{RightSaturation: 1, LeftSaturation: 2, RightCoeff: -3, LeftCoeff: 4, Deadband: 5, Center: -6},
				{RightSaturation: 7, LeftSaturation: 8, RightCoeff: 9, LeftCoeff: -10, Deadband: 11, Center: 12},
			}
		}},
		{"Friction", func(e *evdev.Effect) {
			e.Kind = evdev.EffectFriction
			e.Conditions[0].RightCoeff = 0x7fff
		}},
		{"Periodic", func(e *evdev.Effect) {
			e.Kind = evdev.EffectPeriodic
			e.Periodic = evdev.PeriodicParams{
				Waveform:  evdev.WaveSine,
				Period:    500 * time.Millisecond,
				Magnitude: 30000,
				Offset:    -5,
				Phase:     90,
				Envelope:  env,
			}
		}},
		{"Custom", func(e *evdev.Effect) {
			e.Kind = evdev.EffectCustom
			e.Periodic = evdev.PeriodicParams{
				Waveform:   evdev.WaveCustom,
				Period:     100 * time.Millisecond,
				Magnitude:  1000,
				CustomLen:  16,
				CustomData: 0xdeadbeef,
			}
		}},
		{"CustomEmpty", func(e *evdev.Effect) {
			e.Kind = evdev.EffectCustom
			e.Periodic = evdev.PeriodicParams{Waveform: evdev.WaveCustom}
		}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			e := base
			test.mod(&e)
			roundTrip(t, e)
		})
	}
}

func TestEffectDurationTruncation(t *testing.T) {
	e := evdev.Effect{
		Kind:   evdev.EffectRumble,
		Replay: evdev.Replay{Length: 1500*time.Millisecond + 700*time.Microsecond},
	}

	var buf [evdev.EffectSize]byte
	e.Encode(buf[:])
	got := evdev.DecodeEffect(buf[:])
	if got.Replay.Length != 1500*time.Millisecond {
		t.Errorf("length = %v, want 1500ms", got.Replay.Length)
	}

	// A second trip through the codec changes nothing.
	roundTrip(t, got)
}

func TestEffectEncodeZeroesPayload(t *testing.T) {
	var buf [evdev.EffectSize]byte
	for i := range buf {
		buf[i] = 0xff
	}

	e := evdev.Effect{Kind: evdev.EffectRumble}
	e.Encode(buf[:])
	for i := 20; i < evdev.EffectSize; i++ {
		if buf[i] != 0 {
			t.Fatalf("byte %v = %#x, want 0", i, buf[i])
		}
	}
}

func TestDecodeEffectUnknownKind(t *testing.T) {
	var buf [evdev.EffectSize]byte
	binary.LittleEndian.PutUint16(buf[0:], 0x4242)
	binary.LittleEndian.PutUint16(buf[2:], 7)
	binary.LittleEndian.PutUint16(buf[4:], 180)
	binary.LittleEndian.PutUint16(buf[16:], 0x1234)

	got := evdev.DecodeEffect(buf[:])
	if got.Kind != 0x4242 {
		t.Errorf("kind = %#x, want 0x4242", uint16(got.Kind))
	}
	if got.ID != 7 || got.Direction != 180 {
		t.Errorf("base fields not decoded: %+v", got)
	}
	// No payload matches an unknown tag, so none is decoded.
	if got.Rumble != (evdev.RumbleParams{}) || got.Periodic != (evdev.PeriodicParams{}) {
		t.Errorf("payload decoded for unknown kind: %+v", got)
	}
}

func TestEffectCopyIndependence(t *testing.T) {
	a := evdev.Effect{
		Kind:     evdev.EffectPeriodic,
		Periodic: evdev.PeriodicParams{Waveform: evdev.WaveSquare, Magnitude: 100},
	}
	b := a
	b.Periodic.Magnitude = 200

	if a.Periodic.Magnitude != 100 {
		t.Errorf("copy modified the original: %+v", a.Periodic)
	}
}

func TestUploadedEffectID(t *testing.T) {
	e := evdev.Effect{Kind: evdev.EffectRumble, ID: evdev.UnallocatedEffect}

	var buf [evdev.EffectSize]byte
	e.Encode(buf[:])
	if got := int16(binary.LittleEndian.Uint16(buf[2:])); got != -1 {
		t.Errorf("encoded id = %v, want -1", got)
	}
}
