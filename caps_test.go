package evdev_test

import (
	"testing"

	"deedles.dev/evdev"
)

func TestParseBitmask(t *testing.T) {
	tests := []struct {
		name string
		bits []byte
		want []uint16
	}{
		{"Empty", nil, nil},
		{"Zero", []byte{0}, nil},
		{"LowBits", []byte{0b1001}, []uint16{0, 3}},
		{"SecondByte", []byte{0, 0b0101}, []uint16{8, 10}},
		{"HighBit", []byte{0, 0x80}, []uint16{15}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := evdev.ParseBitmask(test.bits)
			if len(got) != len(test.want) {
				t.Fatalf("got %v codes, want %v: %v", len(got), len(test.want), got)
			}
			for _, code := range test.want {
				if !got[code] {
					t.Errorf("code %v missing from %v", code, got)
				}
			}
		})
	}
}

func TestIncludes(t *testing.T) {
	small := evdev.Capabilities{
		Keys:         map[uint16]bool{1: true, 0x110: true},
		RelativeAxes: map[uint16]bool{0: true},
	}
	big := evdev.Capabilities{
		Keys:         map[uint16]bool{1: true, 2: true, 0x110: true},
		RelativeAxes: map[uint16]bool{0: true, 1: true},
		Switches:     map[uint16]bool{0: true},
	}

	if !big.Includes(small) {
		t.Error("superset does not include subset")
	}
	if small.Includes(big) {
		t.Error("subset includes superset")
	}
	if !small.Includes(small) {
		t.Error("capabilities do not include themselves")
	}
	if !big.Includes(evdev.Capabilities{}) {
		t.Error("empty capabilities not included")
	}
}

func TestIncludesAbsoluteAxes(t *testing.T) {
	// Only which axes exist matters, not their calibration.
	a := evdev.Capabilities{
		AbsoluteAxes: map[uint16]evdev.AbsInfo{0: {Minimum: -10, Maximum: 10}},
	}
	b := evdev.Capabilities{
		AbsoluteAxes: map[uint16]evdev.AbsInfo{0: {Minimum: 0, Maximum: 255}},
	}
	if !a.Includes(b) || !b.Includes(a) {
		t.Error("axis calibration affected Includes")
	}
}

func TestAllKeys(t *testing.T) {
	all := evdev.AllKeys()
	if !all.Keys[1] {
		t.Error("KEY_ESC missing")
	}
	if !all.Keys[0x110] {
		t.Error("BTN_LEFT missing")
	}
	if len(all.RelativeAxes) != 0 {
		t.Error("unexpected non-key capabilities")
	}

	got := evdev.AllKeys()
	if !got.Includes(evdev.Capabilities{Keys: map[uint16]bool{1: true, 0x2c3: true}}) {
		t.Error("known codes not included")
	}
}

func TestMergeCapabilities(t *testing.T) {
	a := evdev.Capabilities{
		Keys:           map[uint16]bool{1: true},
		Synchs:         map[uint16]bool{0: true},
		ForceFeedbacks: map[uint16]bool{0x50: true},
	}
	b := evdev.Capabilities{
		Keys:         map[uint16]bool{2: true},
		RelativeAxes: map[uint16]bool{0: true},
	}

	merged := evdev.MergeCapabilities([]evdev.Capabilities{a, b})
	if !merged.Keys[1] || !merged.Keys[2] {
		t.Errorf("keys not merged: %v", merged.Keys)
	}
	if !merged.Synchs[0] || !merged.RelativeAxes[0] || !merged.ForceFeedbacks[0x50] {
		t.Error("categories lost in merge")
	}

	excluded := evdev.MergeCapabilities(
		[]evdev.Capabilities{a, b},
		evdev.CategorySynch, evdev.CategoryForceFeedback,
	)
	if len(excluded.Synchs) != 0 || len(excluded.ForceFeedbacks) != 0 {
		t.Error("excluded categories still merged")
	}
	if !excluded.Keys[1] || !excluded.RelativeAxes[0] {
		t.Error("non-excluded categories lost")
	}
}

func TestMergeAbsoluteAxes(t *testing.T) {
	a := evdev.Capabilities{
		AbsoluteAxes: map[uint16]evdev.AbsInfo{
			0: {Minimum: -1, Maximum: 1},
			1: {Minimum: -2, Maximum: 2},
		},
	}
	b := evdev.Capabilities{
		AbsoluteAxes: map[uint16]evdev.AbsInfo{
			1: {Minimum: 0, Maximum: 255},
		},
	}

	merged := evdev.MergeCapabilities([]evdev.Capabilities{a, b})
	if len(merged.AbsoluteAxes) != 2 {
		t.Fatalf("axes = %v", merged.AbsoluteAxes)
	}
	// Later sources win on calibration conflicts.
	if got := merged.AbsoluteAxes[1]; got.Maximum != 255 {
		t.Errorf("axis 1 = %+v, want the later source's calibration", got)
	}
}
