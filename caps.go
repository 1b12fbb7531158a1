package evdev

import (
	"maps"

	"deedles.dev/xiter"
)

// AbsInfo describes one absolute axis's current value and calibration,
// mirroring the kernel's input_absinfo record. The input core does not
// clamp reported values to [Minimum, Maximum]; that is left to
// userspace.
type AbsInfo struct {
	Value      int32
	Minimum    int32
	Maximum    int32
	Fuzz       int32
	Flat       int32
	Resolution int32
}

// Capabilities records which codes, per category, a device supports.
// Key and Button codes live together in Keys since they share the
// EV_KEY wire type. Absolute axes additionally carry per-axis
// calibration.
//
// A Capabilities value is built once from a device (or by merging other
// values) and is read-only afterwards, except for axis updates through
// Device.SetAbsInfo.
type Capabilities struct {
	Keys           map[uint16]bool
	Synchs         map[uint16]bool
	RelativeAxes   map[uint16]bool
	AbsoluteAxes   map[uint16]AbsInfo
	Miscs          map[uint16]bool
	Switches       map[uint16]bool
	LEDs           map[uint16]bool
	Sounds         map[uint16]bool
	Autorepeats    map[uint16]bool
	ForceFeedbacks map[uint16]bool
	UInputs        map[uint16]bool
}

// ParseBitmask interprets bits as a little-endian bit vector indexed by
// code number, bit i of byte i/8, and returns the set codes.
func ParseBitmask(bits []byte) map[uint16]bool {
	codes := make(map[uint16]bool)
	for i, b := range bits {
		for j := range 8 {
			if b&(1<<j) != 0 {
				codes[uint16(i*8+j)] = true
			}
		}
	}
	return codes
}

// AllKeys returns the capabilities of a device supporting every known
// key and button code.
func AllKeys() Capabilities {
	keys := make(map[uint16]bool, len(keyNames)+len(buttonNames))
	for code := range xiter.Concat(maps.Keys(keyNames), maps.Keys(buttonNames)) {
		keys[code] = true
	}
	return Capabilities{Keys: keys}
}

func subset[V any](inner map[uint16]V, outer map[uint16]V) bool {
	for code := range inner {
		if _, ok := outer[code]; !ok {
			return false
		}
	}
	return true
}

// Includes reports whether c supports at least everything min does:
// for every category, every code of min must be present in c. For
// absolute axes only the axis codes are compared, not their
// calibration. Includes is reflexive and transitive.
func (c Capabilities) Includes(min Capabilities) bool {
	return subset(min.Keys, c.Keys) &&
		subset(min.Synchs, c.Synchs) &&
		subset(min.RelativeAxes, c.RelativeAxes) &&
		subset(min.AbsoluteAxes, c.AbsoluteAxes) &&
		subset(min.Miscs, c.Miscs) &&
		subset(min.Switches, c.Switches) &&
		subset(min.LEDs, c.LEDs) &&
		subset(min.Sounds, c.Sounds) &&
		subset(min.Autorepeats, c.Autorepeats) &&
		subset(min.ForceFeedbacks, c.ForceFeedbacks) &&
		subset(min.UInputs, c.UInputs)
}

// set returns the code set backing cat, allocating it on first use.
// Absolute axes are not backed by a plain set; see AbsoluteAxes.
func (c *Capabilities) set(cat Category) map[uint16]bool {
	field := func(m *map[uint16]bool) map[uint16]bool {
		if *m == nil {
			*m = make(map[uint16]bool)
		}
		return *m
	}
	switch cat {
	case CategoryKey, CategoryButton:
		return field(&c.Keys)
	case CategorySynch:
		return field(&c.Synchs)
	case CategoryRelativeAxis:
		return field(&c.RelativeAxes)
	case CategoryMisc:
		return field(&c.Miscs)
	case CategorySwitch:
		return field(&c.Switches)
	case CategoryLED:
		return field(&c.LEDs)
	case CategorySound:
		return field(&c.Sounds)
	case CategoryAutorepeat:
		return field(&c.Autorepeats)
	case CategoryForceFeedback:
		return field(&c.ForceFeedbacks)
	case CategoryUInput:
		return field(&c.UInputs)
	default:
		return nil
	}
}

// MergeCapabilities unions the capabilities of sources, skipping the
// excluded categories. Absolute axes merge as a plain map union: when
// sources disagree on an axis's calibration, the last source wins.
func MergeCapabilities(sources []Capabilities, exclude ...Category) Capabilities {
	skip := make(map[Category]bool, len(exclude))
	for _, cat := range exclude {
		skip[cat] = true
	}

	var merged Capabilities
	for _, src := range sources {
		for cat, codes := range map[Category]map[uint16]bool{
			CategoryKey:           src.Keys,
			CategorySynch:         src.Synchs,
			CategoryRelativeAxis:  src.RelativeAxes,
			CategoryMisc:          src.Miscs,
			CategorySwitch:        src.Switches,
			CategoryLED:           src.LEDs,
			CategorySound:         src.Sounds,
			CategoryAutorepeat:    src.Autorepeats,
			CategoryForceFeedback: src.ForceFeedbacks,
			CategoryUInput:        src.UInputs,
		} {
			if skip[cat] || len(codes) == 0 {
				continue
			}
			dst := merged.set(cat)
			for code := range codes {
				dst[code] = true
			}
		}

		if !skip[CategoryAbsoluteAxis] && len(src.AbsoluteAxes) > 0 {
			if merged.AbsoluteAxes == nil {
				merged.AbsoluteAxes = make(map[uint16]AbsInfo, len(src.AbsoluteAxes))
			}
			maps.Copy(merged.AbsoluteAxes, src.AbsoluteAxes)
		}
	}
	return merged
}
