package evdev

import (
	"fmt"
	"time"
)

// InputEvent is a raw input event as read from a device, mirroring the
// kernel's input_event record.
type InputEvent struct {
	Time  time.Time
	Type  EventType
	Code  uint16
	Value int32
}

func (ev InputEvent) Is(t EventType, code uint16) bool {
	return (ev.Type == t) && (ev.Code == code)
}

func (ev InputEvent) String() string {
	return fmt.Sprintf(
		"%-14s event at %s, %-20s (0x%04X), value: %12d",
		ev.Type, ev.Time.UTC().Format(time.RFC3339Nano), UnknownCodeName, ev.Code, ev.Value,
	)
}

// KeyState is the tri-state of a key or button derived from an event's
// value.
type KeyState int

const (
	KeyUp KeyState = iota
	KeyDown
	KeyHold
)

func (s KeyState) String() string {
	switch s {
	case KeyDown:
		return "down"
	case KeyHold:
		return "hold"
	default:
		return "up"
	}
}

func keyStateOf(value int32) KeyState {
	switch value {
	case 1:
		return KeyDown
	case 2:
		return KeyHold
	default:
		return KeyUp
	}
}

// Event is an input event together with its resolved category. The zero
// Category, CategoryUnknown, marks an uncategorized event. An Event is a
// plain value: copies are independent.
type Event struct {
	InputEvent
	Category Category
}

// CodeName resolves the event's code through its category's table. Key
// events resolve through the key table first and the button table
// second, since both share the EV_KEY wire type.
func (ev Event) CodeName() string {
	if ev.Category == CategoryKey {
		if name, ok := keyNames[ev.Code]; ok {
			return name
		}
		if name, ok := buttonNames[ev.Code]; ok {
			return name
		}
		return UnknownCodeName
	}
	return ev.Category.Name(ev.Code)
}

// State reports the key state derived from the event's value. It is
// only meaningful for CategoryKey events.
func (ev Event) State() KeyState {
	return keyStateOf(ev.Value)
}

func (ev Event) String() string {
	if ev.Category == CategoryUnknown {
		return ev.InputEvent.String()
	}
	if ev.Category == CategoryKey {
		return fmt.Sprintf(
			"%-14s event at %s, %-20s (0x%04X), %s",
			ev.Category, ev.Time.UTC().Format(time.RFC3339Nano), ev.CodeName(), ev.Code, ev.State(),
		)
	}
	return fmt.Sprintf(
		"%-14s event at %s, %-20s (0x%04X), value: %12d",
		ev.Category, ev.Time.UTC().Format(time.RFC3339Nano), ev.CodeName(), ev.Code, ev.Value,
	)
}

// categorizeOrder fixes both the order in which categories are tried
// and the tie-break when a raw code value is legal in more than one
// table during the fallback pass.
var categorizeOrder = [...]Category{
	CategoryKey,
	CategoryRelativeAxis,
	CategoryAbsoluteAxis,
	CategorySynch,
	CategoryMisc,
	CategorySwitch,
	CategoryLED,
	CategorySound,
	CategoryAutorepeat,
	CategoryForceFeedback,
	CategoryUInput,
}

// Categorize promotes a raw event into its most specific recognized
// category. The declared wire type is the normal disambiguator; some
// devices reuse code values across types inconsistently, so a plain
// code-table match is accepted as a weaker fallback. Events matching no
// table come back uncategorized.
func Categorize(ev InputEvent) Event {
	for _, cat := range categorizeOrder {
		if cat.EventType() == ev.Type && cat.recognizes(ev.Code) {
			return Event{InputEvent: ev, Category: cat}
		}
	}
	for _, cat := range categorizeOrder {
		if cat.recognizes(ev.Code) {
			return Event{InputEvent: ev, Category: cat}
		}
	}
	return Event{InputEvent: ev}
}
