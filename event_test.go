package evdev_test

import (
	"strings"
	"testing"
	"time"

	"deedles.dev/evdev"
)

func TestCategorizeByType(t *testing.T) {
	tests := []struct {
		name string
		ev   evdev.InputEvent
		want evdev.Category
		code string
	}{
		{"Key", evdev.InputEvent{Type: evdev.EvKey, Code: 1}, evdev.CategoryKey, "KEY_ESC"},
		{"Button", evdev.InputEvent{Type: evdev.EvKey, Code: 0x110}, evdev.CategoryKey, "BTN_LEFT"},
		{"Synch", evdev.InputEvent{Type: evdev.EvSyn, Code: 0}, evdev.CategorySynch, "SYN_REPORT"},
		{"Relative", evdev.InputEvent{Type: evdev.EvRel, Code: 1}, evdev.CategoryRelativeAxis, "REL_Y"},
		{"Absolute", evdev.InputEvent{Type: evdev.EvAbs, Code: 0}, evdev.CategoryAbsoluteAxis, "ABS_X"},
		{"Misc", evdev.InputEvent{Type: evdev.EvMsc, Code: 4}, evdev.CategoryMisc, "MSC_SCAN"},
		{"Switch", evdev.InputEvent{Type: evdev.EvSw, Code: 0}, evdev.CategorySwitch, "SW_LID"},
		{"LED", evdev.InputEvent{Type: evdev.EvLed, Code: 0}, evdev.CategoryLED, "LED_NUML"},
		{"Sound", evdev.InputEvent{Type: evdev.EvSnd, Code: 0}, evdev.CategorySound, "SND_CLICK"},
		{"Autorepeat", evdev.InputEvent{Type: evdev.EvRep, Code: 0}, evdev.CategoryAutorepeat, "REP_DELAY"},
		{"ForceFeedback", evdev.InputEvent{Type: evdev.EvFfStatus, Code: 0x50}, evdev.CategoryForceFeedback, "FF_RUMBLE"},
		{"UInput", evdev.InputEvent{Type: evdev.EvUinput, Code: 1}, evdev.CategoryUInput, "UI_FF_UPLOAD"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := evdev.Categorize(test.ev)
			if got.Category != test.want {
				t.Fatalf("category = %v, want %v", got.Category, test.want)
			}
			if name := got.CodeName(); name != test.code {
				t.Errorf("code name = %v, want %v", name, test.code)
			}
		})
	}
}

func TestCategorizeFallback(t *testing.T) {
	// A declared type that matches no table falls back to a pure
	// code-table lookup, tried in a fixed order.
	tests := []struct {
		name string
		ev   evdev.InputEvent
		want evdev.Category
		code string
	}{
		// Code 1 is in nearly every table; the key table wins.
		{"KeyWins", evdev.InputEvent{Type: evdev.EvPwr, Code: 1}, evdev.CategoryKey, "KEY_ESC"},
		// Code 84 has no key assigned, so the scan continues past
		// the key table and lands on FF_FRICTION.
		{"KeyGap", evdev.InputEvent{Type: evdev.EvPwr, Code: 84}, evdev.CategoryForceFeedback, "FF_FRICTION"},
		// Button codes resolve through the key category too.
		{"Button", evdev.InputEvent{Type: evdev.EvPwr, Code: 0x110}, evdev.CategoryKey, "BTN_LEFT"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := evdev.Categorize(test.ev)
			if got.Category != test.want {
				t.Fatalf("category = %v, want %v", got.Category, test.want)
			}
			if name := got.CodeName(); name != test.code {
				t.Errorf("code name = %v, want %v", name, test.code)
			}
		})
	}
}

func TestCategorizeUnknown(t *testing.T) {
	got := evdev.Categorize(evdev.InputEvent{Type: evdev.EvPwr, Code: 0x3a5})
	if got.Category != evdev.CategoryUnknown {
		t.Fatalf("category = %v, want uncategorized", got.Category)
	}
	if !strings.Contains(got.String(), evdev.UnknownCodeName) {
		t.Errorf("string = %q", got.String())
	}
}

func TestCategorizeDeterministic(t *testing.T) {
	ev := evdev.InputEvent{Type: evdev.EvPwr, Code: 0}
	want := evdev.Categorize(ev).Category
	for range 100 {
		if got := evdev.Categorize(ev).Category; got != want {
			t.Fatalf("category changed between runs: %v then %v", want, got)
		}
	}
}

func TestKeyState(t *testing.T) {
	tests := []struct {
		value int32
		want  evdev.KeyState
	}{
		{0, evdev.KeyUp},
		{1, evdev.KeyDown},
		{2, evdev.KeyHold},
		{3, evdev.KeyUp},
		{-1, evdev.KeyUp},
	}
	for _, test := range tests {
		ev := evdev.Categorize(evdev.InputEvent{Type: evdev.EvKey, Code: 1, Value: test.value})
		if got := ev.State(); got != test.want {
			t.Errorf("state of value %v = %v, want %v", test.value, got, test.want)
		}
	}
}

func TestEventString(t *testing.T) {
	when := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	key := evdev.Categorize(evdev.InputEvent{Time: when, Type: evdev.EvKey, Code: 0x110, Value: 1})
	if s := key.String(); !strings.Contains(s, "BTN_LEFT") || !strings.Contains(s, "down") {
		t.Errorf("key string = %q", s)
	}

	rel := evdev.Categorize(evdev.InputEvent{Time: when, Type: evdev.EvRel, Code: 0, Value: -3})
	if s := rel.String(); !strings.Contains(s, "REL_X") || !strings.Contains(s, "-3") {
		t.Errorf("rel string = %q", s)
	}
}

func TestIs(t *testing.T) {
	ev := evdev.InputEvent{Type: evdev.EvKey, Code: 56}
	if !ev.Is(evdev.EvKey, 56) {
		t.Error("Is rejected a matching event")
	}
	if ev.Is(evdev.EvKey, 57) || ev.Is(evdev.EvRel, 56) {
		t.Error("Is accepted a mismatched event")
	}
}
