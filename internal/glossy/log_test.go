package glossy_test

import (
	"log/slog"
	"testing"

	"deedles.dev/evdev/internal/glossy"
)

func TestEnabled(t *testing.T) {
	h := glossy.Handler{Level: slog.LevelInfo}
	if h.Enabled(t.Context(), slog.LevelDebug) {
		t.Error("debug enabled at info level")
	}
	if !h.Enabled(t.Context(), slog.LevelWarn) {
		t.Error("warn disabled at info level")
	}
}

func TestWithAttrs(t *testing.T) {
	var h glossy.Handler
	got := h.WithAttrs([]slog.Attr{slog.String("k", "v")})
	if _, ok := got.(glossy.Handler); !ok {
		t.Fatalf("unexpected handler type %T", got)
	}
}
