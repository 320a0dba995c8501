package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNew(t *testing.T) {
	t.Parallel()

	if lvl := New("debug").GetLevel(); lvl != zerolog.DebugLevel {
		t.Fatalf("expected debug level, got %s", lvl)
	}
	if lvl := New("nonsense").GetLevel(); lvl != zerolog.InfoLevel {
		t.Fatalf("expected fallback to info level, got %s", lvl)
	}
}
