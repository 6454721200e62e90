package debug

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func capture(t *testing.T, lvl zerolog.Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := logger
	SetOutput(&buf, lvl)
	t.Cleanup(func() { logger = prev })
	return &buf
}

func TestDropError(t *testing.T) {
	buf := capture(t, zerolog.InfoLevel)
	DropError("usage", errors.New("missing denominator"))
	out := buf.String()
	if !strings.Contains(out, "usage") || !strings.Contains(out, "missing denominator") {
		t.Fatalf("output %q lacks prefix or error", out)
	}
	if !strings.Contains(out, "ERR") {
		t.Fatalf("output %q not at error level", out)
	}
}

func TestDropErrorNilIsWarning(t *testing.T) {
	buf := capture(t, zerolog.InfoLevel)
	DropError("gc tag", nil)
	if out := buf.String(); !strings.Contains(out, "WRN") || !strings.Contains(out, "gc tag") {
		t.Fatalf("output %q", out)
	}
}

func TestDropMessage(t *testing.T) {
	buf := capture(t, zerolog.InfoLevel)
	DropMessage("RUN", "Clone finished")
	out := buf.String()
	if !strings.Contains(out, "tag=RUN") || !strings.Contains(out, "Clone finished") {
		t.Fatalf("output %q", out)
	}
}

func TestTraceHiddenAtInfo(t *testing.T) {
	buf := capture(t, zerolog.InfoLevel)
	Trace("RUN", "mutations=3")
	if buf.Len() != 0 {
		t.Fatalf("trace leaked at info level: %q", buf.String())
	}
}

func TestTraceShownAtDebug(t *testing.T) {
	buf := capture(t, zerolog.DebugLevel)
	Trace("RUN", "mutations=3")
	if !strings.Contains(buf.String(), "mutations=3") {
		t.Fatalf("output %q", buf.String())
	}
}

func TestDisabledSilencesEverything(t *testing.T) {
	buf := capture(t, zerolog.Disabled)
	DropError("x", errors.New("y"))
	DropMessage("x", "y")
	if buf.Len() != 0 {
		t.Fatalf("output at disabled level: %q", buf.String())
	}
}

func TestLevelFromEnv(t *testing.T) {
	cases := map[string]zerolog.Level{
		"":         zerolog.InfoLevel,
		"bogus":    zerolog.InfoLevel,
		"trace":    zerolog.TraceLevel,
		" DEBUG ":  zerolog.DebugLevel,
		"warning":  zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
		"off":      zerolog.Disabled,
		"disabled": zerolog.Disabled,
	}
	for raw, want := range cases {
		if got := levelFromEnv(raw); got != want {
			t.Errorf("levelFromEnv(%q) = %v, want %v", raw, got, want)
		}
	}
}
