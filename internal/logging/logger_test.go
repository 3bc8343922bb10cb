package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelError, "ERROR"},
		{LevelWarn, "WARN"},
		{LevelInfo, "INFO"},
		{LevelDebug, "DEBUG"},
		{Level(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestDefaultLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewDefaultLoggerWithOutput(LevelWarn, &buf)

	l.Debugf("[unpacker] should not appear")
	l.Infof("[unpacker] should not appear either")
	l.Warnf("[unpacker] warn line")
	l.Errorf("[packer] error line")

	out := buf.String()
	if strings.Contains(out, "should not appear") {
		t.Errorf("low-severity lines leaked through filter: %q", out)
	}
	if !strings.Contains(out, "WARN [unpacker] warn line") {
		t.Errorf("missing warn line: %q", out)
	}
	if !strings.Contains(out, "ERROR [packer] error line") {
		t.Errorf("missing error line: %q", out)
	}
}

func TestDiscardIsSilent(t *testing.T) {
	// Must not panic and must accept any format/args.
	Discard.Errorf("x %d", 1)
	Discard.Warnf("x")
	Discard.Infof("x %v", nil)
	Discard.Debugf("x")
}
