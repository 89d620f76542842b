package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromString(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		" warn ":  LevelWarn,
		"error":   LevelError,
		"verbose": LevelWarn,
		"":        LevelWarn,
	}
	for in, want := range tests {
		assert.Equal(t, want, LevelFromString(in), "input %q", in)
	}
}

func TestStructuredLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.With("op", "save").Warn("shown", "id", "t1")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "op=save")
	assert.Contains(t, out, "id=t1")
}

func TestPrintf(t *testing.T) {
	var buf bytes.Buffer
	p := Printf{Logger: New(&buf, LevelDebug)}

	p.Debugf("dial %s", "example.com")
	p.Errorf("failed after %d ms", 20)

	assert.Contains(t, buf.String(), "dial example.com")
	assert.Contains(t, buf.String(), "failed after 20 ms")
}

func TestNullLogger(t *testing.T) {
	var l Logger = NewNullLogger()
	l.With("k", "v").Error("nothing happens")
}
