package logging

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedClock() time.Time {
	return time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
}

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelDebug, Output: &buf, Prefix: "test", Clock: fixedClock})

	l.WithComponent("split").WithField("id", 7).Info("decided %s", "eligible")

	assert.Equal(t, "2024-05-01T10:30:00.000 [INFO] test: decided eligible {component=split, id=7}\n", buf.String())
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelWarn, Output: &buf, Clock: fixedClock})

	l.Debug("d")
	l.Info("i")
	assert.Empty(t, buf.String())

	l.Warn("w")
	l.Error("e")
	assert.Contains(t, buf.String(), "[WARN] w")
	assert.Contains(t, buf.String(), "[ERROR] e")

	child := l.WithField("k", "v")
	child.SetLevel(LevelDebug)
	assert.Equal(t, LevelDebug, l.Level(), "derived loggers share the level")
	assert.True(t, l.Enabled(LevelDebug))
}

func TestLoggerFieldsAreCopied(t *testing.T) {
	var buf bytes.Buffer
	base := New(Config{Output: &buf, Clock: fixedClock}).WithField("a", 1)
	_ = base.WithField("b", 2)

	base.Info("x")
	assert.Contains(t, buf.String(), "{a=1}")
	assert.NotContains(t, buf.String(), "b=2")
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Error("nothing")
	assert.False(t, l.Enabled(LevelError))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"debug", LevelDebug, true},
		{"INFO", LevelInfo, true},
		{"warning", LevelWarn, true},
		{" error ", LevelError, true},
		{"verbose", LevelInfo, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
	assert.Equal(t, "UNKNOWN", Level(9).String())
}
