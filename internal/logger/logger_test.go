package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoop(t *testing.T) {
	var l Logger = Noop{}
	l.Debug("debug", "k", "v")
	l.Info("info")
	l.Warn("warn")
}

func TestSlog(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	l := NewSlog(slog.New(handler))

	l.Debug("loading", "table", "events")
	l.Info("loaded", "rows", 3)
	l.Warn("deprecated option")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "table=events")
	assert.Contains(t, out, "rows=3")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "deprecated option")
}

func TestSlogNilFallsBackToDefault(t *testing.T) {
	assert.NotNil(t, NewSlog(nil))
}
