package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSetQuiet(t *testing.T) {
	var buf bytes.Buffer
	old := Logger
	Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level}))
	defer func() {
		Logger = old
		SetQuiet(false)
	}()

	SetQuiet(true)
	Info("should be suppressed")
	Warn("also suppressed")
	Error("kept", "key", "value")

	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Errorf("quiet mode leaked info/warn logs:\n%s", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("quiet mode dropped error logs:\n%s", out)
	}

	buf.Reset()
	SetQuiet(false)
	Info("visible again")
	if !strings.Contains(buf.String(), "visible again") {
		t.Errorf("info logs missing after re-enabling:\n%s", buf.String())
	}
}
