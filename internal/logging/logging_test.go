package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-kit/log/level"
)

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := Component(New(&buf, "warn"), "test")

	level.Info(logger).Log("msg", "hidden")
	level.Warn(logger).Log("msg", "shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line leaked through warn filter: %s", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "component=test") {
		t.Errorf("warn line missing fields: %s", out)
	}
}

func TestNew_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "chatty")

	level.Debug(logger).Log("msg", "debug")
	level.Info(logger).Log("msg", "info")

	out := buf.String()
	if strings.Contains(out, "msg=debug") {
		t.Errorf("debug line should be filtered: %s", out)
	}
	if !strings.Contains(out, "msg=info") {
		t.Errorf("info line missing: %s", out)
	}
}

func TestComponent_NilLogger(t *testing.T) {
	if err := Component(nil, "x").Log("msg", "ok"); err != nil {
		t.Fatalf("nop logger returned error: %v", err)
	}
}
