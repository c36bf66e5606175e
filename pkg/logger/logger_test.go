package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestPrettyHandler(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewPrettyHandler(&buf, slog.LevelInfo))

	l.Debug("hidden")
	l.Warn("route failed", slog.String("kind", "avoid"))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record written at info level: %q", out)
	}
	if !strings.Contains(out, "level=WRN") || !strings.Contains(out, "kind=avoid") {
		t.Fatalf("unexpected output: %q", out)
	}
}
