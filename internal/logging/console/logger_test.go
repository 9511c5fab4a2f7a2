package console

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-weave/internal/logging"
)

func fixedClock() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestConsoleLoggerFormatsSortedFields(t *testing.T) {
	var buf bytes.Buffer
	level := LevelDebug
	provider := NewProvider(Options{Writer: &buf, TimeFunc: fixedClock, MinLevel: &level})

	provider.GetLogger("test").Info("pipeline.run.completed", "b", 2, "a", "x")

	got := strings.TrimSuffix(buf.String(), "\n")
	want := "2025-06-01T12:00:00Z INFO pipeline.run.completed a=x b=2 logger=test"
	if got != want {
		t.Fatalf("line mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestConsoleLoggerRespectsMinLevel(t *testing.T) {
	var buf bytes.Buffer
	provider := NewProvider(Options{Writer: &buf, TimeFunc: fixedClock})

	logger := provider.GetLogger("test")
	logger.Debug("hidden")
	logger.Trace("hidden")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("suppressed levels leaked: %s", out)
	}
	if !strings.Contains(out, "WARN visible") {
		t.Fatalf("warn entry missing: %s", out)
	}
}

func TestConsoleLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer
	provider := NewProvider(Options{Writer: &buf, TimeFunc: fixedClock})

	child := logging.WithFields(provider.GetLogger("test"), map[string]any{"slug": "my-post"})
	child.Info("event")

	if !strings.Contains(buf.String(), "slug=my-post") {
		t.Fatalf("bound field missing: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "logger=test") {
		t.Fatalf("logger name field missing: %s", buf.String())
	}
}

func TestConsoleLoggerQuotesValues(t *testing.T) {
	var buf bytes.Buffer
	provider := NewProvider(Options{Writer: &buf, TimeFunc: fixedClock})

	provider.GetLogger("test").Info("event", "msg", "two words", "empty", "")

	out := buf.String()
	if !strings.Contains(out, `msg="two words"`) {
		t.Fatalf("expected quoted value: %s", out)
	}
	if !strings.Contains(out, `empty=""`) {
		t.Fatalf("expected quoted empty value: %s", out)
	}
}
