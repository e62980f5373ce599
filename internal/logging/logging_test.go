package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input  string
		want   Level
		wantOK bool
	}{
		{"debug", LevelDebug, true},
		{"DEBUG", LevelDebug, true},
		{"info", LevelInfo, true},
		{"warn", LevelWarn, true},
		{"Warning", LevelWarn, true},
		{" error ", LevelError, true},
		{"unknown", LevelInfo, false},
		{"", LevelInfo, false},
	}

	for _, tt := range tests {
		got, ok := ParseLevel(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestLoggerFormatsAndFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelInfo, Sinks: []Sink{{Writer: &buf}}})

	l.Debug("hidden %d", 1)
	l.Info("lesson %d started", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug record should be filtered: %q", out)
	}
	if !strings.Contains(out, `msg="lesson 3 started"`) {
		t.Errorf("expected formatted message, got %q", out)
	}
	if !strings.Contains(out, "level=INFO") {
		t.Errorf("expected level attribute, got %q", out)
	}
}

func TestLoggerPercentWithoutArgs(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Sinks: []Sink{{Writer: &buf}}})

	l.Info("100% done")
	if !strings.Contains(buf.String(), "100% done") {
		t.Errorf("message without args should be left alone, got %q", buf.String())
	}
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Sinks: []Sink{{Writer: &buf, JSON: true}}})

	l.WithComponent("session").
		WithFields(map[string]any{"lesson": 2}).
		WithField("task", 1).
		Warn("wrong position")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected one JSON record, got %q: %v", buf.String(), err)
	}

	if rec["msg"] != "wrong position" || rec["level"] != "WARN" {
		t.Errorf("unexpected record %v", rec)
	}
	if rec["component"] != "session" || rec["lesson"] != float64(2) || rec["task"] != float64(1) {
		t.Errorf("fields missing from record %v", rec)
	}
}

func TestLoggerFanout(t *testing.T) {
	var all, warnings bytes.Buffer
	l := New(Config{
		Level: LevelDebug,
		Sinks: []Sink{
			{Writer: &all},
			{Writer: &warnings, MinLevel: LevelWarn},
		},
	})

	l.Debug("step")
	l.Error("boom")

	if !strings.Contains(all.String(), "step") || !strings.Contains(all.String(), "boom") {
		t.Errorf("first sink should receive everything, got %q", all.String())
	}
	if strings.Contains(warnings.String(), "step") {
		t.Errorf("second sink should drop debug records, got %q", warnings.String())
	}
	if !strings.Contains(warnings.String(), "boom") {
		t.Errorf("second sink should receive errors, got %q", warnings.String())
	}
}

func TestSetLevelAffectsDerivedLoggers(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelError, Sinks: []Sink{{Writer: &buf}}})
	child := l.WithComponent("ui")

	child.Info("before")
	l.SetLevel(LevelInfo)
	child.Info("after")

	if strings.Contains(buf.String(), "before") {
		t.Errorf("record below level was written: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "after") {
		t.Errorf("derived logger should see new level: %q", buf.String())
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Error("nothing happens %s", "here")
	l.WithField("k", "v").Info("still nothing")
}
