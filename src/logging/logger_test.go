package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	saved := GetLevel()
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLevel(saved.String())
	})
	return &buf
}

func TestInfof_NoDoubleFormattingWithPercent(t *testing.T) {
	buf := capture(t)
	SetLevel("info")

	msg := "[Stats] top-10 gk_save_pct rendered (100.0% of 32 teams) mean=71.3%"
	Infof("%s", msg)

	out := buf.String()
	if !strings.Contains(out, "(100.0% of 32 teams)") {
		t.Fatalf("log output missing expected percent segment: %s", out)
	}
	if strings.Contains(out, "%!o(MISSING)") || strings.Contains(out, "%!(NOVERB)") {
		t.Fatalf("log output still shows fmt artifact: %s", out)
	}
}

func TestInfof_NoArgsPrintedVerbatim(t *testing.T) {
	buf := capture(t)
	SetLevel("info")

	Infof("reloaded Data/team_data.csv")

	if out := buf.String(); !strings.Contains(out, "[INFO] reloaded Data/team_data.csv\n") {
		t.Fatalf("unexpected log line: %q", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	buf := capture(t)
	SetLevel("warn")

	Debugf("debug %d", 1)
	Infof("info %d", 2)
	Warnf("warn %d", 3)
	Errorf("error %d", 4)

	out := buf.String()
	if strings.Contains(out, "debug 1") || strings.Contains(out, "info 2") {
		t.Fatalf("lines below warn were not filtered: %s", out)
	}
	if !strings.Contains(out, "[WARN] warn 3") || !strings.Contains(out, "[ERROR] error 4") {
		t.Fatalf("expected warn and error lines: %s", out)
	}
}

func TestSetLevel_UnknownKeepsCurrent(t *testing.T) {
	capture(t)
	SetLevel("debug")
	SetLevel("verbose")
	if GetLevel() != LevelDebug {
		t.Fatalf("unknown level changed current level to %s", GetLevel())
	}
	if l, ok := ParseLevel(" Warning "); !ok || l != LevelWarn {
		t.Fatalf("ParseLevel(Warning) = %v, %v", l, ok)
	}
}
