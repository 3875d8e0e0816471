package utils

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func withMode(t *testing.T, production bool, level int) *bytes.Buffer {
	t.Helper()

	prevProd, prevLevel := IsProduction, LogLevel
	prevOut, prevFlags := log.Writer(), log.Flags()

	IsProduction = production
	LogLevel = level
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	log.SetFlags(0)

	t.Cleanup(func() {
		IsProduction, LogLevel = prevProd, prevLevel
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})
	return buf
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]int{
		"debug":   LogLevelDebug,
		"WARN":    LogLevelWarn,
		"warning": LogLevelWarn,
		"ERROR":   LogLevelError,
		"":        LogLevelInfo,
		"verbose": LogLevelInfo,
	}
	for in, want := range tests {
		if got := ParseLogLevel(in); got != want {
			t.Errorf("ParseLogLevel(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestMaskString(t *testing.T) {
	withMode(t, false, LogLevelInfo)
	if got := MaskString("income 2000"); got != "income 2000" {
		t.Errorf("development mode should not mask, got %q", got)
	}

	withMode(t, true, LogLevelInfo)
	got := MaskString("income 2000.50 goal 300$ id 123e4567-e89b-12d3-a456-426614174000")
	if strings.Contains(got, "2000") || strings.Contains(got, "300") {
		t.Errorf("amounts leaked: %q", got)
	}
	if !strings.Contains(got, "123e4567...") {
		t.Errorf("expected shortened uuid, got %q", got)
	}
}

func TestMaskAmountAndID(t *testing.T) {
	withMode(t, false, LogLevelInfo)
	if got := MaskAmount(12.5); got != "12.50" {
		t.Errorf("expected 12.50, got %q", got)
	}
	if got := MaskID("abcdef123456"); got != "abcdef123456" {
		t.Errorf("expected id unchanged, got %q", got)
	}

	withMode(t, true, LogLevelInfo)
	if got := MaskAmount(12.5); got != "***" {
		t.Errorf("expected masked amount, got %q", got)
	}
	if got := MaskID("abcdef123456"); got != "abcdef12..." {
		t.Errorf("expected shortened id, got %q", got)
	}
	if got := MaskID("short"); got != "***" {
		t.Errorf("expected fully masked short id, got %q", got)
	}
}

func TestLevelFiltering(t *testing.T) {
	buf := withMode(t, false, LogLevelWarn)

	SafeDebug("debug line")
	SafeInfo("info line")
	SafeWarn("warn line")
	SafeError("error line")

	out := buf.String()
	if strings.Contains(out, "debug line") || strings.Contains(out, "info line") {
		t.Errorf("lines below WARN should be filtered: %q", out)
	}
	if !strings.Contains(out, "[WARN] warn line") || !strings.Contains(out, "[ERROR] error line") {
		t.Errorf("expected warn and error lines, got %q", out)
	}
}

func TestLogCalculation(t *testing.T) {
	buf := withMode(t, false, LogLevelDebug)
	LogCalculation("savings", "req-1", map[string]float64{"goal": 1200, "apy": 6})

	out := buf.String()
	if !strings.Contains(out, "[Calc] savings - Request: req-1 apy=6.00 goal=1200.00") {
		t.Errorf("unexpected calc log: %q", out)
	}

	buf = withMode(t, true, LogLevelDebug)
	LogCalculation("savings", "req-1", map[string]float64{"goal": 1200})
	if strings.Contains(buf.String(), "1200") {
		t.Errorf("amount leaked in production: %q", buf.String())
	}

	buf = withMode(t, false, LogLevelInfo)
	LogCalculation("savings", "req-1", map[string]float64{"goal": 1200})
	if buf.Len() != 0 {
		t.Errorf("calc log should only appear at debug level, got %q", buf.String())
	}
}
