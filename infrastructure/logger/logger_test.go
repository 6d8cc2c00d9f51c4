package logger

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

type closableBuffer struct {
	sync.Mutex
	bytes.Buffer
	closed bool
}

func (b *closableBuffer) Write(p []byte) (int, error) {
	b.Lock()
	defer b.Unlock()
	return b.Buffer.Write(p)
}

func (b *closableBuffer) Close() error {
	b.Lock()
	defer b.Unlock()
	b.closed = true
	return nil
}

func TestBackendFiltersByLevel(t *testing.T) {
	backend := NewBackendWithFlags(0)
	infoWriter := &closableBuffer{}
	warnWriter := &closableBuffer{}
	if err := backend.AddLogWriter(infoWriter, LevelInfo); err != nil {
		t.Fatalf("AddLogWriter: %s", err)
	}
	if err := backend.AddLogWriter(warnWriter, LevelWarn); err != nil {
		t.Fatalf("AddLogWriter: %s", err)
	}
	if err := backend.Run(); err != nil {
		t.Fatalf("Run: %s", err)
	}
	if err := backend.AddLogWriter(&closableBuffer{}, LevelInfo); err == nil {
		t.Fatalf("AddLogWriter: expected an error once the backend runs")
	}

	log := backend.Logger("TEST")
	log.SetLevel(LevelDebug)
	log.Tracef("not written at all")
	log.Debugf("debug %d", 1)
	log.Infof("info %d", 2)
	log.Warnf("warn %d", 3)
	backend.Close()

	if !infoWriter.closed || !warnWriter.closed {
		t.Fatalf("Close didn't close the writers")
	}

	infoOutput := infoWriter.String()
	if strings.Contains(infoOutput, "debug 1") || strings.Contains(infoOutput, "not written") {
		t.Errorf("info writer got messages below its level: %q", infoOutput)
	}
	if !strings.Contains(infoOutput, "[INF] TEST: info 2\n") || !strings.Contains(infoOutput, "[WRN] TEST: warn 3\n") {
		t.Errorf("info writer is missing messages: %q", infoOutput)
	}

	warnOutput := warnWriter.String()
	if strings.Contains(warnOutput, "info 2") || !strings.Contains(warnOutput, "warn 3") {
		t.Errorf("warn writer got unexpected output: %q", warnOutput)
	}
}

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		in       string
		expected Level
		ok       bool
	}{
		{"trace", LevelTrace, true},
		{"DBG", LevelDebug, true},
		{"warn", LevelWarn, true},
		{"off", LevelOff, true},
		{"loud", LevelInfo, false},
	}
	for _, test := range tests {
		level, ok := LevelFromString(test.in)
		if level != test.expected || ok != test.ok {
			t.Errorf("LevelFromString(%q): got (%s, %t), want (%s, %t)", test.in, level, ok,
				test.expected, test.ok)
		}
	}
}

func TestParseAndSetLogLevels(t *testing.T) {
	first := RegisterSubSystem("TST1")
	second := RegisterSubSystem("TST2")
	if RegisterSubSystem("TST1") != first {
		t.Fatalf("RegisterSubSystem returned a different logger for the same subsystem")
	}

	if err := ParseAndSetLogLevels("debug"); err != nil {
		t.Fatalf("ParseAndSetLogLevels: %s", err)
	}
	if first.Level() != LevelDebug || second.Level() != LevelDebug {
		t.Fatalf("expected every subsystem at debug, got %s and %s", first.Level(), second.Level())
	}

	if err := ParseAndSetLogLevels("TST1=warn,TST2=trace"); err != nil {
		t.Fatalf("ParseAndSetLogLevels: %s", err)
	}
	if first.Level() != LevelWarn || second.Level() != LevelTrace {
		t.Fatalf("expected warn and trace, got %s and %s", first.Level(), second.Level())
	}

	for _, invalid := range []string{"loud", "TST1=loud", "NOPE=info", "TST1=info,TST2"} {
		if err := ParseAndSetLogLevels(invalid); err == nil {
			t.Errorf("ParseAndSetLogLevels(%q): expected an error", invalid)
		}
	}

	found := 0
	for _, subsystem := range SupportedSubsystems() {
		if subsystem == "TST1" || subsystem == "TST2" {
			found++
		}
	}
	if found != 2 {
		t.Fatalf("SupportedSubsystems is missing registered subsystems: %v", SupportedSubsystems())
	}
}

func TestBackendClose(t *testing.T) {
	notRunning := NewBackendWithFlags(0)
	writer := &closableBuffer{}
	if err := notRunning.AddLogWriter(writer, LevelTrace); err != nil {
		t.Fatalf("AddLogWriter: %s", err)
	}
	notRunning.Logger("TEST").Infof("dropped")
	notRunning.Close()
	notRunning.Close()
	if !writer.closed || writer.Len() != 0 {
		t.Fatalf("TestBackendClose: a backend that never ran should only close its writers")
	}

	running := NewBackendWithFlags(LogFlagShortFile)
	writer = &closableBuffer{}
	if err := running.AddLogWriter(writer, LevelTrace); err != nil {
		t.Fatalf("AddLogWriter: %s", err)
	}
	if err := running.Run(); err != nil {
		t.Fatalf("Run: %s", err)
	}
	if err := running.Run(); err == nil {
		t.Fatalf("TestBackendClose: Run succeeded twice")
	}
	log := running.Logger("TEST")
	for i := 0; i < 3*logsBuffer; i++ {
		log.Infof("entry %d", i)
	}
	running.Close()
	running.Close()
	if running.IsRunning() {
		t.Fatalf("TestBackendClose: backend still running after Close")
	}

	output := writer.String()
	if strings.Count(output, "\n") != 3*logsBuffer {
		t.Fatalf("TestBackendClose: expected %d entries to be flushed, got %d", 3*logsBuffer,
			strings.Count(output, "\n"))
	}
	if !strings.Contains(output, "logger_test.go") {
		t.Fatalf("TestBackendClose: short file flag didn't add the callsite: %q", output[:80])
	}
}
