package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestInfoIsShownByDefault(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)

	log.Debug("hidden", nil)
	log.Info("multiple pods found", map[string]interface{}{KeyFragment: "sophon", KeyCandidates: 15})

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug record written without verbose:\n%s", out)
	}
	for _, want := range []string{"level=INFO", "multiple pods found", "candidates=15", "fragment=sophon"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "time=") {
		t.Errorf("time attribute should be dropped:\n%s", out)
	}
}

func TestVerboseShowsDebug(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, true).Debug("built command", map[string]interface{}{KeyCommand: "kubectl logs p"})
	if !strings.Contains(buf.String(), "level=DEBUG") {
		t.Errorf("expected debug record:\n%s", buf.String())
	}
}

func TestErrorIncludesCause(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Error("command failed", errors.New("exit status 1"), map[string]interface{}{KeyPod: "p"})
	out := buf.String()
	if !strings.Contains(out, "level=ERROR") || !strings.Contains(out, `error="exit status 1"`) || !strings.Contains(out, "pod=p") {
		t.Errorf("unexpected error record:\n%s", out)
	}
}
