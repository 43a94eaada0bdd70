package queue

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFormatLine(t *testing.T) {
	line := FormatLine(RegistrationSubmittedEvent{
		SessionID:   "s-1",
		FullName:    "A",
		Email:       "a@x.com",
		EventName:   "Robo War",
		SubmittedAt: "2026-01-02T03:04:05Z",
	})
	for _, want := range []string{"[2026-01-02T03:04:05Z]", `event="Robo War"`, `name="A"`, "session=s-1"} {
		if !strings.Contains(line, want) {
			t.Errorf("line %q missing %q", line, want)
		}
	}
	if !strings.HasSuffix(line, "\n") {
		t.Errorf("line not newline terminated")
	}
}

func TestHandleMessageAppendsLines(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	c := &Consumer{LogDir: dir}

	for _, name := range []string{"A", "B"} {
		body, _ := json.Marshal(RegistrationSubmittedEvent{FullName: name, EventName: "Startup Pitch"})
		if err := c.HandleMessage(body); err != nil {
			t.Fatalf("handle: %v", err)
		}
	}
	data, err := os.ReadFile(filepath.Join(dir, auditFile))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
}

func TestHandleMessageRejectsGarbage(t *testing.T) {
	c := &Consumer{LogDir: t.TempDir()}
	if err := c.HandleMessage([]byte("not json")); err == nil {
		t.Fatal("expected error")
	}
}
