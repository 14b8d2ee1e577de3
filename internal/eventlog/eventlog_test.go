package eventlog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFile_AppendsOneLinePerEvent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.log")
	sink := NewFile(path)

	sink.Record(map[string]any{"type": "chat_completion", "attempt": 1})
	sink.Record(map[string]any{"type": "chat_error", "attempt": 2})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	var first map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("first line is not JSON: %v", err)
	}
	if first["type"] != "chat_completion" {
		t.Errorf("unexpected first record: %v", first)
	}
}

func TestFile_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "nested", "sessions.log")
	sink := NewFile(path)

	sink.Record(map[string]any{"type": "chat_completion"})

	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected log file to exist: %v", err)
	}
}

func TestFile_SwallowsWriteFailures(t *testing.T) {
	// Parent "directory" is a regular file, so every write must fail.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	sink := NewFile(filepath.Join(blocker, "sessions.log"))

	// Must not panic or return anything.
	sink.Record(map[string]any{"type": "chat_error"})
}

func TestFile_SkipsUnmarshalableEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.log")
	sink := NewFile(path)

	sink.Record(func() {}) // not JSON-marshalable

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected no file for unmarshalable event, got %v", err)
	}
}

func TestMemory_KeepsOrder(t *testing.T) {
	sink := &Memory{}

	sink.Record("a")
	sink.Record("b")

	if len(sink.Events) != 2 || sink.Events[0] != "a" || sink.Events[1] != "b" {
		t.Errorf("unexpected events: %v", sink.Events)
	}
}
