// Package eventlog appends structured session events to an external sink,
// one JSON object per line. Sinks are fire-and-forget: a record that cannot
// be written is dropped, never surfaced to the caller, so logging can never
// abort a generation round.
package eventlog

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Sink receives structured events. Implementations must not fail the caller.
type Sink interface {
	Record(event any)
}

// File is an append-only JSONL sink backed by a single file. The parent
// directory is created on demand.
type File struct {
	path string
}

// NewFile creates a file sink for the given path. The file itself is opened
// lazily on each record so a bad path degrades to silent no-ops.
func NewFile(path string) *File {
	return &File{path: path}
}

// Record marshals the event and appends it as one line. All I/O errors are
// discarded.
func (f *File) Record(event any) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return
		}
	}
	handle, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer handle.Close()
	_, _ = handle.Write(append(data, '\n'))
}

// Nop discards every event.
type Nop struct{}

// Record implements Sink.
func (Nop) Record(any) {}

// Memory keeps events in arrival order. Intended for tests and diagnostics.
type Memory struct {
	Events []any
}

// Record implements Sink.
func (m *Memory) Record(event any) {
	m.Events = append(m.Events, event)
}
