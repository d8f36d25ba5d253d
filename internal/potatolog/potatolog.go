// Package potatolog provides an in-memory sink for the zerolog JSON output,
// so that the log can be shown inside the TUI.
package potatolog

import (
	"encoding/json"
	"fmt"
	"sync"
)

// LogEntry is a single log entry, as decoded from zerolog's JSON output.
type LogEntry = map[string]any

// DefaultLimit is the number of entries the global sink retains.
const DefaultLimit = 1000

// GlobalMemoryLogReaderWriter is the process-wide in-memory log sink.
var GlobalMemoryLogReaderWriter = NewMemoryLogReaderWriter(DefaultLimit)

// MemoryLogReaderWriter is an in-memory log sink that retains the most recent
// entries, up to its limit.
type MemoryLogReaderWriter struct {
	mtx   sync.Mutex
	log   []LogEntry
	limit int
}

// NewMemoryLogReaderWriter returns a sink retaining at most limit entries (or
// all of them, for a non-positive limit).
func NewMemoryLogReaderWriter(limit int) *MemoryLogReaderWriter {
	return &MemoryLogReaderWriter{limit: limit}
}

// Write decodes a log entry and appends it.
func (w *MemoryLogReaderWriter) Write(p []byte) (int, error) {
	entry := LogEntry{}
	err := json.Unmarshal(p, &entry)
	if err != nil {
		return 0, fmt.Errorf("could not unmarshal log entry (err:%s) (input:'%s')", err.Error(), string(p))
	}

	w.mtx.Lock()
	defer w.mtx.Unlock()
	w.log = append(w.log, entry)
	if w.limit > 0 && len(w.log) > w.limit {
		w.log = w.log[len(w.log)-w.limit:]
	}
	return len(p), nil
}

// Get returns a snapshot of the retained entries, oldest first.
func (w *MemoryLogReaderWriter) Get() []LogEntry {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	result := make([]LogEntry, len(w.log))
	copy(result, w.log)
	return result
}

// Last returns the most recent entry of at least the given level, if any.
func (w *MemoryLogReaderWriter) Last(levels ...string) (LogEntry, bool) {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	for i := len(w.log) - 1; i >= 0; i-- {
		if len(levels) == 0 {
			return w.log[i], true
		}
		for _, l := range levels {
			if w.log[i]["level"] == l {
				return w.log[i], true
			}
		}
	}
	return nil, false
}

// Clear drops all entries.
func (w *MemoryLogReaderWriter) Clear() {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	w.log = nil
}

// LogReader allows reading access to a log.
type LogReader interface {
	Get() []LogEntry
}

// String returns the value of the given field of the entry as a string.
func String(entry LogEntry, field string) string {
	v, ok := entry[field]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
