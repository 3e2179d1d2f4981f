package Importer

import (
	"fmt"
	"sync"
	"time"
)

// LogEntry is one timestamped line of an import run.
type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

// ImportLog is the append-only run log shown to the operator while an
// import is in progress. Safe for concurrent reads while the commit loop
// appends.
type ImportLog struct {
	mu      sync.Mutex
	entries []LogEntry
}

func NewImportLog() *ImportLog {
	return &ImportLog{}
}

// Logf appends a formatted line.
func (l *ImportLog) Logf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, LogEntry{
		Timestamp: time.Now(),
		Message:   fmt.Sprintf(format, args...),
	})
}

// Snapshot returns a copy of the entries appended so far.
func (l *ImportLog) Snapshot() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries.
func (l *ImportLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Stats holds per-category row counts for one import run.
type Stats struct {
	Leidos     int `json:"leidos"`
	Validos    int `json:"validos"`
	Importados int `json:"importados"`
	Omitidos   int `json:"omitidos"`
	Fallidos   int `json:"fallidos"`
}
