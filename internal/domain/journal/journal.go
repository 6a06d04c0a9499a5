// Package journal defines the append-only session log entry.
package journal

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one immutable line in the session journal. The ID carries a
// uniqueness contract only; ordering comes from the owning session's
// journal sequence, not from the id.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

// NewEntry creates an Entry with a fresh unique id and the given
// message and timestamp.
func NewEntry(message string, at time.Time) Entry {
	return Entry{
		ID:        uuid.NewString(),
		Timestamp: at,
		Message:   message,
	}
}
