package ws

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/tasktrace/tasktrace/internal/domain/journal"
	"github.com/tasktrace/tasktrace/internal/domain/task"
)

// Event type constants for WebSocket messages.
const (
	EventJournalAppended = "journal.appended"
	EventTaskAdded       = "task.added"
	EventTaskCompleted   = "task.completed"
	EventSessionReset    = "session.reset"
)

// JournalAppendedEvent is broadcast for every journal entry the session
// appends. A viewer that only tails this event sees the full console
// trace in emission order.
type JournalAppendedEvent struct {
	Entry journal.Entry `json:"entry"`
}

// TaskAddedEvent is broadcast when a task is added to the session.
type TaskAddedEvent struct {
	Task task.Task `json:"task"`
}

// TaskCompletedEvent is broadcast when a complete call matches a task.
type TaskCompletedEvent struct {
	TaskID int `json:"task_id"`
}

// SessionResetEvent is broadcast when the session is reset. Viewers
// should discard any locally rendered tasks and log lines.
type SessionResetEvent struct{}

// BroadcastEvent is a convenience method that marshals a typed event and broadcasts it.
func (h *Hub) BroadcastEvent(ctx context.Context, eventType string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		slog.Error("marshal ws event payload", "type", eventType, "error", err)
		return
	}

	h.Broadcast(ctx, Message{
		Type:    eventType,
		Payload: json.RawMessage(data),
	})
}
