// Package service implements the use-case layer over the session core.
package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/tasktrace/tasktrace/internal/adapter/otel"
	"github.com/tasktrace/tasktrace/internal/adapter/ws"
	"github.com/tasktrace/tasktrace/internal/domain"
	"github.com/tasktrace/tasktrace/internal/domain/journal"
	"github.com/tasktrace/tasktrace/internal/domain/session"
	"github.com/tasktrace/tasktrace/internal/domain/task"
	"github.com/tasktrace/tasktrace/internal/port/broadcast"
)

// InitMessage is the narration line the startup sequence emits before
// seeding the initial task list.
const InitMessage = "Initializing TaskManager..."

// Snapshot is a consistent read of the session state for rendering.
type Snapshot struct {
	Tasks []task.Task     `json:"tasks"`
	Logs  []journal.Entry `json:"logs"`
}

// SessionService serializes all access to the session core and emits
// broadcasts and metrics around every mutation. The core itself is
// lock-free; this is the single caller the core's contract assumes.
type SessionService struct {
	mu      sync.Mutex
	core    *session.Session
	hub     broadcast.Broadcaster
	metrics *otel.Metrics
}

// NewSessionService creates a SessionService around a fresh session.
// metrics may be nil when telemetry is disabled.
func NewSessionService(hub broadcast.Broadcaster, metrics *otel.Metrics) *SessionService {
	return &SessionService{
		core:    session.New(),
		hub:     hub,
		metrics: metrics,
	}
}

// AddTask adds a task with the given description and returns it.
func (s *SessionService) AddTask(ctx context.Context, description string) task.Task {
	s.mu.Lock()
	t := s.core.AddTask(description)
	entry, _ := s.core.LastLog()
	s.mu.Unlock()

	s.hub.BroadcastEvent(ctx, ws.EventTaskAdded, ws.TaskAddedEvent{Task: t})
	s.broadcastEntry(ctx, entry)
	if s.metrics != nil {
		s.metrics.TasksAdded.Add(ctx, 1)
	}

	slog.Debug("task added", "task_id", t.ID)
	return t
}

// CompleteTask marks the task with the given id as completed and
// reports whether a match was found. A miss is a normal outcome; the
// journal entry is the authoritative record either way.
func (s *SessionService) CompleteTask(ctx context.Context, id int) bool {
	s.mu.Lock()
	found := s.core.CompleteTask(id)
	entry, _ := s.core.LastLog()
	s.mu.Unlock()

	if found {
		s.hub.BroadcastEvent(ctx, ws.EventTaskCompleted, ws.TaskCompletedEvent{TaskID: id})
	}
	s.broadcastEntry(ctx, entry)
	if s.metrics != nil {
		if found {
			s.metrics.TasksCompleted.Add(ctx, 1)
		} else {
			s.metrics.CompleteMisses.Add(ctx, 1)
		}
	}

	slog.Debug("task complete attempted", "task_id", id, "found", found)
	return found
}

// Reset reinitializes the session: no tasks, id counter back to 1, and
// a journal holding only the reset entry.
func (s *SessionService) Reset(ctx context.Context) {
	s.mu.Lock()
	s.core.Reset()
	entry, _ := s.core.LastLog()
	s.mu.Unlock()

	s.hub.BroadcastEvent(ctx, ws.EventSessionReset, ws.SessionResetEvent{})
	s.broadcastEntry(ctx, entry)
	if s.metrics != nil {
		s.metrics.SessionResets.Add(ctx, 1)
	}

	slog.Info("session reset")
}

// Log appends a narration entry that is not attributed to
// add/complete/reset and returns it.
func (s *SessionService) Log(ctx context.Context, message string) journal.Entry {
	s.mu.Lock()
	entry := s.core.Log(message)
	s.mu.Unlock()

	s.broadcastEntry(ctx, entry)
	return entry
}

// Task returns the task with the given id for rendering.
// Returns domain.ErrNotFound when no task has that id; unlike
// CompleteTask this is a pure read and appends nothing to the journal.
func (s *SessionService) Task(id int) (task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.core.Tasks() {
		if t.ID == id {
			return t, nil
		}
	}
	return task.Task{}, domain.ErrNotFound
}

// Tasks returns the current task list in insertion order.
func (s *SessionService) Tasks() []task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.Tasks()
}

// Logs returns the current journal in emission order.
func (s *SessionService) Logs() []journal.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.core.Logs()
}

// Snapshot returns tasks and journal from a single critical section,
// so the two sequences are mutually consistent.
func (s *SessionService) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Tasks: s.core.Tasks(),
		Logs:  s.core.Logs(),
	}
}

// Seed runs the startup collaborator sequence: after the given delay it
// emits the init narration and then adds the seed tasks in order.
// The wait honors ctx cancellation; a cancelled seed emits nothing.
func (s *SessionService) Seed(ctx context.Context, delay time.Duration, descriptions []string) {
	if delay > 0 {
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}

	s.Log(ctx, InitMessage)
	for _, d := range descriptions {
		s.AddTask(ctx, d)
	}

	slog.Info("session seeded", "tasks", len(descriptions))
}

func (s *SessionService) broadcastEntry(ctx context.Context, entry journal.Entry) {
	s.hub.BroadcastEvent(ctx, ws.EventJournalAppended, ws.JournalAppendedEvent{Entry: entry})
	if s.metrics != nil {
		s.metrics.JournalEntries.Add(ctx, 1)
	}
}
