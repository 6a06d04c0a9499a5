// Package session implements the task/log state machine owning all
// per-session state: the task list, the id counter and the journal.
package session

import (
	"fmt"
	"time"

	"github.com/tasktrace/tasktrace/internal/domain/journal"
	"github.com/tasktrace/tasktrace/internal/domain/task"
)

// Session is the sole owner and mutator of the task list, the next-id
// counter and the append-only journal for one session. Ids start at 1
// and are never reassigned; the journal only shrinks on Reset; every
// mutating operation appends exactly one journal entry before it
// returns. Session is not safe for concurrent use — the enclosing
// service serializes access.
type Session struct {
	tasks  []task.Task
	nextID int
	logs   []journal.Entry
	now    func() time.Time
}

// New returns an empty session: no tasks, no journal entries, next id 1.
func New() *Session {
	return NewWithClock(time.Now)
}

// NewWithClock returns an empty session that uses the given clock for
// task creation times and journal timestamps.
func NewWithClock(now func() time.Time) *Session {
	return &Session{nextID: 1, now: now}
}

// AddTask creates a task with the next free id, appends it to the task
// list and journals the addition. Descriptions are taken as-is; empty
// or whitespace-only text is accepted. AddTask never fails.
func (s *Session) AddTask(description string) task.Task {
	t := task.Task{
		ID:          s.nextID,
		Description: description,
		CreatedAt:   s.now(),
	}
	s.tasks = append(s.tasks, t)
	s.nextID++
	s.Log(fmt.Sprintf("Task added: %s", description))
	return t
}

// CompleteTask marks the first task with the given id as completed and
// reports whether a match was found. Completing an already completed
// task journals the done line again; the flag stays true. A miss is a
// normal outcome, journaled as "ID not found.", never an error.
func (s *Session) CompleteTask(id int) bool {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = true
			s.Log(fmt.Sprintf("Task %d done.", id))
			return true
		}
	}
	s.Log("ID not found.")
	return false
}

// Reset drops all tasks and journal entries, rewinds the id counter to
// 1 and journals the reset. The journal holds exactly one entry after
// a reset. This is the only operation that shrinks tasks or the journal.
func (s *Session) Reset() {
	s.tasks = nil
	s.logs = nil
	s.nextID = 1
	s.Log("System reset.")
}

// Log appends a journal entry with the given message, timestamped at
// call time, and returns it. Used directly for narration that is not
// attributed to add/complete/reset, such as the startup sequence.
func (s *Session) Log(message string) journal.Entry {
	e := journal.NewEntry(message, s.now())
	s.logs = append(s.logs, e)
	return e
}

// Tasks returns a copy of the task list in insertion order.
func (s *Session) Tasks() []task.Task {
	out := make([]task.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Logs returns a copy of the journal in emission order.
func (s *Session) Logs() []journal.Entry {
	out := make([]journal.Entry, len(s.logs))
	copy(out, s.logs)
	return out
}

// LastLog returns the most recently appended journal entry.
// ok is false only when the journal is empty.
func (s *Session) LastLog() (journal.Entry, bool) {
	if len(s.logs) == 0 {
		return journal.Entry{}, false
	}
	return s.logs[len(s.logs)-1], true
}

// NextID returns the id the next added task will receive.
func (s *Session) NextID() int {
	return s.nextID
}
