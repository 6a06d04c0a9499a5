// Package task defines the Task domain entity.
package task

import "time"

// Task represents a single described unit of work in the session task list.
// The id is assigned once at creation and never reused within a session;
// Completed flips false to true exactly once and never back.
type Task struct {
	ID          int       `json:"id"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

// AddRequest holds the fields needed to add a new task.
// Description is accepted as-is, including empty or whitespace-only text.
type AddRequest struct {
	Description string `json:"description"`
}
