package service

import (
	"context"
	"testing"
	"time"

	"github.com/tasktrace/tasktrace/internal/adapter/ws"
)

// mockBroadcaster implements broadcast.Broadcaster for testing.
type mockBroadcaster struct {
	events []struct {
		eventType string
		payload   any
	}
}

func (b *mockBroadcaster) BroadcastEvent(_ context.Context, eventType string, payload any) {
	b.events = append(b.events, struct {
		eventType string
		payload   any
	}{eventType, payload})
}

func (b *mockBroadcaster) byType(eventType string) []any {
	var out []any
	for _, e := range b.events {
		if e.eventType == eventType {
			out = append(out, e.payload)
		}
	}
	return out
}

func TestSessionServiceAddTask(t *testing.T) {
	hub := &mockBroadcaster{}
	svc := NewSessionService(hub, nil)

	got := svc.AddTask(context.Background(), "Write release notes")
	if got.ID != 1 {
		t.Fatalf("expected id 1, got %d", got.ID)
	}
	if got.Completed {
		t.Fatal("new task must not be completed")
	}

	if n := len(hub.byType(ws.EventTaskAdded)); n != 1 {
		t.Fatalf("expected 1 task.added event, got %d", n)
	}
	if n := len(hub.byType(ws.EventJournalAppended)); n != 1 {
		t.Fatalf("expected 1 journal.appended event, got %d", n)
	}
}

func TestSessionServiceCompleteTask(t *testing.T) {
	hub := &mockBroadcaster{}
	svc := NewSessionService(hub, nil)
	svc.AddTask(context.Background(), "A")

	if !svc.CompleteTask(context.Background(), 1) {
		t.Fatal("expected match for id 1")
	}
	if !svc.Tasks()[0].Completed {
		t.Fatal("task should be completed")
	}
	if n := len(hub.byType(ws.EventTaskCompleted)); n != 1 {
		t.Fatalf("expected 1 task.completed event, got %d", n)
	}
}

func TestSessionServiceCompleteTaskMiss(t *testing.T) {
	hub := &mockBroadcaster{}
	svc := NewSessionService(hub, nil)

	if svc.CompleteTask(context.Background(), 7) {
		t.Fatal("expected no match")
	}

	// No task.completed event on a miss, but the journal line is broadcast.
	if n := len(hub.byType(ws.EventTaskCompleted)); n != 0 {
		t.Fatalf("expected 0 task.completed events, got %d", n)
	}
	entries := hub.byType(ws.EventJournalAppended)
	if len(entries) != 1 {
		t.Fatalf("expected 1 journal.appended event, got %d", len(entries))
	}
	ev, ok := entries[0].(ws.JournalAppendedEvent)
	if !ok {
		t.Fatalf("unexpected payload type %T", entries[0])
	}
	if ev.Entry.Message != "ID not found." {
		t.Fatalf("unexpected journal message: %q", ev.Entry.Message)
	}
}

func TestSessionServiceReset(t *testing.T) {
	hub := &mockBroadcaster{}
	svc := NewSessionService(hub, nil)
	svc.AddTask(context.Background(), "A")
	svc.AddTask(context.Background(), "B")

	svc.Reset(context.Background())

	snap := svc.Snapshot()
	if len(snap.Tasks) != 0 {
		t.Fatalf("expected 0 tasks, got %d", len(snap.Tasks))
	}
	if len(snap.Logs) != 1 || snap.Logs[0].Message != "System reset." {
		t.Fatalf("unexpected journal after reset: %+v", snap.Logs)
	}
	if n := len(hub.byType(ws.EventSessionReset)); n != 1 {
		t.Fatalf("expected 1 session.reset event, got %d", n)
	}

	// Ids restart after reset.
	if got := svc.AddTask(context.Background(), "C"); got.ID != 1 {
		t.Fatalf("expected id 1 after reset, got %d", got.ID)
	}
}

func TestSessionServiceSeed(t *testing.T) {
	hub := &mockBroadcaster{}
	svc := NewSessionService(hub, nil)

	svc.Seed(context.Background(), 0, []string{"Refactor Legacy Code", "Upload Multiple Files"})

	tasks := svc.Tasks()
	if len(tasks) != 2 {
		t.Fatalf("expected 2 seed tasks, got %d", len(tasks))
	}
	if tasks[0].Description != "Refactor Legacy Code" || tasks[1].Description != "Upload Multiple Files" {
		t.Fatalf("unexpected seed tasks: %+v", tasks)
	}

	logs := svc.Logs()
	if len(logs) != 3 {
		t.Fatalf("expected 3 journal entries, got %d", len(logs))
	}
	if logs[0].Message != InitMessage {
		t.Fatalf("expected init narration first, got %q", logs[0].Message)
	}
	if logs[1].Message != "Task added: Refactor Legacy Code" {
		t.Fatalf("unexpected second entry: %q", logs[1].Message)
	}
}

func TestSessionServiceSeedCancelled(t *testing.T) {
	hub := &mockBroadcaster{}
	svc := NewSessionService(hub, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc.Seed(ctx, time.Hour, []string{"never"})

	if len(svc.Tasks()) != 0 || len(svc.Logs()) != 0 {
		t.Fatal("cancelled seed must not mutate the session")
	}
}

func TestSessionServiceSnapshotConsistent(t *testing.T) {
	hub := &mockBroadcaster{}
	svc := NewSessionService(hub, nil)
	svc.AddTask(context.Background(), "A")
	svc.CompleteTask(context.Background(), 1)

	snap := svc.Snapshot()
	if len(snap.Tasks) != 1 || len(snap.Logs) != 2 {
		t.Fatalf("unexpected snapshot: %d tasks, %d logs", len(snap.Tasks), len(snap.Logs))
	}
}
