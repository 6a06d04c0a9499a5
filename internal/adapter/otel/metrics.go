// Package otel provides OpenTelemetry instrumentation for TaskTrace.
package otel

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "tasktrace"

// Metrics holds all TaskTrace metric instruments.
type Metrics struct {
	TasksAdded     metric.Int64Counter
	TasksCompleted metric.Int64Counter
	CompleteMisses metric.Int64Counter
	SessionResets  metric.Int64Counter
	JournalEntries metric.Int64Counter
}

// NewMetrics creates all metric instruments.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)
	m := &Metrics{}
	var err error

	m.TasksAdded, err = meter.Int64Counter("tasktrace.tasks.added",
		metric.WithDescription("Number of tasks added"))
	if err != nil {
		return nil, err
	}

	m.TasksCompleted, err = meter.Int64Counter("tasktrace.tasks.completed",
		metric.WithDescription("Number of tasks marked complete"))
	if err != nil {
		return nil, err
	}

	m.CompleteMisses, err = meter.Int64Counter("tasktrace.tasks.complete_misses",
		metric.WithDescription("Number of complete calls that matched no task"))
	if err != nil {
		return nil, err
	}

	m.SessionResets, err = meter.Int64Counter("tasktrace.session.resets",
		metric.WithDescription("Number of session resets"))
	if err != nil {
		return nil, err
	}

	m.JournalEntries, err = meter.Int64Counter("tasktrace.journal.entries",
		metric.WithDescription("Number of journal entries appended"))
	if err != nil {
		return nil, err
	}

	return m, nil
}
