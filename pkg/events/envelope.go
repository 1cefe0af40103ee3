// Package events provides the event infrastructure for report pipeline
// observability. It defines the Envelope type that wraps pipeline events
// with consistent metadata and the EventSink interface downstream
// consumers implement.
package events

import (
	"context"
	"encoding/json"
	"time"
)

// Event types emitted by the report pipeline.
const (
	TypeRowsClassified = "report.rows_classified"
	TypeSegmentsBuilt  = "report.segments_built"
	TypeCardsBuilt     = "report.cards_built"
)

// Envelope wraps pipeline events with consistent metadata so consumers
// can route, deduplicate, and correlate them without knowing each
// payload schema.
type Envelope struct {
	// ID uniquely identifies this event instance.
	ID string `json:"id"`

	// Type identifies the event for routing, one of the Type constants.
	Type string `json:"type"`

	// Source identifies the component that emitted this event.
	Source string `json:"source"`

	// Version enables payload schema evolution, semantic versioning.
	Version string `json:"version"`

	// Timestamp records when the event was emitted.
	Timestamp time.Time `json:"timestamp"`

	// IdempotencyKey lets consumers drop duplicates produced by
	// activity retries. Generated deterministically from the workflow
	// context and event content.
	IdempotencyKey string `json:"idempotency_key"`

	// WorkflowID and RunID correlate the event with the report
	// workflow execution that produced it.
	WorkflowID string `json:"workflow_id"`
	RunID      string `json:"run_id"`

	// Payload carries the event-specific data as JSON.
	Payload json.RawMessage `json:"payload"`
}

// EventSink receives pipeline events with best-effort delivery.
// Implementations must treat duplicate envelopes (same IdempotencyKey)
// as no-ops and return quickly; event loss must never fail the pipeline.
type EventSink interface {
	Append(ctx context.Context, envelope Envelope) error
}

// NoOpEventSink discards every event. Used in tests and when event
// emission is disabled.
type NoOpEventSink struct{}

// Append implements EventSink with no-op behavior.
func (*NoOpEventSink) Append(context.Context, Envelope) error { return nil }

// NewNoOpEventSink creates a sink that discards all events.
func NewNoOpEventSink() EventSink { return &NoOpEventSink{} }
