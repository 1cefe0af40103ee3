package events

import (
	"context"

	"go.uber.org/zap"
)

// LogSink writes every envelope to a structured logger. It is the
// default consumer for deployments without a dedicated event pipeline:
// the events land in the worker's log stream instead of vanishing into
// the no-op sink.
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink creates a sink that logs envelopes through logger.
func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Append logs the envelope. It never fails; logging is best-effort by
// construction.
func (s *LogSink) Append(_ context.Context, e Envelope) error {
	s.logger.Info("pipeline event",
		zap.String("event_id", e.ID),
		zap.String("event_type", e.Type),
		zap.String("source", e.Source),
		zap.String("workflow_id", e.WorkflowID),
		zap.String("run_id", e.RunID),
		zap.String("idempotency_key", e.IdempotencyKey),
	)
	return nil
}
