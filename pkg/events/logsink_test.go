package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogSinkAppend(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	sink := NewLogSink(zap.New(core))

	env := Envelope{
		ID:             "evt-1",
		Type:           TypeRowsClassified,
		Source:         "worker.report",
		Version:        "1.0",
		Timestamp:      time.Now().UTC(),
		IdempotencyKey: "wf-1:act-1:" + TypeRowsClassified,
		WorkflowID:     "wf-1",
		RunID:          "run-1",
	}
	require.NoError(t, sink.Append(context.Background(), env))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "pipeline event", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "evt-1", fields["event_id"])
	assert.Equal(t, TypeRowsClassified, fields["event_type"])
	assert.Equal(t, "wf-1", fields["workflow_id"])
	assert.Equal(t, "run-1", fields["run_id"])
	assert.Equal(t, "wf-1:act-1:"+TypeRowsClassified, fields["idempotency_key"])
}
