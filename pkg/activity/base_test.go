package activity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldlearn/personas/pkg/events"
)

// recordingSink captures appended envelopes and can fail a fixed number
// of times first.
type recordingSink struct {
	failures int
	appended []events.Envelope
}

func (s *recordingSink) Append(_ context.Context, e events.Envelope) error {
	if s.failures > 0 {
		s.failures--
		return errors.New("sink unavailable")
	}
	s.appended = append(s.appended, e)
	return nil
}

func TestGetWorkflowContextOutsideActivity(t *testing.T) {
	base := NewBaseActivities(events.NewNoOpEventSink())

	wfCtx := base.GetWorkflowContext(context.Background())

	assert.Equal(t, "test-workflow", wfCtx.WorkflowID)
	assert.Equal(t, "test-activity", wfCtx.ActivityID)
	assert.NotEmpty(t, wfCtx.RunID)
}

func TestEmitEventSafe(t *testing.T) {
	t.Run("delivers to sink", func(t *testing.T) {
		sink := &recordingSink{}
		base := NewBaseActivities(sink)

		base.EmitEventSafe(context.Background(), events.Envelope{Type: events.TypeRowsClassified}, "rows classified")

		require.Len(t, sink.appended, 1)
		assert.Equal(t, events.TypeRowsClassified, sink.appended[0].Type)
	})

	t.Run("retries one transient failure", func(t *testing.T) {
		sink := &recordingSink{failures: 1}
		base := NewBaseActivities(sink)

		base.EmitEventSafe(context.Background(), events.Envelope{Type: events.TypeSegmentsBuilt}, "segments built")

		assert.Len(t, sink.appended, 1)
	})

	t.Run("gives up after max attempts without failing", func(t *testing.T) {
		sink := &recordingSink{failures: 5}
		base := NewBaseActivities(sink)

		// Must not panic or return an error path; emission is best-effort.
		base.EmitEventSafe(context.Background(), events.Envelope{Type: events.TypeCardsBuilt}, "cards built")

		assert.Empty(t, sink.appended)
	})

	t.Run("nil sink is a no-op", func(t *testing.T) {
		base := NewBaseActivities(nil)
		base.EmitEventSafe(context.Background(), events.Envelope{}, "ignored")
	})
}

func TestSafeLoggingOutsideActivity(t *testing.T) {
	// None of these may panic in a plain context.
	SafeLog(context.Background(), "message", "k", "v")
	SafeLogError(context.Background(), "message", "k", "v")
	RecordHeartbeat(context.Background(), "progress")
}
