package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/temporal"

	"github.com/fieldlearn/personas/internal/domain"
	"github.com/fieldlearn/personas/pkg/activity"
	"github.com/fieldlearn/personas/pkg/events"
)

// Activity registration names, used by the workflow to schedule work.
// Temporal registers activities under the method name.
const (
	ActivityClassifyRows       = "ClassifyRows"
	ActivityPrecomputeSegments = "PrecomputeSegments"
	ActivityBuildPersonaCards  = "BuildPersonaCards"
)

// Activities exposes the report pipeline steps as Temporal activities.
// Each activity validates its input, runs the corresponding pure engine
// function, validates its output, and emits a progress event.
type Activities struct {
	activity.BaseActivities
}

// NewActivities creates report activities with the provided shared
// infrastructure.
func NewActivities(base activity.BaseActivities) *Activities {
	return &Activities{BaseActivities: base}
}

// ClassifyRows resolves columns and classifies every dataset row.
func (a *Activities) ClassifyRows(ctx context.Context, input domain.ClassifyRowsInput) (*domain.ClassifyRowsOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, nonRetryable("ClassifyRows", err, "invalid input")
	}

	activity.SafeLog(ctx, "Starting ClassifyRows activity",
		"rows", len(input.Dataset.Rows),
		"columns", len(input.Dataset.Columns))

	c := ClassifyRows(input.Dataset)
	output := &domain.ClassifyRowsOutput{
		Mapping:     c.Mapping,
		Respondents: c.Respondents,
		Clusters:    c.Clusters,
		Divisions:   c.Divisions,
		Roles:       c.Roles,
		Metros:      c.Metros,
	}
	if err := output.Validate(); err != nil {
		return nil, nonRetryable("ClassifyRows", err, "invalid output")
	}

	a.emit(ctx, events.TypeRowsClassified, map[string]any{
		"rows":     len(output.Respondents),
		"detected": len(output.Mapping),
	})
	return output, nil
}

// PrecomputeSegments builds the segment map for every meaningful filter
// combination, heartbeating between combinations so long datasets keep
// the activity alive.
func (a *Activities) PrecomputeSegments(ctx context.Context, input domain.BuildSegmentsInput) (*domain.BuildSegmentsOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, nonRetryable("PrecomputeSegments", err, "invalid input")
	}

	activity.SafeLog(ctx, "Starting PrecomputeSegments activity",
		"rows", len(input.Respondents),
		"clusters", len(input.Clusters),
		"roles", len(input.Roles))
	a.RecordHeartbeat(ctx, "segments")

	segments := PrecomputeSegments(Classified{
		Mapping:     input.Mapping,
		Respondents: input.Respondents,
		Clusters:    input.Clusters,
		Divisions:   input.Divisions,
		Roles:       input.Roles,
	}, input.Options)

	output := &domain.BuildSegmentsOutput{Segments: segments}
	if err := output.Validate(); err != nil {
		return nil, nonRetryable("PrecomputeSegments", err, "invalid output")
	}

	a.emit(ctx, events.TypeSegmentsBuilt, map[string]any{"segments": len(segments)})
	return output, nil
}

// BuildPersonaCards builds one card per populated (role, archetype) pair.
func (a *Activities) BuildPersonaCards(ctx context.Context, input domain.BuildCardsInput) (*domain.BuildCardsOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, nonRetryable("BuildPersonaCards", err, "invalid input")
	}

	activity.SafeLog(ctx, "Starting BuildPersonaCards activity",
		"rows", len(input.Respondents),
		"roles", len(input.Roles))

	cards := BuildAllCards(Classified{
		Mapping:     input.Mapping,
		Respondents: input.Respondents,
		Roles:       input.Roles,
	}, input.Options)

	output := &domain.BuildCardsOutput{Cards: cards}
	if err := output.Validate(); err != nil {
		return nil, nonRetryable("BuildPersonaCards", err, "invalid output")
	}

	a.emit(ctx, events.TypeCardsBuilt, map[string]any{"cards": len(cards)})
	return output, nil
}

// emit wraps one pipeline event in an envelope and hands it to the sink,
// best-effort.
func (a *Activities) emit(ctx context.Context, eventType string, payload map[string]any) {
	wfCtx := a.GetWorkflowContext(ctx)

	raw, err := json.Marshal(payload)
	if err != nil {
		activity.SafeLogError(ctx, "Failed to marshal event payload",
			"event_type", eventType, "error", err)
		return
	}

	a.EmitEventSafe(ctx, events.Envelope{
		ID:             uuid.New().String(),
		Type:           eventType,
		Source:         "report-activity",
		Version:        "1.0.0",
		Timestamp:      time.Now(),
		IdempotencyKey: fmt.Sprintf("%s:%s:%s", wfCtx.WorkflowID, wfCtx.ActivityID, eventType),
		WorkflowID:     wfCtx.WorkflowID,
		RunID:          wfCtx.RunID,
		Payload:        raw,
	}, eventType)
}

// Error helpers, wrapping failures as Temporal application errors.

func nonRetryable(tag string, cause error, msg string) error {
	return temporal.NewNonRetryableApplicationError(msg, tag, cause)
}
