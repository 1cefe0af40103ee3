package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/fieldlearn/personas/internal/domain"
	"github.com/fieldlearn/personas/internal/engine"
)

// TaskQueue is the default task queue for report workflows and their
// activities.
const TaskQueue = "personas-report"

// ReportWorkflow turns one survey dataset into a complete report
// payload: classify every row, precompute the filter segments, build
// the persona cards, then assemble the payload in workflow code.
//
// The payload assembly step is pure and deterministic, so it runs
// inline rather than as a fourth activity.
func ReportWorkflow(ctx workflow.Context, req domain.ReportRequest) (*domain.Payload, error) {
	// Version gate enables safe evolution and backward compatibility.
	const currentVersion = 1
	_ = workflow.GetVersion(ctx, "report.v", workflow.DefaultVersion, currentVersion)

	// Validate request early to fail fast on invalid input.
	if err := req.Validate(); err != nil {
		return nil, temporal.NewNonRetryableApplicationError(
			"invalid report request",
			"Validation",
			err,
		)
	}

	logger := workflow.GetLogger(ctx)
	logger.Info("Starting report workflow",
		"rows", len(req.Dataset.Rows),
		"columns", len(req.Dataset.Columns))

	// Standard timeouts and retry policy for all activities. Activity
	// inputs are deterministic, so a retry re-runs the same pure
	// computation.
	ao := workflow.ActivityOptions{
		StartToCloseTimeout: 5 * time.Minute,
		HeartbeatTimeout:    30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    time.Minute,
			MaximumAttempts:    3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, ao)

	var classified domain.ClassifyRowsOutput
	err := workflow.ExecuteActivity(ctx, engine.ActivityClassifyRows, domain.ClassifyRowsInput{
		Dataset: req.Dataset,
	}).Get(ctx, &classified)
	if err != nil {
		return nil, err
	}

	var segments domain.BuildSegmentsOutput
	err = workflow.ExecuteActivity(ctx, engine.ActivityPrecomputeSegments, domain.BuildSegmentsInput{
		Respondents: classified.Respondents,
		Mapping:     classified.Mapping,
		Options:     req.Options,
		Clusters:    classified.Clusters,
		Divisions:   classified.Divisions,
		Roles:       classified.Roles,
	}).Get(ctx, &segments)
	if err != nil {
		return nil, err
	}

	var cards domain.BuildCardsOutput
	err = workflow.ExecuteActivity(ctx, engine.ActivityBuildPersonaCards, domain.BuildCardsInput{
		Respondents: classified.Respondents,
		Mapping:     classified.Mapping,
		Options:     req.Options,
		Roles:       classified.Roles,
	}).Get(ctx, &cards)
	if err != nil {
		return nil, err
	}

	payload := engine.AssemblePayload(engine.Classified{
		Mapping:     classified.Mapping,
		Respondents: classified.Respondents,
		Clusters:    classified.Clusters,
		Divisions:   classified.Divisions,
		Roles:       classified.Roles,
		Metros:      classified.Metros,
	}, segments.Segments, cards.Cards)

	logger.Info("Report workflow complete",
		"total_n", payload.TotalN,
		"segments", len(payload.Precomputed),
		"cards", len(payload.PersonaCards))
	return payload, nil
}
