// Package worker exposes helpers to register workflows/activities with a Temporal worker.
package worker

import (
	sdkworker "go.temporal.io/sdk/worker"

	"github.com/fieldlearn/personas/internal/engine"
	"github.com/fieldlearn/personas/internal/workflow"
	"github.com/fieldlearn/personas/pkg/activity"
	"github.com/fieldlearn/personas/pkg/events"
)

// RegisterAll registers the report workflow and its activities with the
// Temporal worker. The registration is not thread-safe and should only
// be called once during worker startup.
func RegisterAll(w sdkworker.Worker, sink events.EventSink) {
	if sink == nil {
		sink = events.NewNoOpEventSink()
	}

	base := activity.NewBaseActivities(sink)
	reportActivities := engine.NewActivities(base)

	w.RegisterWorkflow(workflow.ReportWorkflow)

	w.RegisterActivity(reportActivities.ClassifyRows)
	w.RegisterActivity(reportActivities.PrecomputeSegments)
	w.RegisterActivity(reportActivities.BuildPersonaCards)
}
