package worker

import (
	"fmt"

	"go.temporal.io/sdk/client"
	sdkworker "go.temporal.io/sdk/worker"

	"github.com/fieldlearn/personas/internal/config"
	"github.com/fieldlearn/personas/pkg/events"
)

// Connect dials the Temporal server described by the configuration and
// returns the client. The caller owns the client and must Close it.
func Connect(cfg config.Temporal) (client.Client, error) {
	c, err := client.Dial(client.Options{
		HostPort:  cfg.HostPort,
		Namespace: cfg.Namespace,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to temporal at %s: %w", cfg.HostPort, err)
	}
	return c, nil
}

// NewWorker constructs a Temporal worker on the configured task queue
// with the report workflow and activities registered. Pipeline events
// flow to sink; a nil sink falls back to the no-op sink. Call Run on
// the result to start polling.
func NewWorker(c client.Client, cfg config.Temporal, sink events.EventSink) sdkworker.Worker {
	w := sdkworker.New(c, cfg.TaskQueue, sdkworker.Options{})
	RegisterAll(w, sink)
	return w
}
