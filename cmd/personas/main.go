// Command personas turns learner survey exports into report payloads.
//
// The generate subcommand runs the whole pipeline in-process; worker and
// submit run it through Temporal for deployments that want durable,
// retryable report generation.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.temporal.io/sdk/client"
	sdkworker "go.temporal.io/sdk/worker"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/fieldlearn/personas/internal/config"
	"github.com/fieldlearn/personas/internal/domain"
	"github.com/fieldlearn/personas/internal/engine"
	"github.com/fieldlearn/personas/internal/ingest"
	"github.com/fieldlearn/personas/internal/worker"
	"github.com/fieldlearn/personas/internal/workflow"
	"github.com/fieldlearn/personas/pkg/events"
)

var (
	// Global flags
	configPath string
	verbose    bool

	// generate/submit flags
	inputPath  string
	outputPath string

	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "personas",
	Short: "Learner persona report generator",
	Long: `personas classifies survey respondents into learner archetypes,
precomputes response distributions for every filter combination, and
emits a self-contained report payload as JSON.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// generateCmd runs the pipeline in-process, no Temporal required.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a report payload from a survey export",
	Long: `Reads a delimited survey export, runs classification, segmentation,
and card building locally, and writes the payload JSON to the output
file (or stdout).`,
	RunE: runGenerate,
}

// workerCmd polls the task queue for report workflows.
var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Run a Temporal worker for report workflows",
	RunE:  runWorker,
}

// submitCmd starts a report workflow on the Temporal server and waits
// for the payload.
var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a survey export as a Temporal report workflow",
	RunE:  runSubmit,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	for _, cmd := range []*cobra.Command{generateCmd, submitCmd} {
		cmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to the survey export (CSV)")
		cmd.Flags().StringVarP(&outputPath, "output", "o", "", "path for the payload JSON (default stdout)")
		_ = cmd.MarkFlagRequired("input")
	}

	rootCmd.AddCommand(generateCmd, workerCmd, submitCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	ds, err := readDataset(cfg)
	if err != nil {
		return err
	}
	logger.Info("Dataset loaded",
		zap.String("input", inputPath),
		zap.Int("rows", len(ds.Rows)),
		zap.Int("columns", len(ds.Columns)))

	payload, err := engine.Process(ds, cfg.Engine)
	if err != nil {
		return fmt.Errorf("report generation failed: %w", err)
	}
	logger.Info("Report generated",
		zap.Int("total_n", payload.TotalN),
		zap.Int("segments", len(payload.Precomputed)),
		zap.Int("cards", len(payload.PersonaCards)))

	return writePayload(payload)
}

func runWorker(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	c, err := worker.Connect(cfg.Temporal)
	if err != nil {
		return err
	}
	defer c.Close()

	w := worker.NewWorker(c, cfg.Temporal, events.NewLogSink(logger))
	logger.Info("Worker starting",
		zap.String("host_port", cfg.Temporal.HostPort),
		zap.String("task_queue", cfg.Temporal.TaskQueue))

	err = w.Run(sdkworker.InterruptCh())
	if err != nil {
		return fmt.Errorf("worker stopped with error: %w", err)
	}
	return nil
}

func runSubmit(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	ds, err := readDataset(cfg)
	if err != nil {
		return err
	}

	c, err := worker.Connect(cfg.Temporal)
	if err != nil {
		return err
	}
	defer c.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	run, err := c.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:        "report-" + uuid.New().String(),
		TaskQueue: cfg.Temporal.TaskQueue,
	}, workflow.ReportWorkflow, domain.ReportRequest{
		Dataset: ds,
		Options: cfg.Engine,
	})
	if err != nil {
		return fmt.Errorf("failed to start report workflow: %w", err)
	}
	logger.Info("Workflow started",
		zap.String("workflow_id", run.GetID()),
		zap.String("run_id", run.GetRunID()))

	var payload domain.Payload
	if err := run.Get(ctx, &payload); err != nil {
		return fmt.Errorf("report workflow failed: %w", err)
	}
	return writePayload(&payload)
}

func readDataset(cfg *config.Config) (domain.Dataset, error) {
	f, err := os.Open(inputPath)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("failed to open input %s: %w", inputPath, err)
	}
	defer f.Close()

	return ingest.ReadCSV(f, cfg.Ingest.Comma())
}

func writePayload(payload *domain.Payload) error {
	raw, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}
	raw = append(raw, '\n')

	if outputPath == "" {
		_, err = os.Stdout.Write(raw)
		return err
	}
	if err := os.WriteFile(outputPath, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write payload to %s: %w", outputPath, err)
	}
	logger.Info("Payload written", zap.String("output", outputPath))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
