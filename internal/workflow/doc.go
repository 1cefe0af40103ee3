// Package workflow implements the Temporal workflow that drives report
// generation.
//
// The workflow owns orchestration only: it validates the request, runs
// the classification, segmentation, and card-building activities in
// order, and assembles the final payload deterministically in workflow
// code. All I/O and heavy computation happens in activities.
//
// Workflow code here must stay deterministic: no system time, no
// random numbers, no direct I/O. Anything non-deterministic belongs in
// an activity.
package workflow
