// Package recorder provides the append-only run log for pipeline
// invocations. Recording is best effort: failures are logged by the caller
// and never alter the pipeline's result.
package recorder

import (
	"context"

	"github.com/google/uuid"
)

// ToolName identifies this pipeline in run records.
const ToolName = "schema_generator"

// Recorder captures the lifecycle of one pipeline invocation: exactly one
// Begin at entry and one Finish at exit.
type Recorder interface {
	// Begin creates a running record and returns its ID.
	Begin(ctx context.Context, projectID string, input any) (uuid.UUID, error)
	// Finish writes the terminal status (completed or error) for a run.
	Finish(ctx context.Context, runID uuid.UUID, status string, output any, errMsg string) error
}

// Noop discards all records. Used when no database is configured.
type Noop struct{}

// Begin returns a fresh ID without recording anything.
func (Noop) Begin(context.Context, string, any) (uuid.UUID, error) {
	return uuid.New(), nil
}

// Finish discards the terminal record.
func (Noop) Finish(context.Context, uuid.UUID, string, any, string) error {
	return nil
}
