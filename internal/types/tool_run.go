package types

import (
	"time"

	"github.com/google/uuid"
)

// ToolRun statuses
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusError     = "error"
)

// ToolRun is one recorded pipeline invocation. The record is created at
// pipeline entry with status running and updated exactly once at exit; the
// pipeline never reads it back.
type ToolRun struct {
	ID           uuid.UUID  `json:"id"`
	ProjectID    string     `json:"project_id"`
	Tool         string     `json:"tool"`
	Status       string     `json:"status"`
	Input        any        `json:"input,omitempty"`
	Output       any        `json:"output,omitempty"`
	ErrorMessage string     `json:"error_message,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}
