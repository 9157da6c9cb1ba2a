package recorder

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/drmixer/seogenix-schema/internal/types"
)

// Store is the PostgreSQL-backed Recorder, writing to the tool_runs table.
type Store struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool and verifies it.
func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Begin inserts a running record for a new invocation.
func (s *Store) Begin(ctx context.Context, projectID string, input any) (uuid.UUID, error) {
	inputJSON, err := json.Marshal(input)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal run input: %w", err)
	}

	var id uuid.UUID
	err = s.pool.QueryRow(ctx,
		`INSERT INTO tool_runs (project_id, tool, status, input)
		 VALUES ($1, $2, 'running', $3)
		 RETURNING id`,
		projectID, ToolName, inputJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run record: %w", err)
	}
	return id, nil
}

// Finish writes the terminal status for a run.
func (s *Store) Finish(ctx context.Context, runID uuid.UUID, status string, output any, errMsg string) error {
	var outputJSON []byte
	if output != nil {
		var err error
		outputJSON, err = json.Marshal(output)
		if err != nil {
			return fmt.Errorf("failed to marshal run output: %w", err)
		}
	}

	_, err := s.pool.Exec(ctx,
		`UPDATE tool_runs
		 SET status = $1, output = $2, error_message = NULLIF($3, ''), completed_at = NOW()
		 WHERE id = $4`,
		status, outputJSON, errMsg, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to finish run record: %w", err)
	}
	return nil
}

// List returns the most recent runs for a project, newest first. The
// pipeline itself never reads run records; this serves dashboard queries.
func (s *Store) List(ctx context.Context, projectID string, limit int) ([]types.ToolRun, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, project_id, tool, status, input, output, error_message, created_at, completed_at
		 FROM tool_runs
		 WHERE project_id = $1 AND tool = $2
		 ORDER BY created_at DESC
		 LIMIT $3`,
		projectID, ToolName, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []types.ToolRun
	for rows.Next() {
		var run types.ToolRun
		var inputJSON, outputJSON []byte
		var errMsg *string
		if err := rows.Scan(&run.ID, &run.ProjectID, &run.Tool, &run.Status,
			&inputJSON, &outputJSON, &errMsg, &run.CreatedAt, &run.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if inputJSON != nil {
			_ = json.Unmarshal(inputJSON, &run.Input)
		}
		if outputJSON != nil {
			_ = json.Unmarshal(outputJSON, &run.Output)
		}
		if errMsg != nil {
			run.ErrorMessage = *errMsg
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read runs: %w", err)
	}

	return runs, nil
}
