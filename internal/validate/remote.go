package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/drmixer/seogenix-schema/internal/types"
)

// DefaultRemoteTimeout bounds one call to the conformance service.
const DefaultRemoteTimeout = 10 * time.Second

// RemoteError represents a failure to reach or use the conformance service.
type RemoteError struct {
	Endpoint string
	Message  string
	Cause    error
}

func (e *RemoteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("remote validation error for %s: %s: %v", e.Endpoint, e.Message, e.Cause)
	}
	return fmt.Sprintf("remote validation error for %s: %s", e.Endpoint, e.Message)
}

func (e *RemoteError) Unwrap() error {
	return e.Cause
}

// Remote validates candidates against an external conformance-checking
// service. Any transport or protocol failure is returned as a *RemoteError
// so the resolver can substitute the local validator.
type Remote struct {
	endpoint string
	client   *http.Client
}

// NewRemote creates a remote validator for the given endpoint.
func NewRemote(endpoint string) *Remote {
	return &Remote{
		endpoint: endpoint,
		client:   &http.Client{Timeout: DefaultRemoteTimeout},
	}
}

// remoteResponse mirrors the conformance service's reply.
type remoteResponse struct {
	Valid  bool          `json:"valid"`
	Issues []types.Issue `json:"issues"`
}

// Validate posts the candidate JSON to the conformance service.
func (r *Remote) Validate(ctx context.Context, candidate types.Candidate) (types.ValidationResult, error) {
	body, err := json.Marshal(candidate)
	if err != nil {
		return types.ValidationResult{}, &RemoteError{
			Endpoint: r.endpoint,
			Message:  "failed to marshal candidate",
			Cause:    err,
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return types.ValidationResult{}, &RemoteError{
			Endpoint: r.endpoint,
			Message:  "failed to create request",
			Cause:    err,
		}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return types.ValidationResult{}, &RemoteError{
			Endpoint: r.endpoint,
			Message:  "request failed",
			Cause:    err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return types.ValidationResult{}, &RemoteError{
			Endpoint: r.endpoint,
			Message:  fmt.Sprintf("HTTP status %d", resp.StatusCode),
		}
	}

	var parsed remoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return types.ValidationResult{}, &RemoteError{
			Endpoint: r.endpoint,
			Message:  "failed to decode response",
			Cause:    err,
		}
	}

	return types.ValidationResult{Valid: parsed.Valid, Issues: parsed.Issues}, nil
}
