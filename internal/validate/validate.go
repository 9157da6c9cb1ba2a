// Package validate checks structured-data candidates for shape-level
// conformance: required fields present and non-empty for the candidate's
// archetype. It deliberately stops short of full Schema.org semantics.
package validate

import (
	"context"

	"github.com/drmixer/seogenix-schema/internal/types"
)

// Validator checks one candidate and reports the result. A returned error
// means the validator itself could not run (e.g. a remote service was
// unreachable), not that the candidate is invalid; invalidity is expressed
// through the ValidationResult.
type Validator interface {
	Validate(ctx context.Context, candidate types.Candidate) (types.ValidationResult, error)
}
