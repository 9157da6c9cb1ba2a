package validate

import (
	"context"
	"log"

	"github.com/drmixer/seogenix-schema/internal/types"
)

// Resolver prefers a remote validator and transparently substitutes the
// local rule table when the remote one fails. The substitution is logged but
// never surfaces as an error, so Resolver.Validate itself never errors.
type Resolver struct {
	remote Validator
	local  Validator
}

// NewResolver builds a resolver. remote may be nil, in which case the local
// validator is used directly.
func NewResolver(remote Validator, local Validator) *Resolver {
	if local == nil {
		local = NewLocal()
	}
	return &Resolver{remote: remote, local: local}
}

// Validate runs the preferred validator with a local fallback.
func (r *Resolver) Validate(ctx context.Context, candidate types.Candidate) (types.ValidationResult, error) {
	if r.remote != nil {
		result, err := r.remote.Validate(ctx, candidate)
		if err == nil {
			return result, nil
		}
		log.Printf("remote validation unavailable, falling back to local rules: %v", err)
	}
	return r.local.Validate(ctx, candidate)
}
