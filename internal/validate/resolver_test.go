package validate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drmixer/seogenix-schema/internal/types"
)

// stubValidator returns a fixed result or error.
type stubValidator struct {
	result types.ValidationResult
	err    error
	calls  int
}

func (s *stubValidator) Validate(context.Context, types.Candidate) (types.ValidationResult, error) {
	s.calls++
	return s.result, s.err
}

func TestResolverPrefersRemote(t *testing.T) {
	remote := &stubValidator{result: types.ValidationResult{Valid: false, Issues: []types.Issue{{Path: "headline", Message: "remote said no"}}}}
	resolver := NewResolver(remote, NewLocal())

	result, err := resolver.Validate(context.Background(), validArticle())
	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, "remote said no", result.Issues[0].Message)
	assert.Equal(t, 1, remote.calls)
}

func TestResolverFallsBackOnRemoteError(t *testing.T) {
	remote := &stubValidator{err: errors.New("connection refused")}
	resolver := NewResolver(remote, NewLocal())

	// The local rule table accepts a fully populated article even though
	// the remote validator is down; the substitution never surfaces.
	result, err := resolver.Validate(context.Background(), validArticle())
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, 1, remote.calls)
}

func TestResolverWithoutRemoteUsesLocal(t *testing.T) {
	resolver := NewResolver(nil, nil)

	result, err := resolver.Validate(context.Background(), &types.FAQPage{
		Context: types.SchemaContext,
		Type:    "FAQPage",
	})
	require.NoError(t, err)
	assert.False(t, result.Valid)
}
