// Package pipeline orchestrates structured-data synthesis: deterministic
// extraction first, validation, and a single optional escalation to the
// generative collaborator when the deterministic candidate falls short.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/drmixer/seogenix-schema/internal/extract"
	"github.com/drmixer/seogenix-schema/internal/fetch"
	"github.com/drmixer/seogenix-schema/internal/llm"
	"github.com/drmixer/seogenix-schema/internal/normalize"
	"github.com/drmixer/seogenix-schema/internal/recorder"
	"github.com/drmixer/seogenix-schema/internal/types"
	"github.com/drmixer/seogenix-schema/internal/validate"
)

// Default timeouts for the two blocking I/O points.
const (
	DefaultFetchTimeout      = 30 * time.Second
	DefaultEscalationTimeout = 60 * time.Second
)

// maxRecordedContent caps how much request content is stored in run records.
const maxRecordedContent = 2000

// Runner wires the pipeline's collaborators. LLM may be nil, which disables
// escalation entirely (lean-only operation); Fetcher may be nil when callers
// always supply content directly.
type Runner struct {
	Validator validate.Validator
	LLM       llm.Client
	Fetcher   fetch.Fetcher
	Recorder  recorder.Recorder

	FetchTimeout      time.Duration
	EscalationTimeout time.Duration
}

// NewRunner builds a Runner with default timeouts. A nil validator gets the
// local rule table; a nil recorder gets the no-op recorder.
func NewRunner(validator validate.Validator, client llm.Client, fetcher fetch.Fetcher, rec recorder.Recorder) *Runner {
	if validator == nil {
		validator = validate.NewLocal()
	}
	if rec == nil {
		rec = recorder.Noop{}
	}
	return &Runner{
		Validator:         validator,
		LLM:               client,
		Fetcher:           fetcher,
		Recorder:          rec,
		FetchTimeout:      DefaultFetchTimeout,
		EscalationTimeout: DefaultEscalationTimeout,
	}
}

// Run executes one synthesis invocation. The only error it returns is
// *InputError for malformed requests; all other failures degrade to a
// best-effort successful result built from the lean candidate.
func (r *Runner) Run(ctx context.Context, req types.GenerationRequest) (*types.GenerationResult, error) {
	if req.ProjectID == "" {
		return nil, &InputError{Field: "projectId", Message: "projectId is required"}
	}
	if req.ContentType == "" {
		return nil, &InputError{Field: "contentType", Message: "contentType is required"}
	}
	mode, ok := types.ResolveMode(req.Mode)
	if !ok {
		return nil, &InputError{Field: "mode", Message: fmt.Sprintf("unsupported mode %q", req.Mode)}
	}

	arch := types.ResolveArchetype(req.ContentType)

	runID, err := r.Recorder.Begin(ctx, req.ProjectID, sanitizeInput(req))
	if err != nil {
		log.Printf("run recorder begin failed: %v", err)
	}

	rawContent := r.resolveContent(ctx, req)
	content := normalize.Normalize(rawContent)

	lean := extract.Candidate(arch, content, extract.Input{
		URL:              req.URL,
		AcceptedEntities: req.AcceptedEntities,
	})
	leanResult := r.validateCandidate(ctx, lean)

	winner := lean
	winnerResult := leanResult
	modeUsed := types.ModeUsedLean
	if !leanResult.Valid {
		modeUsed = types.ModeUsedLeanFallback
	}

	if r.shouldEscalate(mode, arch, lean, leanResult) {
		if rich, richResult, ok := r.escalate(ctx, arch, rawContent); ok {
			winner = rich
			winnerResult = richResult
			modeUsed = types.ModeUsedRich
		}
	}

	result, err := packageResult(winner, winnerResult, modeUsed)
	if err != nil {
		// Candidates are plain structs; marshalling them cannot
		// realistically fail, but the recorder still gets a terminal
		// record if it ever does.
		if recErr := r.Recorder.Finish(ctx, runID, types.RunStatusError, nil, err.Error()); recErr != nil {
			log.Printf("run recorder finish failed: %v", recErr)
		}
		return nil, err
	}

	if recErr := r.Recorder.Finish(ctx, runID, types.RunStatusCompleted, result, ""); recErr != nil {
		log.Printf("run recorder finish failed: %v", recErr)
	}

	return result, nil
}

// resolveContent returns the caller's content, fetching the URL when no
// inline content was supplied. Fetch failure degrades to empty content.
func (r *Runner) resolveContent(ctx context.Context, req types.GenerationRequest) string {
	if req.Content != "" {
		return req.Content
	}
	if req.URL == "" || r.Fetcher == nil {
		return ""
	}

	fetchCtx, cancel := context.WithTimeout(ctx, r.fetchTimeout())
	defer cancel()

	body, err := r.Fetcher.Fetch(fetchCtx, req.URL)
	if err != nil {
		log.Printf("page fetch failed, proceeding with empty content: %v", err)
		return ""
	}
	return body
}

// validateCandidate never fails: a validator error (possible only with a
// non-resolver validator) falls back to the local rule table.
func (r *Runner) validateCandidate(ctx context.Context, candidate types.Candidate) types.ValidationResult {
	result, err := r.Validator.Validate(ctx, candidate)
	if err != nil {
		log.Printf("validator error, falling back to local rules: %v", err)
		result, _ = validate.NewLocal().Validate(ctx, candidate)
	}
	return result
}

// shouldEscalate applies the escalation decision table: lean and auto_no_llm
// never escalate; auto and rich escalate when the lean candidate is invalid,
// or for FAQ pages with no detected Q/A pairs (line-pattern detection is the
// least reliable deterministic path, so an empty result is common even on
// legitimate FAQ content).
func (r *Runner) shouldEscalate(mode types.Mode, arch types.Archetype, lean types.Candidate, leanResult types.ValidationResult) bool {
	if !mode.AllowsEscalation() || r.LLM == nil {
		return false
	}
	if !leanResult.Valid {
		return true
	}
	if arch == types.ArchetypeFAQPage {
		if faq, ok := lean.(*types.FAQPage); ok && len(faq.MainEntity) == 0 {
			return true
		}
	}
	return false
}

// fetchTimeout returns the configured fetch timeout or the default.
func (r *Runner) fetchTimeout() time.Duration {
	if r.FetchTimeout > 0 {
		return r.FetchTimeout
	}
	return DefaultFetchTimeout
}

// escalationTimeout returns the configured escalation timeout or the default.
func (r *Runner) escalationTimeout() time.Duration {
	if r.EscalationTimeout > 0 {
		return r.EscalationTimeout
	}
	return DefaultEscalationTimeout
}
