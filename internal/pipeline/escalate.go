package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/drmixer/seogenix-schema/internal/llm"
	"github.com/drmixer/seogenix-schema/internal/prompts"
	"github.com/drmixer/seogenix-schema/internal/schemas"
	"github.com/drmixer/seogenix-schema/internal/types"
)

// escalate makes the single allowed call to the generative collaborator and
// validates its output. Every failure — transport, timeout, unparsable
// reply, bad shape, invalid candidate — is an escalation failure, logged and
// reported as ok=false so the caller keeps the lean candidate. A panic
// anywhere in the escalation path is recovered the same way.
func (r *Runner) escalate(ctx context.Context, arch types.Archetype, rawContent string) (candidate types.Candidate, result types.ValidationResult, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("escalation panicked, keeping lean candidate: %v", rec)
			candidate, result, ok = nil, types.ValidationResult{}, false
		}
	}()

	rich, err := r.generateRich(ctx, arch, rawContent)
	if err != nil {
		log.Printf("escalation failed, keeping lean candidate: %v", err)
		return nil, types.ValidationResult{}, false
	}

	richResult := r.validateCandidate(ctx, rich)
	if !richResult.Valid {
		log.Printf("rich candidate failed validation, keeping lean candidate: %v", richResult.Issues)
		return nil, types.ValidationResult{}, false
	}

	return rich, richResult, true
}

// generateRich prompts the collaborator with the raw (un-normalized) content
// and the archetype's target shape, then parses and shape-checks the reply.
func (r *Runner) generateRich(ctx context.Context, arch types.Archetype, rawContent string) (types.Candidate, error) {
	prompt, err := prompts.Generation(arch, rawContent)
	if err != nil {
		return nil, fmt.Errorf("failed to build prompt: %w", err)
	}

	genCtx, cancel := context.WithTimeout(ctx, r.escalationTimeout())
	defer cancel()

	reply, err := r.LLM.GenerateContent(genCtx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generation call failed: %w", err)
	}

	block, found := llm.ExtractJSONBlock(reply)
	if !found {
		return nil, fmt.Errorf("no parseable JSON block in reply")
	}

	if err := schemas.CheckShape(arch, block); err != nil {
		return nil, fmt.Errorf("reply does not match target shape: %w", err)
	}

	return decodeCandidate(arch, block)
}

// decodeCandidate unmarshals a shape-checked JSON document into the typed
// candidate for the archetype.
func decodeCandidate(arch types.Archetype, jsonText string) (types.Candidate, error) {
	var candidate types.Candidate
	switch arch {
	case types.ArchetypeFAQPage:
		candidate = &types.FAQPage{}
	case types.ArchetypeProduct:
		candidate = &types.Product{}
	case types.ArchetypeHowTo:
		candidate = &types.HowTo{}
	default:
		candidate = &types.Article{}
	}

	if err := json.Unmarshal([]byte(jsonText), candidate); err != nil {
		return nil, fmt.Errorf("failed to decode candidate JSON: %w", err)
	}
	return candidate, nil
}
