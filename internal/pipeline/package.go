package pipeline

import (
	"encoding/json"
	"fmt"

	"github.com/drmixer/seogenix-schema/internal/types"
)

// packageResult serializes the winning candidate and wraps it as an
// embeddable JSON-LD script tag.
func packageResult(winner types.Candidate, result types.ValidationResult, modeUsed string) (*types.GenerationResult, error) {
	schemaJSON, err := json.MarshalIndent(winner, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize schema: %w", err)
	}

	issues := result.Issues
	if issues == nil {
		issues = []types.Issue{}
	}

	return &types.GenerationResult{
		Schema:         winner,
		Implementation: fmt.Sprintf("<script type=\"application/ld+json\">\n%s\n</script>", schemaJSON),
		SchemaType:     string(winner.SchemaType()),
		Valid:          result.Valid,
		Issues:         issues,
		ModeUsed:       modeUsed,
		Instructions:   instructionsFor(winner.SchemaType()),
	}, nil
}

// instructionsFor returns the deployment guidance shipped with each result.
func instructionsFor(arch types.Archetype) []string {
	instructions := []string{
		"Paste the script tag into the <head> of the page the markup describes.",
		"Verify the markup with Google's Rich Results Test before publishing.",
	}

	switch arch {
	case types.ArchetypeFAQPage:
		instructions = append(instructions, "Keep the marked-up questions and answers visible on the page; hidden FAQ content is ineligible for rich results.")
	case types.ArchetypeProduct:
		instructions = append(instructions, "Add offer, price and availability fields once known; they are required for product rich results.")
	case types.ArchetypeHowTo:
		instructions = append(instructions, "Add images to individual steps where available to improve rich result eligibility.")
	default:
		instructions = append(instructions, "Review datePublished and set the real publication date if it differs.")
	}

	return instructions
}

// sanitizeInput trims request content before it is stored in a run record.
func sanitizeInput(req types.GenerationRequest) types.GenerationRequest {
	if len(req.Content) > maxRecordedContent {
		req.Content = req.Content[:maxRecordedContent]
	}
	return req
}
