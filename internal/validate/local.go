package validate

import (
	"context"
	"strings"

	"github.com/drmixer/seogenix-schema/internal/types"
)

// Local is the rule-based validator. It is pure and never returns an error.
type Local struct{}

// NewLocal returns the local rule-based validator.
func NewLocal() *Local { return &Local{} }

// Validate applies the per-archetype rule table.
func (l *Local) Validate(_ context.Context, candidate types.Candidate) (types.ValidationResult, error) {
	var issues []types.Issue

	add := func(path, message string) {
		issues = append(issues, types.Issue{Path: path, Message: message})
	}

	switch c := candidate.(type) {
	case *types.Article:
		checkEnvelope(c.Context, c.Type, add)
		if strings.TrimSpace(c.Headline) == "" {
			add("headline", "Article requires a headline")
		}
		if strings.TrimSpace(c.DatePublished) == "" {
			add("datePublished", "Article requires a datePublished")
		}
		if strings.TrimSpace(c.ArticleBody) == "" {
			add("articleBody", "Article requires a non-empty articleBody")
		}
	case *types.FAQPage:
		checkEnvelope(c.Context, c.Type, add)
		if len(c.MainEntity) == 0 {
			add("mainEntity", "FAQ requires at least one Q/A")
		}
	case *types.Product:
		checkEnvelope(c.Context, c.Type, add)
		if strings.TrimSpace(c.Name) == "" {
			add("name", "Product requires a name")
		}
		if strings.TrimSpace(c.Description) == "" {
			add("description", "Product requires a description")
		}
	case *types.HowTo:
		checkEnvelope(c.Context, c.Type, add)
		if len(c.Step) == 0 {
			add("step", "HowTo requires at least one step")
		}
	default:
		add("@type", "unsupported schema type")
	}

	return types.ValidationResult{Valid: len(issues) == 0, Issues: issues}, nil
}

// checkEnvelope verifies the JSON-LD envelope fields shared by all
// archetypes.
func checkEnvelope(jsonldContext, schemaType string, add func(path, message string)) {
	if jsonldContext != types.SchemaContext {
		add("@context", "@context must be "+types.SchemaContext)
	}
	if strings.TrimSpace(schemaType) == "" {
		add("@type", "@type is required")
	}
}
