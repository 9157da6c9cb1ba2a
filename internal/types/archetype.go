// Package types defines the shared domain types for the schema synthesis pipeline.
package types

import "strings"

// SchemaContext is the JSON-LD context every generated candidate carries.
const SchemaContext = "https://schema.org"

// Archetype identifies one of the fixed structured-data shapes the pipeline
// can produce. The set is closed: any unrecognized content type resolves to
// ArchetypeArticle.
type Archetype string

// Supported archetypes
const (
	ArchetypeArticle Archetype = "Article"
	ArchetypeFAQPage Archetype = "FAQPage"
	ArchetypeProduct Archetype = "Product"
	ArchetypeHowTo   Archetype = "HowTo"
)

// ResolveArchetype normalizes a caller-supplied content type string into one
// of the supported archetypes. Matching is case-insensitive and tolerant of
// common aliases ("faq", "how-to", "product page"); anything unrecognized
// falls back to Article.
func ResolveArchetype(contentType string) Archetype {
	normalized := strings.ToLower(strings.TrimSpace(contentType))
	normalized = strings.ReplaceAll(normalized, "-", "")
	normalized = strings.ReplaceAll(normalized, "_", "")

	switch {
	case strings.Contains(normalized, "faq"):
		return ArchetypeFAQPage
	case strings.Contains(normalized, "howto"):
		return ArchetypeHowTo
	case strings.Contains(normalized, "product"):
		return ArchetypeProduct
	default:
		return ArchetypeArticle
	}
}

// Mode selects the escalation policy for a generation request.
type Mode string

// Supported generation modes
const (
	// ModeAuto prefers the deterministic candidate and escalates to the
	// generative collaborator only when it fails validation.
	ModeAuto Mode = "auto"
	// ModeLean never escalates.
	ModeLean Mode = "lean"
	// ModeRich permits escalation like auto; kept as a distinct caller
	// intent for requests that favor the generative path.
	ModeRich Mode = "rich"
	// ModeAutoNoLLM behaves like auto but with escalation disabled.
	ModeAutoNoLLM Mode = "auto_no_llm"
)

// ResolveMode parses a caller-supplied mode string. An empty string resolves
// to ModeAuto; an unrecognized value returns false.
func ResolveMode(mode string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(mode))) {
	case "":
		return ModeAuto, true
	case ModeAuto:
		return ModeAuto, true
	case ModeLean:
		return ModeLean, true
	case ModeRich:
		return ModeRich, true
	case ModeAutoNoLLM:
		return ModeAutoNoLLM, true
	default:
		return "", false
	}
}

// AllowsEscalation reports whether the mode permits a call to the generative
// collaborator.
func (m Mode) AllowsEscalation() bool {
	return m == ModeAuto || m == ModeRich
}
