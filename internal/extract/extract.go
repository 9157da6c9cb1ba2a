// Package extract produces deterministic (lean) structured-data candidates
// from normalized page content. Every extractor is total: sparse or empty
// input yields a minimal but well-typed candidate, never an error.
package extract

import (
	"github.com/drmixer/seogenix-schema/internal/normalize"
	"github.com/drmixer/seogenix-schema/internal/types"
)

// MaxAboutEntities caps the number of accepted entities mapped into an
// Article's "about" list.
const MaxAboutEntities = 20

// Input carries the request context the extractors may use beyond the
// normalized content itself.
type Input struct {
	URL              string
	AcceptedEntities []string
}

// Candidate dispatches to the extractor for the resolved archetype.
func Candidate(arch types.Archetype, content normalize.Content, in Input) types.Candidate {
	switch arch {
	case types.ArchetypeFAQPage:
		return FAQ(content)
	case types.ArchetypeProduct:
		return Product(content, in)
	case types.ArchetypeHowTo:
		return HowTo(content)
	default:
		return Article(content, in)
	}
}
