package extract

import (
	"strings"

	"github.com/drmixer/seogenix-schema/internal/normalize"
	"github.com/drmixer/seogenix-schema/internal/types"
)

// FAQ scans normalized lines for a Q:/A: prefix grammar. A "Q:" line opens a
// pending question and the next "A:" line closes it into a pair; lines with
// neither prefix are ignored, and a trailing unmatched "Q:" is dropped.
// Multi-line answers are not joined; the grammar is strictly line-anchored.
func FAQ(content normalize.Content) *types.FAQPage {
	page := &types.FAQPage{
		Context:    types.SchemaContext,
		Type:       string(types.ArchetypeFAQPage),
		MainEntity: []types.Question{},
	}

	var pending string
	var havePending bool

	for _, line := range strings.Split(content.Text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case hasPrefixFold(line, "Q:"):
			pending = strings.TrimSpace(line[2:])
			havePending = pending != ""
		case hasPrefixFold(line, "A:"):
			if !havePending {
				continue
			}
			answer := strings.TrimSpace(line[2:])
			page.MainEntity = append(page.MainEntity, types.Question{
				Type: "Question",
				Name: pending,
				AcceptedAnswer: types.Answer{
					Type: "Answer",
					Text: answer,
				},
			})
			havePending = false
		}
	}

	return page
}

// hasPrefixFold is a case-insensitive strings.HasPrefix for ASCII prefixes.
func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
