package extract

import (
	"regexp"
	"strings"

	"github.com/drmixer/seogenix-schema/internal/normalize"
	"github.com/drmixer/seogenix-schema/internal/types"
)

// stepPrefix matches a leading ordered-list marker like "1. " or "12. ".
// Only numeric-dot markers count as steps; other list styles are ignored.
var stepPrefix = regexp.MustCompile(`^\d+\.\s+`)

// HowTo builds a HowTo candidate from numbered lines, preserving their
// original order with the numeric prefix stripped.
func HowTo(content normalize.Content) *types.HowTo {
	name := content.Headline
	if name == "" {
		name = "HowTo"
	}

	howto := &types.HowTo{
		Context: types.SchemaContext,
		Type:    string(types.ArchetypeHowTo),
		Name:    name,
		Step:    []types.HowToStep{},
	}

	for _, line := range strings.Split(content.Text, "\n") {
		line = strings.TrimSpace(line)
		if loc := stepPrefix.FindStringIndex(line); loc != nil {
			text := strings.TrimSpace(line[loc[1]:])
			if text == "" {
				continue
			}
			howto.Step = append(howto.Step, types.HowToStep{Type: "HowToStep", Text: text})
		}
	}

	return howto
}
