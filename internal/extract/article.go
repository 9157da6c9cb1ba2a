package extract

import (
	"time"

	"github.com/drmixer/seogenix-schema/internal/normalize"
	"github.com/drmixer/seogenix-schema/internal/types"
)

// now is stubbed in tests to make datePublished deterministic.
var now = time.Now

// Article builds an Article candidate from normalized content. The headline
// falls back to "Article" when the normalizer found none.
func Article(content normalize.Content, in Input) *types.Article {
	headline := content.Headline
	if headline == "" {
		headline = "Article"
	}

	article := &types.Article{
		Context:       types.SchemaContext,
		Type:          string(types.ArchetypeArticle),
		Headline:      headline,
		ArticleBody:   content.Text,
		DatePublished: now().UTC().Format(time.RFC3339),
	}

	if in.URL != "" {
		article.MainEntityOfPage = in.URL
	}

	entities := in.AcceptedEntities
	if len(entities) > MaxAboutEntities {
		entities = entities[:MaxAboutEntities]
	}
	for _, name := range entities {
		if name == "" {
			continue
		}
		article.About = append(article.About, types.Thing{Type: "Thing", Name: name})
	}

	return article
}
