package extract

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drmixer/seogenix-schema/internal/normalize"
)

func TestArticle(t *testing.T) {
	fixed := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	now = func() time.Time { return fixed }
	defer func() { now = time.Now }()

	t.Run("populated content", func(t *testing.T) {
		content := normalize.Content{
			Text:     "Full body of the article.",
			Headline: "A Headline",
		}
		in := Input{
			URL:              "https://example.com/post",
			AcceptedEntities: []string{"Go", "Schema.org"},
		}

		article := Article(content, in)
		assert.Equal(t, "https://schema.org", article.Context)
		assert.Equal(t, "Article", article.Type)
		assert.Equal(t, "A Headline", article.Headline)
		assert.Equal(t, "Full body of the article.", article.ArticleBody)
		assert.Equal(t, "2026-03-14T09:26:53Z", article.DatePublished)
		assert.Equal(t, "https://example.com/post", article.MainEntityOfPage)
		require.Len(t, article.About, 2)
		assert.Equal(t, "Go", article.About[0].Name)
	})

	t.Run("headline falls back to Article", func(t *testing.T) {
		article := Article(normalize.Content{Text: "body"}, Input{})
		assert.Equal(t, "Article", article.Headline)
	})

	t.Run("about list capped", func(t *testing.T) {
		var entities []string
		for i := 0; i < 30; i++ {
			entities = append(entities, fmt.Sprintf("entity-%d", i))
		}
		article := Article(normalize.Content{}, Input{AcceptedEntities: entities})
		assert.Len(t, article.About, MaxAboutEntities)
	})

	t.Run("empty entity names skipped", func(t *testing.T) {
		article := Article(normalize.Content{}, Input{AcceptedEntities: []string{"", "Real"}})
		require.Len(t, article.About, 1)
		assert.Equal(t, "Real", article.About[0].Name)
	})

	t.Run("no URL leaves mainEntityOfPage empty", func(t *testing.T) {
		article := Article(normalize.Content{}, Input{})
		assert.Empty(t, article.MainEntityOfPage)
	})
}
