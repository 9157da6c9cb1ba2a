package validate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drmixer/seogenix-schema/internal/types"
)

func validArticle() *types.Article {
	return &types.Article{
		Context:       types.SchemaContext,
		Type:          "Article",
		Headline:      "Title",
		ArticleBody:   "Body",
		DatePublished: "2026-01-01T00:00:00Z",
	}
}

func TestLocalValidate(t *testing.T) {
	tests := []struct {
		name      string
		candidate types.Candidate
		wantValid bool
		wantPaths []string
	}{
		{
			name:      "valid article",
			candidate: validArticle(),
			wantValid: true,
		},
		{
			name: "article with empty body",
			candidate: &types.Article{
				Context:       types.SchemaContext,
				Type:          "Article",
				Headline:      "Title",
				DatePublished: "2026-01-01T00:00:00Z",
			},
			wantValid: false,
			wantPaths: []string{"articleBody"},
		},
		{
			name: "article missing several fields",
			candidate: &types.Article{
				Context: types.SchemaContext,
				Type:    "Article",
			},
			wantValid: false,
			wantPaths: []string{"headline", "datePublished", "articleBody"},
		},
		{
			name: "wrong context flagged",
			candidate: &types.Article{
				Context:       "https://example.com",
				Type:          "Article",
				Headline:      "Title",
				ArticleBody:   "Body",
				DatePublished: "2026-01-01T00:00:00Z",
			},
			wantValid: false,
			wantPaths: []string{"@context"},
		},
		{
			name: "missing type flagged",
			candidate: &types.Article{
				Context:       types.SchemaContext,
				Headline:      "Title",
				ArticleBody:   "Body",
				DatePublished: "2026-01-01T00:00:00Z",
			},
			wantValid: false,
			wantPaths: []string{"@type"},
		},
		{
			name: "faq with pairs is valid",
			candidate: &types.FAQPage{
				Context: types.SchemaContext,
				Type:    "FAQPage",
				MainEntity: []types.Question{
					{Type: "Question", Name: "Q?", AcceptedAnswer: types.Answer{Type: "Answer", Text: "A."}},
				},
			},
			wantValid: true,
		},
		{
			name: "faq with empty mainEntity is invalid",
			candidate: &types.FAQPage{
				Context:    types.SchemaContext,
				Type:       "FAQPage",
				MainEntity: []types.Question{},
			},
			wantValid: false,
			wantPaths: []string{"mainEntity"},
		},
		{
			name: "valid product",
			candidate: &types.Product{
				Context:     types.SchemaContext,
				Type:        "Product",
				Name:        "Widget",
				Description: "A widget.",
			},
			wantValid: true,
		},
		{
			name: "product missing name and description",
			candidate: &types.Product{
				Context: types.SchemaContext,
				Type:    "Product",
			},
			wantValid: false,
			wantPaths: []string{"name", "description"},
		},
		{
			name: "valid howto",
			candidate: &types.HowTo{
				Context: types.SchemaContext,
				Type:    "HowTo",
				Name:    "Guide",
				Step:    []types.HowToStep{{Type: "HowToStep", Text: "Do it"}},
			},
			wantValid: true,
		},
		{
			name: "howto without steps is invalid",
			candidate: &types.HowTo{
				Context: types.SchemaContext,
				Type:    "HowTo",
				Name:    "Guide",
				Step:    []types.HowToStep{},
			},
			wantValid: false,
			wantPaths: []string{"step"},
		},
	}

	local := NewLocal()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := local.Validate(context.Background(), tt.candidate)
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, result.Valid)

			var paths []string
			for _, issue := range result.Issues {
				paths = append(paths, issue.Path)
			}
			for _, want := range tt.wantPaths {
				assert.Contains(t, paths, want)
			}
			if tt.wantValid {
				assert.Empty(t, result.Issues)
			}
		})
	}
}

func TestLocalFAQIssueMessage(t *testing.T) {
	local := NewLocal()
	result, err := local.Validate(context.Background(), &types.FAQPage{
		Context: types.SchemaContext,
		Type:    "FAQPage",
	})
	require.NoError(t, err)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, "FAQ requires at least one Q/A", result.Issues[0].Message)
}
