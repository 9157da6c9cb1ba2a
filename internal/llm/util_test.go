package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSONBlock(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		want      string
		wantFound bool
	}{
		{
			name:      "fenced json block",
			text:      "Here is the markup:\n```json\n{\"@type\": \"Article\"}\n```\nDone.",
			want:      `{"@type": "Article"}`,
			wantFound: true,
		},
		{
			name:      "fenced block without language",
			text:      "```\n{\"@type\": \"FAQPage\"}\n```",
			want:      `{"@type": "FAQPage"}`,
			wantFound: true,
		},
		{
			name:      "bare json without fences",
			text:      `{"@type": "Product", "name": "Widget"}`,
			want:      `{"@type": "Product", "name": "Widget"}`,
			wantFound: true,
		},
		{
			name:      "fence containing non-json",
			text:      "```\nnot json at all\n```",
			wantFound: false,
		},
		{
			name:      "no json anywhere",
			text:      "I could not produce markup for this page.",
			wantFound: false,
		},
		{
			// An unterminated fence still yields its JSON through the
			// clean-block fallback.
			name:      "unterminated fence",
			text:      "```json\n{\"@type\": \"Article\"}",
			want:      `{"@type": "Article"}`,
			wantFound: true,
		},
		{
			name:      "empty reply",
			text:      "",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractJSONBlock(tt.text)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "json fence stripped",
			text: "```json\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "generic fence stripped",
			text: "```\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "unfenced text untouched",
			text: `{"a": 1}`,
			want: `{"a": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONBlock(tt.text))
		})
	}
}
