package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		validate func(*testing.T, Content)
	}{
		{
			name: "empty input yields empty output",
			raw:  "",
			validate: func(t *testing.T, c Content) {
				assert.Empty(t, c.Text)
				assert.Empty(t, c.Headline)
			},
		},
		{
			name: "plain text passes through",
			raw:  "Just a plain paragraph.",
			validate: func(t *testing.T, c Content) {
				assert.Equal(t, "Just a plain paragraph.", c.Text)
				assert.Equal(t, "Just a plain paragraph.", c.Headline)
			},
		},
		{
			name: "tags are stripped",
			raw:  "<html><body><p>Hello <b>world</b></p></body></html>",
			validate: func(t *testing.T, c Content) {
				assert.NotContains(t, c.Text, "<")
				assert.Contains(t, c.Text, "Hello")
				assert.Contains(t, c.Text, "world")
			},
		},
		{
			name: "script and style contents removed",
			raw:  "<html><head><style>.x{color:red}</style></head><body><script>var secret = 1;</script><p>Visible</p></body></html>",
			validate: func(t *testing.T, c Content) {
				assert.NotContains(t, c.Text, "secret")
				assert.NotContains(t, c.Text, "color:red")
				assert.Contains(t, c.Text, "Visible")
			},
		},
		{
			name: "headline prefers first h1",
			raw:  "<html><body><h1>Main Title</h1><h1>Second Title</h1><p>Body text</p></body></html>",
			validate: func(t *testing.T, c Content) {
				assert.Equal(t, "Main Title", c.Headline)
			},
		},
		{
			name: "headline falls back to first line",
			raw:  "First line here\nSecond line",
			validate: func(t *testing.T, c Content) {
				assert.Equal(t, "First line here", c.Headline)
			},
		},
		{
			name: "headline truncated to limit",
			raw:  strings.Repeat("a", 200),
			validate: func(t *testing.T, c Content) {
				assert.Len(t, c.Headline, MaxHeadlineLength)
			},
		},
		{
			name: "whitespace collapsed within lines",
			raw:  "some   spaced\t\tout    text",
			validate: func(t *testing.T, c Content) {
				assert.Equal(t, "some spaced out text", c.Text)
			},
		},
		{
			name: "empty lines dropped",
			raw:  "line one\n\n\n   \nline two",
			validate: func(t *testing.T, c Content) {
				assert.Equal(t, "line one\nline two", c.Text)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, Normalize(tt.raw))
		})
	}
}

func TestNormalizeIsDeterministic(t *testing.T) {
	raw := "<html><body><h1>Title</h1><p>Body</p></body></html>"
	first := Normalize(raw)
	second := Normalize(raw)
	assert.Equal(t, first, second)
}
