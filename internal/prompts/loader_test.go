package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drmixer/seogenix-schema/internal/types"
)

func TestGeneration(t *testing.T) {
	for _, arch := range []types.Archetype{
		types.ArchetypeArticle,
		types.ArchetypeFAQPage,
		types.ArchetypeProduct,
		types.ArchetypeHowTo,
	} {
		t.Run(string(arch), func(t *testing.T) {
			prompt, err := Generation(arch, "THE PAGE CONTENT")
			require.NoError(t, err)
			assert.Contains(t, prompt, "THE PAGE CONTENT")
			assert.Contains(t, prompt, string(arch))
			assert.NotContains(t, prompt, "{{.Content}}")
		})
	}
}

func TestGet(t *testing.T) {
	t.Run("known key", func(t *testing.T) {
		template, err := Get("generation.json", "article")
		require.NoError(t, err)
		assert.NotEmpty(t, template)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := Get("generation.json", "recipe")
		assert.Error(t, err)
	})

	t.Run("unknown file", func(t *testing.T) {
		_, err := Get("missing.json", "article")
		assert.Error(t, err)
	})
}

func TestFormat(t *testing.T) {
	result := Format("Hello {{.Name}}, welcome to {{.Place}}.", map[string]string{
		"Name":  "Ada",
		"Place": "the pipeline",
	})
	assert.Equal(t, "Hello Ada, welcome to the pipeline.", result)
}
