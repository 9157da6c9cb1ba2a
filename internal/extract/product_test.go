package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drmixer/seogenix-schema/internal/normalize"
)

func TestProduct(t *testing.T) {
	content := normalize.Content{
		Text:     "A fast noise-cancelling headset.",
		Headline: "Acme Headset Pro",
	}

	product := Product(content, Input{AcceptedEntities: []string{"Acme"}})

	assert.Equal(t, "https://schema.org", product.Context)
	assert.Equal(t, "Product", product.Type)
	assert.Equal(t, "Acme Headset Pro", product.Name)
	assert.Equal(t, content.Text, product.Description)
	require.NotNil(t, product.Brand)
	assert.Equal(t, "Brand", product.Brand.Type)
	assert.Equal(t, "Acme", product.Brand.Name)
}

func TestProductFallbackName(t *testing.T) {
	product := Product(normalize.Content{Text: "some description"}, Input{})
	assert.Equal(t, "Product", product.Name)
}

func TestProductBrandOmitted(t *testing.T) {
	tests := []struct {
		name     string
		entities []string
	}{
		{name: "no entities", entities: nil},
		{name: "first entity empty", entities: []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product := Product(normalize.Content{Headline: "Widget"}, Input{AcceptedEntities: tt.entities})
			assert.Nil(t, product.Brand)
		})
	}
}
