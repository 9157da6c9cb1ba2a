package extract

import (
	"github.com/drmixer/seogenix-schema/internal/normalize"
	"github.com/drmixer/seogenix-schema/internal/types"
)

// Product builds a Product candidate. The brand, when present, comes from the
// first accepted entity; there is no reliable deterministic brand signal in
// free-form page text.
func Product(content normalize.Content, in Input) *types.Product {
	name := content.Headline
	if name == "" {
		name = "Product"
	}

	product := &types.Product{
		Context:     types.SchemaContext,
		Type:        string(types.ArchetypeProduct),
		Name:        name,
		Description: content.Text,
	}

	if len(in.AcceptedEntities) > 0 && in.AcceptedEntities[0] != "" {
		product.Brand = &types.Brand{Type: "Brand", Name: in.AcceptedEntities[0]}
	}

	return product
}
