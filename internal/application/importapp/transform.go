package importapp

import (
	"fmt"

	"github.com/commerce/importer/internal/domain/catalog"
	"github.com/commerce/importer/internal/domain/commerce"
)

const (
	productStatusPublished = "published"
	defaultOptionTitle     = "Default"
	defaultOptionValue     = "Default"
)

// TransformProduct maps one raw catalog record to the target product shape.
// It is a pure function: the category mapping and sales channel must be
// resolved before it runs, and it performs no backend calls.
//
// The product carries exactly one variant with usd and eur prices, a single
// Default option, and a category reference only when the source category
// name is non-empty and present in categoryIDs.
func TransformProduct(p catalog.SourceProduct, categoryIDs map[string]string, salesChannelID string) commerce.ProductCreateInput {
	sku := p.SKU
	if sku == "" {
		sku = fmt.Sprintf("SKU-%d", p.ID)
	}

	urls := p.ImageURLs()
	images := make([]commerce.ImageInput, len(urls))
	for i, u := range urls {
		images[i] = commerce.ImageInput{URL: u}
	}

	input := commerce.ProductCreateInput{
		Title:       p.Title,
		Handle:      catalog.Handle(p.Title),
		Description: p.Description,
		Status:      productStatusPublished,
		Images:      images,
		Options: []commerce.OptionInput{
			{Title: defaultOptionTitle, Values: []string{defaultOptionValue}},
		},
		Variants: []commerce.VariantCreateInput{
			{
				Title:   defaultOptionValue,
				SKU:     sku,
				Options: map[string]string{defaultOptionTitle: defaultOptionValue},
				Prices: []commerce.PriceInput{
					{Amount: catalog.Cents(p.Price), CurrencyCode: "usd"},
					{Amount: catalog.CentsAt(p.Price, catalog.EURConversionRate), CurrencyCode: "eur"},
				},
				ManageInventory: true,
			},
		},
		SalesChannelIDs: []string{salesChannelID},
		Weight:          p.Weight,
		Length:          p.Dimensions.Depth,
		Width:           p.Dimensions.Width,
		Height:          p.Dimensions.Height,
	}

	if p.Category != "" {
		if id, ok := categoryIDs[p.Category]; ok {
			input.CategoryIDs = []string{id}
		}
	}
	return input
}
