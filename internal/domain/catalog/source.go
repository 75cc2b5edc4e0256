package catalog

// SourceDimensions holds the physical dimensions reported by the catalog
// source. Any missing field decodes to zero, which is also the value the
// target schema expects for unknown dimensions.
type SourceDimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

// SourceProduct is one raw record from the remote catalog. The shape is
// validated once at the fetch boundary; downstream code may rely on a
// positive ID, a non-empty title and a non-negative price.
//
// Category, SKU, Images and Stock are optional in the source feed and fall
// back to derived values during transformation.
type SourceProduct struct {
	ID          int              `json:"id" validate:"required,gt=0"`
	Title       string           `json:"title" validate:"required"`
	Brand       string           `json:"brand"`
	Description string           `json:"description"`
	Price       float64          `json:"price" validate:"gte=0"`
	Stock       int              `json:"stock" validate:"gte=0"`
	Category    string           `json:"category"`
	SKU         string           `json:"sku"`
	Thumbnail   string           `json:"thumbnail"`
	Images      []string         `json:"images"`
	Weight      float64          `json:"weight"`
	Dimensions  SourceDimensions `json:"dimensions"`
}

// ImageURLs returns the image list for the target product: the source image
// list when present, otherwise a single-element list with the thumbnail.
func (p SourceProduct) ImageURLs() []string {
	if len(p.Images) > 0 {
		return p.Images
	}
	return []string{p.Thumbnail}
}

// CategoryNames returns the distinct non-empty category names across the
// given records, in first-seen order. Dedup is by exact name equality, not
// by derived slug: two spellings that slugify identically stay distinct.
func CategoryNames(products []SourceProduct) []string {
	seen := make(map[string]struct{}, len(products))
	names := make([]string, 0, len(products))
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		names = append(names, p.Category)
	}
	return names
}
