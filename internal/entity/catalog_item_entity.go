package entity

// CatalogItem is one row of the loaded catalog snapshot. Fields mirror the
// source dataset: price, rating and rating count are kept as raw strings
// (currency symbols, commas) and coerced at filter time. Tags is the only
// mutable field and is rewritten per query.
type CatalogItem struct {
	Index       int      `json:"index"`
	Description string   `json:"text_input"`
	Price       string   `json:"price"`
	Rating      string   `json:"rating"`
	RatingCount string   `json:"rating_count"`
	ImagePath   string   `json:"image_path"`
	Tags        []string `json:"tags,omitempty"`
}
