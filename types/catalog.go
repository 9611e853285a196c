package types

import "github.com/shopspring/decimal"

// ProductCategory groups collections by trade.
type ProductCategory string

const (
	CategoryDoors    ProductCategory = "doors"
	CategoryWindows  ProductCategory = "windows"
	CategoryKitchens ProductCategory = "kitchens"
)

// Collection is a named product line (e.g. a sliding-door system or a
// kitchen range) shown on the marketing site.
type Collection struct {
	Slug        string          `json:"slug" yaml:"slug"`
	Name        string          `json:"name" yaml:"name"`
	Category    ProductCategory `json:"category" yaml:"category"`
	Tagline     string          `json:"tagline" yaml:"tagline"`
	Description string          `json:"description" yaml:"description"`
	Image       string          `json:"image" yaml:"image"`
}

// Product is a concrete variant within a collection.
type Product struct {
	Slug          string          `json:"slug" yaml:"slug"`
	Collection    string          `json:"collection" yaml:"collection"`
	Name          string          `json:"name" yaml:"name"`
	Summary       string          `json:"summary" yaml:"summary"`
	Finishes      []string        `json:"finishes" yaml:"finishes"`
	Highlights    []string        `json:"highlights" yaml:"highlights"`
	Image         string          `json:"image" yaml:"image"`
	StartingPrice decimal.Decimal `json:"starting_price" yaml:"starting_price"`
}
