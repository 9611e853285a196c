package store

import (
	"github.com/veralum/veralum-backend/types"
)

// CatalogStore provides read access to the product catalog shown on the
// marketing site. Implementations are expected to be safe for concurrent use.
type CatalogStore interface {
	Collections() []types.Collection
	CollectionBySlug(slug string) (*types.Collection, error)
	Products(collectionSlug string) []types.Product
	ProductBySlug(slug string) (*types.Product, error)
}
