// Package catalog implements a read-only CatalogStore backed by a YAML data
// file compiled into the binary. The marketing site's catalog is static
// content: it changes through a deploy, never at runtime, so there is no
// database behind it.
package catalog

import (
	_ "embed"
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/veralum/veralum-backend/internal/store"
	"github.com/veralum/veralum-backend/types"
)

//go:embed data/catalog.yaml
var catalogYAML []byte

// collectionEntry mirrors types.Collection in the data file.
type collectionEntry struct {
	Slug        string `yaml:"slug"`
	Name        string `yaml:"name"`
	Category    string `yaml:"category"`
	Tagline     string `yaml:"tagline"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
}

// productEntry mirrors types.Product in the data file. Prices travel as
// strings so they survive YAML without float rounding.
type productEntry struct {
	Slug          string   `yaml:"slug"`
	Collection    string   `yaml:"collection"`
	Name          string   `yaml:"name"`
	Summary       string   `yaml:"summary"`
	Finishes      []string `yaml:"finishes"`
	Highlights    []string `yaml:"highlights"`
	Image         string   `yaml:"image"`
	StartingPrice string   `yaml:"starting_price"`
}

type catalogFile struct {
	Collections []collectionEntry `yaml:"collections"`
	Products    []productEntry    `yaml:"products"`
}

// Store holds the parsed catalog. All fields are immutable after NewStore,
// which makes the store safe for concurrent readers.
type Store struct {
	collections []types.Collection
	products    []types.Product
	bySlug      map[string]*types.Collection
	productSlug map[string]*types.Product
}

// NewStore parses the embedded catalog data.
func NewStore() (*Store, error) {
	return NewStoreFromYAML(catalogYAML)
}

// NewStoreFromYAML parses and validates catalog data from raw YAML.
func NewStoreFromYAML(data []byte) (*Store, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog data: %w", err)
	}

	s := &Store{
		bySlug:      make(map[string]*types.Collection, len(file.Collections)),
		productSlug: make(map[string]*types.Product, len(file.Products)),
	}

	validCategories := map[types.ProductCategory]bool{
		types.CategoryDoors:    true,
		types.CategoryWindows:  true,
		types.CategoryKitchens: true,
	}

	collectionSlugs := make(map[string]bool, len(file.Collections))
	for _, entry := range file.Collections {
		if entry.Slug == "" {
			return nil, fmt.Errorf("collection %q is missing a slug", entry.Name)
		}
		if collectionSlugs[entry.Slug] {
			return nil, fmt.Errorf("duplicate collection slug %q", entry.Slug)
		}
		collectionSlugs[entry.Slug] = true
		category := types.ProductCategory(entry.Category)
		if !validCategories[category] {
			return nil, fmt.Errorf("collection %q has unknown category %q", entry.Slug, entry.Category)
		}
		s.collections = append(s.collections, types.Collection{
			Slug:        entry.Slug,
			Name:        entry.Name,
			Category:    category,
			Tagline:     entry.Tagline,
			Description: entry.Description,
			Image:       entry.Image,
		})
	}

	productSlugs := make(map[string]bool, len(file.Products))
	for _, entry := range file.Products {
		if entry.Slug == "" {
			return nil, fmt.Errorf("product %q is missing a slug", entry.Name)
		}
		if productSlugs[entry.Slug] {
			return nil, fmt.Errorf("duplicate product slug %q", entry.Slug)
		}
		productSlugs[entry.Slug] = true
		if !collectionSlugs[entry.Collection] {
			return nil, fmt.Errorf("product %q references unknown collection %q", entry.Slug, entry.Collection)
		}
		price, err := decimal.NewFromString(entry.StartingPrice)
		if err != nil {
			return nil, fmt.Errorf("product %q has invalid starting price %q: %w", entry.Slug, entry.StartingPrice, err)
		}
		s.products = append(s.products, types.Product{
			Slug:          entry.Slug,
			Collection:    entry.Collection,
			Name:          entry.Name,
			Summary:       entry.Summary,
			Finishes:      entry.Finishes,
			Highlights:    entry.Highlights,
			Image:         entry.Image,
			StartingPrice: price,
		})
	}

	// Slug indexes are built once the backing slices are final.
	for i := range s.collections {
		s.bySlug[s.collections[i].Slug] = &s.collections[i]
	}
	for i := range s.products {
		s.productSlug[s.products[i].Slug] = &s.products[i]
	}

	return s, nil
}

// Collections returns all collections in data-file order.
func (s *Store) Collections() []types.Collection {
	return s.collections
}

// CollectionBySlug returns the collection with the given slug.
func (s *Store) CollectionBySlug(slug string) (*types.Collection, error) {
	collection, ok := s.bySlug[slug]
	if !ok {
		return nil, store.ErrNotFound
	}
	return collection, nil
}

// Products returns products, optionally filtered by collection slug. An
// empty filter returns the full list.
func (s *Store) Products(collectionSlug string) []types.Product {
	if collectionSlug == "" {
		return s.products
	}
	var filtered []types.Product
	for _, p := range s.products {
		if p.Collection == collectionSlug {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// ProductBySlug returns the product with the given slug.
func (s *Store) ProductBySlug(slug string) (*types.Product, error) {
	product, ok := s.productSlug[slug]
	if !ok {
		return nil, store.ErrNotFound
	}
	return product, nil
}
