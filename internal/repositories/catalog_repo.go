package repositories

import (
	"fmt"
	"slices"

	"xestetik/internal/models"

	"gopkg.in/yaml.v3"
)

// ProductRepository is the read-only product registry.
type ProductRepository interface {
	All() []*models.Product
	GetBySlug(slug string) (*models.Product, bool)
	ByCategory(category string) []*models.Product
	Categories() []models.CategoryMeta
	CategoryMeta(key string) (models.CategoryMeta, bool)
	Count() int
}

type catalogFile struct {
	Categories []models.CategoryMeta `yaml:"categories"`
	Products   []*models.Product     `yaml:"products"`
}

type catalogRepo struct {
	products   []*models.Product
	bySlug     map[string]*models.Product
	categories []models.CategoryMeta
	metaByKey  map[string]models.CategoryMeta
}

// NewCatalogRepository parses the YAML catalog and builds the slug index.
func NewCatalogRepository(data []byte) (ProductRepository, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return NewCatalogRepositoryFromProducts(file.Categories, file.Products)
}

// NewCatalogRepositoryFromProducts builds a registry from already decoded records.
// Product order is preserved.
func NewCatalogRepositoryFromProducts(categories []models.CategoryMeta, products []*models.Product) (ProductRepository, error) {
	r := &catalogRepo{
		products:   make([]*models.Product, 0, len(products)),
		bySlug:     make(map[string]*models.Product, len(products)),
		categories: slices.Clone(categories),
		metaByKey:  make(map[string]models.CategoryMeta, len(categories)),
	}

	for _, meta := range categories {
		if !slices.Contains(models.Categories, meta.Key) {
			return nil, fmt.Errorf("unknown category %q in catalog metadata", meta.Key)
		}
		r.metaByKey[meta.Key] = meta
	}

	for i, p := range products {
		if p == nil {
			return nil, fmt.Errorf("catalog entry %d is empty", i)
		}
		if !validSlug(p.Slug) {
			return nil, fmt.Errorf("product %q: slug must be lowercase and path safe", p.Slug)
		}
		if _, dup := r.bySlug[p.Slug]; dup {
			return nil, fmt.Errorf("duplicate product slug %q", p.Slug)
		}
		if !slices.Contains(models.Categories, p.Category) {
			return nil, fmt.Errorf("product %q: unknown category %q", p.Slug, p.Category)
		}
		if p.Name == "" {
			return nil, fmt.Errorf("product %q: name is required", p.Slug)
		}
		r.products = append(r.products, p)
		r.bySlug[p.Slug] = p
	}

	return r, nil
}

func (r *catalogRepo) All() []*models.Product {
	return slices.Clone(r.products)
}

func (r *catalogRepo) GetBySlug(slug string) (*models.Product, bool) {
	p, ok := r.bySlug[slug]
	return p, ok
}

func (r *catalogRepo) ByCategory(category string) []*models.Product {
	var out []*models.Product
	for _, p := range r.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func (r *catalogRepo) Categories() []models.CategoryMeta {
	return slices.Clone(r.categories)
}

func (r *catalogRepo) CategoryMeta(key string) (models.CategoryMeta, bool) {
	meta, ok := r.metaByKey[key]
	return meta, ok
}

func (r *catalogRepo) Count() int {
	return len(r.products)
}
