package services

import (
	"cmp"
	"errors"
	"slices"
	"strings"

	"xestetik/internal/models"
	"xestetik/internal/repositories"
)

var ErrProductNotFound = errors.New("product not found")

type CatalogService interface {
	// ListCategory returns the category's products ordered by name, case-insensitively.
	ListCategory(category string) []*models.Product
	// HomeSection returns the category's products in curated homepage order.
	HomeSection(category string) []*models.Product
	GetBySlug(slug string) (*models.Product, error)
	CategoryMeta(category string) models.CategoryMeta
	Categories() []models.CategoryMeta
	Count() int
}

type catalogService struct {
	productRepo repositories.ProductRepository
}

func NewCatalogService(productRepo repositories.ProductRepository) CatalogService {
	return &catalogService{productRepo: productRepo}
}

func (s *catalogService) ListCategory(category string) []*models.Product {
	products := s.productRepo.ByCategory(category)
	SortByName(products)
	return products
}

func (s *catalogService) HomeSection(category string) []*models.Product {
	products := s.productRepo.ByCategory(category)
	meta, _ := s.productRepo.CategoryMeta(category)
	SortByRank(products, meta.HomeRank)
	return products
}

func (s *catalogService) GetBySlug(slug string) (*models.Product, error) {
	p, ok := s.productRepo.GetBySlug(slug)
	if !ok {
		return nil, ErrProductNotFound
	}
	return p, nil
}

// CategoryMeta falls back to the bare key as label when the category has no
// metadata entry.
func (s *catalogService) CategoryMeta(category string) models.CategoryMeta {
	if meta, ok := s.productRepo.CategoryMeta(category); ok {
		return meta
	}
	return models.CategoryMeta{Key: category, Label: category}
}

func (s *catalogService) Categories() []models.CategoryMeta {
	return s.productRepo.Categories()
}

func (s *catalogService) Count() int {
	return s.productRepo.Count()
}

// SortByName orders products by lowercase name, then slug, in place.
func SortByName(products []*models.Product) {
	slices.SortStableFunc(products, compareByName)
}

// SortByRank orders products by their position in rank. Ranked products
// come before unranked ones; unranked products are ordered by name.
func SortByRank(products []*models.Product, rank []string) {
	pos := make(map[string]int, len(rank))
	for i, slug := range rank {
		if _, dup := pos[slug]; !dup {
			pos[slug] = i
		}
	}

	slices.SortStableFunc(products, func(a, b *models.Product) int {
		ra, aRanked := pos[a.Slug]
		rb, bRanked := pos[b.Slug]
		switch {
		case aRanked && bRanked:
			return cmp.Compare(ra, rb)
		case aRanked:
			return -1
		case bRanked:
			return 1
		}
		return compareByName(a, b)
	})
}

func compareByName(a, b *models.Product) int {
	if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
		return c
	}
	return strings.Compare(a.Slug, b.Slug)
}
