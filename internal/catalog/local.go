package catalog

import (
	"context"
	"fmt"

	"github.com/jask/shopfront/internal/database/repository"
)

// LocalSource serves the catalog from the local sqlite store.
type LocalSource struct {
	Categories *repository.CategoryRepo
	Products   *repository.ProductRepo
}

func (s *LocalSource) FetchCategories(ctx context.Context) ([]Category, error) {
	rows, err := s.Categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	out := make([]Category, 0, len(rows))
	for _, c := range rows {
		out = append(out, Category{ID: c.ID, Name: c.Name, Image: c.Image})
	}
	return out, nil
}

func (s *LocalSource) FetchAllProducts(ctx context.Context) ([]Product, error) {
	return s.list(ctx, repository.ProductFilters{})
}

func (s *LocalSource) ProductsByCategory(ctx context.Context, categoryID string) ([]Product, error) {
	return s.list(ctx, repository.ProductFilters{CategoryID: categoryID})
}

// Search pushes description and price bounds down to sqlite and applies the
// title match in memory, since it tolerates typos.
func (s *LocalSource) Search(ctx context.Context, c Criteria) ([]Product, error) {
	f := repository.ProductFilters{Description: c.Description}
	if c.MinPrice != nil {
		v := float64(*c.MinPrice)
		f.MinPrice = &v
	}
	if c.MaxPrice != nil {
		v := float64(*c.MaxPrice)
		f.MaxPrice = &v
	}
	products, err := s.list(ctx, f)
	if err != nil {
		return nil, err
	}
	if c.Title == nil {
		return products, nil
	}
	return Filter(products, Criteria{Title: c.Title}), nil
}

func (s *LocalSource) list(ctx context.Context, f repository.ProductFilters) ([]Product, error) {
	rows, err := s.Products.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	out := make([]Product, 0, len(rows))
	for _, r := range rows {
		p := Product{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Price:       r.Price,
			Images:      r.Images,
			Quantity:    r.Quantity,
		}
		if r.CategoryID != nil {
			p.CategoryID = *r.CategoryID
		}
		out = append(out, p)
	}
	return out, nil
}

var _ Source = (*LocalSource)(nil)
