// Package fixtures generates synthetic catalog data for demos and load testing.
package fixtures

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/jask/shopfront/internal/database/repository"
)

// Repos bundles repos used by Seed.
type Repos struct {
	Categories *repository.CategoryRepo
	Products   *repository.ProductRepo
}

var (
	adjectives = []string{"Classic", "Vintage", "Slim", "Oversized", "Everyday", "Travel", "Waxed", "Organic"}
	nouns      = []string{"Shirt", "Jacket", "Sneakers", "Backpack", "Watch", "Scarf", "Belt", "Cap"}
	materials  = []string{"cotton", "wool", "leather", "canvas", "linen", "denim"}
)

// Seed inserts n synthetic products spread across the existing categories.
// The same seed value always yields the same catalog.
func Seed(ctx context.Context, repos Repos, n int, seed int64) (int, error) {
	cats, err := repos.Categories.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list categories: %w", err)
	}
	if len(cats) == 0 {
		return 0, fmt.Errorf("no categories to attach products to")
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		title := fmt.Sprintf("%s %s", adjectives[rng.Intn(len(adjectives))], nouns[rng.Intn(len(nouns))])
		catID := cats[rng.Intn(len(cats))].ID
		p := repository.Product{
			ID:          uuid.NewSHA1(uuid.NameSpaceURL, []byte(fmt.Sprintf("synthetic:%d:%d", seed, i))).String(),
			CategoryID:  &catID,
			Title:       title,
			Description: fmt.Sprintf("%s made from %s", title, materials[rng.Intn(len(materials))]),
			Price:       float64((rng.Intn(100) + 1) * 10),
			Quantity:    rng.Intn(40),
		}
		if err := repos.Products.Upsert(ctx, p); err != nil {
			return i, err
		}
	}
	return n, nil
}
