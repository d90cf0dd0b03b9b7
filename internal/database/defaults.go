package database

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"github.com/jask/shopfront/internal/database/repository"
)

type seedProduct struct {
	Title       string
	Description string
	Price       float64
	Quantity    int
}

var defaultCatalog = []struct {
	Name     string
	Image    string
	Products []seedProduct
}{
	{"Shirts", "shirts.jpg", []seedProduct{
		{"Oxford Shirt", "Button-down cotton shirt in pale blue", 45, 12},
		{"Linen Shirt", "Breathable linen shirt for summer", 60, 8},
		{"Flannel Shirt", "Brushed flannel with a check pattern", 55, 5},
	}},
	{"Shoes", "shoes.jpg", []seedProduct{
		{"Canvas Sneakers", "Low-top sneakers with rubber sole", 70, 20},
		{"Leather Boots", "Waterproof leather boots, hand stitched", 240, 4},
		{"Running Shoes", "Lightweight mesh running shoes", 130, 9},
	}},
	{"Bags", "bags.jpg", []seedProduct{
		{"Tote Bag", "Heavy canvas tote with inner pocket", 30, 30},
		{"Leather Backpack", "Full-grain leather backpack with laptop sleeve", 320, 3},
	}},
	{"Watches", "watches.jpg", []seedProduct{
		{"Field Watch", "Automatic field watch with canvas strap", 450, 6},
		{"Dress Watch", "Slim quartz dress watch with leather band", 780, 2},
	}},
}

// CategoryID returns the stable id used for a seeded category name.
func CategoryID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("cat:"+strings.ToLower(name))).String()
}

// SeedDefaults fills an empty catalog with demo categories and products.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	catRepo := repository.NewCategoryRepo(db)
	existing, err := catRepo.List(ctx)
	if err == nil && len(existing) > 0 {
		return nil
	}
	prodRepo := repository.NewProductRepo(db)
	for idx, group := range defaultCatalog {
		catID := CategoryID(group.Name)
		cat := repository.Category{ID: catID, Name: group.Name, Image: group.Image, SortOrder: idx}
		if err := catRepo.Upsert(ctx, cat); err != nil {
			return err
		}
		for _, sp := range group.Products {
			p := repository.Product{
				ID:          uuid.NewSHA1(uuid.NameSpaceOID, []byte("product:"+strings.ToLower(sp.Title))).String(),
				CategoryID:  &catID,
				Title:       sp.Title,
				Description: sp.Description,
				Price:       sp.Price,
				Quantity:    sp.Quantity,
			}
			if err := prodRepo.Upsert(ctx, p); err != nil {
				return err
			}
		}
	}
	return nil
}
