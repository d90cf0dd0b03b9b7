package repository

import "time"

// Category represents a category row.
type Category struct {
	ID        string
	Name      string
	Image     string
	SortOrder int
}

// Product represents a product row.
type Product struct {
	ID          string
	CategoryID  *string
	Title       string
	Description string
	Price       float64
	Quantity    int
	Images      []string
	CreatedAt   time.Time
}
