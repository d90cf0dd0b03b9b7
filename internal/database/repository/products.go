package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
)

// ProductFilters defines list filters. Nil fields are unconstrained.
type ProductFilters struct {
	CategoryID  string
	Description *string
	MinPrice    *float64
	MaxPrice    *float64
}

// ProductRepo handles products.
type ProductRepo struct {
	db *sql.DB
}

func NewProductRepo(db *sql.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) Upsert(ctx context.Context, p Product) error {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return fmt.Errorf("encode images: %w", err)
	}
	if p.Images == nil {
		images = []byte("[]")
	}
	_, err = r.db.ExecContext(ctx, `
	INSERT INTO products(id, category_id, title, description, price, quantity, images)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 category_id=excluded.category_id,
	 title=excluded.title,
	 description=excluded.description,
	 price=excluded.price,
	 quantity=excluded.quantity,
	 images=excluded.images;
	`, p.ID, p.CategoryID, p.Title, p.Description, p.Price, p.Quantity, string(images))
	return err
}

func (r *ProductRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n)
	return n, err
}

func (r *ProductRepo) List(ctx context.Context, f ProductFilters) ([]Product, error) {
	var where []string
	var args []interface{}

	if f.CategoryID != "" {
		where = append(where, "category_id = ?")
		args = append(args, f.CategoryID)
	}
	if f.Description != nil && strings.TrimSpace(*f.Description) != "" {
		where = append(where, `description LIKE ? ESCAPE '\'`)
		args = append(args, "%"+escapeLike(strings.TrimSpace(*f.Description))+"%")
	}
	if f.MinPrice != nil {
		where = append(where, "price >= ?")
		args = append(args, *f.MinPrice)
	}
	if f.MaxPrice != nil {
		where = append(where, "price <= ?")
		args = append(args, *f.MaxPrice)
	}

	query := "SELECT id, category_id, title, description, price, quantity, images, created_at FROM products"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, title"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern escaped with '\'.
func escapeLike(s string) string { return likeEscaper.Replace(s) }

func scanProduct(rows *sql.Rows) (Product, error) {
	var p Product
	var images string
	if err := rows.Scan(&p.ID, &p.CategoryID, &p.Title, &p.Description, &p.Price, &p.Quantity, &images, &p.CreatedAt); err != nil {
		return Product{}, err
	}
	if images != "" {
		if err := json.Unmarshal([]byte(images), &p.Images); err != nil {
			return Product{}, fmt.Errorf("decode images for %s: %w", p.ID, err)
		}
	}
	return p, nil
}
