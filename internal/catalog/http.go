package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
	"resty.dev/v3"
)

// HTTPConfig configures the remote catalog service adapter.
type HTTPConfig struct {
	BaseURL           string
	Timeout           time.Duration
	RetryCount        int
	RequestsPerSecond int
}

// HTTPSource talks to the storefront REST API.
type HTTPSource struct {
	client *resty.Client
	rl     ratelimit.Limiter
	log    *zap.Logger
}

func NewHTTPSource(cfg HTTPConfig, log *zap.Logger) *HTTPSource {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	rl := ratelimit.NewUnlimited()
	if cfg.RequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.RequestsPerSecond)
	}
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(200*time.Millisecond).
		SetRetryMaxWaitTime(2*time.Second).
		SetHeader("Accept", "application/json")
	return &HTTPSource{client: client, rl: rl, log: log}
}

func (s *HTTPSource) Close() error {
	return s.client.Close()
}

type wireCategory struct {
	ID    string `json:"_id"`
	Name  string `json:"cName"`
	Image string `json:"cImage"`
}

type wireProduct struct {
	ID          string          `json:"_id"`
	Name        string          `json:"pName"`
	Description string          `json:"pDescription"`
	Price       float64         `json:"pPrice"`
	Category    json.RawMessage `json:"pCategory"`
	Images      []string        `json:"pImages"`
	Quantity    int             `json:"pQuantity"`
}

// The list keys are pointers so an absent or null key is told apart from an
// empty list; the storefront answers rejected queries with 200 and an error body.
type categoriesBody struct {
	Categories *[]wireCategory `json:"Categories"`
}

type productsBody struct {
	Products *[]wireProduct `json:"Products"`
}

func (b productsBody) products(path string) ([]Product, error) {
	if b.Products == nil {
		return nil, fmt.Errorf("%w: Products in %s", ErrMissingField, path)
	}
	return toProducts(*b.Products), nil
}

func (s *HTTPSource) FetchCategories(ctx context.Context) ([]Category, error) {
	var body categoriesBody
	if err := s.do(ctx, "GET", "/api/category/all-category", nil, &body); err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}
	if body.Categories == nil {
		return nil, fmt.Errorf("fetch categories: %w: Categories", ErrMissingField)
	}
	out := make([]Category, 0, len(*body.Categories))
	for _, c := range *body.Categories {
		out = append(out, Category{ID: c.ID, Name: c.Name, Image: c.Image})
	}
	return out, nil
}

func (s *HTTPSource) FetchAllProducts(ctx context.Context) ([]Product, error) {
	var body productsBody
	if err := s.do(ctx, "GET", "/api/product/all-product", nil, &body); err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	return body.products("all-product")
}

func (s *HTTPSource) Search(ctx context.Context, c Criteria) ([]Product, error) {
	var body productsBody
	if err := s.do(ctx, "POST", "/api/product/search", c, &body); err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return body.products("search")
}

func (s *HTTPSource) ProductsByCategory(ctx context.Context, categoryID string) ([]Product, error) {
	var body productsBody
	req := struct {
		CatID string `json:"catId"`
	}{CatID: categoryID}
	if err := s.do(ctx, "POST", "/api/product/product-by-category", req, &body); err != nil {
		return nil, fmt.Errorf("products by category %s: %w", categoryID, err)
	}
	return body.products("product-by-category")
}

func (s *HTTPSource) do(ctx context.Context, method, path string, payload, out any) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("request cancelled: %w", err)
	}
	s.rl.Take()
	// the limiter cannot be interrupted, so the wait may have outlived ctx
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("request cancelled: %w", err)
	}

	req := s.client.R().SetContext(ctx)
	if payload != nil {
		req = req.SetHeader("Content-Type", "application/json").SetBody(payload)
	}
	resp, err := req.Execute(method, path)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("%w: %s %s: %d", ErrUnexpectedStatus, method, path, resp.StatusCode())
	}
	raw := resp.String()
	s.log.Debug("catalog response", zap.String("method", method), zap.String("path", path), zap.Int("bytes", len(raw)))
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func toProducts(in []wireProduct) []Product {
	out := make([]Product, 0, len(in))
	for _, p := range in {
		out = append(out, Product{
			ID:          p.ID,
			Title:       p.Name,
			Description: p.Description,
			Price:       p.Price,
			CategoryID:  categoryRef(p.Category),
			Images:      p.Images,
			Quantity:    p.Quantity,
		})
	}
	return out
}

// categoryRef accepts either a bare id or a populated category document.
func categoryRef(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var id string
	if err := json.Unmarshal(raw, &id); err == nil {
		return id
	}
	var doc wireCategory
	if err := json.Unmarshal(raw, &doc); err == nil {
		return doc.ID
	}
	return ""
}

var _ Source = (*HTTPSource)(nil)
