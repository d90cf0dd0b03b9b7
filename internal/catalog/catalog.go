// Package catalog holds the storefront domain types and the collaborator
// contracts the navigation panels consume.
package catalog

import (
	"context"
	"errors"
)

// ErrUnexpectedStatus is returned when a catalog service answers with a non-2xx status.
var ErrUnexpectedStatus = errors.New("unexpected status")

// ErrMissingField is returned when a successful response lacks the list it should carry.
var ErrMissingField = errors.New("missing field in response")

// Category is one entry of the category catalog.
type Category struct {
	ID    string
	Name  string
	Image string
}

// Product is a listing row. Only ID, Title, Description and Price are
// interpreted by the panels; the rest is carried for display.
type Product struct {
	ID          string
	Title       string
	Description string
	Price       float64
	CategoryID  string
	Images      []string
	Quantity    int
}

// Image is a slider/carousel asset reference.
type Image struct {
	ID  string
	Ref string
}

type CategoryFetcher interface {
	FetchCategories(ctx context.Context) ([]Category, error)
}

type ProductFetcher interface {
	FetchAllProducts(ctx context.Context) ([]Product, error)
}

// Searcher runs a filtered product query. Criteria only carries populated fields.
type Searcher interface {
	Search(ctx context.Context, c Criteria) ([]Product, error)
}

type CategoryLister interface {
	ProductsByCategory(ctx context.Context, categoryID string) ([]Product, error)
}

// Source bundles every collaborator; both the HTTP and the local adapter satisfy it.
type Source interface {
	CategoryFetcher
	ProductFetcher
	Searcher
	CategoryLister
}

// Result is the outcome of a collaborator call as seen by a panel.
type Result[T any] struct {
	Value T
	Err   error
}

func Ok[T any](v T) Result[T] { return Result[T]{Value: v} }

func Fail[T any](err error) Result[T] { return Result[T]{Err: err} }

func (r Result[T]) OK() bool { return r.Err == nil }
