package catalog

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// Price domain of the range slider.
const (
	PriceFloor = 0
	PriceCeil  = 1000
	PriceStep  = 10
)

// Criteria is the set of populated filter fields. A nil field is unconstrained.
type Criteria struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	MinPrice    *int    `json:"minPrice,omitempty"`
	MaxPrice    *int    `json:"maxPrice,omitempty"`
}

// NewCriteria builds criteria from raw form values. Blank text and zero
// prices are treated as unset, so clearing a field drops the constraint.
func NewCriteria(title, description string, minPrice, maxPrice int) Criteria {
	var c Criteria
	if t := strings.TrimSpace(title); t != "" {
		c.Title = &t
	}
	if d := strings.TrimSpace(description); d != "" {
		c.Description = &d
	}
	if minPrice != 0 {
		v := minPrice
		c.MinPrice = &v
	}
	if maxPrice != 0 {
		v := maxPrice
		c.MaxPrice = &v
	}
	return c
}

// Fields reports how many constraints are populated.
func (c Criteria) Fields() int {
	n := 0
	if c.Title != nil {
		n++
	}
	if c.Description != nil {
		n++
	}
	if c.MinPrice != nil {
		n++
	}
	if c.MaxPrice != nil {
		n++
	}
	return n
}

func (c Criteria) IsEmpty() bool { return c.Fields() == 0 }

// Match reports whether p satisfies every populated constraint.
func (c Criteria) Match(p Product) bool {
	if c.Title != nil && !TitleMatches(p.Title, *c.Title) {
		return false
	}
	if c.Description != nil && !containsFold(p.Description, *c.Description) {
		return false
	}
	if c.MinPrice != nil && p.Price < float64(*c.MinPrice) {
		return false
	}
	if c.MaxPrice != nil && p.Price > float64(*c.MaxPrice) {
		return false
	}
	return true
}

// maxTitleDistance bounds the typo tolerance of single-word title queries.
const maxTitleDistance = 2

// TitleMatches is a case-insensitive substring match. Single-word queries of
// four or more letters also match any title word within a small edit distance.
func TitleMatches(title, query string) bool {
	if containsFold(title, query) {
		return true
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if len(q) < 4 || strings.ContainsFunc(q, unicode.IsSpace) {
		return false
	}
	for _, word := range strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		if levenshtein.ComputeDistance(word, q) <= maxTitleDistance {
			return true
		}
	}
	return false
}

// Filter returns the products matching c, preserving order.
func Filter(products []Product, c Criteria) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if c.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(strings.TrimSpace(sub)))
}
