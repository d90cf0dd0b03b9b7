// Package home contains the storefront home screen: the shared panel state,
// the category and filter panels that write to it, and the host model that
// renders the product grid from it.
package home

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Env carries what the panels need from the host.
type Env struct {
	Ctx      context.Context
	Timeout  time.Duration
	Log      *zap.Logger
	Currency string
	// ImageBaseURL prefixes category thumbnail references.
	ImageBaseURL string
}

func (e Env) context() (context.Context, context.CancelFunc) {
	ctx := e.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	if e.Timeout > 0 {
		return context.WithTimeout(ctx, e.Timeout)
	}
	return context.WithCancel(ctx)
}

func (e Env) logger() *zap.Logger {
	if e.Log == nil {
		return zap.NewNop()
	}
	return e.Log
}

func (e Env) currency() string {
	if e.Currency == "" {
		return "$"
	}
	return e.Currency
}

// categoryImageURL resolves a category thumbnail the way the storefront
// serves uploads.
func (e Env) categoryImageURL(ref string) string {
	if ref == "" {
		return ""
	}
	return strings.TrimRight(e.ImageBaseURL, "/") + "/uploads/categories/" + ref
}
