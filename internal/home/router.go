package home

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/shopfront/internal/catalog"
)

// Router turns a navigation intent into the command that loads the target
// listing. The result comes back as a ListingMsg.
type Router interface {
	Navigate(categoryID string) tea.Cmd
}

// ListingMsg carries a product listing for the grid. An empty CategoryID is
// the full listing.
type ListingMsg struct {
	CategoryID string
	Result     catalog.Result[[]catalog.Product]
}

// ListingRouter loads category-scoped listings from a catalog source.
type ListingRouter struct {
	Lister catalog.CategoryLister
	Env    Env
}

func (r ListingRouter) Navigate(categoryID string) tea.Cmd {
	lister, env := r.Lister, r.Env
	return func() tea.Msg {
		ctx, cancel := env.context()
		defer cancel()
		list, err := lister.ProductsByCategory(ctx, categoryID)
		if err != nil {
			return ListingMsg{CategoryID: categoryID, Result: catalog.Fail[[]catalog.Product](err)}
		}
		return ListingMsg{CategoryID: categoryID, Result: catalog.Ok(list)}
	}
}

func loadAll(products catalog.ProductFetcher, env Env) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := env.context()
		defer cancel()
		list, err := products.FetchAllProducts(ctx)
		if err != nil {
			return ListingMsg{Result: catalog.Fail[[]catalog.Product](err)}
		}
		return ListingMsg{Result: catalog.Ok(list)}
	}
}
