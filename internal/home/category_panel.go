package home

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/shopfront/internal/catalog"
	"github.com/jask/shopfront/internal/widgets"
)

// NavigateMsg is the intent emitted when a category is chosen.
type NavigateMsg struct {
	CategoryID string
	Name       string
}

type categoriesLoadedMsg struct {
	result catalog.Result[[]catalog.Category]
}

// CategoryPanel lists the category catalog. The catalog is fetched once, on
// the first Init, and kept locally.
type CategoryPanel struct {
	store   *Store
	fetcher catalog.CategoryFetcher
	env     Env

	started    bool
	loaded     bool
	categories []catalog.Category
	lastErr    error
	cursor     int
	columns    int
}

func NewCategoryPanel(store *Store, fetcher catalog.CategoryFetcher, env Env) *CategoryPanel {
	return &CategoryPanel{store: store, fetcher: fetcher, env: env, columns: 4}
}

// Init returns the one-time catalog fetch. Later calls return nil.
func (p *CategoryPanel) Init() tea.Cmd {
	if p.started {
		return nil
	}
	p.started = true
	fetcher, env := p.fetcher, p.env
	return func() tea.Msg {
		ctx, cancel := env.context()
		defer cancel()
		cats, err := fetcher.FetchCategories(ctx)
		if err != nil {
			return categoriesLoadedMsg{result: catalog.Fail[[]catalog.Category](err)}
		}
		return categoriesLoadedMsg{result: catalog.Ok(cats)}
	}
}

func (p *CategoryPanel) Categories() []catalog.Category { return p.categories }

// LastErr is the failure of the catalog fetch, if any.
func (p *CategoryPanel) LastErr() error { return p.lastErr }

func (p *CategoryPanel) Visible() bool { return p.store.State().CategoryOpen() }

func (p *CategoryPanel) Update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case categoriesLoadedMsg:
		p.loaded = true
		if !m.result.OK() {
			p.lastErr = m.result.Err
			p.env.logger().Warn("category fetch failed", zap.Error(m.result.Err))
			return nil
		}
		p.lastErr = nil
		p.categories = m.result.Value
		if p.cursor >= len(p.categories) {
			p.cursor = 0
		}
	case tea.KeyMsg:
		if !p.Visible() {
			return nil
		}
		return p.handleKey(m)
	}
	return nil
}

func (p *CategoryPanel) handleKey(msg tea.KeyMsg) tea.Cmd {
	n := len(p.categories)
	switch {
	case key.Matches(msg, keys.Close):
		p.store.Dispatch(SetCategoryPanel{Open: false})
	case n == 0:
		return nil
	case key.Matches(msg, keys.Left):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(msg, keys.Right):
		if p.cursor < n-1 {
			p.cursor++
		}
	case key.Matches(msg, keys.Up):
		if p.cursor-p.columns >= 0 {
			p.cursor -= p.columns
		}
	case key.Matches(msg, keys.Down):
		if p.cursor+p.columns < n {
			p.cursor += p.columns
		}
	case key.Matches(msg, keys.Select):
		c := p.categories[p.cursor]
		return func() tea.Msg { return NavigateMsg{CategoryID: c.ID, Name: c.Name} }
	}
	return nil
}

func (p *CategoryPanel) View(width int) string {
	if !p.Visible() {
		return ""
	}
	pane := widgets.Pane{Title: "Categories", Focused: true}
	switch {
	case !p.loaded:
		pane.Content = mutedStyle.Render("Loading categories…")
	case len(p.categories) == 0:
		pane.Content = "No Category"
		if p.lastErr != nil {
			pane.Badge = "fetch failed"
			pane.Failed = true
		}
	default:
		pane.Badge = fmt.Sprintf("%d", len(p.categories))
		pane.Content = p.renderGrid(width - 4)
	}
	return pane.Render(width)
}

func (p *CategoryPanel) renderGrid(width int) string {
	cols := p.columns
	if width < cols*16 {
		cols = max(1, width/16)
		p.columns = cols
	}
	cellWidth := max(8, width/cols)
	var lines []string
	for start := 0; start < len(p.categories); start += cols {
		end := min(start+cols, len(p.categories))
		var names, images []string
		for i := start; i < end; i++ {
			c := p.categories[i]
			name := c.Name
			if i == p.cursor {
				name = selectedStyle.Render("▶ " + name)
			} else {
				name = "  " + name
			}
			names = append(names, widgets.Cell(name, cellWidth))
			images = append(images, widgets.Cell(mutedStyle.Render("  "+p.env.categoryImageURL(c.Image)), cellWidth))
		}
		lines = append(lines, strings.Join(names, ""), strings.Join(images, ""))
	}
	lines = append(lines, "", helpLine(keys.Select, keys.Close))
	return strings.Join(lines, "\n")
}
