package home

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/shopfront/internal/catalog"
	"github.com/jask/shopfront/internal/widgets"
)

type filterField int

const (
	fieldTitle filterField = iota
	fieldDescription
	fieldMinPrice
	fieldMaxPrice
	fieldCount
)

type baselineLoadedMsg struct {
	token  int
	result catalog.Result[[]catalog.Product]
}

type searchDoneMsg struct {
	gen    int
	result catalog.Result[[]catalog.Product]
}

// FilterPanel owns the filter form. Its fields never touch the Store; only
// Submit and Cancel write products and loading.
type FilterPanel struct {
	store    *Store
	products catalog.ProductFetcher
	searcher catalog.Searcher
	env      Env

	title       textinput.Model
	description textinput.Model
	price       PriceRange
	focus       filterField

	baseline    []catalog.Product
	hasBaseline bool
	openToken   int

	// gen identifies the latest search; completions with an older gen are dropped.
	gen      int
	inFlight bool
	lastErr  error

	// writes counts searches started and product lists written. The host
	// compares it across an update to retire an older listing.
	writes int
}

func NewFilterPanel(store *Store, products catalog.ProductFetcher, searcher catalog.Searcher, env Env) *FilterPanel {
	title := textinput.New()
	title.Placeholder = "Product title..."
	title.Prompt = ""
	title.CharLimit = 80
	title.Width = 30
	title.Cursor.SetMode(cursor.CursorStatic)

	desc := textinput.New()
	desc.Placeholder = "Product description..."
	desc.Prompt = ""
	desc.CharLimit = 120
	desc.Width = 30
	desc.Cursor.SetMode(cursor.CursorStatic)

	return &FilterPanel{
		store:       store,
		products:    products,
		searcher:    searcher,
		env:         env,
		title:       title,
		description: desc,
	}
}

func (f *FilterPanel) Visible() bool { return f.store.State().FilterOpen() }

// Criteria builds the query from the current form values.
func (f *FilterPanel) Criteria() catalog.Criteria {
	return catalog.NewCriteria(f.title.Value(), f.description.Value(), f.price.Min(), f.price.Max())
}

func (f *FilterPanel) Price() *PriceRange { return &f.price }

func (f *FilterPanel) SetTitle(s string) { f.title.SetValue(s) }

func (f *FilterPanel) SetDescription(s string) { f.description.SetValue(s) }

func (f *FilterPanel) Baseline() ([]catalog.Product, bool) { return f.baseline, f.hasBaseline }

// Writes changes whenever the panel starts a search or writes products.
func (f *FilterPanel) Writes() int { return f.writes }

// Searching reports whether a search is waiting for its result.
func (f *FilterPanel) Searching() bool { return f.inFlight }

// LastErr is the failure of the last baseline fetch or search, if any.
func (f *FilterPanel) LastErr() error { return f.lastErr }

// Observe runs the panel's activation effect for a state change. The host
// calls it after every update with the state before and after.
func (f *FilterPanel) Observe(prev, next State) tea.Cmd {
	switch {
	case !prev.FilterOpen() && next.FilterOpen():
		return tea.Batch(f.fetchBaseline(), f.focusField(fieldTitle))
	case prev.FilterOpen() && !next.FilterOpen():
		f.title.Blur()
		f.description.Blur()
		f.supersede()
	}
	return nil
}

func (f *FilterPanel) fetchBaseline() tea.Cmd {
	f.openToken++
	token := f.openToken
	products, env := f.products, f.env
	return func() tea.Msg {
		ctx, cancel := env.context()
		defer cancel()
		list, err := products.FetchAllProducts(ctx)
		if err != nil {
			return baselineLoadedMsg{token: token, result: catalog.Fail[[]catalog.Product](err)}
		}
		return baselineLoadedMsg{token: token, result: catalog.Ok(list)}
	}
}

// Submit is the single confirm operation behind both the apply key and the
// commit key of the text fields.
func (f *FilterPanel) Submit() tea.Cmd {
	f.gen++
	gen := f.gen
	f.store.Dispatch(SetLoading{Loading: true})

	c := f.Criteria()
	if c.IsEmpty() {
		f.inFlight = false
		f.restoreBaseline()
		f.store.Dispatch(SetLoading{Loading: false})
		return nil
	}

	f.inFlight = true
	f.writes++
	searcher, env := f.searcher, f.env
	env.logger().Debug("search submitted", zap.Int("gen", gen), zap.Int("fields", c.Fields()))
	return func() tea.Msg {
		ctx, cancel := env.context()
		defer cancel()
		list, err := searcher.Search(ctx, c)
		if err != nil {
			return searchDoneMsg{gen: gen, result: catalog.Fail[[]catalog.Product](err)}
		}
		return searchDoneMsg{gen: gen, result: catalog.Ok(list)}
	}
}

// Cancel clears the form, puts the baseline back and closes the panel.
func (f *FilterPanel) Cancel() {
	f.title.SetValue("")
	f.description.SetValue("")
	f.price.Reset()
	f.focus = fieldTitle
	f.supersede()
	f.restoreBaseline()
	f.store.Dispatch(SetFilterPanel{Open: false})
}

// supersede invalidates any in-flight search and releases its loading flag.
func (f *FilterPanel) supersede() {
	f.gen++
	if f.inFlight {
		f.inFlight = false
		f.store.Dispatch(SetLoading{Loading: false})
	}
}

// restoreBaseline leaves products alone when no baseline has arrived yet.
func (f *FilterPanel) restoreBaseline() {
	if f.hasBaseline {
		f.writes++
		f.store.Dispatch(SetProducts{Products: f.baseline})
	}
}

func (f *FilterPanel) Update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case baselineLoadedMsg:
		if m.token != f.openToken {
			return nil
		}
		if !m.result.OK() {
			f.lastErr = m.result.Err
			f.env.logger().Warn("baseline fetch failed", zap.Error(m.result.Err))
			return nil
		}
		f.baseline = m.result.Value
		f.hasBaseline = true
	case searchDoneMsg:
		if m.gen != f.gen {
			f.env.logger().Debug("dropping superseded search", zap.Int("gen", m.gen), zap.Int("current", f.gen))
			return nil
		}
		f.inFlight = false
		if m.result.OK() {
			f.lastErr = nil
			f.writes++
			f.store.Dispatch(SetProducts{Products: m.result.Value})
		} else {
			f.lastErr = m.result.Err
			f.env.logger().Warn("search failed", zap.Error(m.result.Err))
		}
		f.store.Dispatch(SetLoading{Loading: false})
	case tea.KeyMsg:
		if !f.Visible() {
			return nil
		}
		return f.handleKey(m)
	}
	return nil
}

func (f *FilterPanel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Close):
		f.Cancel()
		return nil
	case key.Matches(msg, keys.Apply):
		return f.Submit()
	case key.Matches(msg, keys.NextField):
		return f.focusField((f.focus + 1) % fieldCount)
	case key.Matches(msg, keys.PrevField):
		return f.focusField((f.focus + fieldCount - 1) % fieldCount)
	}

	switch f.focus {
	case fieldTitle, fieldDescription:
		if key.Matches(msg, keys.Commit) {
			return f.Submit()
		}
		var cmd tea.Cmd
		if f.focus == fieldTitle {
			f.title, cmd = f.title.Update(msg)
		} else {
			f.description, cmd = f.description.Update(msg)
		}
		return cmd
	case fieldMinPrice, fieldMaxPrice:
		steps := 0
		switch {
		case key.Matches(msg, keys.StepDown):
			steps = -1
		case key.Matches(msg, keys.StepUp):
			steps = 1
		case key.Matches(msg, keys.BigStepDown):
			steps = -10
		case key.Matches(msg, keys.BigStepUp):
			steps = 10
		}
		if steps != 0 {
			f.nudge(steps)
		}
	}
	return nil
}

// nudge moves the focused handle, clamping big steps to the nearest
// acceptable position.
func (f *FilterPanel) nudge(steps int) {
	move := f.price.NudgeMin
	if f.focus == fieldMaxPrice {
		move = f.price.NudgeMax
	}
	dir := 1
	if steps < 0 {
		dir, steps = -1, -steps
	}
	for i := 0; i < steps; i++ {
		if !move(dir) {
			return
		}
	}
}

func (f *FilterPanel) focusField(field filterField) tea.Cmd {
	f.focus = field
	f.title.Blur()
	f.description.Blur()
	switch field {
	case fieldTitle:
		return f.title.Focus()
	case fieldDescription:
		return f.description.Focus()
	}
	return nil
}

func (f *FilterPanel) View(width int) string {
	if !f.Visible() {
		return ""
	}
	cur := f.env.currency()
	marker := func(field filterField) string {
		if f.focus == field {
			return selectedStyle.Render("▶ ")
		}
		return "  "
	}

	trackWidth := max(10, min(50, width-12))
	lines := []string{
		marker(fieldTitle) + labelStyle.Render("Title        ") + f.title.View(),
		marker(fieldDescription) + labelStyle.Render("Description  ") + f.description.View(),
		"",
		"  " + labelStyle.Render("Price: ") + priceStyle.Render(f.price.Label(cur)),
		"  " + mutedStyle.Render(fmt.Sprintf("%s%d", cur, 0)) + " " + trackStyle.Render(f.price.Track(trackWidth)) + " " +
			mutedStyle.Render(fmt.Sprintf("%s%d", cur, 1000)),
		marker(fieldMinPrice) + fmt.Sprintf("min %s%d", cur, f.price.Low()) + "   " +
			marker(fieldMaxPrice) + fmt.Sprintf("max %s%d", cur, f.price.High()),
		"",
		helpLine(keys.Apply, keys.Commit, keys.Close, keys.NextField),
	}

	pane := widgets.Pane{Title: "Filter & Search", Focused: true, Content: strings.Join(lines, "\n")}
	switch {
	case f.lastErr != nil:
		pane.Badge = "search failed"
		pane.Failed = true
	case f.hasBaseline:
		pane.Badge = fmt.Sprintf("%d products", len(f.baseline))
	}
	return pane.Render(width)
}
