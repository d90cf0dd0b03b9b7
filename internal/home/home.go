package home

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/shopfront/internal/catalog"
	"github.com/jask/shopfront/internal/widgets"
)

// Deps are the collaborators of the home screen.
type Deps struct {
	Categories catalog.CategoryFetcher
	Products   catalog.ProductFetcher
	Searcher   catalog.Searcher
	Router     Router
}

// Model is the bubbletea root model. It hosts both panels and renders the
// product grid from the Store.
type Model struct {
	store    *Store
	deps     Deps
	env      Env
	category *CategoryPanel
	filter   *FilterPanel
	spinner  spinner.Model

	sliderImages []catalog.Image

	scopeID         string
	scopeName       string
	pendingScope    string
	pendingName     string
	listingInFlight bool

	status    string
	statusErr bool
	width     int
	height    int
}

func New(store *Store, deps Deps, env Env, sliderImages []catalog.Image) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = priceStyle
	store.Subscribe(logTransitions(env.logger()))
	return &Model{
		store:        store,
		deps:         deps,
		env:          env,
		category:     NewCategoryPanel(store, deps.Categories, env),
		filter:       NewFilterPanel(store, deps.Products, deps.Searcher, env),
		spinner:      sp,
		sliderImages: sliderImages,
		width:        80,
	}
}

func (m *Model) Store() *Store { return m.store }

func (m *Model) CategoryPanel() *CategoryPanel { return m.category }

func (m *Model) FilterPanel() *FilterPanel { return m.filter }

func (m *Model) Init() tea.Cmd {
	if len(m.sliderImages) > 0 {
		m.store.Dispatch(SetSliderImages{Images: m.sliderImages})
	}
	return tea.Batch(m.category.Init(), m.spinner.Tick, m.requestListing("", ""))
}

// Update runs the message through the model, then lets the filter panel
// react to any visibility change it caused. A filter write retires the
// listing in flight so it cannot land on top of the filter's result.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.store.State()
	writes := m.filter.Writes()
	cmd := m.update(msg)
	if m.filter.Writes() != writes {
		m.supersedeListing()
	} else if m.listingInFlight && !m.store.State().Loading {
		m.store.Dispatch(SetLoading{Loading: true})
	}
	return m, tea.Batch(cmd, m.filter.Observe(before, m.store.State()))
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd
	case categoriesLoadedMsg:
		return m.category.Update(msg)
	case baselineLoadedMsg, searchDoneMsg:
		prevErr := m.filter.LastErr()
		cmd := m.filter.Update(msg)
		if err := m.filter.LastErr(); err != nil && err != prevErr {
			m.setStatus("search: "+err.Error(), true)
		}
		return cmd
	case NavigateMsg:
		m.store.Dispatch(SetCategoryPanel{Open: false})
		return m.requestListing(msg.CategoryID, msg.Name)
	case ListingMsg:
		m.applyListing(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	state := m.store.State()
	if state.FilterOpen() {
		return m.filter.Update(msg)
	}
	switch {
	case key.Matches(msg, keys.Quit):
		return tea.Quit
	case key.Matches(msg, keys.Categories):
		m.store.Dispatch(SetCategoryPanel{Open: !state.CategoryOpen()})
		return nil
	case key.Matches(msg, keys.Filter):
		m.store.Dispatch(SetFilterPanel{Open: true})
		return nil
	}
	if state.CategoryOpen() {
		return m.category.Update(msg)
	}
	if key.Matches(msg, keys.AllProducts) && m.scopeID != "" {
		return m.requestListing("", "")
	}
	return nil
}

func (m *Model) requestListing(categoryID, name string) tea.Cmd {
	m.pendingScope = categoryID
	m.pendingName = name
	m.listingInFlight = true
	m.store.Dispatch(SetLoading{Loading: true})
	if categoryID == "" || m.deps.Router == nil {
		m.pendingScope = ""
		m.pendingName = ""
		return loadAll(m.deps.Products, m.env)
	}
	return m.deps.Router.Navigate(categoryID)
}

// supersedeListing drops the pending listing. Loading stays raised while a
// search still owns it.
func (m *Model) supersedeListing() {
	if !m.listingInFlight {
		return
	}
	m.listingInFlight = false
	m.env.logger().Debug("dropping superseded listing", zap.String("category", m.pendingScope))
	if !m.filter.Searching() && m.store.State().Loading {
		m.store.Dispatch(SetLoading{Loading: false})
	}
}

func (m *Model) applyListing(msg ListingMsg) {
	if !m.listingInFlight || msg.CategoryID != m.pendingScope {
		return
	}
	m.listingInFlight = false
	if msg.Result.OK() {
		m.scopeID, m.scopeName = m.pendingScope, m.pendingName
		m.store.Dispatch(SetProducts{Products: msg.Result.Value})
		m.setStatus("", false)
	} else {
		m.env.logger().Warn("listing fetch failed", zap.String("category", msg.CategoryID), zap.Error(msg.Result.Err))
		m.setStatus("listing: "+msg.Result.Err.Error(), true)
	}
	m.store.Dispatch(SetLoading{Loading: false})
}

// logTransitions reports panel and loading changes at debug level.
func logTransitions(log *zap.Logger) Listener {
	return func(prev, next State) {
		if prev.Panel == next.Panel && prev.Loading == next.Loading {
			return
		}
		log.Debug("home state",
			zap.Stringer("panel", next.Panel),
			zap.Stringer("prev_panel", prev.Panel),
			zap.Bool("loading", next.Loading))
	}
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m *Model) View() string {
	state := m.store.State()
	width := max(40, m.width)

	parts := []string{m.renderHeader(state)}
	if v := m.category.View(width); v != "" {
		parts = append(parts, v)
	}
	if v := m.filter.View(width); v != "" {
		parts = append(parts, v)
	}
	parts = append(parts, m.renderGrid(state, width), m.renderFooter(state))
	return strings.Join(parts, "\n")
}

func (m *Model) renderHeader(state State) string {
	title := headerStyle.Render("shopfront")
	if m.scopeName != "" {
		title += mutedStyle.Render(" › ") + headerStyle.Render(m.scopeName)
	}
	if n := len(state.SliderImages); n > 0 {
		title += mutedStyle.Render(fmt.Sprintf("  %d featured", n))
	}
	if state.Loading {
		title += "  " + m.spinner.View() + mutedStyle.Render(" loading")
	}
	return title
}

func (m *Model) renderGrid(state State, width int) string {
	pane := widgets.Pane{Title: "Products"}
	switch {
	case !state.HasProducts:
		pane.Content = mutedStyle.Render("Loading products…")
	case len(state.Products) == 0:
		pane.Content = "No product found"
		pane.Badge = "0"
	default:
		pane.Badge = fmt.Sprintf("%d", len(state.Products))
		inner := width - 4
		titleW := max(12, inner*2/5)
		priceW := 10
		descW := max(0, inner-titleW-priceW)
		rows := make([]string, 0, len(state.Products))
		for _, p := range state.Products {
			rows = append(rows, widgets.Cell(p.Title, titleW)+
				widgets.Cell(mutedStyle.Render(p.Description), descW)+
				priceStyle.Render(formatPrice(m.env.currency(), p.Price)))
		}
		if m.height > 0 {
			limit := max(3, m.height-12)
			if len(rows) > limit {
				more := len(rows) - limit
				rows = append(rows[:limit], mutedStyle.Render(fmt.Sprintf("… %d more", more)))
			}
		}
		pane.Content = strings.Join(rows, "\n")
	}
	return pane.Render(width)
}

func (m *Model) renderFooter(state State) string {
	var help string
	switch {
	case state.FilterOpen():
		help = helpLine(keys.Apply, keys.Close, keys.NextField)
	case state.CategoryOpen():
		help = helpLine(keys.Select, keys.Categories, keys.Filter, keys.Close)
	default:
		help = helpLine(keys.Categories, keys.Filter, keys.AllProducts, keys.Quit)
	}
	if m.status == "" {
		return help
	}
	style := statusStyle
	if m.statusErr {
		style = statusErr
	}
	return help + "  " + style.Render(" "+m.status+" ")
}

func formatPrice(currency string, price float64) string {
	if price == float64(int64(price)) {
		return fmt.Sprintf("%s%d", currency, int64(price))
	}
	return fmt.Sprintf("%s%.2f", currency, price)
}
