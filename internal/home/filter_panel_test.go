package home

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/shopfront/internal/catalog"
)

type filterHarness struct {
	src   *fakeSource
	store *Store
	panel *FilterPanel
}

func newFilterHarness() *filterHarness {
	src := newFakeSource()
	store := NewStore(State{})
	return &filterHarness{src: src, store: store, panel: NewFilterPanel(store, src, src, Env{})}
}

// setPanel dispatches a visibility change and runs the activation effect the
// way the host does.
func (h *filterHarness) setPanel(open bool) {
	before := h.store.State()
	h.store.Dispatch(SetFilterPanel{Open: open})
	deliver(h.panel, h.panel.Observe(before, h.store.State()))
}

func (h *filterHarness) key(k tea.KeyMsg) {
	deliver(h.panel, h.panel.Update(k))
}

func TestFilterPanelOpenFetchesBaseline(t *testing.T) {
	h := newFilterHarness()
	h.setPanel(true)

	require.Equal(t, 1, h.src.allCalls)
	baseline, ok := h.panel.Baseline()
	require.True(t, ok)
	require.Equal(t, sampleProducts(), baseline)
	require.False(t, h.store.State().HasProducts, "opening must not replace the listing")
	require.Contains(t, h.panel.View(80), "3 products")
}

func TestFilterPanelHiddenWhenClosed(t *testing.T) {
	h := newFilterHarness()
	require.Equal(t, "", h.panel.View(80))
	require.Nil(t, h.panel.Update(runes("x")))
	require.True(t, h.panel.Criteria().IsEmpty())
}

func TestFilterPanelEmptySubmitRestoresBaseline(t *testing.T) {
	h := newFilterHarness()
	h.setPanel(true)
	h.store.Dispatch(SetProducts{Products: []catalog.Product{{ID: "other"}}})
	loading := loadingLog(h.store)

	cmd := h.panel.Submit()

	require.Nil(t, cmd)
	require.Empty(t, h.src.searches)
	require.Equal(t, sampleProducts(), h.store.State().Products)
	require.Equal(t, []bool{true, false}, *loading)
}

func TestFilterPanelEmptySubmitWithoutBaseline(t *testing.T) {
	h := newFilterHarness()
	h.src.allErr = errors.New("down")
	h.setPanel(true)
	h.store.Dispatch(SetProducts{Products: []catalog.Product{{ID: "other"}}})

	require.Nil(t, h.panel.Submit())
	require.Equal(t, []catalog.Product{{ID: "other"}}, h.store.State().Products)
	require.False(t, h.store.State().Loading)
	require.Error(t, h.panel.LastErr())
}

func TestFilterPanelSubmitSendsOnlyPopulatedFields(t *testing.T) {
	h := newFilterHarness()
	shirts := []catalog.Product{sampleProducts()[0]}
	h.src.search = func(catalog.Criteria) ([]catalog.Product, error) { return shirts, nil }
	h.setPanel(true)
	loading := loadingLog(h.store)

	h.panel.SetTitle("  shirt ")
	deliver(h.panel, h.panel.Submit())

	require.Len(t, h.src.searches, 1)
	c := h.src.searches[0]
	require.NotNil(t, c.Title)
	require.Equal(t, "shirt", *c.Title)
	require.Nil(t, c.Description)
	require.Nil(t, c.MinPrice)
	require.Nil(t, c.MaxPrice)
	require.Equal(t, shirts, h.store.State().Products)
	require.Equal(t, []bool{true, false}, *loading)
}

func TestFilterPanelSubmitWithPriceRange(t *testing.T) {
	h := newFilterHarness()
	h.setPanel(true)

	h.panel.SetDescription("cotton")
	require.True(t, h.panel.Price().SetMin(100))
	require.True(t, h.panel.Price().SetMax(500))
	deliver(h.panel, h.panel.Submit())

	require.Len(t, h.src.searches, 1)
	c := h.src.searches[0]
	require.Nil(t, c.Title)
	require.Equal(t, "cotton", *c.Description)
	require.Equal(t, 100, *c.MinPrice)
	require.Equal(t, 500, *c.MaxPrice)
}

func TestFilterPanelSearchFailureReleasesLoading(t *testing.T) {
	h := newFilterHarness()
	h.src.search = func(catalog.Criteria) ([]catalog.Product, error) { return nil, errors.New("boom") }
	h.setPanel(true)
	h.store.Dispatch(SetProducts{Products: sampleProducts()})
	loading := loadingLog(h.store)

	h.panel.SetTitle("bag")
	deliver(h.panel, h.panel.Submit())

	require.Equal(t, []bool{true, false}, *loading)
	require.Equal(t, sampleProducts(), h.store.State().Products)
	require.EqualError(t, h.panel.LastErr(), "boom")
	require.Contains(t, h.panel.View(80), "search failed")
}

func TestFilterPanelCancelRestoresBaseline(t *testing.T) {
	h := newFilterHarness()
	h.src.search = func(catalog.Criteria) ([]catalog.Product, error) { return nil, nil }
	h.setPanel(true)

	h.panel.SetTitle("nothing matches")
	h.panel.Price().SetMin(200)
	deliver(h.panel, h.panel.Submit())
	require.Empty(t, h.store.State().Products)

	h.panel.Cancel()

	require.Equal(t, sampleProducts(), h.store.State().Products)
	require.Equal(t, PanelClosed, h.store.State().Panel)
	require.True(t, h.panel.Criteria().IsEmpty())
	require.Equal(t, PriceRange{}, *h.panel.Price())
}

func TestFilterPanelDropsSupersededSearch(t *testing.T) {
	h := newFilterHarness()
	h.src.search = func(c catalog.Criteria) ([]catalog.Product, error) {
		return []catalog.Product{{ID: *c.Title}}, nil
	}
	h.setPanel(true)

	h.panel.SetTitle("first")
	first := h.panel.Submit()
	h.panel.SetTitle("second")
	second := h.panel.Submit()

	deliver(h.panel, second)
	deliver(h.panel, first)

	require.Equal(t, []catalog.Product{{ID: "second"}}, h.store.State().Products)
	require.False(t, h.store.State().Loading)
}

func TestFilterPanelCancelDiscardsInFlightSearch(t *testing.T) {
	h := newFilterHarness()
	h.src.search = func(catalog.Criteria) ([]catalog.Product, error) {
		return []catalog.Product{{ID: "late"}}, nil
	}
	h.setPanel(true)

	h.panel.SetTitle("shoes")
	pending := h.panel.Submit()
	require.True(t, h.store.State().Loading)

	h.panel.Cancel()
	require.False(t, h.store.State().Loading)

	deliver(h.panel, pending)
	require.Equal(t, sampleProducts(), h.store.State().Products)
	require.False(t, h.store.State().Loading)
}

func TestFilterPanelCloseReleasesLoading(t *testing.T) {
	h := newFilterHarness()
	h.setPanel(true)
	h.panel.SetTitle("shoes")
	pending := h.panel.Submit()

	h.setPanel(false)
	require.False(t, h.store.State().Loading)
	deliver(h.panel, pending)
	require.False(t, h.store.State().HasProducts)
}

func TestFilterPanelReopen(t *testing.T) {
	h := newFilterHarness()
	h.setPanel(true)
	h.setPanel(false)

	h.src.all = sampleProducts()[:1]
	h.setPanel(true)

	require.Equal(t, 2, h.src.allCalls)
	baseline, _ := h.panel.Baseline()
	require.Len(t, baseline, 1)
	require.True(t, h.store.State().FilterOpen())
}

func TestFilterPanelFailedRefreshKeepsBaseline(t *testing.T) {
	h := newFilterHarness()
	h.setPanel(true)
	h.setPanel(false)

	h.src.allErr = errors.New("offline")
	h.setPanel(true)

	baseline, ok := h.panel.Baseline()
	require.True(t, ok)
	require.Equal(t, sampleProducts(), baseline)
	require.EqualError(t, h.panel.LastErr(), "offline")
}

func TestFilterPanelDropsStaleBaseline(t *testing.T) {
	h := newFilterHarness()
	before := h.store.State()
	h.store.Dispatch(SetFilterPanel{Open: true})
	stale := h.panel.Observe(before, h.store.State())
	h.setPanel(false)

	h.src.all = sampleProducts()[:2]
	h.setPanel(true)
	h.src.all = sampleProducts()[:1]
	deliver(h.panel, stale)

	baseline, _ := h.panel.Baseline()
	require.Len(t, baseline, 2)
}

func TestFilterPanelKeyboard(t *testing.T) {
	h := newFilterHarness()
	h.setPanel(true)

	h.key(runes("shirt"))
	h.key(keyTab)
	h.key(runes("cotton"))
	h.key(keyTab)
	for i := 0; i < 3; i++ {
		h.key(keyRight)
	}
	h.key(keyTab)
	h.key(keyPgDown)
	h.key(keyShiftTab)
	h.key(keyShiftRight)

	require.Equal(t, 130, h.panel.Price().Min())
	require.Equal(t, 900, h.panel.Price().Max())
	require.Contains(t, h.panel.View(80), "$130 - $900")

	h.key(keyCtrlS)
	require.Len(t, h.src.searches, 1)
	c := h.src.searches[0]
	require.Equal(t, "shirt", *c.Title)
	require.Equal(t, "cotton", *c.Description)
	require.Equal(t, 130, *c.MinPrice)
	require.Equal(t, 900, *c.MaxPrice)

	h.key(keyEsc)
	require.Equal(t, PanelClosed, h.store.State().Panel)
	require.True(t, h.panel.Criteria().IsEmpty())
}

func TestFilterPanelEnterSubmitsFromTextField(t *testing.T) {
	h := newFilterHarness()
	h.setPanel(true)
	h.key(runes("bag"))
	h.key(keyEnter)
	require.Len(t, h.src.searches, 1)

	h.key(keyTab)
	h.key(keyTab)
	h.key(keyEnter)
	require.Len(t, h.src.searches, 1, "enter on a price handle does not submit")
}
