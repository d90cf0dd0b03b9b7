package home

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategoryPanelFetchesOnce(t *testing.T) {
	src := newFakeSource()
	store := NewStore(State{})
	p := NewCategoryPanel(store, src, Env{})

	deliver(p, p.Init())
	require.Nil(t, p.Init())
	require.Equal(t, 1, src.catCalls)
	require.Equal(t, sampleCategories(), p.Categories())
	require.NoError(t, p.LastErr())
}

func TestCategoryPanelView(t *testing.T) {
	src := newFakeSource()
	store := NewStore(State{})
	p := NewCategoryPanel(store, src, Env{ImageBaseURL: "http://x/"})
	require.Equal(t, "", p.View(200))

	store.Dispatch(SetCategoryPanel{Open: true})
	require.Contains(t, p.View(200), "Loading categories")

	deliver(p, p.Init())
	view := p.View(200)
	require.Contains(t, view, "Shirts")
	require.Contains(t, view, "Bags")
	require.Contains(t, view, "http://x/uploads/categories/shoes.png")
}

func TestCategoryPanelFetchFailure(t *testing.T) {
	src := newFakeSource()
	src.catErr = errors.New("unreachable")
	store := NewStore(State{Panel: PanelCategory})
	p := NewCategoryPanel(store, src, Env{})

	deliver(p, p.Init())
	require.EqualError(t, p.LastErr(), "unreachable")
	require.Empty(t, p.Categories())
	view := p.View(80)
	require.Contains(t, view, "No Category")
	require.Contains(t, view, "fetch failed")
}

func TestCategoryPanelNavigate(t *testing.T) {
	src := newFakeSource()
	store := NewStore(State{})
	p := NewCategoryPanel(store, src, Env{})
	deliver(p, p.Init())

	require.Nil(t, p.Update(keyEnter), "keys are ignored while closed")

	store.Dispatch(SetCategoryPanel{Open: true})
	require.Nil(t, p.Update(keyRight))
	require.Nil(t, p.Update(keyRight))
	require.Nil(t, p.Update(keyRight), "cursor stops at the last category")
	require.Nil(t, p.Update(keyLeft))

	cmd := p.Update(keyEnter)
	require.NotNil(t, cmd)
	require.Equal(t, NavigateMsg{CategoryID: "c2", Name: "Shoes"}, cmd())
	require.True(t, store.State().CategoryOpen(), "navigation intent alone does not close the panel")
}

func TestCategoryPanelEscCloses(t *testing.T) {
	src := newFakeSource()
	store := NewStore(State{Panel: PanelCategory})
	p := NewCategoryPanel(store, src, Env{})

	require.Nil(t, p.Update(keyEsc))
	require.Equal(t, PanelClosed, store.State().Panel)
}
