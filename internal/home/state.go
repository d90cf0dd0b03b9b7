package home

import "github.com/jask/shopfront/internal/catalog"

// Visibility names the single panel that may be open at a time.
type Visibility int

const (
	PanelClosed Visibility = iota
	PanelCategory
	PanelFilter
)

func (v Visibility) String() string {
	switch v {
	case PanelCategory:
		return "category"
	case PanelFilter:
		return "filter"
	default:
		return "closed"
	}
}

// State is the shared home screen state. It is only changed through Transition.
type State struct {
	Panel        Visibility
	Products     []catalog.Product
	HasProducts  bool
	Loading      bool
	SliderImages []catalog.Image
}

func (s State) CategoryOpen() bool { return s.Panel == PanelCategory }

func (s State) FilterOpen() bool { return s.Panel == PanelFilter }

// Action is the closed set of state transitions.
type Action interface {
	isAction()
}

type SetCategoryPanel struct{ Open bool }

type SetFilterPanel struct{ Open bool }

type SetProducts struct{ Products []catalog.Product }

type SetLoading struct{ Loading bool }

type SetSliderImages struct{ Images []catalog.Image }

func (SetCategoryPanel) isAction() {}
func (SetFilterPanel) isAction()   {}
func (SetProducts) isAction()      {}
func (SetLoading) isAction()       {}
func (SetSliderImages) isAction()  {}

// Transition returns the state after applying a. It has no side effects.
// Opening or closing one panel always leaves the other one closed.
func Transition(s State, a Action) State {
	switch a := a.(type) {
	case SetCategoryPanel:
		s.Panel = PanelClosed
		if a.Open {
			s.Panel = PanelCategory
		}
	case SetFilterPanel:
		s.Panel = PanelClosed
		if a.Open {
			s.Panel = PanelFilter
		}
	case SetProducts:
		s.Products = a.Products
		s.HasProducts = true
	case SetLoading:
		s.Loading = a.Loading
	case SetSliderImages:
		s.SliderImages = a.Images
	}
	return s
}
