package home

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jask/shopfront/internal/catalog"
)

type unknownAction struct{}

func (unknownAction) isAction() {}

func TestTransition(t *testing.T) {
	products := sampleProducts()
	images := []catalog.Image{{ID: "s1", Ref: "banner.png"}}

	tests := []struct {
		name   string
		start  State
		action Action
		want   State
	}{
		{"open category", State{}, SetCategoryPanel{Open: true}, State{Panel: PanelCategory}},
		{"open category closes filter", State{Panel: PanelFilter}, SetCategoryPanel{Open: true}, State{Panel: PanelCategory}},
		{"close category", State{Panel: PanelCategory}, SetCategoryPanel{Open: false}, State{}},
		{"open filter closes category", State{Panel: PanelCategory}, SetFilterPanel{Open: true}, State{Panel: PanelFilter}},
		{"close filter while category closed", State{}, SetFilterPanel{Open: false}, State{}},
		{"close filter closes category too", State{Panel: PanelCategory}, SetFilterPanel{Open: false}, State{}},
		{"set products", State{Loading: true}, SetProducts{Products: products}, State{Loading: true, Products: products, HasProducts: true}},
		{"set empty products", State{}, SetProducts{Products: []catalog.Product{}}, State{Products: []catalog.Product{}, HasProducts: true}},
		{"set loading", State{}, SetLoading{Loading: true}, State{Loading: true}},
		{"clear loading", State{Loading: true}, SetLoading{Loading: false}, State{}},
		{"slider images", State{Panel: PanelFilter}, SetSliderImages{Images: images}, State{Panel: PanelFilter, SliderImages: images}},
		{"unknown action", State{Panel: PanelFilter, Loading: true}, unknownAction{}, State{Panel: PanelFilter, Loading: true}},
		{"nil action", State{Panel: PanelCategory}, nil, State{Panel: PanelCategory}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transition(tt.start, tt.action)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Transition mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTransitionDoesNotMutateInput(t *testing.T) {
	start := State{Panel: PanelCategory, Products: sampleProducts(), HasProducts: true}
	before := start
	_ = Transition(start, SetFilterPanel{Open: true})
	_ = Transition(start, SetProducts{Products: nil})
	if diff := cmp.Diff(before, start); diff != "" {
		t.Fatalf("input state changed (-before +after):\n%s", diff)
	}
}

func TestTransitionPanelsNeverBothOpen(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	actions := []func() Action{
		func() Action { return SetCategoryPanel{Open: rng.Intn(2) == 0} },
		func() Action { return SetFilterPanel{Open: rng.Intn(2) == 0} },
		func() Action { return SetLoading{Loading: rng.Intn(2) == 0} },
		func() Action { return SetProducts{Products: sampleProducts()[:rng.Intn(3)]} },
		func() Action { return SetSliderImages{} },
	}
	s := State{}
	for i := 0; i < 5000; i++ {
		a := actions[rng.Intn(len(actions))]()
		next := Transition(s, a)
		if next.CategoryOpen() && next.FilterOpen() {
			t.Fatalf("step %d: both panels open after %#v", i, a)
		}
		switch a := a.(type) {
		case SetCategoryPanel:
			if a.Open != next.CategoryOpen() || next.FilterOpen() {
				t.Fatalf("step %d: %#v gave panel %s", i, a, next.Panel)
			}
		case SetFilterPanel:
			if a.Open != next.FilterOpen() || next.CategoryOpen() {
				t.Fatalf("step %d: %#v gave panel %s", i, a, next.Panel)
			}
		default:
			if next.Panel != s.Panel {
				t.Fatalf("step %d: %#v changed panel %s -> %s", i, a, s.Panel, next.Panel)
			}
		}
		s = next
	}
}

func TestVisibilityString(t *testing.T) {
	for v, want := range map[Visibility]string{PanelClosed: "closed", PanelCategory: "category", PanelFilter: "filter"} {
		if got := v.String(); got != want {
			t.Errorf("Visibility(%d).String() = %q, want %q", v, got, want)
		}
	}
}
