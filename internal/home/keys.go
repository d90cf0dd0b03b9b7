package home

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit        key.Binding
	Categories  key.Binding
	Filter      key.Binding
	AllProducts key.Binding
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Select      key.Binding
	Close       key.Binding
	NextField   key.Binding
	PrevField   key.Binding
	Apply       key.Binding
	Commit      key.Binding
	StepDown    key.Binding
	StepUp      key.Binding
	BigStepDown key.Binding
	BigStepUp   key.Binding
}

var keys = keyMap{
	Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Categories:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "categories")),
	Filter:      key.NewBinding(key.WithKeys("f", "/"), key.WithHelp("f", "filter & search")),
	AllProducts: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "all products")),
	Up:          key.NewBinding(key.WithKeys("up", "k")),
	Down:        key.NewBinding(key.WithKeys("down", "j")),
	Left:        key.NewBinding(key.WithKeys("left", "h")),
	Right:       key.NewBinding(key.WithKeys("right", "l")),
	Select:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Close:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	NextField:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	PrevField:   key.NewBinding(key.WithKeys("shift+tab")),
	Apply:       key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "apply")),
	Commit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
	StepDown:    key.NewBinding(key.WithKeys("left")),
	StepUp:      key.NewBinding(key.WithKeys("right")),
	BigStepDown: key.NewBinding(key.WithKeys("shift+left", "pgdown")),
	BigStepUp:   key.NewBinding(key.WithKeys("shift+right", "pgup")),
}

func helpLine(bindings ...key.Binding) string {
	out := ""
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		if out != "" {
			out += "  "
		}
		out += keyStyle.Render(h.Key) + " " + mutedStyle.Render(h.Desc)
	}
	return out
}
