package outline

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/mattsolo1/grove-core/tui/keymap"
)

// KeyMap defines the keybindings for the outline TUI. Navigation, confirm,
// back, help and quit come from the shared base keymap.
type KeyMap struct {
	keymap.Base
	GoToTop    key.Binding
	GoToBottom key.Binding
	Fold       key.Binding
	ToggleView key.Binding
	Toggle     key.Binding
	Raise      key.Binding
	Lower      key.Binding
	Search     key.Binding
	Filter     key.Binding
	Sort       key.Binding
	Group      key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Raise, k.Lower, k.Search, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	baseHelp := k.Base.FullHelp()
	return append(baseHelp,
		[]key.Binding{k.GoToTop, k.GoToBottom, k.Fold, k.ToggleView},
		[]key.Binding{k.Toggle, k.Raise, k.Lower},
		[]key.Binding{k.Search, k.Filter, k.Sort, k.Group},
	)
}

var keys = KeyMap{
	Base: keymap.NewBase(),
	GoToTop: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "go to top"),
	),
	GoToBottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "go to bottom"),
	),
	Fold: key.NewBinding(
		key.WithKeys("enter", " ", "tab"),
		key.WithHelp("enter", "fold/unfold"),
	),
	ToggleView: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "outline/groups"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "toggle done"),
	),
	Raise: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "raise priority"),
	),
	Lower: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "lower priority"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "keyword"),
	),
	Filter: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "cycle filter"),
	),
	Sort: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "cycle sort"),
	),
	Group: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "cycle grouping"),
	),
}
