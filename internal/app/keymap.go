package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the Normal-mode keybindings. Entry modes (commit, stash)
// capture raw text and only recognize enter/esc; confirm mode recognizes
// y/n plus the enter/esc aliases.
type KeyMap struct {
	Up   key.Binding
	Down key.Binding

	Stage      key.Binding
	StageAll   key.Binding
	Commit     key.Binding
	Stash      key.Binding
	StashList  key.Binding
	StashApply key.Binding

	Preview     key.Binding
	TogglePanel key.Binding
	Refresh     key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/↑", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/↓", "down")),

		Stage:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stage/unstage")),
		StageAll:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "stage/unstage all")),
		Commit:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "commit")),
		Stash:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "stash changes")),
		StashList:  key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "list stashes")),
		StashApply: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "apply latest stash")),

		Preview:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "diff preview")),
		TogglePanel: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "toggle preview panel")),
		Refresh:     key.NewBinding(key.WithKeys("r", "ctrl+r"), key.WithHelp("r", "refresh")),
		Help:        key.NewBinding(key.WithKeys("h", "?"), key.WithHelp("h", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
