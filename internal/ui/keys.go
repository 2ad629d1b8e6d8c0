package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap is the set of bindings shown in the footer
type keyMap struct {
	Focus  key.Binding
	Blur   key.Binding
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Clear  key.Binding
	Back   key.Binding
	Home   key.Binding
	Pager  key.Binding
	Reload key.Binding
	Help   key.Binding
	Quit   key.Binding

	// listings
	Trending key.Binding
	Popular  key.Binding
	Movies   key.Binding
	TVShows  key.Binding
	People   key.Binding
	Type     key.Binding
	Window   key.Binding
	Category key.Binding
	Genre    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Focus:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Blur:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave search")),
		Up:     key.NewBinding(key.WithKeys("up", "k", "ctrl+p"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "ctrl+n"), key.WithHelp("↓/j", "down")),
		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Clear:  key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear search")),
		Back:   key.NewBinding(key.WithKeys("b", "backspace"), key.WithHelp("b", "back")),
		Home:   key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "home")),
		Pager:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "full text")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Trending: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "trending")),
		Popular:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "popular")),
		Movies:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "movies")),
		TVShows:  key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "tv shows")),
		People:   key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "people")),
		Type:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "media type")),
		Window:   key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "day/week")),
		Category: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "category")),
		Genre:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "genre")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Open, k.Back, k.Pager, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Focus, k.Blur, k.Clear},
		{k.Up, k.Down, k.Open},
		{k.Back, k.Home, k.Reload, k.Pager},
		{k.Trending, k.Popular, k.Movies, k.TVShows, k.People},
		{k.Type, k.Window, k.Category, k.Genre},
		{k.Help, k.Quit},
	}
}

// searchHelp is the footer shown while typing
func (k keyMap) searchHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "pick")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open / search all")),
		k.Clear,
		k.Blur,
	}
}
