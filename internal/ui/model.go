package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"cinegrip/internal/config"
	"cinegrip/internal/domain"
	"cinegrip/internal/eventbus"
	"cinegrip/internal/metrics"
	"cinegrip/internal/search"
	"cinegrip/internal/ui/router"
	"cinegrip/internal/ui/services/navigation"
	"cinegrip/internal/ui/services/pointer"
	"cinegrip/internal/ui/views"
)

// statusTTL is how long a status message stays on the title line
const statusTTL = 4 * time.Second

// Deps are the collaborators of the Model
type Deps struct {
	Config  *config.Config
	Catalog Catalog
	Lookup  search.Lookup // defaults to Catalog when it can look up
	Bus     eventbus.EventBus
	Metrics *metrics.Search
	Log     *logrus.Entry
	Clock   search.Clock // nil means the wall clock
}

// Model represents the UI state
type Model struct {
	config  *config.Config
	catalog Catalog
	bus     eventbus.EventBus
	log     *logrus.Entry

	// search box
	input     textinput.Model
	search    *search.Controller
	hub       *pointer.Hub
	focused   bool
	highlight int // -1 when no suggestion is highlighted

	// body
	router      *router.Router
	screen      screen
	list        *navigation.Service
	loadedVisit uint64
	cancelLoad  context.CancelFunc

	// UI-specific state
	width       int
	height      int
	help        help.Model
	keys        keyMap
	spinner     spinner.Model
	renderer    *views.Renderer
	helpContent *HelpRenderer
	pager       *PagerOps
	layout      views.Layout
	showHelp    bool
	popup       string // replaces the help text in the popup when set
	inPagerMode bool // tracks if we're currently in pager mode
	status      string
	statusSeq   int
	quitting    bool
}

// NewModel creates a new UI model
func NewModel(deps Deps) *Model {
	cfg := deps.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	log := deps.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	lookup := deps.Lookup
	if lookup == nil {
		if l, ok := deps.Catalog.(search.Lookup); ok {
			lookup = l
		}
	}

	routes := search.DefaultRoutes()
	nav := router.New(routes, deps.Bus, deps.Metrics, log.WithField("component", "router"))

	ti := textinput.New()
	ti.Prompt = "Search: "
	ti.Placeholder = "movies, TV shows, people"
	ti.CharLimit = 120

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	m := &Model{
		config:      cfg,
		catalog:     deps.Catalog,
		bus:         deps.Bus,
		log:         log.WithField("component", "ui"),
		input:       ti,
		highlight:   -1,
		hub:         pointer.NewHub(),
		router:      nav,
		list:        navigation.NewService(),
		help:        help.New(),
		keys:        newKeyMap(),
		spinner:     sp,
		renderer:    views.NewRenderer(),
		helpContent: NewHelpRenderer(),
		pager:       NewPagerOps(),
	}

	m.search = search.New(lookup, nav, search.Options{
		Delay:   cfg.Search.DebounceDelay(),
		Clock:   deps.Clock,
		Routes:  routes,
		Log:     log.WithField("component", "search"),
		Metrics: deps.Metrics,
		Bus:     deps.Bus,
	})

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
	m.SetDispatch(p.Send)
}

// SetDispatch sets how timer messages reach the program
func (m *Model) SetDispatch(fn func(tea.Msg)) {
	m.search.SetDispatch(fn)
}

// Search returns the search controller
func (m *Model) Search() *search.Controller {
	return m.search
}

// Router returns the router
func (m *Model) Router() *router.Router {
	return m.router
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.syncRoute())
}

// Close releases the search controller and cancels pending loads
func (m *Model) Close() {
	m.search.Close()
	if m.cancelLoad != nil {
		m.cancelLoad()
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-len(m.input.Prompt)-2, 10)
		m.updateViewportHeight()

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}
		cmds = append(cmds, m.handleKey(msg))

	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))

	case spinner.TickMsg:
		if m.inPagerMode {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	default:
		if cmd := m.search.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		cmds = append(cmds, m.handleNonKeyboardMsg(msg))
	}

	if m.quitting {
		return m, tea.Quit
	}

	cmds = append(cmds, m.syncRoute())
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.showHelp {
		switch msg.String() {
		case "esc", "?", "q":
			m.showHelp = false
			m.popup = ""
		case "ctrl+c":
			m.quit()
		}
		return nil
	}

	if m.focused {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quit()
	case key.Matches(msg, m.keys.Focus):
		return m.focus()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Up):
		m.list.Navigate(navigation.DirectionUp)
	case key.Matches(msg, m.keys.Down):
		m.list.Navigate(navigation.DirectionDown)
	case msg.String() == "pgup":
		m.list.Navigate(navigation.DirectionPageUp)
	case msg.String() == "pgdown":
		m.list.Navigate(navigation.DirectionPageDown)
	case msg.String() == "g" || msg.String() == "home":
		m.list.Navigate(navigation.DirectionHome)
	case msg.String() == "G" || msg.String() == "end":
		m.list.Navigate(navigation.DirectionEnd)
	case key.Matches(msg, m.keys.Open):
		m.openListItem()
	case key.Matches(msg, m.keys.Back):
		m.router.Back()
	case key.Matches(msg, m.keys.Home):
		m.router.Home()
	case key.Matches(msg, m.keys.Reload):
		m.loadedVisit = 0
	case key.Matches(msg, m.keys.Pager):
		return m.openPager()
	case key.Matches(msg, m.keys.Trending):
		m.router.GoTo(router.TrendingPath("all", "week"), nil)
	case key.Matches(msg, m.keys.Popular):
		m.router.GoTo(router.PopularPath(domain.KindMovie), nil)
	case key.Matches(msg, m.keys.Movies):
		m.router.GoTo(router.CategoryPath(domain.KindMovie, "popular"), nil)
	case key.Matches(msg, m.keys.TVShows):
		m.router.GoTo(router.CategoryPath(domain.KindTV, "popular"), nil)
	case key.Matches(msg, m.keys.People):
		m.router.GoTo(router.PeoplePath, nil)
	case key.Matches(msg, m.keys.Type):
		return m.cycleType()
	case key.Matches(msg, m.keys.Window):
		return m.cycleWindow()
	case key.Matches(msg, m.keys.Category):
		return m.cycleCategory()
	case key.Matches(msg, m.keys.Genre):
		return m.cycleGenre()
	case msg.String() == "esc":
		m.search.Dismiss()
	}
	return nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	st := m.search.State()

	switch msg.String() {
	case "ctrl+c":
		m.quit()
		return nil
	case "esc":
		m.search.Dismiss()
		m.blur()
		return nil
	case "up", "ctrl+p":
		// moving up from the first row returns to the free text
		if m.highlight >= 0 {
			m.highlight--
		}
		return nil
	case "down", "ctrl+n", "tab":
		if st.Visible && m.highlight < len(st.Suggestions)-1 {
			m.highlight++
		}
		return nil
	case "ctrl+u":
		m.search.Clear()
		m.input.SetValue("")
		m.highlight = -1
		return nil
	case "enter":
		navigated := false
		if st.Visible && m.highlight >= 0 && m.highlight < len(st.Suggestions) {
			if err := m.search.SelectIndex(m.highlight); err != nil {
				m.log.WithError(err).Warn("suggestion selection failed")
			} else {
				navigated = true
			}
		} else {
			navigated = m.search.Submit()
		}
		if navigated {
			m.input.SetValue("")
			m.highlight = -1
			m.blur()
		}
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != st.Query {
		m.search.SetQuery(value)
		m.highlight = -1
	}
	return cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	ev, ok := pointer.FromMouse(msg)
	if !ok {
		return nil
	}

	idx, onSuggestion := m.layout.SuggestionAt(ev.X, ev.Y)
	onInput := m.layout.Input.Contains(ev.X, ev.Y)

	// outside presses dismiss the suggestions through the hub
	m.hub.Dispatch(ev)

	switch {
	case onSuggestion && m.search.State().Visible:
		if err := m.search.SelectIndex(idx); err != nil {
			m.log.WithError(err).Debug("click on stale suggestion row")
			return nil
		}
		m.input.SetValue("")
		m.highlight = -1
		m.blur()
	case onInput && !m.focused:
		return m.focus()
	}
	return nil
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case EventMsg:
		return m.handleEvent(msg.Event)

	case listLoadedMsg:
		if !m.current(msg.visit) {
			return nil
		}
		m.screen.loading = false
		m.screen.err = msg.err
		m.screen.entries = msg.items
		m.list.Reset(len(msg.items))

	case resultsLoadedMsg:
		if !m.current(msg.visit) {
			return nil
		}
		m.screen.loading = false
		m.screen.err = msg.err
		m.screen.results = msg.results
		m.list.Reset(len(msg.results))

	case workLoadedMsg:
		if !m.current(msg.visit) {
			return nil
		}
		m.screen.loading = false
		m.screen.err = msg.err
		m.screen.work = msg.work
		if msg.work != nil {
			m.list.Reset(len(msg.work.Similar))
		}
		m.updateViewportHeight()

	case personLoadedMsg:
		if !m.current(msg.visit) {
			return nil
		}
		m.screen.loading = false
		m.screen.err = msg.err
		m.screen.person = msg.person
		if msg.person != nil {
			m.list.Reset(len(msg.person.Credits))
		}
		m.updateViewportHeight()

	case pagerMsg:
		if msg.err != nil {
			// Pager failed, fall back to the popup
			m.log.WithError(msg.err).Warn("pager failed, showing popup instead")
			m.popup = msg.content
			m.showHelp = true
		}

	case pauseRenderingMsg:
		m.inPagerMode = true

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m.spinner.Tick

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
	}
	return nil
}

func (m *Model) handleEvent(ev eventbus.DomainEvent) tea.Cmd {
	switch e := ev.(type) {
	case eventbus.LookupFailedEvent:
		return m.setStatus(fmt.Sprintf("Search failed: %v", e.Err))
	case eventbus.ErrorEvent:
		return m.setStatus(e.Message)
	case eventbus.ConfigSavedEvent:
		return m.setStatus("Saved " + e.Path)
	}
	return nil
}

func (m *Model) setStatus(s string) tea.Cmd {
	m.status = s
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

// current reports whether a load result still belongs to the visible route
func (m *Model) current(visit uint64) bool {
	if visit != m.router.Current().Visit {
		m.log.WithField("visit", visit).Debug("dropping data for a route the user left")
		return false
	}
	return true
}

// syncRoute starts loading the current route when it changed
func (m *Model) syncRoute() tea.Cmd {
	route := m.router.Current()
	if route.Visit == m.loadedVisit {
		return nil
	}
	m.loadedVisit = route.Visit

	if m.cancelLoad != nil {
		m.cancelLoad()
	}
	m.screen = screen{route: route, loading: true}
	m.list.Reset(0)
	m.updateViewportHeight()

	if m.catalog == nil {
		m.screen.loading = false
		m.screen.err = errors.New("no catalog configured")
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancelLoad = cancel
	return loadCmd(ctx, m.catalog, route)
}

func (m *Model) focus() tea.Cmd {
	m.focused = true
	m.search.Activate(m.hub)
	return m.input.Focus()
}

func (m *Model) blur() {
	m.focused = false
	m.input.Blur()
	m.search.Deactivate()
}

func (m *Model) quit() {
	m.quitting = true
	m.Close()
}

func (m *Model) openListItem() {
	targets := m.screen.targets()
	cursor := m.list.Cursor()
	if cursor >= len(targets) {
		return
	}
	intent, err := search.DefaultRoutes().DetailIntent(targets[cursor])
	if err != nil {
		m.log.WithError(err).Warn("cannot open entry")
		return
	}
	m.router.GoTo(intent.Route, intent.Params)
}

func (m *Model) openPager() tea.Cmd {
	content := m.screen.document(m.renderer)
	if content == "" {
		return m.setStatus("Nothing to read here")
	}
	pager := m.pager
	send := m.pager.program
	return func() tea.Msg {
		if send != nil {
			send.Send(pauseRenderingMsg{})
			defer send.Send(resumeRenderingMsg{})
		}
		return pagerMsg{content: content, err: pager.Show(content)}
	}
}

func (m *Model) updateViewportHeight() {
	if m.height == 0 {
		return
	}
	// title, input, gap, heading, footer and the scroll markers
	reserved := 8
	switch {
	case m.screen.work != nil:
		reserved += 12
	case m.screen.person != nil:
		reserved += 10
	}
	m.list.SetViewportHeight(m.height - reserved)
}

// View renders the UI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	st := m.search.State()
	highlight := m.highlight
	if !st.Visible || highlight >= len(st.Suggestions) {
		highlight = -1
	}

	from, to := m.list.Visible()
	screenView := views.ScreenView{
		Heading: m.screen.heading(m.genres),
		Loading: m.screen.loading,
		Err:     m.screen.err,
		Items:   m.screen.items(),
		Cursor:  m.list.Cursor(),
		From:    from,
		To:      to,
		Empty:   m.screen.empty(),
	}
	switch {
	case m.screen.work != nil:
		screenView.Intro = m.renderer.RenderWork(m.screen.work, m.width)
	case m.screen.person != nil:
		screenView.Intro = m.renderer.RenderPerson(m.screen.person, m.width)
	}

	helpLine := m.help.View(m.keys)
	if m.focused {
		helpLine = m.help.ShortHelpView(m.keys.searchHelp())
	}

	state := views.ViewState{
		Width:  m.width,
		Height: m.height,
		Search: views.SearchView{
			Input:       m.input.View(),
			Focused:     m.focused,
			Query:       st.Query,
			Visible:     st.Visible,
			InFlight:    st.InFlight,
			Err:         st.Err,
			Suggestions: st.Suggestions,
			Highlight:   highlight,
		},
		Screen:   screenView,
		Spinner:  m.spinner.View(),
		Status:   m.status,
		Help:     helpLine,
		ShowHelp: m.showHelp,
		HelpText: m.helpContent.RenderHelpContent(),
	}
	if m.popup != "" {
		state.HelpText = m.popup
	}

	out, layout := m.renderer.Render(state)
	m.layout = layout
	m.search.SetBounds(layout.Bounds())
	return out
}
