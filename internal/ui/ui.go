package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/songbook/internal/models"
	"github.com/desertthunder/songbook/internal/shared"
	"github.com/desertthunder/songbook/internal/tasks"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	SongListView ViewState = iota
	SongDetailView
	ConfirmDeleteView
)

// DetailMode is the lifecycle state of the detail view.
type DetailMode int

const (
	DetailLoading DetailMode = iota
	DetailViewing
	DetailEditing
	DetailSubmitting
	DetailFailed
)

// Model represents the TUI application state.
type Model struct {
	ctx      context.Context
	view     ViewState
	engine   *tasks.CatalogEngine
	notifier *StatusNotifier
	appState *shared.AppState
	logger   *log.Logger
	width    int
	height   int
	help     help.Model
	keys     keyMap

	// list view
	songList    list.Model
	listReady   bool
	searching   bool
	searchInput textinput.Model
	query       string

	// detail view
	mode   DetailMode
	detail *models.SongDetail
	form   *SongForm
	isNew  bool
	errMsg string

	// status bar
	status    string
	statusErr bool
}

// NewModel creates a new TUI model with the provided dependencies. The
// notifier must be the one wired into the engine, so notifications surface
// in the status bar.
func NewModel(ctx context.Context, engine *tasks.CatalogEngine, notifier *StatusNotifier, appState *shared.AppState, logger *log.Logger) *Model {
	search := textinput.New()
	search.Placeholder = "title, genre, or artist"
	search.CharLimit = 80

	return &Model{
		ctx:         ctx,
		view:        SongListView,
		engine:      engine,
		notifier:    notifier,
		appState:    appState,
		logger:      logger,
		help:        help.New(),
		keys:        newKeyMap(),
		searchInput: search,
	}
}

// Init initializes the TUI by loading all catalog collections.
func (m *Model) Init() tea.Cmd {
	return m.loadCollections()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.listReady {
			m.songList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case SongListView:
			return m.handleListKeys(msg)
		case SongDetailView:
			return m.handleDetailKeys(msg)
		case ConfirmDeleteView:
			return m.handleConfirmKeys(msg)
		}

	case collectionsLoadedMsg:
		m.rebuildList()
		return m, m.restoreRoute()

	case detailLoadedMsg:
		return m.handleDetailLoaded(msg)

	case saveDoneMsg:
		return m.handleSaveDone(msg)

	case deleteDoneMsg:
		return m.handleDeleteDone(msg)
	}

	if m.view == SongListView && m.listReady {
		var cmd tea.Cmd
		m.songList, cmd = m.songList.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	var body string
	switch m.view {
	case SongListView:
		body = m.renderList()
	case SongDetailView:
		body = m.renderDetail()
	case ConfirmDeleteView:
		body = m.renderConfirm()
	}

	if status := m.renderStatus(); status != "" {
		body = fmt.Sprintf("%s\n\n%s", body, status)
	}
	return body
}

// pullNotice moves the engine's latest notification into the status bar.
func (m *Model) pullNotice() {
	if notice := m.notifier.Take(); notice != nil {
		m.status = NoticeText(m.appState.Language(), notice.Key)
		m.statusErr = notice.IsErr
	}
}

func (m *Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return styles.err.Render(m.status)
	}
	return styles.ok.Render(m.status)
}

// rebuildList recomputes the filtered song list from the cached collections.
func (m *Model) rebuildList() {
	artists := ArtistIndex(m.engine.Artists())
	filtered := FilterSongs(m.engine.Songs(), artists, m.query)

	items := make([]list.Item, len(filtered))
	for i, song := range filtered {
		items[i] = newSongItem(song, artists)
	}

	if !m.listReady {
		m.songList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.songList.Title = "Songs"
		m.songList.SetShowHelp(false)
		m.songList.SetFilteringEnabled(false)
		m.songList.SetSize(m.width-4, m.height-8)
		m.listReady = true
		return
	}
	m.songList.SetItems(items)
}

// restoreRoute reopens the last visited song detail, if any was persisted.
// The returned command issues the detail fetch and must reach the program.
func (m *Model) restoreRoute() tea.Cmd {
	route := m.appState.LastRoute()
	if !strings.HasPrefix(route, "songs/") {
		return nil
	}
	id, err := strconv.Atoi(strings.TrimPrefix(route, "songs/"))
	if err != nil || id <= 0 {
		return nil
	}
	return m.openDetail(id)
}

func (m *Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.String() {
		case "esc":
			m.searching = false
			m.searchInput.Blur()
			return m, nil
		case "enter":
			m.searching = false
			m.searchInput.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			m.query = m.searchInput.Value()
			m.rebuildList()
			return m, cmd
		}
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.search):
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.menu):
		if _, err := m.appState.ToggleMenu(); err != nil {
			m.logger.Warn("failed to persist menu state", "err", err)
		}
		return m, nil
	case key.Matches(msg, m.keys.add):
		m.openNew()
		return m, nil
	case key.Matches(msg, m.keys.enter):
		if !m.listReady {
			return m, nil
		}
		if item, ok := m.songList.SelectedItem().(songItem); ok {
			return m, m.openDetail(item.song.ID)
		}
		return m, nil
	}

	if m.listReady {
		var cmd tea.Cmd
		m.songList, cmd = m.songList.Update(msg)
		return m, cmd
	}
	return m, nil
}

// openDetail starts loading one song's detail bundle.
func (m *Model) openDetail(id int) tea.Cmd {
	m.view = SongDetailView
	m.mode = DetailLoading
	m.detail = nil
	m.form = nil
	m.isNew = false
	m.errMsg = ""
	m.setRoute(fmt.Sprintf("songs/%d", id))
	return m.fetchDetail(id)
}

// openNew enters the detail view directly in editing mode with defaults.
func (m *Model) openNew() {
	m.view = SongDetailView
	m.mode = DetailEditing
	m.detail = nil
	m.isNew = true
	m.errMsg = ""
	m.form = NewSongForm(m.engine.Artists(), m.engine.Companies())
	m.form.SetDefaults()
	m.setRoute("songs/new")
}

// backToList leaves the detail view and refreshes the list from the caches.
func (m *Model) backToList() {
	m.view = SongListView
	m.detail = nil
	m.form = nil
	m.errMsg = ""
	m.setRoute("songs")
	m.rebuildList()
}

// setRoute records the route for session restore. A persistence failure only
// costs the restore, so it is logged and the navigation proceeds.
func (m *Model) setRoute(route string) {
	if err := m.appState.SetRoute(route); err != nil {
		m.logger.Warn("failed to persist route", "route", route, "err", err)
	}
}

func (m *Model) renderList() string {
	header := styles.title.Render("songbook")
	if m.appState.MenuOpen() {
		header = fmt.Sprintf("%s  %s", header, styles.help.Render("[songs] artists companies"))
	}

	var search string
	if m.searching || m.query != "" {
		search = fmt.Sprintf("Search: %s\n", m.searchInput.View())
	}

	var body string
	switch DeriveDisplayState(m.query, len(m.songList.Items())) {
	case DisplayLoading:
		if m.listReady && len(m.songList.Items()) == 0 && m.query == "" {
			body = styles.warn.Render("The catalog is empty. Press a to add the first song.")
		} else if !m.listReady {
			body = styles.help.Render("Loading catalog…")
		} else {
			body = m.songList.View()
		}
	case DisplayEmpty:
		body = styles.warn.Render(fmt.Sprintf("No songs found for %q", m.query))
	case DisplaySuccess:
		body = m.songList.View()
	}

	helpKeys := []key.Binding{m.keys.enter, m.keys.search, m.keys.add, m.keys.quit}
	return fmt.Sprintf("%s\n%s%s\n\n%s", header, search, body, m.help.ShortHelpView(helpKeys))
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.no), key.Matches(msg, m.keys.back):
		// declined: no state change beyond returning to the detail view
		m.view = SongDetailView
		return m, nil
	case key.Matches(msg, m.keys.yes):
		m.view = SongDetailView
		m.mode = DetailSubmitting
		return m, m.submitDelete(m.detail.Song.ID)
	}
	return m, nil
}

func (m *Model) renderConfirm() string {
	title := styles.title.Render("Delete song?")
	info := fmt.Sprintf("%q will be removed from the catalog.\nThis cannot be undone.", m.detail.Song.Title)
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.yes, m.keys.no})
	return fmt.Sprintf("%s\n%s\n\n%s", title, info, helpView)
}
