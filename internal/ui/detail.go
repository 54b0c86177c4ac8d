package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleDetailLoaded(msg detailLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.mode = DetailFailed
		m.errMsg = m.engine.Err()
		return m, nil
	}

	m.detail = msg.detail
	m.form = NewSongForm(m.engine.Artists(), m.engine.Companies())
	m.form.SetSong(msg.detail.Song, msg.detail.CompanyIDs())
	m.mode = DetailViewing
	return m, nil
}

func (m *Model) handleSaveDone(msg saveDoneMsg) (tea.Model, tea.Cmd) {
	m.pullNotice()
	if msg.err != nil {
		// stay on the form, editable, with the error surfaced
		m.mode = DetailEditing
		m.errMsg = m.engine.Err()
		return m, nil
	}

	m.backToList()
	return m, nil
}

func (m *Model) handleDeleteDone(msg deleteDoneMsg) (tea.Model, tea.Cmd) {
	m.pullNotice()
	if msg.err != nil {
		m.mode = DetailViewing
		m.errMsg = m.engine.Err()
		return m, nil
	}

	m.backToList()
	return m, nil
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == DetailSubmitting {
		// form is disabled while a save or delete is in flight
		if key.Matches(msg, m.keys.quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	switch m.mode {
	case DetailLoading, DetailFailed:
		switch {
		case key.Matches(msg, m.keys.back):
			m.backToList()
			return m, nil
		case key.Matches(msg, m.keys.quit):
			return m, tea.Quit
		}
		return m, nil

	case DetailViewing:
		return m.handleViewingKeys(msg)

	case DetailEditing:
		return m.handleEditingKeys(msg)
	}
	return m, nil
}

func (m *Model) handleViewingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.backToList()
		return m, nil
	case key.Matches(msg, m.keys.edit):
		m.enableEditing()
		return m, nil
	case key.Matches(msg, m.keys.remove):
		// deletion always goes through the confirmation prompt
		m.view = ConfirmDeleteView
		return m, nil
	}
	return m, nil
}

// enableEditing unlocks the form.
func (m *Model) enableEditing() {
	m.mode = DetailEditing
	m.errMsg = ""
}

// cancelEdit discards in-progress edits and restores the last loaded
// snapshot. For a new song there is nothing to restore, so it leaves the
// detail view entirely.
func (m *Model) cancelEdit() {
	if m.isNew {
		m.backToList()
		return
	}
	m.form.Restore()
	m.mode = DetailViewing
	m.errMsg = ""
}

// saveChanges validates the form and submits the save. Invalid forms never
// reach the engine.
func (m *Model) saveChanges() tea.Cmd {
	problems := m.form.Validate()
	if len(problems) > 0 {
		m.errMsg = strings.Join(problems, "; ")
		return nil
	}

	id := 0
	if !m.isNew && m.detail != nil {
		id = m.detail.Song.ID
	}

	m.mode = DetailSubmitting
	m.errMsg = ""
	song := m.form.Song(id)
	return m.submitSave(song, song.ArtistID, m.form.CompanyIDs())
}

func (m *Model) handleEditingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.cancelEdit()
		return m, nil
	case "tab", "down":
		m.form.NextField()
		return m, nil
	case "shift+tab", "up":
		m.form.PrevField()
		return m, nil
	case "ctrl+s":
		return m, m.saveChanges()
	}

	switch m.form.Focus() {
	case fieldArtist:
		switch msg.String() {
		case "left", "h":
			m.form.CycleArtist(-1)
		case "right", "l":
			m.form.CycleArtist(1)
		}
		return m, nil

	case fieldCompanies:
		switch msg.String() {
		case "left", "h":
			m.form.MoveCompanyCursor(-1)
		case "right", "l":
			m.form.MoveCompanyCursor(1)
		case " ", "enter":
			m.form.ToggleCompany()
		}
		return m, nil

	case fieldGenres:
		return m.handleGenreKeys(msg)
	}

	// remaining fields are plain text inputs
	input := m.form.FocusedInput()
	if input == nil {
		return m, nil
	}
	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	return m, cmd
}

// handleGenreKeys drives the genre chip editor: enter commits the input as
// an add (or an in-place edit), left/right move the chip cursor, ctrl+x
// removes the selected chip, ctrl+e starts editing it.
func (m *Model) handleGenreKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		value := m.form.genreInput.Value()
		if m.form.editingIdx >= 0 {
			m.form.EditGenre(m.form.editingIdx, value)
			m.form.editingIdx = -1
		} else {
			m.form.AddGenre(value)
		}
		m.form.genreInput.SetValue("")
		return m, nil
	case "left":
		m.form.MoveGenreCursor(-1)
		return m, nil
	case "right":
		m.form.MoveGenreCursor(1)
		return m, nil
	case "ctrl+x":
		m.form.RemoveGenre(m.form.genreCursor)
		return m, nil
	case "ctrl+e":
		if len(m.form.genres) > 0 {
			m.form.editingIdx = m.form.genreCursor
			m.form.genreInput.SetValue(m.form.genres[m.form.genreCursor])
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.form.genreInput, cmd = m.form.genreInput.Update(msg)
	return m, cmd
}

func (m *Model) renderDetail() string {
	switch m.mode {
	case DetailLoading:
		return styles.help.Render("Loading song…")
	case DetailFailed:
		return fmt.Sprintf("%s\n\n%s",
			styles.err.Render(fmt.Sprintf("Error: %s", m.errMsg)),
			m.help.ShortHelpView([]key.Binding{m.keys.back, m.keys.quit}))
	}

	title := "New song"
	if !m.isNew && m.detail != nil {
		title = m.detail.Song.Title
		if m.detail.Artist != nil {
			title = fmt.Sprintf("%s — %s", title, m.detail.Artist.Name)
		}
	}

	var b strings.Builder
	b.WriteString(styles.title.Render(title))
	b.WriteString("\n")

	for field := formField(0); field < fieldCount; field++ {
		b.WriteString(m.renderField(field))
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(styles.err.Render(m.errMsg))
	}

	if m.mode == DetailSubmitting {
		b.WriteString("\n")
		b.WriteString(styles.warn.Render("Saving…"))
	}

	b.WriteString("\n")
	b.WriteString(m.help.ShortHelpView(m.detailHelpKeys()))
	return b.String()
}

func (m *Model) detailHelpKeys() []key.Binding {
	if m.mode == DetailEditing {
		return []key.Binding{m.keys.save, m.keys.back, m.keys.quit}
	}
	return []key.Binding{m.keys.edit, m.keys.remove, m.keys.back, m.keys.quit}
}

func (m *Model) renderField(field formField) string {
	label := styles.label.Render(fmt.Sprintf("%-14s", fieldLabels[field]))
	cursor := "  "
	if m.mode == DetailEditing && m.form.Focus() == field {
		cursor = styles.title.Render("> ")
	}

	var value string
	switch field {
	case fieldArtist:
		value = m.renderArtistField()
	case fieldGenres:
		value = m.renderGenresField()
	case fieldCompanies:
		value = m.renderCompaniesField()
	default:
		input := m.form.Input(field)
		if m.mode == DetailEditing {
			value = input.View()
		} else {
			value = input.Value()
		}
	}

	return fmt.Sprintf("%s%s %s", cursor, label, value)
}

func (m *Model) renderArtistField() string {
	artist := m.form.SelectedArtist()
	name := "none"
	if artist != nil {
		name = artist.Name
	}
	if m.mode == DetailEditing && m.form.Focus() == fieldArtist {
		return fmt.Sprintf("◀ %s ▶", name)
	}
	return name
}

func (m *Model) renderGenresField() string {
	if len(m.form.genres) == 0 {
		chips := styles.help.Render("none")
		if m.mode == DetailEditing && m.form.Focus() == fieldGenres {
			return fmt.Sprintf("%s  %s", chips, m.form.genreInput.View())
		}
		return chips
	}

	rendered := make([]string, len(m.form.genres))
	for i, genre := range m.form.genres {
		chip := styles.chip.Render(genre)
		if m.mode == DetailEditing && m.form.Focus() == fieldGenres && i == m.form.genreCursor {
			chip = styles.ok.Render("[" + genre + "]")
		}
		rendered[i] = chip
	}

	line := strings.Join(rendered, " ")
	if m.mode == DetailEditing && m.form.Focus() == fieldGenres {
		line = fmt.Sprintf("%s  %s", line, m.form.genreInput.View())
	}
	return line
}

func (m *Model) renderCompaniesField() string {
	if len(m.form.companies) == 0 {
		return styles.help.Render("none")
	}

	rendered := make([]string, len(m.form.companies))
	for i, company := range m.form.companies {
		mark := "[ ]"
		if m.form.selectedCompany[company.ID] {
			mark = "[x]"
		}
		entry := fmt.Sprintf("%s %s", mark, company.Name)
		if m.mode == DetailEditing && m.form.Focus() == fieldCompanies && i == m.form.companyCursor {
			entry = styles.ok.Render(entry)
		}
		rendered[i] = entry
	}
	return strings.Join(rendered, "  ")
}
