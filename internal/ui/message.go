package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/songbook/internal/models"
)

// collectionsLoadedMsg reports that all three catalog collections have been
// fetched into their stores.
type collectionsLoadedMsg struct{}

// detailLoadedMsg carries the result of a detail bundle fetch.
type detailLoadedMsg struct {
	detail *models.SongDetail
	err    error
}

// saveDoneMsg carries the result of a save operation.
type saveDoneMsg struct {
	song models.Song
	err  error
}

// deleteDoneMsg carries the result of a delete operation.
type deleteDoneMsg struct {
	err error
}

func (m *Model) loadCollections() tea.Cmd {
	return func() tea.Msg {
		m.engine.LoadAll(m.ctx)
		return collectionsLoadedMsg{}
	}
}

func (m *Model) fetchDetail(id int) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.engine.GetSongByID(m.ctx, id)
		return detailLoadedMsg{detail: detail, err: err}
	}
}

func (m *Model) submitSave(song models.Song, artistID int, companyIDs []int) tea.Cmd {
	return func() tea.Msg {
		saved, err := m.engine.SaveSong(m.ctx, song, artistID, companyIDs)
		return saveDoneMsg{song: saved, err: err}
	}
}

func (m *Model) submitDelete(id int) tea.Cmd {
	return func() tea.Msg {
		return deleteDoneMsg{err: m.engine.DeleteSong(m.ctx, id)}
	}
}
