package ui

import (
	"sync"

	"github.com/desertthunder/songbook/internal/tasks"
)

// Notice is one notification surfaced in the status bar.
type Notice struct {
	Key   string
	IsErr bool
}

// StatusNotifier implements [tasks.Notifier] by recording the most recent
// notification for the status bar to render. Engine operations run off the
// update loop, so access is guarded.
type StatusNotifier struct {
	mu   sync.Mutex
	last *Notice
}

var _ tasks.Notifier = (*StatusNotifier)(nil)

func (n *StatusNotifier) Success(key string) {
	n.mu.Lock()
	n.last = &Notice{Key: key}
	n.mu.Unlock()
}

func (n *StatusNotifier) Error(key string) {
	n.mu.Lock()
	n.last = &Notice{Key: key, IsErr: true}
	n.mu.Unlock()
}

// Take returns and clears the most recent notice, nil when there is none.
func (n *StatusNotifier) Take() *Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	notice := n.last
	n.last = nil
	return notice
}

// noticeText maps notification keys to display text per language.
var noticeText = map[string]map[string]string{
	"en": {
		tasks.NoteSongCreated:   "Song created",
		tasks.NoteSongUpdated:   "Song updated",
		tasks.NoteSongDeleted:   "Song deleted",
		tasks.NoteErrorCreating: "Could not create the song",
		tasks.NoteErrorUpdating: "Could not update the song",
		tasks.NoteErrorDeleting: "Could not delete the song",
	},
	"es": {
		tasks.NoteSongCreated:   "Canción creada",
		tasks.NoteSongUpdated:   "Canción actualizada",
		tasks.NoteSongDeleted:   "Canción eliminada",
		tasks.NoteErrorCreating: "No se pudo crear la canción",
		tasks.NoteErrorUpdating: "No se pudo actualizar la canción",
		tasks.NoteErrorDeleting: "No se pudo eliminar la canción",
	},
}

// NoticeText resolves a notification key for the given language, falling
// back to English, then to the raw key.
func NoticeText(lang, key string) string {
	if messages, ok := noticeText[lang]; ok {
		if text, ok := messages[key]; ok {
			return text
		}
	}
	if text, ok := noticeText["en"][key]; ok {
		return text
	}
	return key
}
