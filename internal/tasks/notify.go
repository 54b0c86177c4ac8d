package tasks

import "github.com/charmbracelet/log"

// Notification keys emitted by the engine. The presentation layer owns the
// mapping from key to displayed text.
const (
	NoteSongCreated   = "song_created"
	NoteSongUpdated   = "song_updated"
	NoteSongDeleted   = "song_deleted"
	NoteErrorCreating = "error_creating"
	NoteErrorUpdating = "error_updating"
	NoteErrorDeleting = "error_deleting"
)

// Notifier receives success and error notifications from engine operations.
// Implementations live in the presentation layer (TUI status bar, CLI logger).
type Notifier interface {
	Success(key string)
	Error(key string)
}

// LogNotifier writes notifications to a logger. Used by the CLI commands,
// where there is no status bar to push to.
type LogNotifier struct {
	Logger *log.Logger
}

func (n *LogNotifier) Success(key string) {
	n.Logger.Info("operation succeeded", "notification", key)
}

func (n *LogNotifier) Error(key string) {
	n.Logger.Error("operation failed", "notification", key)
}
