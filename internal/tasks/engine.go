package tasks

import (
	"context"
	"errors"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/songbook/internal/models"
	"github.com/desertthunder/songbook/internal/services"
	"github.com/desertthunder/songbook/internal/shared"
)

// Display messages for failed engine operations, keyed off the shared error
// taxonomy.
const (
	MsgNotFound = "song not found"
	MsgNetwork  = "could not reach the catalog server"
	MsgDefault  = "something went wrong"
)

// CatalogEngine composes the three resource stores into the aggregate
// operations the detail view needs. Engine-level Loading and Err state is
// independent of the per-store busy flags.
type CatalogEngine struct {
	songs     *services.Resource[models.Song]
	artists   *services.Resource[models.Artist]
	companies *services.Resource[models.Company]
	notifier  Notifier
	logger    *log.Logger

	mu      sync.RWMutex
	loading bool
	lastErr string
}

// NewCatalogEngine creates an engine over the given stores.
func NewCatalogEngine(
	songs *services.Resource[models.Song],
	artists *services.Resource[models.Artist],
	companies *services.Resource[models.Company],
	notifier Notifier,
	logger *log.Logger,
) *CatalogEngine {
	return &CatalogEngine{
		songs:     songs,
		artists:   artists,
		companies: companies,
		notifier:  notifier,
		logger:    logger,
	}
}

// LoadAll populates all three collection caches.
func (e *CatalogEngine) LoadAll(ctx context.Context) {
	e.songs.Load(ctx)
	e.artists.Load(ctx)
	e.companies.Load(ctx)
}

// Songs returns the cached song collection.
func (e *CatalogEngine) Songs() []models.Song { return e.songs.All() }

// Artists returns the cached artist collection.
func (e *CatalogEngine) Artists() []models.Artist { return e.artists.All() }

// Companies returns the cached company collection.
func (e *CatalogEngine) Companies() []models.Company { return e.companies.All() }

// SongStore exposes the underlying song store for direct access.
func (e *CatalogEngine) SongStore() *services.Resource[models.Song] { return e.songs }

// Loading reports whether an engine operation is in flight.
func (e *CatalogEngine) Loading() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.loading
}

// Err returns the display message for the last failed operation, empty when
// the last operation succeeded.
func (e *CatalogEngine) Err() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.lastErr
}

// begin marks an operation started: loading on, previous error cleared.
func (e *CatalogEngine) begin() {
	e.mu.Lock()
	e.loading = true
	e.lastErr = ""
	e.mu.Unlock()
}

func (e *CatalogEngine) finish() {
	e.mu.Lock()
	e.loading = false
	e.mu.Unlock()
}

func (e *CatalogEngine) fail(err error) {
	e.mu.Lock()
	e.loading = false
	e.lastErr = errorMessage(err)
	e.mu.Unlock()
}

// GetSongByID assembles the detail bundle for one song. The song fetch
// short-circuits on failure; the artist lookup and the company filter then
// run concurrently. An unresolvable artist is tolerated and leaves
// Artist nil.
func (e *CatalogEngine) GetSongByID(ctx context.Context, id int) (*models.SongDetail, error) {
	e.begin()

	song, err := e.songs.Get(ctx, id)
	if err != nil {
		e.fail(err)
		return nil, err
	}

	artistCh := make(chan *models.Artist, 1)
	if song.ArtistID == 0 {
		artistCh <- nil
	} else {
		go func() {
			artist, err := e.artists.Get(ctx, song.ArtistID)
			if err != nil {
				e.logger.Warn("could not resolve artist", "song", song.ID, "artist", song.ArtistID, "err", err)
				artistCh <- nil
				return
			}
			artistCh <- &artist
		}()
	}

	related := []models.Company{}
	for _, company := range e.companies.All() {
		if company.HasSong(song.ID) {
			related = append(related, company)
		}
	}

	detail := &models.SongDetail{
		Song:             song,
		Artist:           <-artistCh,
		RelatedCompanies: related,
	}

	e.finish()
	return detail, nil
}

// SaveSong creates or updates a song (by id presence), then reconciles
// company membership against companyIDs. The returned song carries the
// server-assigned id on create.
func (e *CatalogEngine) SaveSong(ctx context.Context, song models.Song, artistID int, companyIDs []int) (models.Song, error) {
	e.begin()

	isNew := song.ID == 0
	song.ArtistID = artistID

	var saved models.Song
	var err error
	if isNew {
		saved, err = e.songs.Create(ctx, song)
	} else {
		saved, err = e.songs.Update(ctx, song.ID, song)
	}
	if err != nil {
		e.fail(err)
		e.notifySaveError(isNew)
		return saved, err
	}

	if err := e.reconcileCompanies(ctx, saved.ID, companyIDs); err != nil {
		e.fail(err)
		e.notifySaveError(isNew)
		return saved, err
	}

	e.finish()
	if isNew {
		e.notifier.Success(NoteSongCreated)
	} else {
		e.notifier.Success(NoteSongUpdated)
	}
	return saved, nil
}

func (e *CatalogEngine) notifySaveError(isNew bool) {
	if isNew {
		e.notifier.Error(NoteErrorCreating)
	} else {
		e.notifier.Error(NoteErrorUpdating)
	}
}

// DeleteSong removes a song from the catalog.
func (e *CatalogEngine) DeleteSong(ctx context.Context, id int) error {
	e.begin()

	if err := e.songs.Delete(ctx, id); err != nil {
		e.fail(err)
		e.notifier.Error(NoteErrorDeleting)
		return err
	}

	e.finish()
	e.notifier.Success(NoteSongDeleted)
	return nil
}

// reconcileCompanies brings every company's song list in line with the saved
// membership: one update per company whose membership changed, none for the
// rest. Updates are issued concurrently and awaited jointly; their relative
// order carries no meaning.
func (e *CatalogEngine) reconcileCompanies(ctx context.Context, songID int, companyIDs []int) error {
	wanted := make(map[int]bool, len(companyIDs))
	for _, id := range companyIDs {
		wanted[id] = true
	}

	var pending []models.Company
	for _, company := range e.companies.All() {
		has := company.HasSong(songID)
		should := wanted[company.ID]
		if has == should {
			continue
		}

		if should {
			company.Songs = append(company.Songs, songID)
		} else {
			songs := make([]int, 0, len(company.Songs))
			for _, id := range company.Songs {
				if id != songID {
					songs = append(songs, id)
				}
			}
			company.Songs = songs
		}
		pending = append(pending, company)
	}

	if len(pending) == 0 {
		return nil
	}

	var wg sync.WaitGroup
	errs := make([]error, len(pending))
	for i, company := range pending {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = e.companies.Update(ctx, company.ID, company)
		}()
	}
	wg.Wait()

	return errors.Join(errs...)
}

// errorMessage translates an operation failure into the text shown to the
// user.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, shared.ErrNotFound):
		return MsgNotFound
	case errors.Is(err, shared.ErrNetwork):
		return MsgNetwork
	default:
		return MsgDefault
	}
}
