package storage

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/manav03panchal/voxnote/internal/model"
)

// EntryRepo provides operations for Entry entities.
//
// The repo tracks a revision counter that increments on every successful
// mutation, so callers can cheaply detect whether the stored set changed.
type EntryRepo struct {
	db  *DB
	rev atomic.Uint64
}

// NewEntryRepo creates a new entry repository.
func NewEntryRepo(db *DB) *EntryRepo {
	return &EntryRepo{db: db}
}

// Add stores a new entry with the given text, trimmed of surrounding
// whitespace. Adding empty or whitespace-only text is a no-op and returns
// (nil, nil).
func (r *EntryRepo) Add(text string) (*model.Entry, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	// Generate UUID v7 for time-sortable keys
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	entry := model.NewEntry(id.String(), text, time.Now())
	if err := r.db.Set(entry); err != nil {
		return nil, err
	}

	r.rev.Add(1)
	return entry, nil
}

// Get retrieves an entry by id.
func (r *EntryRepo) Get(id string) (*model.Entry, error) {
	entry := &model.Entry{}
	if err := r.db.Get(model.GenerateEntryKey(id), entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// ToggleFavorite flips the favorited flag on the entry with the given id.
// Toggling an unknown id is a no-op and returns (nil, nil). The entry keeps
// its timestamp and position; only the flag changes.
func (r *EntryRepo) ToggleFavorite(id string) (*model.Entry, error) {
	entry, err := r.Get(id)
	if err != nil {
		if IsErrKeyNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	entry.Favorited = !entry.Favorited
	if err := r.db.Set(entry); err != nil {
		return nil, err
	}

	r.rev.Add(1)
	return entry, nil
}

// List retrieves all entries in creation order, oldest first.
// UUIDv7 keys iterate in time order, so no extra sort is needed.
func (r *EntryRepo) List() ([]*model.Entry, error) {
	return GetAllByPrefix(r.db, model.PrefixEntry+":", func() *model.Entry {
		return &model.Entry{}
	})
}

// Count returns the number of stored entries.
func (r *EntryRepo) Count() (int, error) {
	entries, err := r.List()
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}

// Revision returns the current mutation counter.
func (r *EntryRepo) Revision() uint64 {
	return r.rev.Load()
}
