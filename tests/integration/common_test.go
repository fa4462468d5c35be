package integration

import (
	"testing"

	"github.com/manav03panchal/voxnote/internal/storage"
	"github.com/manav03panchal/voxnote/internal/view"
	"github.com/stretchr/testify/require"
)

// noteTestContext holds the store and projector for a test session.
type noteTestContext struct {
	t         *testing.T
	db        *storage.DB
	entries   *storage.EntryRepo
	projector *view.Projector
}

// setupNoteTestContext creates a new test context with a session database.
func setupNoteTestContext(t *testing.T) *noteTestContext {
	t.Helper()

	db, err := storage.Open()
	require.NoError(t, err, "failed to open session database")
	t.Cleanup(func() {
		db.Close()
	})

	entries := storage.NewEntryRepo(db)
	return &noteTestContext{
		t:         t,
		db:        db,
		entries:   entries,
		projector: view.NewProjector(entries),
	}
}
