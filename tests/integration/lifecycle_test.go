// Package integration provides integration tests for Voxnote note workflows.
// These tests verify the complete add/favorite/project behavior using a real
// in-memory Badger database.
package integration

import (
	"strings"
	"testing"

	"github.com/manav03panchal/voxnote/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Entry Lifecycle
// =============================================================================

func TestAddIncreasesStoreByOne(t *testing.T) {
	tc := setupNoteTestContext(t)

	inputs := []string{"plain", "  padded  ", "multi word note"}
	for i, input := range inputs {
		entry, err := tc.entries.Add(input)
		require.NoError(t, err)
		require.NotNil(t, entry)

		assert.Equal(t, strings.TrimSpace(input), entry.Text)
		assert.False(t, entry.Favorited)

		count, err := tc.entries.Count()
		require.NoError(t, err)
		assert.Equal(t, i+1, count)
	}
}

func TestBlankAddLeavesStoreUnchanged(t *testing.T) {
	tc := setupNoteTestContext(t)

	_, err := tc.entries.Add("real note")
	require.NoError(t, err)

	for _, blank := range []string{"", " ", "\t", "\n\n  "} {
		entry, err := tc.entries.Add(blank)
		require.NoError(t, err)
		assert.Nil(t, entry)
	}

	count, err := tc.entries.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestToggleFavoriteInvolution(t *testing.T) {
	tc := setupNoteTestContext(t)

	entry, err := tc.entries.Add("toggle target")
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		toggled, err := tc.entries.ToggleFavorite(entry.ID)
		require.NoError(t, err)
		require.NotNil(t, toggled)
		assert.Equal(t, i%2 == 0, toggled.Favorited)
	}

	got, err := tc.entries.Get(entry.ID)
	require.NoError(t, err)
	assert.False(t, got.Favorited, "even number of toggles restores original")
}

func TestToggleUnknownIDLeavesStoreUntouched(t *testing.T) {
	tc := setupNoteTestContext(t)

	entry, err := tc.entries.Add("bystander")
	require.NoError(t, err)

	toggled, err := tc.entries.ToggleFavorite("0192aaaa-ffff-7fff-8fff-ffffffffffff")
	require.NoError(t, err)
	assert.Nil(t, toggled)

	got, err := tc.entries.Get(entry.ID)
	require.NoError(t, err)
	assert.False(t, got.Favorited)
}

func TestEntriesAreNeverDeletedOrEdited(t *testing.T) {
	tc := setupNoteTestContext(t)

	entry, err := tc.entries.Add("immutable text")
	require.NoError(t, err)

	_, err = tc.entries.ToggleFavorite(entry.ID)
	require.NoError(t, err)

	got, err := tc.entries.Get(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "immutable text", got.Text)
	assert.Equal(t, entry.Timestamp.UnixNano(), got.Timestamp.UnixNano())
	assert.Equal(t, entry.ID, got.ID)
}

// =============================================================================
// Projection over a live store
// =============================================================================

func TestProjectionFollowsStoreMutations(t *testing.T) {
	tc := setupNoteTestContext(t)

	_, err := tc.entries.Add("A")
	require.NoError(t, err)
	b, err := tc.entries.Add("B")
	require.NoError(t, err)
	_, err = tc.entries.ToggleFavorite(b.ID)
	require.NoError(t, err)

	newest, err := tc.projector.View(model.SortNewest)
	require.NoError(t, err)
	require.Len(t, newest, 2)
	assert.Equal(t, "B", newest[0].Text)
	assert.Equal(t, "A", newest[1].Text)

	favorites, err := tc.projector.View(model.SortFavorites)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "B", favorites[0].Text)

	oldest, err := tc.projector.View(model.SortOldest)
	require.NoError(t, err)
	require.Len(t, oldest, 2)
	assert.Equal(t, "A", oldest[0].Text)

	// Unfavorite B: the favorites view empties, the others keep both.
	_, err = tc.entries.ToggleFavorite(b.ID)
	require.NoError(t, err)

	favorites, err = tc.projector.View(model.SortFavorites)
	require.NoError(t, err)
	assert.Empty(t, favorites)

	newest, err = tc.projector.View(model.SortNewest)
	require.NoError(t, err)
	assert.Len(t, newest, 2)
}

func TestProjectionOnEmptyStore(t *testing.T) {
	tc := setupNoteTestContext(t)

	for _, order := range []model.SortOrder{model.SortNewest, model.SortOldest, model.SortFavorites} {
		entries, err := tc.projector.View(order)
		require.NoError(t, err)
		assert.Empty(t, entries)
	}
}

func TestManyEntriesKeepCreationOrder(t *testing.T) {
	tc := setupNoteTestContext(t)

	const n = 100
	for i := 0; i < n; i++ {
		_, err := tc.entries.Add("note")
		require.NoError(t, err)
	}

	newest, err := tc.projector.View(model.SortNewest)
	require.NoError(t, err)
	require.Len(t, newest, n)

	oldest, err := tc.projector.View(model.SortOldest)
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		assert.Equal(t, newest[i].ID, oldest[n-1-i].ID)
	}
	for i := 1; i < n; i++ {
		assert.GreaterOrEqual(t, newest[i-1].ID, newest[i].ID)
	}
}
