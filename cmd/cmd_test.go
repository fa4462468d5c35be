package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/manav03panchal/voxnote/internal/errors"
	"github.com/manav03panchal/voxnote/internal/output"
	"github.com/manav03panchal/voxnote/internal/runtime"
	"github.com/manav03panchal/voxnote/internal/validate"
)

// setupCmdContext installs a fresh session context for the command layer
// and captures its output.
func setupCmdContext(t *testing.T, format output.Format) *bytes.Buffer {
	t.Helper()

	c, err := runtime.New(runtime.Options{Format: format, ColorMode: output.ColorNever})
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	c.Formatter.Writer = buf

	prev := ctx
	ctx = c
	t.Cleanup(func() {
		ctx = prev
		require.NoError(t, c.Close())
	})
	return buf
}

// setListFlags overrides the list command flags for one test.
func setListFlags(t *testing.T, sort, since string) {
	t.Helper()
	prevSort, prevSince := listFlagSort, listFlagSince
	listFlagSort, listFlagSince = sort, since
	t.Cleanup(func() { listFlagSort, listFlagSince = prevSort, prevSince })
}

// =============================================================================
// Add Command Tests
// =============================================================================

func TestAddCommand(t *testing.T) {
	buf := setupCmdContext(t, output.FormatCLI)

	require.NoError(t, runAdd(addCmd, []string{"  buy", "milk  "}))

	// Args are joined and the result trimmed.
	assert.Contains(t, buf.String(), "Added: buy milk")
	require.Equal(t, 1, mustCount(t))
}

func TestAddCommandBlankSkipped(t *testing.T) {
	buf := setupCmdContext(t, output.FormatCLI)

	require.NoError(t, runAdd(addCmd, []string{"   "}))

	assert.Contains(t, buf.String(), "Nothing to add.")
	assert.Equal(t, 0, mustCount(t))
}

func TestAddCommandRejectsOverlongText(t *testing.T) {
	setupCmdContext(t, output.FormatCLI)

	err := runAdd(addCmd, []string{strings.Repeat("x", 1001)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too long")
	assert.Equal(t, 0, mustCount(t))
}

func TestAddCommandJSON(t *testing.T) {
	buf := setupCmdContext(t, output.FormatJSON)

	require.NoError(t, runAdd(addCmd, []string{"hello"}))

	var resp output.AddResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "added", resp.Status)
	require.NotNil(t, resp.Entry)
	assert.Equal(t, "hello", resp.Entry.Text)
	assert.NotEmpty(t, resp.Entry.ID)
	assert.False(t, resp.Entry.Favorited)
}

func TestAddCommandJSONBlankSkipped(t *testing.T) {
	buf := setupCmdContext(t, output.FormatJSON)

	require.NoError(t, runAdd(addCmd, []string{"  "}))

	var resp output.AddResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "skipped", resp.Status)
	assert.Nil(t, resp.Entry)
}

// =============================================================================
// List Command Tests
// =============================================================================

func TestListCommand(t *testing.T) {
	buf := setupCmdContext(t, output.FormatCLI)
	require.NoError(t, runAdd(addCmd, []string{"first note"}))
	require.NoError(t, runAdd(addCmd, []string{"second note"}))
	buf.Reset()

	setListFlags(t, "newest", "")
	require.NoError(t, runList(listCmd, nil))

	out := buf.String()
	assert.Contains(t, out, "Notes · Newest")
	// Newest first.
	assert.Less(t, strings.Index(out, "second note"), strings.Index(out, "first note"))
}

func TestListCommandSortFavorites(t *testing.T) {
	buf := setupCmdContext(t, output.FormatCLI)
	_, err := ctx.Entries.Add("plain one")
	require.NoError(t, err)
	starred, err := ctx.Entries.Add("starred one")
	require.NoError(t, err)
	_, err = ctx.Entries.ToggleFavorite(starred.ID)
	require.NoError(t, err)

	setListFlags(t, "favorites", "")
	require.NoError(t, runList(listCmd, nil))

	out := buf.String()
	assert.Contains(t, out, "Notes · Favorites")
	assert.Contains(t, out, "starred one")
	assert.NotContains(t, out, "plain one")
}

func TestListCommandRejectsUnknownSort(t *testing.T) {
	setupCmdContext(t, output.FormatCLI)
	setListFlags(t, "sideways", "")

	err := runList(listCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid sort order")
	assert.Equal(t, "Use newest, oldest, or favorites", runtime.GetSuggestion(err))
}

func TestListCommandSinceBoundary(t *testing.T) {
	buf := setupCmdContext(t, output.FormatCLI)
	_, err := ctx.Entries.Add("older note")
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	boundary, err := ctx.Entries.Add("boundary note")
	require.NoError(t, err)

	// A note created exactly at the cutoff is kept.
	setListFlags(t, "newest", boundary.Timestamp.Format(time.RFC3339Nano))
	require.NoError(t, runList(listCmd, nil))

	out := buf.String()
	assert.Contains(t, out, "boundary note")
	assert.NotContains(t, out, "older note")
}

func TestListCommandSinceInvalid(t *testing.T) {
	setupCmdContext(t, output.FormatCLI)
	setListFlags(t, "newest", "definitely not a time")

	err := runList(listCmd, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTimestamp)
}

func TestListCommandJSONCounts(t *testing.T) {
	buf := setupCmdContext(t, output.FormatJSON)
	for _, text := range []string{"one", "two"} {
		_, err := ctx.Entries.Add(text)
		require.NoError(t, err)
	}
	time.Sleep(5 * time.Millisecond)
	last, err := ctx.Entries.Add("three")
	require.NoError(t, err)

	// The since filter narrows shown_count but total_count reflects the view.
	setListFlags(t, "newest", last.Timestamp.Format(time.RFC3339Nano))
	require.NoError(t, runList(listCmd, nil))

	var resp output.EntriesResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "newest", resp.Sort)
	assert.Equal(t, 3, resp.TotalCount)
	assert.Equal(t, 1, resp.ShownCount)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "three", resp.Entries[0].Text)
}

// =============================================================================
// Root Command Tests
// =============================================================================

func TestRootCommandRejectsUnknownSort(t *testing.T) {
	prev := ctx
	t.Cleanup(func() {
		if ctx != nil && ctx != prev {
			ctx.Close()
		}
		ctx = prev
		listFlagSort = "newest"
	})

	rootCmd.SetArgs([]string{"list", "--sort", "sideways"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid sort order")
}

func TestReportErrorJSONIncludesSuggestion(t *testing.T) {
	buf := setupCmdContext(t, output.FormatJSON)

	reportError(validate.SortOrderValue("sideways"))

	var resp output.ErrorResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Contains(t, resp.Error, "Invalid sort order")
	assert.Equal(t, "Use newest, oldest, or favorites", resp.Suggestion)
}

// mustCount returns the current entry count.
func mustCount(t *testing.T) int {
	t.Helper()
	n, err := ctx.Entries.Count()
	require.NoError(t, err)
	return n
}
