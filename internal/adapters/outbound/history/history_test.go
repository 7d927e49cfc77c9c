package history_test

import (
	"path/filepath"
	"testing"

	"github.com/rolelens/rolelens/internal/adapters/outbound/history"
	"github.com/rolelens/rolelens/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func absRole(t *testing.T, name string) string {
	t.Helper()
	abs, err := filepath.Abs(filepath.Join("/tmp/roles", name))
	require.NoError(t, err)
	return abs
}

func TestHistory_SaveAndLoad(t *testing.T) {
	h := history.NewAt(t.TempDir())
	role := absRole(t, "myrole")

	entry := domain.HistoryEntry{
		Timestamp:          "2026-08-28T10:00:00Z",
		RolePath:           role,
		RoleName:           "myrole",
		CommitHash:         "abc1234",
		DirectoriesPresent: 6,
		IssueCount:         1,
	}

	require.NoError(t, h.Save(entry))

	entries, err := h.Load(role)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 6, entries[0].DirectoriesPresent)
	assert.Equal(t, "abc1234", entries[0].CommitHash)
}

func TestHistory_AppendKeepsOrder(t *testing.T) {
	h := history.NewAt(t.TempDir())
	role := absRole(t, "myrole")

	require.NoError(t, h.Save(domain.HistoryEntry{Timestamp: "t1", RolePath: role, IssueCount: 1}))
	require.NoError(t, h.Save(domain.HistoryEntry{Timestamp: "t2", RolePath: role, IssueCount: 0}))

	entries, err := h.Load(role)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "t1", entries[0].Timestamp)
	assert.Equal(t, "t2", entries[1].Timestamp)
}

func TestHistory_FiltersByRolePath(t *testing.T) {
	h := history.NewAt(t.TempDir())

	require.NoError(t, h.Save(domain.HistoryEntry{Timestamp: "t1", RolePath: absRole(t, "a")}))
	require.NoError(t, h.Save(domain.HistoryEntry{Timestamp: "t2", RolePath: absRole(t, "b")}))

	entries, err := h.Load(absRole(t, "a"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "t1", entries[0].Timestamp)
}

func TestHistory_LoadEmpty(t *testing.T) {
	h := history.NewAt(t.TempDir())
	entries, err := h.Load(absRole(t, "missing"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistory_CreatesBaseDirectory(t *testing.T) {
	h := history.NewAt(filepath.Join(t.TempDir(), "deep", "nested"))
	require.NoError(t, h.Save(domain.HistoryEntry{Timestamp: "t1", RolePath: absRole(t, "x")}))

	entries, err := h.Load(absRole(t, "x"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
