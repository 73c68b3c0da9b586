package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHistory(t *testing.T) *SQLiteHistory {
	t.Helper()
	h, err := NewSQLiteHistory(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func TestSQLiteHistory_EmptyPath(t *testing.T) {
	_, err := NewSQLiteHistory("  ")
	assert.ErrorIs(t, err, ErrNoHistoryPath)
}

func TestSQLiteHistory_NoRuns(t *testing.T) {
	h := newTestHistory(t)

	_, err := h.LatestScores(context.Background(), BoardCareer)
	assert.ErrorIs(t, err, ErrNoRuns)

	runs, err := h.ListRuns(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, runs)

	_, err = h.ListRuns(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidLimit)
}

func TestSQLiteHistory_RecordAndRead(t *testing.T) {
	ctx := context.Background()
	h := newTestHistory(t)
	first := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

	err := h.RecordRun(ctx, Run{
		ID: "run-1", Board: BoardCareer, GeneratedAt: first,
		Players: 2, TopPersonID: "893", TopScore: 97.1,
	}, []Entry{
		{Rank: 1, PersonID: "893", Score: 97.1},
		{Rank: 2, PersonID: "2544", Score: 96.4},
	})
	require.NoError(t, err)

	err = h.RecordRun(ctx, Run{
		ID: "run-2", Board: BoardCareer, GeneratedAt: first.Add(24 * time.Hour),
		Players: 2, TopPersonID: "2544", TopScore: 97.5,
	}, []Entry{
		{Rank: 1, PersonID: "2544", Score: 97.5},
		{Rank: 2, PersonID: "893", Score: 97.1},
	})
	require.NoError(t, err)

	err = h.RecordRun(ctx, Run{
		ID: "run-3", Board: BoardRecent, GeneratedAt: first.Add(24 * time.Hour), Players: 1,
	}, []Entry{{Rank: 1, PersonID: "1628983", Score: 88}})
	require.NoError(t, err)

	scores, err := h.LatestScores(ctx, BoardCareer)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"2544": 97.5, "893": 97.1}, scores)

	runs, err := h.ListRuns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-3", runs[0].ID)
	assert.Equal(t, "run-2", runs[1].ID)
	assert.True(t, runs[1].GeneratedAt.Equal(first.Add(24*time.Hour)))
	assert.Equal(t, "2544", runs[1].TopPersonID)
	assert.InDelta(t, 97.5, runs[1].TopScore, 1e-9)
}

func TestSQLiteHistory_DuplicateRunRollsBack(t *testing.T) {
	ctx := context.Background()
	h := newTestHistory(t)
	run := Run{ID: "dup", Board: BoardCareer, GeneratedAt: time.Now()}

	require.NoError(t, h.RecordRun(ctx, run, []Entry{{Rank: 1, PersonID: "1", Score: 10}}))
	err := h.RecordRun(ctx, run, []Entry{{Rank: 1, PersonID: "2", Score: 20}})
	require.Error(t, err)

	scores, err := h.LatestScores(ctx, BoardCareer)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"1": 10}, scores)
}
