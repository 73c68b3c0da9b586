package source

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const boxScoreCSV = `personId,firstName,lastName,gameDate,playerteamCity,playerteamName,gameType,gameLabel,win,numMinutes,points,assists,reboundsTotal,steals,blocks,plusMinusPoints
2544,LeBron,James,2016-06-19 20:00:00,Cleveland,Cavaliers,Playoffs,NBA Finals,1,46.5,27,11,11,2,3,4
2544,LeBron,James,not-a-date,Cleveland,Cavaliers,Regular Season,,0,,abc,NaN,Inf,1,0,-3
,,,2016-06-19,,,,,,,,,,,,
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func readAll(t *testing.T, r *BoxScoreReader) []string {
	t.Helper()
	var ids []string
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return ids
		}
		require.NoError(t, err)
		ids = append(ids, rec.PersonID)
	}
}

func TestBoxScoreReader_ParsesRecords(t *testing.T) {
	r, err := NewBoxScoreReader(strings.NewReader(boxScoreCSV))
	require.NoError(t, err)

	rec, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, "2544", rec.PersonID)
	assert.True(t, rec.GameDate.Equal(time.Date(2016, 6, 19, 20, 0, 0, 0, time.UTC)))
	assert.Equal(t, 46.5, rec.Minutes)
	assert.Equal(t, 27.0, rec.Points)
	assert.Equal(t, 11.0, rec.Rebounds)
	assert.True(t, rec.Win)
	assert.Equal(t, "Playoffs", rec.GameType)
	assert.Equal(t, "NBA Finals", rec.GameLabel)
	assert.Equal(t, "Cleveland Cavaliers", rec.TeamKey())

	rec, err = r.Next()
	require.NoError(t, err)
	assert.False(t, rec.HasDate())
	assert.Zero(t, rec.Minutes)
	assert.Zero(t, rec.Points)
	assert.Zero(t, rec.Assists)
	assert.Zero(t, rec.Rebounds)
	assert.Equal(t, -3.0, rec.PlusMinus)
	assert.False(t, rec.Win)

	rec, err = r.Next()
	require.NoError(t, err)
	assert.Empty(t, rec.PersonID)

	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, 3, r.Rows())
	assert.NoError(t, r.Close())
}

func TestBoxScoreReader_RequiresPersonID(t *testing.T) {
	_, err := NewBoxScoreReader(strings.NewReader("gameDate,points\n2020-01-01,3\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStatsUnavailable)
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestOpenBoxScores(t *testing.T) {
	t.Run("plain file", func(t *testing.T) {
		r, err := OpenBoxScores(writeFile(t, "PlayerStatistics.csv", boxScoreCSV))
		require.NoError(t, err)
		defer r.Close()
		assert.Len(t, readAll(t, r), 3)
	})

	t.Run("gzip file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "PlayerStatistics.csv.gz")
		f, err := os.Create(path)
		require.NoError(t, err)
		gz := gzip.NewWriter(f)
		_, err = gz.Write([]byte(boxScoreCSV))
		require.NoError(t, err)
		require.NoError(t, gz.Close())
		require.NoError(t, f.Close())

		r, err := OpenBoxScores(path)
		require.NoError(t, err)
		defer r.Close()
		assert.Equal(t, []string{"2544", "2544", ""}, readAll(t, r))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := OpenBoxScores(filepath.Join(t.TempDir(), "absent.csv"))
		assert.ErrorIs(t, err, ErrStatsUnavailable)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := OpenBoxScores(" ")
		assert.ErrorIs(t, err, ErrStatsUnavailable)
	})
}
