package source

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBaseline(t *testing.T) {
	feed, err := ParseBaseline([]byte(`{
  "generatedAt": "2025-01-01T00:00:00Z",
  "players": [
    {
      "name": "Michael Jordan",
      "personId": 893,
      "goatComponents": {"impact": 0.98, "stage": 1, "culture": "n/a"},
      "tier": "Pantheon",
      "resume": "6× champion",
      "status": "Legend",
      "franchises": ["CHI", "WAS"],
      "primeWindow": "1987-1993",
      "delta": 1.5
    },
    {"name": "Anon", "personId": "abc", "goatComponents": null}
  ]
}`))
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01T00:00:00Z", feed.GeneratedAt)
	require.Len(t, feed.Players, 2)

	mj := feed.Players[0]
	assert.Equal(t, "893", mj.PersonID)
	assert.Equal(t, map[string]float64{"impact": 0.98, "stage": 1}, mj.Components)
	assert.Equal(t, "Pantheon", mj.Tier)
	assert.Equal(t, []string{"CHI", "WAS"}, mj.Franchises)
	require.NotNil(t, mj.Delta)
	assert.Equal(t, 1.5, *mj.Delta)

	anon := feed.Players[1]
	assert.Equal(t, "abc", anon.PersonID)
	assert.Nil(t, anon.Components)
	assert.Nil(t, anon.Delta)

	_, err = ParseBaseline([]byte(`{"players": [`))
	assert.Error(t, err)
}

func TestLoadBaseline_Missing(t *testing.T) {
	_, err := LoadBaseline(filepath.Join(t.TempDir(), "goat_index.json"))
	assert.Error(t, err)
}

func TestParseFinalsMVPs(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		ledger, err := ParseFinalsMVPs([]byte(`
winners:
  - player: Michael Jordan
    year: 1993
  - player: Michael Jordan
    year: 1991
  - player: michael jordan
    year: 1991
  - player: Tim Duncan
    year: 1999
  - player: ""
    year: 2000
`))
		require.NoError(t, err)
		assert.Len(t, ledger, 2)
		assert.Equal(t, 3, ledger.CountFor("michaeljordan"))
		assert.Equal(t, []int{1991, 1993}, ledger["michaeljordan"].Years)
		assert.Equal(t, 1, ledger.CountFor("timduncan"))
	})

	t.Run("json", func(t *testing.T) {
		path := writeFile(t, "finals_mvp.json", `{"winners": [{"player": "Magic Johnson", "year": 1980}]}`)
		ledger, err := LoadFinalsMVPs(path)
		require.NoError(t, err)
		assert.Equal(t, 1, ledger.CountFor("magicjohnson"))
		assert.Equal(t, []int{1980}, ledger["magicjohnson"].Years)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := ParseFinalsMVPs([]byte("winners: [\n"))
		assert.Error(t, err)
	})
}
