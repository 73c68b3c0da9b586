package source

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPlayers(t *testing.T) {
	path := writeFile(t, "Players.csv", `personId,firstName,lastName,country,guard,forward,center,draftYear,draftNumber
2544,LeBron,James,USA,False,True,0,2003,1
76195,Wenyen,Gabriel,USA,,TRUE,,,
22,Rik,Smits,USA,0,0,1,1988.0,2.0
,Nobody,Here,,,,,,
`)

	players, err := LoadPlayers(path)
	require.NoError(t, err)
	require.Len(t, players, 3)

	lebron := players["2544"]
	assert.Equal(t, "LeBron James", lebron.Name())
	assert.False(t, lebron.Guard)
	assert.True(t, lebron.Forward)
	assert.False(t, lebron.Center)
	assert.Equal(t, 2003, lebron.DraftYear)
	assert.Equal(t, 1, lebron.DraftNumber)

	assert.Equal(t, "Sudan", players["76195"].Country)
	assert.Zero(t, players["76195"].DraftNumber)
	assert.Equal(t, "Netherlands", players["22"].Country)
	assert.Equal(t, 1988, players["22"].DraftYear)
	assert.True(t, players["22"].Center)

	_, err = LoadPlayers(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
	_, err = LoadPlayers("")
	assert.ErrorIs(t, err, ErrEmptyPath)
}

func TestLoadTeams(t *testing.T) {
	path := writeFile(t, "TeamHistories.csv", `teamId,teamCity,teamName,teamAbbrev,seasonFounded
1610612747,Los Angeles,Lakers,LAL,1948
1610612747,Minneapolis,Lakers,MNL,1947
1610612747,Los Angeles,Lakers,LAK,1960
1,Nowhere,,,
`)

	teams, err := LoadTeams(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"Los Angeles Lakers": "LAL",
		"Minneapolis Lakers": "MNL",
	}, teams)

	_, err = LoadTeams(writeFile(t, "bad.csv", "city,name\nA,B\n"))
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestParseActiveIDs(t *testing.T) {
	cases := []struct {
		name string
		data string
		want []string
	}{
		{"lines", "2544\n\n# comment\n201939\n2544\n", []string{"2544", "201939"}},
		{"csv", "personId,name\n2544,LeBron\n201939,Steph\n", []string{"2544", "201939"}},
		{"json strings", `["2544", "201939", ""]`, []string{"2544", "201939"}},
		{"json numbers", `[2544, 201939]`, []string{"2544", "201939"}},
		{"json objects", `[{"playerId": 2544}, {"personId": "201939"}, {"id": 3}, {"player_id": "4"}, {"name": "x"}]`,
			[]string{"2544", "201939", "3", "4"}},
		{"empty", "  \n", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseActiveIDs([]byte(tc.data))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := ParseActiveIDs([]byte(`[1, 2`))
	assert.Error(t, err)
}

func TestLoadActiveIDs(t *testing.T) {
	ids, err := LoadActiveIDs(writeFile(t, "active.txt", "1\n2\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, ids)

	_, err = LoadActiveIDs(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}
