package source

import (
	"fmt"
	"strings"

	"github.com/okian/goatboard/internal/domain/model"
)

// LoadTeams reads the team histories export into a "<city> <name>" →
// abbreviation lookup. The first abbreviation seen for a key wins.
func LoadTeams(path string) (map[string]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrEmptyPath
	}
	r, closer, err := openMaybeGzip(path)
	if err != nil {
		return nil, fmt.Errorf("open teams %s: %w", path, err)
	}
	defer func() { _ = closer.Close() }()

	cr := newCSVReader(r)
	cols, err := readHeader(cr, "teamCity", "teamName", "teamAbbrev")
	if err != nil {
		return nil, fmt.Errorf("teams %s: %w", path, err)
	}

	out := make(map[string]string)
	for {
		row, err := cr.Read()
		if err != nil {
			if isEOF(err) {
				break
			}
			return nil, fmt.Errorf("teams %s: %w", path, err)
		}
		key := model.TeamKey(cols.get(row, "teamCity"), cols.get(row, "teamName"))
		abbr := cols.get(row, "teamAbbrev")
		if key == "" || abbr == "" {
			continue
		}
		if _, ok := out[key]; !ok {
			out[key] = abbr
		}
	}
	return out, nil
}
