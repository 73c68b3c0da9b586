package source

import (
	"fmt"
	"strings"

	"github.com/okian/goatboard/internal/domain/model"
)

// Known bad country values in the public registry export.
var countryOverrides = map[string]string{
	"76195": "Sudan",
	"22":    "Netherlands",
}

// LoadPlayers reads the player registry keyed by person id. Rows without
// an id are skipped; a later duplicate replaces an earlier one.
func LoadPlayers(path string) (map[string]model.PlayerMeta, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrEmptyPath
	}
	r, closer, err := openMaybeGzip(path)
	if err != nil {
		return nil, fmt.Errorf("open players %s: %w", path, err)
	}
	defer func() { _ = closer.Close() }()

	cr := newCSVReader(r)
	cols, err := readHeader(cr, "personId")
	if err != nil {
		return nil, fmt.Errorf("players %s: %w", path, err)
	}

	out := make(map[string]model.PlayerMeta)
	for {
		row, err := cr.Read()
		if err != nil {
			if isEOF(err) {
				break
			}
			return nil, fmt.Errorf("players %s: %w", path, err)
		}
		id := cols.get(row, "personId")
		if id == "" {
			continue
		}
		meta := model.PlayerMeta{
			PersonID:    id,
			FirstName:   cols.get(row, "firstName"),
			LastName:    cols.get(row, "lastName"),
			Country:     cols.get(row, "country"),
			Guard:       parseBool(cols.get(row, "guard")),
			Forward:     parseBool(cols.get(row, "forward")),
			Center:      parseBool(cols.get(row, "center")),
			DraftYear:   parseInt(cols.get(row, "draftYear")),
			DraftNumber: parseInt(cols.get(row, "draftNumber")),
		}
		if c, ok := countryOverrides[id]; ok {
			meta.Country = c
		}
		out[id] = meta
	}
	return out, nil
}
