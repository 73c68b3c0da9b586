package source

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadActiveIDs reads the active-player id list. Three layouts are
// accepted: a JSON array (of ids or of objects carrying one), a CSV with
// a personId column, or one id per line. Order is preserved and
// duplicates are dropped.
func LoadActiveIDs(path string) ([]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrEmptyPath
	}
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("read active ids %s: %w", path, err)
	}
	ids, err := ParseActiveIDs(data)
	if err != nil {
		return nil, fmt.Errorf("active ids %s: %w", path, err)
	}
	return ids, nil
}

// ParseActiveIDs detects the layout of data and extracts the ids.
func ParseActiveIDs(data []byte) ([]string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] == '[' {
		return parseActiveJSON(trimmed)
	}

	first, _, _ := strings.Cut(string(trimmed), "\n")
	if strings.Contains(first, "personId") {
		return parseActiveCSV(trimmed)
	}
	return parseActiveLines(trimmed), nil
}

var activeIDKeys = []string{"playerId", "personId", "id", "player_id"}

func parseActiveJSON(data []byte) ([]string, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	var ids idSet
	for _, item := range raw {
		if id, ok := jsonID(item); ok {
			ids.add(id)
			continue
		}
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(item, &obj); err != nil {
			continue
		}
		for _, key := range activeIDKeys {
			if v, ok := obj[key]; ok {
				if id, ok := jsonID(v); ok {
					ids.add(id)
					break
				}
			}
		}
	}
	return ids.list, nil
}

// jsonID accepts a JSON string or an integral number.
func jsonID(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s), strings.TrimSpace(s) != ""
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if i, err := n.Int64(); err == nil {
			return strconv.FormatInt(i, 10), true
		}
		if f, err := n.Float64(); err == nil && f == float64(int64(f)) {
			return strconv.FormatInt(int64(f), 10), true
		}
	}
	return "", false
}

func parseActiveCSV(data []byte) ([]string, error) {
	cr := newCSVReader(bytes.NewReader(data))
	cols, err := readHeader(cr, "personId")
	if err != nil {
		return nil, err
	}
	var ids idSet
	for {
		row, err := cr.Read()
		if err != nil {
			if isEOF(err) {
				break
			}
			return nil, err
		}
		ids.add(cols.get(row, "personId"))
	}
	return ids.list, nil
}

func parseActiveLines(data []byte) []string {
	var ids idSet
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ids.add(line)
	}
	return ids.list
}

type idSet struct {
	seen map[string]struct{}
	list []string
}

func (s *idSet) add(id string) {
	id = strings.TrimSpace(id)
	if id == "" {
		return
	}
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, dup := s.seen[id]; dup {
		return
	}
	s.seen[id] = struct{}{}
	s.list = append(s.list, id)
}
