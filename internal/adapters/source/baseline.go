package source

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/okian/goatboard/internal/domain/baseline"
)

type baselineDoc struct {
	GeneratedAt string           `json:"generatedAt"`
	Players     []baselinePlayer `json:"players"`
}

type baselinePlayer struct {
	Name        string                     `json:"name"`
	PersonID    json.RawMessage            `json:"personId"`
	Components  map[string]json.RawMessage `json:"goatComponents"`
	Tier        string                     `json:"tier"`
	Resume      string                     `json:"resume"`
	Status      string                     `json:"status"`
	Franchises  []string                   `json:"franchises"`
	PrimeWindow string                     `json:"primeWindow"`
	Delta       *float64                   `json:"delta"`
}

// LoadBaseline reads the external component feed. Callers treat any
// error as "no baseline" and continue with internal data only.
func LoadBaseline(path string) (baseline.Feed, error) {
	if strings.TrimSpace(path) == "" {
		return baseline.Feed{}, ErrEmptyPath
	}
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator config
	if err != nil {
		return baseline.Feed{}, fmt.Errorf("read baseline %s: %w", path, err)
	}
	feed, err := ParseBaseline(data)
	if err != nil {
		return baseline.Feed{}, fmt.Errorf("baseline %s: %w", path, err)
	}
	return feed, nil
}

// ParseBaseline decodes a baseline document. Non-numeric component values
// are dropped rather than failing the whole feed.
func ParseBaseline(data []byte) (baseline.Feed, error) {
	var doc baselineDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return baseline.Feed{}, fmt.Errorf("decode json: %w", err)
	}

	feed := baseline.Feed{
		GeneratedAt: strings.TrimSpace(doc.GeneratedAt),
		Players:     make([]baseline.Entry, 0, len(doc.Players)),
	}
	for _, p := range doc.Players {
		entry := baseline.Entry{
			Name:        strings.TrimSpace(p.Name),
			Tier:        strings.TrimSpace(p.Tier),
			Resume:      strings.TrimSpace(p.Resume),
			Status:      strings.TrimSpace(p.Status),
			Franchises:  p.Franchises,
			PrimeWindow: strings.TrimSpace(p.PrimeWindow),
			Delta:       p.Delta,
		}
		if len(p.PersonID) > 0 {
			if id, ok := jsonID(p.PersonID); ok {
				entry.PersonID = id
			}
		}
		if len(p.Components) > 0 {
			entry.Components = make(map[string]float64, len(p.Components))
			for key, raw := range p.Components {
				var v float64
				if err := json.Unmarshal(raw, &v); err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
					continue
				}
				entry.Components[key] = v
			}
		}
		feed.Players = append(feed.Players, entry)
	}
	return feed, nil
}
