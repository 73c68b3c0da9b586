// Package baseline indexes an external per-player component feed and
// resolves internal players against it.
//
// Resolution is two-tier: an exact person id match first, then the
// normalized name. Every lookup reports which tier matched so callers
// can audit match confidence.
package baseline

import (
	"strings"

	"github.com/okian/goatboard/internal/domain/model"
	"github.com/okian/goatboard/internal/domain/normalize"
)

// Entry is one player in the external feed.
type Entry struct {
	Name     string
	PersonID string // optional
	// Components holds only the numeric values the feed supplied.
	Components  map[string]float64
	Tier        string
	Resume      string
	Status      string
	Franchises  []string
	PrimeWindow string
	Delta       *float64
}

// NameKey is the normalized name used for fallback matching.
func (e Entry) NameKey() string {
	return model.NormalizeNameKey(e.Name)
}

// Feed is a parsed baseline document.
type Feed struct {
	GeneratedAt string
	Players     []Entry
}

// MatchKind tags how a player was resolved.
type MatchKind int

// Match kinds.
const (
	Unmatched MatchKind = iota
	ByID
	ByName
)

func (k MatchKind) String() string {
	switch k {
	case ByID:
		return "by_id"
	case ByName:
		return "by_name"
	default:
		return "unmatched"
	}
}

// Match is the result of resolving a player against the feed.
type Match struct {
	Kind  MatchKind
	Entry *Entry
}

// Found reports whether the player matched an entry.
func (m Match) Found() bool { return m.Kind != Unmatched && m.Entry != nil }

// Index is a read-only lookup over a Feed. A nil *Index behaves as an
// empty feed.
type Index struct {
	entries     []Entry
	byID        map[string]int
	byName      map[string]int
	maxima      normalize.Maxima
	generatedAt string
}

// NewIndex builds an index. Entries without a name are dropped. When two
// entries share a name key the later one wins the name slot.
func NewIndex(feed Feed) *Index {
	ix := &Index{
		byID:        make(map[string]int),
		byName:      make(map[string]int),
		maxima:      make(normalize.Maxima, len(model.CareerKeys)),
		generatedAt: strings.TrimSpace(feed.GeneratedAt),
	}
	for _, key := range model.CareerKeys {
		ix.maxima[key] = 0
	}

	for _, e := range feed.Players {
		e.Name = strings.TrimSpace(e.Name)
		e.PersonID = strings.TrimSpace(e.PersonID)
		if e.Name == "" {
			continue
		}
		i := len(ix.entries)
		ix.entries = append(ix.entries, e)

		if e.PersonID != "" {
			if _, dup := ix.byID[e.PersonID]; !dup {
				ix.byID[e.PersonID] = i
			}
		}
		if key := e.NameKey(); key != "" {
			ix.byName[key] = i
		}
		for key, v := range e.Components {
			if _, ok := ix.maxima[key]; ok && v > ix.maxima[key] {
				ix.maxima[key] = v
			}
		}
	}
	return ix
}

// Len is the number of indexed entries.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.entries)
}

// GeneratedAt is the feed's own timestamp, if it had one.
func (ix *Index) GeneratedAt() string {
	if ix == nil {
		return ""
	}
	return ix.generatedAt
}

// Maxima are the feed's per-component maxima.
func (ix *Index) Maxima() normalize.Maxima {
	if ix == nil {
		return nil
	}
	return ix.maxima
}

// Resolve finds the entry for a player. An entry carrying a different
// person id is never matched by name.
func (ix *Index) Resolve(personID, nameKey string) Match {
	if ix == nil {
		return Match{Kind: Unmatched}
	}
	if personID != "" {
		if i, ok := ix.byID[personID]; ok {
			return Match{Kind: ByID, Entry: &ix.entries[i]}
		}
	}
	if nameKey != "" {
		if i, ok := ix.byName[nameKey]; ok {
			e := &ix.entries[i]
			if e.PersonID == "" || e.PersonID == personID {
				return Match{Kind: ByName, Entry: e}
			}
		}
	}
	return Match{Kind: Unmatched}
}

// Baseline returns the normalizer input for a match.
func (ix *Index) Baseline(m Match) normalize.Baseline {
	if ix == nil || !m.Found() || len(m.Entry.Components) == 0 {
		return normalize.Baseline{}
	}
	return normalize.Baseline{Values: m.Entry.Components, Maxima: ix.maxima}
}

// Resumes maps name keys to resume text.
func (ix *Index) Resumes() map[string]string {
	out := make(map[string]string)
	if ix == nil {
		return out
	}
	for _, e := range ix.entries {
		if key := e.NameKey(); key != "" && strings.TrimSpace(e.Resume) != "" {
			out[key] = e.Resume
		}
	}
	return out
}
