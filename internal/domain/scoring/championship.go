package scoring

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/okian/goatboard/internal/domain/aggregate"
)

// ChampionshipSource supplies a championship count that may exceed what
// the finals records document.
type ChampionshipSource interface {
	// OverrideFor returns the count for a normalized player name.
	OverrideFor(nameKey string) (int, bool)
}

// NoOverrides is a ChampionshipSource that never overrides.
type NoOverrides struct{}

// OverrideFor implements ChampionshipSource.
func (NoOverrides) OverrideFor(string) (int, bool) { return 0, false }

// StaticOverrides is a ChampionshipSource backed by a fixed map.
type StaticOverrides map[string]int

// OverrideFor implements ChampionshipSource.
func (s StaticOverrides) OverrideFor(nameKey string) (int, bool) {
	v, ok := s[nameKey]
	if !ok || v <= 0 {
		return 0, false
	}
	return v, true
}

const maxResumeTitles = 30

var (
	digitTitlesRe = regexp.MustCompile(`(\d+)\s+(?:title|titles|championship|championships|ring|rings)`)
	forRecordRe   = regexp.MustCompile(`([a-z]+)-for-[a-z]+`)
	nonLettersRe  = regexp.MustCompile(`[^a-z]+`)
)

var titleWords = map[string]struct{}{
	"title": {}, "titles": {}, "championship": {}, "championships": {}, "ring": {}, "rings": {},
}

var numberWords = map[string]int{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15,
	"sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19, "twenty": 20,
}

// ParseChampionshipCount mines free text for a ring count. The first
// pattern that matches wins: "<n> titles", "<word>-for-<word>", then a
// number word right before a title keyword.
func ParseChampionshipCount(resume string) (int, bool) {
	text := strings.ToLower(resume)

	if m := digitTitlesRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.Atoi(m[1]); err == nil && v > 0 && v <= maxResumeTitles {
			return v, true
		}
	}

	if m := forRecordRe.FindStringSubmatch(text); m != nil {
		if v, ok := numberWords[m[1]]; ok {
			return v, v > 0
		}
	}

	tokens := nonLettersRe.Split(text, -1)
	prev := ""
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		if _, ok := titleWords[tok]; ok && prev != "" {
			if v, ok := numberWords[prev]; ok {
				return v, v > 0
			}
		}
		prev = tok
	}
	return 0, false
}

// ResumeOverrides is the ChampionshipSource built from resume text.
type ResumeOverrides struct {
	counts StaticOverrides
}

// NewResumeOverrides parses each resume keyed by normalized name.
func NewResumeOverrides(resumes map[string]string) *ResumeOverrides {
	counts := make(StaticOverrides, len(resumes))
	for key, text := range resumes {
		if key == "" {
			continue
		}
		if v, ok := ParseChampionshipCount(text); ok {
			counts[key] = v
		}
	}
	return &ResumeOverrides{counts: counts}
}

// OverrideFor implements ChampionshipSource.
func (r *ResumeOverrides) OverrideFor(nameKey string) (int, bool) {
	if r == nil {
		return 0, false
	}
	return r.counts.OverrideFor(nameKey)
}

// Len is the number of players with an override.
func (r *ResumeOverrides) Len() int {
	if r == nil {
		return 0
	}
	return len(r.counts)
}

// DocumentedChampionships counts finals seasons the player closed out:
// 4 wins when more than five games were played, 3 otherwise.
func DocumentedChampionships(seasons map[int]aggregate.FinalsSeason) int {
	n := 0
	for _, s := range seasons {
		if s.Games <= 0 {
			continue
		}
		target := 3
		if s.Games > 5 {
			target = 4
		}
		if s.Wins >= target {
			n++
		}
	}
	return n
}
