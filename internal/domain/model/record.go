// Package model contains domain models passed between layers.
package model

import (
	"strconv"
	"strings"
	"time"
)

// BoxScoreRecord is one player's line for one game.
// Numeric fields are already coerced; unparseable input arrives as 0.
type BoxScoreRecord struct {
	PersonID  string
	GameDate  time.Time // zero when the source date could not be parsed
	Minutes   float64
	Points    float64
	Assists   float64
	Rebounds  float64
	Steals    float64
	Blocks    float64
	PlusMinus float64
	Win       bool
	GameType  string
	GameLabel string
	TeamCity  string
	TeamName  string
	FirstName string
	LastName  string
}

// HasDate reports whether the game date was parsed.
func (r BoxScoreRecord) HasDate() bool { return !r.GameDate.IsZero() }

// TeamKey is the "<city> <name>" key used for franchise lookups.
func (r BoxScoreRecord) TeamKey() string {
	return TeamKey(r.TeamCity, r.TeamName)
}

// TeamKey joins a team city and name the way the team registry keys them.
func TeamKey(city, name string) string {
	return strings.TrimSpace(strings.TrimSpace(city) + " " + strings.TrimSpace(name))
}

// PlayerMeta is a player registry row.
type PlayerMeta struct {
	PersonID    string
	FirstName   string
	LastName    string
	Country     string
	Guard       bool
	Forward     bool
	Center      bool
	DraftYear   int // 0 when unknown
	DraftNumber int // 0 when undrafted or unknown
}

// Name returns the display name, falling back to the person id.
func (p PlayerMeta) Name() string {
	name := strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
	if name == "" {
		return p.PersonID
	}
	return name
}

// NameKey returns the normalized name used to join external feeds.
func (p PlayerMeta) NameKey() string {
	return NormalizeNameKey(p.FirstName + " " + p.LastName)
}

// Positions counts the positional flags set on the player.
func (p PlayerMeta) Positions() int {
	n := 0
	for _, flag := range []bool{p.Guard, p.Forward, p.Center} {
		if flag {
			n++
		}
	}
	return n
}

// ComparePersonID orders integer ids numerically, ahead of every
// non-integer id; the rest compare lexically. Returns -1, 0 or 1.
func ComparePersonID(a, b string) int {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	switch {
	case errA == nil && errB != nil:
		return -1
	case errA != nil && errB == nil:
		return 1
	case errA == nil && errB == nil:
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		}
	}
	return strings.Compare(a, b)
}

// NormalizeNameKey lowercases s and drops everything outside [a-z0-9].
func NormalizeNameKey(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FinalsMVP aggregates Finals MVP awards for one normalized name.
type FinalsMVP struct {
	Count int
	Years []int
}

// FinalsMVPLedger maps normalized names to their awards.
type FinalsMVPLedger map[string]FinalsMVP

// CountFor returns the number of awards recorded for nameKey.
func (l FinalsMVPLedger) CountFor(nameKey string) int {
	if l == nil {
		return 0
	}
	return l[nameKey].Count
}
