// Package repository holds the leaderboard index and the run history store.
package repository

// Entry represents a leaderboard row.
type Entry struct {
	Rank     int
	PersonID string
	Score    float64
}

// Store is an ordered leaderboard: score DESC, then person id ASC.
// Ranks are 1-based positions, so tied scores get consecutive ranks.
type Store interface {
	// Upsert sets the score for a person, replacing any previous one.
	Upsert(personID string, score float64)

	// TopN returns the top-N entries in rank order.
	TopN(n int) ([]Entry, error)

	// Entries returns every entry in rank order.
	Entries() []Entry

	// Count returns the number of people on the board.
	Count() int
}
