package service

import (
	"github.com/okian/goatboard/internal/adapters/repository"
	"github.com/okian/goatboard/internal/domain/ranking"
)

// rankBoard loads rows into a fresh leaderboard and reads them back in
// rank order. A positive limit keeps only the top entries.
func rankBoard(rows []ranking.Scored, limit int) []ranking.Ranked {
	board := repository.NewTreapStore(repository.WithCapacity(len(rows)))
	for _, r := range rows {
		board.Upsert(r.PersonID, r.Score)
	}

	var entries []repository.Entry
	if limit > 0 && limit < board.Count() {
		// limit is positive, so TopN cannot fail.
		entries, _ = board.TopN(limit)
	} else {
		entries = board.Entries()
	}

	out := make([]ranking.Ranked, len(entries))
	for i, e := range entries {
		out[i] = ranking.Ranked{Rank: e.Rank, PersonID: e.PersonID, Score: e.Score}
	}
	return out
}
