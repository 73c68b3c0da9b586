package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/okian/goatboard/internal/domain/model"
)

// Box-score CSV columns.
const (
	colPersonID  = "personId"
	colGameDate  = "gameDate"
	colMinutes   = "numMinutes"
	colPoints    = "points"
	colAssists   = "assists"
	colRebounds  = "reboundsTotal"
	colSteals    = "steals"
	colBlocks    = "blocks"
	colPlusMinus = "plusMinusPoints"
	colWin       = "win"
	colGameType  = "gameType"
	colGameLabel = "gameLabel"
	colTeamCity  = "playerteamCity"
	colTeamName  = "playerteamName"
	colFirstName = "firstName"
	colLastName  = "lastName"
)

// BoxScoreReader streams records from a PlayerStatistics export, plain
// or gzip-compressed. It never holds more than one row in memory.
type BoxScoreReader struct {
	csv    *csv.Reader
	cols   header
	closer io.Closer
	rows   int
}

// OpenBoxScores opens the export at path. Any failure wraps ErrStatsUnavailable.
func OpenBoxScores(path string) (*BoxScoreReader, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: %w", ErrStatsUnavailable, ErrEmptyPath)
	}
	r, closer, err := openMaybeGzip(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrStatsUnavailable, path, err)
	}
	b, err := newBoxScoreReader(r, closer)
	if err != nil {
		_ = closer.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// NewBoxScoreReader reads records from r. The caller keeps ownership of r.
func NewBoxScoreReader(r io.Reader) (*BoxScoreReader, error) {
	return newBoxScoreReader(r, nil)
}

func newBoxScoreReader(r io.Reader, closer io.Closer) (*BoxScoreReader, error) {
	cr := newCSVReader(r)
	cols, err := readHeader(cr, colPersonID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStatsUnavailable, err)
	}
	return &BoxScoreReader{csv: cr, cols: cols, closer: closer}, nil
}

// Next returns the next record, or io.EOF once the stream is exhausted.
// Read failures wrap ErrStatsUnavailable.
func (b *BoxScoreReader) Next() (model.BoxScoreRecord, error) {
	row, err := b.csv.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return model.BoxScoreRecord{}, io.EOF
		}
		return model.BoxScoreRecord{}, fmt.Errorf("%w: row %d: %w", ErrStatsUnavailable, b.rows+1, err)
	}
	b.rows++

	c := b.cols
	date, _ := model.ParseGameDate(c.get(row, colGameDate))
	return model.BoxScoreRecord{
		PersonID:  c.get(row, colPersonID),
		GameDate:  date,
		Minutes:   parseFloat(c.get(row, colMinutes)),
		Points:    parseFloat(c.get(row, colPoints)),
		Assists:   parseFloat(c.get(row, colAssists)),
		Rebounds:  parseFloat(c.get(row, colRebounds)),
		Steals:    parseFloat(c.get(row, colSteals)),
		Blocks:    parseFloat(c.get(row, colBlocks)),
		PlusMinus: parseFloat(c.get(row, colPlusMinus)),
		Win:       c.get(row, colWin) == "1",
		GameType:  c.get(row, colGameType),
		GameLabel: c.get(row, colGameLabel),
		TeamCity:  c.get(row, colTeamCity),
		TeamName:  c.get(row, colTeamName),
		FirstName: c.get(row, colFirstName),
		LastName:  c.get(row, colLastName),
	}, nil
}

// Rows is the number of data rows read so far.
func (b *BoxScoreReader) Rows() int { return b.rows }

// Close releases the underlying file.
func (b *BoxScoreReader) Close() error {
	if b.closer == nil {
		return nil
	}
	return b.closer.Close()
}
