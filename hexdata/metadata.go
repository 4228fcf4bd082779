package hexdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Metadata documents one written dataset file, including the trailing
// moves that were undone from each game before export
type Metadata struct {
	DatasetFile    string
	Dim            int
	Summary        Summary
	Format         string
	Timestamp      string
	MovesBeforeEnd int
	RemovedMoves   [][]int // one list per game, play order
}

var metadataHeader = []string{
	"Filename", "Board Dimension", "Total Games", "Unique Games",
	"Player X Wins", "Player O Wins", "No Winner", "Format", "Timestamp",
	"Moves Before End", "Removed Moves",
}

// Write writes the metadata as a two-line CSV document
func (m Metadata) Write(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(metadataHeader); err != nil {
		return err
	}
	row := []string{
		m.DatasetFile,
		fmt.Sprintf("%dx%d", m.Dim, m.Dim),
		strconv.Itoa(m.Summary.Games),
		strconv.Itoa(m.Summary.Unique),
		strconv.Itoa(m.Summary.XWins),
		strconv.Itoa(m.Summary.OWins),
		strconv.Itoa(m.Summary.NoWinner),
		m.Format,
		m.Timestamp,
		strconv.Itoa(m.MovesBeforeEnd),
		removedMovesString(m.RemovedMoves),
	}
	if err := cw.Write(row); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// removedMovesString renders per-game removed moves as nested brace
// lists, e.g. {{4,11},{7,2}}
func removedMovesString(removed [][]int) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, moves := range removed {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('{')
		for j, pos := range moves {
			if j > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(pos))
		}
		sb.WriteByte('}')
	}
	sb.WriteByte('}')
	return sb.String()
}
