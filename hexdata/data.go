/*
Package hexdata defines the tabular dataset format for exported Hex
playouts and provides file-level analysis of written datasets.

Each dataset row holds the final board as one column per cell (+1 X stone,
-1 O stone, 0 empty) followed by the starting-player and winner labels.
A winner of 0 marks a full board with no connection, which cannot occur in
Hex but is still representable.
*/
package hexdata

import (
	"fmt"
	"strconv"
	"time"
)

// Record stores one exported game
type Record struct {
	Dim            int
	Cells          []int8 // row-major, length Dim*Dim
	StartingPlayer int8   // +1 or -1
	Winner         int8   // +1, -1, or 0 for none
	RemovedMoves   []int  // trailing moves undone before export, oldest first
}

// Header returns the dataset column names: cell<row>_<col> for each cell,
// then starting_player and winner
func Header(dim int) []string {
	header := make([]string, 0, dim*dim+2)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			header = append(header, fmt.Sprintf("cell%d_%d", i, j))
		}
	}
	return append(header, "starting_player", "winner")
}

// Row projects the record to dataset fields in Header order.
// RemovedMoves is not part of the row; it goes to the metadata file.
func (r Record) Row() []string {
	row := make([]string, 0, len(r.Cells)+2)
	for _, v := range r.Cells {
		row = append(row, strconv.Itoa(int(v)))
	}
	row = append(row, strconv.Itoa(int(r.StartingPlayer)))
	row = append(row, strconv.Itoa(int(r.Winner)))
	return row
}

// ParseRow inverts Row for a board of the given dimension
func ParseRow(dim int, fields []string) (Record, error) {
	if len(fields) != dim*dim+2 {
		return Record{}, fmt.Errorf("row has %d fields, want %d", len(fields), dim*dim+2)
	}
	r := Record{Dim: dim, Cells: make([]int8, dim*dim)}
	for i := 0; i < dim*dim; i++ {
		v, err := strconv.Atoi(fields[i])
		if err != nil || v < -1 || v > 1 {
			return Record{}, fmt.Errorf("bad cell value %q", fields[i])
		}
		r.Cells[i] = int8(v)
	}
	sp, err := strconv.Atoi(fields[dim*dim])
	if err != nil || (sp != 1 && sp != -1) {
		return Record{}, fmt.Errorf("bad starting player %q", fields[dim*dim])
	}
	r.StartingPlayer = int8(sp)
	w, err := strconv.Atoi(fields[dim*dim+1])
	if err != nil || w < -1 || w > 1 {
		return Record{}, fmt.Errorf("bad winner %q", fields[dim*dim+1])
	}
	r.Winner = int8(w)
	return r, nil
}

// Timestamp formats t for dataset filenames; detailed adds the date and
// millisecond precision used in metadata rows
func Timestamp(t time.Time, detailed bool) string {
	if detailed {
		return t.Format("20060102:150405.000")
	}
	return t.Format("150405")
}
