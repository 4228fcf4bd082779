package hexdata

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"hash/maphash"
	"io"
	"os"
	"strconv"
	"strings"
)

// Summary aggregates the contents of one dataset file
type Summary struct {
	Games    int
	Unique   int // distinct final positions
	XWins    int
	OWins    int
	NoWinner int
}

// Add accumulates another summary into s
func (s *Summary) Add(s2 Summary) {
	s.Games += s2.Games
	s.Unique += s2.Unique
	s.XWins += s2.XWins
	s.OWins += s2.OWins
	s.NoWinner += s2.NoWinner
}

// Summarize reads a dataset with its header row and tallies game totals,
// win balance, and the number of distinct final positions. Positions are
// deduplicated by hash, so Unique may very rarely undercount.
func Summarize(r io.Reader) (Summary, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return Summary{}, fmt.Errorf("failed to read dataset header: %w", err)
	}
	if len(header) < 3 || header[len(header)-1] != "winner" {
		return Summary{}, fmt.Errorf("unrecognized dataset header")
	}
	cells := len(header) - 2

	var s Summary
	seen := make(map[uint64]bool)
	seed := maphash.MakeSeed()
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Summary{}, err
		}

		var hash maphash.Hash
		hash.SetSeed(seed)
		for _, f := range fields[:cells] {
			hash.WriteString(f)
			hash.WriteByte(',')
		}
		sum := hash.Sum64()
		if !seen[sum] {
			seen[sum] = true
			s.Unique++
		}

		winner, err := strconv.Atoi(fields[len(fields)-1])
		if err != nil {
			return Summary{}, fmt.Errorf("bad winner field %q", fields[len(fields)-1])
		}
		switch winner {
		case 1:
			s.XWins++
		case -1:
			s.OWins++
		default:
			s.NoWinner++
		}
		s.Games++
	}
	return s, nil
}

// SummarizeFile summarizes a dataset file, decompressing .gz files
// transparently
func SummarizeFile(path string) (Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gzipReader, err := gzip.NewReader(f)
		if err != nil {
			return Summary{}, err
		}
		defer gzipReader.Close()
		r = gzipReader
	}
	return Summarize(r)
}
