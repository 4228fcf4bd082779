package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dodgebc/hex-game-utils/hex"
	"github.com/dodgebc/hex-game-utils/hexdata"
	"golang.org/x/build/pargzip"
)

// playOneGame runs a single random playout on a reused engine and
// projects it to a dataset record. Engine errors are contract violations
// (a misconfigured undo depth, a placement on a full board) and are
// returned for the caller to fail loudly on.
func playOneGame(g *hex.Game, rng *rand.Rand, movesBeforeEnd int) (hexdata.Record, error) {
	g.Reset()
	player := hex.PlayerX
	var winner int8
	for !g.Full() {
		pos, err := g.PlaceRandom(player, rng)
		if err != nil {
			return hexdata.Record{}, err
		}
		if g.CheckWin(player, pos) {
			winner = player.CellValue()
			break
		}
		player = player.Opponent()
	}

	removed, err := g.UndoLastN(movesBeforeEnd)
	if err != nil {
		return hexdata.Record{}, fmt.Errorf("undoing %d moves of a %d move game: %w", movesBeforeEnd, g.MoveCount(), err)
	}
	return hexdata.Record{
		Dim:            g.Dim(),
		Cells:          g.CellVector(),
		StartingPlayer: hex.PlayerX.CellValue(),
		Winner:         winner,
		RemovedMoves:   removed,
	}, nil
}

// generateDimension simulates cfg.Games random playouts on dim-sized
// boards, writes the dataset file, and documents it with a metadata file.
// Each worker owns a private engine and random source; a single collector
// owns the dataset writer.
func generateDimension(cfg generatorConfig, dim int, seed int64) error {

	// Timestamped dataset filename
	name := fmt.Sprintf("%dx%d_%d_coord_%s_%d.csv",
		dim, dim, cfg.Games, hexdata.Timestamp(time.Now(), false), cfg.MovesBeforeEnd)
	if cfg.Gzip {
		name += ".gz"
	}
	path := filepath.Join(cfg.DataDir, name)

	// Open output file, compressing if requested
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	var out io.Writer = f
	var gzipWriter *pargzip.Writer
	if cfg.Gzip {
		gzipWriter = pargzip.NewWriter(f)
		gzipWriter.Parallel = cfg.Workers
		out = gzipWriter
	}
	w := csv.NewWriter(out)
	if err := w.Write(hexdata.Header(dim)); err != nil {
		return err
	}

	// Workers simulate independent games and send completed records
	jobs := make(chan int, cfg.Workers*2)
	records := make(chan hexdata.Record)
	var wg sync.WaitGroup
	wg.Add(cfg.Workers)
	for i := 0; i < cfg.Workers; i++ {
		go func(workerID int) {
			defer wg.Done()
			g := hex.NewGame(dim)
			rng := rand.New(rand.NewSource(seed + int64(dim)<<32 + int64(workerID)))
			for range jobs {
				rec, err := playOneGame(g, rng, cfg.MovesBeforeEnd)
				if err != nil {
					log.Fatalf("game aborted: %s", err)
				}
				records <- rec
			}
		}(i)
	}
	go func() {
		wg.Wait()
		close(records)
	}()
	go func() {
		for i := 0; i < cfg.Games; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	// Single collector owns the dataset writer
	progress := NewProgressUpdate(name)
	removedMoves := make([][]int, 0, cfg.Games)
	for rec := range records {
		if err := w.Write(rec.Row()); err != nil {
			return err
		}
		removedMoves = append(removedMoves, rec.RemovedMoves)
		progress.Update(1)
	}
	progress.Close()

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	if gzipWriter != nil {
		if err := gzipWriter.Close(); err != nil {
			return err
		}
	}
	if err := f.Close(); err != nil {
		return err
	}

	// Re-read the written file and document it
	summary, err := hexdata.SummarizeFile(path)
	if err != nil {
		return fmt.Errorf("failed to analyze %s: %w", path, err)
	}
	meta := hexdata.Metadata{
		DatasetFile:    name,
		Dim:            dim,
		Summary:        summary,
		Format:         "coord",
		Timestamp:      hexdata.Timestamp(time.Now(), true),
		MovesBeforeEnd: cfg.MovesBeforeEnd,
		RemovedMoves:   removedMoves,
	}
	metaPath := filepath.Join(cfg.MetaDir, "metadata_"+name)
	mf, err := os.Create(metaPath)
	if err != nil {
		return err
	}
	defer mf.Close()
	return meta.Write(mf)
}
