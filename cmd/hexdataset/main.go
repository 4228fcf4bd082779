// hexdataset generates CSV datasets of uniformly random Hex playouts
// across a range of board dimensions, one labeled row per finished game,
// with a companion metadata file documenting each dataset.
package main

import (
	"log"
	"os"
	"time"
)

func main() {
	var args arguments
	if err := args.parse(); err != nil {
		log.Fatal(err)
	}
	cfg := args.cfg
	if err := cfg.check(); err != nil {
		log.Fatal(err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		log.Fatal(err)
	}
	if err := os.MkdirAll(cfg.MetaDir, 0755); err != nil {
		log.Fatal(err)
	}

	for dim := cfg.MinDim; dim <= cfg.MaxDim; dim++ {
		if err := generateDimension(cfg, dim, seed); err != nil {
			log.Fatal(err)
		}
	}
}
