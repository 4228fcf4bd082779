package main

import (
	"flag"
	"fmt"
)

type arguments struct {
	configFile string
	cfg        generatorConfig
}

// parse reads command line flags, optionally seeded from a YAML config
// file; flags given explicitly override the file
func (a *arguments) parse() error {
	a.cfg = defaultConfig()
	flag.StringVar(&a.configFile, "config", "", "YAML run configuration file")
	flag.IntVar(&a.cfg.MinDim, "mindim", a.cfg.MinDim, "smallest board dimension to generate")
	flag.IntVar(&a.cfg.MaxDim, "maxdim", a.cfg.MaxDim, "largest board dimension to generate")
	flag.IntVar(&a.cfg.Games, "games", a.cfg.Games, "games to generate per board dimension")
	flag.IntVar(&a.cfg.MovesBeforeEnd, "movesbeforeend", 0, "trailing moves to undo before export")
	flag.IntVar(&a.cfg.Workers, "workers", a.cfg.Workers, "number of concurrent workers to use")
	flag.StringVar(&a.cfg.DataDir, "datadir", a.cfg.DataDir, "directory for dataset files")
	flag.StringVar(&a.cfg.MetaDir, "metadir", a.cfg.MetaDir, "directory for metadata files")
	flag.BoolVar(&a.cfg.Gzip, "gzip", false, "compress datasets with parallel gzip")
	flag.Int64Var(&a.cfg.Seed, "seed", 0, "base random seed, 0 means time-based")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: hexdataset [options]\n\n")
		fmt.Fprintf(flag.CommandLine.Output(), "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if a.configFile == "" {
		return nil
	}
	fileCfg, err := loadConfig(a.configFile)
	if err != nil {
		return err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mindim":
			fileCfg.MinDim = a.cfg.MinDim
		case "maxdim":
			fileCfg.MaxDim = a.cfg.MaxDim
		case "games":
			fileCfg.Games = a.cfg.Games
		case "movesbeforeend":
			fileCfg.MovesBeforeEnd = a.cfg.MovesBeforeEnd
		case "workers":
			fileCfg.Workers = a.cfg.Workers
		case "datadir":
			fileCfg.DataDir = a.cfg.DataDir
		case "metadir":
			fileCfg.MetaDir = a.cfg.MetaDir
		case "gzip":
			fileCfg.Gzip = a.cfg.Gzip
		case "seed":
			fileCfg.Seed = a.cfg.Seed
		}
	})
	a.cfg = fileCfg
	return nil
}
