// hexstats re-analyzes written Hex dataset files and reports game totals,
// unique-position counts, and win balance per file and in aggregate.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dodgebc/hex-game-utils/hexdata"
)

func main() {

	var quiet bool
	flag.BoolVar(&quiet, "quiet", false, "print only the aggregate totals")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: hexstats [options] [csvfile1 csvfile2 ... csvfileN]\n\n")
		fmt.Fprintf(flag.CommandLine.Output(), "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	files := flag.Args()
	if len(files) == 0 {
		log.Fatal("no dataset files provided")
	}

	var total hexdata.Summary
	failed := 0
	for _, path := range files {
		s, err := hexdata.SummarizeFile(path)
		if err != nil {
			log.Printf("skipping %s: %s", path, err)
			failed++
			continue
		}
		if !quiet {
			printSummary(path, s)
		}
		total.Add(s)
	}
	if failed == len(files) {
		os.Exit(1)
	}
	printSummary("total", total)
}

func printSummary(label string, s hexdata.Summary) {
	fmt.Printf("%s: %d games, %d unique, X %d, O %d, none %d\n",
		label, s.Games, s.Unique, s.XWins, s.OWins, s.NoWinner)
}
