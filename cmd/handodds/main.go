package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/jokerdeck/handodds/internal/simulator"
)

type CLI struct {
	Cards         int    `default:"7" help:"Number of items drawn per hand (max 12)"`
	Decks         int    `default:"1" help:"Number of 52-card sub-decks in the deck"`
	Jokers        int    `default:"0" help:"Number of jokers added to the deck"`
	HandSize      int    `default:"5" help:"Hand size selecting the size-specific categories (5 or 6)"`
	BatchSize     int    `default:"100000" help:"Samples between convergence checks"`
	MaxIterations uint64 `default:"0" help:"Stop after this many samples even without convergence (0 = no limit)"`
	Seed          *int64 `help:"Random seed for reproducible runs"`
	Verbose       bool   `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("handodds"),
		kong.Description("Estimates hand-category probabilities for joker decks by Monte Carlo sampling."))

	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.InfoLevel})
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	seed := time.Now().UnixNano()
	if cli.Seed != nil {
		seed = *cli.Seed
	}

	sim, err := simulator.New(simulator.Config{
		Cards:         cli.Cards,
		Decks:         cli.Decks,
		Jokers:        cli.Jokers,
		HandSize:      cli.HandSize,
		BatchSize:     cli.BatchSize,
		MaxIterations: cli.MaxIterations,
		Seed:          seed,
		Logger:        logger,
		Out:           os.Stdout,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		ctx.Exit(1)
	}

	result := sim.Run()
	result.Report(os.Stdout)
	ctx.Exit(0)
}
