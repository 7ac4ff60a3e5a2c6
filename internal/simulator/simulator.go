package simulator

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/charmbracelet/log"

	"github.com/jokerdeck/handodds/internal/deck"
	"github.com/jokerdeck/handodds/internal/evaluator"
	"github.com/jokerdeck/handodds/internal/randutil"
)

// DefaultBatchSize is the number of samples drawn between convergence
// checks when the configuration does not set one.
const DefaultBatchSize = 100000

// waldZ is the z-score of the reported binomial intervals (~99.73%).
const waldZ = 3.0

// Config holds configuration for a sampling run.
type Config struct {
	Cards         int    // items drawn per hand
	Decks         int    // 52-card sub-decks in the deck
	Jokers        int    // wildcards added to the deck
	HandSize      int    // size-specific category family, 5 or 6
	BatchSize     int    // samples between convergence checks
	MaxIterations uint64 // stop even without convergence; 0 means no limit
	Seed          int64
	Logger        *log.Logger
	Out           io.Writer // progress destination, defaults to os.Stdout
}

// Tally tracks how many sampled hands satisfied one category.
type Tally struct {
	Name     string
	Count    uint64
	evaluate func(cards []deck.Card, jokers int) bool
}

// Simulator estimates per-category hand probabilities by sampling hands
// until the categories' confidence intervals separate.
type Simulator struct {
	config     Config
	deck       *deck.Deck
	tallies    []Tally
	iterations uint64
}

// New validates the configuration and builds a simulator.
func New(config Config) (*Simulator, error) {
	if config.Cards < 1 || config.Cards > deck.MaxHandSize {
		return nil, fmt.Errorf("cards must be between 1 and %d, got %d", deck.MaxHandSize, config.Cards)
	}
	if config.HandSize != 5 && config.HandSize != 6 {
		return nil, fmt.Errorf("hand size must be 5 or 6, got %d", config.HandSize)
	}
	if config.Decks < 1 {
		return nil, fmt.Errorf("decks must be at least 1, got %d", config.Decks)
	}
	if config.Jokers < 0 {
		return nil, fmt.Errorf("jokers must not be negative, got %d", config.Jokers)
	}
	if config.BatchSize <= 0 {
		config.BatchSize = DefaultBatchSize
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Out == nil {
		config.Out = os.Stdout
	}

	categories := evaluator.Catalog(config.Cards, config.HandSize)
	tallies := make([]Tally, len(categories))
	for i, c := range categories {
		tallies[i] = Tally{Name: c.Name, evaluate: c.Evaluate}
	}

	return &Simulator{
		config:  config,
		deck:    deck.New(config.Decks, config.Jokers, randutil.New(config.Seed)),
		tallies: tallies,
	}, nil
}

// Run samples batches until no two nonzero-count categories have
// overlapping intervals, printing a progress line after every batch. If
// two categories' true probabilities coincide the loop cannot converge;
// MaxIterations bounds that case when set.
func (s *Simulator) Run() *Result {
	s.config.Logger.Info("sampling",
		"deck", s.deck.Size(),
		"cards", s.config.Cards,
		"jokers", s.config.Jokers,
		"categories", len(s.tallies),
		"seed", s.config.Seed)

	var hand deck.Hand
	for {
		for i := 0; i < s.config.BatchSize; i++ {
			s.deck.Draw(s.config.Cards, &hand)
			cards, jokers := hand.Cards(), hand.Jokers()
			for t := range s.tallies {
				if s.tallies[t].evaluate(cards, jokers) {
					s.tallies[t].Count++
				}
			}
		}
		s.iterations += uint64(s.config.BatchSize)
		fmt.Fprintf(s.config.Out, "%d iterations...\n", s.iterations)

		if s.converged() {
			break
		}
		if s.config.MaxIterations > 0 && s.iterations >= s.config.MaxIterations {
			s.config.Logger.Warn("iteration limit reached before convergence",
				"iterations", s.iterations)
			break
		}
	}

	return &Result{Iterations: s.iterations, Tallies: s.tallies}
}

// interval returns the estimated probability and Wald margin for one tally.
func (s *Simulator) interval(t *Tally) (p, ci float64) {
	n := float64(s.iterations)
	p = float64(t.Count) / n
	ci = waldZ * math.Sqrt(p*(1-p)/n)
	return p, ci
}

// converged reports whether all pairs of nonzero-count categories have
// disjoint intervals. Zero-count categories never overlap with anyone.
func (s *Simulator) converged() bool {
	for i := range s.tallies {
		if s.tallies[i].Count == 0 {
			continue
		}
		p1, ci1 := s.interval(&s.tallies[i])
		for j := i + 1; j < len(s.tallies); j++ {
			if s.tallies[j].Count == 0 {
				continue
			}
			p2, ci2 := s.interval(&s.tallies[j])
			if math.Abs(p1-p2) <= ci1+ci2 {
				s.config.Logger.Debug("intervals still overlap",
					"a", s.tallies[i].Name, "b", s.tallies[j].Name)
				return false
			}
		}
	}
	return true
}
