package simulator

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"too many cards", func(c *Config) { c.Cards = 13 }, "cards must be between"},
		{"zero cards", func(c *Config) { c.Cards = 0 }, "cards must be between"},
		{"bad hand size", func(c *Config) { c.HandSize = 4 }, "hand size must be 5 or 6"},
		{"bad hand size seven", func(c *Config) { c.HandSize = 7 }, "hand size must be 5 or 6"},
		{"zero decks", func(c *Config) { c.Decks = 0 }, "decks must be at least 1"},
		{"negative jokers", func(c *Config) { c.Jokers = -1 }, "jokers must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := Config{Cards: 7, Decks: 1, HandSize: 5, Out: io.Discard}
			tt.mutate(&config)
			_, err := New(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewDefaults(t *testing.T) {
	sim, err := New(Config{Cards: 7, Decks: 1, HandSize: 5, Out: io.Discard})
	require.NoError(t, err)
	assert.Equal(t, DefaultBatchSize, sim.config.BatchSize)
	assert.Equal(t, 52, sim.deck.Size())
	assert.Len(t, sim.tallies, 5)
}

func TestRunDeterminism(t *testing.T) {
	config := Config{
		Cards:         7,
		Decks:         1,
		Jokers:        2,
		HandSize:      5,
		BatchSize:     2000,
		MaxIterations: 2000,
		Seed:          12345,
		Out:           io.Discard,
	}

	sim1, err := New(config)
	require.NoError(t, err)
	sim2, err := New(config)
	require.NoError(t, err)

	r1 := sim1.Run()
	r2 := sim2.Run()

	require.Equal(t, r1.Iterations, r2.Iterations)
	require.Len(t, r2.Tallies, len(r1.Tallies))
	for i := range r1.Tallies {
		assert.Equal(t, r1.Tallies[i].Name, r2.Tallies[i].Name)
		assert.Equal(t, r1.Tallies[i].Count, r2.Tallies[i].Count, r1.Tallies[i].Name)
	}
}

func TestRunProbabilitiesPlausible(t *testing.T) {
	sim, err := New(Config{
		Cards:         7,
		Decks:         1,
		HandSize:      5,
		BatchSize:     20000,
		MaxIterations: 20000,
		Seed:          1,
		Out:           io.Discard,
	})
	require.NoError(t, err)

	result := sim.Run()
	require.Equal(t, uint64(20000), result.Iterations)

	// Seven cards from one deck pair up about 79% of the time; five of a
	// kind is impossible without jokers or extra decks.
	for i, tally := range result.Tallies {
		p := result.Probability(i)
		switch tally.Name {
		case "Pair":
			assert.InDelta(t, 0.79, p, 0.05)
		case "5 of a Kind":
			assert.Zero(t, tally.Count)
		}
	}
}

func TestRunProgressLines(t *testing.T) {
	var out bytes.Buffer
	sim, err := New(Config{
		Cards:         7,
		Decks:         1,
		HandSize:      5,
		BatchSize:     1000,
		MaxIterations: 3000,
		Seed:          3,
		Out:           &out,
	})
	require.NoError(t, err)

	sim.Run()

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "1000 iterations...", lines[0])
	for _, line := range lines {
		assert.Regexp(t, `^\d+ iterations\.\.\.$`, line)
	}
}

func TestConverged(t *testing.T) {
	tests := []struct {
		name       string
		iterations uint64
		counts     []uint64
		expected   bool
	}{
		{"clearly separated", 1000000, []uint64{800000, 400000, 100000}, true},
		{"identical counts overlap", 1000000, []uint64{500000, 500000}, false},
		{"close counts overlap at low n", 1000, []uint64{500, 510}, false},
		{"zero counts never overlap", 1000, []uint64{500, 0, 0}, true},
		{"single category", 1000, []uint64{500}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Simulator{
				config:     Config{Logger: log.New(io.Discard)},
				iterations: tt.iterations,
			}
			for i, c := range tt.counts {
				s.tallies = append(s.tallies, Tally{Name: string(rune('a' + i)), Count: c})
			}
			assert.Equal(t, tt.expected, s.converged())
		})
	}
}

func TestReportFormat(t *testing.T) {
	result := &Result{
		Iterations: 1000000,
		Tallies: []Tally{
			{Name: "Pair", Count: 823543},
			{Name: "3 of a Kind", Count: 48000},
			{Name: "2 Pair", Count: 48000},
			{Name: "5 of a Kind", Count: 0},
		},
	}

	var out bytes.Buffer
	result.Report(&out)

	expected := strings.Join([]string{
		"--------------",
		"(no overlapping 99% confidence intervals)",
		"total iterations: 1000000",
		"       Pair: 0.823543 (823543)",
		"3 of a Kind: 0.048000 (48000)",
		"     2 Pair: 0.048000 (48000)",
		"5 of a Kind: 0.000000 (0)",
		"",
	}, "\n")
	assert.Equal(t, expected, out.String())
}
