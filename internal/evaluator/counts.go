package evaluator

import "github.com/jokerdeck/handodds/internal/deck"

// RankCounts returns the rank histogram of the given cards.
func RankCounts(cards []deck.Card) [deck.NumRanks]uint8 {
	var counts [deck.NumRanks]uint8
	for _, c := range cards {
		counts[c.Rank]++
	}
	return counts
}

// SuitCounts returns the suit histogram of the given cards.
func SuitCounts(cards []deck.Card) [deck.NumSuits]uint8 {
	var counts [deck.NumSuits]uint8
	for _, c := range cards {
		counts[c.Suit]++
	}
	return counts
}

// StraightRanks returns a presence bitmap over rank positions 1..NumRanks,
// with cell 0 mirroring the ace cell so the ace can open an ace-low
// straight. Only cell 0 mirrors; K-A-2 style wraps stay impossible.
func StraightRanks(cards []deck.Card) [deck.NumRanks + 1]uint8 {
	var ranks [deck.NumRanks + 1]uint8
	for _, c := range cards {
		ranks[c.Rank+1] = 1
	}
	ranks[0] = ranks[deck.NumRanks]
	return ranks
}
