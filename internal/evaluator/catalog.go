package evaluator

import "github.com/jokerdeck/handodds/internal/deck"

// Category pairs a reportable hand-category name with its predicate.
// Parameterised predicates are bound through closures so the catalog stays
// a flat list of uniform entries.
type Category struct {
	Name     string
	Evaluate func(cards []deck.Card, jokers int) bool
}

// Catalog returns the categories enabled for a draw of cards items under
// the given hand size. The base set always applies; the size-specific
// family is added only when the draw is exactly one hand, so the default
// seven-card draw runs the base set alone.
func Catalog(cards, handSize int) []Category {
	categories := []Category{
		{"Pair", func(c []deck.Card, j int) bool { return IsNOfAKind(c, 2, j) }},
		{"3 of a Kind", func(c []deck.Card, j int) bool { return IsNOfAKind(c, 3, j) }},
		{"4 of a Kind", func(c []deck.Card, j int) bool { return IsNOfAKind(c, 4, j) }},
		{"5 of a Kind", func(c []deck.Card, j int) bool { return IsNOfAKind(c, 5, j) }},
		{"2 Pair", func(c []deck.Card, j int) bool { return IsNPairs(c, 2, j) }},
	}

	if cards != handSize {
		return categories
	}

	switch handSize {
	case 5:
		categories = append(categories,
			Category{"Full House", func(c []deck.Card, j int) bool { return IsNAndMOfAKind(c, 3, 2, j) }},
			Category{"Flush House", IsFlushHouse},
			Category{"Straight Flush", func(c []deck.Card, j int) bool { return IsStraightFlush(c, j, 5) }},
			Category{"Flush 5", func(c []deck.Card, j int) bool { return IsFlushN(c, 5, j) }},
		)
	case 6:
		categories = append(categories,
			Category{"3 Pair", func(c []deck.Card, j int) bool { return IsNPairs(c, 3, j) }},
			Category{"6 of a Kind", func(c []deck.Card, j int) bool { return IsNOfAKind(c, 6, j) }},
			Category{"Two Triplet", func(c []deck.Card, j int) bool { return IsNAndMOfAKind(c, 3, 3, j) }},
			Category{"Straight", func(c []deck.Card, j int) bool { return IsStraight(c, j, 6) }},
			Category{"Flush", func(c []deck.Card, j int) bool { return IsFlush(c, j, 6) }},
			Category{"Full Mansion", func(c []deck.Card, j int) bool { return IsNAndMOfAKind(c, 4, 2, j) }},
			Category{"Straight Flush", func(c []deck.Card, j int) bool { return IsStraightFlush(c, j, 6) }},
			Category{"Flush 6", func(c []deck.Card, j int) bool { return IsFlushN(c, 6, j) }},
		)
	}

	return categories
}
