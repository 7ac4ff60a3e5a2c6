package evaluator

import "github.com/jokerdeck/handodds/internal/deck"

// The predicate bank. Every predicate is a pure function of the real cards
// and a wildcard count, answering whether some assignment of the wildcards
// makes the hand satisfy the category. Wildcards are never consumed across
// predicates: each check sees the full joker pool.

// IsNOfAKind reports whether some rank can reach at least n copies once the
// jokers are assigned. jokers >= n covers the all-wildcard hand and n = 0.
func IsNOfAKind(cards []deck.Card, n, jokers int) bool {
	if jokers >= n {
		return true
	}
	var counts [deck.NumRanks]int
	for _, c := range cards {
		counts[c.Rank]++
		if counts[c.Rank]+jokers >= n {
			return true
		}
	}
	return false
}

// IsNPairs reports whether the hand holds at least n disjoint pairs.
// Completing an odd singleton costs one joker per pair while a fresh pair
// costs two, so singletons are topped up first; the order among singletons
// does not matter because each is equally cheap.
func IsNPairs(cards []deck.Card, n, jokers int) bool {
	pairs := 0
	for _, count := range RankCounts(cards) {
		c := int(count)
		if c%2 == 1 && jokers > 0 {
			jokers--
			c++
		}
		pairs += c / 2
	}
	pairs += jokers / 2
	return pairs >= n
}

// IsNAndMOfAKind reports whether the wildcards can fill one rank to at
// least n copies and a second group to at least m, with n >= m. The second
// group may come from the first rank's leftover above n or from the
// second-highest rank; filling the tallest stack first minimises joker
// spend at both stages.
func IsNAndMOfAKind(cards []deck.Card, n, m, jokers int) bool {
	counts := RankCounts(cards)
	first, second := 0, 0
	for _, count := range counts {
		c := int(count)
		switch {
		case c > first:
			first, second = c, first
		case c > second:
			second = c
		}
	}

	if need := n - first; need > 0 {
		if need > jokers {
			return false
		}
		jokers -= need
		first = n
	}
	if first-n+jokers >= m {
		return true
	}
	return second+jokers >= m
}

// IsFlush reports whether some suit can reach size cards once the jokers
// are assigned.
func IsFlush(cards []deck.Card, jokers, size int) bool {
	for _, c := range SuitCounts(cards) {
		if int(c)+jokers >= size {
			return true
		}
	}
	return false
}

// IsStraight reports whether size consecutive rank positions can all be
// occupied once the jokers are assigned. Positions come from StraightRanks,
// so the ace may sit below the two but nowhere else wraps.
func IsStraight(cards []deck.Card, jokers, size int) bool {
	ranks := StraightRanks(cards)
	sum := 0
	for _, r := range ranks[:size] {
		sum += int(r)
	}
	if sum+jokers >= size {
		return true
	}
	for i := size; i < len(ranks); i++ {
		sum += int(ranks[i]) - int(ranks[i-size])
		if sum+jokers >= size {
			return true
		}
	}
	return false
}

// suitSplit holds the hand partitioned into per-suit sub-hands.
type suitSplit struct {
	cards [deck.NumSuits][deck.MaxHandSize]deck.Card
	sizes [deck.NumSuits]int
}

func splitBySuit(cards []deck.Card) suitSplit {
	var split suitSplit
	for _, c := range cards {
		split.cards[c.Suit][split.sizes[c.Suit]] = c
		split.sizes[c.Suit]++
	}
	return split
}

func (s *suitSplit) suit(i int) []deck.Card {
	return s.cards[i][:s.sizes[i]]
}

// IsStraightFlush reports whether any single suit's cards form a straight
// of the given size. Jokers are rank and suit wildcards at once, so the
// full pool is offered to every suit's straight test.
func IsStraightFlush(cards []deck.Card, jokers, size int) bool {
	split := splitBySuit(cards)
	for s := 0; s < deck.NumSuits; s++ {
		if IsStraight(split.suit(s), jokers, size) {
			return true
		}
	}
	return false
}

// IsFlushHouse reports whether any single suit's cards form a full house.
func IsFlushHouse(cards []deck.Card, jokers int) bool {
	split := splitBySuit(cards)
	for s := 0; s < deck.NumSuits; s++ {
		if IsNAndMOfAKind(split.suit(s), 3, 2, jokers) {
			return true
		}
	}
	return false
}

// IsFlushN reports whether any single suit's cards hold n of a kind.
func IsFlushN(cards []deck.Card, n, jokers int) bool {
	split := splitBySuit(cards)
	for s := 0; s < deck.NumSuits; s++ {
		if IsNOfAKind(split.suit(s), n, jokers) {
			return true
		}
	}
	return false
}
