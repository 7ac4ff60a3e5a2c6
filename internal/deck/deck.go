package deck

import rand "math/rand/v2"

// item is one deck entry: a concrete card, or a joker.
type item struct {
	card  Card
	joker bool
}

// Deck is a multiset of cards built from one or more 52-card sub-decks plus
// an optional number of jokers. Drawing is uniform without replacement.
type Deck struct {
	items []item
	rng   *rand.Rand
}

// New builds a deck from subDecks copies of the full suit × rank product
// plus the given number of jokers, using rng as its random source.
func New(subDecks, jokers int, rng *rand.Rand) *Deck {
	d := &Deck{
		items: make([]item, 0, subDecks*NumSuits*NumRanks+jokers),
		rng:   rng,
	}

	for i := 0; i < subDecks; i++ {
		for suit := Spades; suit <= Clubs; suit++ {
			for rank := Two; rank <= Ace; rank++ {
				d.items = append(d.items, item{card: NewCard(suit, rank)})
			}
		}
	}
	for i := 0; i < jokers; i++ {
		d.items = append(d.items, item{joker: true})
	}

	return d
}

// Size returns the number of items in the deck.
func (d *Deck) Size() int {
	return len(d.items)
}

// Draw samples n items uniformly without replacement into hand, replacing
// its previous contents. n must not exceed MaxHandSize. A partial
// Fisher-Yates over the item slice is enough because the deck is a multiset
// and ordering between draws is irrelevant.
func (d *Deck) Draw(n int, hand *Hand) {
	hand.Reset()
	for i := 0; i < n; i++ {
		j := i + d.rng.IntN(len(d.items)-i)
		d.items[i], d.items[j] = d.items[j], d.items[i]
		if d.items[i].joker {
			hand.AddJoker()
		} else {
			hand.AddCard(d.items[i].card)
		}
	}
}
