package deck

// Hand holds one drawn sample: up to MaxHandSize real cards plus the number
// of jokers drawn alongside them. The backing array is inline so the
// sampling loop never allocates.
type Hand struct {
	cards  [MaxHandSize]Card
	count  int
	jokers int
}

// Reset empties the hand for reuse.
func (h *Hand) Reset() {
	h.count = 0
	h.jokers = 0
}

// AddCard appends a real card to the hand.
func (h *Hand) AddCard(c Card) {
	h.cards[h.count] = c
	h.count++
}

// AddJoker records one more wildcard in the hand.
func (h *Hand) AddJoker() {
	h.jokers++
}

// Cards returns a view over the real cards in the hand. The view is only
// valid until the next Reset.
func (h *Hand) Cards() []Card {
	return h.cards[:h.count]
}

// Jokers returns the number of wildcards in the hand.
func (h *Hand) Jokers() int {
	return h.jokers
}

// Size returns the total number of items in the hand.
func (h *Hand) Size() int {
	return h.count + h.jokers
}
