package game

import "math/rand"

// Deck is an ordered sequence of cards, shuffled once at construction.
// Draws come off the front and never block or fail; an empty deck simply
// yields no cards.
type Deck struct {
	cards []Card
}

// NewDeck builds the full 36-card deck in a random order
func NewDeck() *Deck {
	cards := make([]Card, 0, len(Ranks)*len(Suits))
	for _, r := range Ranks {
		for _, s := range Suits {
			cards = append(cards, Card{Rank: r, Suit: s})
		}
	}
	rand.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return &Deck{cards: cards}
}

// Draw removes and returns the front card; ok is false if the deck is empty
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, true
}

// DrawN removes up to n cards from the front, returning fewer if the deck
// runs out
func (d *Deck) DrawN(n int) []Card {
	if n > len(d.cards) {
		n = len(d.cards)
	}
	out := make([]Card, n)
	copy(out, d.cards[:n])
	d.cards = d.cards[n:]
	return out
}

// ReturnToBottom appends cards to the back of the deck. Used when a player
// leaves mid-game so their hand stays in circulation.
func (d *Deck) ReturnToBottom(cards []Card) {
	d.cards = append(d.cards, cards...)
}

// Len returns the number of cards remaining
func (d *Deck) Len() int {
	return len(d.cards)
}

// Empty reports whether the deck has no cards left
func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}
