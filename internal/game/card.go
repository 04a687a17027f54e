package game

import (
	"fmt"
	"sort"
	"strings"
)

// Suit is one of the four suit symbols
type Suit string

const (
	Hearts   Suit = "♥"
	Diamonds Suit = "♦"
	Clubs    Suit = "♣"
	Spades   Suit = "♠"
)

// Rank is a card face from the 36-card domain
type Rank string

// Suits and Ranks define the fixed 36-card domain (9 ranks x 4 suits)
var (
	Suits = []Suit{Hearts, Diamonds, Clubs, Spades}
	Ranks = []Rank{"6", "7", "8", "9", "10", "J", "Q", "K", "A"}
)

var (
	rankOrder = map[Rank]int{}
	suitOrder = map[Suit]int{}
)

func init() {
	for i, r := range Ranks {
		rankOrder[r] = i
	}
	for i, s := range Suits {
		suitOrder[s] = i
	}
}

// Card is an immutable (rank, suit) pair. The wire format is the compact
// string form, e.g. "10♥" or "K♠".
type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) String() string {
	return string(c.Rank) + string(c.Suit)
}

// ParseCard parses the compact string form back into a Card
func ParseCard(s string) (Card, error) {
	for _, suit := range Suits {
		if strings.HasSuffix(s, string(suit)) {
			rank := Rank(strings.TrimSuffix(s, string(suit)))
			if !ValidRank(rank) {
				return Card{}, fmt.Errorf("invalid card rank %q", rank)
			}
			return Card{Rank: rank, Suit: suit}, nil
		}
	}
	return Card{}, fmt.Errorf("invalid card %q", s)
}

// ValidRank reports whether r belongs to the 36-card domain
func ValidRank(r Rank) bool {
	_, ok := rankOrder[r]
	return ok
}

// ValidSuit reports whether s is one of the four suit symbols
func ValidSuit(s Suit) bool {
	_, ok := suitOrder[s]
	return ok
}

// ParseSuit accepts either the suit symbol or a single-letter alias (h/d/c/s)
func ParseSuit(s string) (Suit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Hearts), "h", "hearts":
		return Hearts, nil
	case string(Diamonds), "d", "diamonds":
		return Diamonds, nil
	case string(Clubs), "c", "clubs":
		return Clubs, nil
	case string(Spades), "s", "spades":
		return Spades, nil
	}
	return "", fmt.Errorf("invalid suit %q", s)
}

// sortCards orders a hand by rank, then suit
func sortCards(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		if cards[i].Rank != cards[j].Rank {
			return rankOrder[cards[i].Rank] < rankOrder[cards[j].Rank]
		}
		return suitOrder[cards[i].Suit] < suitOrder[cards[j].Suit]
	})
}

func cardStrings(cards []Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}
