package game

// Sink delivers an already-encoded outbound message to one player. The
// server's websocket client implements it; tests inject recorders. Send must
// never block.
type Sink interface {
	Send(data []byte)
}

// Player is the per-seat state: name, hand and collected boxes, plus the
// handle used to reach the player's connection.
type Player struct {
	Name      string
	Hand      []Card
	Collected []Rank
	sink      Sink
}

func newPlayer(name string, sink Sink) *Player {
	return &Player{Name: name, sink: sink}
}

func (p *Player) send(data []byte) {
	if p.sink != nil {
		p.sink.Send(data)
	}
}

func (p *Player) giveCard(c Card) {
	p.Hand = append(p.Hand, c)
	sortCards(p.Hand)
}

func (p *Player) giveCards(cards []Card) {
	p.Hand = append(p.Hand, cards...)
	sortCards(p.Hand)
}

// rankCount returns how many cards of rank r the player holds
func (p *Player) rankCount(r Rank) int {
	n := 0
	for _, c := range p.Hand {
		if c.Rank == r {
			n++
		}
	}
	return n
}

// suitsOf returns the suits of the player's cards of rank r
func (p *Player) suitsOf(r Rank) map[Suit]bool {
	suits := make(map[Suit]bool)
	for _, c := range p.Hand {
		if c.Rank == r {
			suits[c.Suit] = true
		}
	}
	return suits
}

// removeRank pulls every card of rank r out of the hand and returns them
func (p *Player) removeRank(r Rank) []Card {
	var taken, kept []Card
	for _, c := range p.Hand {
		if c.Rank == r {
			taken = append(taken, c)
		} else {
			kept = append(kept, c)
		}
	}
	p.Hand = kept
	return taken
}

func (p *Player) handStrings() []string {
	return cardStrings(p.Hand)
}

func (p *Player) collectedStrings() []string {
	out := make([]string, len(p.Collected))
	for i, r := range p.Collected {
		out[i] = string(r)
	}
	return out
}
