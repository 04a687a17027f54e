package game

import (
	"github.com/yourusername/skrynky/internal/protocol"
)

const (
	maxPlayers = 6
	minPlayers = 2
	handSize   = 4
)

// questionPhase tracks where an ask/guess exchange currently stands
type questionPhase int

const (
	phaseNone questionPhase = iota
	phaseAwaitYesNo
	phaseAwaitCount
	phaseAwaitSuits
)

// question is the pending exchange between one asker and one target. It only
// exists between ask_card and the terminal resolution of that exchange.
type question struct {
	asker  string
	target string
	rank   Rank
	phase  questionPhase
	count  int // suit count locked in by a correct count guess
}

// Engine owns one room's full game state: players in seating order, deck,
// turn pointer and the pending question. It emits outbound messages through
// each player's Sink and never touches the transport directly. Callers must
// serialize access; the server holds one mutex per room around every call.
type Engine struct {
	roomID   string
	players  []*Player
	deck     *Deck
	started  bool
	turnIdx  int
	pending  question
	admin    string
	orphaned []Rank // boxes whose collector left; still count toward game end

	inviteOpen bool
	accepted   map[string]bool

	history []protocol.HistoryEntry
}

// NewEngine creates the engine for one room, in the lobby state
func NewEngine(roomID string) *Engine {
	return &Engine{roomID: roomID}
}

// RoomID returns the room identifier this engine serves
func (e *Engine) RoomID() string {
	return e.roomID
}

// PlayerCount returns the number of seated players
func (e *Engine) PlayerCount() int {
	return len(e.players)
}

// Admin returns the current room admin's name
func (e *Engine) Admin() string {
	return e.admin
}

// Started reports whether a game is in progress
func (e *Engine) Started() bool {
	return e.started
}

func (e *Engine) playerByName(name string) *Player {
	for _, p := range e.players {
		if p.Name == name {
			return p
		}
	}
	return nil
}

func (e *Engine) currentPlayer() *Player {
	if len(e.players) == 0 {
		return nil
	}
	return e.players[e.turnIdx]
}

// Join seats a new player. The first player to join becomes the room admin.
func (e *Engine) Join(name string, sink Sink) error {
	if e.started {
		return ErrGameInProgress
	}
	if len(e.players) >= maxPlayers {
		return ErrRoomFull
	}
	if e.playerByName(name) != nil {
		return ErrDuplicateName
	}

	p := newPlayer(name, sink)
	e.players = append(e.players, p)
	if len(e.players) == 1 {
		e.admin = name
	}

	e.logf(historySystem, "%s joined the room", name)
	e.unicast(p, protocol.MsgJoinedRoom, protocol.JoinedRoomPayload{
		RoomID:  e.roomID,
		Name:    name,
		IsAdmin: name == e.admin,
	})
	e.broadcastState()
	return nil
}

// Leave removes a player, abandoning any question they were part of. Their
// hand goes back to the bottom of the deck and their collected boxes stay
// retired. Admin rights transfer to the next remaining player.
func (e *Engine) Leave(name string) {
	idx := -1
	for i, p := range e.players {
		if p.Name == name {
			idx = i
			break
		}
	}
	if idx == -1 {
		return
	}

	p := e.players[idx]
	e.players = append(e.players[:idx], e.players[idx+1:]...)
	e.logf(historySystem, "%s left the room", name)

	if e.started && e.deck != nil && len(p.Hand) > 0 {
		e.deck.ReturnToBottom(p.Hand)
	}
	e.orphaned = append(e.orphaned, p.Collected...)

	if e.pending.phase != phaseNone && (e.pending.asker == name || e.pending.target == name) {
		e.pending = question{}
		e.logf(historySystem, "the open question was abandoned")
	}
	if e.admin == name && len(e.players) > 0 {
		e.admin = e.players[0].Name
		e.logf(historySystem, "%s is the new room admin", e.admin)
	}
	delete(e.accepted, name)

	if len(e.players) == 0 {
		return
	}

	// re-normalize the turn pointer over the shrunken seat list
	if idx < e.turnIdx {
		e.turnIdx--
	}
	e.turnIdx %= len(e.players)

	if e.started {
		e.ensurePlayable()
		if e.maybeFinish() {
			return
		}
	}
	if e.inviteOpen && e.allAccepted() && len(e.players) >= minPlayers {
		e.startGame()
		return
	}
	e.broadcastState()
}

// Start begins the game: admin only, at least two players
func (e *Engine) Start(name string) error {
	if e.started {
		return ErrGameInProgress
	}
	if name != e.admin {
		return ErrNotAdmin
	}
	if len(e.players) < minPlayers {
		return ErrInsufficientPlayers
	}
	e.startGame()
	return nil
}

func (e *Engine) startGame() {
	e.deck = NewDeck()
	e.orphaned = nil
	for _, p := range e.players {
		p.Hand = nil
		p.Collected = nil
	}
	e.pending = question{}
	e.inviteOpen = false
	e.accepted = nil
	e.turnIdx = 0
	e.started = true

	e.logf(historySystem, "game started")
	e.deal()
	if !e.maybeFinish() {
		e.broadcastState()
	}
}

// deal hands out 4 cards per player, one at a time in seating order. A box
// can be completed right on the deal.
func (e *Engine) deal() {
	for round := 0; round < handSize; round++ {
		for _, p := range e.players {
			c, ok := e.deck.Draw()
			if !ok {
				break
			}
			p.giveCard(c)
			e.boxCheck(p)
		}
	}
	e.logf(historySystem, "initial cards dealt")
}

// AskCard starts a question from the turn owner: does target hold any cards
// of the given rank?
func (e *Engine) AskCard(asker, target, rankStr string) error {
	if !e.started {
		return ErrGameNotStarted
	}
	if cur := e.currentPlayer(); cur == nil || cur.Name != asker {
		return ErrNotYourTurn
	}
	if e.pending.phase != phaseNone {
		return ErrQuestionPending
	}
	rank := Rank(rankStr)
	if !ValidRank(rank) {
		return ErrBadRank
	}
	if target == asker {
		return ErrInvalidTarget
	}
	tp := e.playerByName(target)
	if tp == nil {
		return ErrNoSuchPlayer
	}

	e.pending = question{asker: asker, target: target, rank: rank, phase: phaseAwaitYesNo}
	e.logf(historyTurn, "%s asks %s for cards of rank %s", asker, target, rank)
	e.unicast(tp, protocol.MsgAskResponseNeeded, protocol.AskResponseNeededPayload{
		AskingPlayer: asker,
		CardRank:     string(rank),
	})
	e.broadcastState()
	return nil
}

// AskResponse is the target's yes/no answer to the pending question
func (e *Engine) AskResponse(name string, yes bool) error {
	if !e.started {
		return ErrGameNotStarted
	}
	if e.pending.phase == phaseNone {
		return ErrNoPendingQuestion
	}
	if e.pending.phase != phaseAwaitYesNo || e.pending.target != name {
		return ErrNotAddressee
	}

	if !yes {
		e.logf(historySystem, "%s has no cards of rank %s", name, e.pending.rank)
		e.failStep()
		return nil
	}

	e.pending.phase = phaseAwaitCount
	e.logf(historySystem, "%s does hold cards of rank %s", name, e.pending.rank)
	asker := e.playerByName(e.pending.asker)
	e.unicast(asker, protocol.MsgGuessCountNeeded, protocol.GuessCountNeededPayload{
		TargetPlayer: name,
		CardRank:     string(e.pending.rank),
	})
	e.broadcastState()
	return nil
}

// GuessCount is the asker's guess at how many matching cards the target holds
func (e *Engine) GuessCount(name string, count int) error {
	if !e.started {
		return ErrGameNotStarted
	}
	if e.pending.phase == phaseNone {
		return ErrNoPendingQuestion
	}
	if e.pending.phase != phaseAwaitCount || e.pending.asker != name {
		return ErrNotAddressee
	}
	if count < 1 || count > len(Suits) {
		return ErrBadCount
	}

	target := e.playerByName(e.pending.target)
	e.logf(historyTurn, "%s guesses %s holds %d card(s) of rank %s",
		name, target.Name, count, e.pending.rank)

	if count != target.rankCount(e.pending.rank) {
		e.logf(historySystem, "the count guess was wrong")
		e.failStep()
		return nil
	}

	e.pending.phase = phaseAwaitSuits
	e.pending.count = count
	e.logf(historySystem, "the count guess was right")
	e.unicast(e.playerByName(name), protocol.MsgGuessSuitsNeeded, protocol.GuessSuitsNeededPayload{
		TargetPlayer: target.Name,
		CardRank:     string(e.pending.rank),
		Count:        count,
	})
	e.broadcastState()
	return nil
}

// GuessSuits is the final step: the asker names the exact suits. On a full
// match the matching cards transfer and the asker keeps the turn.
func (e *Engine) GuessSuits(name string, suitStrs []string) error {
	if !e.started {
		return ErrGameNotStarted
	}
	if e.pending.phase == phaseNone {
		return ErrNoPendingQuestion
	}
	if e.pending.phase != phaseAwaitSuits || e.pending.asker != name {
		return ErrNotAddressee
	}

	guessed := make(map[Suit]bool)
	for _, s := range suitStrs {
		suit, err := ParseSuit(s)
		if err != nil {
			return ErrBadSuits
		}
		guessed[suit] = true
	}

	asker := e.playerByName(name)
	target := e.playerByName(e.pending.target)
	rank := e.pending.rank

	// any parseable set that is not exactly the target's suits is a miss,
	// including one whose size disagrees with the locked-in count
	if !sameSuits(guessed, target.suitsOf(rank)) {
		e.logf(historySystem, "the suit guess was wrong")
		e.failStep()
		return nil
	}

	taken := target.removeRank(rank)
	asker.giveCards(taken)
	e.logf(historySystem, "%s takes %v from %s and keeps the turn",
		asker.Name, cardStrings(taken), target.Name)

	e.boxCheck(asker)
	if len(target.Hand) == 0 && !e.deck.Empty() {
		e.drawFor(target)
	}
	if len(asker.Hand) == 0 && !e.deck.Empty() {
		e.drawFor(asker)
	}

	// turn stays with the asker; only the question is cleared
	e.pending = question{}
	if !e.maybeFinish() {
		e.broadcastState()
	}
	return nil
}

// Chat appends a chat line to the room's log
func (e *Engine) Chat(name, message string) error {
	if e.playerByName(name) == nil {
		return ErrNoSuchPlayer
	}
	e.logf(historyChat, "%s: %s", name, message)
	e.broadcastState()
	return nil
}

// InviteNewGame opens a reset proposal; the game restarts once every seated
// player has accepted (the admin counts as accepted).
func (e *Engine) InviteNewGame(name string) error {
	if name != e.admin {
		return ErrNotAdmin
	}
	if e.started {
		return ErrGameInProgress
	}

	e.inviteOpen = true
	e.accepted = map[string]bool{name: true}
	e.logf(historySystem, "%s proposed a new game", name)
	for _, p := range e.players {
		e.unicast(p, protocol.MsgInviteNewGame, protocol.InviteNewGamePayload{
			AdminName: e.admin,
			IsAdmin:   p.Name == e.admin,
		})
	}
	e.broadcastState()
	return nil
}

// AcceptNewGame records one player's acknowledgement of the reset proposal
func (e *Engine) AcceptNewGame(name string) error {
	if !e.inviteOpen {
		return ErrNoInvite
	}
	if e.playerByName(name) == nil {
		return ErrNoSuchPlayer
	}

	e.accepted[name] = true
	e.logf(historySystem, "%s is ready for a new game", name)
	if e.allAccepted() && len(e.players) >= minPlayers {
		e.startGame()
		return nil
	}
	e.broadcastState()
	return nil
}

func (e *Engine) allAccepted() bool {
	for _, p := range e.players {
		if !e.accepted[p.Name] {
			return false
		}
	}
	return true
}

// failStep resolves a failed question step: the asker draws one card (if the
// deck allows), the question is cleared and the turn passes.
func (e *Engine) failStep() {
	asker := e.playerByName(e.pending.asker)
	e.drawFor(asker)
	e.pending = question{}
	if e.maybeFinish() {
		return
	}
	e.advanceTurn()
	e.broadcastState()
}

// drawFor moves one card from the deck to the player's hand. A draw can
// complete a box, so the box check runs right after.
func (e *Engine) drawFor(p *Player) {
	c, ok := e.deck.Draw()
	if !ok {
		return
	}
	p.giveCard(c)
	e.logf(historySystem, "%s drew a card from the deck", p.Name)
	e.boxCheck(p)
}

// boxCheck scans the hand for any rank held four times, retires it to the
// player's collected boxes, and refills an emptied hand from the deck. Runs
// after every hand mutation.
func (e *Engine) boxCheck(p *Player) {
	for _, rank := range Ranks {
		if p.rankCount(rank) == len(Suits) {
			p.removeRank(rank)
			p.Collected = append(p.Collected, rank)
			e.logf(historySystem, "%s collected the box of %ss!", p.Name, rank)
		}
	}
	if len(p.Hand) == 0 && e.deck != nil && !e.deck.Empty() {
		e.drawFor(p)
	}
}

// advanceTurn passes the turn to the next seat. An empty-handed player draws
// one card before their turn begins; with the deck also empty the seat is
// skipped.
func (e *Engine) advanceTurn() {
	n := len(e.players)
	if n == 0 {
		return
	}
	e.turnIdx = (e.turnIdx + 1) % n
	e.ensurePlayable()
}

// ensurePlayable makes sure the current player can act: refill an empty hand
// from the deck, or skip seats that have neither cards nor a deck to draw
// from. Bounded by the seat count so an all-empty table cannot spin.
func (e *Engine) ensurePlayable() {
	n := len(e.players)
	for i := 0; i < n; i++ {
		cur := e.players[e.turnIdx]
		if len(cur.Hand) > 0 {
			return
		}
		if !e.deck.Empty() {
			e.drawFor(cur)
			return
		}
		e.logf(historySystem, "%s has no cards to play, the turn moves on", cur.Name)
		e.turnIdx = (e.turnIdx + 1) % n
	}
}

// maybeFinish runs the end-game check: all nine ranks retired, or nobody left
// to play against. Returns true if the game ended.
func (e *Engine) maybeFinish() bool {
	if !e.started {
		return false
	}

	collected := len(e.orphaned)
	for _, p := range e.players {
		collected += len(p.Collected)
	}

	over := collected == len(Ranks)
	if !over && len(e.players) < minPlayers {
		over = true
	}
	if !over && e.deck.Empty() {
		active := 0
		for _, p := range e.players {
			if len(p.Hand) > 0 {
				active++
			}
		}
		if active <= 1 {
			over = true
		}
	}
	if !over {
		return false
	}

	e.finish()
	return true
}

func (e *Engine) finish() {
	boxes := make(map[string]int, len(e.players))
	best := 0
	for _, p := range e.players {
		boxes[p.Name] = len(p.Collected)
		if len(p.Collected) > best {
			best = len(p.Collected)
		}
	}
	var winners []string
	for _, p := range e.players {
		if len(p.Collected) == best {
			winners = append(winners, p.Name)
		}
	}

	e.started = false
	e.pending = question{}
	e.logf(historySystem, "game over, winner(s): %v", winners)
	e.broadcast(protocol.MsgGameOver, protocol.GameOverPayload{
		Winners: winners,
		Boxes:   boxes,
	})
	e.broadcastState()
}

func sameSuits(a, b map[Suit]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for s := range a {
		if !b[s] {
			return false
		}
	}
	return true
}

// unicast sends one message to one player
func (e *Engine) unicast(p *Player, msgType protocol.MessageType, payload interface{}) {
	if p == nil {
		return
	}
	data, err := protocol.EncodeMessage(msgType, payload)
	if err != nil {
		return
	}
	p.send(data)
}

// broadcast sends the same message to every player
func (e *Engine) broadcast(msgType protocol.MessageType, payload interface{}) {
	data, err := protocol.EncodeMessage(msgType, payload)
	if err != nil {
		return
	}
	for _, p := range e.players {
		p.send(data)
	}
}

// broadcastState sends each player their personalized room snapshot. MyHand
// is filled per recipient; nobody ever sees another player's cards.
func (e *Engine) broadcastState() {
	currentTurn := ""
	if e.started && len(e.players) > 0 {
		currentTurn = e.players[e.turnIdx].Name
	}

	infos := make([]protocol.PlayerInfo, len(e.players))
	for i, p := range e.players {
		infos[i] = protocol.PlayerInfo{
			Name:           p.Name,
			IsTurn:         e.started && i == e.turnIdx,
			CollectedBoxes: len(p.Collected),
			CollectedSets:  p.collectedStrings(),
		}
	}

	deckSize := 0
	if e.deck != nil {
		deckSize = e.deck.Len()
	}

	for _, p := range e.players {
		e.unicast(p, protocol.MsgUpdateState, protocol.StatePayload{
			GameStarted: e.started,
			Players:     infos,
			DeckSize:    deckSize,
			CurrentTurn: currentTurn,
			RoomAdmin:   e.admin,
			MyHand:      p.handStrings(),
			History:     e.history,
		})
	}
}
