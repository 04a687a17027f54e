package game

import "errors"

// Engine errors. All of them are recoverable: the dispatcher turns them into
// a unicast error message and room state is left untouched.
var (
	ErrRoomFull            = errors.New("room is full")
	ErrDuplicateName       = errors.New("name already taken in this room")
	ErrGameInProgress      = errors.New("game already in progress")
	ErrGameNotStarted      = errors.New("game has not started")
	ErrInsufficientPlayers = errors.New("at least 2 players required")
	ErrNotAdmin            = errors.New("only the room admin can do that")
	ErrNotYourTurn         = errors.New("not your turn")
	ErrNotAddressee        = errors.New("this message is not yours to send right now")
	ErrQuestionPending     = errors.New("a question is already pending")
	ErrNoPendingQuestion   = errors.New("no question is pending")
	ErrNoSuchPlayer        = errors.New("no such player in this room")
	ErrInvalidTarget       = errors.New("cannot ask yourself")
	ErrBadRank             = errors.New("invalid card rank")
	ErrBadCount            = errors.New("count must be between 1 and 4")
	ErrBadSuits            = errors.New("invalid suit guess")
	ErrNoInvite            = errors.New("no new-game invitation is open")
)
