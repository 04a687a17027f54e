package protocol //handles communication protocol between client and server
// WebSocket message types and payloads
import "encoding/json"

// MessageType defines the type of WebSocket message
type MessageType string

const (
	// Client -> Server
	MsgJoin          MessageType = "join"
	MsgStartGame     MessageType = "start_game"
	MsgAskCard       MessageType = "ask_card"
	MsgAskResponse   MessageType = "ask_response"
	MsgGuessCount    MessageType = "guess_count"
	MsgGuessSuits    MessageType = "guess_suits"
	MsgAcceptNewGame MessageType = "accept_new_game"
	MsgChat          MessageType = "chat"

	// Both directions
	MsgInviteNewGame MessageType = "invite_new_game"

	// Server -> Client
	MsgJoinedRoom        MessageType = "joined_room"
	MsgUpdateState       MessageType = "update_state"
	MsgAskResponseNeeded MessageType = "ask_response_needed"
	MsgGuessCountNeeded  MessageType = "guess_count_needed"
	MsgGuessSuitsNeeded  MessageType = "guess_suits_needed"
	MsgGameOver          MessageType = "game_over"
	MsgError             MessageType = "error"
)

// Message is the wrapper for all WebSocket messages
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// JoinPayload is sent when a player wants to join a room
type JoinPayload struct {
	Name string `json:"name"`
	Room string `json:"room"` // empty: create a new room
}

// JoinedRoomPayload confirms a join and tells the player which room they landed in
type JoinedRoomPayload struct {
	RoomID  string `json:"room_id"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
}

// AskCardPayload starts a question: the turn owner asks target for a rank
type AskCardPayload struct {
	Target   string `json:"target"`
	CardRank string `json:"card_rank"`
}

// AskResponsePayload is the target's yes/no answer
type AskResponsePayload struct {
	Response string `json:"response"` // "yes" or "no"
}

// GuessCountPayload is the asker's guess at how many matching cards the target holds
type GuessCountPayload struct {
	Count int `json:"count"`
}

// GuessSuitsPayload is the asker's guess at the exact suits held
type GuessSuitsPayload struct {
	Suits []string `json:"suits"`
}

// ChatPayload is a room chat line
type ChatPayload struct {
	Message string `json:"message"`
}

// AskResponseNeededPayload is unicast to the question's target
type AskResponseNeededPayload struct {
	AskingPlayer string `json:"asking_player"`
	CardRank     string `json:"card_rank"`
}

// GuessCountNeededPayload is unicast to the asker after a "yes".
// The true count is deliberately absent.
type GuessCountNeededPayload struct {
	TargetPlayer string `json:"target_player"`
	CardRank     string `json:"card_rank"`
}

// GuessSuitsNeededPayload is unicast to the asker after a correct count guess
type GuessSuitsNeededPayload struct {
	TargetPlayer string `json:"target_player"`
	CardRank     string `json:"card_rank"`
	Count        int    `json:"count"`
}

// PlayerInfo is the public view of one player inside an update_state broadcast
type PlayerInfo struct {
	Name           string   `json:"name"`
	IsTurn         bool     `json:"is_turn"`
	CollectedBoxes int      `json:"collected_boxes"`
	CollectedSets  []string `json:"collected_sets"`
}

// HistoryEntry is one line of the room's game log
type HistoryEntry struct {
	Kind      string `json:"type"` // "system", "turn" or "chat"
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// StatePayload is the per-recipient update_state broadcast. MyHand is
// personalized and must only ever contain the recipient's own cards.
type StatePayload struct {
	GameStarted bool           `json:"game_started"`
	Players     []PlayerInfo   `json:"players"`
	DeckSize    int            `json:"deck_size"`
	CurrentTurn string         `json:"current_turn"`
	RoomAdmin   string         `json:"room_admin"`
	MyHand      []string       `json:"my_hand"`
	History     []HistoryEntry `json:"history"`
}

// GameOverPayload reports the winner set; ties are reported together
type GameOverPayload struct {
	Winners []string       `json:"winners"`
	Boxes   map[string]int `json:"boxes"`
}

// InviteNewGamePayload announces a reset proposal; IsAdmin is personalized
type InviteNewGamePayload struct {
	AdminName string `json:"admin_name"`
	IsAdmin   bool   `json:"is_admin"`
}

// ErrorPayload contains error information
type ErrorPayload struct {
	Message string `json:"message"`
}

// EncodeMessage encodes a message with its payload
func EncodeMessage(msgType MessageType, payload interface{}) ([]byte, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	msg := Message{
		Type:    msgType,
		Payload: payloadBytes,
	}

	return json.Marshal(msg)
}

// DecodeMessage decodes a message
func DecodeMessage(data []byte) (*Message, error) {
	var msg Message
	err := json.Unmarshal(data, &msg)
	return &msg, err
}
