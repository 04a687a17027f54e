package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/yourusername/skrynky/internal/game"
	"github.com/yourusername/skrynky/internal/protocol"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second    //time allowed to read the next pong message from client
	pingPeriod     = (pongWait * 9) / 10 //send pings to client with this period. must be less than pongWait
	maxMessageSize = 1024
)

var upgrader = websocket.Upgrader{ //upgrade HTTP connections to WebSocket connections
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for now
	},
}

// Client represents one WebSocket connection. Once joined it doubles as the
// player's outbound delivery handle (game.Sink).
type Client struct {
	ID   string
	Name string
	room *Room
	conn *websocket.Conn
	send chan []byte
}

// Send queues an outbound message without ever blocking the engine; a
// saturated client simply loses the message.
func (c *Client) Send(data []byte) {
	select {
	case c.send <- data:
	default:
	}
}

var _ game.Sink = (*Client)(nil)

// Server represents the WebSocket server
type Server struct {
	roomManager *RoomManager
}

// NewServer creates a new WebSocket server
func NewServer() *Server {
	return &Server{
		roomManager: NewRoomManager(),
	}
}

// HandleWebSocket handles WebSocket connections
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}

	client := &Client{
		ID:   uuid.New().String(),
		conn: conn,
		send: make(chan []byte, 256),
	}

	go client.writePump()
	go client.readPump(s)
}

// readPump pumps messages from the WebSocket connection into the dispatcher
func (c *Client) readPump(s *Server) {
	defer func() {
		s.handleDisconnect(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}

		c.handleMessage(s, message)
	}
}

// writePump pumps messages from the room to the WebSocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleDisconnect surfaces a dropped connection as a player leaving their
// room, destroying the room if it is now empty.
func (s *Server) handleDisconnect(c *Client) {
	if c.room == nil {
		return
	}
	if c.room.Leave(c.Name) {
		s.roomManager.RemoveRoom(c.room.ID)
	}
	log.Printf("Player %s left room %s", c.Name, c.room.ID)
	c.room = nil
	close(c.send)
}

// sendError unicasts an error to the offending sender only
func (c *Client) sendError(message string) {
	msg, _ := protocol.EncodeMessage(protocol.MsgError, protocol.ErrorPayload{
		Message: message,
	})
	c.Send(msg)
}

// handleMessage translates one inbound message into an engine call. Unknown
// or malformed payloads are rejected with a unicast error and otherwise
// ignored; nothing here can take the room's state machine down.
func (c *Client) handleMessage(s *Server, data []byte) {
	msg, err := protocol.DecodeMessage(data)
	if err != nil {
		c.sendError("malformed message")
		return
	}

	if msg.Type == protocol.MsgJoin {
		c.handleJoin(s, msg.Payload)
		return
	}

	if c.room == nil {
		c.sendError("join a room first")
		return
	}

	var callErr error
	switch msg.Type {
	case protocol.MsgStartGame:
		callErr = c.room.do(func(e *game.Engine) error {
			return e.Start(c.Name)
		})

	case protocol.MsgAskCard:
		var payload protocol.AskCardPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			c.sendError("malformed message")
			return
		}
		callErr = c.room.do(func(e *game.Engine) error {
			return e.AskCard(c.Name, payload.Target, payload.CardRank)
		})

	case protocol.MsgAskResponse:
		var payload protocol.AskResponsePayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			c.sendError("malformed message")
			return
		}
		response := strings.ToLower(payload.Response)
		if response != "yes" && response != "no" {
			c.sendError("malformed message")
			return
		}
		callErr = c.room.do(func(e *game.Engine) error {
			return e.AskResponse(c.Name, response == "yes")
		})

	case protocol.MsgGuessCount:
		var payload protocol.GuessCountPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			c.sendError("malformed message")
			return
		}
		callErr = c.room.do(func(e *game.Engine) error {
			return e.GuessCount(c.Name, payload.Count)
		})

	case protocol.MsgGuessSuits:
		var payload protocol.GuessSuitsPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			c.sendError("malformed message")
			return
		}
		callErr = c.room.do(func(e *game.Engine) error {
			return e.GuessSuits(c.Name, payload.Suits)
		})

	case protocol.MsgChat:
		var payload protocol.ChatPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil || payload.Message == "" {
			c.sendError("malformed message")
			return
		}
		callErr = c.room.do(func(e *game.Engine) error {
			return e.Chat(c.Name, payload.Message)
		})

	case protocol.MsgInviteNewGame:
		callErr = c.room.do(func(e *game.Engine) error {
			return e.InviteNewGame(c.Name)
		})

	case protocol.MsgAcceptNewGame:
		callErr = c.room.do(func(e *game.Engine) error {
			return e.AcceptNewGame(c.Name)
		})

	default:
		c.sendError("unknown message type")
		return
	}

	if callErr != nil {
		c.sendError(callErr.Error())
	}
}

func (c *Client) handleJoin(s *Server, raw json.RawMessage) {
	var payload protocol.JoinPayload
	if err := json.Unmarshal(raw, &payload); err != nil || payload.Name == "" {
		c.sendError("malformed message")
		return
	}
	if c.room != nil {
		c.sendError("already in a room")
		return
	}

	room := s.roomManager.GetOrCreateRoom(payload.Room)
	err := room.do(func(e *game.Engine) error {
		return e.Join(payload.Name, c)
	})
	if err != nil {
		c.sendError(err.Error())
		s.roomManager.RemoveRoom(room.ID) // drop the room again if this join created it
		return
	}

	c.Name = payload.Name
	c.room = room
	log.Printf("Player %s joined room %s", c.Name, room.ID)
}
