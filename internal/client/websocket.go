package client

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/yourusername/skrynky/internal/protocol"
)

var errConnClosed = errors.New("connection closed")

// WSClient manages the WebSocket connection to the server
type WSClient struct {
	conn      *websocket.Conn
	send      chan []byte
	receive   chan *protocol.Message
	connected bool
	closed    bool
	mu        sync.RWMutex
}

// NewWSClient creates a new WebSocket client
func NewWSClient(serverURL string) (*WSClient, error) {
	dialer := websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
	}

	conn, _, err := dialer.Dial(serverURL, nil)
	if err != nil {
		return nil, err
	}

	client := &WSClient{
		conn:      conn,
		send:      make(chan []byte, 256),
		receive:   make(chan *protocol.Message, 256),
		connected: true,
	}

	go client.readPump()
	go client.writePump()

	return client, nil
}

// readPump reads messages from the WebSocket connection
func (c *WSClient) readPump() {
	defer func() {
		c.mu.Lock()
		c.connected = false
		c.mu.Unlock()
		close(c.receive)
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}

		msg, err := protocol.DecodeMessage(message)
		if err != nil {
			log.Printf("Error decoding message: %v", err)
			continue
		}

		c.receive <- msg
	}
}

// writePump writes messages to the WebSocket connection
func (c *WSClient) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// SendMessage sends a message to the server. After Close it reports an error
// instead of touching the closed send channel.
func (c *WSClient) SendMessage(msgType protocol.MessageType, payload interface{}) error {
	msg, err := protocol.EncodeMessage(msgType, payload)
	if err != nil {
		return err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return errConnClosed
	}
	c.send <- msg
	return nil
}

// Join sends a join request for the given room (empty for a fresh room)
func (c *WSClient) Join(roomID, name string) error {
	return c.SendMessage(protocol.MsgJoin, protocol.JoinPayload{
		Name: name,
		Room: roomID,
	})
}

// StartGame asks the server to start the game (admin only)
func (c *WSClient) StartGame() error {
	return c.SendMessage(protocol.MsgStartGame, nil)
}

// AskCard asks target whether they hold cards of the given rank
func (c *WSClient) AskCard(target, rank string) error {
	return c.SendMessage(protocol.MsgAskCard, protocol.AskCardPayload{
		Target:   target,
		CardRank: rank,
	})
}

// AskResponse answers a pending question with yes or no
func (c *WSClient) AskResponse(yes bool) error {
	response := "no"
	if yes {
		response = "yes"
	}
	return c.SendMessage(protocol.MsgAskResponse, protocol.AskResponsePayload{
		Response: response,
	})
}

// GuessCount submits the count guess
func (c *WSClient) GuessCount(count int) error {
	return c.SendMessage(protocol.MsgGuessCount, protocol.GuessCountPayload{
		Count: count,
	})
}

// GuessSuits submits the suit guess
func (c *WSClient) GuessSuits(suits []string) error {
	return c.SendMessage(protocol.MsgGuessSuits, protocol.GuessSuitsPayload{
		Suits: suits,
	})
}

// InviteNewGame proposes a new game (admin only)
func (c *WSClient) InviteNewGame() error {
	return c.SendMessage(protocol.MsgInviteNewGame, nil)
}

// AcceptNewGame acknowledges a new-game proposal
func (c *WSClient) AcceptNewGame() error {
	return c.SendMessage(protocol.MsgAcceptNewGame, nil)
}

// Chat sends a room chat line
func (c *WSClient) Chat(message string) error {
	return c.SendMessage(protocol.MsgChat, protocol.ChatPayload{
		Message: message,
	})
}

// Receive returns the channel for receiving messages
func (c *WSClient) Receive() <-chan *protocol.Message {
	return c.receive
}

// IsConnected checks if the client is connected
func (c *WSClient) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

// Close closes the WebSocket connection. Safe to call more than once.
func (c *WSClient) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	close(c.send)
	return c.conn.Close()
}
