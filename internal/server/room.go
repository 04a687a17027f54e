package server

import (
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/yourusername/skrynky/internal/game"
)

// Room pairs one game engine with the mutex that serializes every inbound
// message for it. The engine is never reachable except through do().
type Room struct {
	ID string

	mu     sync.Mutex
	engine *game.Engine
}

// NewRoom creates a new game room
func NewRoom(id string) *Room {
	return &Room{
		ID:     id,
		engine: game.NewEngine(id),
	}
}

// do runs fn against the room's engine while holding the room lock. The lock
// spans validation, state mutation and the queuing of every outbound
// notification, so a room processes one inbound message at a time.
func (r *Room) do(fn func(*game.Engine) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r.engine)
}

// Leave removes a player and reports whether the room is now empty
func (r *Room) Leave(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.engine.Leave(name)
	return r.engine.PlayerCount() == 0
}

// RoomManager owns every room by identifier: created on first join, deleted
// when the last player leaves.
type RoomManager struct {
	rooms map[string]*Room
	mu    sync.RWMutex
}

// NewRoomManager creates a new room manager
func NewRoomManager() *RoomManager {
	return &RoomManager{
		rooms: make(map[string]*Room),
	}
}

// GetOrCreateRoom gets an existing room or creates a new one. An empty id
// asks for a fresh room with a generated identifier.
func (rm *RoomManager) GetOrCreateRoom(roomID string) *Room {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	if roomID == "" {
		roomID = uuid.New().String()
	}
	if room, ok := rm.rooms[roomID]; ok {
		return room
	}

	room := NewRoom(roomID)
	rm.rooms[roomID] = room

	log.Printf("Created new room: %s", roomID)
	return room
}

// GetRoom gets an existing room
func (rm *RoomManager) GetRoom(roomID string) *Room {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	return rm.rooms[roomID]
}

// RemoveRoom drops a room, but only if it is still empty when the manager
// lock is held (a join may have raced the removal).
func (rm *RoomManager) RemoveRoom(roomID string) {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	room, ok := rm.rooms[roomID]
	if !ok {
		return
	}
	room.mu.Lock()
	empty := room.engine.PlayerCount() == 0
	room.mu.Unlock()
	if empty {
		delete(rm.rooms, roomID)
		log.Printf("Room %s closed", roomID)
	}
}
