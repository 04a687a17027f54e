package game

import (
	"fmt"
	"time"

	"github.com/yourusername/skrynky/internal/protocol"
)

// history log entry kinds
const (
	historySystem = "system"
	historyTurn   = "turn"
	historyChat   = "chat"
)

// logf appends a line to the room's game log. The log rides along in every
// update_state broadcast.
func (e *Engine) logf(kind, format string, args ...interface{}) {
	e.history = append(e.history, protocol.HistoryEntry{
		Kind:      kind,
		Message:   fmt.Sprintf(format, args...),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
