package chat

import (
	"errors"
	"sync"

	"github.com/baalimago/sahayak/internal/models"
)

var ErrEmptyConversation = errors.New("conversation is empty")

// Conversation is the ordered, in-memory log of turns for one session. Turns
// are never modified once appended.
type Conversation struct {
	mu    sync.RWMutex
	turns []models.Turn
}

func (c *Conversation) Append(role, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.turns = append(c.turns, models.Turn{Role: role, Text: text})
}

// Turns returns a copy of all turns, oldest first.
func (c *Conversation) Turns() []models.Turn {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ret := make([]models.Turn, len(c.turns))
	copy(ret, c.turns)
	return ret
}

func (c *Conversation) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.turns)
}

func (c *Conversation) Last() (models.Turn, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.turns) == 0 {
		return models.Turn{}, ErrEmptyConversation
	}
	return c.turns[len(c.turns)-1], nil
}
