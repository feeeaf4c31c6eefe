package models

import "fmt"

// Conversation is the stored shape of one conversation: an ordered
// sequence of message turns. Slice order is chronological turn order.
type Conversation struct {
	Messages []Message `json:"messages"`
}

// Validate checks every stored message. A conversation read from the
// database that fails here is treated as corrupted.
func (c Conversation) Validate() error {
	for i, msg := range c.Messages {
		if err := msg.Validate(); err != nil {
			return fmt.Errorf("message %d: %w", i, err)
		}
	}
	return nil
}
