package models

import "fmt"

// Message roles as stored in the database. The frontend depends on these
// exact strings, so the assistant role is "ai" rather than the
// OpenAI-style "assistant".
const (
	RoleUser = "user"
	RoleAI   = "ai"
)

// Message is a single turn in a conversation. Messages are append-only:
// once stored they are never edited or deleted.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Validate rejects messages that could not have been written by this
// backend, so corrupted database values surface as errors instead of
// leaking into prompts.
func (m Message) Validate() error {
	if m.Role != RoleUser && m.Role != RoleAI {
		return fmt.Errorf("unknown message role %q", m.Role)
	}
	return nil
}
