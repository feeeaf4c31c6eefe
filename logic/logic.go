package logic

import (
	"context"
	"errors"

	"github.com/sanjaymalladi/AskAlgo-Backend/models"
)

// Failure taxonomy surfaced to the controller layer. Each maps to a
// distinct HTTP status: ErrValidation to 400, the rest to 500. Auth
// failures never reach this package; the middleware handles them.
var (
	ErrValidation = errors.New("validation failed")
	ErrAIResponse = errors.New("ai responder failed")
	ErrStore      = errors.New("conversation store failed")
)

// ConversationStore is the persistence surface the logic layer needs.
// Implemented by dao.ConversationDAO.
type ConversationStore interface {
	GetConversation(ctx context.Context, uid, conversationID string) (*models.Conversation, error)
	SetConversation(ctx context.Context, uid, conversationID string, convo *models.Conversation) error
	ListConversations(ctx context.Context, uid string) (map[string]models.Conversation, error)
}

// Responder generates an answer for a fully rendered prompt. Implemented
// by pkg.ChatClient and pkg.GeminiClient.
type Responder interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
