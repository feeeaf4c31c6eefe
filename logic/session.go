package logic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/sanjaymalladi/AskAlgo-Backend/models"
)

// SessionLogic owns the read-modify-write cycle behind /ask: it loads a
// conversation, appends the user's question, asks the responder, appends
// the answer, and persists the full updated sequence in a single write.
//
// Writes are whole-value overwrites with no transaction: two concurrent
// requests for the same conversation each read the same prior state and
// the last writer wins, silently dropping the other pair of turns.
type SessionLogic struct {
	store     ConversationStore
	responder Responder
	logger    *slog.Logger
}

func NewSessionLogic(store ConversationStore, responder Responder, logger *slog.Logger) *SessionLogic {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionLogic{
		store:     store,
		responder: responder,
		logger:    logger.With("component", "session"),
	}
}

// Ask answers one question within a conversation and returns the
// conversation id (freshly generated when the caller supplied none) and
// the responder's answer. Nothing is persisted unless the responder
// succeeds, so a failed call leaves the stored conversation untouched.
func (l *SessionLogic) Ask(ctx context.Context, uid, conversationID, question string) (string, string, error) {
	if question == "" {
		return "", "", fmt.Errorf("%w: question is required", ErrValidation)
	}
	if conversationID == "" {
		conversationID = uuid.NewString()
	}

	convo, err := l.store.GetConversation(ctx, uid, conversationID)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrStore, err)
	}

	convo.Messages = append(convo.Messages, models.Message{Role: models.RoleUser, Content: question})

	answer, err := l.responder.Generate(ctx, BuildPrompt(convo.Messages))
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrAIResponse, err)
	}

	convo.Messages = append(convo.Messages, models.Message{Role: models.RoleAI, Content: answer})
	if err := l.store.SetConversation(ctx, uid, conversationID, convo); err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrStore, err)
	}

	l.logger.Debug("conversation updated",
		"uid", uid,
		"conversation_id", conversationID,
		"turns", len(convo.Messages))

	return conversationID, answer, nil
}

// BuildPrompt renders the message history, newest turn last, as
// "<role>: <content>" lines joined by newlines. The rendering is
// deterministic so the same history always yields the same prompt.
func BuildPrompt(messages []models.Message) string {
	lines := make([]string, 0, len(messages))
	for _, msg := range messages {
		lines = append(lines, msg.Role+": "+msg.Content)
	}
	return strings.Join(lines, "\n")
}
