package logic

import (
	"context"
	"fmt"

	"github.com/sanjaymalladi/AskAlgo-Backend/models"
)

// ConversationLogic handles conversation listing.
type ConversationLogic struct {
	store ConversationStore
}

func NewConversationLogic(store ConversationStore) *ConversationLogic {
	return &ConversationLogic{store: store}
}

// GetConversations retrieves all conversations for a user, verbatim. A
// user with no conversations yields an empty result, not an error.
func (l *ConversationLogic) GetConversations(ctx context.Context, uid string) (map[string]models.Conversation, error) {
	convos, err := l.store.ListConversations(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return convos, nil
}
