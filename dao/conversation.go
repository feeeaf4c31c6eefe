package dao

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/db"

	"github.com/sanjaymalladi/AskAlgo-Backend/models"
)

// ConversationDAO handles conversation reads and writes against the
// Firebase Realtime Database.
type ConversationDAO struct {
	client *db.Client
}

func NewConversationDAO(client *db.Client) *ConversationDAO {
	return &ConversationDAO{client: client}
}

func conversationPath(uid, conversationID string) string {
	return fmt.Sprintf("users/%s/conversations/%s", uid, conversationID)
}

func conversationsPath(uid string) string {
	return fmt.Sprintf("users/%s/conversations", uid)
}

// GetConversation retrieves one conversation. An absent path is not an
// error: it comes back as a conversation with no messages.
func (d *ConversationDAO) GetConversation(ctx context.Context, uid, conversationID string) (*models.Conversation, error) {
	var convo models.Conversation
	ref := d.client.NewRef(conversationPath(uid, conversationID))
	if err := ref.Get(ctx, &convo); err != nil {
		return nil, fmt.Errorf("reading conversation %s: %w", conversationID, err)
	}
	if err := convo.Validate(); err != nil {
		return nil, fmt.Errorf("stored conversation %s is malformed: %w", conversationID, err)
	}
	return &convo, nil
}

// SetConversation overwrites the stored conversation with the full
// message sequence. The database gives no transaction guarantee, so
// concurrent writers to the same conversation are last-writer-wins.
func (d *ConversationDAO) SetConversation(ctx context.Context, uid, conversationID string, convo *models.Conversation) error {
	ref := d.client.NewRef(conversationPath(uid, conversationID))
	if err := ref.Set(ctx, convo); err != nil {
		return fmt.Errorf("writing conversation %s: %w", conversationID, err)
	}
	return nil
}

// ListConversations retrieves all conversations for a user. A user with
// none yields a nil map, not an error.
func (d *ConversationDAO) ListConversations(ctx context.Context, uid string) (map[string]models.Conversation, error) {
	var convos map[string]models.Conversation
	ref := d.client.NewRef(conversationsPath(uid))
	if err := ref.Get(ctx, &convos); err != nil {
		return nil, fmt.Errorf("listing conversations: %w", err)
	}
	for id, convo := range convos {
		if err := convo.Validate(); err != nil {
			return nil, fmt.Errorf("stored conversation %s is malformed: %w", id, err)
		}
	}
	return convos, nil
}
