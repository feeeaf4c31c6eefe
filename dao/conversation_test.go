package dao

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversationPaths(t *testing.T) {
	assert.Equal(t, "users/u1/conversations/c1", conversationPath("u1", "c1"))
	assert.Equal(t, "users/u1/conversations", conversationsPath("u1"))
}
