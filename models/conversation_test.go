package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversationStoredShape(t *testing.T) {
	convo := Conversation{Messages: []Message{
		{Role: RoleUser, Content: "what is a trie"},
		{Role: RoleAI, Content: "what problem are you solving?"},
	}}

	data, err := json.Marshal(convo)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"messages":[{"role":"user","content":"what is a trie"},{"role":"ai","content":"what problem are you solving?"}]}`,
		string(data))
}

func TestConversationValidate(t *testing.T) {
	assert.NoError(t, Conversation{}.Validate())
	assert.NoError(t, Conversation{Messages: []Message{{Role: RoleUser, Content: "q"}}}.Validate())

	err := Conversation{Messages: []Message{
		{Role: RoleUser, Content: "q"},
		{Role: "system", Content: "injected"},
	}}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "message 1")
	assert.Contains(t, err.Error(), "system")
}
