package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sanjaymalladi/AskAlgo-Backend/logic"
	"github.com/sanjaymalladi/AskAlgo-Backend/middleware"
)

// ConversationController handles the authenticated chat endpoints.
type ConversationController struct {
	sessionLogic *logic.SessionLogic
	convoLogic   *logic.ConversationLogic
}

func NewConversationController(sessionLogic *logic.SessionLogic, convoLogic *logic.ConversationLogic) *ConversationController {
	return &ConversationController{
		sessionLogic: sessionLogic,
		convoLogic:   convoLogic,
	}
}

// Ask handles POST /ask.
func (c *ConversationController) Ask(ctx *gin.Context) {
	type Request struct {
		Question       string `json:"question"`
		ConversationID string `json:"conversationId"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Question is required"})
		return
	}

	uid := middleware.UID(ctx)
	conversationID, answer, err := c.sessionLogic.Ask(ctx.Request.Context(), uid, req.ConversationID, req.Question)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, logic.ErrValidation) {
			status = http.StatusBadRequest
		}
		ctx.JSON(status, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"response":       answer,
		"conversationId": conversationID,
	})
}

// GetConversations handles GET /get_conversations.
func (c *ConversationController) GetConversations(ctx *gin.Context) {
	uid := middleware.UID(ctx)

	convos, err := c.convoLogic.GetConversations(ctx.Request.Context(), uid)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if len(convos) == 0 {
		ctx.JSON(http.StatusOK, gin.H{"message": "No conversations found"})
		return
	}

	ctx.JSON(http.StatusOK, convos)
}
