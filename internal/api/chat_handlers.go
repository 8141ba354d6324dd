package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"zenvy-storefront/internal/chat"
)

var chatRelay = chat.NewRelay()

// GetChatHistory returns the session's support conversation, greeting
// included.
func GetChatHistory(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	respondOK(c, gin.H{"messages": rt.Chat.History()})
}

// SendChatMessage forwards a support message with the running
// conversation as context and returns the assistant's reply. A failed
// call still produces a reply, the canned fallback.
func SendChatMessage(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Message is required",
		})
		return
	}

	reply, _ := rt.Chat.Send(c.Request.Context(), req.Message)
	respondOK(c, gin.H{
		"reply":    reply,
		"messages": rt.Chat.History(),
	})
}

// ClearChat resets the conversation back to just the greeting
func ClearChat(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	rt.Chat.Clear()
	respondOK(c, gin.H{"messages": rt.Chat.History()})
}

// ChatWebSocket upgrades to a websocket that streams the conversation
func ChatWebSocket(c *gin.Context) {
	rt := runtime(c)
	if rt == nil {
		return
	}

	chatRelay.Serve(c.Writer, c.Request, rt.Chat)
}
